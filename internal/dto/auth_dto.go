package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	DisplayName string `json:"displayName" validate:"required"`
	Email       string `json:"email" validate:"required"`
	Password    string `json:"password" validate:"required"`
}

type RegisterResponse struct {
	Message string    `json:"message"`
	UserId  uuid.UUID `json:"userId"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type ProfileResponse struct {
	Id             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	DisplayName    string    `json:"displayName"`
	ProfilePicture *string   `json:"profilePicture"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type UpdateProfileRequest struct {
	DisplayName    string         `json:"displayName" validate:"required"`
	Email          string         `json:"email" validate:"required"`
	ProfilePicture OptionalString `json:"profilePicture"`
}

type UpdateProfileResponse struct {
	Id             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	DisplayName    string    `json:"displayName"`
	ProfilePicture *string   `json:"profilePicture"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// OptionalString tells an absent field apart from an explicit null.
type OptionalString struct {
	Set   bool
	Value *string
}

func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	o.Value = &s
	return nil
}
