package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email          string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash   string    `gorm:"type:varchar(255);not null"`
	DisplayName    string    `gorm:"type:varchar(255);not null"`
	ProfilePicture *string   `gorm:"type:text"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`

	ChatSessions []ChatSession `gorm:"foreignKey:UserId;constraint:OnDelete:CASCADE"`
	TopicLists   []TopicList   `gorm:"foreignKey:UserId;constraint:OnDelete:CASCADE"`
}

func (User) TableName() string {
	return "users"
}
