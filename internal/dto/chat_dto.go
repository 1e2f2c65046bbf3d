package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateSessionResponse struct {
	Message   string    `json:"message"`
	SessionId uuid.UUID `json:"sessionId"`
}

type ChatSessionResponse struct {
	Id        uuid.UUID              `json:"id"`
	UserId    uuid.UUID              `json:"userId"`
	CreatedAt time.Time              `json:"createdAt"`
	Messages  []*ChatMessageResponse `json:"messages,omitempty"`
}

type ChatMessageResponse struct {
	Id        uuid.UUID `json:"id"`
	SessionId uuid.UUID `json:"sessionId"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

type SendChatRequest struct {
	SessionId string `json:"sessionId" validate:"required"`
	Message   string `json:"message" validate:"required"`
}

type SendChatResponse struct {
	Message     string               `json:"message"`
	UserMessage *ChatMessageResponse `json:"userMessage"`
	AiMessage   string               `json:"aiMessage"`
}
