package entity

import (
	"time"

	"github.com/google/uuid"
)

type ChatRole string

const (
	ChatRoleUser ChatRole = "user"
	ChatRoleAI   ChatRole = "ai"
)

// ChatMessage is append-only; nothing updates or deletes it once written.
type ChatMessage struct {
	Id        uuid.UUID
	SessionId uuid.UUID
	Role      ChatRole
	Content   string
	CreatedAt time.Time
}
