package unitofwork

import (
	"context"

	"ai-topiclist-be/internal/repository/contract"
)

// UnitOfWork hands out repositories bound to one transaction once Begin has been called.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	ChatSessionRepository() contract.ChatSessionRepository
	ChatMessageRepository() contract.ChatMessageRepository
	TopicListRepository() contract.TopicListRepository
	SectionRepository() contract.SectionRepository
	TopicRepository() contract.TopicRepository
}
