package contract

import (
	"context"

	"ai-topiclist-be/internal/entity"
	"ai-topiclist-be/internal/repository/specification"
)

type TopicListRepository interface {
	Create(ctx context.Context, list *entity.TopicList) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.TopicList, error)
	// FindOneDetailed preloads sections and their topics in document order.
	FindOneDetailed(ctx context.Context, specs ...specification.Specification) (*entity.TopicList, error)
	// FindAllWithSections preloads sections only.
	FindAllWithSections(ctx context.Context, specs ...specification.Specification) ([]*entity.TopicList, error)
	// Delete removes every row matching specs and reports how many went.
	Delete(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type SectionRepository interface {
	Create(ctx context.Context, section *entity.Section) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Section, error)
}

type TopicRepository interface {
	Create(ctx context.Context, topic *entity.Topic) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Topic, error)
	MarkCompleted(ctx context.Context, topic *entity.Topic) error
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
