package implementation

import (
	"context"
	"errors"

	"ai-topiclist-be/internal/entity"
	"ai-topiclist-be/internal/mapper"
	"ai-topiclist-be/internal/model"
	"ai-topiclist-be/internal/repository/contract"
	"ai-topiclist-be/internal/repository/specification"

	"gorm.io/gorm"
)

type TopicRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TopicListMapper
}

func NewTopicRepository(db *gorm.DB) contract.TopicRepository {
	return &TopicRepositoryImpl{
		db:     db,
		mapper: mapper.NewTopicListMapper(),
	}
}

func (r *TopicRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *TopicRepositoryImpl) Create(ctx context.Context, topic *entity.Topic) error {
	m := r.mapper.TopicToModel(topic)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*topic = *r.mapper.TopicToEntity(m)
	return nil
}

func (r *TopicRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Topic, error) {
	var m model.Topic
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.TopicToEntity(&m), nil
}

// MarkCompleted always issues the UPDATE, even when the row is already complete.
func (r *TopicRepositoryImpl) MarkCompleted(ctx context.Context, topic *entity.Topic) error {
	m := model.Topic{Id: topic.Id}
	if err := r.db.WithContext(ctx).Model(&m).Update("completed", true).Error; err != nil {
		return err
	}
	topic.Completed = true
	topic.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *TopicRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Topic{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
