package implementation

import (
	"context"

	"ai-topiclist-be/internal/entity"
	"ai-topiclist-be/internal/mapper"
	"ai-topiclist-be/internal/model"
	"ai-topiclist-be/internal/repository/contract"
	"ai-topiclist-be/internal/repository/scope"
	"ai-topiclist-be/internal/repository/specification"

	"gorm.io/gorm"
)

type SectionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TopicListMapper
}

func NewSectionRepository(db *gorm.DB) contract.SectionRepository {
	return &SectionRepositoryImpl{
		db:     db,
		mapper: mapper.NewTopicListMapper(),
	}
}

func (r *SectionRepositoryImpl) Create(ctx context.Context, section *entity.Section) error {
	m := r.mapper.SectionToModel(section)
	if err := r.db.WithContext(ctx).Omit("Topics").Create(m).Error; err != nil {
		return err
	}
	section.Id = m.Id
	return nil
}

func (r *SectionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Section, error) {
	var models []*model.Section
	query := r.db.WithContext(ctx)
	for _, spec := range specs {
		query = spec.Apply(query)
	}
	if err := query.Scopes(scope.OrderByPosition).Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Section, len(models))
	for i, m := range models {
		entities[i] = r.mapper.SectionToEntity(m)
	}
	return entities, nil
}
