package implementation

import (
	"context"
	"errors"

	"ai-topiclist-be/internal/entity"
	"ai-topiclist-be/internal/mapper"
	"ai-topiclist-be/internal/model"
	"ai-topiclist-be/internal/repository/contract"
	"ai-topiclist-be/internal/repository/scope"
	"ai-topiclist-be/internal/repository/specification"

	"gorm.io/gorm"
)

type TopicListRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TopicListMapper
}

func NewTopicListRepository(db *gorm.DB) contract.TopicListRepository {
	return &TopicListRepositoryImpl{
		db:     db,
		mapper: mapper.NewTopicListMapper(),
	}
}

func (r *TopicListRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *TopicListRepositoryImpl) Create(ctx context.Context, list *entity.TopicList) error {
	m := r.mapper.ToModel(list)
	if err := r.db.WithContext(ctx).Omit("Sections").Create(m).Error; err != nil {
		return err
	}
	sections := list.Sections
	*list = *r.mapper.ToEntity(m)
	list.Sections = sections
	return nil
}

func (r *TopicListRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.TopicList, error) {
	return r.findOne(r.db.WithContext(ctx), specs...)
}

func (r *TopicListRepositoryImpl) FindOneDetailed(ctx context.Context, specs ...specification.Specification) (*entity.TopicList, error) {
	db := r.db.WithContext(ctx).
		Preload("Sections", scope.OrderByPosition).
		Preload("Sections.Topics", scope.OrderByPosition)
	return r.findOne(db, specs...)
}

func (r *TopicListRepositoryImpl) findOne(db *gorm.DB, specs ...specification.Specification) (*entity.TopicList, error) {
	var m model.TopicList
	query := r.applySpecifications(db, specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *TopicListRepositoryImpl) FindAllWithSections(ctx context.Context, specs ...specification.Specification) ([]*entity.TopicList, error) {
	var models []*model.TopicList
	query := r.applySpecifications(r.db.WithContext(ctx).Preload("Sections", scope.OrderByPosition), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *TopicListRepositoryImpl) Delete(ctx context.Context, specs ...specification.Specification) (int64, error) {
	if len(specs) == 0 {
		return 0, gorm.ErrMissingWhereClause
	}
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	res := query.Delete(&model.TopicList{})
	return res.RowsAffected, res.Error
}
