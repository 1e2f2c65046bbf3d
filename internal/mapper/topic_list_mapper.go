package mapper

import (
	"ai-topiclist-be/internal/entity"
	"ai-topiclist-be/internal/model"

	"gorm.io/datatypes"
)

type TopicListMapper struct{}

func NewTopicListMapper() *TopicListMapper {
	return &TopicListMapper{}
}

// ToEntity maps whatever associations were preloaded; nil Sections means "not loaded".
func (m *TopicListMapper) ToEntity(t *model.TopicList) *entity.TopicList {
	if t == nil {
		return nil
	}

	var sections []*entity.Section
	if t.Sections != nil {
		sections = make([]*entity.Section, len(t.Sections))
		for i := range t.Sections {
			sections[i] = m.SectionToEntity(&t.Sections[i])
		}
	}

	return &entity.TopicList{
		Id:             t.Id,
		UserId:         t.UserId,
		Title:          t.Title,
		SourceDocument: []byte(t.SourceDocument),
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
		Sections:       sections,
	}
}

// ToModel maps the topic list row only. Sections and topics are inserted separately.
func (m *TopicListMapper) ToModel(t *entity.TopicList) *model.TopicList {
	if t == nil {
		return nil
	}

	var doc datatypes.JSON
	if len(t.SourceDocument) > 0 {
		doc = datatypes.JSON(t.SourceDocument)
	}

	return &model.TopicList{
		Id:             t.Id,
		UserId:         t.UserId,
		Title:          t.Title,
		SourceDocument: doc,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}

func (m *TopicListMapper) ToEntities(lists []*model.TopicList) []*entity.TopicList {
	entities := make([]*entity.TopicList, len(lists))
	for i, l := range lists {
		entities[i] = m.ToEntity(l)
	}
	return entities
}

// Section Mappers

func (m *TopicListMapper) SectionToEntity(s *model.Section) *entity.Section {
	if s == nil {
		return nil
	}

	var topics []*entity.Topic
	if s.Topics != nil {
		topics = make([]*entity.Topic, len(s.Topics))
		for i := range s.Topics {
			topics[i] = m.TopicToEntity(&s.Topics[i])
		}
	}

	return &entity.Section{
		Id:          s.Id,
		TopicListId: s.TopicListId,
		Name:        s.Name,
		Position:    s.Position,
		Topics:      topics,
	}
}

func (m *TopicListMapper) SectionToModel(s *entity.Section) *model.Section {
	if s == nil {
		return nil
	}
	return &model.Section{
		Id:          s.Id,
		TopicListId: s.TopicListId,
		Name:        s.Name,
		Position:    s.Position,
	}
}

// Topic Mappers

func (m *TopicListMapper) TopicToEntity(t *model.Topic) *entity.Topic {
	if t == nil {
		return nil
	}
	return &entity.Topic{
		Id:        t.Id,
		SectionId: t.SectionId,
		Title:     t.Title,
		Completed: t.Completed,
		Position:  t.Position,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func (m *TopicListMapper) TopicToModel(t *entity.Topic) *model.Topic {
	if t == nil {
		return nil
	}
	return &model.Topic{
		Id:        t.Id,
		SectionId: t.SectionId,
		Title:     t.Title,
		Completed: t.Completed,
		Position:  t.Position,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}
