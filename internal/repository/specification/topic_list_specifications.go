package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByTopicListID struct {
	TopicListID uuid.UUID
}

func (s ByTopicListID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("topic_list_id = ?", s.TopicListID)
}

type BySectionID struct {
	SectionID uuid.UUID
}

func (s BySectionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("section_id = ?", s.SectionID)
}
