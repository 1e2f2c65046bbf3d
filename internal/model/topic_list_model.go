package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type TopicList struct {
	Id             uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId         uuid.UUID      `gorm:"type:uuid;not null;index"`
	Title          string         `gorm:"type:text;not null"`
	SourceDocument datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt      time.Time      `gorm:"autoCreateTime"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime"`

	Sections []Section `gorm:"foreignKey:TopicListId;constraint:OnDelete:CASCADE"`
}

func (TopicList) TableName() string {
	return "topic_lists"
}

type Section struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TopicListId uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:text;not null"`
	Position    int       `gorm:"not null;default:0"`

	Topics []Topic `gorm:"foreignKey:SectionId;constraint:OnDelete:CASCADE"`
}

func (Section) TableName() string {
	return "sections"
}

type Topic struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SectionId uuid.UUID `gorm:"type:uuid;not null;index"`
	Title     string    `gorm:"type:text;not null"`
	Completed bool      `gorm:"not null;default:false"`
	Position  int       `gorm:"not null;default:0"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Topic) TableName() string {
	return "topics"
}
