package entity

import (
	"time"

	"github.com/google/uuid"
)

type TopicList struct {
	Id             uuid.UUID
	UserId         uuid.UUID
	Title          string
	SourceDocument []byte
	CreatedAt      time.Time
	UpdatedAt      time.Time
	Sections       []*Section
}

type Section struct {
	Id          uuid.UUID
	TopicListId uuid.UUID
	Name        string
	Position    int
	Topics      []*Topic
}

// Topic completion is one-way: Completed only ever goes false -> true.
type Topic struct {
	Id        uuid.UUID
	SectionId uuid.UUID
	Title     string
	Completed bool
	Position  int
	CreatedAt time.Time
	UpdatedAt time.Time
}
