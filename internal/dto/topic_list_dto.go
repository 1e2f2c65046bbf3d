package dto

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type CreateTopicListRequest struct {
	UserToken string          `json:"userToken"`
	TopicData json.RawMessage `json:"topicData"`
}

// HasTopicData reports whether topicData carries something other than null or "".
func (r *CreateTopicListRequest) HasTopicData() bool {
	data := bytes.TrimSpace(r.TopicData)
	return len(data) > 0 && !bytes.Equal(data, []byte("null")) && !bytes.Equal(data, []byte(`""`))
}

type CreateTopicListResponse struct {
	Message     string    `json:"message"`
	TopicListId uuid.UUID `json:"topicListId"`
}

type TopicListResponse struct {
	Id        uuid.UUID          `json:"id"`
	UserId    uuid.UUID          `json:"userId"`
	Title     string             `json:"title"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
	Sections  []*SectionResponse `json:"sections"`
}

type SectionResponse struct {
	Id          uuid.UUID        `json:"id"`
	TopicListId uuid.UUID        `json:"topicListId"`
	Name        string           `json:"name"`
	Topics      []*TopicResponse `json:"topics,omitempty"`
}

type TopicResponse struct {
	Id        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CompletedTopic struct {
	Id        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
}

type CompleteTopicResponse struct {
	Message string         `json:"message"`
	Topic   CompletedTopic `json:"topic"`
}

type DeleteTopicListResponse struct {
	Message     string    `json:"message"`
	TopicListId uuid.UUID `json:"topicListId"`
}
