package controller

import (
	"context"
	"errors"
	"testing"

	"ai-topiclist-be/internal/dto"
	"ai-topiclist-be/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type stubTopicListService struct {
	err        error
	created    *dto.CreateTopicListRequest
	deletedBy  uuid.UUID
	completeId string
}

func (s *stubTopicListService) Create(ctx context.Context, req *dto.CreateTopicListRequest) (*dto.CreateTopicListResponse, error) {
	s.created = req
	if s.err != nil {
		return nil, s.err
	}
	return &dto.CreateTopicListResponse{Message: "Topic list created successfully", TopicListId: testUserId}, nil
}

func (s *stubTopicListService) List(ctx context.Context, userId uuid.UUID) ([]*dto.TopicListResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []*dto.TopicListResponse{{UserId: userId, Title: "T"}}, nil
}

func (s *stubTopicListService) GetById(ctx context.Context, id string) (*dto.TopicListResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &dto.TopicListResponse{Title: "T", Sections: []*dto.SectionResponse{}}, nil
}

func (s *stubTopicListService) Complete(ctx context.Context, topicId string) (*dto.CompleteTopicResponse, error) {
	s.completeId = topicId
	if s.err != nil {
		return nil, s.err
	}
	return &dto.CompleteTopicResponse{
		Message: "Topic marked as complete",
		Topic:   dto.CompletedTopic{Title: "a", Completed: true},
	}, nil
}

func (s *stubTopicListService) Delete(ctx context.Context, userId uuid.UUID, id string) (*dto.DeleteTopicListResponse, error) {
	s.deletedBy = userId
	if s.err != nil {
		return nil, s.err
	}
	return &dto.DeleteTopicListResponse{Message: "Topic list deleted successfully"}, nil
}

func TestTopicListCreate(t *testing.T) {
	svc := &stubTopicListService{}
	app := newTestApp(NewTopicListController(svc), "/api")
	topicData := `{"title":"T","sections":[{"name":"S","topics":["a","b"]}]}`

	code, body := doRequest(t, app, "POST", "/api/topiclist", map[string]string{"userToken": "tok", "topicData": topicData}, "")
	assert.Equal(t, 200, code)
	assert.Equal(t, "Topic list created successfully", body["message"])
	assert.Equal(t, "tok", svc.created.UserToken)

	for _, payload := range []map[string]interface{}{
		{"topicData": topicData},
		{"userToken": "tok"},
		{"userToken": "tok", "topicData": ""},
		{"userToken": "", "topicData": topicData},
	} {
		code, body = doRequest(t, app, "POST", "/api/topiclist", payload, "")
		assert.Equal(t, 400, code)
		assert.Equal(t, "User Token and topic data are required", body["message"])
	}

	cases := []struct {
		err     error
		code    int
		message string
	}{
		{service.ErrInvalidToken, 401, "Invalid token"},
		{service.ErrInvalidTopicData, 400, "Invalid topic data"},
		{errors.New("tx aborted"), 500, "Failed to create topic list"},
	}
	for _, tc := range cases {
		svc.err = tc.err
		code, body = doRequest(t, app, "POST", "/api/topiclist", map[string]string{"userToken": "tok", "topicData": topicData}, "")
		assert.Equal(t, tc.code, code)
		assert.Equal(t, tc.message, body["message"])
	}
}

func TestTopicListGetById(t *testing.T) {
	svc := &stubTopicListService{}
	app := newTestApp(NewTopicListController(svc), "/api")

	code, body := doRequest(t, app, "GET", "/api/topiclist/"+uuid.NewString(), nil, "")
	assert.Equal(t, 200, code)
	assert.Equal(t, "T", body["title"])

	svc.err = service.ErrTopicListNotFound
	code, body = doRequest(t, app, "GET", "/api/topiclist/"+uuid.NewString(), nil, "")
	assert.Equal(t, 404, code)
	assert.Equal(t, map[string]interface{}{"message": "Topic list not found"}, body)
}

func TestTopicListListRequiresAuth(t *testing.T) {
	svc := &stubTopicListService{}
	app := newTestApp(NewTopicListController(svc), "/api")

	code, _ := doRequest(t, app, "GET", "/api/topiclist", nil, "")
	assert.Equal(t, 401, code)

	code, body := doRequest(t, app, "GET", "/api/topiclist", nil, goodToken)
	assert.Equal(t, 200, code)
	assert.Contains(t, body["_raw"], `"title":"T"`)
	assert.Contains(t, body["_raw"], testUserId.String())
}

func TestTopicListComplete(t *testing.T) {
	svc := &stubTopicListService{}
	app := newTestApp(NewTopicListController(svc), "/api")
	id := uuid.NewString()

	code, body := doRequest(t, app, "POST", "/api/topiclist/complete/"+id, nil, "")
	assert.Equal(t, 200, code)
	assert.Equal(t, "Topic marked as complete", body["message"])
	assert.Equal(t, true, body["topic"].(map[string]interface{})["completed"])
	assert.Equal(t, id, svc.completeId)

	svc.err = service.ErrTopicNotFound
	code, body = doRequest(t, app, "POST", "/api/topiclist/complete/"+id, nil, "")
	assert.Equal(t, 404, code)
	assert.Equal(t, "Topic not found", body["message"])
}

func TestTopicListDelete(t *testing.T) {
	svc := &stubTopicListService{}
	app := newTestApp(NewTopicListController(svc), "/api")
	id := uuid.NewString()

	code, _ := doRequest(t, app, "DELETE", "/api/topiclist/"+id, nil, "")
	assert.Equal(t, 401, code)

	code, body := doRequest(t, app, "DELETE", "/api/topiclist/"+id, nil, goodToken)
	assert.Equal(t, 200, code)
	assert.Equal(t, "Topic list deleted successfully", body["message"])
	assert.Equal(t, testUserId, svc.deletedBy)

	svc.err = service.ErrTopicListNotFound
	code, body = doRequest(t, app, "DELETE", "/api/topiclist/"+id, nil, goodToken)
	assert.Equal(t, 404, code)
	assert.Equal(t, "Topic list not found", body["message"])
}
