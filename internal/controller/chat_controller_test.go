package controller

import (
	"context"
	"fmt"
	"testing"

	"ai-topiclist-be/internal/dto"
	"ai-topiclist-be/internal/service"
	"ai-topiclist-be/pkg/topicdoc"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type stubChatService struct {
	sessionId uuid.UUID
	getErr    error
	postErr   error
}

func (s *stubChatService) CreateSession(ctx context.Context, userId uuid.UUID) (*dto.CreateSessionResponse, error) {
	return &dto.CreateSessionResponse{Message: "Chat session created successfully", SessionId: s.sessionId}, nil
}

func (s *stubChatService) ListSessions(ctx context.Context, userId uuid.UUID) ([]*dto.ChatSessionResponse, error) {
	return []*dto.ChatSessionResponse{{Id: s.sessionId, UserId: userId}}, nil
}

func (s *stubChatService) GetSession(ctx context.Context, userId uuid.UUID, sessionId string) (*dto.ChatSessionResponse, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return &dto.ChatSessionResponse{Id: s.sessionId, UserId: userId, Messages: []*dto.ChatMessageResponse{}}, nil
}

func (s *stubChatService) PostMessage(ctx context.Context, req *dto.SendChatRequest) (*dto.SendChatResponse, error) {
	if s.postErr != nil {
		return nil, s.postErr
	}
	return &dto.SendChatResponse{
		Message:     "Response generated successfully",
		UserMessage: &dto.ChatMessageResponse{Role: "user", Content: req.Message},
		AiMessage:   `{"title":"T","sections":[]}`,
	}, nil
}

func TestChatSessionRoutes(t *testing.T) {
	svc := &stubChatService{sessionId: uuid.New()}
	app := newTestApp(NewChatController(svc), "/api")

	code, _ := doRequest(t, app, "POST", "/api/chat/session", nil, "")
	assert.Equal(t, 401, code)

	code, body := doRequest(t, app, "POST", "/api/chat/session", nil, goodToken)
	assert.Equal(t, 200, code)
	assert.Equal(t, "Chat session created successfully", body["message"])
	assert.Equal(t, svc.sessionId.String(), body["sessionId"])

	code, body = doRequest(t, app, "GET", "/api/chat/session/"+svc.sessionId.String(), nil, goodToken)
	assert.Equal(t, 200, code)
	assert.Equal(t, testUserId.String(), body["userId"])

	svc.getErr = service.ErrSessionNotFound
	code, body = doRequest(t, app, "GET", "/api/chat/session/"+uuid.NewString(), nil, goodToken)
	assert.Equal(t, 404, code)
	assert.Equal(t, map[string]interface{}{"message": "Chat session not found"}, body)
}

func TestChatPostMessage(t *testing.T) {
	svc := &stubChatService{}
	app := newTestApp(NewChatController(svc), "/api")

	code, body := doRequest(t, app, "POST", "/api/chat", map[string]string{"sessionId": uuid.NewString(), "message": "Go"}, "")
	assert.Equal(t, 200, code)
	assert.Equal(t, "Response generated successfully", body["message"])
	assert.Equal(t, `{"title":"T","sections":[]}`, body["aiMessage"])

	code, body = doRequest(t, app, "POST", "/api/chat", map[string]string{"message": "Go"}, "")
	assert.Equal(t, 400, code)
	assert.Equal(t, "Session ID and message are required", body["message"])

	cases := []struct {
		err     error
		code    int
		message string
	}{
		{service.ErrSessionNotFound, 404, "Chat session not found"},
		{fmt.Errorf("%w: quota", service.ErrAIUnavailable), 500, "Failed to generate AI response"},
		{fmt.Errorf("%w: no JSON object found", topicdoc.ErrMalformed), 500, "Failed to parse AI response"},
		{fmt.Errorf("db down"), 500, "Internal server error"},
	}
	for _, tc := range cases {
		svc.postErr = tc.err
		code, body = doRequest(t, app, "POST", "/api/chat", map[string]string{"sessionId": uuid.NewString(), "message": "Go"}, "")
		assert.Equal(t, tc.code, code, tc.err.Error())
		assert.Equal(t, map[string]interface{}{"message": tc.message}, body)
	}
}
