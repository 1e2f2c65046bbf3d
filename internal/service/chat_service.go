package service

import (
	"context"
	"fmt"
	"time"

	"ai-topiclist-be/internal/constant"
	"ai-topiclist-be/internal/dto"
	"ai-topiclist-be/internal/entity"
	"ai-topiclist-be/internal/pkg/logger"
	"ai-topiclist-be/internal/repository/specification"
	"ai-topiclist-be/internal/repository/unitofwork"
	"ai-topiclist-be/pkg/llm"
	"ai-topiclist-be/pkg/topicdoc"

	"github.com/google/uuid"
)

type IChatService interface {
	CreateSession(ctx context.Context, userId uuid.UUID) (*dto.CreateSessionResponse, error)
	ListSessions(ctx context.Context, userId uuid.UUID) ([]*dto.ChatSessionResponse, error)
	GetSession(ctx context.Context, userId uuid.UUID, sessionId string) (*dto.ChatSessionResponse, error)
	PostMessage(ctx context.Context, req *dto.SendChatRequest) (*dto.SendChatResponse, error)
}

type chatService struct {
	uowFactory  unitofwork.RepositoryFactory
	llmProvider llm.LLMProvider
	log         logger.ILogger
}

func NewChatService(uowFactory unitofwork.RepositoryFactory, llmProvider llm.LLMProvider, log logger.ILogger) IChatService {
	return &chatService{
		uowFactory:  uowFactory,
		llmProvider: llmProvider,
		log:         log,
	}
}

func (s *chatService) CreateSession(ctx context.Context, userId uuid.UUID) (*dto.CreateSessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session := &entity.ChatSession{
		Id:        uuid.New(),
		UserId:    userId,
		CreatedAt: time.Now(),
	}
	if err := uow.ChatSessionRepository().Create(ctx, session); err != nil {
		return nil, err
	}

	return &dto.CreateSessionResponse{
		Message:   "Chat session created successfully",
		SessionId: session.Id,
	}, nil
}

func (s *chatService) ListSessions(ctx context.Context, userId uuid.UUID) ([]*dto.ChatSessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sessions, err := uow.ChatSessionRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.ChatSessionResponse, 0, len(sessions))
	for _, session := range sessions {
		res = append(res, toChatSessionResponse(session))
	}
	return res, nil
}

func (s *chatService) GetSession(ctx context.Context, userId uuid.UUID, sessionId string) (*dto.ChatSessionResponse, error) {
	id, err := uuid.Parse(sessionId)
	if err != nil {
		return nil, ErrSessionNotFound
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, err := uow.ChatSessionRepository().FindOneWithMessages(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	res := toChatSessionResponse(session)
	res.Messages = make([]*dto.ChatMessageResponse, 0, len(session.Messages))
	for _, msg := range session.Messages {
		res.Messages = append(res.Messages, toChatMessageResponse(msg))
	}
	return res, nil
}

func (s *chatService) PostMessage(ctx context.Context, req *dto.SendChatRequest) (*dto.SendChatResponse, error) {
	sessionId, err := uuid.Parse(req.SessionId)
	if err != nil {
		return nil, ErrSessionNotFound
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, err := uow.ChatSessionRepository().FindOne(ctx, specification.ByID{ID: sessionId})
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	userMessage := &entity.ChatMessage{
		Id:        uuid.New(),
		SessionId: session.Id,
		Role:      entity.ChatRoleUser,
		Content:   req.Message,
		CreatedAt: time.Now(),
	}
	if err := uow.ChatMessageRepository().Create(ctx, userMessage); err != nil {
		return nil, err
	}

	reply, err := s.llmProvider.Generate(ctx, constant.TopicListPrompt(req.Message),
		llm.WithTemperature(constant.TopicModelTemperature),
		llm.WithMaxTokens(constant.TopicModelMaxTokens),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAIUnavailable, err)
	}

	doc, err := topicdoc.Parse(reply)
	if err != nil {
		s.log.Warn("chat", "Unusable AI reply", map[string]interface{}{
			"error":      err,
			"session_id": session.Id,
			"reply_len":  len(reply),
		})
		return nil, err
	}

	canonical := doc.JSON()
	aiMessage := &entity.ChatMessage{
		Id:        uuid.New(),
		SessionId: session.Id,
		Role:      entity.ChatRoleAI,
		Content:   canonical,
		CreatedAt: time.Now(),
	}
	if err := uow.ChatMessageRepository().Create(ctx, aiMessage); err != nil {
		return nil, err
	}

	return &dto.SendChatResponse{
		Message:     "Response generated successfully",
		UserMessage: toChatMessageResponse(userMessage),
		AiMessage:   canonical,
	}, nil
}

func toChatSessionResponse(session *entity.ChatSession) *dto.ChatSessionResponse {
	return &dto.ChatSessionResponse{
		Id:        session.Id,
		UserId:    session.UserId,
		CreatedAt: session.CreatedAt,
	}
}

func toChatMessageResponse(msg *entity.ChatMessage) *dto.ChatMessageResponse {
	return &dto.ChatMessageResponse{
		Id:        msg.Id,
		SessionId: msg.SessionId,
		Role:      string(msg.Role),
		Content:   msg.Content,
		CreatedAt: msg.CreatedAt,
	}
}
