package service

import (
	"context"
	"fmt"
	"time"

	"ai-topiclist-be/internal/dto"
	"ai-topiclist-be/internal/entity"
	"ai-topiclist-be/internal/pkg/logger"
	"ai-topiclist-be/internal/repository/specification"
	"ai-topiclist-be/internal/repository/unitofwork"
	"ai-topiclist-be/pkg/events"
	"ai-topiclist-be/pkg/topicdoc"

	"github.com/google/uuid"
)

type ITopicListService interface {
	Create(ctx context.Context, req *dto.CreateTopicListRequest) (*dto.CreateTopicListResponse, error)
	List(ctx context.Context, userId uuid.UUID) ([]*dto.TopicListResponse, error)
	GetById(ctx context.Context, id string) (*dto.TopicListResponse, error)
	Complete(ctx context.Context, topicId string) (*dto.CompleteTopicResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id string) (*dto.DeleteTopicListResponse, error)
}

type topicListService struct {
	uowFactory   unitofwork.RepositoryFactory
	tokenService ITokenService
	publisher    IPublisherService
	log          logger.ILogger
}

func NewTopicListService(
	uowFactory unitofwork.RepositoryFactory,
	tokenService ITokenService,
	publisher IPublisherService,
	log logger.ILogger,
) ITopicListService {
	return &topicListService{
		uowFactory:   uowFactory,
		tokenService: tokenService,
		publisher:    publisher,
		log:          log,
	}
}

// Create stores the list with all its sections and topics atomically.
func (s *topicListService) Create(ctx context.Context, req *dto.CreateTopicListRequest) (*dto.CreateTopicListResponse, error) {
	userId, err := s.tokenService.Verify(ctx, req.UserToken)
	if err != nil {
		return nil, err
	}

	doc, err := topicdoc.ParseRaw(req.TopicData)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTopicData, err)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	now := time.Now()
	list := &entity.TopicList{
		Id:             uuid.New(),
		UserId:         userId,
		Title:          doc.Title,
		SourceDocument: []byte(doc.JSON()),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uow.TopicListRepository().Create(ctx, list); err != nil {
		return nil, err
	}

	for i, sec := range doc.Sections {
		section := &entity.Section{
			Id:          uuid.New(),
			TopicListId: list.Id,
			Name:        sec.Name,
			Position:    i,
		}
		if err := uow.SectionRepository().Create(ctx, section); err != nil {
			return nil, err
		}

		for j, title := range sec.Topics {
			topic := &entity.Topic{
				Id:        uuid.New(),
				SectionId: section.Id,
				Title:     title,
				Position:  j,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := uow.TopicRepository().Create(ctx, topic); err != nil {
				return nil, err
			}
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	publishEvent(ctx, s.publisher, s.log, events.TopicListCreated, map[string]interface{}{
		"topic_list_id": list.Id,
		"user_id":       userId,
		"sections":      len(doc.Sections),
		"topics":        doc.TopicCount(),
	})

	return &dto.CreateTopicListResponse{
		Message:     "Topic list created successfully",
		TopicListId: list.Id,
	}, nil
}

func (s *topicListService) List(ctx context.Context, userId uuid.UUID) ([]*dto.TopicListResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	lists, err := uow.TopicListRepository().FindAllWithSections(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.TopicListResponse, 0, len(lists))
	for _, list := range lists {
		res = append(res, toTopicListResponse(list))
	}
	return res, nil
}

func (s *topicListService) GetById(ctx context.Context, id string) (*dto.TopicListResponse, error) {
	listId, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrTopicListNotFound
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	list, err := uow.TopicListRepository().FindOneDetailed(ctx, specification.ByID{ID: listId})
	if err != nil {
		return nil, err
	}
	if list == nil {
		return nil, ErrTopicListNotFound
	}
	return toTopicListResponse(list), nil
}

// Complete is idempotent; the update runs on every call.
func (s *topicListService) Complete(ctx context.Context, topicId string) (*dto.CompleteTopicResponse, error) {
	id, err := uuid.Parse(topicId)
	if err != nil {
		return nil, ErrTopicNotFound
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	topic, err := uow.TopicRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if topic == nil {
		return nil, ErrTopicNotFound
	}

	if err := uow.TopicRepository().MarkCompleted(ctx, topic); err != nil {
		return nil, err
	}

	publishEvent(ctx, s.publisher, s.log, events.TopicCompleted, map[string]interface{}{
		"topic_id":   topic.Id,
		"section_id": topic.SectionId,
	})

	return &dto.CompleteTopicResponse{
		Message: "Topic marked as complete",
		Topic: dto.CompletedTopic{
			Id:        topic.Id,
			Title:     topic.Title,
			Completed: topic.Completed,
		},
	}, nil
}

// Delete only touches rows owned by userId; anything else reads as not found.
func (s *topicListService) Delete(ctx context.Context, userId uuid.UUID, id string) (*dto.DeleteTopicListResponse, error) {
	listId, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrTopicListNotFound
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	deleted, err := uow.TopicListRepository().Delete(ctx,
		specification.ByID{ID: listId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if deleted == 0 {
		return nil, ErrTopicListNotFound
	}

	publishEvent(ctx, s.publisher, s.log, events.TopicListDeleted, map[string]interface{}{
		"topic_list_id": listId,
		"user_id":       userId,
	})

	return &dto.DeleteTopicListResponse{
		Message:     "Topic list deleted successfully",
		TopicListId: listId,
	}, nil
}

func toTopicListResponse(list *entity.TopicList) *dto.TopicListResponse {
	res := &dto.TopicListResponse{
		Id:        list.Id,
		UserId:    list.UserId,
		Title:     list.Title,
		CreatedAt: list.CreatedAt,
		UpdatedAt: list.UpdatedAt,
		Sections:  make([]*dto.SectionResponse, 0, len(list.Sections)),
	}
	for _, section := range list.Sections {
		sec := &dto.SectionResponse{
			Id:          section.Id,
			TopicListId: section.TopicListId,
			Name:        section.Name,
		}
		for _, topic := range section.Topics {
			sec.Topics = append(sec.Topics, &dto.TopicResponse{
				Id:        topic.Id,
				Title:     topic.Title,
				Completed: topic.Completed,
				CreatedAt: topic.CreatedAt,
				UpdatedAt: topic.UpdatedAt,
			})
		}
		res.Sections = append(res.Sections, sec)
	}
	return res
}
