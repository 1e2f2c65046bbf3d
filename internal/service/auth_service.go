package service

import (
	"context"
	"errors"
	"time"

	"ai-topiclist-be/internal/dto"
	"ai-topiclist-be/internal/entity"
	"ai-topiclist-be/internal/pkg/logger"
	"ai-topiclist-be/internal/repository/specification"
	"ai-topiclist-be/internal/repository/unitofwork"
	"ai-topiclist-be/pkg/events"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	GetProfile(ctx context.Context, userId uuid.UUID) (*dto.ProfileResponse, error)
	UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UpdateProfileResponse, error)
	Logout(ctx context.Context, token string) error
}

type authService struct {
	uowFactory   unitofwork.RepositoryFactory
	tokenService ITokenService
	publisher    IPublisherService
	log          logger.ILogger
	bcryptCost   int
}

func NewAuthService(
	uowFactory unitofwork.RepositoryFactory,
	tokenService ITokenService,
	publisher IPublisherService,
	log logger.ILogger,
) IAuthService {
	return &authService{
		uowFactory:   uowFactory,
		tokenService: tokenService,
		publisher:    publisher,
		log:          log,
		bcryptCost:   bcrypt.DefaultCost,
	}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &entity.User{
		Id:           uuid.New(),
		Email:        req.Email,
		PasswordHash: string(hash),
		DisplayName:  req.DisplayName,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		// Lost the race against a concurrent register for the same email.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUserExists
		}
		return nil, err
	}

	publishEvent(ctx, s.publisher, s.log, events.UserRegistered, map[string]interface{}{
		"user_id": user.Id,
		"email":   user.Email,
	})

	return &dto.RegisterResponse{
		Message: "User registered successfully",
		UserId:  user.Id,
	}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokenService.Issue(user.Id)
	if err != nil {
		return nil, err
	}

	publishEvent(ctx, s.publisher, s.log, events.UserLogin, map[string]interface{}{
		"user_id": user.Id,
	})

	return &dto.LoginResponse{
		Message: "Login successful",
		Token:   token,
	}, nil
}

func (s *authService) GetProfile(ctx context.Context, userId uuid.UUID) (*dto.ProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return &dto.ProfileResponse{
		Id:             user.Id,
		Email:          user.Email,
		DisplayName:    user.DisplayName,
		ProfilePicture: user.ProfilePicture,
		CreatedAt:      user.CreatedAt,
		UpdatedAt:      user.UpdatedAt,
	}, nil
}

func (s *authService) UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UpdateProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if req.Email != user.Email {
		taken, err := uow.UserRepository().Count(ctx,
			specification.ByEmail{Email: req.Email},
			specification.ExcludeID{ID: user.Id},
		)
		if err != nil {
			return nil, err
		}
		if taken > 0 {
			return nil, ErrEmailInUse
		}
	}

	user.DisplayName = req.DisplayName
	user.Email = req.Email
	if req.ProfilePicture.Set {
		user.ProfilePicture = req.ProfilePicture.Value
	}

	if err := uow.UserRepository().Update(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailInUse
		}
		return nil, err
	}

	return &dto.UpdateProfileResponse{
		Id:             user.Id,
		Email:          user.Email,
		DisplayName:    user.DisplayName,
		ProfilePicture: user.ProfilePicture,
	}, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	return s.tokenService.Revoke(ctx, token)
}
