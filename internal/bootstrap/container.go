package bootstrap

import (
	"context"
	"fmt"

	"ai-topiclist-be/internal/config"
	"ai-topiclist-be/internal/controller"
	"ai-topiclist-be/internal/pkg/logger"
	"ai-topiclist-be/internal/repository/contract"
	"ai-topiclist-be/internal/repository/implementation"
	"ai-topiclist-be/internal/repository/memory"
	"ai-topiclist-be/internal/repository/unitofwork"
	"ai-topiclist-be/internal/service"
	"ai-topiclist-be/pkg/llm/factory"
	pktNats "ai-topiclist-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	Logger       *logger.ZapLogger
	TokenService service.ITokenService

	// Controllers
	AuthController      controller.IAuthController
	ChatController      controller.IChatController
	TopicListController controller.ITopicListController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	closers []func() error
}

func NewContainer(ctx context.Context, db *gorm.DB, cfg *config.Config) (*Container, error) {
	c := &Container{}

	// 1. Core Facades
	c.Logger = logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	uowFactory := unitofwork.NewRepositoryFactory(db)

	// 2. Token revocation: Redis when configured, otherwise process memory
	revocations := c.newRevocationStore(ctx, cfg)
	c.TokenService = service.NewTokenService(cfg.Auth.JwtSecret, cfg.Auth.TokenTTL, revocations)

	// 3. Event Bus
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, logger.NewWatermillAdapter(c.Logger))
	c.closers = append(c.closers, pubSub.Close)

	var forwarder service.EventForwarder
	if cfg.Events.NatsURL != "" {
		natsPub, err := pktNats.NewPublisher(ctx, cfg.Events.NatsURL)
		if err != nil {
			c.Logger.Warn("bootstrap", "NATS unavailable, events stay in-process", map[string]interface{}{"error": err})
		} else {
			forwarder = natsPub
			c.closers = append(c.closers, func() error { natsPub.Close(); return nil })
		}
	}

	publisherService := service.NewPublisherService(cfg.Events.Topic, pubSub)
	c.ConsumerService = service.NewConsumerService(pubSub, cfg.Events.Topic, forwarder, c.Logger)

	// 4. LLM
	llmProvider, err := factory.NewLLMProvider(ctx, factory.Settings{
		Provider: cfg.Ai.LLMProvider,
		Model:    cfg.Ai.LLMModel,
		APIKey:   cfg.Keys.GoogleGemini,
		BaseURL:  cfg.Ai.OllamaBaseURL,
	})
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("init llm provider: %w", err)
	}
	c.closers = append(c.closers, llmProvider.Close)
	c.Logger.Info("bootstrap", "LLM provider ready", map[string]interface{}{
		"provider": cfg.Ai.LLMProvider,
		"model":    cfg.Ai.LLMModel,
	})

	// 5. Services
	authService := service.NewAuthService(uowFactory, c.TokenService, publisherService, c.Logger)
	chatService := service.NewChatService(uowFactory, llmProvider, c.Logger)
	topicListService := service.NewTopicListService(uowFactory, c.TokenService, publisherService, c.Logger)

	// 6. Controllers
	c.AuthController = controller.NewAuthController(authService)
	c.ChatController = controller.NewChatController(chatService)
	c.TopicListController = controller.NewTopicListController(topicListService)

	return c, nil
}

func (c *Container) newRevocationStore(ctx context.Context, cfg *config.Config) contract.TokenRevocationRepository {
	if cfg.App.RedisURL == "" {
		return memory.NewRevocationRepository()
	}

	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		c.Logger.Warn("bootstrap", "Failed to parse Redis URL, using direct Addr", map[string]interface{}{"error": err})
		opt = &redis.Options{Addr: cfg.App.RedisURL}
	}
	rdb := redis.NewClient(opt)
	if err := rdb.Ping(ctx).Err(); err != nil {
		c.Logger.Warn("bootstrap", "Redis unreachable, using in-memory revocation list", map[string]interface{}{"error": err})
		_ = rdb.Close()
		return memory.NewRevocationRepository()
	}

	c.closers = append(c.closers, rdb.Close)
	return implementation.NewRedisRevocationRepository(rdb)
}

// Close releases infrastructure in reverse order of creation.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil && c.Logger != nil {
			c.Logger.Warn("bootstrap", "Close failed", map[string]interface{}{"error": err})
		}
	}
	c.closers = nil
	if c.Logger != nil {
		_ = c.Logger.Sync()
	}
}
