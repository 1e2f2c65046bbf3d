package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"ai-topiclist-be/internal/bootstrap"
	"ai-topiclist-be/internal/config"
	"ai-topiclist-be/internal/server"
	"ai-topiclist-be/internal/tracer"
	"ai-topiclist-be/pkg/database"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 1. Load Configuration
	cfg := config.Load()
	if cfg.IsProduction() && cfg.Auth.JwtSecret == "default_secret" {
		log.Fatal("JWT_SECRET must be set in production")
	}

	// 2. Initialize Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container, err := bootstrap.NewContainer(ctx, gormDB, cfg)
	if err != nil {
		log.Fatalf("Failed to bootstrap: %v", err)
	}
	defer container.Close()

	// 4. Tracer
	shutdownTracer := tracer.InitTracer(ctx, container.Logger)
	defer shutdownTracer(context.Background())

	// 5. Start Background Services
	if err := container.ConsumerService.Consume(ctx); err != nil {
		container.Logger.Error("main", "Consumer failed to start", map[string]interface{}{"error": err})
	}

	// 6. Initialize Server
	srv := server.New(cfg, container)

	go func() {
		<-ctx.Done()
		if err := srv.Shutdown(); err != nil {
			container.Logger.Error("main", "Server shutdown failed", map[string]interface{}{"error": err})
		}
	}()

	// 7. Run Server
	if err := srv.Run(); err != nil {
		container.Logger.Error("main", "Server stopped", map[string]interface{}{"error": err})
	}
}
