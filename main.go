// main.go
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"biograf/cmd"
	"biograf/internal/data/entity"
	"biograf/internal/data/repository"
	"biograf/internal/usecase"
	"biograf/internal/wire"
	"biograf/pkg/cache"
	"biograf/pkg/database"
	"biograf/pkg/events"
	"biograf/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Name, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Connect to database
	db, err := database.InitDB(ctx, config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	if config.Database.Migrate {
		if err := database.Migrate(ctx, db); err != nil {
			logger.Fatal("Failed to apply schema", zap.Error(err))
		}
		logger.Info("Database schema applied")
	}

	// Optional infrastructure
	rdb := cache.NewRedisClient(config.Redis, logger)
	if rdb != nil {
		defer rdb.Close()
	}

	publisher, err := events.NewPublisher(config.RabbitMQ, logger)
	if err != nil {
		logger.Warn("RabbitMQ unavailable, events disabled", zap.Error(err))
		publisher = events.NoopPublisher{}
	}
	defer publisher.Close()

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, config, wire.Infra{
		Infra: usecase.Infra{
			ShowtimeCache: cache.NewStore[entity.ShowtimeDetails](rdb, "showtime:details", config.Redis.CacheTTL, logger),
			Events:        publisher,
		},
		Redis: rdb,
	}, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	if err := cmd.APIServer(ctx, app.Router, config.App.Port, logger); err != nil {
		logger.Error("Server error", zap.Error(err))
	}
}
