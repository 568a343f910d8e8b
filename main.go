// main.go
package main

import (
	"context"
	"log"

	"estate-marketplace/cmd"
	"estate-marketplace/internal/data/repository"
	"estate-marketplace/internal/wire"
	"estate-marketplace/migrations"
	"estate-marketplace/pkg/auth"
	"estate-marketplace/pkg/database"
	"estate-marketplace/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
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

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Apply pending schema migrations
	migrator, err := database.NewMigrator(db, migrations.FS)
	if err != nil {
		logger.Fatal("Failed to init migrator", zap.Error(err))
	}
	if err := migrator.Run(context.Background()); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}
	if version, err := migrator.Version(context.Background()); err == nil {
		logger.Info("Schema up to date", zap.Int64("version", version))
	}
	if err := migrator.Close(); err != nil {
		logger.Warn("Failed to close migrator", zap.Error(err))
	}

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Token manager for issuing and verifying access tokens
	tokens := auth.NewTokenManager(config.JWT)

	// Wire all dependencies
	app := wire.Wiring(repos, config, tokens, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
