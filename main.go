// main.go
package main

import (
	"context"
	"log"

	"movies-api/cmd"
	"movies-api/internal/data/repository"
	"movies-api/internal/data/seed"
	"movies-api/internal/wire"
	"movies-api/pkg/utils"

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
	zap.ReplaceGlobals(logger)

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
		zap.Strings("allowed_origins", config.CORS.AllowedOrigins),
	)

	// Load seed movies
	movies, err := seed.Load(config.Seed.File)
	if err != nil {
		logger.Fatal("Failed to load seed movies", zap.Error(err), zap.String("seed_file", config.Seed.File))
	}

	// Initialize all repositories
	repos := repository.NewRepository(movies, logger)

	logger.Info("Movie collection ready", zap.Int("count", repos.Movie.Count(context.Background())))

	// Wire all dependencies
	app := wire.Wiring(repos, config, logger)

	if err := cmd.APIServer(app.Router, config.App.Port, config.App.ShutdownTimeout, logger); err != nil {
		logger.Fatal("Server stopped", zap.Error(err))
	}

	logger.Info("Server stopped")
}
