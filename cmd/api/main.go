package main

import (
	"context"
	"flag"

	"github.com/oyasar/assist/internal/bootstrap"
	"github.com/oyasar/assist/internal/pkg/logger"
	"github.com/oyasar/assist/internal/server"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to the configuration file")
	migrationsDir := flag.String("migrations", "migrations", "path to the migrations directory")
	flag.Parse()

	cfg, err := bootstrap.LoadConfigAndSetupLogger(*configPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load configuration")
	}

	ctx := context.Background()

	database, err := bootstrap.SetupDatabase(ctx, cfg, *migrationsDir)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to set up database")
	}
	defer database.Close()

	app, err := bootstrap.BuildApplication(ctx, cfg, database)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to build application")
	}

	srv := server.New(app.Router, cfg.Server.Port)
	if err := srv.Run(); err != nil {
		logger.Fatal().Err(err).Msg("Server exited with error")
	}
}
