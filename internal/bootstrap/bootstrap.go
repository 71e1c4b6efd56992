package bootstrap

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	appauth "github.com/oyasar/assist/internal/app/auth"
	"github.com/oyasar/assist/internal/app/controllers"
	"github.com/oyasar/assist/internal/app/migrations"
	"github.com/oyasar/assist/internal/app/repositories"
	"github.com/oyasar/assist/internal/app/routes"
	"github.com/oyasar/assist/internal/app/services"
	"github.com/oyasar/assist/internal/config"
	"github.com/oyasar/assist/internal/db"
	"github.com/oyasar/assist/internal/middleware"
	"github.com/oyasar/assist/internal/pkg/auth"
	"github.com/oyasar/assist/internal/pkg/filestorage"
	"github.com/oyasar/assist/internal/pkg/helpers"
	"github.com/oyasar/assist/internal/pkg/logger"
	"github.com/oyasar/assist/internal/seed"
)

// Application holds the wired dependency graph.
type Application struct {
	Config       *config.Config
	DB           *db.PostgresDB
	Repositories *repositories.Repositories
	Services     *services.Services
	Controllers  *controllers.Controllers
	JWTService   *auth.JWTService
	Router       *gin.Engine
}

// LoadConfigAndSetupLogger loads configuration and configures the global
// logger from it.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(cfg.Logging.Level),
		Pretty: cfg.Logging.Format != "json",
	})

	return cfg, nil
}

// SetupDatabase connects to PostgreSQL and applies pending migrations.
func SetupDatabase(ctx context.Context, cfg *config.Config, migrationsDir string) (*db.PostgresDB, error) {
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		return nil, err
	}

	migrator := migrations.NewMigrator(database.Pool, migrationsDir)
	if err := migrator.Run(ctx); err != nil {
		database.Close()
		return nil, err
	}

	return database, nil
}

// BuildApplication wires repositories, services, controllers and routes, and
// seeds the default data the system depends on.
func BuildApplication(ctx context.Context, cfg *config.Config, database *db.PostgresDB) (*Application, error) {
	tokenExp := helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, time.Hour)
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: tokenExp,
		TokenIssuer:    cfg.JWT.Issuer,
	})

	fileStorage, err := filestorage.NewLocalStorage(cfg.Server.StoragePath, "/uploads")
	if err != nil {
		return nil, err
	}

	repos := repositories.NewRepositories(database.Pool)
	svc := services.NewServices(repos, jwtService, fileStorage, cfg)
	ctrl := controllers.NewControllers(svc, fileStorage)

	if err := seed.CreateDefaultData(ctx, repos, svc.ProvisioningService); err != nil {
		return nil, err
	}

	if cfg.Server.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.ErrorHandler())
	router.Static("/uploads", cfg.Server.StoragePath)

	authorizer := appauth.NewAuthorizer(repos.GroupRepository)
	routes.SetupRoutes(router, ctrl, jwtService, repos.UserRepository, authorizer)

	return &Application{
		Config:       cfg,
		DB:           database,
		Repositories: repos,
		Services:     svc,
		Controllers:  ctrl,
		JWTService:   jwtService,
		Router:       router,
	}, nil
}
