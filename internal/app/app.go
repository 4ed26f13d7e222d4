package app

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"stayhub_backend/database"
	"stayhub_backend/internal/config"
	"stayhub_backend/internal/email"
	"stayhub_backend/internal/handlers"
	"stayhub_backend/internal/logger"
	"stayhub_backend/internal/middleware"
	"stayhub_backend/internal/routes"
	"stayhub_backend/internal/services"
	"stayhub_backend/internal/storage"
)

// Run boots the whole application: config, logging, database, services
// and the HTTP server.
func Run() error {
	config.LoadConfig()
	cfg := config.GetConfig()

	logger.Init(cfg.Server.Env)

	db, err := database.ConnectGorm(cfg.Database.DSN)
	if err != nil {
		return err
	}
	if err := database.Migrate(db); err != nil {
		return err
	}

	router, err := SetupRouter(db, cfg)
	if err != nil {
		return err
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("server starting", "addr", addr, "env", cfg.Server.Env)
	return router.Run(addr)
}

// SetupRouter builds the gin engine with every dependency wired.
// Tests call it with their own database handle.
func SetupRouter(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	store, err := storage.NewStorage(storage.Config{
		Type:     cfg.Storage.Type,
		BasePath: cfg.Storage.BasePath,
		BaseURL:  cfg.Storage.BaseURL,
	})
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}

	mailer, err := email.NewSMTPProvider(cfg)
	if err != nil {
		return nil, fmt.Errorf("init mailer: %w", err)
	}

	container := services.NewServiceContainer(mailer)
	appHandlers := handlers.NewAppHandlers(container, store)

	if cfg.Server.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))

	routes.SetupRoutes(router, appHandlers)
	return router, nil
}
