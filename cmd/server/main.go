package main

import (
	"log"

	"github.com/AshishSharma-0610/form-builder/internal/cache"
	"github.com/AshishSharma-0610/form-builder/internal/config"
	"github.com/AshishSharma-0610/form-builder/internal/handlers"
	"github.com/AshishSharma-0610/form-builder/internal/repositories/postgres"
	"github.com/AshishSharma-0610/form-builder/internal/services"
	"github.com/AshishSharma-0610/form-builder/internal/utils"
	"github.com/AshishSharma-0610/form-builder/internal/validator"
	"github.com/AshishSharma-0610/form-builder/pkg"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	var logger utils.Logger
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
		logger = utils.NewDefaultLogger()
	} else {
		logger = utils.NewDevelopmentLogger()
	}

	db, err := pkg.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	if err := postgres.AutoMigrate(db); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	redisClient, err := pkg.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	defer redisClient.Close()

	slogLogger := logger.(*utils.SlogLogger).GetSlogLogger()
	cacheService := cache.NewRedisCache(redisClient)

	publisher, err := cfg.Events.CreateEventPublisher(slogLogger)
	if err != nil {
		log.Fatalf("failed to create event publisher: %v", err)
	}
	defer publisher.Close()

	repo := postgres.NewStore(db)
	v := validator.New()

	serviceManager := services.NewServiceManager(repo, cacheService, publisher, slogLogger, v)
	handlerManager := handlers.NewHandlerManager(serviceManager, v, logger)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.LoggerMiddleware(logger))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.AllowedOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	handlerManager.SetupRoutes(router)

	logger.Info("starting server", "port", cfg.Port, "environment", cfg.Environment)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
