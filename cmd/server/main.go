package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/campuskit/coursegen-service/internal/cache"
	"github.com/campuskit/coursegen-service/internal/config"
	"github.com/campuskit/coursegen-service/internal/extract"
	"github.com/campuskit/coursegen-service/internal/generation"
	"github.com/campuskit/coursegen-service/internal/handlers"
	"github.com/campuskit/coursegen-service/internal/models"
	"github.com/campuskit/coursegen-service/internal/render"
	"github.com/campuskit/coursegen-service/internal/repositories/postgres"
	"github.com/campuskit/coursegen-service/internal/services"
	"github.com/campuskit/coursegen-service/internal/utils"
	"github.com/campuskit/coursegen-service/internal/validator"
	"github.com/campuskit/coursegen-service/pkg"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
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
		log.Fatalf("failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Course{},
		&models.CourseSection{},
		&models.StoredFile{},
		&models.Artifact{},
		&models.Quiz{},
		&models.QuizQuestion{},
	); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	var cacheService cache.CacheService
	redisClient, err := pkg.NewRedisClient(cfg)
	if err != nil {
		logger.Warn("redis unavailable, course file listings will not be cached", "error", err)
	} else {
		cacheService = cache.NewRedisCache(redisClient, logger)
		defer redisClient.Close()
	}

	publisher, err := cfg.Events.CreateEventPublisher(utils.ToSlogLogger(logger))
	if err != nil {
		log.Fatalf("failed to create event publisher: %v", err)
	}
	defer publisher.Close()

	client, err := generation.NewGroqClient(cfg.Generation)
	if err != nil {
		log.Fatalf("failed to create generation client: %v", err)
	}

	courseRepo := postgres.NewCoursePostgreSQL(db)
	artifactRepo := postgres.NewArtifactPostgreSQL(db)
	quizRepo := postgres.NewQuizPostgreSQL(db)

	v := validator.New()
	extractor := extract.NewExtractor(cfg.ScratchDir, logger)
	renderer := render.NewPDFRenderer()

	courseService := services.NewCourseService(courseRepo, cacheService, logger)
	bankService := services.NewQuestionBankService(
		courseRepo, artifactRepo, client, renderer, publisher, v, logger)
	quizService := services.NewQuizService(
		courseRepo, quizRepo, extractor, client, publisher, v, logger)
	chatService := services.NewChatService(client, v, logger)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.LoggerMiddleware(logger))

	handlers.NewHandlerManager(courseService, bankService, quizService, chatService, logger).
		SetupRoutes(router)

	logger.Info("server starting", "port", cfg.Port, "environment", cfg.Environment)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
