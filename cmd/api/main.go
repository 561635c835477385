package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"meetspace/internal/config"
	"meetspace/internal/database"
	"meetspace/internal/middleware"
	"meetspace/internal/modules/assistant"
	"meetspace/internal/modules/auth"
	"meetspace/internal/modules/booking"
	"meetspace/internal/modules/catalog"
	"meetspace/internal/modules/description"
	"meetspace/internal/pkg/gemini"
	jwtsvc "meetspace/internal/pkg/jwt"
	"meetspace/internal/pkg/languagetool"
	"meetspace/internal/pkg/logger"
	"meetspace/internal/repository"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	zlog, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zlog.Sync() }()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	floorRepo := repository.NewFloorRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, time.Hour)

	genClient := gemini.New(cfg.GeminiAPIKey, cfg.GeminiModel)
	grammarClient := languagetool.New(cfg.LanguageToolURL)
	pipeline := description.NewPipeline(
		genClient,
		grammarClient,
		zlog.Named("description"),
		cfg.MaxAttempts,
		cfg.MaxGrammarIssues,
		cfg.MinReadability,
	)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(roomRepo, floorRepo, pipeline)
	catalogHandler := catalog.NewHandler(catalogService)

	bookingService := booking.NewService(roomRepo)
	bookingHandler := booking.NewHandler(bookingService)

	assistantService := assistant.NewService(genClient, catalogService)
	assistantHandler := assistant.NewHandler(assistantService)

	r := gin.New()
	r.Use(middleware.RequestLogger(zlog.Named("http")))
	r.Use(middleware.CORS())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)
		catalogHandler.RegisterRoutes(v1)
		bookingHandler.RegisterPublicRoutes(v1)
		assistantHandler.RegisterRoutes(v1)

		// protected
		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			bookingHandler.RegisterRoutes(protected)
			catalogHandler.RegisterProtectedRoutes(protected)
		}
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
