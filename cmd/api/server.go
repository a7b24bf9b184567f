package main

import (
	"fmt"
	"strings"

	"learnhub/internal/config"
	"learnhub/internal/domain"
	"learnhub/internal/handler"
	"learnhub/internal/middleware"
	"learnhub/internal/repository"
	"learnhub/internal/service"
	"learnhub/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/jmoiron/sqlx"
)

// newApp wires repositories, services and handlers into a Fiber app.
// quizCache may be nil, in which case quiz reads go straight to the database.
func newApp(cfg *config.Config, db *sqlx.DB, quizCache domain.Cache) (*fiber.App, error) {
	quizRepository := repository.NewQuizDatabaseAdapter(db)
	moduleRepository := repository.NewModuleDatabaseAdapter(db)
	txManager := repository.NewTransactionManagerAdapter(db)

	var quizCacheService service.QuizCacheService
	if quizCache != nil {
		quizCacheService = service.NewQuizCacheService(quizCache, quizRepository, cfg.Redis.QuizTTL)
	}
	quizService := service.NewQuizService(quizRepository, moduleRepository, txManager, domain.NewRolePolicy(), quizCacheService)

	authService, err := service.NewAuthService(cfg.JWT)
	if err != nil {
		return nil, fmt.Errorf("failed to create auth service: %w", err)
	}

	validator := validation.NewValidator()
	quizHandler := handler.NewQuizHandler(quizService, validator)
	healthHandler := handler.NewHealthHandler(db, quizCache)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		BodyLimit:    cfg.Server.BodyLimit,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(middleware.RequestID())
	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.CORS.AllowOrigins,
		AllowMethods:  "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:  strings.Join([]string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader}, ","),
		ExposeHeaders: middleware.RequestIDHeader,
		MaxAge:        300,
	}))
	app.Use(recover.New())

	app.Get("/health", healthHandler.Health)
	app.Get("/swagger/*", swagger.HandlerDefault)

	api := app.Group("/api", middleware.Protected(authService))
	handler.RegisterQuizRoutes(api, quizHandler, middleware.NewValidationMiddleware(validator))

	return app, nil
}
