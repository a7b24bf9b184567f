// @title LearnHub Quiz API
// @version 1.0
// @description Quiz authoring and grading for LearnHub course modules.
// @host localhost:8090
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_JWT_TOKEN' to authorize.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "learnhub/cmd/api/docs"
	"learnhub/internal/adapter"
	"learnhub/internal/cache"
	"learnhub/internal/config"
	"learnhub/internal/database"
	"learnhub/internal/domain"
	"learnhub/internal/logger"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	ctx := context.Background()

	db, err := database.Open(ctx, cfg.DB)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	var quizCache domain.Cache
	if cfg.CacheEnabled() {
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer redisClient.Close()
		quizCache = adapter.NewRedisCacheAdapter(redisClient)
		appLogger.Info("Quiz cache enabled", zap.String("address", cfg.Redis.Address), zap.Duration("ttl", cfg.Redis.QuizTTL))
	} else {
		appLogger.Info("Quiz cache disabled, REDIS_ADDRESS is empty")
	}

	app, err := newApp(cfg, db, quizCache)
	if err != nil {
		appLogger.Fatal("Failed to build application", zap.Error(err))
	}

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
