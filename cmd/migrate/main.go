package main

import (
	"context"
	"flag"
	"log"

	"learnhub/internal/config"
	"learnhub/internal/database"
	"learnhub/internal/logger"

	"go.uber.org/zap"
)

func main() {
	direction := flag.String("direction", "up", "migration direction: up or down")
	steps := flag.Int("steps", 1, "number of migrations to roll back with -direction=down")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	l := logger.Get()
	defer logger.Sync()

	db, err := database.Open(context.Background(), cfg.DB)
	if err != nil {
		l.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	switch *direction {
	case "up":
		err = database.RunMigrations(db.DB, cfg.DB.Driver)
	case "down":
		err = database.RollbackMigrations(db.DB, cfg.DB.Driver, *steps)
	default:
		l.Fatal("Unknown migration direction", zap.String("direction", *direction))
	}
	if err != nil {
		l.Fatal("Migration failed", zap.String("direction", *direction), zap.Error(err))
	}
	l.Info("Migration finished", zap.String("direction", *direction), zap.String("driver", cfg.DB.Driver))
}
