package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"learnhub/cmd/seed_initial_data/internal/seedmodels"
	"learnhub/internal/config"
	"learnhub/internal/database"
	"learnhub/internal/domain"
	"learnhub/internal/logger"
	"learnhub/internal/repository"
	"learnhub/internal/service"
	"learnhub/internal/validation"

	"go.uber.org/zap"
)

const defaultSeedFilePath = "configs/seed_data/initial_modules.json"

// seedCaller authors seeded quizzes.
var seedCaller = domain.Caller{UserID: "seed", Role: domain.RoleAdmin}

type seeder struct {
	modules   domain.ModuleRepository
	quizzes   service.QuizService
	txManager domain.TransactionManager
	validator *validation.Validator
	log       *zap.Logger
	now       func() time.Time
}

type seedReport struct {
	ModulesCreated int
	QuizzesCreated int
	QuizzesSkipped int
}

func main() {
	seedFile := flag.String("file", defaultSeedFilePath, "path to the JSON seed file")
	flag.Parse()

	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Get()

	log.Info("Starting initial data seeding process...")
	db, err := database.Open(ctx, cfg.DB)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	log.Info("Loading seed data from file", zap.String("path", *seedFile))
	byteValue, err := os.ReadFile(*seedFile)
	if err != nil {
		log.Fatal("Failed to read seed file", zap.String("path", *seedFile), zap.Error(err))
	}

	var seedModules []seedmodels.SeedModule
	if err := json.Unmarshal(byteValue, &seedModules); err != nil {
		log.Fatal("Failed to unmarshal seed data", zap.Error(err))
	}
	log.Info("Successfully unmarshalled seed data", zap.Int("modules_loaded", len(seedModules)))

	quizRepo := repository.NewQuizDatabaseAdapter(db)
	moduleRepo := repository.NewModuleDatabaseAdapter(db)
	txManager := repository.NewTransactionManagerAdapter(db)

	s := &seeder{
		modules:   moduleRepo,
		quizzes:   service.NewQuizService(quizRepo, moduleRepo, txManager, domain.NewRolePolicy(), nil),
		txManager: txManager,
		validator: validation.NewValidator(),
		log:       log,
		now:       func() time.Time { return time.Now().UTC() },
	}

	report, err := s.seed(ctx, seedModules)
	if err != nil {
		log.Fatal("Seeding failed", zap.Error(err))
	}
	log.Info("Initial data seeding process completed.",
		zap.Int("modules_created", report.ModulesCreated),
		zap.Int("quizzes_created", report.QuizzesCreated),
		zap.Int("quizzes_skipped", report.QuizzesSkipped),
	)
}

// seed is idempotent: modules are matched by title and an existing quiz is
// left untouched.
func (s *seeder) seed(ctx context.Context, seedModules []seedmodels.SeedModule) (seedReport, error) {
	var report seedReport
	for _, sm := range seedModules {
		moduleID, created, err := s.ensureModule(ctx, sm)
		if err != nil {
			return report, fmt.Errorf("module %q: %w", sm.Title, err)
		}
		if created {
			report.ModulesCreated++
		}

		if sm.Quiz == nil {
			continue
		}
		if errs := s.validator.ValidateCreateQuizRequest(sm.Quiz); len(errs) > 0 {
			return report, fmt.Errorf("quiz of module %q: %w", sm.Title, errs)
		}

		_, err = s.quizzes.CreateQuiz(ctx, seedCaller, moduleID, sm.Quiz.ToDraft())
		switch {
		case errors.Is(err, domain.ErrQuizAlreadyExists):
			s.log.Info("Quiz exists, skipping.", zap.String("module", sm.Title), zap.Int64("module_id", moduleID))
			report.QuizzesSkipped++
		case err != nil:
			return report, fmt.Errorf("quiz of module %q: %w", sm.Title, err)
		default:
			s.log.Info("Created quiz.", zap.String("module", sm.Title), zap.Int64("module_id", moduleID))
			report.QuizzesCreated++
		}
	}
	return report, nil
}

func (s *seeder) ensureModule(ctx context.Context, sm seedmodels.SeedModule) (int64, bool, error) {
	var (
		moduleID int64
		created  bool
	)
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		existing, err := s.modules.FindModuleByTitle(txCtx, sm.Title)
		if err != nil {
			return err
		}
		if existing != nil {
			moduleID = existing.ID
			return nil
		}

		moduleType := domain.ModuleType(sm.Type)
		if moduleType != domain.ModuleTypeText && moduleType != domain.ModuleTypeVideo {
			moduleType = domain.ModuleTypeText
		}
		now := s.now()
		moduleID, err = s.modules.CreateModule(txCtx, &domain.Module{
			Title:     sm.Title,
			Content:   sm.Content,
			Type:      moduleType,
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			return err
		}
		created = true
		s.log.Info("Created module.", zap.String("title", sm.Title), zap.Int64("id", moduleID))
		return nil
	})
	return moduleID, created, err
}
