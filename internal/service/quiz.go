package service

import (
	"context"
	"errors"
	"time"

	"learnhub/internal/domain"
	"learnhub/internal/logger"

	"go.uber.org/zap"
)

// QuizService authors, serves and grades the quiz attached to a module.
type QuizService interface {
	GetQuiz(ctx context.Context, moduleID int64) (*domain.Quiz, error)
	GetAnswerKey(ctx context.Context, caller domain.Caller, moduleID int64) (*domain.Quiz, error)
	CreateQuiz(ctx context.Context, caller domain.Caller, moduleID int64, draft domain.QuizDraft) (*domain.Quiz, error)
	UpdateQuiz(ctx context.Context, caller domain.Caller, moduleID int64, update domain.QuizUpdate) (*domain.Quiz, error)
	DeleteQuiz(ctx context.Context, caller domain.Caller, moduleID int64) error
	SubmitQuiz(ctx context.Context, caller domain.Caller, moduleID int64, submission domain.Submission) (*domain.QuizResult, error)
}

type quizServiceImpl struct {
	quizzes   domain.QuizRepository
	modules   domain.ModuleRepository
	txManager domain.TransactionManager
	policy    domain.AccessPolicy
	cache     QuizCacheService
	now       func() time.Time
}

func NewQuizService(
	quizzes domain.QuizRepository,
	modules domain.ModuleRepository,
	txManager domain.TransactionManager,
	policy domain.AccessPolicy,
	cache QuizCacheService,
) QuizService {
	if cache == nil {
		cache = NewQuizCacheService(nil, quizzes, 0)
	}
	return &quizServiceImpl{
		quizzes:   quizzes,
		modules:   modules,
		txManager: txManager,
		policy:    policy,
		cache:     cache,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// asDomainError passes domain errors through and wraps everything else as internal.
func asDomainError(message string, err error) error {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		return err
	}
	var validationErrs domain.ValidationErrors
	if errors.As(err, &validationErrs) {
		return err
	}
	return domain.NewInternalError(message, err)
}

func (s *quizServiceImpl) GetQuiz(ctx context.Context, moduleID int64) (*domain.Quiz, error) {
	module, err := s.modules.FindModule(ctx, moduleID)
	if err != nil {
		return nil, asDomainError("failed to load module", err)
	}
	if module == nil {
		return nil, domain.NewModuleNotFoundError(moduleID)
	}

	quiz, err := s.cache.GetQuizTree(ctx, moduleID)
	if err != nil {
		return nil, asDomainError("failed to load quiz", err)
	}
	if quiz == nil {
		return nil, domain.NewQuizNotFoundError(moduleID)
	}
	return quiz, nil
}

func (s *quizServiceImpl) GetAnswerKey(ctx context.Context, caller domain.Caller, moduleID int64) (*domain.Quiz, error) {
	if !s.policy.CanViewAnswerKey(caller.Role) {
		return nil, domain.NewForbiddenError("view answers")
	}

	quiz, err := s.cache.GetQuizTree(ctx, moduleID)
	if err != nil {
		return nil, asDomainError("failed to load quiz", err)
	}
	if quiz == nil {
		return nil, domain.NewQuizNotFoundError(moduleID)
	}
	return quiz, nil
}

func (s *quizServiceImpl) CreateQuiz(ctx context.Context, caller domain.Caller, moduleID int64, draft domain.QuizDraft) (*domain.Quiz, error) {
	if !s.policy.CanAuthorQuiz(caller.Role) {
		return nil, domain.NewForbiddenError("create quizzes")
	}

	var created *domain.Quiz
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		module, err := s.modules.FindModule(txCtx, moduleID)
		if err != nil {
			return asDomainError("failed to load module", err)
		}
		if module == nil {
			return domain.NewModuleNotFoundError(moduleID)
		}

		existing, err := s.quizzes.FindQuizByModule(txCtx, moduleID)
		if err != nil {
			return asDomainError("failed to check existing quiz", err)
		}
		if existing != nil {
			return domain.NewQuizAlreadyExistsError(moduleID)
		}

		now := s.now()
		quiz := &domain.Quiz{ModuleID: moduleID, Title: draft.Title, CreatedAt: now, UpdatedAt: now}
		quiz.ID, err = s.quizzes.CreateQuiz(txCtx, quiz)
		if err != nil {
			return asDomainError("failed to create quiz", err)
		}

		quiz.Questions, err = s.buildQuestionTree(txCtx, quiz.ID, draft.Questions)
		if err != nil {
			return err
		}
		created = quiz
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, moduleID)
	logger.Get().Info("Quiz created",
		zap.Int64("module_id", moduleID),
		zap.Int64("quiz_id", created.ID),
		zap.Int("questions", len(created.Questions)),
		zap.String("user_id", caller.UserID),
	)
	return created, nil
}

func (s *quizServiceImpl) UpdateQuiz(ctx context.Context, caller domain.Caller, moduleID int64, update domain.QuizUpdate) (*domain.Quiz, error) {
	if !s.policy.CanAuthorQuiz(caller.Role) {
		return nil, domain.NewForbiddenError("update quizzes")
	}

	var updated *domain.Quiz
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		quiz, err := s.quizzes.FindQuizByModule(txCtx, moduleID)
		if err != nil {
			return asDomainError("failed to load quiz", err)
		}
		if quiz == nil {
			return domain.NewQuizNotFoundError(moduleID)
		}

		if update.Title != nil {
			quiz.Title = *update.Title
		}
		quiz.UpdatedAt = s.now()
		if err := s.quizzes.UpdateQuiz(txCtx, quiz); err != nil {
			return asDomainError("failed to update quiz", err)
		}

		if update.Questions != nil {
			if err := s.quizzes.DeleteQuestionsOfQuiz(txCtx, quiz.ID); err != nil {
				return asDomainError("failed to delete questions", err)
			}
			if _, err := s.buildQuestionTree(txCtx, quiz.ID, update.Questions); err != nil {
				return err
			}
		}

		updated, err = s.quizzes.FindQuizTreeByModule(txCtx, moduleID)
		if err != nil {
			return asDomainError("failed to reload quiz", err)
		}
		if updated == nil {
			return domain.NewQuizNotFoundError(moduleID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, moduleID)
	logger.Get().Info("Quiz updated",
		zap.Int64("module_id", moduleID),
		zap.Int64("quiz_id", updated.ID),
		zap.Bool("questions_replaced", update.Questions != nil),
		zap.String("user_id", caller.UserID),
	)
	return updated, nil
}

func (s *quizServiceImpl) DeleteQuiz(ctx context.Context, caller domain.Caller, moduleID int64) error {
	if !s.policy.CanAuthorQuiz(caller.Role) {
		return domain.NewForbiddenError("delete quizzes")
	}

	var quizID int64
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		quiz, err := s.quizzes.FindQuizByModule(txCtx, moduleID)
		if err != nil {
			return asDomainError("failed to load quiz", err)
		}
		if quiz == nil {
			return domain.NewQuizNotFoundError(moduleID)
		}
		quizID = quiz.ID

		if err := s.quizzes.DeleteQuiz(txCtx, quiz.ID); err != nil {
			return asDomainError("failed to delete quiz", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.cache.Invalidate(ctx, moduleID)
	logger.Get().Info("Quiz deleted",
		zap.Int64("module_id", moduleID),
		zap.Int64("quiz_id", quizID),
		zap.String("user_id", caller.UserID),
	)
	return nil
}

// SubmitQuiz grades against the database copy of the quiz and stores nothing.
func (s *quizServiceImpl) SubmitQuiz(ctx context.Context, caller domain.Caller, moduleID int64, submission domain.Submission) (*domain.QuizResult, error) {
	quiz, err := s.quizzes.FindQuizTreeByModule(ctx, moduleID)
	if err != nil {
		return nil, asDomainError("failed to load quiz", err)
	}
	if quiz == nil {
		return nil, domain.NewQuizNotFoundError(moduleID)
	}

	result := domain.GradeQuiz(quiz, submission.AnswerMap())

	logger.Get().Debug("Quiz graded",
		zap.Int64("module_id", moduleID),
		zap.String("user_id", caller.UserID),
		zap.Int("correct", result.Correct),
		zap.Int("total", result.Total),
	)
	return result, nil
}

// buildQuestionTree inserts questions and their choices in payload order.
// A missing order falls back to the element's index.
func (s *quizServiceImpl) buildQuestionTree(ctx context.Context, quizID int64, drafts []domain.QuestionDraft) ([]domain.Question, error) {
	questions := make([]domain.Question, 0, len(drafts))
	for i, qd := range drafts {
		question := domain.Question{
			QuizID: quizID,
			Text:   qd.Text,
			Order:  domain.ResolveOrder(qd.Order, i),
		}

		var err error
		question.ID, err = s.quizzes.CreateQuestion(ctx, &question)
		if err != nil {
			return nil, asDomainError("failed to create question", err)
		}

		question.Choices = make([]domain.Choice, 0, len(qd.Choices))
		for j, cd := range qd.Choices {
			choice := domain.Choice{
				QuestionID: question.ID,
				Text:       cd.Text,
				IsCorrect:  cd.IsCorrect,
				Order:      domain.ResolveOrder(cd.Order, j),
			}
			choice.ID, err = s.quizzes.CreateChoice(ctx, &choice)
			if err != nil {
				return nil, asDomainError("failed to create choice", err)
			}
			question.Choices = append(question.Choices, choice)
		}
		questions = append(questions, question)
	}
	return questions, nil
}
