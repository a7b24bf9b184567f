package service_test

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"learnhub/internal/config"
	"learnhub/internal/database"
	"learnhub/internal/domain"
	"learnhub/internal/repository"
	"learnhub/internal/service"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sqliteAdmin = domain.Caller{UserID: "a-1", Role: domain.RoleAdmin}

func openQuizDB(t *testing.T) (*sqlx.DB, int64) {
	t.Helper()
	ctx := context.Background()
	dsn := "file:" + filepath.Join(t.TempDir(), "service.db") + "?_pragma=foreign_keys(1)"

	db, err := database.Open(ctx, config.DBConfig{Driver: config.DriverSQLite, DSN: dsn})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.RunMigrations(db.DB, config.DriverSQLite))

	now := time.Now().UTC()
	moduleID, err := repository.NewModuleDatabaseAdapter(db).CreateModule(ctx, &domain.Module{
		Title: "Pointers", Type: domain.ModuleTypeText, CreatedAt: now, UpdatedAt: now,
	})
	require.NoError(t, err)
	return db, moduleID
}

func newSQLiteQuizService(db *sqlx.DB, quizzes domain.QuizRepository) service.QuizService {
	return service.NewQuizService(quizzes, repository.NewModuleDatabaseAdapter(db),
		repository.NewTransactionManagerAdapter(db), domain.NewRolePolicy(), nil)
}

// failingQuizRepository fails the failAt-th CreateQuestion call.
type failingQuizRepository struct {
	domain.QuizRepository
	failAt int
	calls  int
}

func (r *failingQuizRepository) CreateQuestion(ctx context.Context, question *domain.Question) (int64, error) {
	r.calls++
	if r.calls == r.failAt {
		return 0, errors.New("disk I/O error")
	}
	return r.QuizRepository.CreateQuestion(ctx, question)
}

func questionDrafts(texts ...string) []domain.QuestionDraft {
	drafts := make([]domain.QuestionDraft, 0, len(texts))
	for _, text := range texts {
		drafts = append(drafts, domain.QuestionDraft{Text: text, Choices: []domain.ChoiceDraft{
			{Text: text + " yes", IsCorrect: true},
			{Text: text + " no"},
		}})
	}
	return drafts
}

func questionIDs(quiz *domain.Quiz) []int64 {
	ids := make([]int64, 0, len(quiz.Questions))
	for _, q := range quiz.Questions {
		ids = append(ids, q.ID)
	}
	return ids
}

func TestQuizService_SQLite_FailedUpdateKeepsPriorTree(t *testing.T) {
	db, moduleID := openQuizDB(t)
	ctx := context.Background()
	quizzes := repository.NewQuizDatabaseAdapter(db)

	original, err := newSQLiteQuizService(db, quizzes).CreateQuiz(ctx, sqliteAdmin, moduleID, domain.QuizDraft{
		Title:     "Before",
		Questions: questionDrafts("Q1", "Q2"),
	})
	require.NoError(t, err)
	require.Len(t, original.Questions, 2)

	failing := &failingQuizRepository{QuizRepository: quizzes, failAt: 3}
	title := "After"
	_, err = newSQLiteQuizService(db, failing).UpdateQuiz(ctx, sqliteAdmin, moduleID, domain.QuizUpdate{
		Title:     &title,
		Questions: questionDrafts("N1", "N2", "N3"),
	})
	require.Error(t, err)
	var domainErr *domain.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domain.CodeInternal, domainErr.Code)
	assert.Equal(t, 3, failing.calls)

	after, err := newSQLiteQuizService(db, quizzes).GetQuiz(ctx, moduleID)
	require.NoError(t, err)
	assert.Equal(t, "Before", after.Title)
	assert.Equal(t, questionIDs(original), questionIDs(after))
	for i, q := range after.Questions {
		assert.Equal(t, original.Questions[i].Text, q.Text)
		assert.Len(t, q.Choices, 2)
	}

	var questions, choices int
	require.NoError(t, db.Get(&questions, `SELECT COUNT(*) FROM questions`))
	require.NoError(t, db.Get(&choices, `SELECT COUNT(*) FROM choices`))
	assert.Equal(t, 2, questions)
	assert.Equal(t, 4, choices)
}

func TestQuizService_SQLite_ConcurrentCreatesYieldOneQuiz(t *testing.T) {
	db, moduleID := openQuizDB(t)
	ctx := context.Background()
	svc := newSQLiteQuizService(db, repository.NewQuizDatabaseAdapter(db))

	const writers = 4
	errs := make([]error, writers)
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.CreateQuiz(ctx, sqliteAdmin, moduleID, domain.QuizDraft{
				Title:     "Race",
				Questions: questionDrafts("Q1", "Q2"),
			})
		}(i)
	}
	wg.Wait()

	created := 0
	for _, err := range errs {
		if err == nil {
			created++
			continue
		}
		assert.ErrorIs(t, err, domain.ErrQuizAlreadyExists)
	}
	assert.Equal(t, 1, created)

	var quizzes int
	require.NoError(t, db.Get(&quizzes, `SELECT COUNT(*) FROM quizzes`))
	assert.Equal(t, 1, quizzes)
}
