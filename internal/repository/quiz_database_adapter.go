package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"learnhub/internal/domain"
	"learnhub/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

const (
	quizColumns = `id, module_id, title, created_at, updated_at`

	quizTreeQuery = `SELECT
		q.id AS quiz_id,
		q.module_id AS module_id,
		q.title AS title,
		q.created_at AS created_at,
		q.updated_at AS updated_at,
		qu.id AS question_id,
		qu.text AS question_text,
		qu.sort_order AS question_order,
		c.id AS choice_id,
		c.text AS choice_text,
		c.is_correct AS choice_is_correct,
		c.sort_order AS choice_order
	FROM quizzes q
	LEFT JOIN questions qu ON qu.quiz_id = q.id
	LEFT JOIN choices c ON c.question_id = qu.id
	WHERE q.module_id = ?
	ORDER BY qu.id, c.id`
)

// QuizDatabaseAdapter implements domain.QuizRepository using sqlx.
type QuizDatabaseAdapter struct {
	db *sqlx.DB
}

func NewQuizDatabaseAdapter(db *sqlx.DB) domain.QuizRepository {
	return &QuizDatabaseAdapter{db: db}
}

// FindQuizByModule implements domain.QuizRepository
func (a *QuizDatabaseAdapter) FindQuizByModule(ctx context.Context, moduleID int64) (*domain.Quiz, error) {
	exec := GetExecutor(ctx, a.db)

	var row models.Quiz
	query := exec.Rebind(`SELECT ` + quizColumns + ` FROM quizzes WHERE module_id = ?`)
	if err := exec.GetContext(ctx, &row, query, moduleID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find quiz for module %d: %w", moduleID, err)
	}
	return toDomainQuiz(&row), nil
}

// FindQuizTreeByModule implements domain.QuizRepository. The tree is read in a
// single statement so a concurrent replace is seen either fully or not at all.
func (a *QuizDatabaseAdapter) FindQuizTreeByModule(ctx context.Context, moduleID int64) (*domain.Quiz, error) {
	exec := GetExecutor(ctx, a.db)

	var rows []models.QuizTreeRow
	if err := exec.SelectContext(ctx, &rows, exec.Rebind(quizTreeQuery), moduleID); err != nil {
		return nil, fmt.Errorf("failed to load quiz tree for module %d: %w", moduleID, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return assembleQuizTree(rows), nil
}

// CreateQuiz implements domain.QuizRepository
func (a *QuizDatabaseAdapter) CreateQuiz(ctx context.Context, quiz *domain.Quiz) (int64, error) {
	exec := GetExecutor(ctx, a.db)

	var id int64
	query := exec.Rebind(`INSERT INTO quizzes (module_id, title, created_at, updated_at) VALUES (?, ?, ?, ?) RETURNING id`)
	err := exec.GetContext(ctx, &id, query, quiz.ModuleID, quiz.Title, quiz.CreatedAt, quiz.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.NewQuizAlreadyExistsError(quiz.ModuleID)
		}
		return 0, fmt.Errorf("failed to create quiz: %w", err)
	}
	return id, nil
}

// CreateQuestion implements domain.QuizRepository
func (a *QuizDatabaseAdapter) CreateQuestion(ctx context.Context, question *domain.Question) (int64, error) {
	exec := GetExecutor(ctx, a.db)

	var id int64
	query := exec.Rebind(`INSERT INTO questions (quiz_id, text, sort_order) VALUES (?, ?, ?) RETURNING id`)
	if err := exec.GetContext(ctx, &id, query, question.QuizID, question.Text, question.Order); err != nil {
		return 0, fmt.Errorf("failed to create question: %w", err)
	}
	return id, nil
}

// CreateChoice implements domain.QuizRepository
func (a *QuizDatabaseAdapter) CreateChoice(ctx context.Context, choice *domain.Choice) (int64, error) {
	exec := GetExecutor(ctx, a.db)

	var id int64
	query := exec.Rebind(`INSERT INTO choices (question_id, text, is_correct, sort_order) VALUES (?, ?, ?, ?) RETURNING id`)
	if err := exec.GetContext(ctx, &id, query, choice.QuestionID, choice.Text, choice.IsCorrect, choice.Order); err != nil {
		return 0, fmt.Errorf("failed to create choice: %w", err)
	}
	return id, nil
}

// UpdateQuiz writes the title and updated_at of an existing quiz.
func (a *QuizDatabaseAdapter) UpdateQuiz(ctx context.Context, quiz *domain.Quiz) error {
	exec := GetExecutor(ctx, a.db)

	query := exec.Rebind(`UPDATE quizzes SET title = ?, updated_at = ? WHERE id = ?`)
	res, err := exec.ExecContext(ctx, query, quiz.Title, quiz.UpdatedAt, quiz.ID)
	if err != nil {
		return fmt.Errorf("failed to update quiz %d: %w", quiz.ID, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.NewQuizNotFoundError(quiz.ModuleID)
	}
	return nil
}

// DeleteQuestionsOfQuiz implements domain.QuizRepository
func (a *QuizDatabaseAdapter) DeleteQuestionsOfQuiz(ctx context.Context, quizID int64) error {
	exec := GetExecutor(ctx, a.db)

	deleteChoices := exec.Rebind(`DELETE FROM choices WHERE question_id IN (SELECT id FROM questions WHERE quiz_id = ?)`)
	if _, err := exec.ExecContext(ctx, deleteChoices, quizID); err != nil {
		return fmt.Errorf("failed to delete choices of quiz %d: %w", quizID, err)
	}

	deleteQuestions := exec.Rebind(`DELETE FROM questions WHERE quiz_id = ?`)
	if _, err := exec.ExecContext(ctx, deleteQuestions, quizID); err != nil {
		return fmt.Errorf("failed to delete questions of quiz %d: %w", quizID, err)
	}
	return nil
}

// DeleteQuiz implements domain.QuizRepository
func (a *QuizDatabaseAdapter) DeleteQuiz(ctx context.Context, quizID int64) error {
	if err := a.DeleteQuestionsOfQuiz(ctx, quizID); err != nil {
		return err
	}

	exec := GetExecutor(ctx, a.db)
	if _, err := exec.ExecContext(ctx, exec.Rebind(`DELETE FROM quizzes WHERE id = ?`), quizID); err != nil {
		return fmt.Errorf("failed to delete quiz %d: %w", quizID, err)
	}
	return nil
}

func toDomainQuiz(m *models.Quiz) *domain.Quiz {
	return &domain.Quiz{
		ID:        m.ID,
		ModuleID:  m.ModuleID,
		Title:     m.Title,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// assembleQuizTree folds join rows, ordered by question id then choice id,
// into one aggregate.
func assembleQuizTree(rows []models.QuizTreeRow) *domain.Quiz {
	first := rows[0]
	quiz := &domain.Quiz{
		ID:        first.QuizID,
		ModuleID:  first.ModuleID,
		Title:     first.Title,
		CreatedAt: first.CreatedAt,
		UpdatedAt: first.UpdatedAt,
		Questions: []domain.Question{},
	}

	index := make(map[int64]int)
	for _, row := range rows {
		if !row.QuestionID.Valid {
			continue
		}

		pos, seen := index[row.QuestionID.Int64]
		if !seen {
			quiz.Questions = append(quiz.Questions, domain.Question{
				ID:      row.QuestionID.Int64,
				QuizID:  quiz.ID,
				Text:    row.QuestionText.String,
				Order:   int(row.QuestionOrder.Int64),
				Choices: []domain.Choice{},
			})
			pos = len(quiz.Questions) - 1
			index[row.QuestionID.Int64] = pos
		}

		if !row.ChoiceID.Valid {
			continue
		}
		quiz.Questions[pos].Choices = append(quiz.Questions[pos].Choices, domain.Choice{
			ID:         row.ChoiceID.Int64,
			QuestionID: row.QuestionID.Int64,
			Text:       row.ChoiceText.String,
			IsCorrect:  row.ChoiceIsCorrect.Bool,
			Order:      int(row.ChoiceOrder.Int64),
		})
	}
	return quiz
}
