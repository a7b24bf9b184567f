package models

import (
	"database/sql"
	"time"
)

// Module maps the course_modules table.
type Module struct {
	ID        int64          `db:"id"`
	Title     string         `db:"title"`
	Content   sql.NullString `db:"content"`
	Type      string         `db:"type"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

// Quiz maps the quizzes table.
type Quiz struct {
	ID        int64     `db:"id"`
	ModuleID  int64     `db:"module_id"`
	Title     string    `db:"title"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// QuizTreeRow is one row of the quizzes/questions/choices left join.
// Question and choice columns are NULL for a quiz without questions or a
// question without choices.
type QuizTreeRow struct {
	QuizID          int64          `db:"quiz_id"`
	ModuleID        int64          `db:"module_id"`
	Title           string         `db:"title"`
	CreatedAt       time.Time      `db:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at"`
	QuestionID      sql.NullInt64  `db:"question_id"`
	QuestionText    sql.NullString `db:"question_text"`
	QuestionOrder   sql.NullInt64  `db:"question_order"`
	ChoiceID        sql.NullInt64  `db:"choice_id"`
	ChoiceText      sql.NullString `db:"choice_text"`
	ChoiceIsCorrect sql.NullBool   `db:"choice_is_correct"`
	ChoiceOrder     sql.NullInt64  `db:"choice_order"`
}
