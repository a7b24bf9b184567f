package domain

import "time"

// ModuleType is the kind of content a course module carries.
type ModuleType string

const (
	ModuleTypeText  ModuleType = "text"
	ModuleTypeVideo ModuleType = "video"
)

// Module is a unit of course content. A module owns at most one Quiz.
type Module struct {
	ID        int64
	Title     string
	Content   string
	Type      ModuleType
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Quiz is the aggregate root of the quiz tree attached to a module.
type Quiz struct {
	ID        int64      `json:"id"`
	ModuleID  int64      `json:"module_id"`
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type Question struct {
	ID      int64    `json:"id"`
	QuizID  int64    `json:"quiz_id"`
	Text    string   `json:"text"`
	Order   int      `json:"order"`
	Choices []Choice `json:"choices"`
}

type Choice struct {
	ID         int64  `json:"id"`
	QuestionID int64  `json:"question_id"`
	Text       string `json:"text"`
	IsCorrect  bool   `json:"is_correct"`
	Order      int    `json:"order"`
}

// CorrectChoice returns the first choice marked correct, in stored order.
func (q *Question) CorrectChoice() (Choice, bool) {
	for _, c := range q.Choices {
		if c.IsCorrect {
			return c, true
		}
	}
	return Choice{}, false
}

// FindChoice returns the choice of this question with the given id.
func (q *Question) FindChoice(id int64) (Choice, bool) {
	for _, c := range q.Choices {
		if c.ID == id {
			return c, true
		}
	}
	return Choice{}, false
}

// QuizDraft is the authoring payload for a new quiz tree.
type QuizDraft struct {
	Title     string
	Questions []QuestionDraft
}

// QuestionDraft is an unsaved question. A nil Order means "use the position".
type QuestionDraft struct {
	Text    string
	Order   *int
	Choices []ChoiceDraft
}

type ChoiceDraft struct {
	Text      string
	IsCorrect bool
	Order     *int
}

// QuizUpdate describes a partial update. A nil Title keeps the title and a nil
// Questions slice keeps the existing questions; a non-nil slice replaces them.
type QuizUpdate struct {
	Title     *string
	Questions []QuestionDraft
}

// ResolveOrder returns the explicit order when given, otherwise the position.
func ResolveOrder(order *int, position int) int {
	if order != nil {
		return *order
	}
	return position
}

// Answer is one submitted (question, choice) pair.
type Answer struct {
	QuestionID int64
	ChoiceID   int64
}

// Submission is a learner's set of answers for a quiz.
type Submission struct {
	Answers []Answer
}

// AnswerMap indexes the submission by question; a later duplicate wins.
func (s Submission) AnswerMap() map[int64]int64 {
	m := make(map[int64]int64, len(s.Answers))
	for _, a := range s.Answers {
		m[a.QuestionID] = a.ChoiceID
	}
	return m
}

type QuestionResult struct {
	QuestionID         int64
	QuestionText       string
	SelectedChoiceID   int64
	SelectedChoiceText string
	CorrectChoiceID    int64
	CorrectChoiceText  string
	IsCorrect          bool
}

type QuizResult struct {
	Total           int
	Correct         int
	ScorePercentage float64
	Details         []QuestionResult
}
