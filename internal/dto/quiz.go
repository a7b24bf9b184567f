package dto

import (
	"time"

	"learnhub/internal/domain"
)

// ChoiceRequest is one answer option in an authoring payload.
type ChoiceRequest struct {
	Text      string `json:"text" validate:"required,notblank,max=1000"`
	IsCorrect bool   `json:"is_correct"`
	Order     *int   `json:"order,omitempty" validate:"omitempty,min=0"`
}

// QuestionRequest is one question in an authoring payload.
type QuestionRequest struct {
	Text    string          `json:"text" validate:"required,notblank,max=2000"`
	Order   *int            `json:"order,omitempty" validate:"omitempty,min=0"`
	Choices []ChoiceRequest `json:"choices" validate:"required,min=1,dive"`
}

// CreateQuizRequest is the body of POST /modules/{moduleId}/quiz
// @Description Quiz with its questions and choices
type CreateQuizRequest struct {
	Title     string            `json:"title" validate:"required,notblank,max=255"`
	Questions []QuestionRequest `json:"questions" validate:"required,min=1,dive"`
}

// UpdateQuizRequest is the body of PUT /modules/{moduleId}/quiz. Omitted
// fields are left unchanged; a questions array replaces every question.
type UpdateQuizRequest struct {
	Title     *string           `json:"title,omitempty" validate:"omitempty,notblank,max=255"`
	Questions []QuestionRequest `json:"questions,omitempty" validate:"omitempty,dive"`
}

// AnswerRequest is one (question, choice) pair of a submission.
type AnswerRequest struct {
	QuestionID int64 `json:"question_id" validate:"required,gt=0"`
	ChoiceID   int64 `json:"choice_id" validate:"required,gt=0"`
}

// QuizSubmissionRequest is the body of POST /modules/{moduleId}/quiz/submit
type QuizSubmissionRequest struct {
	Answers []AnswerRequest `json:"answers" validate:"required,dive"`
}

// ChoiceResponse hides whether the choice is correct.
type ChoiceResponse struct {
	ID    int64  `json:"id"`
	Text  string `json:"text"`
	Order int    `json:"order"`
}

type QuestionResponse struct {
	ID      int64            `json:"id"`
	Text    string           `json:"text"`
	Order   int              `json:"order"`
	Choices []ChoiceResponse `json:"choices"`
}

// QuizResponse is the learner view of a quiz.
// @Description Quiz without the answer key
type QuizResponse struct {
	ID        int64              `json:"id"`
	Title     string             `json:"title"`
	ModuleID  int64              `json:"module_id"`
	Questions []QuestionResponse `json:"questions"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

type ChoiceWithAnswerResponse struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	IsCorrect bool   `json:"is_correct"`
	Order     int    `json:"order"`
}

type QuestionWithAnswersResponse struct {
	ID      int64                      `json:"id"`
	Text    string                     `json:"text"`
	Order   int                        `json:"order"`
	Choices []ChoiceWithAnswerResponse `json:"choices"`
}

type QuestionResultResponse struct {
	QuestionID         int64  `json:"question_id"`
	QuestionText       string `json:"question_text"`
	SelectedChoiceID   int64  `json:"selected_choice_id"`
	SelectedChoiceText string `json:"selected_choice_text"`
	CorrectChoiceID    int64  `json:"correct_choice_id"`
	CorrectChoiceText  string `json:"correct_choice_text"`
	IsCorrect          bool   `json:"is_correct"`
}

// QuizResultResponse is the graded result of a submission.
// @Description Score and per-question breakdown
type QuizResultResponse struct {
	Total           int                      `json:"total"`
	Correct         int                      `json:"correct"`
	ScorePercentage float64                  `json:"score_percentage"`
	Details         []QuestionResultResponse `json:"details"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

func toQuestionDrafts(reqs []QuestionRequest) []domain.QuestionDraft {
	if reqs == nil {
		return nil
	}
	drafts := make([]domain.QuestionDraft, 0, len(reqs))
	for _, q := range reqs {
		choices := make([]domain.ChoiceDraft, 0, len(q.Choices))
		for _, c := range q.Choices {
			choices = append(choices, domain.ChoiceDraft{Text: c.Text, IsCorrect: c.IsCorrect, Order: c.Order})
		}
		drafts = append(drafts, domain.QuestionDraft{Text: q.Text, Order: q.Order, Choices: choices})
	}
	return drafts
}

func (r *CreateQuizRequest) ToDraft() domain.QuizDraft {
	return domain.QuizDraft{Title: r.Title, Questions: toQuestionDrafts(r.Questions)}
}

func (r *UpdateQuizRequest) ToUpdate() domain.QuizUpdate {
	return domain.QuizUpdate{Title: r.Title, Questions: toQuestionDrafts(r.Questions)}
}

func (r *QuizSubmissionRequest) ToSubmission() domain.Submission {
	answers := make([]domain.Answer, 0, len(r.Answers))
	for _, a := range r.Answers {
		answers = append(answers, domain.Answer{QuestionID: a.QuestionID, ChoiceID: a.ChoiceID})
	}
	return domain.Submission{Answers: answers}
}

func NewQuizResponse(quiz *domain.Quiz) *QuizResponse {
	resp := &QuizResponse{
		ID:        quiz.ID,
		Title:     quiz.Title,
		ModuleID:  quiz.ModuleID,
		Questions: make([]QuestionResponse, 0, len(quiz.Questions)),
		CreatedAt: quiz.CreatedAt,
		UpdatedAt: quiz.UpdatedAt,
	}
	for _, q := range quiz.Questions {
		qr := QuestionResponse{ID: q.ID, Text: q.Text, Order: q.Order, Choices: make([]ChoiceResponse, 0, len(q.Choices))}
		for _, c := range q.Choices {
			qr.Choices = append(qr.Choices, ChoiceResponse{ID: c.ID, Text: c.Text, Order: c.Order})
		}
		resp.Questions = append(resp.Questions, qr)
	}
	return resp
}

func NewAnswerKeyResponse(quiz *domain.Quiz) []QuestionWithAnswersResponse {
	resp := make([]QuestionWithAnswersResponse, 0, len(quiz.Questions))
	for _, q := range quiz.Questions {
		qr := QuestionWithAnswersResponse{ID: q.ID, Text: q.Text, Order: q.Order, Choices: make([]ChoiceWithAnswerResponse, 0, len(q.Choices))}
		for _, c := range q.Choices {
			qr.Choices = append(qr.Choices, ChoiceWithAnswerResponse{ID: c.ID, Text: c.Text, IsCorrect: c.IsCorrect, Order: c.Order})
		}
		resp = append(resp, qr)
	}
	return resp
}

func NewQuizResultResponse(result *domain.QuizResult) *QuizResultResponse {
	resp := &QuizResultResponse{
		Total:           result.Total,
		Correct:         result.Correct,
		ScorePercentage: result.ScorePercentage,
		Details:         make([]QuestionResultResponse, 0, len(result.Details)),
	}
	for _, d := range result.Details {
		resp.Details = append(resp.Details, QuestionResultResponse{
			QuestionID:         d.QuestionID,
			QuestionText:       d.QuestionText,
			SelectedChoiceID:   d.SelectedChoiceID,
			SelectedChoiceText: d.SelectedChoiceText,
			CorrectChoiceID:    d.CorrectChoiceID,
			CorrectChoiceText:  d.CorrectChoiceText,
			IsCorrect:          d.IsCorrect,
		})
	}
	return resp
}
