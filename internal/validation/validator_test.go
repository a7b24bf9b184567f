package validation

import (
	"testing"

	"learnhub/internal/domain"
	"learnhub/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateRequest() *dto.CreateQuizRequest {
	return &dto.CreateQuizRequest{
		Title: "Basics",
		Questions: []dto.QuestionRequest{{
			Text:    "Q1",
			Choices: []dto.ChoiceRequest{{Text: "A"}, {Text: "B", IsCorrect: true}},
		}},
	}
}

func fields(errs domain.ValidationErrors) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Field)
	}
	return out
}

func TestValidateCreateQuizRequest(t *testing.T) {
	v := NewValidator()
	negative := -1

	tests := []struct {
		name       string
		mutate     func(r *dto.CreateQuizRequest)
		wantFields []string
		wantCode   domain.ErrorCode
	}{
		{name: "valid", mutate: func(r *dto.CreateQuizRequest) {}},
		{
			name:       "blank title",
			mutate:     func(r *dto.CreateQuizRequest) { r.Title = "   " },
			wantFields: []string{"title"},
			wantCode:   domain.CodeMissingField,
		},
		{
			name:       "no questions",
			mutate:     func(r *dto.CreateQuizRequest) { r.Questions = []dto.QuestionRequest{} },
			wantFields: []string{"questions"},
			wantCode:   domain.CodeOutOfRange,
		},
		{
			name:       "missing questions",
			mutate:     func(r *dto.CreateQuizRequest) { r.Questions = nil },
			wantFields: []string{"questions"},
			wantCode:   domain.CodeMissingField,
		},
		{
			name:       "question without choices",
			mutate:     func(r *dto.CreateQuizRequest) { r.Questions[0].Choices = []dto.ChoiceRequest{} },
			wantFields: []string{"questions[0].choices"},
			wantCode:   domain.CodeOutOfRange,
		},
		{
			name:       "blank choice text",
			mutate:     func(r *dto.CreateQuizRequest) { r.Questions[0].Choices[1].Text = "" },
			wantFields: []string{"questions[0].choices[1].text"},
			wantCode:   domain.CodeMissingField,
		},
		{
			name:       "negative order",
			mutate:     func(r *dto.CreateQuizRequest) { r.Questions[0].Order = &negative },
			wantFields: []string{"questions[0].order"},
			wantCode:   domain.CodeOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			tt.mutate(req)

			errs := v.ValidateCreateQuizRequest(req)
			if tt.wantFields == nil {
				assert.Empty(t, errs)
				return
			}
			require.NotEmpty(t, errs)
			assert.Equal(t, tt.wantFields, fields(errs))
			assert.Equal(t, tt.wantCode, errs[0].Code)
		})
	}
}

func TestValidateUpdateQuizRequest(t *testing.T) {
	v := NewValidator()
	blank := " "
	title := "Renamed"

	assert.Empty(t, v.ValidateUpdateQuizRequest(&dto.UpdateQuizRequest{}))
	assert.Empty(t, v.ValidateUpdateQuizRequest(&dto.UpdateQuizRequest{Title: &title}))

	errs := v.ValidateUpdateQuizRequest(&dto.UpdateQuizRequest{Title: &blank})
	assert.Equal(t, []string{"title"}, fields(errs))

	errs = v.ValidateUpdateQuizRequest(&dto.UpdateQuizRequest{Questions: []dto.QuestionRequest{}})
	assert.Equal(t, []string{"questions"}, fields(errs))

	errs = v.ValidateUpdateQuizRequest(&dto.UpdateQuizRequest{Questions: []dto.QuestionRequest{{Text: "Q"}}})
	assert.Equal(t, []string{"questions[0].choices"}, fields(errs))
}

func TestValidateSubmissionRequest(t *testing.T) {
	v := NewValidator()

	assert.Empty(t, v.ValidateSubmissionRequest(&dto.QuizSubmissionRequest{
		Answers: []dto.AnswerRequest{{QuestionID: 1, ChoiceID: 2}},
	}))
	assert.Empty(t, v.ValidateSubmissionRequest(&dto.QuizSubmissionRequest{Answers: []dto.AnswerRequest{}}))

	errs := v.ValidateSubmissionRequest(&dto.QuizSubmissionRequest{})
	assert.Equal(t, []string{"answers"}, fields(errs))

	errs = v.ValidateSubmissionRequest(&dto.QuizSubmissionRequest{Answers: []dto.AnswerRequest{{QuestionID: 1}}})
	assert.Equal(t, []string{"answers[0].choice_id"}, fields(errs))
}

func TestParseModuleID(t *testing.T) {
	v := NewValidator()

	id, errs := v.ParseModuleID("42")
	assert.Empty(t, errs)
	assert.Equal(t, int64(42), id)

	_, errs = v.ParseModuleID("abc")
	require.Len(t, errs, 1)
	assert.Equal(t, domain.CodeInvalidFormat, errs[0].Code)

	_, errs = v.ParseModuleID("0")
	require.Len(t, errs, 1)
	assert.Equal(t, domain.CodeOutOfRange, errs[0].Code)

	_, errs = v.ParseModuleID("")
	require.Len(t, errs, 1)
	assert.Equal(t, domain.CodeMissingField, errs[0].Code)
}
