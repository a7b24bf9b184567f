package dto

import (
	"encoding/json"
	"testing"
	"time"

	"learnhub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQuizResponse_HidesAnswerKey(t *testing.T) {
	quiz := &domain.Quiz{
		ID:        1,
		ModuleID:  7,
		Title:     "Basics",
		CreatedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		Questions: []domain.Question{{
			ID: 10, Text: "Q1",
			Choices: []domain.Choice{{ID: 100, Text: "A"}, {ID: 101, Text: "B", IsCorrect: true, Order: 1}},
		}},
	}

	body, err := json.Marshal(NewQuizResponse(quiz))
	require.NoError(t, err)

	assert.NotContains(t, string(body), "is_correct")
	assert.Contains(t, string(body), `"module_id":7`)
	assert.Contains(t, string(body), `"order":1`)

	key := NewAnswerKeyResponse(quiz)
	require.Len(t, key, 1)
	assert.True(t, key[0].Choices[1].IsCorrect)
}

func TestUpdateQuizRequest_QuestionsPresence(t *testing.T) {
	var omitted UpdateQuizRequest
	require.NoError(t, json.Unmarshal([]byte(`{"title":"New"}`), &omitted))
	assert.Nil(t, omitted.ToUpdate().Questions)
	assert.Equal(t, "New", *omitted.ToUpdate().Title)

	var replaced UpdateQuizRequest
	require.NoError(t, json.Unmarshal([]byte(`{"questions":[{"text":"Q","choices":[{"text":"A","is_correct":true}]}]}`), &replaced))
	update := replaced.ToUpdate()
	assert.Nil(t, update.Title)
	require.Len(t, update.Questions, 1)
	assert.Nil(t, update.Questions[0].Order)
	assert.True(t, update.Questions[0].Choices[0].IsCorrect)
}

func TestCreateQuizRequest_ToDraft_KeepsExplicitOrder(t *testing.T) {
	var req CreateQuizRequest
	require.NoError(t, json.Unmarshal([]byte(`{"title":"T","questions":[{"text":"Q","order":0,"choices":[{"text":"A","order":3}]}]}`), &req))

	draft := req.ToDraft()
	require.NotNil(t, draft.Questions[0].Order)
	assert.Equal(t, 0, *draft.Questions[0].Order)
	assert.Equal(t, 3, *draft.Questions[0].Choices[0].Order)
}

func TestNewQuizResultResponse(t *testing.T) {
	resp := NewQuizResultResponse(&domain.QuizResult{
		Total: 2, Correct: 1, ScorePercentage: 50,
		Details: []domain.QuestionResult{{QuestionID: 10, SelectedChoiceText: domain.NoAnswerText}},
	})

	body, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"score_percentage":50`)
	assert.Contains(t, string(body), `"selected_choice_id":0`)
	assert.Contains(t, string(body), `"selected_choice_text":"No answer"`)
}
