package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// twoQuestionQuiz: Q1 has A (wrong) and B (right); Q2 has no correct choice.
func twoQuestionQuiz() *Quiz {
	return &Quiz{
		ID:       1,
		ModuleID: 7,
		Title:    "Basics",
		Questions: []Question{
			{
				ID:   10,
				Text: "Q1",
				Choices: []Choice{
					{ID: 100, QuestionID: 10, Text: "A", IsCorrect: false},
					{ID: 101, QuestionID: 10, Text: "B", IsCorrect: true},
				},
			},
			{
				ID:   11,
				Text: "Q2",
				Choices: []Choice{
					{ID: 110, QuestionID: 11, Text: "C"},
					{ID: 111, QuestionID: 11, Text: "D"},
				},
			},
		},
	}
}

func TestGradeQuiz_UngradableQuestionCountsTowardTotal(t *testing.T) {
	result := GradeQuiz(twoQuestionQuiz(), map[int64]int64{10: 101})

	assert.Equal(t, 2, result.Total)
	assert.Equal(t, 1, result.Correct)
	assert.Equal(t, 50.0, result.ScorePercentage)
	require.Len(t, result.Details, 1)

	d := result.Details[0]
	assert.Equal(t, int64(10), d.QuestionID)
	assert.Equal(t, "Q1", d.QuestionText)
	assert.Equal(t, int64(101), d.SelectedChoiceID)
	assert.Equal(t, "B", d.SelectedChoiceText)
	assert.Equal(t, int64(101), d.CorrectChoiceID)
	assert.Equal(t, "B", d.CorrectChoiceText)
	assert.True(t, d.IsCorrect)
}

func TestGradeQuiz_WrongAnswer(t *testing.T) {
	result := GradeQuiz(twoQuestionQuiz(), map[int64]int64{10: 100})

	assert.Equal(t, 0, result.Correct)
	assert.Equal(t, 0.0, result.ScorePercentage)
	require.Len(t, result.Details, 1)
	assert.Equal(t, int64(100), result.Details[0].SelectedChoiceID)
	assert.Equal(t, "A", result.Details[0].SelectedChoiceText)
	assert.False(t, result.Details[0].IsCorrect)
}

func TestGradeQuiz_Unanswered(t *testing.T) {
	result := GradeQuiz(twoQuestionQuiz(), map[int64]int64{})

	require.Len(t, result.Details, 1)
	d := result.Details[0]
	assert.Equal(t, int64(0), d.SelectedChoiceID)
	assert.Equal(t, NoAnswerText, d.SelectedChoiceText)
	assert.Equal(t, int64(101), d.CorrectChoiceID)
	assert.False(t, d.IsCorrect)
	assert.Equal(t, 0, result.Correct)
	assert.Equal(t, 2, result.Total)
}

func TestGradeQuiz_ChoiceFromAnotherQuestionIsNoAnswer(t *testing.T) {
	result := GradeQuiz(twoQuestionQuiz(), map[int64]int64{10: 110})

	require.Len(t, result.Details, 1)
	assert.Equal(t, int64(0), result.Details[0].SelectedChoiceID)
	assert.Equal(t, NoAnswerText, result.Details[0].SelectedChoiceText)
	assert.False(t, result.Details[0].IsCorrect)
}

func TestGradeQuiz_FirstCorrectChoiceIsCanonical(t *testing.T) {
	quiz := &Quiz{Questions: []Question{{
		ID:   1,
		Text: "Pick a prime",
		Choices: []Choice{
			{ID: 1, Text: "4"},
			{ID: 2, Text: "3", IsCorrect: true},
			{ID: 3, Text: "5", IsCorrect: true},
		},
	}}}

	result := GradeQuiz(quiz, map[int64]int64{1: 3})

	require.Len(t, result.Details, 1)
	assert.Equal(t, int64(2), result.Details[0].CorrectChoiceID)
	assert.Equal(t, "3", result.Details[0].CorrectChoiceText)
	assert.True(t, result.Details[0].IsCorrect, "any choice flagged correct is accepted")
	assert.Equal(t, 100.0, result.ScorePercentage)
}

func TestGradeQuiz_EmptyQuiz(t *testing.T) {
	result := GradeQuiz(&Quiz{}, map[int64]int64{1: 1})

	assert.Equal(t, 0, result.Total)
	assert.Equal(t, 0, result.Correct)
	assert.Equal(t, 0.0, result.ScorePercentage)
	assert.Empty(t, result.Details)
}

func TestGradeQuiz_DetailsFollowQuestionOrder(t *testing.T) {
	quiz := &Quiz{}
	answers := map[int64]int64{}
	for i := int64(1); i <= 3; i++ {
		quiz.Questions = append(quiz.Questions, Question{
			ID:      i,
			Choices: []Choice{{ID: i * 10, IsCorrect: true}, {ID: i*10 + 1}},
		})
		answers[i] = i * 10
	}
	answers[2] = 21

	result := GradeQuiz(quiz, answers)

	require.Len(t, result.Details, 3)
	for i, d := range result.Details {
		assert.Equal(t, int64(i+1), d.QuestionID)
	}
	assert.Equal(t, 2, result.Correct)
	assert.Equal(t, 66.67, result.ScorePercentage)
}

func TestGradeQuiz_Deterministic(t *testing.T) {
	quiz := twoQuestionQuiz()
	answers := map[int64]int64{10: 101, 11: 110}

	first := GradeQuiz(quiz, answers)
	second := GradeQuiz(quiz, answers)

	assert.Equal(t, first, second)
	assert.Equal(t, twoQuestionQuiz(), quiz, "grading must not mutate the quiz")
}

func TestScorePercentage(t *testing.T) {
	assert.Equal(t, 0.0, ScorePercentage(0, 0))
	assert.Equal(t, 100.0, ScorePercentage(3, 3))
	assert.Equal(t, 33.33, ScorePercentage(1, 3))
	assert.Equal(t, 14.29, ScorePercentage(1, 7))
}
