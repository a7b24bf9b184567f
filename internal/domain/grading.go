package domain

import "learnhub/internal/util"

// NoAnswerText is reported as the selected choice text when a question was
// left unanswered or answered with a choice that does not belong to it.
const NoAnswerText = "No answer"

// GradeQuiz scores answers (question id -> choice id) against the quiz.
//
// Every question counts toward Total. Questions without a correct choice are
// skipped: they appear neither in Details nor in Correct. GradeQuiz does no I/O.
func GradeQuiz(quiz *Quiz, answers map[int64]int64) *QuizResult {
	result := &QuizResult{
		Total:   len(quiz.Questions),
		Details: make([]QuestionResult, 0, len(quiz.Questions)),
	}

	for i := range quiz.Questions {
		question := &quiz.Questions[i]

		correct, ok := question.CorrectChoice()
		if !ok {
			continue
		}

		detail := QuestionResult{
			QuestionID:         question.ID,
			QuestionText:       question.Text,
			SelectedChoiceText: NoAnswerText,
			CorrectChoiceID:    correct.ID,
			CorrectChoiceText:  correct.Text,
		}

		if selectedID, answered := answers[question.ID]; answered {
			if selected, found := question.FindChoice(selectedID); found {
				detail.SelectedChoiceID = selected.ID
				detail.SelectedChoiceText = selected.Text
				detail.IsCorrect = selected.IsCorrect
			}
		}

		if detail.IsCorrect {
			result.Correct++
		}
		result.Details = append(result.Details, detail)
	}

	result.ScorePercentage = ScorePercentage(result.Correct, result.Total)
	return result
}

// ScorePercentage is correct/total*100 rounded to two decimals, or 0 when total is 0.
func ScorePercentage(correct, total int) float64 {
	if total <= 0 {
		return 0
	}
	return util.RoundTo(float64(correct)/float64(total)*100, 2)
}
