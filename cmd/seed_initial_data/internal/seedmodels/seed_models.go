package seedmodels

import "learnhub/internal/dto"

// SeedModule is one course module in the JSON seed file. Quiz is optional and
// uses the same shape as the create-quiz request body.
type SeedModule struct {
	Title   string                 `json:"title"`
	Content string                 `json:"content"`
	Type    string                 `json:"type"`
	Quiz    *dto.CreateQuizRequest `json:"quiz,omitempty"`
}
