package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCacheKey(t *testing.T) {
	tests := []struct {
		name        string
		service     string
		objectType  string
		identifier  string
		params      []string
		expectedKey string
	}{
		{name: "no params", service: "quiz", objectType: "module", identifier: "7", expectedKey: "learnhub:quiz:module:7"},
		{name: "empty params", service: "quiz", objectType: "module", identifier: "7", params: []string{}, expectedKey: "learnhub:quiz:module:7"},
		{name: "one param", service: "quiz", objectType: "result", identifier: "7", params: []string{"v2"}, expectedKey: "learnhub:quiz:result:7:v2"},
		{name: "many params", service: "quiz", objectType: "result", identifier: "7", params: []string{"a", "b"}, expectedKey: "learnhub:quiz:result:7:a_b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedKey, GenerateCacheKey(tt.service, tt.objectType, tt.identifier, tt.params...))
		})
	}
}

func TestQuizByModuleKey(t *testing.T) {
	assert.Equal(t, "learnhub:quiz:module:42", QuizByModuleKey(42))
}

func TestQuizVersionKey(t *testing.T) {
	assert.Equal(t, "learnhub:quiz:version:7", QuizVersionKey(7))
	assert.NotEqual(t, QuizByModuleKey(7), QuizVersionKey(7))
}
