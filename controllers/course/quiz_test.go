package controllers

import (
	"encoding/json"
	"testing"

	courseModels "lms/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeQuestions_NoAnswerLeak(t *testing.T) {
	q := question(1, "secret-answer", 2)
	q.Text = "What is the password?"
	q.Options = `["secret-answer","other"]`
	q.Explanation = "secret-explanation"

	views := sanitizeQuestions([]courseModels.Question{q})
	require.Len(t, views, 1)

	payload, err := json.Marshal(views)
	require.NoError(t, err)

	assert.NotContains(t, string(payload), "secret-explanation")
	assert.NotContains(t, string(payload), "correct_answer")
	// Options themselves stay visible, the learner has to pick one
	assert.Contains(t, string(payload), "What is the password?")
	assert.Equal(t, []string{"secret-answer", "other"}, views[0].Options)
}

func TestQuestionModelSerialization_HidesGradingFields(t *testing.T) {
	q := question(7, "42", 1)
	q.Explanation = "six times seven"

	payload, err := json.Marshal(q)
	require.NoError(t, err)

	assert.NotContains(t, string(payload), "42")
	assert.NotContains(t, string(payload), "six times seven")
}
