package controllers

import (
	"testing"

	courseModels "lms/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func question(id uint, correct string, points float64) courseModels.Question {
	q := courseModels.Question{
		Text:          "q",
		Type:          courseModels.QuestionShortAnswer,
		CorrectAnswer: correct,
		Points:        points,
	}
	q.ID = id
	return q
}

func TestScoreSubmission_PointWeighted(t *testing.T) {
	questions := []courseModels.Question{
		question(1, "A", 1),
		question(2, "B", 3),
	}

	// Only the 3-point question is correct: 3 of 4 points
	result := ScoreSubmission(questions, []SubmittedAnswer{
		{QuestionID: 1, Answer: "wrong"},
		{QuestionID: 2, Answer: "B"},
	})

	assert.Equal(t, 75.0, result.Score)
	assert.Equal(t, 3.0, result.EarnedPoints)
	assert.Equal(t, 4.0, result.TotalPoints)
	assert.Equal(t, 1, result.CorrectCount)
}

func TestScoreSubmission_HalfCorrect(t *testing.T) {
	questions := []courseModels.Question{
		question(1, "A", 1),
		question(2, "B", 1),
	}

	result := ScoreSubmission(questions, []SubmittedAnswer{
		{QuestionID: 1, Answer: "A"},
		{QuestionID: 2, Answer: "C"},
	})

	assert.Equal(t, 50.0, result.Score)
	assert.Equal(t, 1, result.CorrectCount)
}

func TestScoreSubmission_AllCorrect(t *testing.T) {
	questions := []courseModels.Question{
		question(1, "A", 2),
		question(2, "B", 2),
	}

	result := ScoreSubmission(questions, []SubmittedAnswer{
		{QuestionID: 1, Answer: "A"},
		{QuestionID: 2, Answer: "B"},
	})

	assert.Equal(t, 100.0, result.Score)
}

func TestScoreSubmission_UnknownQuestionIgnored(t *testing.T) {
	questions := []courseModels.Question{
		question(1, "A", 1),
	}

	// Answer for question 99 does not exist on this quiz
	result := ScoreSubmission(questions, []SubmittedAnswer{
		{QuestionID: 1, Answer: "A"},
		{QuestionID: 99, Answer: "A"},
	})

	assert.Equal(t, 100.0, result.Score)
	require.Len(t, result.Answers, 1)
	assert.Equal(t, uint(1), result.Answers[0].QuestionID)
}

func TestScoreSubmission_UnansweredCountsIncorrect(t *testing.T) {
	questions := []courseModels.Question{
		question(1, "A", 1),
		question(2, "B", 1),
	}

	result := ScoreSubmission(questions, []SubmittedAnswer{
		{QuestionID: 1, Answer: "A"},
	})

	assert.Equal(t, 50.0, result.Score)
	require.Len(t, result.Answers, 2)
	assert.False(t, result.Answers[1].IsCorrect)
	assert.Equal(t, 0.0, result.Answers[1].PointsAwarded)
	assert.Equal(t, "", result.Answers[1].Submitted)
}

func TestScoreSubmission_CaseSensitive(t *testing.T) {
	questions := []courseModels.Question{
		question(1, "Paris", 1),
	}

	result := ScoreSubmission(questions, []SubmittedAnswer{
		{QuestionID: 1, Answer: "paris"},
	})

	assert.Equal(t, 0.0, result.Score)
	assert.Equal(t, 0, result.CorrectCount)
}

func TestScoreSubmission_DuplicateAnswerFirstWins(t *testing.T) {
	questions := []courseModels.Question{
		question(1, "A", 1),
	}

	result := ScoreSubmission(questions, []SubmittedAnswer{
		{QuestionID: 1, Answer: "A"},
		{QuestionID: 1, Answer: "B"},
	})

	assert.Equal(t, 100.0, result.Score)
}

func TestScoreSubmission_ZeroPointsNoNaN(t *testing.T) {
	questions := []courseModels.Question{
		question(1, "A", 0),
	}

	result := ScoreSubmission(questions, []SubmittedAnswer{
		{QuestionID: 1, Answer: "A"},
	})

	assert.Equal(t, 0.0, result.Score)
}

func TestScoreSubmission_NoQuestions(t *testing.T) {
	result := ScoreSubmission(nil, []SubmittedAnswer{
		{QuestionID: 1, Answer: "A"},
	})

	assert.Equal(t, 0.0, result.Score)
	assert.Empty(t, result.Answers)
}
