package controllers

import (
	courseModels "lms/models/course"
)

// SubmittedAnswer is one (question, answer) pair from a quiz submission
type SubmittedAnswer struct {
	QuestionID uint   `json:"question_id"`
	Answer     string `json:"answer"`
}

// ScoreResult is the outcome of grading one submission
type ScoreResult struct {
	Score        float64
	EarnedPoints float64
	TotalPoints  float64
	CorrectCount int
	Answers      []courseModels.AttemptAnswer
}

// ScoreSubmission grades submitted answers against the quiz's canonical
// questions. Answers are matched by question id and compared to the correct
// answer with exact, case-sensitive equality. Two policies are deliberate:
// submitted answers for unknown question ids are silently ignored, and
// questions missing from the submission count as incorrect with zero points.
// The score is the point-weighted percentage, clamped to [0, 100].
func ScoreSubmission(questions []courseModels.Question, answers []SubmittedAnswer) ScoreResult {
	submittedByQuestion := make(map[uint]string, len(answers))
	for _, a := range answers {
		if _, dup := submittedByQuestion[a.QuestionID]; dup {
			continue // first answer wins on duplicates
		}
		submittedByQuestion[a.QuestionID] = a.Answer
	}

	result := ScoreResult{Answers: make([]courseModels.AttemptAnswer, 0, len(questions))}

	for _, q := range questions {
		result.TotalPoints += q.Points

		submitted, answered := submittedByQuestion[q.ID]
		correct := answered && submitted == q.CorrectAnswer

		answer := courseModels.AttemptAnswer{
			QuestionID: q.ID,
			Submitted:  submitted,
			IsCorrect:  correct,
		}
		if correct {
			answer.PointsAwarded = q.Points
			result.EarnedPoints += q.Points
			result.CorrectCount++
		}
		result.Answers = append(result.Answers, answer)
	}

	// Zero-point quizzes score 0, never NaN
	if result.TotalPoints > 0 {
		result.Score = result.EarnedPoints / result.TotalPoints * 100
	}
	if result.Score < 0 {
		result.Score = 0
	}
	if result.Score > 100 {
		result.Score = 100
	}

	return result
}
