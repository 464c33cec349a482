package controllers

import (
	"log"

	"lms/database"
	"lms/middleware"
	courseModels "lms/models/course"

	"github.com/gofiber/fiber/v2"
)

// AnswerFeedback is the post-submission feedback for one submitted question.
// Correct answers and explanations become visible only here, and only for
// questions that were part of this submission.
type AnswerFeedback struct {
	QuestionID    uint    `json:"question_id"`
	Text          string  `json:"text"`
	Submitted     string  `json:"submitted"`
	IsCorrect     bool    `json:"is_correct"`
	PointsAwarded float64 `json:"points_awarded"`
	CorrectAnswer string  `json:"correct_answer"`
	Explanation   string  `json:"explanation"`
}

// AttemptLimitReached reports whether a student has used up a quiz's attempt
// allowance. A non-positive max means unlimited attempts.
func AttemptLimitReached(attempts int64, maxAttempts int) bool {
	return maxAttempts > 0 && attempts >= int64(maxAttempts)
}

// SubmitQuiz scores a student's answers against the quiz's canonical questions
// and appends an immutable attempt record
func SubmitQuiz(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)
	quizID := c.Locals("quizID").(int)

	// Access requires enrollment in the owning course
	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "User not enrolled in this course!", nil)
	}

	quiz, err := loadQuizForCourse(quizID, courseID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	reqData, ok := c.Locals("validatedSubmission").(*struct {
		Answers   []SubmittedAnswer `json:"answers"`
		TimeSpent int               `json:"time_spent"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	// Attempt cap
	var attemptCount int64
	database.Database.Db.Model(&courseModels.QuizAttempt{}).
		Where("user_id = ? AND quiz_id = ? AND is_deleted = ?", userID, quiz.ID, false).
		Count(&attemptCount)
	if AttemptLimitReached(attemptCount, quiz.MaxAttempts) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Maximum attempts reached for this quiz!", nil)
	}

	result := ScoreSubmission(quiz.Questions, reqData.Answers)
	passed := result.Score >= quiz.PassingScore

	attempt := courseModels.QuizAttempt{
		UserID:        userID,
		QuizID:        quiz.ID,
		Answers:       result.Answers,
		Score:         result.Score,
		Passed:        passed,
		TimeSpent:     reqData.TimeSpent,
		AttemptNumber: int(attemptCount) + 1,
	}

	// GORM creates the attempt and its answer rows in one implicit transaction
	if err := database.Database.Db.Create(&attempt).Error; err != nil {
		log.Printf("Error saving quiz attempt: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit quiz!", nil)
	}

	// Passing a lesson-scoped quiz completes the lesson
	if passed && quiz.LessonID != nil {
		var lesson courseModels.Lesson
		if err := database.Database.Db.Where("id = ? AND is_deleted = ?", *quiz.LessonID, false).First(&lesson).Error; err == nil {
			completeLesson(userID, lesson, 0)
		}
	}

	// Feedback covers submitted questions only
	questionByID := make(map[uint]courseModels.Question, len(quiz.Questions))
	for _, q := range quiz.Questions {
		questionByID[q.ID] = q
	}
	submittedIDs := make(map[uint]bool, len(reqData.Answers))
	for _, a := range reqData.Answers {
		submittedIDs[a.QuestionID] = true
	}

	feedback := make([]AnswerFeedback, 0, len(result.Answers))
	for _, a := range result.Answers {
		if !submittedIDs[a.QuestionID] {
			continue
		}
		q := questionByID[a.QuestionID]
		feedback = append(feedback, AnswerFeedback{
			QuestionID:    a.QuestionID,
			Text:          q.Text,
			Submitted:     a.Submitted,
			IsCorrect:     a.IsCorrect,
			PointsAwarded: a.PointsAwarded,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz submitted successfully!", fiber.Map{
		"attempt": fiber.Map{
			"id":             attempt.ID,
			"score":          attempt.Score,
			"passed":         attempt.Passed,
			"attempt_number": attempt.AttemptNumber,
			"time_spent":     attempt.TimeSpent,
		},
		"passed":          passed,
		"correct_answers": feedback,
	})
}
