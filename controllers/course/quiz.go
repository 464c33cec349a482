package controllers

import (
	"encoding/json"
	"errors"
	"log"

	"lms/database"
	"lms/middleware"
	courseModels "lms/models/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var errQuizNotInCourse = errors.New("quiz does not belong to course")

// QuestionInput is one question definition supplied at quiz creation
type QuestionInput struct {
	Text          string   `json:"text"`
	Type          string   `json:"type"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Points        float64  `json:"points"`
	Explanation   string   `json:"explanation"`
}

// InstructorCreateQuiz creates a quiz with its embedded question set, scoped to
// a course or to one of its lessons. The question set is immutable afterwards.
func InstructorCreateQuiz(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if course.InstructorID != userID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not own this course!", nil)
	}

	reqData, ok := c.Locals("validatedQuiz").(*struct {
		Title        string          `json:"title"`
		LessonID     *uint           `json:"lesson_id"`
		PassingScore float64         `json:"passing_score"`
		MaxAttempts  int             `json:"max_attempts"`
		TimeLimit    int             `json:"time_limit"`
		Questions    []QuestionInput `json:"questions"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	quiz := courseModels.Quiz{
		Title:        reqData.Title,
		PassingScore: reqData.PassingScore,
		MaxAttempts:  reqData.MaxAttempts,
		TimeLimit:    reqData.TimeLimit,
	}

	// A quiz belongs to the course itself or to exactly one lesson
	if reqData.LessonID != nil {
		var lesson courseModels.Lesson
		if err := database.Database.Db.Where("id = ? AND course_id = ? AND is_deleted = ?", *reqData.LessonID, courseID, false).First(&lesson).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
		}
		var existing courseModels.Quiz
		if err := database.Database.Db.Where("lesson_id = ? AND is_deleted = ?", lesson.ID, false).First(&existing).Error; err == nil {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Lesson already has a quiz!", nil)
		}
		quiz.LessonID = &lesson.ID
	} else {
		cid := uint(courseID)
		quiz.CourseID = &cid
	}

	for i, q := range reqData.Questions {
		optionsJSON, _ := json.Marshal(q.Options)
		quiz.Questions = append(quiz.Questions, courseModels.Question{
			Text:          q.Text,
			Type:          q.Type,
			Options:       string(optionsJSON),
			CorrectAnswer: q.CorrectAnswer,
			Points:        q.Points,
			Explanation:   q.Explanation,
			OrderIndex:    i,
		})
	}

	// GORM creates the quiz and its questions in one implicit transaction
	if err := database.Database.Db.Create(&quiz).Error; err != nil {
		log.Printf("Error creating quiz: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Quiz created successfully!", quiz)
}

// QuestionView is the learner-facing question payload. It carries no correct
// answer and no explanation.
type QuestionView struct {
	ID         uint     `json:"id"`
	Text       string   `json:"text"`
	Type       string   `json:"type"`
	Options    []string `json:"options"`
	Points     float64  `json:"points"`
	OrderIndex int      `json:"order_index"`
}

// sanitizeQuestions builds learner-facing question payloads from canonical questions
func sanitizeQuestions(questions []courseModels.Question) []QuestionView {
	views := make([]QuestionView, len(questions))
	for i, q := range questions {
		views[i] = QuestionView{
			ID:         q.ID,
			Text:       q.Text,
			Type:       q.Type,
			Options:    q.OptionValues(),
			Points:     q.Points,
			OrderIndex: q.OrderIndex,
		}
	}
	return views
}

// loadQuizForCourse fetches a quiz with questions and checks it belongs to the
// course, directly or through one of its lessons
func loadQuizForCourse(quizID, courseID int) (*courseModels.Quiz, error) {
	var quiz courseModels.Quiz
	if err := database.Database.Db.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("order_index asc")
	}).Where("id = ? AND is_deleted = ?", quizID, false).First(&quiz).Error; err != nil {
		return nil, err
	}

	if quiz.CourseID != nil && *quiz.CourseID == uint(courseID) {
		return &quiz, nil
	}
	if quiz.LessonID != nil {
		var lesson courseModels.Lesson
		if err := database.Database.Db.Where("id = ? AND course_id = ? AND is_deleted = ?", *quiz.LessonID, courseID, false).First(&lesson).Error; err == nil {
			return &quiz, nil
		}
	}
	return nil, errQuizNotInCourse
}

// GetQuiz returns the sanitized quiz for an enrolled student along with the
// attempts they have left
func GetQuiz(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)
	quizID := c.Locals("quizID").(int)

	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "User not enrolled in this course!", nil)
	}

	quiz, err := loadQuizForCourse(quizID, courseID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	var attemptCount int64
	database.Database.Db.Model(&courseModels.QuizAttempt{}).
		Where("user_id = ? AND quiz_id = ? AND is_deleted = ?", userID, quiz.ID, false).
		Count(&attemptCount)

	remaining := quiz.MaxAttempts - int(attemptCount)
	if remaining < 0 {
		remaining = 0
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz fetched successfully!", fiber.Map{
		"quiz": fiber.Map{
			"id":            quiz.ID,
			"title":         quiz.Title,
			"passing_score": quiz.PassingScore,
			"max_attempts":  quiz.MaxAttempts,
			"time_limit":    quiz.TimeLimit,
			"questions":     sanitizeQuestions(quiz.Questions),
		},
		"attempts_used":      attemptCount,
		"attempts_remaining": remaining,
	})
}

// GetQuizAttempts returns the student's attempt history for a quiz
func GetQuizAttempts(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)
	quizID := c.Locals("quizID").(int)

	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "User not enrolled in this course!", nil)
	}

	quiz, err := loadQuizForCourse(quizID, courseID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	var attempts []courseModels.QuizAttempt
	if err := database.Database.Db.Preload("Answers").
		Where("user_id = ? AND quiz_id = ? AND is_deleted = ?", userID, quiz.ID, false).
		Order("created_at desc").Find(&attempts).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch attempts!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Attempts fetched successfully!", fiber.Map{
		"attempts": attempts,
		"total":    len(attempts),
	})
}
