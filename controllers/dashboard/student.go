package controllers

import (
	"lms/database"
	"lms/middleware"
	courseModels "lms/models/course"
	"lms/utils"

	"github.com/gofiber/fiber/v2"
)

// GetStudentActivity returns the student's merged, time-ordered activity feed
func GetStudentActivity(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, _ := c.Locals("validatedList").(*struct {
		Page  *int `json:"page"`
		Limit *int `json:"limit"`
	})

	var page, limit int
	if reqData != nil {
		page, limit, _ = utils.Pagination(reqData.Page, reqData.Limit)
	} else {
		page, limit, _ = utils.Pagination(nil, nil)
	}

	// Lesson completion events
	var completions []courseModels.LessonProgress
	if err := database.Database.Db.Where("user_id = ? AND completed = ?", userID, true).Find(&completions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch activity!", nil)
	}

	lessonEvents := make([]Activity, 0, len(completions))
	for _, lp := range completions {
		if lp.CompletedAt == nil {
			continue
		}
		var lesson courseModels.Lesson
		title := ""
		if err := database.Database.Db.Select("title").Where("id = ?", lp.LessonID).First(&lesson).Error; err == nil {
			title = lesson.Title
		}
		lessonEvents = append(lessonEvents, LessonActivity(lp.LessonID, title, *lp.CompletedAt))
	}

	// Quiz attempt events
	var attempts []courseModels.QuizAttempt
	if err := database.Database.Db.Where("user_id = ? AND is_deleted = ?", userID, false).Find(&attempts).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch activity!", nil)
	}

	quizEvents := make([]Activity, 0, len(attempts))
	for _, a := range attempts {
		var quiz courseModels.Quiz
		title := ""
		if err := database.Database.Db.Select("title").Where("id = ?", a.QuizID).First(&quiz).Error; err == nil {
			title = quiz.Title
		}
		quizEvents = append(quizEvents, QuizActivity(a.ID, title, a.Score, a.CreatedAt))
	}

	// Full history is merged and sorted before pagination
	merged := MergeActivities(lessonEvents, quizEvents)
	pageItems := PaginateActivities(merged, page, limit)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Activity fetched successfully!", fiber.Map{
		"activities": pageItems,
		"pagination": fiber.Map{
			"total": len(merged),
			"page":  page,
			"limit": limit,
		},
	})
}

// GetStudentDashboard returns the student's overall learning stats
func GetStudentDashboard(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var enrollments []courseModels.Enrollment
	if err := db.Where("user_id = ? AND is_deleted = ?", userID, false).Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch dashboard!", nil)
	}

	inProgress := 0
	completed := 0
	for _, e := range enrollments {
		switch e.Status {
		case courseModels.StatusCompleted:
			completed++
		case courseModels.StatusInProgress:
			inProgress++
		}
	}

	var totalAttempts, passedAttempts int64
	db.Model(&courseModels.QuizAttempt{}).Where("user_id = ? AND is_deleted = ?", userID, false).Count(&totalAttempts)
	db.Model(&courseModels.QuizAttempt{}).Where("user_id = ? AND is_deleted = ? AND passed = ?", userID, false, true).Count(&passedAttempts)

	passRate := float64(0)
	if totalAttempts > 0 {
		passRate = float64(passedAttempts) / float64(totalAttempts) * 100
	}

	var totalSeconds int64
	db.Model(&courseModels.LessonProgress{}).Where("user_id = ?", userID).
		Select("COALESCE(SUM(time_spent), 0)").Scan(&totalSeconds)

	var certificates int64
	db.Model(&courseModels.Certificate{}).Where("user_id = ? AND is_deleted = ?", userID, false).Count(&certificates)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully!", fiber.Map{
		"stats": fiber.Map{
			"enrolled_courses":    len(enrollments),
			"courses_in_progress": inProgress,
			"courses_completed":   completed,
			"quiz_attempts":       totalAttempts,
			"quiz_pass_rate":      passRate,
			"learning_seconds":    totalSeconds,
			"certificates":        certificates,
		},
	})
}
