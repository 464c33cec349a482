package controllers

import (
	"log"
	"time"

	"lms/database"
	"lms/middleware"
	courseModels "lms/models/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm/clause"
)

// CompletionPercentage converts completed/total lesson counts to a percentage.
// Courses with zero lessons report 0, never NaN, and the completed count is
// capped at the total so stale rows can never push progress past 100.
func CompletionPercentage(completed, total int) float64 {
	if total <= 0 {
		return 0
	}
	if completed < 0 {
		completed = 0
	}
	if completed > total {
		completed = total
	}
	return float64(completed) / float64(total) * 100
}

// completeLesson upserts the (user, lesson) completion fact and recomputes the
// cached enrollment progress. The unique index on LessonProgress is the
// backstop against concurrent duplicate inserts.
func completeLesson(userID uint, lesson courseModels.Lesson, timeSpent int) {
	now := time.Now()
	progress := courseModels.LessonProgress{
		UserID:      userID,
		LessonID:    lesson.ID,
		CourseID:    lesson.CourseID,
		Completed:   true,
		TimeSpent:   timeSpent,
		CompletedAt: &now,
	}

	if err := database.Database.Db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "lesson_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"completed", "time_spent", "completed_at"}),
	}).Create(&progress).Error; err != nil {
		log.Printf("Error upserting lesson progress for user %d lesson %d: %v", userID, lesson.ID, err)
	}

	updateEnrollmentProgress(userID, lesson.CourseID)
}

// updateEnrollmentProgress recomputes the cached completion percentage from
// LessonProgress rows. Called on every completion write so the cache never
// drifts from the per-lesson facts.
func updateEnrollmentProgress(userID uint, courseID uint) {
	var totalLessons int64
	var completedLessons int64

	database.Database.Db.Model(&courseModels.Lesson{}).
		Where("course_id = ? AND is_deleted = ?", courseID, false).
		Count(&totalLessons)
	database.Database.Db.Model(&courseModels.LessonProgress{}).
		Joins("JOIN lessons ON lesson_progresses.lesson_id = lessons.id").
		Where("lesson_progresses.user_id = ? AND lesson_progresses.course_id = ? AND lesson_progresses.completed = ? AND lessons.is_deleted = ?",
			userID, courseID, true, false).
		Count(&completedLessons)

	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&enrollment).Error; err != nil {
		return
	}

	enrollment.CompletedLessons = int(completedLessons)
	enrollment.TotalLessons = int(totalLessons)

	enrollment.Progress = CompletionPercentage(int(completedLessons), int(totalLessons))

	if enrollment.Progress >= 100 {
		enrollment.Status = courseModels.StatusCompleted
		if enrollment.CompletedAt == nil {
			now := time.Now()
			enrollment.CompletedAt = &now
		}
	} else if enrollment.Progress > 0 {
		enrollment.Status = courseModels.StatusInProgress
	}

	if err := database.Database.Db.Save(&enrollment).Error; err != nil {
		log.Printf("Error saving enrollment progress for user %d course %d: %v", userID, courseID, err)
	}
}

// refreshCourseTotals refreshes cached lesson totals on all enrollments of a
// course after the instructor adds or removes lessons
func refreshCourseTotals(courseID uint) {
	var enrollments []courseModels.Enrollment
	if err := database.Database.Db.Where("course_id = ? AND is_deleted = ?", courseID, false).Find(&enrollments).Error; err != nil {
		return
	}
	for _, e := range enrollments {
		updateEnrollmentProgress(e.UserID, courseID)
	}
}

// LessonWithProgress annotates a lesson with the requesting student's
// completion state
type LessonWithProgress struct {
	courseModels.Lesson
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at"`
	TimeSpent   int        `json:"time_spent"`
}

// GetCourseProgress returns the ordered lesson list annotated with completion
// state plus the aggregate percentage
func GetCourseProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
	}

	var lessons []courseModels.Lesson
	if err := database.Database.Db.Where("course_id = ? AND is_deleted = ?", courseID, false).Order("order_index asc").Find(&lessons).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch lessons!", nil)
	}

	var records []courseModels.LessonProgress
	database.Database.Db.Where("user_id = ? AND course_id = ?", userID, courseID).Find(&records)

	recordByLesson := make(map[uint]courseModels.LessonProgress, len(records))
	for _, r := range records {
		recordByLesson[r.LessonID] = r
	}

	completedCount := 0
	result := make([]LessonWithProgress, len(lessons))
	for i, lesson := range lessons {
		entry := LessonWithProgress{Lesson: lesson}
		if r, ok := recordByLesson[lesson.ID]; ok && r.Completed {
			entry.Completed = true
			entry.CompletedAt = r.CompletedAt
			entry.TimeSpent = r.TimeSpent
			completedCount++
		}
		result[i] = entry
	}

	percentage := CompletionPercentage(completedCount, len(lessons))

	// Reading progress counts as course access
	now := time.Now()
	enrollment.LastAccessedAt = &now
	database.Database.Db.Save(&enrollment)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", fiber.Map{
		"overall_progress":  percentage,
		"completed_lessons": completedCount,
		"total_lessons":     len(lessons),
		"lessons":           result,
		"enrolled_at":       enrollment.CreatedAt,
		"last_accessed":     enrollment.LastAccessedAt,
	})
}
