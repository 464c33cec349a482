package controllers

import (
	"time"

	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"
)

// GetInstructorDashboard returns per-course stats and cross-course aggregates
// for all of the caller's courses. Per-course stats are independent reads, so
// they are computed concurrently and joined.
func GetInstructorDashboard(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var courses []courseModels.Course
	if err := database.Database.Db.Where("instructor_id = ? AND is_deleted = ?", userID, false).Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	now := time.Now()
	courseStats := make([]CourseStats, len(courses))

	var g errgroup.Group
	for i, course := range courses {
		i, course := i, course
		g.Go(func() error {
			var enrollments []courseModels.Enrollment
			if err := database.Database.Db.Where("course_id = ? AND is_deleted = ?", course.ID, false).Find(&enrollments).Error; err != nil {
				return err
			}
			courseStats[i] = ComputeCourseStats(course, enrollments, now)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to compute course stats!", nil)
	}

	stats := AggregateInstructorStats(courseStats)

	// Latest enrollments across the instructor's courses
	type RecentEnrollment struct {
		UserName   string    `json:"user_name"`
		CourseName string    `json:"course_name"`
		EnrolledAt time.Time `json:"enrolled_at"`
	}

	courseIDs := make([]uint, len(courses))
	titleByID := make(map[uint]string, len(courses))
	for i, course := range courses {
		courseIDs[i] = course.ID
		titleByID[course.ID] = course.Title
	}

	recent := []RecentEnrollment{}
	if len(courseIDs) > 0 {
		var recentEnrollments []courseModels.Enrollment
		database.Database.Db.Where("course_id IN ? AND is_deleted = ?", courseIDs, false).
			Order("created_at desc").Limit(5).Find(&recentEnrollments)

		for _, e := range recentEnrollments {
			var student models.User
			database.Database.Db.Select("name").Where("id = ?", e.UserID).First(&student)
			recent = append(recent, RecentEnrollment{
				UserName:   student.Name,
				CourseName: titleByID[e.CourseID],
				EnrolledAt: e.CreatedAt,
			})
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully!", fiber.Map{
		"courses":            courseStats,
		"stats":              stats,
		"recent_enrollments": recent,
	})
}

// GetCourseStudents lists the enrolled students of an owned course
func GetCourseStudents(c *fiber.Ctx) error {
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

	var enrollments []courseModels.Enrollment
	if err := database.Database.Db.Where("course_id = ? AND is_deleted = ?", courseID, false).
		Order("created_at desc").Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	type StudentProgress struct {
		UserID      uint       `json:"user_id"`
		UserName    string     `json:"user_name"`
		UserEmail   string     `json:"user_email"`
		Status      string     `json:"status"`
		Progress    float64    `json:"progress"`
		EnrolledAt  time.Time  `json:"enrolled_at"`
		CompletedAt *time.Time `json:"completed_at"`
	}

	result := make([]StudentProgress, len(enrollments))
	for i, e := range enrollments {
		var student models.User
		database.Database.Db.Select("name, email").Where("id = ?", e.UserID).First(&student)
		result[i] = StudentProgress{
			UserID:      e.UserID,
			UserName:    student.Name,
			UserEmail:   student.Email,
			Status:      e.Status,
			Progress:    e.Progress,
			EnrolledAt:  e.CreatedAt,
			CompletedAt: e.CompletedAt,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Students fetched successfully!", fiber.Map{
		"students": result,
		"total":    len(result),
	})
}
