package courseRoutes

import (
	controllers "lms/controllers/course"
	"lms/middleware"
	validators "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up all student-facing course routes
func SetupCourseRoutes(app *fiber.App) {
	userGroup := app.Group("/course")

	// Catalog browsing
	userGroup.Get("/list", middleware.JWTMiddleware, validators.CourseList(), controllers.GetAllCourses)
	userGroup.Get("/:id", middleware.JWTMiddleware, validators.CourseID(), controllers.GetCourseDetails)

	// Enrollment
	userGroup.Post("/:id/enroll", middleware.JWTMiddleware, validators.CourseID(), controllers.EnrollInCourse)

	// Lessons and completion
	userGroup.Get("/:course_id/lesson/:lesson_id", middleware.JWTMiddleware, validators.LessonParams(), controllers.GetLesson)
	userGroup.Post("/:course_id/lesson/:lesson_id/complete", middleware.JWTMiddleware, validators.MarkLessonComplete(), controllers.MarkLessonComplete)

	// Progress tracking
	userGroup.Get("/:course_id/progress", middleware.JWTMiddleware, validators.CourseID(), controllers.GetCourseProgress)

	// Quizzes
	userGroup.Get("/:course_id/quiz/:quiz_id", middleware.JWTMiddleware, validators.QuizParams(), controllers.GetQuiz)
	userGroup.Post("/:course_id/quiz/:quiz_id/submit", middleware.JWTMiddleware, validators.SubmitQuiz(), controllers.SubmitQuiz)
	userGroup.Get("/:course_id/quiz/:quiz_id/attempts", middleware.JWTMiddleware, validators.QuizParams(), controllers.GetQuizAttempts)

	// Reviews
	userGroup.Post("/:id/review", middleware.JWTMiddleware, validators.CourseID(), validators.SubmitReview(), controllers.SubmitReview)
	userGroup.Get("/:id/reviews", middleware.JWTMiddleware, validators.CourseID(), validators.CourseList(), controllers.GetCourseReviews)

	// Certificates
	userGroup.Post("/:course_id/certificate/generate", middleware.JWTMiddleware, validators.CourseID(), controllers.GenerateCertificate)

	userEnrollGroup := app.Group("/user")
	userEnrollGroup.Get("/enrollments", middleware.JWTMiddleware, validators.EnrollmentList(), controllers.GetEnrollments)
	userEnrollGroup.Get("/certificates", middleware.JWTMiddleware, controllers.GetUserCertificates)

	// Public certificate verification, no auth required
	app.Get("/certificate/verify/:code", controllers.VerifyCertificate)
}
