package courseRoutes

import (
	controllers "lms/controllers/course"
	"lms/middleware"
	"lms/models"
	validators "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupInstructorCourseRoutes sets up all instructor course management routes
func SetupInstructorCourseRoutes(app *fiber.App) {
	instructorGroup := app.Group("/instructor/course", middleware.JWTMiddleware, middleware.RequireRole(models.RoleInstructor, models.RoleAdmin))

	// Course CRUD
	instructorGroup.Post("/create", validators.CreateCourse(), controllers.InstructorCreateCourse)
	instructorGroup.Put("/:id", validators.UpdateCourse(), controllers.InstructorUpdateCourse)
	instructorGroup.Delete("/:id", validators.CourseID(), controllers.InstructorDeleteCourse)
	instructorGroup.Get("/list", validators.CourseList(), controllers.InstructorGetCourses)
	instructorGroup.Post("/:id/publish", validators.CourseID(), controllers.InstructorPublishCourse)
	instructorGroup.Post("/:id/thumbnail", validators.CourseID(), controllers.InstructorUploadThumbnail)

	// Lesson management
	instructorGroup.Post("/:id/lesson", validators.CreateLesson(), controllers.InstructorCreateLesson)
	instructorGroup.Put("/:course_id/lesson/:lesson_id", validators.UpdateLesson(), controllers.InstructorUpdateLesson)
	instructorGroup.Delete("/:course_id/lesson/:lesson_id", validators.LessonParams(), controllers.InstructorDeleteLesson)
	instructorGroup.Post("/:course_id/lesson/:lesson_id/video", validators.LessonParams(), controllers.InstructorUploadLessonVideo)

	// Quiz management
	instructorGroup.Post("/:id/quiz", validators.CreateQuiz(), controllers.InstructorCreateQuiz)
}
