package dashboardRoutes

import (
	dashboardControllers "lms/controllers/dashboard"
	"lms/middleware"
	"lms/models"
	dashboardValidators "lms/validators/dashboard"

	"github.com/gofiber/fiber/v2"
)

func SetupDashboardRoutes(app *fiber.App) {
	studentGroup := app.Group("/student", middleware.JWTMiddleware)

	studentGroup.Get("/dashboard", dashboardControllers.GetStudentDashboard)
	studentGroup.Get("/activity", dashboardValidators.ActivityList(), dashboardControllers.GetStudentActivity)

	instructorGroup := app.Group("/instructor", middleware.JWTMiddleware, middleware.RequireRole(models.RoleInstructor, models.RoleAdmin))

	instructorGroup.Get("/dashboard", dashboardControllers.GetInstructorDashboard)
	instructorGroup.Get("/dashboard/course/:course_id/students", dashboardValidators.CourseParams(), dashboardControllers.GetCourseStudents)
}
