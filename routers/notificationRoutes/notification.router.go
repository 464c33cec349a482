package notificationRoutes

import (
	notificationControllers "lms/controllers/notification"
	"lms/middleware"
	"lms/models"
	notificationValidators "lms/validators/notification"

	"github.com/gofiber/fiber/v2"
)

func SetupNotificationRoutes(app *fiber.App) {
	notificationGroup := app.Group("/notification", middleware.JWTMiddleware)

	notificationGroup.Get("/list", notificationValidators.NotificationList(), notificationControllers.GetNotifications)
	notificationGroup.Get("/unread/count", notificationControllers.GetUnreadCount)
	notificationGroup.Patch("/:notification_id/read", notificationValidators.NotificationParams(), notificationControllers.MarkNotificationRead)

	announceGroup := app.Group("/instructor/course", middleware.JWTMiddleware, middleware.RequireRole(models.RoleInstructor, models.RoleAdmin))
	announceGroup.Post("/:course_id/announce", notificationValidators.Announcement(), notificationControllers.SendAnnouncement)
}
