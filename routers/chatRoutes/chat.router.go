package chatRoutes

import (
	chatControllers "lms/controllers/chat"
	"lms/middleware"
	chatValidators "lms/validators/chat"

	"github.com/gofiber/fiber/v2"
)

func SetupChatRoutes(app *fiber.App) {
	chatGroup := app.Group("/chat", middleware.JWTMiddleware)

	chatGroup.Post("/message", chatValidators.ChatMessage(), chatControllers.SendMessage)
	chatGroup.Get("/history", chatValidators.ChatHistory(), chatControllers.GetHistory)
}
