package chatValidator

import (
	"strings"

	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

const maxMessageLength = 4000

func ChatMessage() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Content  string `json:"content"`
			CourseID *uint  `json:"course_id"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Content) == "" {
			errors["content"] = "Message content is required!"
		} else if len(reqData.Content) > maxMessageLength {
			errors["content"] = "Message content is too long!"
		}

		if reqData.CourseID != nil && *reqData.CourseID < 1 {
			errors["course_id"] = "Invalid course id!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedChatMessage", reqData)
		return c.Next()
	}
}

func ChatHistory() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page  *int `json:"page"`
			Limit *int `json:"limit"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		errors := make(map[string]string)

		if reqData.Page != nil && *reqData.Page < 1 {
			errors["page"] = "Page must be greater than 0!"
		}
		if reqData.Limit != nil && (*reqData.Limit < 1 || *reqData.Limit > 100) {
			errors["limit"] = "Limit must be between 1 and 100!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedList", reqData)
		return c.Next()
	}
}
