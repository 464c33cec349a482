package courseValidator

import (
	"strconv"
	"strings"

	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

// parseLessonID validates the :lesson_id route param and stashes it as lessonID
func parseLessonID(c *fiber.Ctx) error {
	lessonIDStr := strings.TrimSpace(c.Params("lesson_id"))
	if lessonIDStr == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Lesson ID is required!", nil)
	}

	lessonID, err := strconv.Atoi(lessonIDStr)
	if err != nil || lessonID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Lesson ID!", nil)
	}

	c.Locals("lessonID", lessonID)
	return nil
}

func CreateLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := parseCourseID(c); err != nil {
			return err
		}

		reqData := new(struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			Duration    int    `json:"duration"`
			OrderIndex  int    `json:"order_index"`
			IsPreview   bool   `json:"is_preview"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if reqData.Duration < 0 {
			errors["duration"] = "Duration cannot be negative!"
		}
		if reqData.OrderIndex < 0 {
			errors["order_index"] = "Order index cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLesson", reqData)
		return c.Next()
	}
}

func UpdateLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := parseCourseID(c); err != nil {
			return err
		}
		if err := parseLessonID(c); err != nil {
			return err
		}

		reqData := new(struct {
			Title       *string `json:"title"`
			Description *string `json:"description"`
			Duration    *int    `json:"duration"`
			OrderIndex  *int    `json:"order_index"`
			IsPreview   *bool   `json:"is_preview"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Title != nil && strings.TrimSpace(*reqData.Title) == "" {
			errors["title"] = "Title cannot be empty!"
		}
		if reqData.Duration != nil && *reqData.Duration < 0 {
			errors["duration"] = "Duration cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLessonUpdate", reqData)
		return c.Next()
	}
}

// LessonParams validates the course and lesson id route params
func LessonParams() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := parseCourseID(c); err != nil {
			return err
		}
		if err := parseLessonID(c); err != nil {
			return err
		}
		return c.Next()
	}
}

func MarkLessonComplete() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := parseCourseID(c); err != nil {
			return err
		}
		if err := parseLessonID(c); err != nil {
			return err
		}

		reqData := new(struct {
			TimeSpent int `json:"time_spent"`
		})

		// Body is optional, time spent defaults to zero
		if err := c.BodyParser(reqData); err == nil {
			if reqData.TimeSpent < 0 {
				return middleware.ValidationErrorResponse(c, map[string]string{
					"time_spent": "Time spent cannot be negative!",
				})
			}
			c.Locals("validatedLessonComplete", reqData)
		}

		return c.Next()
	}
}
