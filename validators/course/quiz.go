package courseValidator

import (
	"strconv"
	"strings"

	controllers "lms/controllers/course"
	"lms/middleware"
	courseModels "lms/models/course"

	"github.com/gofiber/fiber/v2"
)

// parseQuizID validates the :quiz_id route param and stashes it as quizID
func parseQuizID(c *fiber.Ctx) error {
	quizIDStr := strings.TrimSpace(c.Params("quiz_id"))
	if quizIDStr == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Quiz ID is required!", nil)
	}

	quizID, err := strconv.Atoi(quizIDStr)
	if err != nil || quizID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Quiz ID!", nil)
	}

	c.Locals("quizID", quizID)
	return nil
}

func validQuestionType(t string) bool {
	switch t {
	case courseModels.QuestionMultipleChoice, courseModels.QuestionTrueFalse, courseModels.QuestionShortAnswer:
		return true
	}
	return false
}

func CreateQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := parseCourseID(c); err != nil {
			return err
		}

		reqData := new(struct {
			Title        string                      `json:"title"`
			LessonID     *uint                       `json:"lesson_id"`
			PassingScore float64                     `json:"passing_score"`
			MaxAttempts  int                         `json:"max_attempts"`
			TimeLimit    int                         `json:"time_limit"`
			Questions    []controllers.QuestionInput `json:"questions"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if reqData.PassingScore < 0 || reqData.PassingScore > 100 {
			errors["passing_score"] = "Passing score must be between 0 and 100!"
		}
		if reqData.MaxAttempts < 1 {
			errors["max_attempts"] = "Max attempts must be at least 1!"
		}
		if reqData.TimeLimit < 0 {
			errors["time_limit"] = "Time limit cannot be negative!"
		}
		if len(reqData.Questions) == 0 {
			errors["questions"] = "At least one question is required!"
		}

		for _, q := range reqData.Questions {
			if strings.TrimSpace(q.Text) == "" {
				errors["questions"] = "Question text is required!"
				break
			}
			if !validQuestionType(q.Type) {
				errors["questions"] = "Question type must be MULTIPLE_CHOICE, TRUE_FALSE or SHORT_ANSWER!"
				break
			}
			if q.CorrectAnswer == "" {
				errors["questions"] = "Correct answer is required for every question!"
				break
			}
			if q.Points <= 0 {
				errors["questions"] = "Question points must be positive!"
				break
			}
			if q.Type == courseModels.QuestionMultipleChoice && len(q.Options) < 2 {
				errors["questions"] = "Multiple choice questions need at least 2 options!"
				break
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedQuiz", reqData)
		return c.Next()
	}
}

// QuizParams validates the course and quiz id route params
func QuizParams() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := parseCourseID(c); err != nil {
			return err
		}
		if err := parseQuizID(c); err != nil {
			return err
		}
		return c.Next()
	}
}

func SubmitQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := parseCourseID(c); err != nil {
			return err
		}
		if err := parseQuizID(c); err != nil {
			return err
		}

		reqData := new(struct {
			Answers   []controllers.SubmittedAnswer `json:"answers"`
			TimeSpent int                           `json:"time_spent"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Answers == nil {
			errors["answers"] = "Answers array is required!"
		}
		for _, a := range reqData.Answers {
			if a.QuestionID == 0 {
				errors["answers"] = "Every answer needs a question id!"
				break
			}
		}
		if reqData.TimeSpent < 0 {
			errors["time_spent"] = "Time spent cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSubmission", reqData)
		return c.Next()
	}
}
