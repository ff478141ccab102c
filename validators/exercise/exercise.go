package exerciseValidator

import (
	"strings"

	"skillup/middleware"

	"github.com/gofiber/fiber/v2"
)

func CreateExercise() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ExerciseID      string   `json:"exerciseId"`
			CourseID        string   `json:"courseId"`
			CourseBatchID   string   `json:"courseBatchId"`
			DifficultyLevel int      `json:"difficultyLevel"`
			Question        string   `json:"question"`
			Options         []string `json:"options"`
			Answer          string   `json:"answer"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.ExerciseID = strings.TrimSpace(reqData.ExerciseID)
		reqData.CourseID = strings.TrimSpace(reqData.CourseID)
		reqData.CourseBatchID = strings.TrimSpace(reqData.CourseBatchID)
		reqData.Question = strings.TrimSpace(reqData.Question)
		reqData.Answer = strings.TrimSpace(reqData.Answer)

		if reqData.CourseID == "" {
			errors["courseId"] = "Course ID is required!"
		}
		if reqData.CourseBatchID == "" {
			errors["courseBatchId"] = "Course batch ID is required!"
		}
		if reqData.DifficultyLevel <= 0 {
			errors["difficultyLevel"] = "Difficulty level must be a positive integer!"
		}
		if reqData.Question == "" {
			errors["question"] = "Question is required!"
		}
		if len(reqData.Options) < 2 {
			errors["options"] = "At least two options are required!"
		}
		if reqData.Answer == "" {
			errors["answer"] = "Answer is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedExercise", reqData)

		return c.Next()
	}
}

func UpdateExercise() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ExerciseID      string    `json:"exerciseId"`
			DifficultyLevel *int      `json:"difficultyLevel"`
			Question        *string   `json:"question"`
			Options         *[]string `json:"options"`
			Answer          *string   `json:"answer"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.ExerciseID = strings.TrimSpace(reqData.ExerciseID)

		if reqData.ExerciseID == "" {
			errors["exerciseId"] = "Exercise ID is required!"
		}
		if reqData.DifficultyLevel != nil && *reqData.DifficultyLevel <= 0 {
			errors["difficultyLevel"] = "Difficulty level must be a positive integer!"
		}
		if reqData.Options != nil && len(*reqData.Options) < 2 {
			errors["options"] = "At least two options are required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedExerciseUpdate", reqData)

		return c.Next()
	}
}

// ExerciseParam validates the exerciseId path parameter
func ExerciseParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		exerciseID := strings.TrimSpace(c.Params("exerciseId"))
		if exerciseID == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Exercise ID is required in the URL!", nil)
		}

		c.Locals("exerciseId", exerciseID)
		return c.Next()
	}
}
