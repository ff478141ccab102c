package courseValidator

import (
	"strconv"
	"strings"

	"skillup/middleware"

	"github.com/gofiber/fiber/v2"
)

// CompleteExercise validates the four path identifiers of the completion
// endpoint before the engine runs
func CompleteExercise() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userIDStr := strings.TrimSpace(c.Params("userId"))
		courseBatchID := strings.TrimSpace(c.Params("courseBatchId"))
		courseID := strings.TrimSpace(c.Params("courseId"))
		exerciseID := strings.TrimSpace(c.Params("exerciseId"))

		errors := make(map[string]string)

		userID, err := strconv.Atoi(userIDStr)
		if userIDStr == "" || err != nil || userID <= 0 {
			errors["userId"] = "A valid user ID is required in the URL!"
		}
		if courseBatchID == "" {
			errors["courseBatchId"] = "Course batch ID is required in the URL!"
		}
		if courseID == "" {
			errors["courseId"] = "Course ID is required in the URL!"
		}
		if exerciseID == "" {
			errors["exerciseId"] = "Exercise ID is required in the URL!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("targetUserId", uint(userID))
		c.Locals("courseBatchId", courseBatchID)
		c.Locals("courseId", courseID)
		c.Locals("exerciseId", exerciseID)

		return c.Next()
	}
}
