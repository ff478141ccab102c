package courseValidator

import (
	"regexp"
	"strings"

	"skillup/middleware"

	"github.com/gofiber/fiber/v2"
)

func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CourseBatchID string `json:"courseBatchId"`
			CourseID      string `json:"courseId"`
			Title         string `json:"title"`
			Level         int    `json:"level"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Normalize and sanitize inputs
		reqData.CourseBatchID = strings.TrimSpace(reqData.CourseBatchID)
		reqData.CourseID = strings.TrimSpace(reqData.CourseID)
		reqData.Title = strings.TrimSpace(reqData.Title)

		if reqData.CourseBatchID == "" {
			errors["courseBatchId"] = "Course batch ID is required!"
		}
		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		} else {
			if len(reqData.Title) > 100 {
				errors["title"] = "Title must not exceed 100 characters!"
			}
			// Check for invalid characters (e.g., HTML tags)
			if matched, _ := regexp.MatchString(`[<>{}]`, reqData.Title); matched {
				errors["title"] = "Title contains invalid characters (e.g., <, >, {, })!"
			}
		}
		if reqData.Level <= 0 {
			errors["level"] = "Level must be a positive integer!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)

		return c.Next()
	}
}

func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CourseID string  `json:"courseId"`
			Title    *string `json:"title"`
			Level    *int    `json:"level"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.CourseID = strings.TrimSpace(reqData.CourseID)

		if reqData.CourseID == "" {
			errors["courseId"] = "Course ID is required!"
		}
		if reqData.Title != nil {
			trimmed := strings.TrimSpace(*reqData.Title)
			reqData.Title = &trimmed
			if trimmed == "" {
				errors["title"] = "Title must not be empty!"
			}
			if len(trimmed) > 100 {
				errors["title"] = "Title must not exceed 100 characters!"
			}
		}
		if reqData.Level != nil && *reqData.Level <= 0 {
			errors["level"] = "Level must be a positive integer!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourseUpdate", reqData)

		return c.Next()
	}
}

// CourseParam validates the courseId path parameter
func CourseParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID := strings.TrimSpace(c.Params("courseId"))
		if courseID == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course ID is required in the URL!", nil)
		}

		c.Locals("courseId", courseID)
		return c.Next()
	}
}
