package courseValidator

import (
	"strings"

	"skillup/middleware"

	"github.com/gofiber/fiber/v2"
)

func CreateCourseBatch() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CourseBatchID string   `json:"courseBatchId"`
			Stage         int      `json:"stage"`
			CourseList    []string `json:"courseList"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.CourseBatchID = strings.TrimSpace(reqData.CourseBatchID)

		if reqData.Stage <= 0 {
			errors["stage"] = "Stage must be a positive integer!"
		}
		if reqData.CourseList == nil {
			reqData.CourseList = []string{}
		}
		for _, id := range reqData.CourseList {
			if strings.TrimSpace(id) == "" {
				errors["courseList"] = "Course list must not contain empty IDs!"
				break
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourseBatch", reqData)

		return c.Next()
	}
}

func UpdateCourseBatch() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CourseBatchID string    `json:"courseBatchId"`
			Stage         *int      `json:"stage"`
			CourseList    *[]string `json:"courseList"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.CourseBatchID = strings.TrimSpace(reqData.CourseBatchID)

		if reqData.CourseBatchID == "" {
			errors["courseBatchId"] = "Course batch ID is required!"
		}
		if reqData.Stage != nil && *reqData.Stage <= 0 {
			errors["stage"] = "Stage must be a positive integer!"
		}
		if reqData.CourseList != nil {
			for _, id := range *reqData.CourseList {
				if strings.TrimSpace(id) == "" {
					errors["courseList"] = "Course list must not contain empty IDs!"
					break
				}
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourseBatchUpdate", reqData)

		return c.Next()
	}
}

// CourseBatchParam validates the courseBatchId path parameter
func CourseBatchParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseBatchID := strings.TrimSpace(c.Params("courseBatchId"))
		if courseBatchID == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course batch ID is required in the URL!", nil)
		}

		c.Locals("courseBatchId", courseBatchID)
		return c.Next()
	}
}
