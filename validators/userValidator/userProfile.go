package userValidator

import (
	"strconv"
	"strings"

	"skillup/middleware"

	"github.com/gofiber/fiber/v2"
)

func UpdateProfile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Nickname       *string `json:"nickname"`
			ProfilePicture *string `json:"profilePicture"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Nickname != nil {
			trimmed := strings.TrimSpace(*reqData.Nickname)
			reqData.Nickname = &trimmed
			if trimmed == "" {
				errors["nickname"] = "Nickname must not be empty!"
			}
			if len(trimmed) > 50 {
				errors["nickname"] = "Nickname must not exceed 50 characters!"
			}
		}
		if reqData.ProfilePicture != nil && len(*reqData.ProfilePicture) > 500 {
			errors["profilePicture"] = "Profile picture URL must not exceed 500 characters!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProfileUpdate", reqData)

		return c.Next()
	}
}

func UserList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page  *int `query:"page"`
			Limit *int `query:"limit"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		// Set defaults if not provided
		defaultPage := 1
		defaultLimit := 10
		if reqData.Page == nil || *reqData.Page < 1 {
			reqData.Page = &defaultPage
		}
		if reqData.Limit == nil || *reqData.Limit < 1 {
			reqData.Limit = &defaultLimit
		}

		c.Locals("validatedUserList", reqData)
		return c.Next()
	}
}

// UserParam validates the numeric user id path parameter
func UserParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userIDStr := strings.TrimSpace(c.Params("id"))
		if userIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "User ID is required in the URL!", nil)
		}

		userID, err := strconv.Atoi(userIDStr)
		if err != nil || userID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid User ID!", nil)
		}

		c.Locals("targetUserId", uint(userID))
		return c.Next()
	}
}
