package authValidator

import (
	"regexp"
	"strings"

	"skillup/middleware"

	"github.com/gofiber/fiber/v2"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func Signup() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Username string `json:"username"`
			Nickname string `json:"nickname"`
			Email    string `json:"email"`
			Password string `json:"password"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Normalize and sanitize inputs
		reqData.Username = strings.TrimSpace(reqData.Username)
		reqData.Nickname = strings.TrimSpace(reqData.Nickname)
		reqData.Email = strings.ToLower(strings.TrimSpace(reqData.Email))

		if reqData.Username == "" {
			errors["username"] = "Username is required!"
		} else {
			if len(reqData.Username) < 3 {
				errors["username"] = "Username must be at least 3 characters long!"
			}
			if len(reqData.Username) > 30 {
				errors["username"] = "Username must not exceed 30 characters!"
			}
			if matched, _ := regexp.MatchString(`^[a-zA-Z0-9_.\-]+$`, reqData.Username); !matched && errors["username"] == "" {
				errors["username"] = "Username may only contain letters, digits, underscores, dots and dashes!"
			}
		}

		if reqData.Nickname != "" && len(reqData.Nickname) > 50 {
			errors["nickname"] = "Nickname must not exceed 50 characters!"
		}

		if reqData.Email == "" {
			errors["email"] = "Email is required!"
		} else if !emailRegex.MatchString(reqData.Email) {
			errors["email"] = "Email is not valid!"
		}

		if reqData.Password == "" {
			errors["password"] = "Password is required!"
		} else if len(reqData.Password) < 8 {
			errors["password"] = "Password must be at least 8 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSignup", reqData)

		return c.Next()
	}
}

func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Failed to parse request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Email = strings.ToLower(strings.TrimSpace(reqData.Email))

		if reqData.Email == "" {
			errors["email"] = "Email is required!"
		}
		if reqData.Password == "" {
			errors["password"] = "Password is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLogin", reqData)

		return c.Next()
	}
}
