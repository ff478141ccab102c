package shopValidator

import (
	"strings"

	"skillup/middleware"

	"github.com/gofiber/fiber/v2"
)

func CreateShopItem() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name        string `json:"name"`
			Description string `json:"description"`
			Price       int    `json:"price"`
			Category    string `json:"category"`
			ImageURL    string `json:"imageUrl"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Name = strings.TrimSpace(reqData.Name)
		reqData.Category = strings.TrimSpace(reqData.Category)

		if reqData.Name == "" {
			errors["name"] = "Name is required!"
		} else if len(reqData.Name) > 100 {
			errors["name"] = "Name must not exceed 100 characters!"
		}
		if reqData.Price <= 0 {
			errors["price"] = "Price must be a positive integer!"
		}
		if reqData.Category == "" {
			errors["category"] = "Category is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedShopItem", reqData)

		return c.Next()
	}
}

// ItemParam validates the itemId path parameter
func ItemParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		itemID := strings.TrimSpace(c.Params("itemId"))
		if itemID == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Item ID is required in the URL!", nil)
		}

		c.Locals("itemId", itemID)
		return c.Next()
	}
}
