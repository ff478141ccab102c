package shopRoutes

import (
	shopController "skillup/controllers/shop"
	"skillup/middleware"
	shopValidator "skillup/validators/shop"

	"github.com/gofiber/fiber/v2"
)

// SetupShopRoutes sets up the shop and inventory routes
func SetupShopRoutes(app *fiber.App) {
	shopGroup := app.Group("/shop")

	shopGroup.Get("/items", middleware.JWTMiddleware, shopController.GetShopItems)
	shopGroup.Post("/items", middleware.JWTMiddleware, middleware.AdminOnly(), shopValidator.CreateShopItem(), shopController.CreateShopItem)
	shopGroup.Post("/purchase/:itemId", middleware.JWTMiddleware, shopValidator.ItemParam(), shopController.PurchaseItem)
	shopGroup.Get("/inventory", middleware.JWTMiddleware, shopController.GetUserInventory)
}
