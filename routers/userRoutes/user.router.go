package userRoutes

import (
	userController "skillup/controllers/userControllers"
	"skillup/middleware"
	userValidator "skillup/validators/userValidator"

	"github.com/gofiber/fiber/v2"
)

// SetupUserRoutes sets up profile and user administration routes
func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/user")

	userGroup.Get("/profile", middleware.JWTMiddleware, userController.GetProfile)
	userGroup.Put("/profile", middleware.JWTMiddleware, userValidator.UpdateProfile(), userController.UpdateProfile)

	userGroup.Get("/list", middleware.JWTMiddleware, middleware.AdminOnly(), userValidator.UserList(), userController.GetUsers)
	userGroup.Delete("/:id", middleware.JWTMiddleware, middleware.AdminOnly(), userValidator.UserParam(), userController.DeleteUser)
}
