package exerciseRoutes

import (
	exerciseController "skillup/controllers/exercise"
	"skillup/middleware"
	exerciseValidator "skillup/validators/exercise"

	"github.com/gofiber/fiber/v2"
)

// SetupExerciseRoutes sets up exercise catalog routes
func SetupExerciseRoutes(app *fiber.App) {
	exerciseGroup := app.Group("/exercises")

	exerciseGroup.Post("/createExercise", middleware.JWTMiddleware, middleware.AdminOnly(), exerciseValidator.CreateExercise(), exerciseController.CreateExercise)
	exerciseGroup.Get("/getExercises", middleware.JWTMiddleware, exerciseController.GetExercises)
	exerciseGroup.Get("/getExercise/:exerciseId", middleware.JWTMiddleware, exerciseValidator.ExerciseParam(), exerciseController.GetExerciseById)
	exerciseGroup.Put("/updateExercise", middleware.JWTMiddleware, middleware.AdminOnly(), exerciseValidator.UpdateExercise(), exerciseController.UpdateExercise)
	exerciseGroup.Delete("/deleteExercise/:exerciseId", middleware.JWTMiddleware, middleware.AdminOnly(), exerciseValidator.ExerciseParam(), exerciseController.DeleteExercise)
}
