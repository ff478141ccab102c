package courseRoutes

import (
	controllers "skillup/controllers/course"
	"skillup/middleware"
	courseValidator "skillup/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up completion, leaderboard and catalog routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/courses")

	// Exercise completion, the scoring entry point
	courseGroup.Post(
		"/complete/:userId/:courseBatchId/:courseId/:exerciseId",
		middleware.JWTMiddleware,
		courseValidator.CompleteExercise(),
		controllers.CompleteExercise,
	)

	// Course batches
	courseGroup.Get("/getCourseBatches", middleware.JWTMiddleware, controllers.GetCourseBatches)
	courseGroup.Get("/getCourseBatch/:courseBatchId", middleware.JWTMiddleware, courseValidator.CourseBatchParam(), controllers.GetCourseBatchById)
	courseGroup.Post("/createCourseBatch", middleware.JWTMiddleware, middleware.AdminOnly(), courseValidator.CreateCourseBatch(), controllers.CreateCourseBatch)
	courseGroup.Put("/updateCourseBatch", middleware.JWTMiddleware, middleware.AdminOnly(), courseValidator.UpdateCourseBatch(), controllers.UpdateCourseBatch)
	courseGroup.Delete("/deleteCourseBatch/:courseBatchId", middleware.JWTMiddleware, middleware.AdminOnly(), courseValidator.CourseBatchParam(), controllers.DeleteCourseBatch)

	// Courses
	courseGroup.Get("/getCourses", controllers.GetCourses)
	courseGroup.Get("/getCoursesById/:courseId", middleware.JWTMiddleware, courseValidator.CourseParam(), controllers.GetCoursesById)
	courseGroup.Post("/createCourse", middleware.JWTMiddleware, middleware.AdminOnly(), courseValidator.CreateCourse(), controllers.CreateCourse)
	courseGroup.Put("/updateCourse", middleware.JWTMiddleware, middleware.AdminOnly(), courseValidator.UpdateCourse(), controllers.UpdateCourse)
	courseGroup.Delete("/deleteCourse/:courseId", middleware.JWTMiddleware, middleware.AdminOnly(), courseValidator.CourseParam(), controllers.DeleteCourse)

	// Leaderboard is a public read over user XP
	app.Get("/leaderboard", controllers.Leaderboard)

	// Admin dashboard
	app.Get("/admin/dashboard", middleware.JWTMiddleware, middleware.AdminOnly(), controllers.DashboardStats)
}
