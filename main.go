package main

import (
	"log"

	"skillup/config"
	"skillup/database"
	authRoutes "skillup/routers/authRoutes"
	courseRoutes "skillup/routers/courseRoutes"
	exerciseRoutes "skillup/routers/exerciseRoutes"
	shopRoutes "skillup/routers/shopRoutes"
	userRoutes "skillup/routers/userRoutes"
	"skillup/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve static files from the public folder
	app.Static("/", "./public")

	authRoutes.SetupAuthRoutes(app)
	userRoutes.SetupUserRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	exerciseRoutes.SetupExerciseRoutes(app)
	shopRoutes.SetupShopRoutes(app)

	utils.InitializeUnblockScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
