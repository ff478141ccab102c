package controllers

import (
	"log"

	"skillup/database"
	"skillup/progress"

	"github.com/gofiber/fiber/v2"
)

// Leaderboard handles GET /leaderboard. Top 10 users by XP, public
// projection only. Response shape is fixed by the SPA client.
func Leaderboard(c *fiber.Ctx) error {
	engine := progress.NewEngine(database.Database.Db)

	entries, err := engine.Leaderboard(c.UserContext(), progress.DefaultLeaderboardLimit)
	if err != nil {
		log.Printf("[PROGRESS] leaderboard query failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":     "Leaderboard retrieved successfully",
		"leaderboard": entries,
	})
}
