package controllers

import (
	"errors"
	"fmt"
	"log"

	"skillup/config"
	"skillup/database"
	"skillup/models"
	"skillup/progress"

	"github.com/gofiber/fiber/v2"
)

// CompleteExercise handles POST /courses/complete/:userId/:courseBatchId/:courseId/:exerciseId.
// The response body shape is fixed by the SPA client, so it bypasses the
// standard JsonResponse envelope.
func CompleteExercise(c *fiber.Ctx) error {
	callerID, ok := c.Locals("userId").(uint)
	if !ok {
		return middlewareUnauthorized(c)
	}

	targetUserID := c.Locals("targetUserId").(uint)
	courseBatchID := c.Locals("courseBatchId").(string)
	courseID := c.Locals("courseId").(string)
	exerciseID := c.Locals("exerciseId").(string)

	// A user may only complete their own exercises. ADMIN callers may act
	// for another user when the override is enabled in config.
	if callerID != targetUserID {
		role, _ := c.Locals("userRole").(string)
		if role != models.RoleAdmin || !config.AppConfig.ProgressAdminOverride {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "You cannot complete exercises for another user!",
			})
		}
	}

	engine := progress.NewEngine(database.Database.Db)
	result, err := engine.CompleteExercise(c.UserContext(), targetUserID, courseBatchID, courseID, exerciseID)
	if err != nil {
		var notFound *progress.NotFoundError
		if errors.As(err, &notFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("%s not found!", notFound.Entity),
			})
		}
		log.Printf("[PROGRESS] completion failed for user %d (%s/%s/%s): %v",
			targetUserID, courseBatchID, courseID, exerciseID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "An unknown error occurred",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":          "Exercise completed successfully",
		"awardedXp":        result.AwardedXP,
		"currentXp":        result.CurrentXP,
		"level":            result.Level,
		"alreadyCompleted": result.AlreadyCompleted,
		"exerciseStatus": fiber.Map{
			"courseBatchId": courseBatchID,
			"courseId":      courseID,
			"exerciseId":    exerciseID,
			"status":        result.ExerciseStatus,
		},
		"courseProgress": result.CourseProgress,
	})
}

func middlewareUnauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"message": "Unauthorized!",
	})
}
