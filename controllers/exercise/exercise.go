package exerciseController

import (
	"log"

	"skillup/database"
	"skillup/middleware"
	"skillup/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func CreateExercise(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedExercise").(*struct {
		ExerciseID      string   `json:"exerciseId"`
		CourseID        string   `json:"courseId"`
		CourseBatchID   string   `json:"courseBatchId"`
		DifficultyLevel int      `json:"difficultyLevel"`
		Question        string   `json:"question"`
		Options         []string `json:"options"`
		Answer          string   `json:"answer"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var course models.Course
	if err := database.Database.Db.Where("course_id = ? AND is_deleted = ?", reqData.CourseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	exerciseID := reqData.ExerciseID
	if exerciseID == "" {
		exerciseID = uuid.NewString()
	}

	if err := database.Database.Db.Where("exercise_id = ?", exerciseID).First(&models.Exercise{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Exercise already exists!", nil)
	}

	exercise := models.Exercise{
		ExerciseID:      exerciseID,
		CourseID:        reqData.CourseID,
		CourseBatchID:   reqData.CourseBatchID,
		DifficultyLevel: reqData.DifficultyLevel,
		Question:        reqData.Question,
		Answer:          reqData.Answer,
	}
	if err := exercise.SetOptions(reqData.Options); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid options!", nil)
	}

	tx := database.Database.Db.Begin()

	if err := tx.Create(&exercise).Error; err != nil {
		tx.Rollback()
		log.Printf("Error creating exercise: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create exercise!", nil)
	}

	// Register the exercise in its course's ordered list
	if err := course.SetExercises(append(course.Exercises(), exerciseID)); err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}
	if err := tx.Save(&course).Error; err != nil {
		tx.Rollback()
		log.Printf("Error updating course exercise list: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Exercise created.", exercise)
}

func GetExercises(c *fiber.Ctx) error {
	var exercises []models.Exercise
	if err := database.Database.Db.Where("is_deleted = ?", false).Find(&exercises).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch exercises!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Exercises fetched successfully!", exercises)
}

func GetExerciseById(c *fiber.Ctx) error {
	exerciseID := c.Locals("exerciseId").(string)

	var exercise models.Exercise
	if err := database.Database.Db.Where("exercise_id = ? AND is_deleted = ?", exerciseID, false).First(&exercise).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Exercise not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Exercise fetched successfully!", exercise)
}

func UpdateExercise(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedExerciseUpdate").(*struct {
		ExerciseID      string    `json:"exerciseId"`
		DifficultyLevel *int      `json:"difficultyLevel"`
		Question        *string   `json:"question"`
		Options         *[]string `json:"options"`
		Answer          *string   `json:"answer"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var exercise models.Exercise
	if err := database.Database.Db.Where("exercise_id = ? AND is_deleted = ?", reqData.ExerciseID, false).First(&exercise).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Exercise not found!", nil)
	}

	if reqData.DifficultyLevel != nil {
		exercise.DifficultyLevel = *reqData.DifficultyLevel
	}
	if reqData.Question != nil {
		exercise.Question = *reqData.Question
	}
	if reqData.Options != nil {
		if err := exercise.SetOptions(*reqData.Options); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid options!", nil)
		}
	}
	if reqData.Answer != nil {
		exercise.Answer = *reqData.Answer
	}

	if err := database.Database.Db.Save(&exercise).Error; err != nil {
		log.Printf("Error updating exercise: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update exercise!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Exercise updated successfully!", exercise)
}

func DeleteExercise(c *fiber.Ctx) error {
	exerciseID := c.Locals("exerciseId").(string)

	var exercise models.Exercise
	if err := database.Database.Db.Where("exercise_id = ? AND is_deleted = ?", exerciseID, false).First(&exercise).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Exercise not found!", nil)
	}

	exercise.IsDeleted = true
	if err := database.Database.Db.Save(&exercise).Error; err != nil {
		log.Printf("Error deleting exercise: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete exercise!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Exercise deleted successfully!", nil)
}
