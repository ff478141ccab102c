package controllers

import (
	"log"
	"time"

	"skillup/database"
	"skillup/middleware"
	"skillup/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func GetCourseBatches(c *fiber.Ctx) error {
	var batches []models.CourseBatch
	if err := database.Database.Db.Where("is_deleted = ?", false).Order("stage asc").Find(&batches).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course batches!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course batches fetched successfully!", batches)
}

func GetCourseBatchById(c *fiber.Ctx) error {
	courseBatchID := c.Locals("courseBatchId").(string)

	var batch models.CourseBatch
	if err := database.Database.Db.Where("course_batch_id = ? AND is_deleted = ?", courseBatchID, false).First(&batch).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course batch not found!", nil)
	}

	// Include the batch's courses so the client can render the stage map
	// with a single request
	var courses []models.Course
	if err := database.Database.Db.Where("course_batch_id = ? AND is_deleted = ?", courseBatchID, false).Order("level asc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course batch fetched successfully!", fiber.Map{
		"courseBatch": batch,
		"courses":     courses,
	})
}

func CreateCourseBatch(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourseBatch").(*struct {
		CourseBatchID string   `json:"courseBatchId"`
		Stage         int      `json:"stage"`
		CourseList    []string `json:"courseList"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Allow client-supplied identifiers, generate one otherwise
	courseBatchID := reqData.CourseBatchID
	if courseBatchID == "" {
		courseBatchID = uuid.NewString()
	}

	if err := database.Database.Db.Where("course_batch_id = ?", courseBatchID).First(&models.CourseBatch{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Course batch already exists!", nil)
	}

	batch := models.CourseBatch{
		CourseBatchID: courseBatchID,
		DateCreated:   time.Now(),
		Stage:         reqData.Stage,
	}
	if err := batch.SetCourses(reqData.CourseList); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course list!", nil)
	}

	if err := database.Database.Db.Create(&batch).Error; err != nil {
		log.Printf("Error creating course batch: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course batch!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course batch created.", batch)
}

func UpdateCourseBatch(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourseBatchUpdate").(*struct {
		CourseBatchID string    `json:"courseBatchId"`
		Stage         *int      `json:"stage"`
		CourseList    *[]string `json:"courseList"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var batch models.CourseBatch
	if err := database.Database.Db.Where("course_batch_id = ? AND is_deleted = ?", reqData.CourseBatchID, false).First(&batch).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course batch not found!", nil)
	}

	if reqData.Stage != nil {
		batch.Stage = *reqData.Stage
	}
	if reqData.CourseList != nil {
		if err := batch.SetCourses(*reqData.CourseList); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course list!", nil)
		}
	}

	if err := database.Database.Db.Save(&batch).Error; err != nil {
		log.Printf("Error updating course batch: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course batch!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course batch updated successfully!", batch)
}

func DeleteCourseBatch(c *fiber.Ctx) error {
	courseBatchID := c.Locals("courseBatchId").(string)

	var batch models.CourseBatch
	if err := database.Database.Db.Where("course_batch_id = ? AND is_deleted = ?", courseBatchID, false).First(&batch).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course batch not found!", nil)
	}

	batch.IsDeleted = true
	if err := database.Database.Db.Save(&batch).Error; err != nil {
		log.Printf("Error deleting course batch: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course batch!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course batch deleted successfully!", nil)
}
