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

func GetCourses(c *fiber.Ctx) error {
	var courses []models.Course
	if err := database.Database.Db.Where("is_deleted = ?", false).Order("level asc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", courses)
}

func GetCoursesById(c *fiber.Ctx) error {
	courseID := c.Locals("courseId").(string)

	var course models.Course
	if err := database.Database.Db.Where("course_id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var exercises []models.Exercise
	if err := database.Database.Db.Where("course_id = ? AND is_deleted = ?", courseID, false).Order("difficulty_level asc").Find(&exercises).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch exercises!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", fiber.Map{
		"course":    course,
		"exercises": exercises,
	})
}

func CreateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*struct {
		CourseBatchID string `json:"courseBatchId"`
		CourseID      string `json:"courseId"`
		Title         string `json:"title"`
		Level         int    `json:"level"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var batch models.CourseBatch
	if err := database.Database.Db.Where("course_batch_id = ? AND is_deleted = ?", reqData.CourseBatchID, false).First(&batch).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course batch not found!", nil)
	}

	courseID := reqData.CourseID
	if courseID == "" {
		courseID = uuid.NewString()
	}

	if err := database.Database.Db.Where("course_id = ?", courseID).First(&models.Course{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Course is already in the database!", nil)
	}

	course := models.Course{
		CourseID:      courseID,
		CourseBatchID: reqData.CourseBatchID,
		Title:         reqData.Title,
		Level:         reqData.Level,
		DateCreated:   time.Now(),
	}
	// New courses start with an empty exercise list; exercises register
	// themselves on creation
	if err := course.SetExercises(nil); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	tx := database.Database.Db.Begin()

	if err := tx.Create(&course).Error; err != nil {
		tx.Rollback()
		log.Printf("Error creating course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	// Register the course in its batch's ordered list
	if err := batch.SetCourses(append(batch.Courses(), courseID)); err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course batch!", nil)
	}
	if err := tx.Save(&batch).Error; err != nil {
		tx.Rollback()
		log.Printf("Error updating course batch list: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course batch!", nil)
	}

	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course created.", course)
}

func UpdateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourseUpdate").(*struct {
		CourseID string  `json:"courseId"`
		Title    *string `json:"title"`
		Level    *int    `json:"level"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var course models.Course
	if err := database.Database.Db.Where("course_id = ? AND is_deleted = ?", reqData.CourseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if reqData.Title != nil {
		course.Title = *reqData.Title
	}
	if reqData.Level != nil {
		course.Level = *reqData.Level
	}

	if err := database.Database.Db.Save(&course).Error; err != nil {
		log.Printf("Error updating course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

func DeleteCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseId").(string)

	var course models.Course
	if err := database.Database.Db.Where("course_id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	course.IsDeleted = true
	if err := database.Database.Db.Save(&course).Error; err != nil {
		log.Printf("Error deleting course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}
