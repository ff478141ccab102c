package controllers

import (
	"skillup/database"
	"skillup/middleware"
	"skillup/models"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
)

// DashboardStats returns platform totals for the admin dashboard
func DashboardStats(c *fiber.Ctx) error {
	db := database.Database.Db

	var totalUsers int64
	db.Model(&models.User{}).Where("is_deleted = ?", false).Count(&totalUsers)

	var totalBatches int64
	db.Model(&models.CourseBatch{}).Where("is_deleted = ?", false).Count(&totalBatches)

	var totalCourses int64
	db.Model(&models.Course{}).Where("is_deleted = ?", false).Count(&totalCourses)

	var totalExercises int64
	db.Model(&models.Exercise{}).Where("is_deleted = ?", false).Count(&totalExercises)

	var signupsToday int64
	db.Model(&models.User{}).Where("is_deleted = ? AND created_at >= ?", false, now.BeginningOfDay()).Count(&signupsToday)

	var loginsToday int64
	db.Model(&models.LoginTracking{}).Where("timestamp >= ?", now.BeginningOfDay()).Count(&loginsToday)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard stats fetched successfully!", fiber.Map{
		"totalUsers":     totalUsers,
		"totalBatches":   totalBatches,
		"totalCourses":   totalCourses,
		"totalExercises": totalExercises,
		"signupsToday":   signupsToday,
		"loginsToday":    loginsToday,
	})
}
