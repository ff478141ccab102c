package utils

import (
	"log"
	"time"

	"skillup/database"
	"skillup/models"

	"github.com/robfig/cron/v3"
)

// InitializeUnblockScheduler sets up the login-block expiry scheduler
func InitializeUnblockScheduler() {
	log.Println("[UNBLOCK-SCHEDULER] Initializing unblock scheduler...")

	c := cron.New()

	// Run hourly to release accounts whose block window has passed
	c.AddFunc("0 * * * *", func() {
		log.Println("[UNBLOCK-SCHEDULER] Running login-block sweep...")
		ReleaseExpiredBlocks()
	})

	c.Start()
	log.Println("[UNBLOCK-SCHEDULER] Unblock scheduler started - runs hourly")
}

// ReleaseExpiredBlocks clears expired login blocks in bulk
func ReleaseExpiredBlocks() {
	db := database.Database.Db

	result := db.Model(&models.User{}).
		Where("is_blocked = ? AND blocked_until IS NOT NULL AND blocked_until < ?", true, time.Now()).
		Updates(map[string]interface{}{
			"is_blocked":            false,
			"blocked_until":         nil,
			"failed_login_attempts": 0,
		})
	if result.Error != nil {
		log.Printf("[UNBLOCK-SCHEDULER] Error releasing blocks: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("[UNBLOCK-SCHEDULER] Released %d expired login blocks", result.RowsAffected)
	}
}
