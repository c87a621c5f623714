// internals/features/auth/scheduler/cleanup.go
package scheduler

import (
	"log"
	"time"

	"gorm.io/gorm"

	authRepo "grofast_backend/internals/features/auth/repository"
)

// StartBlacklistCleanupScheduler purges expired blacklist and refresh rows
// hourly for the lifetime of the process.
func StartBlacklistCleanupScheduler(db *gorm.DB) {
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			n, err := authRepo.CleanupExpiredAuthRows(db)
			if err != nil {
				log.Printf("[WARN] auth cleanup: %v", err)
				continue
			}
			if n > 0 {
				log.Printf("[INFO] auth cleanup: removed %d expired rows", n)
			}
		}
	}()
}
