// file: internals/features/users/auth/scheduler/cleanup.go
package scheduler

import (
	"log"
	"strconv"
	"time"

	"gorm.io/gorm"

	"sekolahku_backend/internals/configs"
	authModel "sekolahku_backend/internals/features/users/auth/model"
)

// StartBlacklistCleanupScheduler menghapus token blacklist yang sudah
// kedaluwarsa, jalan tiap 24 jam di goroutine sendiri.
// TOKEN_BLACKLIST_TTL_DAYS menambah masa tahan setelah expired (default 0).
func StartBlacklistCleanupScheduler(db *gorm.DB) {
	graceDays := 0
	if v := configs.GetEnv("TOKEN_BLACKLIST_TTL_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			graceDays = n
		}
	}

	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()

		for {
			cutoff := time.Now().AddDate(0, 0, -graceDays)
			res := db.Unscoped().
				Where("expired_at < ?", cutoff).
				Delete(&authModel.TokenBlacklistModel{})
			if res.Error != nil {
				log.Println("[ERROR] Cleanup blacklist gagal:", res.Error)
			} else if res.RowsAffected > 0 {
				log.Printf("[SUCCESS] %d token blacklist kedaluwarsa dibersihkan\n", res.RowsAffected)
			}
			<-ticker.C
		}
	}()
}
