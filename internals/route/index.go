// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	reviewRoute "sekolahku_backend/internals/features/schools/review/route"
	schoolRoute "sekolahku_backend/internals/features/schools/school/route"
	authRoute "sekolahku_backend/internals/features/users/auth/route"
	userRoute "sekolahku_backend/internals/features/users/user/route"
	authMiddleware "sekolahku_backend/internals/middlewares/auth"
)

// SetupRoutes memasang seluruh route aplikasi.
//
//	/api/auth   → register, login, logout
//	/api/public → baca sekolah & review, tanpa login
//	/api/u      → aksi user login (review)
//	/api/a      → aksi admin (sekolah, user); otorisasi final di Authorization Gate
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AUTH routes...")
	authRoute.AuthRoutes(api.Group("/auth"), db)

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	public := api.Group("/public")
	schoolRoute.SchoolPublicRoutes(public, db)
	reviewRoute.ReviewPublicRoutes(public, db)

	// ===================== PRIVATE (USER) =====================
	log.Println("[INFO] Setting up PRIVATE (user) group...")
	private := api.Group("/u", authMiddleware.AuthMiddleware(db))
	reviewRoute.ReviewUserRoutes(private, db)

	// ===================== ADMIN =====================
	// Middleware hanya autentikasi; keputusan role ada di Authorization Gate
	log.Println("[INFO] Setting up ADMIN group...")
	admin := api.Group("/a", authMiddleware.AuthMiddleware(db))
	schoolRoute.SchoolAdminRoutes(admin, db)
	userRoute.UserAdminRoutes(admin, db)
}
