// file: internals/features/schools/review/route/review_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	reviewController "sekolahku_backend/internals/features/schools/review/controller"
)

// ReviewPublicRoutes: daftar review per sekolah, tanpa login
func ReviewPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := reviewController.NewReviewController(db)

	r.Get("/schools/:schoolId/reviews", ctrl.GetReviewsBySchool)
}

// ReviewUserRoutes: tulis/ubah/hapus review, wajib login
func ReviewUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := reviewController.NewReviewController(db)

	reviews := r.Group("/reviews")
	reviews.Post("/", ctrl.CreateReview)
	reviews.Put("/:id", ctrl.UpdateReview)
	reviews.Delete("/:id", ctrl.DeleteReview)
}
