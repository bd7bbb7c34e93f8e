// file: internals/features/schools/school/route/school_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	schoolController "sekolahku_backend/internals/features/schools/school/controller"
)

// SchoolPublicRoutes: daftar + detail sekolah, tanpa login
func SchoolPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := schoolController.NewSchoolController(db)

	schools := r.Group("/schools")
	schools.Get("/", ctrl.GetSchools)
	schools.Get("/:id", ctrl.GetSchoolByID)
}

// SchoolAdminRoutes: kelola data sekolah (Authorization Gate menolak selain superadmin)
func SchoolAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := schoolController.NewSchoolController(db)

	schools := r.Group("/schools")
	schools.Post("/", ctrl.CreateSchool)
	schools.Patch("/:id", ctrl.UpdateSchool)
	schools.Delete("/:id", ctrl.DeleteSchool)
}
