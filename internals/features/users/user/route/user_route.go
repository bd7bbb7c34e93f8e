// file: internals/features/users/user/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "sekolahku_backend/internals/features/users/user/controller"
)

// UserAdminRoutes: manajemen akun oleh superadmin
func UserAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	users := r.Group("/users")
	users.Get("/", ctrl.GetUsers)
	users.Get("/:id", ctrl.GetUserByID)
	users.Post("/", ctrl.CreateUser)
	users.Patch("/:id", ctrl.UpdateUser)
	users.Delete("/:id", ctrl.DeleteUser)
}
