// file: internals/authz/actor.go
package authz

import (
	"github.com/gofiber/fiber/v2"

	helper "sekolahku_backend/internals/helpers"
)

// ActorFromContext membentuk Actor dari klaim yang disimpan auth middleware.
// Di route publik (tanpa middleware) hasilnya actor anonim (ID = uuid.Nil).
func ActorFromContext(c *fiber.Ctx) Actor {
	a := Actor{Role: helper.GetUserRoleFromToken(c)}
	if id, err := helper.GetUserIDFromToken(c); err == nil {
		a.ID = id
	}
	return a
}
