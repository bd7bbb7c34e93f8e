// file: internals/authz/gate.go
//
// Satu pintu untuk semua keputusan otorisasi. Aturan role tidak boleh
// dicek tersebar di controller; semua lewat Authorize supaya gampang diuji.
package authz

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"sekolahku_backend/internals/constants"
)

type Action string

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

type ResourceKind string

const (
	ResourceSchool ResourceKind = "school"
	ResourceReview ResourceKind = "review"
	ResourceUser   ResourceKind = "user"
)

// Reason: kode mesin untuk deny, dipakai caller buat mapping status HTTP
type Reason string

const (
	ReasonUnauthenticated         Reason = "UNAUTHENTICATED"
	ReasonForbiddenRole           Reason = "FORBIDDEN_ROLE"
	ReasonNotOwner                Reason = "NOT_OWNER"
	ReasonSelfModificationBlocked Reason = "SELF_MODIFICATION_BLOCKED"
)

// Actor: identitas yang melakukan request (hasil verifikasi JWT middleware).
// ID uuid.Nil artinya belum login.
type Actor struct {
	ID   uuid.UUID
	Role string
}

func (a Actor) Authenticated() bool {
	return a.ID != uuid.Nil
}

// Resource: nilai bertag yang mengidentifikasi target aksi.
//   - Review: AuthorID = pemilik review
//   - User:   TargetID = user yang dikenai aksi, RoleChanged = update mengubah role
//   - School: cukup Kind saja
type Resource struct {
	Kind        ResourceKind
	AuthorID    uuid.UUID
	TargetID    uuid.UUID
	RoleChanged bool
}

type Decision struct {
	Allowed bool
	Reason  Reason
}

func allow() Decision {
	return Decision{Allowed: true}
}

func deny(r Reason) Decision {
	return Decision{Allowed: false, Reason: r}
}

// HTTPStatus mapping deny → status transport
func (d Decision) HTTPStatus() int {
	if d.Allowed {
		return fiber.StatusOK
	}
	if d.Reason == ReasonUnauthenticated {
		return fiber.StatusUnauthorized
	}
	return fiber.StatusForbidden
}

// Authorize memutuskan boleh/tidaknya actor melakukan action pada resource.
// Murni, tanpa side effect. Urutan evaluasi mengikuti aturan akses:
//  1. belum login → tolak semua kecuali read resource publik (school, review)
//  2. School: create/update/delete hanya SUPERADMIN
//  3. Review: create semua user login; update/delete pemilik atau SUPERADMIN
//  4. User: semua aksi hanya SUPERADMIN, plus guard self-demote & self-delete
func Authorize(actor Actor, action Action, res Resource) Decision {
	if !actor.Authenticated() {
		if action == ActionRead && (res.Kind == ResourceSchool || res.Kind == ResourceReview) {
			return allow()
		}
		return deny(ReasonUnauthenticated)
	}

	switch res.Kind {
	case ResourceSchool:
		if action == ActionRead {
			return allow()
		}
		if actor.Role != constants.RoleSuperadmin {
			return deny(ReasonForbiddenRole)
		}
		return allow()

	case ResourceReview:
		switch action {
		case ActionCreate, ActionRead:
			return allow()
		case ActionUpdate, ActionDelete:
			if actor.Role == constants.RoleSuperadmin {
				return allow()
			}
			if actor.ID == res.AuthorID {
				return allow()
			}
			return deny(ReasonNotOwner)
		}

	case ResourceUser:
		if actor.Role != constants.RoleSuperadmin {
			return deny(ReasonForbiddenRole)
		}
		// Guard: superadmin tidak boleh ganti role sendiri / hapus akun sendiri
		if res.TargetID == actor.ID {
			if action == ActionDelete {
				return deny(ReasonSelfModificationBlocked)
			}
			if action == ActionUpdate && res.RoleChanged {
				return deny(ReasonSelfModificationBlocked)
			}
		}
		return allow()
	}

	return deny(ReasonForbiddenRole)
}
