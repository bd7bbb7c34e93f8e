package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/authz"
	"sekolahku_backend/internals/constants"
	authService "sekolahku_backend/internals/features/users/auth/service"
	"sekolahku_backend/internals/features/users/user/dto"
	"sekolahku_backend/internals/features/users/user/model"
	helper "sekolahku_backend/internals/helpers"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// duplikat email bisa lolos cek awal saat balapan; terjemahkan error unik DB
func isDuplicateErr(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	low := strings.ToLower(err.Error())
	return strings.Contains(low, "duplicate key") || strings.Contains(low, "unique")
}

// GET /api/a/users?q=&page=&per_page=
func (uc *UserController) GetUsers(c *fiber.Ctx) error {
	actor := authz.ActorFromContext(c)
	if d := authz.Authorize(actor, authz.ActionRead, authz.Resource{Kind: authz.ResourceUser}); !d.Allowed {
		return helper.JsonError(c, d.HTTPStatus(), constants.RoleErrorSuperadmin("manajemen user"))
	}

	paging := helper.ResolvePaging(c, 20, 100)

	tx := uc.DB.Model(&model.UserModel{})
	if q := c.Query("q"); q != "" {
		like := "%" + q + "%"
		tx = tx.Where("user_name ILIKE ? OR email ILIKE ?", like, like)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		log.Println("[ERROR] Gagal hitung user:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar user")
	}

	var users []model.UserModel
	if err := tx.
		Order("created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&users).Error; err != nil {
		log.Println("[ERROR] Gagal ambil user:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar user")
	}

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage, len(users))
	return helper.JsonList(c, "Daftar user berhasil diambil", dto.FromModelUsers(users), &pagination)
}

// GET /api/a/users/:id
func (uc *UserController) GetUserByID(c *fiber.Ctx) error {
	actor := authz.ActorFromContext(c)
	if d := authz.Authorize(actor, authz.ActionRead, authz.Resource{Kind: authz.ResourceUser}); !d.Allowed {
		return helper.JsonError(c, d.HTTPStatus(), constants.RoleErrorSuperadmin("manajemen user"))
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID user tidak valid")
	}

	var user model.UserModel
	if err := uc.DB.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		log.Println("[ERROR] Gagal ambil user:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil user")
	}

	return helper.JsonOK(c, "Detail user berhasil diambil", dto.FromModelUser(&user))
}

// POST /api/a/users — superadmin membuat akun; email harus unik
func (uc *UserController) CreateUser(c *fiber.Ctx) error {
	actor := authz.ActorFromContext(c)
	if d := authz.Authorize(actor, authz.ActionCreate, authz.Resource{Kind: authz.ResourceUser}); !d.Allowed {
		return helper.JsonError(c, d.HTTPStatus(), constants.RoleErrorSuperadmin("manajemen user"))
	}

	var req dto.UserCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}

	if errs := helper.ValidateStruct(req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	// cek duplikat dulu biar pesannya enak dibaca
	var existing model.UserModel
	err := uc.DB.Select("id").First(&existing, "email = ?", req.Email).Error
	if err == nil {
		return helper.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Println("[ERROR] Gagal cek email:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan user")
	}

	hashed, err := authService.HashPassword(req.Password)
	if err != nil {
		log.Println("[ERROR] Gagal hash password:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan user")
	}

	user := req.ToModel()
	user.Password = hashed

	if err := uc.DB.Create(&user).Error; err != nil {
		if isDuplicateErr(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar")
		}
		log.Println("[ERROR] Gagal simpan user:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan user")
	}

	log.Printf("[SUCCESS] User %s (%s) dibuat oleh %s\n", user.ID, user.Role, actor.ID)
	return helper.JsonCreated(c, "User berhasil dibuat", dto.FromModelUser(&user))
}

// PATCH /api/a/users/:id — superadmin tidak boleh menurunkan role dirinya sendiri
func (uc *UserController) UpdateUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID user tidak valid")
	}

	var target model.UserModel
	if err := uc.DB.First(&target, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		log.Println("[ERROR] Gagal ambil user:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil user")
	}

	var req dto.UserUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}

	roleChanged := req.Role != nil && *req.Role != target.Role

	actor := authz.ActorFromContext(c)
	if d := authz.Authorize(actor, authz.ActionUpdate, authz.Resource{
		Kind:        authz.ResourceUser,
		TargetID:    target.ID,
		RoleChanged: roleChanged,
	}); !d.Allowed {
		if d.Reason == authz.ReasonSelfModificationBlocked {
			return helper.JsonError(c, d.HTTPStatus(), "Tidak boleh mengubah role akun sendiri")
		}
		return helper.JsonError(c, d.HTTPStatus(), constants.RoleErrorSuperadmin("manajemen user"))
	}

	if errs := helper.ValidateStruct(req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	if req.UserName != nil {
		target.UserName = *req.UserName
	}
	if req.Email != nil {
		target.Email = *req.Email
	}
	if req.Password != nil {
		hashed, err := authService.HashPassword(*req.Password)
		if err != nil {
			log.Println("[ERROR] Gagal hash password:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengubah user")
		}
		target.Password = hashed
	}
	if req.Role != nil {
		target.Role = *req.Role
	}
	if req.IsActive != nil {
		target.IsActive = *req.IsActive
	}

	// assigned_school_id hanya bermakna untuk SCHOOL_ADMIN
	if target.Role == constants.RoleSchoolAdmin {
		if req.AssignedSchoolID != nil {
			target.AssignedSchoolID = req.AssignedSchoolID
		}
		if target.AssignedSchoolID == nil {
			return helper.JsonValidationError(c, map[string][]string{
				"assigned_school_id": {"wajib diisi untuk role SCHOOL_ADMIN"},
			})
		}
	} else {
		target.AssignedSchoolID = nil
	}

	if err := uc.DB.Save(&target).Error; err != nil {
		if isDuplicateErr(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar")
		}
		log.Println("[ERROR] Gagal update user:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengubah user")
	}

	return helper.JsonUpdated(c, "User berhasil diperbarui", dto.FromModelUser(&target))
}

// DELETE /api/a/users/:id — hapus akun sendiri ditolak
func (uc *UserController) DeleteUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID user tidak valid")
	}

	var target model.UserModel
	if err := uc.DB.First(&target, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		log.Println("[ERROR] Gagal ambil user:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil user")
	}

	actor := authz.ActorFromContext(c)
	if d := authz.Authorize(actor, authz.ActionDelete, authz.Resource{
		Kind:     authz.ResourceUser,
		TargetID: target.ID,
	}); !d.Allowed {
		if d.Reason == authz.ReasonSelfModificationBlocked {
			return helper.JsonError(c, d.HTTPStatus(), "Tidak boleh menghapus akun sendiri")
		}
		return helper.JsonError(c, d.HTTPStatus(), constants.RoleErrorSuperadmin("manajemen user"))
	}

	if err := uc.DB.Delete(&target).Error; err != nil {
		log.Println("[ERROR] Gagal hapus user:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus user")
	}

	log.Printf("[SUCCESS] User %s dihapus oleh %s\n", target.ID, actor.ID)
	return helper.JsonDeleted(c, "User berhasil dihapus", fiber.Map{"id": target.ID.String()})
}
