package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/authz"
	"sekolahku_backend/internals/features/schools/review/dto"
	"sekolahku_backend/internals/features/schools/review/model"
	schoolModel "sekolahku_backend/internals/features/schools/school/model"
	userModel "sekolahku_backend/internals/features/users/user/model"
	helper "sekolahku_backend/internals/helpers"
)

type ReviewController struct {
	DB *gorm.DB
}

func NewReviewController(db *gorm.DB) *ReviewController {
	return &ReviewController{DB: db}
}

// GET /api/public/schools/:schoolId/reviews — publik, terbaru dulu
func (rc *ReviewController) GetReviewsBySchool(c *fiber.Ctx) error {
	schoolID, err := c.ParamsInt("schoolId")
	if err != nil || schoolID <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID sekolah tidak valid")
	}

	var reviews []model.ReviewModel
	if err := rc.DB.
		Where("review_school_id = ?", schoolID).
		Order("review_created_at DESC").
		Find(&reviews).Error; err != nil {
		log.Println("[ERROR] Gagal ambil review:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil review")
	}

	return helper.JsonOK(c, "Review berhasil diambil", dto.FromModelReviews(reviews))
}

// POST /api/u/reviews — validate → authorize → persist → respond
func (rc *ReviewController) CreateReview(c *fiber.Ctx) error {
	var req dto.ReviewCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}

	if errs := helper.ValidateStruct(req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	actor := authz.ActorFromContext(c)
	if d := authz.Authorize(actor, authz.ActionCreate, authz.Resource{Kind: authz.ResourceReview}); !d.Allowed {
		return helper.JsonError(c, d.HTTPStatus(), "Tidak diizinkan membuat review ("+string(d.Reason)+")")
	}

	// sekolah target harus ada
	var school schoolModel.SchoolModel
	if err := rc.DB.Select("school_id").First(&school, "school_id = ?", req.SchoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Sekolah tidak ditemukan")
		}
		log.Println("[ERROR] Gagal cek sekolah:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan review")
	}

	row := req.ToModel(actor.ID)
	if err := rc.DB.Create(&row).Error; err != nil {
		log.Println("[ERROR] Gagal simpan review:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan review")
	}

	// embed author {id, name, email} di response
	var author userModel.UserModel
	if err := rc.DB.First(&author, "id = ?", actor.ID).Error; err == nil {
		row.Author = &author
	}

	log.Printf("[SUCCESS] Review %d dibuat oleh user %s\n", row.ReviewID, actor.ID)
	return helper.JsonCreated(c, "Review berhasil dibuat", dto.FromModelReview(&row))
}

// PUT /api/u/reviews/:id — resolve → authorize → validate → persist
// Otorisasi dicek sebelum validasi body: bukan pemilik tidak perlu tahu
// field mana yang salah.
func (rc *ReviewController) UpdateReview(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID review tidak valid")
	}

	var existing model.ReviewModel
	if err := rc.DB.First(&existing, "review_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Review tidak ditemukan")
		}
		log.Println("[ERROR] Gagal ambil review:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil review")
	}

	actor := authz.ActorFromContext(c)
	if d := authz.Authorize(actor, authz.ActionUpdate, authz.Resource{
		Kind:     authz.ResourceReview,
		AuthorID: existing.ReviewUserID,
	}); !d.Allowed {
		return helper.JsonError(c, d.HTTPStatus(), "Tidak diizinkan mengubah review ini ("+string(d.Reason)+")")
	}

	var req dto.ReviewUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}

	// review tidak bisa dipindah ke sekolah lain
	if req.SchoolID != nil {
		return helper.JsonValidationError(c, map[string][]string{
			"school_id": {"tidak boleh diubah"},
		})
	}

	if errs := helper.ValidateStruct(req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	req.ApplyToModel(&existing)
	if err := rc.DB.Save(&existing).Error; err != nil {
		log.Println("[ERROR] Gagal update review:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengubah review")
	}

	return helper.JsonUpdated(c, "Review berhasil diperbarui", dto.FromModelReview(&existing))
}

// DELETE /api/u/reviews/:id
func (rc *ReviewController) DeleteReview(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID review tidak valid")
	}

	var existing model.ReviewModel
	if err := rc.DB.First(&existing, "review_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Review tidak ditemukan")
		}
		log.Println("[ERROR] Gagal ambil review:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil review")
	}

	actor := authz.ActorFromContext(c)
	if d := authz.Authorize(actor, authz.ActionDelete, authz.Resource{
		Kind:     authz.ResourceReview,
		AuthorID: existing.ReviewUserID,
	}); !d.Allowed {
		return helper.JsonError(c, d.HTTPStatus(), "Tidak diizinkan menghapus review ini ("+string(d.Reason)+")")
	}

	if err := rc.DB.Delete(&existing).Error; err != nil {
		log.Println("[ERROR] Gagal hapus review:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus review")
	}

	log.Printf("[SUCCESS] Review %d dihapus oleh user %s\n", existing.ReviewID, actor.ID)
	return helper.JsonDeleted(c, "Review berhasil dihapus", fiber.Map{"id": existing.ReviewID})
}
