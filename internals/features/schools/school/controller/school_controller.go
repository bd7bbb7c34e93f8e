package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/authz"
	"sekolahku_backend/internals/features/schools/school/dto"
	"sekolahku_backend/internals/features/schools/school/model"
	helper "sekolahku_backend/internals/helpers"
)

type SchoolController struct {
	DB *gorm.DB
}

func NewSchoolController(db *gorm.DB) *SchoolController {
	return &SchoolController{DB: db}
}

// GET /api/public/schools?q=&page=&per_page=
// Pencarian di nama, kelurahan, dan kecamatan. Review di-preload supaya
// rata-rata rating ikut terhitung di list.
func (sc *SchoolController) GetSchools(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	tx := sc.DB.Model(&model.SchoolModel{})
	if q := c.Query("q"); q != "" {
		like := "%" + q + "%"
		tx = tx.Where(
			"school_name ILIKE ? OR school_kelurahan ILIKE ? OR school_kecamatan ILIKE ?",
			like, like, like,
		)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		log.Println("[ERROR] Gagal hitung sekolah:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar sekolah")
	}

	var schools []model.SchoolModel
	if err := tx.
		Preload("SchoolReviews").
		Order("school_name ASC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&schools).Error; err != nil {
		log.Println("[ERROR] Gagal ambil sekolah:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar sekolah")
	}

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage, len(schools))
	return helper.JsonList(c, "Daftar sekolah berhasil diambil", dto.FromModelSchools(schools), &pagination)
}

// GET /api/public/schools/:id — detail + review terbaru dulu
func (sc *SchoolController) GetSchoolByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID sekolah tidak valid")
	}

	var school model.SchoolModel
	if err := sc.DB.
		Preload("SchoolReviews", func(db *gorm.DB) *gorm.DB {
			return db.Order("review_created_at DESC")
		}).
		First(&school, "school_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Sekolah tidak ditemukan")
		}
		log.Println("[ERROR] Gagal ambil sekolah:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil sekolah")
	}

	return helper.JsonOK(c, "Detail sekolah berhasil diambil", dto.FromModelSchool(&school, true))
}

// POST /api/a/schools — hanya superadmin (dicek di Authorization Gate)
func (sc *SchoolController) CreateSchool(c *fiber.Ctx) error {
	var req dto.SchoolCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}

	if errs := helper.ValidateStruct(req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	actor := authz.ActorFromContext(c)
	if d := authz.Authorize(actor, authz.ActionCreate, authz.Resource{Kind: authz.ResourceSchool}); !d.Allowed {
		return helper.JsonError(c, d.HTTPStatus(), "Tidak diizinkan mengelola data sekolah ("+string(d.Reason)+")")
	}

	school := req.ToModel()
	if err := sc.DB.Create(&school).Error; err != nil {
		log.Println("[ERROR] Gagal simpan sekolah:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan sekolah")
	}

	log.Printf("[SUCCESS] Sekolah %d (%s) dibuat\n", school.SchoolID, school.SchoolName)
	return helper.JsonCreated(c, "Sekolah berhasil dibuat", dto.FromModelSchool(&school, false))
}

// PATCH /api/a/schools/:id — merge-patch: hanya key yang dikirim yang berubah,
// null eksplisit mengosongkan kolom teks opsional
func (sc *SchoolController) UpdateSchool(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID sekolah tidak valid")
	}

	var school model.SchoolModel
	if err := sc.DB.First(&school, "school_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Sekolah tidak ditemukan")
		}
		log.Println("[ERROR] Gagal ambil sekolah:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil sekolah")
	}

	actor := authz.ActorFromContext(c)
	if d := authz.Authorize(actor, authz.ActionUpdate, authz.Resource{Kind: authz.ResourceSchool}); !d.Allowed {
		return helper.JsonError(c, d.HTTPStatus(), "Tidak diizinkan mengelola data sekolah ("+string(d.Reason)+")")
	}

	var req dto.SchoolUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}

	errs := helper.ValidateStruct(req)
	for field, msgs := range req.ValidateOptional() {
		if errs == nil {
			errs = map[string][]string{}
		}
		errs[field] = append(errs[field], msgs...)
	}
	if errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	req.ApplyToModel(&school)
	if err := sc.DB.Save(&school).Error; err != nil {
		log.Println("[ERROR] Gagal update sekolah:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengubah sekolah")
	}

	return helper.JsonUpdated(c, "Sekolah berhasil diperbarui", dto.FromModelSchool(&school, false))
}

// DELETE /api/a/schools/:id — review ikut terhapus (FK cascade)
func (sc *SchoolController) DeleteSchool(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID sekolah tidak valid")
	}

	var school model.SchoolModel
	if err := sc.DB.First(&school, "school_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Sekolah tidak ditemukan")
		}
		log.Println("[ERROR] Gagal ambil sekolah:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil sekolah")
	}

	actor := authz.ActorFromContext(c)
	if d := authz.Authorize(actor, authz.ActionDelete, authz.Resource{Kind: authz.ResourceSchool}); !d.Allowed {
		return helper.JsonError(c, d.HTTPStatus(), "Tidak diizinkan mengelola data sekolah ("+string(d.Reason)+")")
	}

	if err := sc.DB.Delete(&school).Error; err != nil {
		log.Println("[ERROR] Gagal hapus sekolah:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus sekolah")
	}

	log.Printf("[SUCCESS] Sekolah %d dihapus\n", school.SchoolID)
	return helper.JsonDeleted(c, "Sekolah berhasil dihapus", fiber.Map{"id": school.SchoolID})
}
