// file: internals/features/schools/school/dto/school_dto.go
package dto

import (
	"time"

	reviewDto "sekolahku_backend/internals/features/schools/review/dto"
	reviewService "sekolahku_backend/internals/features/schools/review/service"
	schoolModel "sekolahku_backend/internals/features/schools/school/model"
	helper "sekolahku_backend/internals/helpers"
)

/* =========================================================
   REQUEST DTO — CREATE (writable fields only)
   Kolom konten (description/programs/achievements/contact)
   sengaja TIDAK diterima saat create; diisi lewat update.
========================================================= */

type SchoolCreateRequest struct {
	Name      string   `json:"name" validate:"required,min=3,max=150"`
	Status    string   `json:"status" validate:"required,max=30"`
	NPSN      string   `json:"npsn" validate:"required,max=20"`
	Bentuk    string   `json:"bentuk" validate:"required,max=20"`
	Phone     string   `json:"phone" validate:"omitempty,max=30"`
	Address   string   `json:"address" validate:"required,max=255"`
	Kelurahan string   `json:"kelurahan" validate:"required,max=80"`
	Kecamatan string   `json:"kecamatan" validate:"required,max=80"`
	Latitude  *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	Website   string   `json:"website" validate:"omitempty,url,max=255"`
}

func (r SchoolCreateRequest) ToModel() schoolModel.SchoolModel {
	m := schoolModel.SchoolModel{
		SchoolName:      r.Name,
		SchoolStatus:    r.Status,
		SchoolNPSN:      r.NPSN,
		SchoolBentuk:    r.Bentuk,
		SchoolPhone:     r.Phone,
		SchoolAddress:   r.Address,
		SchoolKelurahan: r.Kelurahan,
		SchoolKecamatan: r.Kecamatan,
		SchoolLatitude:  r.Latitude,
		SchoolLongitude: r.Longitude,
	}
	if r.Website != "" {
		w := r.Website
		m.SchoolWebsite = &w
	}
	return m
}

/* =========================================================
   PARTIAL UPDATE DTO (merge-patch)
   - key tidak ada  → field tidak disentuh
   - key ada        → divalidasi lalu diterapkan
   - null eksplisit → kolom teks opsional dikosongkan (OptString)
========================================================= */

type SchoolUpdateRequest struct {
	Name      *string  `json:"name" validate:"omitempty,min=3,max=150"`
	Status    *string  `json:"status" validate:"omitempty,max=30"`
	NPSN      *string  `json:"npsn" validate:"omitempty,max=20"`
	Bentuk    *string  `json:"bentuk" validate:"omitempty,max=20"`
	Phone     *string  `json:"phone" validate:"omitempty,max=30"`
	Address   *string  `json:"address" validate:"omitempty,max=255"`
	Kelurahan *string  `json:"kelurahan" validate:"omitempty,max=80"`
	Kecamatan *string  `json:"kecamatan" validate:"omitempty,max=80"`
	Latitude  *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`

	Description  helper.OptString `json:"description"`
	Programs     helper.OptString `json:"programs"`
	Achievements helper.OptString `json:"achievements"`
	Website      helper.OptString `json:"website"`
	Contact      helper.OptString `json:"contact"`
}

// ValidateOptional memvalidasi field merge-patch yang tidak bisa
// ditangani tag struct (nilai OptString yang terisi)
func (r SchoolUpdateRequest) ValidateOptional() map[string][]string {
	errs := map[string][]string{}
	if r.Website.Set && r.Website.Valid {
		for field, msgs := range helper.ValidateVar("website", r.Website.Value, "url,max=255") {
			errs[field] = append(errs[field], msgs...)
		}
	}
	if r.Contact.Set && r.Contact.Valid {
		for field, msgs := range helper.ValidateVar("contact", r.Contact.Value, "max=100") {
			errs[field] = append(errs[field], msgs...)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ApplyToModel menerapkan hanya key yang ada di body
func (r SchoolUpdateRequest) ApplyToModel(m *schoolModel.SchoolModel) {
	if r.Name != nil {
		m.SchoolName = *r.Name
	}
	if r.Status != nil {
		m.SchoolStatus = *r.Status
	}
	if r.NPSN != nil {
		m.SchoolNPSN = *r.NPSN
	}
	if r.Bentuk != nil {
		m.SchoolBentuk = *r.Bentuk
	}
	if r.Phone != nil {
		m.SchoolPhone = *r.Phone
	}
	if r.Address != nil {
		m.SchoolAddress = *r.Address
	}
	if r.Kelurahan != nil {
		m.SchoolKelurahan = *r.Kelurahan
	}
	if r.Kecamatan != nil {
		m.SchoolKecamatan = *r.Kecamatan
	}
	if r.Latitude != nil {
		m.SchoolLatitude = r.Latitude
	}
	if r.Longitude != nil {
		m.SchoolLongitude = r.Longitude
	}
	if r.Description.Set {
		m.SchoolDescription = r.Description.Ptr()
	}
	if r.Programs.Set {
		m.SchoolPrograms = r.Programs.Ptr()
	}
	if r.Achievements.Set {
		m.SchoolAchievements = r.Achievements.Ptr()
	}
	if r.Website.Set {
		m.SchoolWebsite = r.Website.Ptr()
	}
	if r.Contact.Set {
		m.SchoolContact = r.Contact.Ptr()
	}
}

/* =========================================================
   RESPONSE DTO — rata-rata rating selalu dihitung dari review
========================================================= */

type SchoolResponse struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	Status        string    `json:"status"`
	NPSN          string    `json:"npsn"`
	Bentuk        string    `json:"bentuk"`
	Phone         string    `json:"phone"`
	Address       string    `json:"address"`
	Kelurahan     string    `json:"kelurahan"`
	Kecamatan     string    `json:"kecamatan"`
	Latitude      *float64  `json:"latitude,omitempty"`
	Longitude     *float64  `json:"longitude,omitempty"`
	Description   *string   `json:"description,omitempty"`
	Programs      *string   `json:"programs,omitempty"`
	Achievements  *string   `json:"achievements,omitempty"`
	Website       *string   `json:"website,omitempty"`
	Contact       *string   `json:"contact,omitempty"`
	AverageRating float64   `json:"average_rating"`
	TotalReviews  int       `json:"total_reviews"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Reviews []reviewDto.ReviewResponse `json:"reviews,omitempty"`
}

// FromModelSchool membangun response; rata-rata dihitung dari review yang
// ter-load. withReviews=false untuk list (review tetap dipakai buat rata-rata,
// tapi tidak ikut dikirim).
func FromModelSchool(m *schoolModel.SchoolModel, withReviews bool) SchoolResponse {
	resp := SchoolResponse{
		ID:            m.SchoolID,
		Name:          m.SchoolName,
		Status:        m.SchoolStatus,
		NPSN:          m.SchoolNPSN,
		Bentuk:        m.SchoolBentuk,
		Phone:         m.SchoolPhone,
		Address:       m.SchoolAddress,
		Kelurahan:     m.SchoolKelurahan,
		Kecamatan:     m.SchoolKecamatan,
		Latitude:      m.SchoolLatitude,
		Longitude:     m.SchoolLongitude,
		Description:   m.SchoolDescription,
		Programs:      m.SchoolPrograms,
		Achievements:  m.SchoolAchievements,
		Website:       m.SchoolWebsite,
		Contact:       m.SchoolContact,
		AverageRating: reviewService.AverageRating(m.SchoolReviews),
		TotalReviews:  len(m.SchoolReviews),
		CreatedAt:     m.SchoolCreatedAt,
		UpdatedAt:     m.SchoolUpdatedAt,
	}
	if withReviews {
		resp.Reviews = reviewDto.FromModelReviews(m.SchoolReviews)
	}
	return resp
}

func FromModelSchools(ms []schoolModel.SchoolModel) []SchoolResponse {
	out := make([]SchoolResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModelSchool(&ms[i], false))
	}
	return out
}
