// file: internals/features/schools/review/dto/review_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"sekolahku_backend/internals/features/schools/review/model"
	userModel "sekolahku_backend/internals/features/users/user/model"
)

/* =========================================================
   REQUEST DTO — CREATE
   Empat rating wajib integer 1..5; komentar tidak boleh kosong.
========================================================= */

type ReviewCreateRequest struct {
	SchoolID     uint   `json:"school_id" validate:"required,gt=0"`
	ReviewerName string `json:"reviewer_name" validate:"required,min=2,max=100"`
	ReviewerRole string `json:"reviewer_role" validate:"required,oneof=Alumni 'Orang Tua Murid' Guru 'Aktivis Pendidikan'"`
	Biaya        string `json:"biaya" validate:"omitempty,max=50"`
	Comment      string `json:"comment" validate:"required"`
	Kenyamanan   int    `json:"kenyamanan" validate:"required,gte=1,lte=5"`
	Pembelajaran int    `json:"pembelajaran" validate:"required,gte=1,lte=5"`
	Fasilitas    int    `json:"fasilitas" validate:"required,gte=1,lte=5"`
	Kepemimpinan int    `json:"kepemimpinan" validate:"required,gte=1,lte=5"`
}

func (r ReviewCreateRequest) ToModel(userID uuid.UUID) model.ReviewModel {
	return model.ReviewModel{
		ReviewSchoolID:     r.SchoolID,
		ReviewUserID:       userID,
		ReviewReviewerName: r.ReviewerName,
		ReviewReviewerRole: r.ReviewerRole,
		ReviewBiaya:        r.Biaya,
		ReviewComment:      r.Comment,
		ReviewKenyamanan:   r.Kenyamanan,
		ReviewPembelajaran: r.Pembelajaran,
		ReviewFasilitas:    r.Fasilitas,
		ReviewKepemimpinan: r.Kepemimpinan,
	}
}

/* =========================================================
   PARTIAL UPDATE DTO — pointer semua writable fields.
   school_id TIDAK boleh ikut di body (review tidak bisa pindah sekolah).
========================================================= */

type ReviewUpdateRequest struct {
	SchoolID     *uint   `json:"school_id"` // ditolak kalau terisi
	ReviewerName *string `json:"reviewer_name" validate:"omitempty,min=2,max=100"`
	ReviewerRole *string `json:"reviewer_role" validate:"omitempty,oneof=Alumni 'Orang Tua Murid' Guru 'Aktivis Pendidikan'"`
	Biaya        *string `json:"biaya" validate:"omitempty,max=50"`
	Comment      *string `json:"comment" validate:"omitempty,min=1"`
	Kenyamanan   *int    `json:"kenyamanan" validate:"omitempty,gte=1,lte=5"`
	Pembelajaran *int    `json:"pembelajaran" validate:"omitempty,gte=1,lte=5"`
	Fasilitas    *int    `json:"fasilitas" validate:"omitempty,gte=1,lte=5"`
	Kepemimpinan *int    `json:"kepemimpinan" validate:"omitempty,gte=1,lte=5"`
}

// ApplyToModel menerapkan hanya field yang terisi (absent key = no-op)
func (r ReviewUpdateRequest) ApplyToModel(m *model.ReviewModel) {
	if r.ReviewerName != nil {
		m.ReviewReviewerName = *r.ReviewerName
	}
	if r.ReviewerRole != nil {
		m.ReviewReviewerRole = *r.ReviewerRole
	}
	if r.Biaya != nil {
		m.ReviewBiaya = *r.Biaya
	}
	if r.Comment != nil {
		m.ReviewComment = *r.Comment
	}
	if r.Kenyamanan != nil {
		m.ReviewKenyamanan = *r.Kenyamanan
	}
	if r.Pembelajaran != nil {
		m.ReviewPembelajaran = *r.Pembelajaran
	}
	if r.Fasilitas != nil {
		m.ReviewFasilitas = *r.Fasilitas
	}
	if r.Kepemimpinan != nil {
		m.ReviewKepemimpinan = *r.Kepemimpinan
	}
}

/* =========================================================
   RESPONSE DTO
========================================================= */

type ReviewAuthorResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ReviewResponse struct {
	ID           uint                  `json:"id"`
	SchoolID     uint                  `json:"school_id"`
	UserID       string                `json:"user_id"`
	ReviewerName string                `json:"reviewer_name"`
	ReviewerRole string                `json:"reviewer_role"`
	Biaya        string                `json:"biaya"`
	Comment      string                `json:"comment"`
	Kenyamanan   int                   `json:"kenyamanan"`
	Pembelajaran int                   `json:"pembelajaran"`
	Fasilitas    int                   `json:"fasilitas"`
	Kepemimpinan int                   `json:"kepemimpinan"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
	Author       *ReviewAuthorResponse `json:"author,omitempty"`
}

func FromModelReview(m *model.ReviewModel) ReviewResponse {
	resp := ReviewResponse{
		ID:           m.ReviewID,
		SchoolID:     m.ReviewSchoolID,
		UserID:       m.ReviewUserID.String(),
		ReviewerName: m.ReviewReviewerName,
		ReviewerRole: m.ReviewReviewerRole,
		Biaya:        m.ReviewBiaya,
		Comment:      m.ReviewComment,
		Kenyamanan:   m.ReviewKenyamanan,
		Pembelajaran: m.ReviewPembelajaran,
		Fasilitas:    m.ReviewFasilitas,
		Kepemimpinan: m.ReviewKepemimpinan,
		CreatedAt:    m.ReviewCreatedAt,
		UpdatedAt:    m.ReviewUpdatedAt,
	}
	if m.Author != nil {
		resp.Author = FromModelAuthor(m.Author)
	}
	return resp
}

func FromModelAuthor(u *userModel.UserModel) *ReviewAuthorResponse {
	return &ReviewAuthorResponse{
		ID:    u.ID.String(),
		Name:  u.UserName,
		Email: u.Email,
	}
}

func FromModelReviews(ms []model.ReviewModel) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModelReview(&ms[i]))
	}
	return out
}
