package model

import (
	"time"

	"github.com/google/uuid"

	userModel "sekolahku_backend/internals/features/users/user/model"
)

// Peran pengulas yang diakui (closed set)
const (
	ReviewerRoleAlumni   = "Alumni"
	ReviewerRoleOrangTua = "Orang Tua Murid"
	ReviewerRoleGuru     = "Guru"
	ReviewerRoleAktivis  = "Aktivis Pendidikan"
)

// ReviewModel: satu penilaian user terhadap satu sekolah.
// Empat rating wajib integer 1..5; dicek di DTO sebelum sampai ke sini.
type ReviewModel struct {
	ReviewID           uint      `gorm:"primaryKey;column:review_id" json:"id"`
	ReviewSchoolID     uint      `gorm:"not null;index;column:review_school_id" json:"school_id"`
	ReviewUserID       uuid.UUID `gorm:"type:uuid;not null;index;column:review_user_id" json:"user_id"`
	ReviewReviewerName string    `gorm:"size:100;not null;column:review_reviewer_name" json:"reviewer_name"`
	ReviewReviewerRole string    `gorm:"size:30;not null;column:review_reviewer_role" json:"reviewer_role"`
	ReviewBiaya        string    `gorm:"size:50;column:review_biaya" json:"biaya"`
	ReviewComment      string    `gorm:"type:text;not null;column:review_comment" json:"comment"`
	ReviewKenyamanan   int       `gorm:"not null;column:review_kenyamanan" json:"kenyamanan"`
	ReviewPembelajaran int       `gorm:"not null;column:review_pembelajaran" json:"pembelajaran"`
	ReviewFasilitas    int       `gorm:"not null;column:review_fasilitas" json:"fasilitas"`
	ReviewKepemimpinan int       `gorm:"not null;column:review_kepemimpinan" json:"kepemimpinan"`
	ReviewCreatedAt    time.Time `gorm:"autoCreateTime;column:review_created_at" json:"created_at"`
	ReviewUpdatedAt    time.Time `gorm:"autoUpdateTime;column:review_updated_at" json:"updated_at"`

	Author *userModel.UserModel `gorm:"foreignKey:ReviewUserID;references:ID" json:"-"`
}

// TableName memastikan nama tabel sesuai dengan skema database
func (ReviewModel) TableName() string {
	return "school_reviews"
}

// ReviewerRoles untuk validasi closed set
var ReviewerRoles = []string{
	ReviewerRoleAlumni,
	ReviewerRoleOrangTua,
	ReviewerRoleGuru,
	ReviewerRoleAktivis,
}
