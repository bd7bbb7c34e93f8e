package model

import (
	"time"

	reviewModel "sekolahku_backend/internals/features/schools/review/model"
)

// SchoolModel merepresentasikan satu entri direktori sekolah dasar.
// Kolom teks opsional nullable; rata-rata rating TIDAK disimpan,
// selalu dihitung dari review saat dibaca.
type SchoolModel struct {
	SchoolID           uint     `gorm:"primaryKey;column:school_id" json:"id"`
	SchoolName         string   `gorm:"size:150;not null;column:school_name" json:"name"`
	SchoolStatus       string   `gorm:"size:30;not null;column:school_status" json:"status"`
	SchoolNPSN         string   `gorm:"size:20;not null;column:school_npsn" json:"npsn"`
	SchoolBentuk       string   `gorm:"size:20;not null;column:school_bentuk" json:"bentuk"`
	SchoolPhone        string   `gorm:"size:30;column:school_phone" json:"phone"`
	SchoolAddress      string   `gorm:"size:255;not null;column:school_address" json:"address"`
	SchoolKelurahan    string   `gorm:"size:80;not null;column:school_kelurahan" json:"kelurahan"`
	SchoolKecamatan    string   `gorm:"size:80;not null;column:school_kecamatan" json:"kecamatan"`
	SchoolLatitude     *float64 `gorm:"column:school_latitude" json:"latitude,omitempty"`
	SchoolLongitude    *float64 `gorm:"column:school_longitude" json:"longitude,omitempty"`
	SchoolDescription  *string  `gorm:"type:text;column:school_description" json:"description,omitempty"`
	SchoolPrograms     *string  `gorm:"type:text;column:school_programs" json:"programs,omitempty"`
	SchoolAchievements *string  `gorm:"type:text;column:school_achievements" json:"achievements,omitempty"`
	SchoolWebsite      *string  `gorm:"size:255;column:school_website" json:"website,omitempty"`
	SchoolContact      *string  `gorm:"size:100;column:school_contact" json:"contact,omitempty"`

	SchoolCreatedAt time.Time `gorm:"autoCreateTime;column:school_created_at" json:"created_at"`
	SchoolUpdatedAt time.Time `gorm:"autoUpdateTime;column:school_updated_at" json:"updated_at"`

	SchoolReviews []reviewModel.ReviewModel `gorm:"foreignKey:ReviewSchoolID;references:SchoolID" json:"-"`
}

// TableName memastikan nama tabel sesuai dengan skema database
func (SchoolModel) TableName() string {
	return "schools"
}
