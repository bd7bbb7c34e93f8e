package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel merepresentasikan tabel users di database.
// AssignedSchoolID hanya terisi kalau role = SCHOOL_ADMIN (dijaga di workflow).
type UserModel struct {
	ID               uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserName         string    `gorm:"size:50;not null" json:"user_name"`
	Email            string    `gorm:"size:255;unique;not null" json:"email"`
	Password         string    `gorm:"not null" json:"-"`
	Role             string    `gorm:"type:varchar(20);not null;default:'USER'" json:"role"`
	AssignedSchoolID *uint     `gorm:"index" json:"assigned_school_id,omitempty"`
	IsActive         bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName memastikan nama tabel sesuai dengan skema database
func (UserModel) TableName() string {
	return "users"
}
