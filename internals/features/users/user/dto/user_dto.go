// file: internals/features/users/user/dto/user_dto.go
package dto

import (
	"time"

	"sekolahku_backend/internals/constants"
	"sekolahku_backend/internals/features/users/user/model"
)

/* =========================================================
   REQUEST DTO — CREATE (oleh superadmin; role bebas dipilih)
   assigned_school_id wajib kalau role = SCHOOL_ADMIN
========================================================= */

type UserCreateRequest struct {
	UserName         string `json:"user_name" validate:"required,min=3,max=50"`
	Email            string `json:"email" validate:"required,email"`
	Password         string `json:"password" validate:"required,min=8"`
	Role             string `json:"role" validate:"required,oneof=USER SCHOOL_ADMIN SUPERADMIN"`
	AssignedSchoolID *uint  `json:"assigned_school_id" validate:"required_if=Role SCHOOL_ADMIN,omitempty,gt=0"`
}

func (r UserCreateRequest) ToModel() model.UserModel {
	m := model.UserModel{
		UserName: r.UserName,
		Email:    r.Email,
		Password: r.Password, // di-hash oleh workflow sebelum simpan
		Role:     r.Role,
		IsActive: true,
	}
	// assigned_school_id hanya bermakna untuk SCHOOL_ADMIN
	if r.Role == constants.RoleSchoolAdmin {
		m.AssignedSchoolID = r.AssignedSchoolID
	}
	return m
}

/* =========================================================
   PARTIAL UPDATE DTO — pointer semua writable fields
   password hanya di-rehash kalau dikirim
========================================================= */

type UserUpdateRequest struct {
	UserName         *string `json:"user_name" validate:"omitempty,min=3,max=50"`
	Email            *string `json:"email" validate:"omitempty,email"`
	Password         *string `json:"password" validate:"omitempty,min=8"`
	Role             *string `json:"role" validate:"omitempty,oneof=USER SCHOOL_ADMIN SUPERADMIN"`
	AssignedSchoolID *uint   `json:"assigned_school_id" validate:"omitempty,gt=0"`
	IsActive         *bool   `json:"is_active"`
}

/* =========================================================
   RESPONSE DTO — kredensial TIDAK pernah ikut
========================================================= */

type UserResponse struct {
	ID               string    `json:"id"`
	UserName         string    `json:"user_name"`
	Email            string    `json:"email"`
	Role             string    `json:"role"`
	AssignedSchoolID *uint     `json:"assigned_school_id,omitempty"`
	IsActive         bool      `json:"is_active"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func FromModelUser(m *model.UserModel) UserResponse {
	return UserResponse{
		ID:               m.ID.String(),
		UserName:         m.UserName,
		Email:            m.Email,
		Role:             m.Role,
		AssignedSchoolID: m.AssignedSchoolID,
		IsActive:         m.IsActive,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func FromModelUsers(ms []model.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModelUser(&ms[i]))
	}
	return out
}
