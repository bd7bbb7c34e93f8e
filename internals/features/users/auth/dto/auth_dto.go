// file: internals/features/users/auth/dto/auth_dto.go
package dto

import userDto "sekolahku_backend/internals/features/users/user/dto"

// Register publik: role TIDAK diterima dari request, selalu USER
type RegisterRequest struct {
	UserName string `json:"user_name" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken string               `json:"access_token"`
	TokenType   string               `json:"token_type"`
	ExpiresIn   int64                `json:"expires_in"` // detik
	User        userDto.UserResponse `json:"user"`
}
