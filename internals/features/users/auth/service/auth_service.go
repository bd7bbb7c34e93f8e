// file: internals/features/users/auth/service/auth_service.go
package service

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"sekolahku_backend/internals/configs"
	"sekolahku_backend/internals/constants"
	authModel "sekolahku_backend/internals/features/users/auth/model"
	userModel "sekolahku_backend/internals/features/users/user/model"
)

// umur access token; logout menyimpan sisa umurnya di blacklist
const AccessTokenTTL = 24 * time.Hour

var (
	ErrEmailTaken         = errors.New("email sudah terdaftar")
	ErrInvalidCredentials = errors.New("email atau password salah")
	ErrAccountInactive    = errors.New("akun dinonaktifkan")
)

type AuthService struct {
	DB *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{DB: db}
}

// Register membuat akun baru dengan role USER (role tidak bisa dipilih sendiri)
func (s *AuthService) Register(userName, email, password string) (*userModel.UserModel, error) {
	hashed, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := userModel.UserModel{
		UserName: userName,
		Email:    email,
		Password: hashed,
		Role:     constants.RoleUser,
		IsActive: true,
	}

	if err := s.DB.Create(&user).Error; err != nil {
		low := strings.ToLower(err.Error())
		if errors.Is(err, gorm.ErrDuplicatedKey) ||
			strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return &user, nil
}

// Login memverifikasi kredensial lalu menerbitkan access token
func (s *AuthService) Login(email, password string) (*userModel.UserModel, string, error) {
	var user userModel.UserModel
	if err := s.DB.First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !CheckPasswordHash(password, user.Password) {
		return nil, "", ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, "", ErrAccountInactive
	}

	token, err := GenerateAccessToken(&user)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

// Logout memasukkan token ke blacklist sampai masa berlakunya habis
func (s *AuthService) Logout(rawToken string) error {
	expiredAt := time.Now().Add(AccessTokenTTL)

	// pakai exp asli token kalau masih bisa dibaca
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, err := parser.ParseWithClaims(rawToken, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTSecret), nil
	}); err == nil {
		if exp, ok := claims["exp"].(float64); ok {
			expiredAt = time.Unix(int64(exp), 0)
		}
	}

	entry := authModel.TokenBlacklistModel{
		Token:     rawToken,
		ExpiredAt: expiredAt,
	}
	if err := s.DB.Create(&entry).Error; err != nil {
		low := strings.ToLower(err.Error())
		// token sudah pernah di-blacklist → idempotent
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return nil
		}
		return err
	}
	return nil
}

// GenerateAccessToken menerbitkan JWT HS256 dengan klaim yang dibaca middleware
func GenerateAccessToken(user *userModel.UserModel) (string, error) {
	if configs.JWTSecret == "" {
		return "", errors.New("JWT_SECRET belum diset")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"id":        user.ID.String(),
		"user_name": user.UserName,
		"email":     user.Email,
		"role":      user.Role,
		"iat":       now.Unix(),
		"exp":       now.Add(AccessTokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}
