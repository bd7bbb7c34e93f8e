package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/users/auth/dto"
	"sekolahku_backend/internals/features/users/auth/service"
	userDto "sekolahku_backend/internals/features/users/user/dto"
	helper "sekolahku_backend/internals/helpers"
)

type AuthController struct {
	Service *service.AuthService
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{Service: service.NewAuthService(db)}
}

// POST /api/auth/register — akun publik, role selalu USER
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}

	if errs := helper.ValidateStruct(req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	user, err := ac.Service.Register(req.UserName, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			return helper.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar")
		}
		log.Println("[ERROR] Register gagal:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mendaftarkan akun")
	}

	log.Printf("[SUCCESS] Akun %s terdaftar\n", user.Email)
	return helper.JsonCreated(c, "Registrasi berhasil", userDto.FromModelUser(user))
}

// POST /api/auth/login
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}

	if errs := helper.ValidateStruct(req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	user, token, err := ac.Service.Login(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
		case errors.Is(err, service.ErrAccountInactive):
			return helper.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
		default:
			log.Println("[ERROR] Login gagal:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal login")
		}
	}

	return helper.JsonOK(c, "Login berhasil", dto.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(service.AccessTokenTTL.Seconds()),
		User:        userDto.FromModelUser(user),
	})
}

// POST /api/auth/logout — token masuk blacklist sampai exp-nya lewat
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	raw := helper.GetRawAccessToken(c)
	if raw == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Token tidak ditemukan")
	}

	if err := ac.Service.Logout(raw); err != nil {
		log.Println("[ERROR] Logout gagal:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal logout")
	}

	c.ClearCookie("access_token")
	return helper.JsonOK(c, "Logout berhasil", nil)
}
