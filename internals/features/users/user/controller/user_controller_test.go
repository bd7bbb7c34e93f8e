package controller

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"sekolahku_backend/internals/constants"
	helper "sekolahku_backend/internals/helpers"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func newUserApp(db *gorm.DB, actorID uuid.UUID, role string) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if actorID != uuid.Nil {
			c.Locals(helper.LocUserID, actorID.String())
			c.Locals(helper.LocUserRole, role)
		}
		return c.Next()
	})

	ctrl := NewUserController(db)
	app.Get("/users", ctrl.GetUsers)
	app.Get("/users/:id", ctrl.GetUserByID)
	app.Post("/users", ctrl.CreateUser)
	app.Patch("/users/:id", ctrl.UpdateUser)
	app.Delete("/users/:id", ctrl.DeleteUser)
	return app
}

func userRows(id uuid.UUID, role string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"id", "user_name", "email", "password", "role",
		"assigned_school_id", "is_active", "created_at", "updated_at",
	}).AddRow(
		id.String(), "pak_admin", "admin@sekolahku.id", "$2a$10$hash", role,
		nil, true, now, now,
	)
}

func TestDeleteUserSelfBlocked(t *testing.T) {
	db, mock := newMockDB(t)
	admin := uuid.New()

	// hanya SELECT; DELETE tidak boleh jalan
	mock.ExpectQuery(`SELECT (.+) FROM "users"`).WillReturnRows(userRows(admin, constants.RoleSuperadmin))

	app := newUserApp(db, admin, constants.RoleSuperadmin)
	req := httptest.NewRequest("DELETE", "/users/"+admin.String(), nil)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateUserSelfRoleChangeBlocked(t *testing.T) {
	db, mock := newMockDB(t)
	admin := uuid.New()

	mock.ExpectQuery(`SELECT (.+) FROM "users"`).WillReturnRows(userRows(admin, constants.RoleSuperadmin))

	app := newUserApp(db, admin, constants.RoleSuperadmin)
	req := httptest.NewRequest("PATCH", "/users/"+admin.String(), strings.NewReader(`{"role":"USER"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateUserSelfNameAllowed(t *testing.T) {
	db, mock := newMockDB(t)
	admin := uuid.New()

	// ganti nama sendiri boleh; yang diblokir hanya perubahan role
	mock.ExpectQuery(`SELECT (.+) FROM "users"`).WillReturnRows(userRows(admin, constants.RoleSuperadmin))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "users" SET`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	app := newUserApp(db, admin, constants.RoleSuperadmin)
	req := httptest.NewRequest("PATCH", "/users/"+admin.String(), strings.NewReader(`{"user_name":"nama_baru"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUserForbiddenForNonSuperadmin(t *testing.T) {
	db, mock := newMockDB(t)

	body := `{"user_name":"baru","email":"baru@mail.com","password":"rahasia-banget","role":"USER"}`
	app := newUserApp(db, uuid.New(), constants.RoleUser)
	req := httptest.NewRequest("POST", "/users", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	db, mock := newMockDB(t)
	admin := uuid.New()

	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New().String()))

	body := `{"user_name":"baru","email":"sudah@ada.com","password":"rahasia-banget","role":"USER"}`
	app := newUserApp(db, admin, constants.RoleSuperadmin)
	req := httptest.NewRequest("POST", "/users", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	var parsed struct {
		ErrorCode string `json:"error_code"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	assert.Equal(t, "CONFLICT", parsed.ErrorCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateUserSchoolAdminNeedsSchool(t *testing.T) {
	db, mock := newMockDB(t)
	admin := uuid.New()
	target := uuid.New()

	mock.ExpectQuery(`SELECT (.+) FROM "users"`).WillReturnRows(userRows(target, constants.RoleUser))

	app := newUserApp(db, admin, constants.RoleSuperadmin)
	req := httptest.NewRequest("PATCH", "/users/"+target.String(), strings.NewReader(`{"role":"SCHOOL_ADMIN"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	var body struct {
		Errors map[string][]string `json:"errors"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Contains(t, body.Errors, "assigned_school_id")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteOtherUserBySuperadmin(t *testing.T) {
	db, mock := newMockDB(t)
	admin := uuid.New()
	target := uuid.New()

	mock.ExpectQuery(`SELECT (.+) FROM "users"`).WillReturnRows(userRows(target, constants.RoleUser))
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "users"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	app := newUserApp(db, admin, constants.RoleSuperadmin)
	req := httptest.NewRequest("DELETE", "/users/"+target.String(), nil)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}
