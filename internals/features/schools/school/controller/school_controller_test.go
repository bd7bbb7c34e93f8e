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

func newSchoolApp(db *gorm.DB, actorID uuid.UUID, role string) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if actorID != uuid.Nil {
			c.Locals(helper.LocUserID, actorID.String())
			c.Locals(helper.LocUserRole, role)
		}
		return c.Next()
	})

	ctrl := NewSchoolController(db)
	app.Get("/schools", ctrl.GetSchools)
	app.Get("/schools/:id", ctrl.GetSchoolByID)
	app.Post("/schools", ctrl.CreateSchool)
	app.Patch("/schools/:id", ctrl.UpdateSchool)
	app.Delete("/schools/:id", ctrl.DeleteSchool)
	return app
}

func schoolRows() *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"school_id", "school_name", "school_status", "school_npsn", "school_bentuk",
		"school_phone", "school_address", "school_kelurahan", "school_kecamatan",
		"school_created_at", "school_updated_at",
	}).AddRow(
		10, "SDN 01 Menteng", "Negeri", "20100001", "SD",
		"021-555", "Jl. Besuki No.4", "Menteng", "Menteng",
		now, now,
	)
}

const validSchoolBody = `{"name":"SDN 01 Menteng","status":"Negeri","npsn":"20100001","bentuk":"SD","address":"Jl. Besuki No.4","kelurahan":"Menteng","kecamatan":"Menteng"}`

// admin sekolah pun tidak boleh mengelola data sekolah; hanya superadmin
func TestCreateSchoolForbiddenForSchoolAdmin(t *testing.T) {
	db, mock := newMockDB(t)

	app := newSchoolApp(db, uuid.New(), constants.RoleSchoolAdmin)
	req := httptest.NewRequest("POST", "/schools", strings.NewReader(validSchoolBody))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateSchoolBySuperadmin(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "schools"`).
		WillReturnRows(sqlmock.NewRows([]string{"school_id"}).AddRow(10))
	mock.ExpectCommit()

	app := newSchoolApp(db, uuid.New(), constants.RoleSuperadmin)
	req := httptest.NewRequest("POST", "/schools", strings.NewReader(validSchoolBody))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetSchoolByIDComputesAverage(t *testing.T) {
	db, mock := newMockDB(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT (.+) FROM "schools"`).WillReturnRows(schoolRows())
	// dua review: semua 5 dan semua 1 → rata-rata 3
	mock.ExpectQuery(`SELECT (.+) FROM "school_reviews"`).WillReturnRows(sqlmock.NewRows([]string{
		"review_id", "review_school_id", "review_user_id",
		"review_reviewer_name", "review_reviewer_role", "review_comment",
		"review_kenyamanan", "review_pembelajaran", "review_fasilitas", "review_kepemimpinan",
		"review_created_at", "review_updated_at",
	}).
		AddRow(1, 10, uuid.New().String(), "Budi", "Alumni", "Mantap", 5, 5, 5, 5, now, now).
		AddRow(2, 10, uuid.New().String(), "Sari", "Guru", "Kurang", 1, 1, 1, 1, now, now))

	app := newSchoolApp(db, uuid.Nil, "")
	resp, err := app.Test(httptest.NewRequest("GET", "/schools/10", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data struct {
			AverageRating float64 `json:"average_rating"`
			TotalReviews  int     `json:"total_reviews"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 3.0, body.Data.AverageRating)
	assert.Equal(t, 2, body.Data.TotalReviews)
}

func TestGetSchoolByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT (.+) FROM "schools"`).
		WillReturnRows(sqlmock.NewRows([]string{"school_id"}))

	app := newSchoolApp(db, uuid.Nil, "")
	resp, err := app.Test(httptest.NewRequest("GET", "/schools/99", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestDeleteSchoolRequiresLogin(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT (.+) FROM "schools"`).WillReturnRows(schoolRows())

	app := newSchoolApp(db, uuid.Nil, "")
	resp, err := app.Test(httptest.NewRequest("DELETE", "/schools/10", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}
