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

// actorID uuid.Nil = request tanpa login
func newReviewApp(db *gorm.DB, actorID uuid.UUID, role string) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if actorID != uuid.Nil {
			c.Locals(helper.LocUserID, actorID.String())
			c.Locals(helper.LocUserRole, role)
		}
		return c.Next()
	})

	ctrl := NewReviewController(db)
	app.Get("/schools/:schoolId/reviews", ctrl.GetReviewsBySchool)
	app.Post("/reviews", ctrl.CreateReview)
	app.Put("/reviews/:id", ctrl.UpdateReview)
	app.Delete("/reviews/:id", ctrl.DeleteReview)
	return app
}

func reviewRows(ownerID uuid.UUID) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"review_id", "review_school_id", "review_user_id",
		"review_reviewer_name", "review_reviewer_role", "review_biaya", "review_comment",
		"review_kenyamanan", "review_pembelajaran", "review_fasilitas", "review_kepemimpinan",
		"review_created_at", "review_updated_at",
	}).AddRow(
		1, 10, ownerID.String(),
		"Budi", "Alumni", "", "Sekolah nyaman",
		4, 4, 3, 5,
		now, now,
	)
}

func TestUpdateReviewNotOwnerDenied(t *testing.T) {
	db, mock := newMockDB(t)
	owner := uuid.New()
	actor := uuid.New()

	// hanya SELECT; tidak boleh ada UPDATE yang jalan
	mock.ExpectQuery(`SELECT (.+) FROM "school_reviews"`).WillReturnRows(reviewRows(owner))

	app := newReviewApp(db, actor, constants.RoleUser)
	req := httptest.NewRequest("PUT", "/reviews/1", strings.NewReader(`{"kenyamanan":4}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateReviewByOwner(t *testing.T) {
	db, mock := newMockDB(t)
	owner := uuid.New()

	mock.ExpectQuery(`SELECT (.+) FROM "school_reviews"`).WillReturnRows(reviewRows(owner))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "school_reviews" SET`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	app := newReviewApp(db, owner, constants.RoleUser)
	req := httptest.NewRequest("PUT", "/reviews/1", strings.NewReader(`{"kenyamanan":5,"comment":"Makin bagus"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateReviewNotFound(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT (.+) FROM "school_reviews"`).
		WillReturnRows(sqlmock.NewRows([]string{"review_id"}))

	app := newReviewApp(db, uuid.New(), constants.RoleUser)
	req := httptest.NewRequest("PUT", "/reviews/99", strings.NewReader(`{"kenyamanan":4}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestUpdateReviewRejectsSchoolID(t *testing.T) {
	db, mock := newMockDB(t)
	owner := uuid.New()

	mock.ExpectQuery(`SELECT (.+) FROM "school_reviews"`).WillReturnRows(reviewRows(owner))

	app := newReviewApp(db, owner, constants.RoleUser)
	req := httptest.NewRequest("PUT", "/reviews/1", strings.NewReader(`{"school_id":99}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	var body struct {
		Errors map[string][]string `json:"errors"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Contains(t, body.Errors, "school_id")
}

func TestDeleteReviewBySuperadmin(t *testing.T) {
	db, mock := newMockDB(t)
	owner := uuid.New()
	admin := uuid.New()

	mock.ExpectQuery(`SELECT (.+) FROM "school_reviews"`).WillReturnRows(reviewRows(owner))
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "school_reviews"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	app := newReviewApp(db, admin, constants.RoleSuperadmin)
	req := httptest.NewRequest("DELETE", "/reviews/1", nil)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateReviewUnauthenticated(t *testing.T) {
	db, mock := newMockDB(t)

	body := `{"school_id":10,"reviewer_name":"Budi","reviewer_role":"Alumni","comment":"Bagus","kenyamanan":4,"pembelajaran":4,"fasilitas":3,"kepemimpinan":5}`
	app := newReviewApp(db, uuid.Nil, "")
	req := httptest.NewRequest("POST", "/reviews", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	// tidak ada query yang boleh menyentuh DB
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateReviewSchoolMissing(t *testing.T) {
	db, mock := newMockDB(t)
	actor := uuid.New()

	mock.ExpectQuery(`SELECT (.+) FROM "schools"`).
		WillReturnRows(sqlmock.NewRows([]string{"school_id"}))

	body := `{"school_id":99,"reviewer_name":"Budi","reviewer_role":"Guru","comment":"Bagus","kenyamanan":4,"pembelajaran":4,"fasilitas":3,"kepemimpinan":5}`
	app := newReviewApp(db, actor, constants.RoleUser)
	req := httptest.NewRequest("POST", "/reviews", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
