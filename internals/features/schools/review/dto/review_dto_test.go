package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	helper "sekolahku_backend/internals/helpers"
)

func validCreateRequest() ReviewCreateRequest {
	return ReviewCreateRequest{
		SchoolID:     1,
		ReviewerName: "Budi Santoso",
		ReviewerRole: "Orang Tua Murid",
		Biaya:        "Gratis",
		Comment:      "Sekolahnya nyaman dan gurunya ramah.",
		Kenyamanan:   5,
		Pembelajaran: 4,
		Fasilitas:    4,
		Kepemimpinan: 5,
	}
}

func TestReviewCreateRequestValid(t *testing.T) {
	assert.Nil(t, helper.ValidateStruct(validCreateRequest()))
}

func TestReviewCreateRequestRatingOutOfRange(t *testing.T) {
	req := validCreateRequest()
	req.Kenyamanan = 6

	errs := helper.ValidateStruct(req)
	require.NotNil(t, errs)
	assert.Contains(t, errs, "kenyamanan")
}

func TestReviewCreateRequestZeroRatingRejected(t *testing.T) {
	req := validCreateRequest()
	req.Fasilitas = 0

	errs := helper.ValidateStruct(req)
	require.NotNil(t, errs)
	assert.Contains(t, errs, "fasilitas")
}

func TestReviewCreateRequestReportsAllViolations(t *testing.T) {
	req := validCreateRequest()
	req.Kenyamanan = 0
	req.Pembelajaran = 9
	req.Comment = ""
	req.ReviewerRole = "Tukang Bakso"

	errs := helper.ValidateStruct(req)
	require.NotNil(t, errs)
	assert.Contains(t, errs, "kenyamanan")
	assert.Contains(t, errs, "pembelajaran")
	assert.Contains(t, errs, "comment")
	assert.Contains(t, errs, "reviewer_role")
}

func TestReviewCreateRequestAcceptsAllReviewerRoles(t *testing.T) {
	for _, role := range []string{"Alumni", "Orang Tua Murid", "Guru", "Aktivis Pendidikan"} {
		req := validCreateRequest()
		req.ReviewerRole = role
		assert.Nil(t, helper.ValidateStruct(req), "role %q harus valid", role)
	}
}

func TestReviewUpdateRequestPartial(t *testing.T) {
	komentar := "Update: fasilitas makin bagus."
	rating := 3
	req := ReviewUpdateRequest{Comment: &komentar, Fasilitas: &rating}

	assert.Nil(t, helper.ValidateStruct(req))
}

func TestReviewUpdateRequestRatingOutOfRange(t *testing.T) {
	rating := 0
	req := ReviewUpdateRequest{Kepemimpinan: &rating}

	errs := helper.ValidateStruct(req)
	require.NotNil(t, errs)
	assert.Contains(t, errs, "kepemimpinan")
}
