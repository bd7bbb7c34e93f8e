package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sekolahku_backend/internals/features/schools/review/model"
)

func review(kenyamanan, pembelajaran, fasilitas, kepemimpinan int) model.ReviewModel {
	return model.ReviewModel{
		ReviewKenyamanan:   kenyamanan,
		ReviewPembelajaran: pembelajaran,
		ReviewFasilitas:    fasilitas,
		ReviewKepemimpinan: kepemimpinan,
	}
}

func TestAverageRatingEmpty(t *testing.T) {
	assert.Equal(t, float64(0), AverageRating(nil))
	assert.Equal(t, float64(0), AverageRating([]model.ReviewModel{}))
}

func TestAverageRatingTwoReviews(t *testing.T) {
	// semua 5 + semua 1 → (20+4)/8 = 3
	reviews := []model.ReviewModel{
		review(5, 5, 5, 5),
		review(1, 1, 1, 1),
	}
	assert.Equal(t, float64(3), AverageRating(reviews))
}

func TestAverageRatingSingleReviewMixedAxes(t *testing.T) {
	// (4+3+5+2)/4 = 3.5
	reviews := []model.ReviewModel{review(4, 3, 5, 2)}
	assert.Equal(t, 3.5, AverageRating(reviews))
}

func TestAverageRatingAlwaysInRange(t *testing.T) {
	cases := [][]model.ReviewModel{
		{review(1, 1, 1, 1)},
		{review(5, 5, 5, 5)},
		{review(1, 5, 1, 5), review(2, 3, 4, 5), review(5, 5, 5, 5)},
	}
	for _, reviews := range cases {
		got := AverageRating(reviews)
		assert.GreaterOrEqual(t, got, float64(0))
		assert.LessOrEqual(t, got, float64(5))
	}
}
