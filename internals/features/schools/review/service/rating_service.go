// file: internals/features/schools/review/service/rating_service.go
package service

import (
	"sekolahku_backend/internals/features/schools/review/model"
)

// AverageRating menghitung rata-rata rating satu sekolah dari semua review-nya.
// Keempat sumbu (kenyamanan, pembelajaran, fasilitas, kepemimpinan) berbobot
// sama: jumlah seluruh nilai dibagi (jumlah review × 4). List kosong → 0.
// Tidak ada pembulatan di sini; pembulatan urusan layer presentasi.
func AverageRating(reviews []model.ReviewModel) float64 {
	if len(reviews) == 0 {
		return 0
	}
	total := 0
	for _, r := range reviews {
		total += r.ReviewKenyamanan + r.ReviewPembelajaran + r.ReviewFasilitas + r.ReviewKepemimpinan
	}
	return float64(total) / float64(len(reviews)*4)
}
