package database

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/golang-migrate/migrate/v4"
	migratePostgres "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"

	"sekolahku_backend/internals/configs"
)

// RunMigrations menjalankan file SQL di folder migrations/ sampai versi terbaru.
// Pakai koneksi terpisah dari pool GORM supaya lock migrasi tidak menahan pool.
func RunMigrations() {
	dir := configs.GetEnv("MIGRATIONS_DIR", "migrations")
	if _, err := os.Stat(dir); err != nil {
		log.Printf("⚠️ Folder migrasi '%s' tidak ditemukan, skip migrasi", dir)
		return
	}

	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		configs.GetEnv("DB_SSLMODE", "require"),
	)

	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("❌ Gagal buka koneksi migrasi: %v", err)
	}
	defer sqlDB.Close()

	driver, err := migratePostgres.WithInstance(sqlDB, &migratePostgres.Config{})
	if err != nil {
		log.Fatalf("❌ Gagal init driver migrasi: %v", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+dir, "postgres", driver)
	if err != nil {
		log.Fatalf("❌ Gagal init migrasi: %v", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Fatalf("❌ Migrasi gagal: %v", err)
	}
	log.Println("✅ Migrasi database selesai.")
}
