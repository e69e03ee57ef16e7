package database

import (
	"log"

	"warung-backend/internal/config"
	"warung-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var err error

	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Tidak bisa terhubung ke database: %v", err)
	}

	err = DB.AutoMigrate(
		&models.Order{},
		&models.OrderItem{},
		&models.DayReport{},
		&models.AuditLog{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate gagal: %v", err)
	}

	log.Println("Koneksi database berhasil. Migrasi selesai.")
}
