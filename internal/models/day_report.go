package models

import "time"

// DayReport: arsip laporan satu hari yang sudah ditutup.
// Sekali tersimpan tidak pernah diubah; satu baris per hari tutup.
type DayReport struct {
	ID              uint    `gorm:"primaryKey" json:"id"`
	TotalPenjualan  float64 `gorm:"not null" json:"totalPenjualan"`
	TotalProfit     float64 `gorm:"not null" json:"totalProfit"`
	JumlahPelanggan int     `gorm:"not null" json:"jumlahPelanggan"`
	MenuFavorit     string  `gorm:"size:100;not null" json:"menuFavorit"`
	JumlahQuantity  int     `gorm:"not null" json:"jumlahQuantity"` // porsi menu favorit terjual

	CreatedAt time.Time `gorm:"index" json:"createdAt"`
}
