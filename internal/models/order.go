package models

import "time"

// Order: pesanan yang masuk dari kasir/meja.
// Sumber data laporan harian; dihapus saat tutup hari.
type Order struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	OrderID    string  `gorm:"size:36;uniqueIndex;not null" json:"order_id"` // ID publik (UUID)
	Username   string  `gorm:"size:100;not null" json:"username"`            // nama pelanggan
	Meja       string  `gorm:"size:20;not null" json:"meja"`                 // nomor meja
	TotalHarga float64 `gorm:"not null" json:"totalHarga"`
	IsDone     bool    `gorm:"default:false" json:"isDone"`

	Items []OrderItem `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE" json:"items"`

	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// OrderItem: satu baris menu di dalam pesanan.
type OrderItem struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	OrderID  uint    `gorm:"index;not null" json:"-"`
	Judul    string  `gorm:"size:100" json:"judul"` // nama menu
	Tipe     string  `gorm:"size:50" json:"tipe"`   // makanan / minuman
	Jenis    string  `gorm:"size:50" json:"jenis"`  // kategori (mis. nasi, es)
	Quantity int     `gorm:"not null" json:"quantity"`
	Harga    float64 `gorm:"not null" json:"harga"`  // harga jual per porsi
	Modal    float64 `gorm:"default:0" json:"modal"` // modal per porsi, dipakai hitung profit
}
