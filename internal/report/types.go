package report

import "time"

// Snapshot: laporan live satu periode, dihitung server dari order yang masuk.
// Dipakai dua sisi: server membentuknya, konsol membacanya apa adanya.
type Snapshot struct {
	TotalPenjualan       float64     `json:"totalPenjualan"`
	TotalProfit          float64     `json:"totalProfit"`
	TotalCustomer        int         `json:"totalCustomer"`
	MenuFavorit          string      `json:"menuFavorit"`
	TotalFavoritQuantity int         `json:"totalFavoritQuantity"`
	Transaksi            []Transaksi `json:"transaksi"`
}

type Transaksi struct {
	OrderID    string    `json:"order_id"`
	Username   string    `json:"username"`
	Meja       string    `json:"meja"`
	TotalHarga float64   `json:"totalHarga"`
	IsDone     bool      `json:"isDone"`
	CreatedAt  time.Time `json:"createdAt"`
	Items      []Item    `json:"items"`
}

type Item struct {
	Judul    string `json:"judul"`
	Tipe     string `json:"tipe"`
	Jenis    string `json:"jenis"`
	Quantity int    `json:"quantity"`
}

// DailyTotals: angka ringkas satu hari untuk perbandingan hari-ini vs kemarin.
// Pointer supaya "belum ada laporan" (null dari server) bisa dibedakan dari nol.
type DailyTotals struct {
	TotalPenjualan  *float64 `json:"totalPenjualan"`
	TotalProfit     *float64 `json:"totalProfit"`
	JumlahPelanggan *float64 `json:"jumlahPelanggan"`
}

// DayReportEntry: satu baris arsip laporan harian seperti dikirim server.
type DayReportEntry struct {
	ID              uint      `json:"id"`
	TotalPenjualan  float64   `json:"totalPenjualan"`
	TotalProfit     float64   `json:"totalProfit"`
	JumlahPelanggan int       `json:"jumlahPelanggan"`
	MenuFavorit     string    `json:"menuFavorit"`
	JumlahQuantity  int       `json:"jumlahQuantity"`
	CreatedAt       time.Time `json:"createdAt"`
}
