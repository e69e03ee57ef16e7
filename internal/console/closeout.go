package console

import (
	"context"
	"errors"
	"log"

	"warung-backend/internal/report"
)

// Exporter: penulis dokumen laporan; mengembalikan path file yang dibuat.
type Exporter interface {
	Export(snap *report.Snapshot) (string, error)
}

// Outcome: hasil satu kali percobaan tutup hari. Message dan IsError saling
// eksklusif dengan sukses — operator selalu melihat tepat satu notifikasi.
type Outcome struct {
	Message    string
	IsError    bool
	Saved      bool
	Exported   bool
	Purged     bool
	ExportPath string
}

// CloseOut: urutan tutup hari — arsipkan snapshot, ekspor dokumen, hapus
// order. Berjalan ketat berurutan, tanpa retry otomatis dan tanpa rollback.
type CloseOut struct {
	client   *Client
	state    *State
	exporter Exporter
}

func NewCloseOut(client *Client, state *State, exporter Exporter) *CloseOut {
	return &CloseOut{
		client:   client,
		state:    state,
		exporter: exporter,
	}
}

// Run: satu percobaan penuh tutup hari.
//
// Gagal arsip menghentikan urutan sebelum ekspor dan hapus. Gagal ekspor
// hanya dicatat dan TIDAK menghentikan hapus. Gagal hapus juga hanya
// dicatat; snapshot yang sudah diarsipkan tidak di-rollback, jadi order
// yang tidak terhapus bisa terhitung lagi di laporan hari berikutnya.
func (co *CloseOut) Run(ctx context.Context) Outcome {
	snap := co.state.Snapshot()
	if snap == nil {
		return Outcome{Message: "Data laporan belum tersedia", IsError: true}
	}

	payload := DayReportPayload{
		TotalPenjualan:  snap.TotalPenjualan,
		TotalProfit:     snap.TotalProfit,
		JumlahPelanggan: snap.TotalCustomer,
		MenuFavorit:     snap.MenuFavorit,
		JumlahQuantity:  snap.TotalFavoritQuantity,
	}

	if err := co.client.SaveDayReport(ctx, payload); err != nil {
		var rejected *SaveRejectedError
		if errors.As(err, &rejected) {
			return Outcome{Message: rejected.Message, IsError: true}
		}
		log.Printf("Gagal menyimpan laporan harian: %v", err)
		return Outcome{Message: "Ada yang tidak benar", IsError: true}
	}

	outcome := Outcome{Saved: true}

	path, err := co.exporter.Export(snap)
	if err != nil {
		log.Printf("Gagal ekspor dokumen laporan: %v", err)
	} else {
		outcome.Exported = true
		outcome.ExportPath = path
	}

	if err := co.client.DeleteOrders(ctx); err != nil {
		log.Printf("Gagal menghapus order: %v", err)
	} else {
		log.Println("Semua order yang diproses sudah dihapus")
		outcome.Purged = true
	}

	outcome.Message = "Laporan berhasil disimpan!"
	return outcome
}
