package console

import (
	"sync"

	"warung-backend/internal/report"
)

// previewRows: jumlah baris yang ditampilkan sebelum operator memilih
// "tampilkan semua". Murni urusan tampilan, bukan bagian agregasi.
const previewRows = 5

// Deltas: hasil perbandingan tiga metrik hari-ini vs kemarin.
// Nil berarti belum tersedia (tampilkan "-").
type Deltas struct {
	Penjualan *report.Delta
	Profit    *report.Delta
	Pelanggan *report.Delta
}

// State: keadaan lokal konsol laporan. Tiap loop poller hanya menulis
// bagiannya sendiri; semua tulisan dan bacaan diserialisasi lewat mutex
// supaya tampilan tidak pernah melihat keadaan setengah jadi.
type State struct {
	mu        sync.RWMutex
	snapshot  *report.Snapshot
	today     *report.DailyTotals
	yesterday *report.DailyTotals
	archive   []report.DayReportEntry
}

func NewState() *State {
	return &State{}
}

func (s *State) setSnapshot(snap *report.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = snap
}

// setComparison: hari ini dan kemarin diganti bersama-sama, supaya tampilan
// tidak pernah memperlihatkan pasangan yang tidak sepadan.
func (s *State) setComparison(today, yesterday *report.DailyTotals) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.today = today
	s.yesterday = yesterday
}

func (s *State) setArchive(entries []report.DayReportEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.archive = entries
}

// Snapshot: snapshot live terakhir yang berhasil diambil, nil kalau belum ada.
func (s *State) Snapshot() *report.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// ComparisonPair: pasangan hari-ini/kemarin terakhir yang utuh.
func (s *State) ComparisonPair() (today, yesterday *report.DailyTotals) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.today, s.yesterday
}

// Archive: seluruh arsip laporan harian terakhir yang berhasil diambil.
func (s *State) Archive() []report.DayReportEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.archive
}

// Deltas: perbandingan tiga metrik; nil per metrik kalau salah satu sisi
// belum tersedia.
func (s *State) Deltas() Deltas {
	today, yesterday := s.ComparisonPair()
	if today == nil || yesterday == nil {
		return Deltas{}
	}
	return Deltas{
		Penjualan: report.Compare(today.TotalPenjualan, yesterday.TotalPenjualan),
		Profit:    report.Compare(today.TotalProfit, yesterday.TotalProfit),
		Pelanggan: report.Compare(today.JumlahPelanggan, yesterday.JumlahPelanggan),
	}
}

// GroupedSales: rekap menu terjual dari snapshot live saat ini.
func (s *State) GroupedSales() []report.GroupedSale {
	snap := s.Snapshot()
	if snap == nil {
		return nil
	}
	return report.GroupSales(snap.Transaksi)
}

// VisibleTransaksi: transaksi yang ditampilkan; 5 pertama kecuali showAll.
func (s *State) VisibleTransaksi(showAll bool) []report.Transaksi {
	snap := s.Snapshot()
	if snap == nil {
		return nil
	}
	if showAll || len(snap.Transaksi) <= previewRows {
		return snap.Transaksi
	}
	return snap.Transaksi[:previewRows]
}

// VisibleArchive: arsip yang ditampilkan; 5 pertama kecuali showAll.
func (s *State) VisibleArchive(showAll bool) []report.DayReportEntry {
	archive := s.Archive()
	if showAll || len(archive) <= previewRows {
		return archive
	}
	return archive[:previewRows]
}
