package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"warung-backend/internal/report"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Laporan"

// XLSX: penulis dokumen laporan harian dalam format xlsx, satu halaman A4
// portrait dengan margin tetap. Nama file mengikuti tanggal hari ini,
// urutan tanggal-bulan-tahun.
type XLSX struct {
	Dir string
}

// Export: tulis snapshot laporan ke Dir dan kembalikan path file-nya.
func (e *XLSX) Export(snap *report.Snapshot) (string, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return "", fmt.Errorf("sheet tidak bisa diganti nama: %v", err)
	}

	// Layout cetak: A4 portrait, margin 0,5 inci di semua sisi
	paperA4 := 9
	orientation := "portrait"
	if err := f.SetPageLayout(sheetName, &excelize.PageLayoutOptions{
		Size:        &paperA4,
		Orientation: &orientation,
	}); err != nil {
		return "", fmt.Errorf("layout halaman gagal diset: %v", err)
	}
	margin := 0.5
	if err := f.SetPageMargins(sheetName, &excelize.PageLayoutMarginsOptions{
		Left:   &margin,
		Right:  &margin,
		Top:    &margin,
		Bottom: &margin,
	}); err != nil {
		return "", fmt.Errorf("margin halaman gagal diset: %v", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return "", fmt.Errorf("style gagal dibuat: %v", err)
	}

	now := time.Now()
	row := 1
	setCell := func(col string, v any) {
		_ = f.SetCellValue(sheetName, fmt.Sprintf("%s%d", col, row), v)
	}
	setBold := func(col string) {
		cell := fmt.Sprintf("%s%d", col, row)
		_ = f.SetCellStyle(sheetName, cell, cell, bold)
	}

	// Ringkasan
	setCell("A", "Laporan Harian")
	setBold("A")
	setCell("B", now.Format("02-01-2006"))
	row += 2

	setCell("A", "Total Penjualan")
	setCell("B", snap.TotalPenjualan)
	row++
	setCell("A", "Total Profit")
	setCell("B", snap.TotalProfit)
	row++
	setCell("A", "Jumlah Customer")
	setCell("B", snap.TotalCustomer)
	row++
	setCell("A", "Menu Favorit")
	setCell("B", snap.MenuFavorit)
	setCell("C", snap.TotalFavoritQuantity)
	row += 2

	// Menu yang terjual
	setCell("A", "Menu yang Terjual")
	setBold("A")
	row++
	for _, col := range []struct{ c, judul string }{
		{"A", "Nama Menu"}, {"B", "Tipe"}, {"C", "Jenis"}, {"D", "Qty"},
	} {
		setCell(col.c, col.judul)
		setBold(col.c)
	}
	row++
	for _, g := range report.GroupSales(snap.Transaksi) {
		setCell("A", g.Judul)
		setCell("B", g.Tipe)
		setCell("C", g.Jenis)
		setCell("D", g.Quantity)
		row++
	}
	row++

	// Semua transaksi
	setCell("A", "Semua Transaksi Hari Ini")
	setBold("A")
	row++
	for _, col := range []struct{ c, judul string }{
		{"A", "Order ID"}, {"B", "Nama"}, {"C", "Meja"}, {"D", "Total"}, {"E", "Status"},
	} {
		setCell(col.c, col.judul)
		setBold(col.c)
	}
	row++
	for _, trx := range snap.Transaksi {
		status := "Proses"
		if trx.IsDone {
			status = "Done"
		}
		setCell("A", trx.OrderID)
		setCell("B", trx.Username)
		setCell("C", trx.Meja)
		setCell("D", trx.TotalHarga)
		setCell("E", status)
		row++
	}

	_ = f.SetColWidth(sheetName, "A", "A", 38)
	_ = f.SetColWidth(sheetName, "B", "E", 16)

	if err := os.MkdirAll(e.Dir, 0755); err != nil {
		return "", fmt.Errorf("folder ekspor tidak bisa dibuat: %v", err)
	}

	fileName := fmt.Sprintf("Laporan-%s.xlsx", now.Format("02-01-2006"))
	path := filepath.Join(e.Dir, fileName)
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("file laporan tidak bisa disimpan: %v", err)
	}

	return path, nil
}
