package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"warung-backend/internal/config"
	"warung-backend/internal/console"
	"warung-backend/internal/export"
	"warung-backend/internal/report"

	"github.com/joho/godotenv"
)

// Konsol laporan harian: memantau server warung lewat tiga loop refresh dan
// menjalankan tutup hari (arsipkan -> ekspor -> hapus order) saat diminta
// operator. Perintah lewat stdin: laporan, semua, tutup, keluar.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("File .env tidak ditemukan, memakai environment saja")
	}

	cfg := config.LoadConsole()

	client := console.NewClient(cfg.ReportAPIBaseURL)
	state := console.NewState()
	poller := console.NewPoller(client, state, cfg.PollInterval)
	closeOut := console.NewCloseOut(client, state, &export.XLSX{Dir: cfg.ExportDir})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	poller.Start(ctx)
	log.Printf("Konsol laporan terhubung ke %s (interval %s)", cfg.ReportAPIBaseURL, cfg.PollInterval)
	fmt.Println("Perintah: laporan | semua | tutup | keluar")

	go func() {
		showAll := false
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			switch strings.TrimSpace(strings.ToLower(scanner.Text())) {
			case "laporan":
				printReport(state, showAll)
			case "semua":
				showAll = !showAll
				if showAll {
					fmt.Println("Menampilkan semua baris")
				} else {
					fmt.Println("Menampilkan 5 baris pertama")
				}
			case "tutup":
				outcome := closeOut.Run(ctx)
				if outcome.IsError {
					fmt.Println("Gagal:", outcome.Message)
					continue
				}
				fmt.Println("Berhasil:", outcome.Message)
				if outcome.Exported {
					fmt.Println("Dokumen laporan:", outcome.ExportPath)
				}
			case "keluar":
				stop()
				return
			case "":
			default:
				fmt.Println("Perintah: laporan | semua | tutup | keluar")
			}
		}
	}()

	<-ctx.Done()
	poller.Wait()
	log.Println("Konsol laporan berhenti")
}

func printReport(state *console.State, showAll bool) {
	snap := state.Snapshot()
	if snap == nil {
		fmt.Println("Loading...")
		return
	}

	deltas := state.Deltas()
	fmt.Printf("Total Penjualan : Rp %.0f %s\n", snap.TotalPenjualan, formatDelta(deltas.Penjualan))
	fmt.Printf("Total Profit    : Rp %.0f %s\n", snap.TotalProfit, formatDelta(deltas.Profit))
	fmt.Printf("Jumlah Customer : %d %s\n", snap.TotalCustomer, formatDelta(deltas.Pelanggan))
	fmt.Printf("Menu Favorit    : %s (%d pcs)\n", snap.MenuFavorit, snap.TotalFavoritQuantity)

	fmt.Println("\nMenu yang Terjual:")
	for _, g := range state.GroupedSales() {
		fmt.Printf("  %-30s %-10s %-10s %d pcs\n", g.Judul, g.Tipe, g.Jenis, g.Quantity)
	}

	fmt.Println("\nSemua Transaksi Hari Ini:")
	for _, trx := range state.VisibleTransaksi(showAll) {
		status := "Proses"
		if trx.IsDone {
			status = "Done"
		}
		fmt.Printf("  %-36s %-15s meja %-4s Rp %.0f  %s\n", trx.OrderID, trx.Username, trx.Meja, trx.TotalHarga, status)
	}
	if !showAll && len(snap.Transaksi) > len(state.VisibleTransaksi(false)) {
		fmt.Printf("  ... dan %d transaksi lagi (ketik 'semua')\n", len(snap.Transaksi)-len(state.VisibleTransaksi(false)))
	}

	fmt.Println("\nSemua Laporan:")
	for _, d := range state.VisibleArchive(showAll) {
		fmt.Printf("  %s  Rp %.0f  profit Rp %.0f  %d pelanggan  %s (%d)\n",
			d.CreatedAt.Format("02-01-2006"), d.TotalPenjualan, d.TotalProfit,
			d.JumlahPelanggan, d.MenuFavorit, d.JumlahQuantity)
	}
}

// formatDelta: "↑ 250 (12.5%)" atau "-" kalau perbandingan belum tersedia.
func formatDelta(d *report.Delta) string {
	if d == nil {
		return "-"
	}
	arrow := "↓"
	if d.Up {
		arrow = "↑"
	}
	diff := d.Diff
	if diff < 0 {
		diff = -diff
	}
	return fmt.Sprintf("%s %.0f (%s)", arrow, diff, d.Percentage)
}
