package report

import (
	"fmt"
	"time"

	"warung-backend/internal/audit"
	"warung-backend/internal/database"
	"warung-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

// snapshotFromOrders: bentuk Snapshot live dari order yang ada di database.
// Menu favorit = baris teratas hasil GroupSales (quantity terbanyak).
func snapshotFromOrders(orders []models.Order) Snapshot {
	snap := Snapshot{
		TotalCustomer: len(orders),
		Transaksi:     make([]Transaksi, 0, len(orders)),
	}

	for _, o := range orders {
		snap.TotalPenjualan += o.TotalHarga

		trx := Transaksi{
			OrderID:    o.OrderID,
			Username:   o.Username,
			Meja:       o.Meja,
			TotalHarga: o.TotalHarga,
			IsDone:     o.IsDone,
			CreatedAt:  o.CreatedAt,
			Items:      make([]Item, 0, len(o.Items)),
		}
		for _, it := range o.Items {
			snap.TotalProfit += (it.Harga - it.Modal) * float64(it.Quantity)
			trx.Items = append(trx.Items, Item{
				Judul:    it.Judul,
				Tipe:     it.Tipe,
				Jenis:    it.Jenis,
				Quantity: it.Quantity,
			})
		}
		snap.Transaksi = append(snap.Transaksi, trx)
	}

	if grouped := GroupSales(snap.Transaksi); len(grouped) > 0 {
		snap.MenuFavorit = grouped[0].Judul
		snap.TotalFavoritQuantity = grouped[0].Quantity
	}

	return snap
}

// GET /api/report/getallreport
// Snapshot laporan live: total-total, menu favorit, dan semua transaksi
func GetAllReportHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var orders []models.Order
		if err := database.DB.Preload("Items").Order("created_at ASC").Find(&orders).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data order")
		}

		return c.JSON(snapshotFromOrders(orders))
	}
}

// GET /api/report/today
// Angka ringkas hari ini saja (untuk perbandingan dengan kemarin)
func TodayReportHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		now := time.Now()
		startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

		var orders []models.Order
		if err := database.DB.Preload("Items").Where("created_at >= ?", startOfDay).
			Find(&orders).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data order")
		}

		snap := snapshotFromOrders(orders)
		return c.JSON(fiber.Map{
			"totalPenjualan":  snap.TotalPenjualan,
			"totalProfit":     snap.TotalProfit,
			"jumlahPelanggan": snap.TotalCustomer,
		})
	}
}

// DELETE /api/report/deleteorder
// Hapus semua order yang sudah diproses (dipanggil di akhir tutup hari)
func DeleteOrdersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var count int64
		database.DB.Model(&models.Order{}).Count(&count)

		tx := database.DB.Begin()
		if err := tx.Exec("DELETE FROM order_items").Error; err != nil {
			tx.Rollback()
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus order")
		}
		if err := tx.Exec("DELETE FROM orders").Error; err != nil {
			tx.Rollback()
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus order")
		}
		if err := tx.Commit().Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus order")
		}

		_ = audit.WriteLog(audit.LogOptions{
			EntityType:  "order",
			Action:      models.AuditActionDelete,
			Description: fmt.Sprintf("Tutup hari: %d order dihapus", count),
		})

		return c.JSON(fiber.Map{
			"message": fmt.Sprintf("%d order berhasil dihapus", count),
		})
	}
}
