package dayreport

import (
	"time"

	"warung-backend/internal/audit"
	"warung-backend/internal/database"
	"warung-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type SaveDayReportRequest struct {
	TotalPenjualan  float64 `json:"totalPenjualan"`
	TotalProfit     float64 `json:"totalProfit"`
	JumlahPelanggan int     `json:"jumlahPelanggan"`
	MenuFavorit     string  `json:"menuFavorit"`
	JumlahQuantity  int     `json:"jumlahQuantity"`
}

// validateSaveRequest: pesan kesalahan untuk payload yang tidak masuk akal,
// string kosong kalau valid.
func validateSaveRequest(body SaveDayReportRequest) string {
	if body.TotalPenjualan < 0 {
		return "Total penjualan tidak boleh negatif"
	}
	if body.TotalProfit < 0 {
		return "Total profit tidak boleh negatif"
	}
	if body.JumlahPelanggan < 0 {
		return "Jumlah pelanggan tidak boleh negatif"
	}
	if body.JumlahQuantity < 0 {
		return "Jumlah quantity tidak boleh negatif"
	}
	if body.MenuFavorit == "" {
		return "Menu favorit wajib diisi"
	}
	return ""
}

// POST /api/dayReport/save
// Arsipkan laporan hari ini; sekali tersimpan tidak pernah diubah
func SaveDayReportHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body SaveDayReportRequest
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Format laporan tidak valid",
			})
		}

		if msg := validateSaveRequest(body); msg != "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": msg,
			})
		}

		// Satu laporan per hari; cek apakah hari ini sudah ditutup
		now := time.Now()
		startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		var existing models.DayReport
		if err := database.DB.Where("created_at >= ?", startOfDay).First(&existing).Error; err == nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Laporan untuk hari ini sudah dibuat",
			})
		}

		dayReport := models.DayReport{
			TotalPenjualan:  body.TotalPenjualan,
			TotalProfit:     body.TotalProfit,
			JumlahPelanggan: body.JumlahPelanggan,
			MenuFavorit:     body.MenuFavorit,
			JumlahQuantity:  body.JumlahQuantity,
		}

		if err := database.DB.Create(&dayReport).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Laporan gagal disimpan",
			})
		}

		_ = audit.WriteLog(audit.LogOptions{
			EntityType:  "day_report",
			EntityID:    dayReport.ID,
			Action:      models.AuditActionCreate,
			Description: "Laporan harian diarsipkan",
			After:       dayReport,
		})

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message":   "Laporan berhasil disimpan",
			"dayReport": dayReport,
		})
	}
}

// GET /api/dayReport/getdayreport
// Semua laporan harian yang pernah diarsipkan, terbaru dulu
func ListDayReportsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var reports []models.DayReport
		if err := database.DB.Order("created_at DESC").Find(&reports).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil laporan harian")
		}

		return c.JSON(reports)
	}
}

type YesterdayResponse struct {
	TotalPenjualan  *float64 `json:"totalPenjualan"`
	TotalProfit     *float64 `json:"totalProfit"`
	JumlahPelanggan *float64 `json:"jumlahPelanggan"`
}

// GET /api/dayReport/yesterday
// Angka ringkas laporan kemarin; semua field null kalau kemarin tidak ditutup,
// supaya sisi konsol menampilkan "-" dan bukan nol
func YesterdayHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		now := time.Now()
		startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		startOfYesterday := startOfToday.AddDate(0, 0, -1)

		var rpt models.DayReport
		err := database.DB.
			Where("created_at >= ? AND created_at < ?", startOfYesterday, startOfToday).
			Order("created_at DESC").
			First(&rpt).Error
		if err != nil {
			return c.JSON(YesterdayResponse{})
		}

		pelanggan := float64(rpt.JumlahPelanggan)
		return c.JSON(YesterdayResponse{
			TotalPenjualan:  &rpt.TotalPenjualan,
			TotalProfit:     &rpt.TotalProfit,
			JumlahPelanggan: &pelanggan,
		})
	}
}
