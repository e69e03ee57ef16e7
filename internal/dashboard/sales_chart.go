package dashboard

import (
	"fmt"
	"time"

	"warung-backend/internal/database"
	"warung-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type SalesChartPoint struct {
	Label     string  `json:"label"` // tanggal laporan
	Penjualan float64 `json:"penjualan"`
	Profit    float64 `json:"profit"`
	Pelanggan int     `json:"pelanggan"`
}

type SalesChartGrandTotals struct {
	Penjualan float64 `json:"penjualan"`
	Profit    float64 `json:"profit"`
	Pelanggan int     `json:"pelanggan"`
}

type SalesChartResponse struct {
	From        string                `json:"from"`
	To          string                `json:"to"`
	Points      []SalesChartPoint     `json:"points"`
	GrandTotals SalesChartGrandTotals `json:"grand_totals"`
}

// GET /api/dashboard/sales-chart?count=7
// Deret penjualan/profit/pelanggan dari arsip laporan harian, hari tertua dulu
func SalesChartHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		count := 7
		if countStr := c.Query("count"); countStr != "" {
			if _, err := fmt.Sscan(countStr, &count); err != nil || count <= 0 || count > 90 {
				return fiber.NewError(fiber.StatusBadRequest, "count tidak valid (1-90)")
			}
		}

		now := time.Now()
		end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
		start := end.AddDate(0, 0, -count)

		var reports []models.DayReport
		if err := database.DB.
			Where("created_at >= ? AND created_at < ?", start, end).
			Order("created_at ASC").
			Find(&reports).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data grafik")
		}

		points := make([]SalesChartPoint, 0, len(reports))
		grand := SalesChartGrandTotals{}

		for _, r := range reports {
			points = append(points, SalesChartPoint{
				Label:     r.CreatedAt.Format("2006-01-02"),
				Penjualan: r.TotalPenjualan,
				Profit:    r.TotalProfit,
				Pelanggan: r.JumlahPelanggan,
			})

			grand.Penjualan += r.TotalPenjualan
			grand.Profit += r.TotalProfit
			grand.Pelanggan += r.JumlahPelanggan
		}

		return c.JSON(SalesChartResponse{
			From:        start.Format("2006-01-02"),
			To:          end.AddDate(0, 0, -1).Format("2006-01-02"),
			Points:      points,
			GrandTotals: grand,
		})
	}
}
