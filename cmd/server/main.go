package main

import (
	"log"
	"strings"

	"warung-backend/internal/audit"
	"warung-backend/internal/config"
	"warung-backend/internal/dashboard"
	"warung-backend/internal/database"
	"warung-backend/internal/dayreport"
	"warung-backend/internal/order"
	"warung-backend/internal/report"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("File .env tidak ditemukan, memakai environment saja")
	}

	cfg := config.Load()
	database.Init(cfg)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"message": e.Message,
				})
			}
			log.Println("Error tak terduga:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Terjadi kesalahan pada server",
			})
		},
	})

	// CORS origins dari string dipisah koma ke array
	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Pesanan
	api.Post("/order", order.CreateOrderHandler())
	api.Get("/order/getorders", order.ListOrdersHandler())
	api.Put("/order/:id/done", order.CompleteOrderHandler())

	// Laporan live
	api.Get("/report/getallreport", report.GetAllReportHandler())
	api.Get("/report/today", report.TodayReportHandler())
	api.Delete("/report/deleteorder", report.DeleteOrdersHandler())

	// Arsip laporan harian
	api.Post("/dayReport/save", dayreport.SaveDayReportHandler())
	api.Get("/dayReport/getdayreport", dayreport.ListDayReportsHandler())
	api.Get("/dayReport/yesterday", dayreport.YesterdayHandler())

	// Dashboard
	api.Get("/dashboard/sales-chart", dashboard.SalesChartHandler())

	// Audit logs
	api.Get("/audit-logs", audit.ListAuditLogsHandler())

	log.Println("Server berjalan di port:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
