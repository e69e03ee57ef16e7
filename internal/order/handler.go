package order

import (
	"warung-backend/internal/database"
	"warung-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CreateOrderItemRequest struct {
	Judul    string  `json:"judul"`
	Tipe     string  `json:"tipe"`
	Jenis    string  `json:"jenis"`
	Quantity int     `json:"quantity"`
	Harga    float64 `json:"harga"`
	Modal    float64 `json:"modal"`
}

type CreateOrderRequest struct {
	Username string                   `json:"username"`
	Meja     string                   `json:"meja"`
	Items    []CreateOrderItemRequest `json:"items"`
}

// POST /api/order
// Pesanan baru dari kasir; total dihitung server dari item
func CreateOrderHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateOrderRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Format pesanan tidak valid")
		}

		if body.Username == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Nama pelanggan wajib diisi")
		}
		if body.Meja == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Nomor meja wajib diisi")
		}
		if len(body.Items) == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Pesanan harus punya minimal satu item")
		}

		ord := models.Order{
			OrderID:  uuid.NewString(),
			Username: body.Username,
			Meja:     body.Meja,
		}
		for _, it := range body.Items {
			if it.Quantity <= 0 {
				return fiber.NewError(fiber.StatusBadRequest, "Quantity harus lebih dari 0")
			}
			ord.TotalHarga += it.Harga * float64(it.Quantity)
			ord.Items = append(ord.Items, models.OrderItem{
				Judul:    it.Judul,
				Tipe:     it.Tipe,
				Jenis:    it.Jenis,
				Quantity: it.Quantity,
				Harga:    it.Harga,
				Modal:    it.Modal,
			})
		}

		if err := database.DB.Create(&ord).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Pesanan gagal disimpan")
		}

		return c.Status(fiber.StatusCreated).JSON(ord)
	}
}

// GET /api/order/getorders
// Semua pesanan aktif beserta item-nya
func ListOrdersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var orders []models.Order
		if err := database.DB.Preload("Items").Order("created_at ASC").Find(&orders).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil pesanan")
		}

		return c.JSON(orders)
	}
}

// PUT /api/order/:id/done
// Tandai pesanan selesai diproses
func CompleteOrderHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var ord models.Order
		if err := database.DB.First(&ord, "order_id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Pesanan tidak ditemukan")
		}

		if err := database.DB.Model(&ord).Update("is_done", true).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Pesanan gagal diperbarui")
		}

		return c.JSON(fiber.Map{
			"message": "Pesanan ditandai selesai",
		})
	}
}
