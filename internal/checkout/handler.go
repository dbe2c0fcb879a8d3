package checkout

import (
	"encoding/json"
	"errors"
	"log"

	"github.com/PatrickLatade/product-catalog/internal/catalog"
	"github.com/PatrickLatade/product-catalog/internal/database"
	"github.com/PatrickLatade/product-catalog/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type gormProductStore struct{}

func (gormProductStore) FindByID(id uint) (*models.Product, error) {
	var p models.Product
	if err := database.DB.First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (gormProductStore) UpdateStock(id uint, newStock int) error {
	return database.DB.Model(&models.Product{}).
		Where("id = ?", id).
		Update("stock", newStock).Error
}

// POST /api/checkout (public)
// Form alanları: intent=checkout, cart=[{id, quantity}] JSON dizisi
func Handler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.FormValue("intent") != "checkout" {
			return c.JSON(fiber.Map{"error": "Geçersiz işlem"})
		}

		cartJSON := c.FormValue("cart")
		if cartJSON == "" {
			return c.JSON(fiber.Map{"error": "Sepet verisi gönderilmedi"})
		}

		var lines []Line
		if err := json.Unmarshal([]byte(cartJSON), &lines); err != nil {
			return c.JSON(fiber.Map{"error": "Sepet verisi çözümlenemedi"})
		}

		receipt, err := Process(gormProductStore{}, lines)
		if err != nil {
			// Döngü ortasında hata: o ana kadar yazılan stoklar geri alınmaz
			log.Println("Checkout hatası:", err)
			catalog.PurgeStockCache()
			return c.JSON(fiber.Map{"error": "Checkout başarısız"})
		}

		catalog.PurgeStockCache()

		return c.JSON(fiber.Map{
			"success": true,
			"items":   receipt.Items,
			"total":   receipt.Total,
		})
	}
}
