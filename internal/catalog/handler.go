package catalog

import (
	"github.com/PatrickLatade/product-catalog/internal/database"
	"github.com/PatrickLatade/product-catalog/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GET /api/products (public, vitrin ve admin listesi)
func ListProductsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var products []models.Product
		if err := database.DB.Find(&products).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ürünler listelenemedi")
		}
		return c.JSON(products)
	}
}

// GET /api/products/:id (public, detay sayfası)
func GetProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz ürün id")
		}

		var p models.Product
		if err := database.DB.First(&p, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Ürün bulunamadı")
		}

		return c.JSON(p)
	}
}

// GET /api/products/stock (public, polling için hafif payload)
func StockProjectionHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		projection, err := loadStockProjection()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Stok bilgisi alınamadı")
		}
		return c.JSON(projection)
	}
}
