package admin

import (
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/PatrickLatade/product-catalog/internal/catalog"
	"github.com/PatrickLatade/product-catalog/internal/config"
	"github.com/PatrickLatade/product-catalog/internal/database"
	"github.com/PatrickLatade/product-catalog/internal/models"
	"github.com/PatrickLatade/product-catalog/internal/mutation"
	"github.com/PatrickLatade/product-catalog/internal/stock"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// saveProductImage: yüklenen görseli uuid isimle kaydeder ve DB'ye yazılacak
// relative path'i döndürür. Dosya yazımı veritabanı yazımından ÖNCE yapılır.
func saveProductImage(c *fiber.Ctx, file *multipart.FileHeader, imageDir string) (string, error) {
	if err := os.MkdirAll(imageDir, 0o755); err != nil {
		return "", err
	}

	filename := uuid.New().String() + filepath.Ext(file.Filename)
	if err := c.SaveFile(file, filepath.Join(imageDir, filename)); err != nil {
		return "", err
	}

	return "/images/" + filename, nil
}

// POST /api/admin/products
// Multipart form, _action ayrıştırıcısı: create / edit / delete / adjust_stock.
// Her yol HTTP 200 + mutation.Result döndürür; handler sınırından hata taşmaz.
func MutationHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		action := c.FormValue("_action")

		name := strings.TrimSpace(c.FormValue("name"))
		price, _ := strconv.ParseFloat(c.FormValue("price"), 64)
		submittedStock, _ := strconv.Atoi(c.FormValue("stock"))
		description := c.FormValue("description")
		id, _ := strconv.Atoi(c.FormValue("id"))

		// Admin ekranı görünen stok gönderir; kendi sepetindeki adet form
		// alanıyla gelir ve kalıcı stok hesabına geri eklenir
		cartQuantity, _ := strconv.Atoi(c.FormValue("cartQuantity"))

		// Validasyon delete ve adjust_stock için atlanır
		if action == "create" || action == "edit" {
			if name == "" {
				return c.JSON(mutation.ValidationError("Ürün adı zorunlu"))
			}
			if price <= 0 {
				return c.JSON(mutation.ValidationError("Fiyat pozitif bir sayı olmalı"))
			}
		}

		// Görsel yükleme: DB yazımından önce yan etki olarak yapılır
		imageURL := ""
		if file, err := c.FormFile("image"); err == nil && file != nil && file.Size > 0 {
			imageURL, err = saveProductImage(c, file, cfg.ProductImagePath)
			if err != nil {
				log.Println("Görsel kaydedilemedi:", err)
				return c.JSON(mutation.IOError("Görsel kaydedilemedi"))
			}
		}

		switch action {
		case "create":
			p := models.Product{
				Name:        name,
				Description: description,
				Price:       price,
				ImageURL:    imageURL,
				Stock:       stock.ClampStock(submittedStock),
			}
			if err := database.DB.Create(&p).Error; err != nil {
				log.Println("Ürün oluşturulamadı:", err)
				return c.JSON(mutation.IOError("Ürün oluşturulamadı"))
			}
			catalog.PurgeStockCache()
			return c.JSON(mutation.Success("Ürün başarıyla eklendi"))

		case "edit":
			if id <= 0 {
				return c.JSON(mutation.ValidationError("Düzenleme için ürün id zorunlu"))
			}

			var p models.Product
			if err := database.DB.First(&p, "id = ?", id).Error; err != nil {
				return c.JSON(mutation.NotFound("Ürün bulunamadı"))
			}

			p.Name = name
			p.Price = price
			p.Description = description
			p.Stock = stock.ActualStock(stock.ClampStock(submittedStock), cartQuantity)
			if imageURL != "" {
				// Görsel sadece yeni dosya yüklendiyse değişir
				p.ImageURL = imageURL
			}

			if err := database.DB.Save(&p).Error; err != nil {
				log.Println("Ürün güncellenemedi:", err)
				return c.JSON(mutation.IOError("Ürün güncellenemedi"))
			}
			catalog.PurgeStockCache()
			return c.JSON(mutation.Success("Ürün başarıyla güncellendi"))

		case "delete":
			if id <= 0 {
				return c.JSON(mutation.ValidationError("Silme için ürün id zorunlu"))
			}

			if err := database.DB.Delete(&models.Product{}, "id = ?", id).Error; err != nil {
				log.Println("Ürün silinemedi:", err)
				return c.JSON(mutation.IOError("Ürün silinemedi"))
			}
			catalog.PurgeStockCache()
			return c.JSON(mutation.Success("Ürün başarıyla silindi"))

		case "adjust_stock":
			if id <= 0 {
				return c.JSON(mutation.ValidationError("Stok ayarı için ürün id zorunlu"))
			}

			var p models.Product
			if err := database.DB.First(&p, "id = ?", id).Error; err != nil {
				return c.JSON(mutation.NotFound("Ürün bulunamadı"))
			}

			// Edit ile aynı telafi aritmetiği, tek birimlik değişime uygulanır
			p.Stock = stock.ActualStock(stock.ClampStock(submittedStock), cartQuantity)

			if err := database.DB.Save(&p).Error; err != nil {
				log.Println("Stok güncellenemedi:", err)
				return c.JSON(mutation.IOError("Stok güncellenemedi"))
			}
			catalog.PurgeStockCache()
			return c.JSON(mutation.Success("Stok güncellendi"))

		default:
			// Tanınmayan action istemci hatasıdır; süreci asla düşürmez
			log.Println("Tanınmayan admin action:", action)
			return c.JSON(mutation.ValidationError("Bilinmeyen işlem"))
		}
	}
}
