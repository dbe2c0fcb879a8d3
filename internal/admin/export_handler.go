package admin

import (
	"fmt"

	"github.com/PatrickLatade/product-catalog/internal/database"
	"github.com/PatrickLatade/product-catalog/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

// GET /api/admin/products/export
// Ürün listesini xlsx olarak indirir.
func ExportProductsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var products []models.Product
		if err := database.DB.Order("id asc").Find(&products).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ürünler listelenemedi")
		}

		f := excelize.NewFile()
		defer f.Close()

		sheet := f.GetSheetName(0)

		headers := []string{"ID", "ÜRÜN ADI", "AÇIKLAMA", "FİYAT", "STOK", "GÖRSEL"}
		for i, h := range headers {
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			f.SetCellValue(sheet, cell, h)
		}

		for row, p := range products {
			values := []interface{}{p.ID, p.Name, p.Description, p.Price, p.Stock, p.ImageURL}
			for col, v := range values {
				cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
				f.SetCellValue(sheet, cell, v)
			}
		}

		buf, err := f.WriteToBuffer()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Excel dosyası oluşturulamadı")
		}

		c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", "products.xlsx"))
		return c.Send(buf.Bytes())
	}
}
