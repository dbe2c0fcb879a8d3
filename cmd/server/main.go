package main

import (
	"flag"
	"log"
	"strings"

	"github.com/PatrickLatade/product-catalog/internal/admin"
	"github.com/PatrickLatade/product-catalog/internal/auth"
	"github.com/PatrickLatade/product-catalog/internal/catalog"
	"github.com/PatrickLatade/product-catalog/internal/checkout"
	"github.com/PatrickLatade/product-catalog/internal/config"
	"github.com/PatrickLatade/product-catalog/internal/database"
	"github.com/PatrickLatade/product-catalog/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	seed := flag.Bool("seed", false, "Ürün tablosunu sıfırlar ve 50 üretilmiş ürünle doldurur")
	flag.Parse()

	cfg := config.Load()
	database.Init(cfg)

	if *seed {
		database.Seed()
		return
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Unexpected error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Beklenmeyen sunucu hatası",
			})
		},
	})

	// CORS origins'i virgülle ayrılmış string'den array'e çevir
	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	// Yüklenen ürün görselleri
	app.Static("/images", cfg.ProductImagePath)

	api := app.Group("/api")

	// Public auth
	api.Post("/auth/register-admin", auth.RegisterAdminHandler(cfg))
	api.Post("/auth/login", auth.LoginHandler(cfg))

	// Vitrin (public)
	api.Get("/products", catalog.ListProductsHandler())
	api.Get("/products/stock", catalog.StockProjectionHandler()) // :id'den önce kayıtlı olmalı
	api.Get("/products/:id", catalog.GetProductHandler())
	api.Post("/checkout", checkout.Handler())

	// Admin (JWT zorunlu)
	adminRoutes := api.Group("/admin")
	adminRoutes.Use(auth.JWTMiddleware(cfg))
	adminRoutes.Use(auth.RequireRole(models.RoleAdmin))

	adminRoutes.Post("/products", admin.MutationHandler(cfg))
	adminRoutes.Get("/products/export", admin.ExportProductsHandler())

	log.Println("Server çalışıyor port:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
