package database

import (
	"fmt"
	"log"
	"math/rand"
	"strings"

	"github.com/PatrickLatade/product-catalog/internal/models"
)

// Kategori bazlı sabit görsel seed'leri (picsum stabil görsel üretir)
var imageSeeds = map[string][]string{
	"electronics": {"electronics", "tech", "gadget", "devices"},
	"clothing":    {"clothes", "fashion", "tshirt", "outfit"},
	"home":        {"furniture", "interior", "home-decor", "appliances"},
	"sports":      {"sports", "fitness", "running", "training"},
	"books":       {"books", "library", "reading"},
	"beauty":      {"beauty", "cosmetics", "skincare"},
	"gaming":      {"gaming", "console", "pc-gaming", "esports"},
}

var categories = []string{"electronics", "clothing", "home", "sports", "books", "beauty"}

type productTemplate struct {
	Name string
	Base []string
}

var productTemplates = []productTemplate{
	{Name: "Wireless", Base: []string{"Mouse", "Keyboard", "Headphones", "Charger", "Speaker"}},
	{Name: "Premium", Base: []string{"Watch", "Backpack", "Sunglasses", "Pen", "Notebook"}},
	{Name: "Ergonomic", Base: []string{"Chair", "Desk", "Mouse Pad", "Monitor Stand"}},
	{Name: "Smart", Base: []string{"TV", "Light Bulb", "Thermostat", "Plug", "Scale"}},
	{Name: "Gaming", Base: []string{"Controller", "Headset", "Mouse", "Keyboard", "Chair"}},
}

func generateProducts(count int) []models.Product {
	generated := make([]models.Product, 0, count)

	for i := 0; i < count; i++ {
		template := productTemplates[rand.Intn(len(productTemplates))]
		baseProduct := template.Base[rand.Intn(len(template.Base))]
		category := categories[rand.Intn(len(categories))]

		name := template.Name + " " + baseProduct
		price := float64(int((rand.Float64()*200+10)*100)) / 100
		stock := rand.Intn(50)

		// Gaming şablonu her zaman gaming görsel seed'i kullanır
		categoryKey := category
		if strings.Contains(strings.ToLower(template.Name), "gaming") {
			categoryKey = "gaming"
		}
		seeds, ok := imageSeeds[categoryKey]
		if !ok {
			seeds = imageSeeds["electronics"]
		}
		seed := seeds[i%len(seeds)]

		generated = append(generated, models.Product{
			Name:        name,
			Description: fmt.Sprintf("High-quality %s for everyday use. Features premium materials and excellent performance.", strings.ToLower(name)),
			Price:       price,
			ImageURL:    fmt.Sprintf("https://picsum.photos/seed/%s-%s-%d/400/300", categoryKey, seed, i),
			Stock:       stock,
		})
	}

	return generated
}

// Seed: mevcut ürünleri siler ve 50 üretilmiş ürün ekler (sadece geliştirme ortamı için)
func Seed() {
	if err := DB.Where("1 = 1").Delete(&models.Product{}).Error; err != nil {
		log.Fatalf("Mevcut ürünler silinemedi: %v", err)
	}

	products := generateProducts(50)
	if err := DB.Create(&products).Error; err != nil {
		log.Fatalf("Seed ürünleri eklenemedi: %v", err)
	}

	log.Printf("%d ürün başarıyla seed edildi", len(products))
}
