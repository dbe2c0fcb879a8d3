package checkout

import (
	"github.com/PatrickLatade/product-catalog/internal/models"
	"github.com/PatrickLatade/product-catalog/internal/stock"
)

// Line: istemcinin gönderdiği sepet satırı. Fiyat ve isim bilerek yok;
// güven için sunucu tarafında tekrar çözülür.
type Line struct {
	ID       uint `json:"id"`
	Quantity int  `json:"quantity"`
}

type PurchasedItem struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type Receipt struct {
	Items []PurchasedItem `json:"items"`
	Total float64         `json:"total"`
}

// ProductStore: checkout'un ihtiyaç duyduğu iki veritabanı işlemi.
type ProductStore interface {
	// FindByID: ürün yoksa (nil, nil) döner; hata sadece IO için.
	FindByID(id uint) (*models.Product, error)
	UpdateStock(id uint, newStock int) error
}

// Process: sepet satırlarını geldikleri sırayla işler.
//
// Satır başına: ürünü yükle (yoksa sessizce atla), stoğu max(stock-qty, 0)
// olarak yaz, sunucu fiyatıyla toplamı büyüt. İşlem atomik DEĞİLDİR: döngü
// ortasında hata olursa o ana kadar yazılan stoklar yazılı kalır ve eşzamanlı
// iki checkout aynı stoğu okuyup ayrı ayrı düşebilir. Bu, bilinen ve kasıtlı
// olarak korunan bir davranıştır.
func Process(store ProductStore, lines []Line) (*Receipt, error) {
	receipt := &Receipt{Items: make([]PurchasedItem, 0, len(lines))}

	for _, line := range lines {
		p, err := store.FindByID(line.ID)
		if err != nil {
			return nil, err
		}
		if p == nil {
			// Silinen ürün: toplam ve items'a katkısız, kalan satırlar işlenir
			continue
		}

		newStock := stock.ClampStock(p.Stock - line.Quantity)
		if err := store.UpdateStock(p.ID, newStock); err != nil {
			return nil, err
		}

		receipt.Items = append(receipt.Items, PurchasedItem{
			ID:       p.ID,
			Name:     p.Name,
			Price:    p.Price,
			Quantity: line.Quantity,
		})
		receipt.Total += p.Price * float64(line.Quantity)
	}

	return receipt, nil
}
