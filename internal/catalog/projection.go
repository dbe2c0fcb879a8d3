package catalog

import (
	"time"

	"github.com/PatrickLatade/product-catalog/internal/database"
	"github.com/PatrickLatade/product-catalog/internal/models"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// StockProjection: sadece id + stock. Sık polling için payload bilerek küçük.
type StockProjection struct {
	ID    uint `json:"id"`
	Stock int  `json:"stock"`
}

const projectionCacheKey = "all"

// Projection her 10 saniyede bir istemci başına çekildiği için kısa ömürlü
// bir cache yeterli; her mutasyonda purge edilir.
var projectionCache = expirable.NewLRU[string, []StockProjection](1, nil, 2*time.Second)

func loadStockProjection() ([]StockProjection, error) {
	if cached, ok := projectionCache.Get(projectionCacheKey); ok {
		return cached, nil
	}

	var projection []StockProjection
	if err := database.DB.Model(&models.Product{}).
		Select("id", "stock").
		Find(&projection).Error; err != nil {
		return nil, err
	}

	projectionCache.Add(projectionCacheKey, projection)
	return projection, nil
}

// PurgeStockCache: stok değiştiren her yazma yolundan sonra çağrılır
// (admin mutasyonları ve checkout).
func PurgeStockCache() {
	projectionCache.Remove(projectionCacheKey)
}
