package storefront

import (
	"log"
	"sync"
	"time"

	"github.com/PatrickLatade/product-catalog/internal/cart"
	"github.com/PatrickLatade/product-catalog/internal/models"
)

const reconcileInterval = 10 * time.Second

// Reconciler: sepeti sunucunun bildirdiği stokla hizalar.
//
// Sabit aralıkla (10 sn), başlatılır başlatılmaz bir kez ve sepetin farklı
// ürün sayısı her değiştiğinde çalışır. Bu push değil kooperatif polling'dir:
// iki çalıştırma arasında gösterilen stok en fazla aralık kadar bayat olabilir.
// Sunucu tarafında stok rezervasyonu yoktur; döngü eksikliği maskeler, çözmez.
type Reconciler struct {
	cart     *cart.Cart
	fetch    func() ([]StockEntry, error)
	interval time.Duration

	mu      sync.Mutex
	known   map[uint]int
	checked bool

	stop chan struct{}
	kick chan struct{}
	done chan struct{}
}

func NewReconciler(c *cart.Cart, client *Client) *Reconciler {
	return &Reconciler{
		cart:     c,
		fetch:    client.StockProjection,
		interval: reconcileInterval,
		known:    make(map[uint]int),
		stop:     make(chan struct{}),
		kick:     make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
}

// Start: ilk geçişi hemen yapar, sonra aralıklı döngüyü başlatır. Sepet
// değişimlerini tetik olarak bağlar.
func (r *Reconciler) Start() {
	r.cart.SetOnChange(func(int) { r.Kick() })

	go func() {
		defer close(r.done)

		r.runOnce()

		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()

		for {
			select {
			case <-r.stop:
				return
			case <-r.kick:
				r.runOnce()
			case <-ticker.C:
				r.runOnce()
			}
		}
	}()
}

// Kick: bekleyen bir tetik yoksa bir geçiş sıraya koyar.
func (r *Reconciler) Kick() {
	select {
	case r.kick <- struct{}{}:
	default:
	}
}

// Stop: sahibi görünüm kapanırken döngüyü durdurur.
func (r *Reconciler) Stop() {
	r.cart.SetOnChange(nil)
	close(r.stop)
	<-r.done
}

// runOnce: tek mutabakat geçişi. Fetch hatası fail-open'dır: loglanır,
// sepet olduğu gibi bırakılır, sonraki tick yeniden dener.
func (r *Reconciler) runOnce() {
	entries, err := r.fetch()
	if err != nil {
		log.Println("Stok bilgisi alınamadı, sepet değiştirilmedi:", err)
		return
	}

	stockByID := make(map[uint]int, len(entries))
	for _, e := range entries {
		stockByID[e.ID] = e.Stock
	}

	items := r.cart.Items()
	survivors := items[:0]
	dropped := false
	for _, it := range items {
		if s, ok := stockByID[it.ID]; ok && s > 0 {
			survivors = append(survivors, it)
		} else {
			dropped = true
		}
	}

	if dropped {
		// Temizle + yeniden ekle: kopyalar mutabakat anındaki satırdan
		// kurulan ürün benzeri nesneden tazelenir
		r.cart.Clear()
		for _, it := range survivors {
			r.cart.Add(models.Product{
				ID:       it.ID,
				Name:     it.Name,
				Price:    it.Price,
				ImageURL: it.ImageURL,
			}, it.Quantity)
		}
	}

	r.mu.Lock()
	r.known = stockByID
	r.checked = true
	r.mu.Unlock()
}

// StockOf: son bilinen stok. known=false ise henüz başarılı bir fetch
// görülmedi ya da id projeksiyonda yok.
func (r *Reconciler) StockOf(id uint) (stockCount int, known bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.known[id]
	return s, ok
}

// Checked: en az bir başarılı fetch oldu mu? ("kontrol ediliyor..." durumu)
func (r *Reconciler) Checked() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.checked
}
