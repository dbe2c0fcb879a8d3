// Package cart: istemci tarafında tutulan sepet durumu.
//
// Sunucuda sepet kopyası yoktur; tüm durum burada yaşar ve her mutasyondan
// sonra yerel depoya yazılır. Yazma yolu iki fazlıdır: önce Hydrate ile
// kayıtlı durum yüklenir, ancak ondan sonra kalıcılık devreye girer. Böylece
// soğuk başlangıçta boş sepet, kayıtlı sepetin üzerine asla yazılmaz.
package cart

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/PatrickLatade/product-catalog/internal/models"
)

const recordName = "cart"

// Item: ekleme anında üründen alınan fiyat/isim/görsel kopyasıyla bir sepet
// satırı. Kopya, ürün sonradan düzenlense de güncellenmez.
type Item struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"imageUrl"`
	Quantity int     `json:"quantity"`
}

// Line: checkout'a giden indirgenmiş satır; fiyat ve isim sunucuda çözülür.
type Line struct {
	ID       uint `json:"id"`
	Quantity int  `json:"quantity"`
}

// Storage: sepetin serileştirildiği yerel depo (localstore.Store bunu sağlar).
type Storage interface {
	Get(name string) (string, bool, error)
	Set(name, value string) error
}

type Cart struct {
	mu       sync.Mutex
	items    []Item
	store    Storage
	hydrated bool
	onChange func(size int) // farklı ürün sayısı değiştiğinde çağrılır
}

func New(store Storage) *Cart {
	return &Cart{store: store}
}

// Hydrate: kayıtlı sepeti yükler ve kalıcılığı devreye alır. Bozuk kayıt
// ölümcül değildir: loglanır ve boş sepetle devam edilir.
func (c *Cart) Hydrate() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	raw, ok, err := c.store.Get(recordName)
	if err != nil {
		return err
	}
	if ok {
		var items []Item
		if err := json.Unmarshal([]byte(raw), &items); err != nil {
			log.Println("Kayıtlı sepet verisi bozuk, boş sepetle devam ediliyor:", err)
		} else {
			c.items = items
		}
	}

	c.hydrated = true
	return nil
}

// SetOnChange: farklı ürün sayısı değiştiğinde çağrılacak callback'i bağlar
// (stok mutabakat döngüsü bunu tetik olarak kullanır).
func (c *Cart) SetOnChange(fn func(size int)) {
	c.mu.Lock()
	c.onChange = fn
	c.mu.Unlock()
}

// persist: sadece hydrate tamamlandıysa yazar. Hata loglanır, mutasyonu
// geri almaz.
func (c *Cart) persist() {
	if !c.hydrated || c.store == nil {
		return
	}
	raw, err := json.Marshal(c.items)
	if err != nil {
		log.Println("Sepet serileştirilemedi:", err)
		return
	}
	if err := c.store.Set(recordName, string(raw)); err != nil {
		log.Println("Sepet kaydedilemedi:", err)
	}
}

// Add: aynı id'den varsa adedini artırır, yoksa ekleme anı kopyasıyla yeni
// satır açar. qty <= 0 no-op'tur.
func (c *Cart) Add(p models.Product, qty int) {
	if qty <= 0 {
		return
	}

	c.mu.Lock()
	before := len(c.items)

	found := false
	for i := range c.items {
		if c.items[i].ID == p.ID {
			c.items[i].Quantity += qty
			found = true
			break
		}
	}
	if !found {
		c.items = append(c.items, Item{
			ID:       p.ID,
			Name:     p.Name,
			Price:    p.Price,
			ImageURL: p.ImageURL,
			Quantity: qty,
		})
	}

	c.persist()
	c.notifyLocked(before)
}

// Remove: adedine bakmadan satırı siler.
func (c *Cart) Remove(id uint) {
	c.mu.Lock()
	before := len(c.items)

	kept := c.items[:0]
	for _, it := range c.items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	c.items = kept

	c.persist()
	c.notifyLocked(before)
}

// DecreaseQuantity: adet - 1; sıfıra düşen satır otomatik silinir.
func (c *Cart) DecreaseQuantity(id uint) {
	c.mu.Lock()
	before := len(c.items)

	kept := c.items[:0]
	for _, it := range c.items {
		if it.ID == id {
			it.Quantity--
		}
		if it.Quantity > 0 {
			kept = append(kept, it)
		}
	}
	c.items = kept

	c.persist()
	c.notifyLocked(before)
}

func (c *Cart) Clear() {
	c.mu.Lock()
	before := len(c.items)
	c.items = nil
	c.persist()
	c.notifyLocked(before)
}

// notifyLocked: kilit altında çağrılır, callback'i kilit dışında koşturur.
func (c *Cart) notifyLocked(before int) {
	after := len(c.items)
	fn := c.onChange
	c.mu.Unlock()

	if fn != nil && before != after {
		fn(after)
	}
}

// Items: satırların kopyası.
func (c *Cart) Items() []Item {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Lines: checkout payload'ı ({id, quantity} çiftleri).
func (c *Cart) Lines() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()
	lines := make([]Line, 0, len(c.items))
	for _, it := range c.items {
		lines = append(lines, Line{ID: it.ID, Quantity: it.Quantity})
	}
	return lines
}

// Total: ekleme anı fiyatlarıyla sepet toplamı.
func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	var total float64
	for _, it := range c.items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}

// Count: toplam adet (rozet gösterimi için).
func (c *Cart) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	var n int
	for _, it := range c.items {
		n += it.Quantity
	}
	return n
}

// Size: farklı ürün sayısı.
func (c *Cart) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// QuantityOf: verilen ürünün sepetteki adedi (yoksa 0). Admin ekranının
// görünen stok hesabı bunu kullanır.
func (c *Cart) QuantityOf(id uint) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, it := range c.items {
		if it.ID == id {
			return it.Quantity
		}
	}
	return 0
}
