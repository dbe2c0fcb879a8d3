// Package stock: stok telafi aritmetiği.
//
// Admin ekranı stoğu "görünen stok" olarak gösterir: gerçek stok eksi
// yöneticinin kendi sepetinde tuttuğu adet. Form gönderiminde bu değer gerçek
// stoğa geri çevrilmek zorundadır; edit ve +/-1 yolları aynı formülü paylaşır.
package stock

// ActualStock: görünen stok değerini kalıcı (gerçek) stoğa çevirir.
// actualStock = submitted + cartHeld
func ActualStock(submitted, cartHeld int) int {
	return submitted + cartHeld
}

// ClampStock: stok hiçbir zaman negatife düşmez.
func ClampStock(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
