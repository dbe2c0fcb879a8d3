package stock

import "testing"

func TestActualStock(t *testing.T) {
	// Gerçek stok 10, 3 adet sepette -> görünen 7. Admin 7'yi değiştirmeden
	// gönderirse kalıcı stok 10 kalmalı, 7 olmamalı.
	if got := ActualStock(7, 3); got != 10 {
		t.Fatalf("expected 10, got %d", got)
	}
	if got := ActualStock(0, 0); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
	if got := ActualStock(5, 0); got != 5 {
		t.Fatalf("expected 5, got %d", got)
	}
}

func TestClampStock(t *testing.T) {
	if got := ClampStock(-3); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
	if got := ClampStock(0); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
	if got := ClampStock(12); got != 12 {
		t.Fatalf("expected 12, got %d", got)
	}
}
