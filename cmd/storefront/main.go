package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/PatrickLatade/product-catalog/internal/cart"
	"github.com/PatrickLatade/product-catalog/internal/localstore"
	"github.com/PatrickLatade/product-catalog/internal/storefront"
)

// env: her komutun ihtiyacı olan üçlü — yerel depo, sepet, API istemcisi.
type env struct {
	store  *localstore.Store
	cart   *cart.Cart
	client *storefront.Client
}

func openEnv(serverURL, dataPath string) (*env, error) {
	store, err := localstore.Open(dataPath)
	if err != nil {
		return nil, fmt.Errorf("yerel depo açılamadı: %w", err)
	}

	c := cart.New(store)
	if err := c.Hydrate(); err != nil {
		store.Close()
		return nil, fmt.Errorf("sepet yüklenemedi: %w", err)
	}

	return &env{store: store, cart: c, client: storefront.NewClient(serverURL)}, nil
}

func (e *env) Close() {
	e.store.Close()
}

func parseID(arg string) (uint, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("geçersiz ürün id: %s", arg)
	}
	return uint(id), nil
}

func stockBadge(stock int) string {
	switch {
	case stock <= 0:
		return "Stokta yok"
	case stock <= 5:
		return fmt.Sprintf("Az kaldı (%d)", stock)
	default:
		return fmt.Sprintf("Stokta (%d)", stock)
	}
}

func main() {
	var serverURL, dataPath string

	root := &cobra.Command{
		Use:   "storefront",
		Short: "Ürün kataloğu vitrin istemcisi",
		Long:  "Ürünleri listeler, yerel sepeti yönetir ve checkout yapar. Sepet bu cihazda saklanır, sunucuda kopyası yoktur.",
	}
	root.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:8080", "Katalog sunucusunun adresi")
	root.PersistentFlags().StringVar(&dataPath, "data", "./data/storefront.db", "Yerel depo dosyası (sepet ve tema)")

	var listSearch, listSort, listStock string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Ürünleri listele (arama/sıralama/stok filtresiyle)",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(serverURL, dataPath)
			if err != nil {
				return err
			}
			defer e.Close()

			products, err := e.client.ListProducts()
			if err != nil {
				return fmt.Errorf("ürünler alınamadı: %w", err)
			}

			filtered := storefront.FilterProducts(products, listSearch, listSort, listStock)
			if len(filtered) == 0 {
				fmt.Println("Eşleşen ürün yok.")
				return nil
			}

			for _, p := range filtered {
				fmt.Printf("%4d  %-30s %8.2f  %s\n", p.ID, p.Name, p.Price, stockBadge(p.Stock))
			}
			return nil
		},
	}
	listCmd.Flags().StringVar(&listSearch, "search", "", "İsim/açıklamada ara")
	listCmd.Flags().StringVar(&listSort, "sort", "name-asc", "Sıralama: name-asc|name-desc|price-asc|price-desc")
	listCmd.Flags().StringVar(&listStock, "stock", "all", "Stok filtresi: all|in-stock|low-stock|out-of-stock")
	root.AddCommand(listCmd)

	showCmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Ürün detayını göster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			e, err := openEnv(serverURL, dataPath)
			if err != nil {
				return err
			}
			defer e.Close()

			p, err := e.client.GetProduct(id)
			if errors.Is(err, storefront.ErrNotFound) {
				fmt.Println("Ürün bulunamadı.")
				return nil
			}
			if err != nil {
				return fmt.Errorf("ürün alınamadı: %w", err)
			}

			fmt.Printf("%s (#%d)\n", p.Name, p.ID)
			fmt.Printf("Fiyat: %.2f\n", p.Price)
			fmt.Printf("Durum: %s\n", stockBadge(p.Stock))
			if p.Description != "" {
				fmt.Println(p.Description)
			}
			if p.ImageURL != "" {
				fmt.Println("Görsel:", p.ImageURL)
			}
			return nil
		},
	}
	root.AddCommand(showCmd)

	cartCmd := &cobra.Command{
		Use:   "cart",
		Short: "Yerel sepeti yönet",
	}

	cartAddCmd := &cobra.Command{
		Use:   "add <id> [adet]",
		Short: "Sepete ekle",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			qty := 1
			if len(args) == 2 {
				qty, err = strconv.Atoi(args[1])
				if err != nil || qty < 1 {
					return fmt.Errorf("geçersiz adet: %s", args[1])
				}
			}

			e, err := openEnv(serverURL, dataPath)
			if err != nil {
				return err
			}
			defer e.Close()

			p, err := e.client.GetProduct(id)
			if errors.Is(err, storefront.ErrNotFound) {
				fmt.Println("Ürün bulunamadı.")
				return nil
			}
			if err != nil {
				return fmt.Errorf("ürün alınamadı: %w", err)
			}
			if p.Stock <= 0 {
				fmt.Println("Ürün stokta yok, sepete eklenmedi.")
				return nil
			}

			e.cart.Add(*p, qty)
			fmt.Printf("%s x%d sepete eklendi. Sepette %d ürün var.\n", p.Name, qty, e.cart.Count())
			return nil
		},
	}
	cartCmd.AddCommand(cartAddCmd)

	cartRmCmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Satırı sepetten çıkar",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			e, err := openEnv(serverURL, dataPath)
			if err != nil {
				return err
			}
			defer e.Close()

			e.cart.Remove(id)
			fmt.Println("Satır çıkarıldı.")
			return nil
		},
	}
	cartCmd.AddCommand(cartRmCmd)

	cartDecCmd := &cobra.Command{
		Use:   "dec <id>",
		Short: "Adedi bir azalt (sıfırda satır silinir)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			e, err := openEnv(serverURL, dataPath)
			if err != nil {
				return err
			}
			defer e.Close()

			e.cart.DecreaseQuantity(id)
			fmt.Println("Adet azaltıldı.")
			return nil
		},
	}
	cartCmd.AddCommand(cartDecCmd)

	cartShowCmd := &cobra.Command{
		Use:   "show",
		Short: "Sepeti göster",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(serverURL, dataPath)
			if err != nil {
				return err
			}
			defer e.Close()

			items := e.cart.Items()
			if len(items) == 0 {
				fmt.Println("Sepet boş.")
				return nil
			}

			for _, it := range items {
				fmt.Printf("%4d  %-30s %8.2f x%d = %.2f\n",
					it.ID, it.Name, it.Price, it.Quantity, it.Price*float64(it.Quantity))
			}
			fmt.Printf("Toplam: %.2f\n", e.cart.Total())
			return nil
		},
	}
	cartCmd.AddCommand(cartShowCmd)

	cartClearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Sepeti boşalt",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(serverURL, dataPath)
			if err != nil {
				return err
			}
			defer e.Close()

			e.cart.Clear()
			fmt.Println("Sepet boşaltıldı.")
			return nil
		},
	}
	cartCmd.AddCommand(cartClearCmd)
	root.AddCommand(cartCmd)

	checkoutCmd := &cobra.Command{
		Use:   "checkout",
		Short: "Sepeti satın al",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(serverURL, dataPath)
			if err != nil {
				return err
			}
			defer e.Close()

			lines := e.cart.Lines()
			if len(lines) == 0 {
				fmt.Println("Sepet boş, checkout yapılmadı.")
				return nil
			}

			result, err := e.client.Checkout(lines)
			if err != nil {
				return fmt.Errorf("checkout isteği başarısız: %w", err)
			}
			if !result.Success {
				fmt.Println("Checkout hatası:", result.Error)
				return nil
			}

			for _, it := range result.Items {
				fmt.Printf("%-30s %8.2f x%d\n", it.Name, it.Price, it.Quantity)
			}
			fmt.Printf("Toplam: %.2f\n", result.Total)

			// Başarılı checkout'tan sonra yerel sepet temizlenir
			e.cart.Clear()
			return nil
		},
	}
	root.AddCommand(checkoutCmd)

	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "Sepeti sunucu stoğuyla hizalayan döngüyü çalıştır",
		Long:  "10 saniyede bir stok projeksiyonunu çeker, stoğu biten satırları sepetten düşürür ve güncel durumu yazar. Ctrl+C ile durur.",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(serverURL, dataPath)
			if err != nil {
				return err
			}
			defer e.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			r := storefront.NewReconciler(e.cart, e.client)
			r.Start()
			defer r.Stop()

			render := func() {
				items := e.cart.Items()
				if len(items) == 0 {
					fmt.Println("--- sepet boş ---")
					return
				}
				fmt.Println("---")
				for _, it := range items {
					status := "kontrol ediliyor..."
					if r.Checked() {
						if s, known := r.StockOf(it.ID); known && s > 0 {
							status = stockBadge(s)
						} else {
							status = "artık satışta değil"
						}
					}
					fmt.Printf("%4d  %-30s x%d  %s\n", it.ID, it.Name, it.Quantity, status)
				}
			}

			render()
			ticker := time.NewTicker(2 * time.Second)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					fmt.Println("Durduruldu.")
					return nil
				case <-ticker.C:
					render()
				}
			}
		},
	}
	root.AddCommand(watchCmd)

	themeCmd := &cobra.Command{
		Use:   "theme [light|dark]",
		Short: "Tema tercihini göster veya değiştir",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(serverURL, dataPath)
			if err != nil {
				return err
			}
			defer e.Close()

			if len(args) == 0 {
				theme, ok, err := e.store.Get("theme")
				if err != nil {
					return err
				}
				if !ok {
					theme = "light"
				}
				fmt.Println(theme)
				return nil
			}

			theme := args[0]
			if theme != "light" && theme != "dark" {
				return fmt.Errorf("geçersiz tema: %s (light veya dark)", theme)
			}
			if err := e.store.Set("theme", theme); err != nil {
				return err
			}
			fmt.Println("Tema kaydedildi:", theme)
			return nil
		},
	}
	root.AddCommand(themeCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Hata:", err)
		os.Exit(1)
	}
}
