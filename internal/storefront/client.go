// Package storefront: vitrin istemcisi. Sunucuyla konuşan HTTP istemcisi,
// sepeti sunucu stoğuyla hizalayan mutabakat döngüsü ve liste filtreleri.
package storefront

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/PatrickLatade/product-catalog/internal/cart"
	"github.com/PatrickLatade/product-catalog/internal/models"
)

var ErrNotFound = errors.New("ürün bulunamadı")

// StockEntry: polling endpoint'inin döndürdüğü hafif projeksiyon satırı.
type StockEntry struct {
	ID    uint `json:"id"`
	Stock int  `json:"stock"`
}

type PurchasedItem struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type CheckoutResult struct {
	Success bool            `json:"success"`
	Items   []PurchasedItem `json:"items"`
	Total   float64         `json:"total"`
	Error   string          `json:"error"`
}

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		// Polling çağrılarına timeout konmaz; asılı kalan istek sadece
		// kendi çağrısını bloklar, döngünün sonraki tick'ini değil
		HTTPClient: &http.Client{},
	}
}

func (cl *Client) getJSON(path string, out interface{}) error {
	resp, err := cl.HTTPClient.Get(cl.BaseURL + path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("beklenmeyen durum kodu: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, out)
}

func (cl *Client) ListProducts() ([]models.Product, error) {
	var products []models.Product
	if err := cl.getJSON("/api/products", &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (cl *Client) GetProduct(id uint) (*models.Product, error) {
	var p models.Product
	if err := cl.getJSON(fmt.Sprintf("/api/products/%d", id), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (cl *Client) StockProjection() ([]StockEntry, error) {
	var entries []StockEntry
	if err := cl.getJSON("/api/products/stock", &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Checkout: {id, quantity} satırlarını form alanıyla gönderir.
func (cl *Client) Checkout(lines []cart.Line) (*CheckoutResult, error) {
	payload, err := json.Marshal(lines)
	if err != nil {
		return nil, err
	}

	form := url.Values{}
	form.Set("intent", "checkout")
	form.Set("cart", string(payload))

	resp, err := cl.HTTPClient.PostForm(cl.BaseURL+"/api/checkout", form)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var result CheckoutResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
