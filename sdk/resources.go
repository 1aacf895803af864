package sdk

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"
)

// queryCache is a small TTL cache keyed by request path. Mutating calls
// invalidate by key prefix so a write to one resource flushes every cached
// listing of it.
type queryCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]cacheEntry
}

type cacheEntry struct {
	value     []byte
	expiresAt time.Time
}

func newQueryCache(ttl time.Duration) *queryCache {
	return &queryCache{
		ttl:     ttl,
		entries: map[string]cacheEntry{},
	}
}

func (q *queryCache) get(key string) ([]byte, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	entry, ok := q.entries[key]
	if !ok || time.Now().After(entry.expiresAt) {
		delete(q.entries, key)
		return nil, false
	}
	return entry.value, true
}

func (q *queryCache) set(key string, value []byte) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.entries[key] = cacheEntry{value: value, expiresAt: time.Now().Add(q.ttl)}
}

func (q *queryCache) invalidatePrefix(prefix string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for key := range q.entries {
		if strings.HasPrefix(key, prefix) {
			delete(q.entries, key)
		}
	}
}

// Vendor mirrors the server's vendor entity as the dashboard consumes it.
type Vendor struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ContactEmail string `json:"contactEmail"`
	Phone        string `json:"phone,omitempty"`
	Address      string `json:"address,omitempty"`
	Status       string `json:"status"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt"`
}

type Product struct {
	ID       string `json:"id"`
	SKU      string `json:"sku"`
	Name     string `json:"name"`
	VendorID string `json:"vendorID"`
	Category string `json:"category"`
	// price in the smallest currency unit
	UnitPrice int64  `json:"unitPrice"`
	Image     string `json:"image"`
}

type InventoryItem struct {
	ID           string `json:"id"`
	ProductID    string `json:"productID"`
	Location     string `json:"location"`
	Quantity     int64  `json:"quantity"`
	ReorderLevel int64  `json:"reorderLevel"`
}

// Resources is the data layer the dashboard reads through. Listings are
// cached briefly; when the backend is unreachable and mock mode is on, a
// fixed fixture set is served instead so the UI can be developed offline.
type Resources struct {
	client   *Client
	sessions *SessionManager
	cache    *queryCache
	useMocks bool
}

type ResourceOption func(*Resources)

// WithMockFallback serves canned data on transport failure instead of
// surfacing "no response from server".
func WithMockFallback() ResourceOption {
	return func(r *Resources) {
		r.useMocks = true
	}
}

func WithCacheTTL(ttl time.Duration) ResourceOption {
	return func(r *Resources) {
		r.cache = newQueryCache(ttl)
	}
}

func NewResources(client *Client, sessions *SessionManager, opts ...ResourceOption) *Resources {
	r := &Resources{
		client:   client,
		sessions: sessions,
		cache:    newQueryCache(30 * time.Second),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Resources) bearer() string {
	tokens, ok := r.sessions.store.TokenSet()
	if !ok {
		return ""
	}
	return tokens.AccessToken
}

// transportFailed reports an error that never reached the server, the only
// case mock fallback applies to. Rejected requests keep their real errors.
func transportFailed(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.Status == 0 && apiErr.Message == noResponseMessage
}


// listThrough serves a listing from cache when fresh, otherwise fetches and
// stores it. out must be a pointer to a slice.
func (r *Resources) listThrough(ctx context.Context, path string, out any) error {
	if cached, ok := r.cache.get(path); ok {
		return json.Unmarshal(cached, out)
	}
	if err := r.client.do(ctx, http.MethodGet, path, r.bearer(), nil, out); err != nil {
		return err
	}
	if encoded, err := json.Marshal(out); err == nil {
		r.cache.set(path, encoded)
	}
	return nil
}

func (r *Resources) ListVendors(ctx context.Context) ([]Vendor, error) {
	var vendors []Vendor
	err := r.listThrough(ctx, "/vendors", &vendors)
	if err != nil {
		if r.useMocks && transportFailed(err) {
			return mockVendors(), nil
		}
		return nil, err
	}
	return vendors, nil
}

func (r *Resources) FetchVendor(ctx context.Context, id string) (*Vendor, error) {
	var vendor Vendor
	err := r.client.do(ctx, http.MethodGet, "/vendors/"+id, r.bearer(), nil, &vendor)
	if err != nil {
		if r.useMocks && transportFailed(err) {
			if mock := mockVendorByID(id); mock != nil {
				return mock, nil
			}
		}
		return nil, err
	}
	return &vendor, nil
}

type CreateVendorInput struct {
	Name         string `json:"name"`
	ContactEmail string `json:"contactEmail"`
	Phone        string `json:"phone,omitempty"`
	Address      string `json:"address,omitempty"`
}

func (r *Resources) CreateVendor(ctx context.Context, input CreateVendorInput) (*Vendor, error) {
	var vendor Vendor
	err := r.client.do(ctx, http.MethodPost, "/vendors", r.bearer(), input, &vendor)
	if err != nil {
		return nil, err
	}
	r.cache.invalidatePrefix("/vendors")
	return &vendor, nil
}

func (r *Resources) DeleteVendor(ctx context.Context, id string) error {
	err := r.client.do(ctx, http.MethodDelete, "/vendors/"+id, r.bearer(), nil, nil)
	if err != nil {
		return err
	}
	r.cache.invalidatePrefix("/vendors")
	return nil
}

func (r *Resources) ListProducts(ctx context.Context) ([]Product, error) {
	var products []Product
	err := r.listThrough(ctx, "/products", &products)
	if err != nil {
		if r.useMocks && transportFailed(err) {
			return mockProducts(), nil
		}
		return nil, err
	}
	return products, nil
}

// ProductDetail is a product plus the short lived signed url for its image,
// when one has been uploaded.
type ProductDetail struct {
	Product  Product `json:"product"`
	ImageURL *string `json:"imageURL"`
}

func (r *Resources) FetchProduct(ctx context.Context, id string) (*ProductDetail, error) {
	var detail ProductDetail
	err := r.client.do(ctx, http.MethodGet, "/products/"+id, r.bearer(), nil, &detail)
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

type CreateProductInput struct {
	SKU       string `json:"sku"`
	Name      string `json:"name"`
	VendorID  string `json:"vendorID"`
	Category  string `json:"category"`
	UnitPrice int64  `json:"unitPrice"`
}

func (r *Resources) CreateProduct(ctx context.Context, input CreateProductInput) (*Product, error) {
	var product Product
	err := r.client.do(ctx, http.MethodPost, "/products", r.bearer(), input, &product)
	if err != nil {
		return nil, err
	}
	r.cache.invalidatePrefix("/products")
	return &product, nil
}

func (r *Resources) ListInventory(ctx context.Context) ([]InventoryItem, error) {
	var items []InventoryItem
	err := r.listThrough(ctx, "/inventory", &items)
	if err != nil {
		if r.useMocks && transportFailed(err) {
			return mockInventory(), nil
		}
		return nil, err
	}
	return items, nil
}

type adjustQuantityRequest struct {
	Delta int64 `json:"delta"`
}

func (r *Resources) AdjustQuantity(ctx context.Context, id string, delta int64) (*InventoryItem, error) {
	var item InventoryItem
	path := fmt.Sprintf("/inventory/%s/quantity", id)
	err := r.client.do(ctx, http.MethodPatch, path, r.bearer(), adjustQuantityRequest{Delta: delta}, &item)
	if err != nil {
		return nil, err
	}
	r.cache.invalidatePrefix("/inventory")
	return &item, nil
}
