package services

import (
	"context"
	"database/sql"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/catalog-admin/internal/client/client"
	"github.com/dmitrijs2005/catalog-admin/internal/client/models"
	"github.com/dmitrijs2005/catalog-admin/internal/debounce"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// ---- helpers ----

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := client.InitDatabase(context.Background(), filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func getMeta(t *testing.T, db *sql.DB, k string) (string, bool) {
	t.Helper()
	var v []byte
	err := db.QueryRow(`SELECT value FROM metadata WHERE key=?`, k).Scan(&v)
	if err == sql.ErrNoRows {
		return "", false
	}
	require.NoError(t, err)
	return string(v), true
}

func product(id, name string) models.Product {
	return models.Product{
		ID:    id,
		Name:  name,
		Slug:  name,
		Price: decimal.NewFromInt(10),
	}
}

func products(n int, prefix string) []models.Product {
	out := make([]models.Product, n)
	for i := range out {
		out[i] = product(prefix+string(rune('a'+i)), prefix+string(rune('a'+i)))
	}
	return out
}

// ---- fake client ----

// fakeClient implements client.Client; unset funcs return zero values.
type fakeClient struct {
	mu sync.Mutex

	LoginFn            func(ctx context.Context, email string) (*client.LoginResponse, error)
	ListProductsFn     func(ctx context.Context, p client.ProductsParams) ([]models.Product, error)
	SearchProductsFn   func(ctx context.Context, text string) ([]models.Product, error)
	GetProductFn       func(ctx context.Context, slug string) (*models.Product, error)
	CreateProductFn    func(ctx context.Context, in models.ProductInput) (*models.Product, error)
	UpdateProductFn    func(ctx context.Context, id string, patch models.ProductPatch) (*models.Product, error)
	DeleteProductFn    func(ctx context.Context, id string) (*models.Product, error)
	ListCategoriesFn   func(ctx context.Context, p client.CategoriesParams) ([]models.Category, error)
	SearchCategoriesFn func(ctx context.Context, text string) ([]models.Category, error)

	Calls []string
}

func (f *fakeClient) record(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, name)
}

func (f *fakeClient) calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.Calls...)
}

func (f *fakeClient) Login(ctx context.Context, email string) (*client.LoginResponse, error) {
	f.record("Login")
	if f.LoginFn == nil {
		return &client.LoginResponse{}, nil
	}
	return f.LoginFn(ctx, email)
}

func (f *fakeClient) ListProducts(ctx context.Context, p client.ProductsParams) ([]models.Product, error) {
	f.record("ListProducts")
	if f.ListProductsFn == nil {
		return nil, nil
	}
	return f.ListProductsFn(ctx, p)
}

func (f *fakeClient) SearchProducts(ctx context.Context, text string) ([]models.Product, error) {
	f.record("SearchProducts")
	if f.SearchProductsFn == nil {
		return nil, nil
	}
	return f.SearchProductsFn(ctx, text)
}

func (f *fakeClient) GetProductBySlug(ctx context.Context, slug string) (*models.Product, error) {
	f.record("GetProductBySlug")
	if f.GetProductFn == nil {
		return &models.Product{Slug: slug}, nil
	}
	return f.GetProductFn(ctx, slug)
}

func (f *fakeClient) CreateProduct(ctx context.Context, in models.ProductInput) (*models.Product, error) {
	f.record("CreateProduct")
	if f.CreateProductFn == nil {
		return &models.Product{Name: in.Name}, nil
	}
	return f.CreateProductFn(ctx, in)
}

func (f *fakeClient) UpdateProduct(ctx context.Context, id string, patch models.ProductPatch) (*models.Product, error) {
	f.record("UpdateProduct")
	if f.UpdateProductFn == nil {
		return &models.Product{ID: id}, nil
	}
	return f.UpdateProductFn(ctx, id, patch)
}

func (f *fakeClient) DeleteProduct(ctx context.Context, id string) (*models.Product, error) {
	f.record("DeleteProduct")
	if f.DeleteProductFn == nil {
		return &models.Product{ID: id}, nil
	}
	return f.DeleteProductFn(ctx, id)
}

func (f *fakeClient) ListCategories(ctx context.Context, p client.CategoriesParams) ([]models.Category, error) {
	f.record("ListCategories")
	if f.ListCategoriesFn == nil {
		return nil, nil
	}
	return f.ListCategoriesFn(ctx, p)
}

func (f *fakeClient) SearchCategories(ctx context.Context, text string) ([]models.Category, error) {
	f.record("SearchCategories")
	if f.SearchCategoriesFn == nil {
		return nil, nil
	}
	return f.SearchCategoriesFn(ctx, text)
}

// ---- manual clock ----

// manualClock holds scheduled funcs until fire is called.
type manualClock struct {
	mu     sync.Mutex
	timers []*manualTimer
}

type manualTimer struct {
	f       func()
	stopped bool
}

func (t *manualTimer) Stop() bool {
	was := !t.stopped
	t.stopped = true
	return was
}

func (c *manualClock) AfterFunc(_ time.Duration, f func()) debounce.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &manualTimer{f: f}
	c.timers = append(c.timers, t)
	return t
}

// fire runs every timer that was not stopped.
func (c *manualClock) fire() {
	c.mu.Lock()
	var due []*manualTimer
	for _, t := range c.timers {
		if !t.stopped {
			t.stopped = true
			due = append(due, t)
		}
	}
	c.mu.Unlock()

	for _, t := range due {
		t.f()
	}
}
