package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/dmitrijs2005/catalog-admin/internal/client/client"
	"github.com/dmitrijs2005/catalog-admin/internal/client/config"
	"github.com/dmitrijs2005/catalog-admin/internal/client/models"
	"github.com/dmitrijs2005/catalog-admin/internal/client/store"
	"github.com/dmitrijs2005/catalog-admin/internal/logging"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// ------------ helpers ------------

// readerFromLines terminates every line with '\n'.
func readerFromLines(lines ...string) *bufio.Reader {
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	return bufio.NewReader(strings.NewReader(b.String()))
}

func newTestApp(t *testing.T, api *fakeAPI, input ...string) (*App, *bytes.Buffer) {
	t.Helper()
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.PageSize = 2

	out := &bytes.Buffer{}
	a := &App{
		config: cfg,
		store:  store.New(nil),
		log:    logging.Discard(),
		reader: readerFromLines(input...),
		out:    out,
	}
	a.wire(api, nil)
	t.Cleanup(a.Close)
	return a, out
}

func loggedIn(t *testing.T, a *App) {
	t.Helper()
	_, err := a.store.Dispatch(context.Background(), store.SetCredentials{Token: "t", Email: "a@b.co"})
	require.NoError(t, err)
}

func prod(id, name string) models.Product {
	return models.Product{
		ID:          id,
		Name:        name,
		Slug:        strings.ToLower(strings.ReplaceAll(name, " ", "-")),
		Description: "A fine product",
		Price:       decimal.RequireFromString("12.5"),
		Category:    models.CategoryRef{ID: "c1", Name: "Shoes"},
	}
}

// ------------ fake api ------------

// fakeAPI implements client.Client with canned responses.
type fakeAPI struct {
	mu sync.Mutex

	loginErr   error
	products   []models.Product
	listErr    error
	searchHits []models.Product
	detail     *models.Product
	detailErr  error
	created    *models.Product
	createErr  error
	updated    *models.Product
	updateErr  error
	deleteErr  error
	categories []models.Category

	lastList   client.ProductsParams
	lastSearch string
	lastCreate models.ProductInput
	lastPatch  models.ProductPatch
	deleted    []string
	calls      []string
}

func (f *fakeAPI) record(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, name)
}

func (f *fakeAPI) called(name string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.calls {
		if c == name {
			return true
		}
	}
	return false
}

func (f *fakeAPI) Login(ctx context.Context, email string) (*client.LoginResponse, error) {
	f.record("Login")
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return &client.LoginResponse{Token: "tok"}, nil
}

func (f *fakeAPI) ListProducts(ctx context.Context, p client.ProductsParams) ([]models.Product, error) {
	f.record("ListProducts")
	f.mu.Lock()
	f.lastList = p
	f.mu.Unlock()
	return f.products, f.listErr
}

func (f *fakeAPI) SearchProducts(ctx context.Context, text string) ([]models.Product, error) {
	f.record("SearchProducts")
	f.mu.Lock()
	f.lastSearch = text
	f.mu.Unlock()
	return f.searchHits, nil
}

func (f *fakeAPI) GetProductBySlug(ctx context.Context, slug string) (*models.Product, error) {
	f.record("GetProductBySlug")
	return f.detail, f.detailErr
}

func (f *fakeAPI) CreateProduct(ctx context.Context, in models.ProductInput) (*models.Product, error) {
	f.record("CreateProduct")
	f.lastCreate = in
	return f.created, f.createErr
}

func (f *fakeAPI) UpdateProduct(ctx context.Context, id string, patch models.ProductPatch) (*models.Product, error) {
	f.record("UpdateProduct")
	f.lastPatch = patch
	return f.updated, f.updateErr
}

func (f *fakeAPI) DeleteProduct(ctx context.Context, id string) (*models.Product, error) {
	f.record("DeleteProduct")
	if f.deleteErr != nil {
		return nil, f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return &models.Product{ID: id}, nil
}

func (f *fakeAPI) ListCategories(ctx context.Context, p client.CategoriesParams) ([]models.Category, error) {
	f.record("ListCategories")
	return f.categories, nil
}

func (f *fakeAPI) SearchCategories(ctx context.Context, text string) ([]models.Category, error) {
	f.record("SearchCategories")
	return nil, nil
}
