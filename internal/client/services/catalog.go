package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/catalog-admin/internal/client/client"
	"github.com/dmitrijs2005/catalog-admin/internal/client/models"
	"github.com/dmitrijs2005/catalog-admin/internal/client/store"
	"github.com/dmitrijs2005/catalog-admin/internal/client/validation"
	"github.com/dmitrijs2005/catalog-admin/internal/debounce"
	"github.com/dmitrijs2005/catalog-admin/internal/logging"
)

const (
	DefaultPageSize       = 10
	DefaultSearchDebounce = 500 * time.Millisecond
)

// CatalogOption configures a CatalogService.
type CatalogOption func(*CatalogService)

// WithPageSize sets the number of products per listing page.
func WithPageSize(n int) CatalogOption {
	return func(s *CatalogService) {
		if n > 0 {
			s.pageSize = n
		}
	}
}

// WithSearchDebounce sets the quiet period of QueueSearch.
func WithSearchDebounce(d time.Duration) CatalogOption {
	return func(s *CatalogService) { s.debounceDelay = d }
}

// WithSearchClock replaces the debounce clock; used by tests.
func WithSearchClock(c debounce.Clock) CatalogOption {
	return func(s *CatalogService) { s.clock = c }
}

// WithSearchListener registers fn to be called after a debounced search has
// fetched, with the resulting catalog state and the fetch error.
func WithSearchListener(fn func(store.Catalog, error)) CatalogOption {
	return func(s *CatalogService) { s.onSearched = fn }
}

// CatalogService drives product listing, search and the product forms.
type CatalogService struct {
	store  *store.Store
	client client.Client
	log    logging.Logger

	pageSize      int
	debounceDelay time.Duration
	clock         debounce.Clock
	onSearched    func(store.Catalog, error)

	search *debounce.Debouncer[searchRequest]
}

type searchRequest struct {
	ctx  context.Context
	text string
}

func NewCatalogService(st *store.Store, c client.Client, log logging.Logger, opts ...CatalogOption) *CatalogService {
	s := &CatalogService{
		store:         st,
		client:        c,
		log:           log,
		pageSize:      DefaultPageSize,
		debounceDelay: DefaultSearchDebounce,
	}
	for _, o := range opts {
		o(s)
	}

	var dopts []debounce.Option[searchRequest]
	if s.clock != nil {
		dopts = append(dopts, debounce.WithClock[searchRequest](s.clock))
	}
	s.search = debounce.New(s.debounceDelay, s.runSearch, dopts...)
	return s
}

// PageSize returns the configured listing page size.
func (s *CatalogService) PageSize() int { return s.pageSize }

// FetchProducts loads the products for the current query, filter and page.
// In search mode the search endpoint is used and paging is ignored.
func (s *CatalogService) FetchProducts(ctx context.Context) error {
	st := apply(ctx, s.store, s.log, store.BeginListFetch{})
	c := st.Catalog
	gen := c.ListGeneration

	var (
		products []models.Product
		err      error
	)
	if c.SearchMode() {
		products, err = s.client.SearchProducts(ctx, c.SearchQuery)
	} else {
		products, err = s.client.ListProducts(ctx, client.ProductsParams{
			Offset:     client.Int(c.Offset(s.pageSize)),
			Limit:      client.Int(s.pageSize),
			CategoryID: c.SelectedCategory,
		})
	}
	if err != nil {
		s.log.Warn(ctx, "fetch products failed", "generation", gen, "error", err)
		apply(ctx, s.store, s.log, store.ListFailed{Generation: gen, Message: UserMessage(err, MsgFetchProducts)})
		return fmt.Errorf("fetch products: %w", err)
	}

	next := apply(ctx, s.store, s.log, store.ListFetched{Generation: gen, Products: products})
	if next.Catalog.ListGeneration != gen {
		s.log.Debug(ctx, "stale product list dropped", "generation", gen, "current", next.Catalog.ListGeneration)
	}
	return nil
}

// QueueSearch records text typed into the search box. After the quiet
// period, if text differs from the active query, the query is replaced and
// products are fetched again.
func (s *CatalogService) QueueSearch(ctx context.Context, text string) {
	s.search.Trigger(searchRequest{ctx: ctx, text: text})
}

// FlushSearch runs a queued search immediately. It reports whether one ran.
func (s *CatalogService) FlushSearch() bool {
	return s.search.Flush()
}

// SearchPending reports whether a queued search has not run yet.
func (s *CatalogService) SearchPending() bool {
	return s.search.Pending()
}

// Close cancels a queued search.
func (s *CatalogService) Close() {
	s.search.Stop()
}

func (s *CatalogService) runSearch(r searchRequest) {
	if r.ctx.Err() != nil {
		return
	}
	if r.text == s.store.Snapshot().Catalog.SearchQuery {
		return
	}

	apply(r.ctx, s.store, s.log, store.SetSearchQuery{Query: r.text})
	err := s.FetchProducts(r.ctx)

	if s.onSearched != nil {
		s.onSearched(s.store.Snapshot().Catalog, err)
	}
}

// ClearSearch leaves search mode and reloads the first page.
func (s *CatalogService) ClearSearch(ctx context.Context) error {
	s.search.Stop()
	apply(ctx, s.store, s.log, store.SetSearchQuery{Query: ""})
	return s.FetchProducts(ctx)
}

// SetCategory filters the listing by category; an empty id removes the
// filter.
func (s *CatalogService) SetCategory(ctx context.Context, categoryID string) error {
	apply(ctx, s.store, s.log, store.SetSelectedCategory{CategoryID: categoryID})
	return s.FetchProducts(ctx)
}

// SetPage jumps to page (clamped to 1).
func (s *CatalogService) SetPage(ctx context.Context, page int) error {
	if s.store.Snapshot().Catalog.SearchMode() {
		return ErrSearchMode
	}
	apply(ctx, s.store, s.log, store.SetCurrentPage{Page: page})
	return s.FetchProducts(ctx)
}

// HasNextPage reports whether the last listing filled a whole page.
func (s *CatalogService) HasNextPage(c store.Catalog) bool {
	return !c.SearchMode() && len(c.Products) >= s.pageSize
}

// HasPrevPage reports whether a previous page exists.
func (s *CatalogService) HasPrevPage(c store.Catalog) bool {
	return !c.SearchMode() && c.CurrentPage > 1
}

func (s *CatalogService) NextPage(ctx context.Context) error {
	c := s.store.Snapshot().Catalog
	if c.SearchMode() {
		return ErrSearchMode
	}
	if !s.HasNextPage(c) {
		return ErrNoMorePages
	}
	return s.SetPage(ctx, c.CurrentPage+1)
}

func (s *CatalogService) PrevPage(ctx context.Context) error {
	c := s.store.Snapshot().Catalog
	if c.SearchMode() {
		return ErrSearchMode
	}
	if !s.HasPrevPage(c) {
		return ErrNoMorePages
	}
	return s.SetPage(ctx, c.CurrentPage-1)
}

// LoadProduct fetches one product by slug into CurrentProduct.
func (s *CatalogService) LoadProduct(ctx context.Context, slug string) (*models.Product, error) {
	gen := apply(ctx, s.store, s.log, store.BeginDetailFetch{}).Catalog.DetailGeneration

	p, err := s.client.GetProductBySlug(ctx, slug)
	if err != nil {
		s.log.Warn(ctx, "fetch product failed", "slug", slug, "error", err)
		apply(ctx, s.store, s.log, store.DetailFailed{Generation: gen, Message: UserMessage(err, MsgFetchProduct)})
		return nil, fmt.Errorf("fetch product %q: %w", slug, err)
	}

	apply(ctx, s.store, s.log, store.DetailFetched{Generation: gen, Product: *p})
	return p, nil
}

// LoadForEdit locates a product by id for the edit form. There is no
// get-by-id endpoint, so the unfiltered listing is searched; a miss yields
// ErrProductNotFound.
func (s *CatalogService) LoadForEdit(ctx context.Context, id string) (*models.Product, error) {
	gen := apply(ctx, s.store, s.log, store.BeginDetailFetch{}).Catalog.DetailGeneration

	products, err := s.client.ListProducts(ctx, client.ProductsParams{})
	if err != nil {
		s.log.Warn(ctx, "fetch product for edit failed", "id", id, "error", err)
		apply(ctx, s.store, s.log, store.DetailFailed{Generation: gen, Message: UserMessage(err, MsgFetchProduct)})
		return nil, fmt.Errorf("fetch product %s: %w", id, err)
	}

	for i := range products {
		if products[i].ID == id {
			p := products[i]
			apply(ctx, s.store, s.log, store.DetailFetched{Generation: gen, Product: p})
			return &p, nil
		}
	}

	apply(ctx, s.store, s.log, store.DetailFailed{Generation: gen, Message: MsgProductLookup})
	return nil, fmt.Errorf("product %s: %w", id, ErrProductNotFound)
}

// Create validates form, creates the product and prepends it to the list.
func (s *CatalogService) Create(ctx context.Context, form validation.ProductForm) (*models.Product, error) {
	in, err := validation.ToInput(form)
	if err != nil {
		return nil, err
	}

	p, err := s.client.CreateProduct(ctx, in)
	if err != nil {
		s.log.Warn(ctx, "create product failed", "name", in.Name, "error", err)
		return nil, fmt.Errorf("create product: %w", err)
	}

	apply(ctx, s.store, s.log, store.AddProduct{Product: *p})
	s.log.Info(ctx, "product created", "id", p.ID, "slug", p.Slug)
	return p, nil
}

// Update validates form and sends every field as a patch.
func (s *CatalogService) Update(ctx context.Context, id string, form validation.ProductForm) (*models.Product, error) {
	in, err := validation.ToInput(form)
	if err != nil {
		return nil, err
	}

	p, err := s.client.UpdateProduct(ctx, id, models.PatchFromInput(in))
	if err != nil {
		s.log.Warn(ctx, "update product failed", "id", id, "error", err)
		return nil, fmt.Errorf("update product %s: %w", id, err)
	}

	apply(ctx, s.store, s.log, store.UpdateProduct{Product: *p})
	s.log.Info(ctx, "product updated", "id", p.ID, "slug", p.Slug)
	return p, nil
}

// Delete removes the product remotely and then from the list.
func (s *CatalogService) Delete(ctx context.Context, id string) error {
	if _, err := s.client.DeleteProduct(ctx, id); err != nil {
		s.log.Warn(ctx, "delete product failed", "id", id, "error", err)
		return fmt.Errorf("delete product %s: %w", id, err)
	}

	apply(ctx, s.store, s.log, store.RemoveProduct{ID: id})
	s.log.Info(ctx, "product deleted", "id", id)
	return nil
}
