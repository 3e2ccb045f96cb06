package store

import (
	"github.com/dmitrijs2005/catalog-admin/internal/client/models"
)

// Catalog is the product listing/search/filter/pagination state.
//
// A non-empty SearchQuery puts the catalog in search mode: the category filter
// and paging are ignored because the search endpoint returns every match.
//
// ListGeneration and DetailGeneration identify the latest issued list and
// detail fetch. Results carrying an older generation are discarded, so a slow
// early response can never overwrite a newer one.
type Catalog struct {
	Products         []models.Product
	CurrentProduct   *models.Product
	Loading          bool
	Error            string
	CurrentPage      int
	SearchQuery      string
	SelectedCategory string

	DetailLoading bool
	DetailError   string

	ListGeneration   uint64
	DetailGeneration uint64
}

// NewCatalog returns the initial catalog state.
func NewCatalog() Catalog {
	return Catalog{CurrentPage: 1}
}

// SearchMode reports whether fetches go to the search endpoint.
func (c Catalog) SearchMode() bool {
	return c.SearchQuery != ""
}

// Offset is the list offset of the current page for the given page size.
func (c Catalog) Offset(pageSize int) int {
	return (c.CurrentPage - 1) * pageSize
}

// FindProduct returns the index of the product with id, or -1.
func (c Catalog) FindProduct(id string) int {
	for i, p := range c.Products {
		if p.ID == id {
			return i
		}
	}
	return -1
}

type SetLoading struct{ Loading bool }

func (a SetLoading) Reduce(s State) (State, []Effect) {
	s.Catalog.Loading = a.Loading
	return s, nil
}

// SetError records a failure message (empty clears it) and stops loading.
type SetError struct{ Message string }

func (a SetError) Reduce(s State) (State, []Effect) {
	s.Catalog.Error = a.Message
	s.Catalog.Loading = false
	return s, nil
}

// SetProducts replaces the list and clears loading and error.
type SetProducts struct{ Products []models.Product }

func (a SetProducts) Reduce(s State) (State, []Effect) {
	s.Catalog.Products = cloneProducts(a.Products)
	s.Catalog.Loading = false
	s.Catalog.Error = ""
	return s, nil
}

// SetCurrentPage moves to page n; pages below 1 are clamped to 1.
type SetCurrentPage struct{ Page int }

func (a SetCurrentPage) Reduce(s State) (State, []Effect) {
	s.Catalog.CurrentPage = max(a.Page, 1)
	return s, nil
}

// SetSearchQuery changes the search text and resets to the first page.
type SetSearchQuery struct{ Query string }

func (a SetSearchQuery) Reduce(s State) (State, []Effect) {
	s.Catalog.SearchQuery = a.Query
	s.Catalog.CurrentPage = 1
	return s, nil
}

// SetSelectedCategory changes the category filter ("" for none) and resets
// to the first page.
type SetSelectedCategory struct{ CategoryID string }

func (a SetSelectedCategory) Reduce(s State) (State, []Effect) {
	s.Catalog.SelectedCategory = a.CategoryID
	s.Catalog.CurrentPage = 1
	return s, nil
}

// AddProduct prepends a product the server has just created.
type AddProduct struct{ Product models.Product }

func (a AddProduct) Reduce(s State) (State, []Effect) {
	list := make([]models.Product, 0, len(s.Catalog.Products)+1)
	list = append(list, a.Product)
	s.Catalog.Products = append(list, s.Catalog.Products...)
	return s, nil
}

// UpdateProduct replaces the list entry with the same ID in place and
// refreshes CurrentProduct when it is the same entity.
type UpdateProduct struct{ Product models.Product }

func (a UpdateProduct) Reduce(s State) (State, []Effect) {
	if i := s.Catalog.FindProduct(a.Product.ID); i >= 0 {
		list := cloneProducts(s.Catalog.Products)
		list[i] = a.Product
		s.Catalog.Products = list
	}
	if s.Catalog.CurrentProduct != nil && s.Catalog.CurrentProduct.ID == a.Product.ID {
		p := a.Product
		s.Catalog.CurrentProduct = &p
	}
	return s, nil
}

// RemoveProduct drops the product with ID from the list. A matching
// CurrentProduct is cleared as well.
type RemoveProduct struct{ ID string }

func (a RemoveProduct) Reduce(s State) (State, []Effect) {
	if s.Catalog.FindProduct(a.ID) >= 0 {
		list := make([]models.Product, 0, len(s.Catalog.Products)-1)
		for _, p := range s.Catalog.Products {
			if p.ID != a.ID {
				list = append(list, p)
			}
		}
		s.Catalog.Products = list
	}
	if s.Catalog.CurrentProduct != nil && s.Catalog.CurrentProduct.ID == a.ID {
		s.Catalog.CurrentProduct = nil
	}
	return s, nil
}

// SetCurrentProduct sets the detail target; nil clears it.
type SetCurrentProduct struct{ Product *models.Product }

func (a SetCurrentProduct) Reduce(s State) (State, []Effect) {
	if a.Product == nil {
		s.Catalog.CurrentProduct = nil
		return s, nil
	}
	p := *a.Product
	s.Catalog.CurrentProduct = &p
	return s, nil
}

// BeginListFetch starts a list/search request. The resulting
// Catalog.ListGeneration must be passed back with the outcome.
type BeginListFetch struct{}

func (BeginListFetch) Reduce(s State) (State, []Effect) {
	s.Catalog.ListGeneration++
	s.Catalog.Loading = true
	return s, nil
}

// ListFetched delivers the products of fetch Generation.
type ListFetched struct {
	Generation uint64
	Products   []models.Product
}

func (a ListFetched) Reduce(s State) (State, []Effect) {
	if a.Generation != s.Catalog.ListGeneration {
		return s, nil
	}
	return SetProducts{Products: a.Products}.Reduce(s)
}

// ListFailed delivers the failure of fetch Generation.
type ListFailed struct {
	Generation uint64
	Message    string
}

func (a ListFailed) Reduce(s State) (State, []Effect) {
	if a.Generation != s.Catalog.ListGeneration {
		return s, nil
	}
	return SetError{Message: a.Message}.Reduce(s)
}

// BeginDetailFetch starts loading a single product.
type BeginDetailFetch struct{}

func (BeginDetailFetch) Reduce(s State) (State, []Effect) {
	s.Catalog.DetailGeneration++
	s.Catalog.DetailLoading = true
	s.Catalog.DetailError = ""
	return s, nil
}

// DetailFetched delivers the product of detail fetch Generation.
type DetailFetched struct {
	Generation uint64
	Product    models.Product
}

func (a DetailFetched) Reduce(s State) (State, []Effect) {
	if a.Generation != s.Catalog.DetailGeneration {
		return s, nil
	}
	s.Catalog.DetailLoading = false
	return SetCurrentProduct{Product: &a.Product}.Reduce(s)
}

// DetailFailed delivers the failure of detail fetch Generation.
type DetailFailed struct {
	Generation uint64
	Message    string
}

func (a DetailFailed) Reduce(s State) (State, []Effect) {
	if a.Generation != s.Catalog.DetailGeneration {
		return s, nil
	}
	s.Catalog.DetailLoading = false
	s.Catalog.DetailError = a.Message
	return s, nil
}

// ResetCatalog returns the catalog to its initial state. Generations keep
// counting so responses still in flight are discarded.
type ResetCatalog struct{}

func (ResetCatalog) Reduce(s State) (State, []Effect) {
	c := NewCatalog()
	c.ListGeneration = s.Catalog.ListGeneration + 1
	c.DetailGeneration = s.Catalog.DetailGeneration + 1
	s.Catalog = c
	return s, nil
}

func cloneProducts(in []models.Product) []models.Product {
	if in == nil {
		return nil
	}
	out := make([]models.Product, len(in))
	copy(out, in)
	return out
}
