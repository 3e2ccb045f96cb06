package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/catalog-admin/internal/client/services"
	"github.com/dmitrijs2005/catalog-admin/internal/client/store"
	"golang.org/x/sync/errgroup"
)

// List shows the product list. Categories and products load concurrently;
// a category failure is logged and never blocks the list.
func (a *App) List(ctx context.Context) error {
	if !a.requireAuth(ctx) {
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		_ = a.categories.Load(gctx, false)
		return nil
	})
	g.Go(func() error {
		return a.catalog.FetchProducts(gctx)
	})
	err := g.Wait()

	a.renderList()
	return err
}

// Retry reloads the current list after an error.
func (a *App) Retry(ctx context.Context) error {
	if !a.requireAuth(ctx) {
		return nil
	}
	err := a.catalog.FetchProducts(ctx)
	a.renderList()
	return err
}

// Search queues text for the debounced search; results are printed when it
// runs. Empty text leaves search mode immediately.
func (a *App) Search(ctx context.Context, text string) error {
	if !a.requireAuth(ctx) {
		return nil
	}
	if text == "" {
		err := a.catalog.ClearSearch(ctx)
		a.renderList()
		return err
	}
	a.catalog.QueueSearch(ctx, text)
	fmt.Fprintf(a.out, "Searching for %q...\n", text)
	return nil
}

// onSearched renders the list after a debounced search ran.
func (a *App) onSearched(_ store.Catalog, _ error) {
	a.renderList()
}

// Filter selects a category; an empty id shows all categories.
func (a *App) Filter(ctx context.Context, categoryID string) error {
	if !a.requireAuth(ctx) {
		return nil
	}
	if categoryID != "" {
		_ = a.categories.Load(ctx, false)
		cats := a.store.Snapshot().Categories
		if cats.Loaded && cats.Name(categoryID) == "" {
			fmt.Fprintf(a.out, "Unknown category %q (see 'categories').\n", categoryID)
			return nil
		}
	}
	err := a.catalog.SetCategory(ctx, categoryID)
	a.renderList()
	return err
}

func (a *App) Page(ctx context.Context, page int) error {
	if !a.requireAuth(ctx) {
		return nil
	}
	return a.paged(a.catalog.SetPage(ctx, page))
}

func (a *App) Next(ctx context.Context) error {
	if !a.requireAuth(ctx) {
		return nil
	}
	return a.paged(a.catalog.NextPage(ctx))
}

func (a *App) Prev(ctx context.Context) error {
	if !a.requireAuth(ctx) {
		return nil
	}
	return a.paged(a.catalog.PrevPage(ctx))
}

func (a *App) paged(err error) error {
	switch {
	case errors.Is(err, services.ErrSearchMode):
		fmt.Fprintln(a.out, "Paging is not available for search results. Use 'search' to clear the search.")
	case errors.Is(err, services.ErrNoMorePages):
		fmt.Fprintln(a.out, "No more pages.")
	default:
		a.renderList()
	}
	return err
}

// Categories prints the category set, reloading it.
func (a *App) Categories(ctx context.Context) error {
	if !a.requireAuth(ctx) {
		return nil
	}
	if err := a.categories.Load(ctx, true); err != nil {
		fmt.Fprintln(a.out, "Error: failed to fetch categories")
	}
	renderCategories(a.out, a.store.Snapshot().Categories)
	return nil
}

func (a *App) renderList() {
	s := a.store.Snapshot()
	renderCatalog(a.out, s.Catalog, s.Categories, a.catalog.HasPrevPage(s.Catalog), a.catalog.HasNextPage(s.Catalog))
}
