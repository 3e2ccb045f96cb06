package cli

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/catalog-admin/internal/client/client"
	"github.com/dmitrijs2005/catalog-admin/internal/client/models"
	"github.com/dmitrijs2005/catalog-admin/internal/client/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList_RendersTableAndPager(t *testing.T) {
	noImage := prod("2", "Blue Hat")
	withImage := prod("1", "Red Shoes")
	withImage.Images = []string{"https://img.example/red.png"}

	api := &fakeAPI{
		products:   []models.Product{withImage, noImage},
		categories: []models.Category{{ID: "c1", Name: "Shoes"}},
	}
	a, out := newTestApp(t, api)
	loggedIn(t, a)

	require.NoError(t, a.List(context.Background()))

	got := out.String()
	assert.Contains(t, got, "Products (page 1)")
	assert.Contains(t, got, "ID  NAME")
	assert.Contains(t, got, "$12.50")
	assert.Contains(t, got, "https://img.example/red.png")
	assert.Contains(t, got, models.PlaceholderImage)
	assert.Contains(t, got, "Page 1: 'next' for more")
	assert.True(t, a.store.Snapshot().Categories.Loaded)

	require.NotNil(t, api.lastList.Limit)
	assert.Equal(t, 2, *api.lastList.Limit)
}

func TestList_ErrorBannerThenRetry(t *testing.T) {
	api := &fakeAPI{listErr: &client.APIError{Err: client.ErrUnavailable}}
	a, out := newTestApp(t, api)
	loggedIn(t, a)
	ctx := context.Background()

	require.Error(t, a.List(ctx))
	assert.Contains(t, out.String(), "Error: Failed to fetch products (type 'retry' to try again)")

	api.listErr = nil
	api.products = []models.Product{prod("1", "Red Shoes")}
	out.Reset()

	require.NoError(t, a.Retry(ctx))
	assert.Contains(t, out.String(), "Red Shoes")
	assert.NotContains(t, out.String(), "Error:")
}

func TestList_Empty(t *testing.T) {
	a, out := newTestApp(t, &fakeAPI{})
	loggedIn(t, a)

	require.NoError(t, a.List(context.Background()))
	assert.Contains(t, out.String(), "No products found.")
	assert.NotContains(t, out.String(), "for more")
}

func TestSearch_RunsAfterDebounce(t *testing.T) {
	api := &fakeAPI{searchHits: []models.Product{prod("9", "Red Scarf")}}
	a, out := newTestApp(t, api)
	loggedIn(t, a)
	ctx := context.Background()

	require.NoError(t, a.Search(ctx, "red"))
	assert.Contains(t, out.String(), `Searching for "red"...`)
	assert.False(t, api.called("SearchProducts"))

	require.True(t, a.catalog.FlushSearch())
	assert.Equal(t, "red", api.lastSearch)
	assert.Contains(t, out.String(), `Search results for "red"`)
	assert.Contains(t, out.String(), "Red Scarf")

	out.Reset()
	require.ErrorIs(t, a.Next(ctx), services.ErrSearchMode)
	assert.Contains(t, out.String(), "Paging is not available for search results.")

	out.Reset()
	require.NoError(t, a.Search(ctx, ""))
	assert.Contains(t, out.String(), "Products (page 1)")
	assert.False(t, a.store.Snapshot().Catalog.SearchMode())
}

func TestFilter(t *testing.T) {
	api := &fakeAPI{categories: []models.Category{{ID: "c1", Name: "Shoes"}}}
	a, out := newTestApp(t, api)
	loggedIn(t, a)
	ctx := context.Background()

	require.NoError(t, a.Filter(ctx, "zz"))
	assert.Contains(t, out.String(), `Unknown category "zz"`)
	assert.Empty(t, a.store.Snapshot().Catalog.SelectedCategory)

	require.NoError(t, a.Filter(ctx, "c1"))
	assert.Equal(t, "c1", api.lastList.CategoryID)
	assert.Contains(t, out.String(), "Products in Shoes (page 1)")

	require.NoError(t, a.Filter(ctx, ""))
	assert.Empty(t, api.lastList.CategoryID)
}

func TestPaging(t *testing.T) {
	api := &fakeAPI{products: []models.Product{prod("1", "A"), prod("2", "B")}}
	a, out := newTestApp(t, api)
	loggedIn(t, a)
	ctx := context.Background()

	require.ErrorIs(t, a.Prev(ctx), services.ErrNoMorePages)
	assert.Contains(t, out.String(), "No more pages.")

	require.NoError(t, a.List(ctx))
	require.NoError(t, a.Next(ctx))
	assert.Equal(t, 2, *api.lastList.Offset)

	require.NoError(t, a.Page(ctx, 4))
	assert.Equal(t, 6, *api.lastList.Offset)
	assert.Contains(t, out.String(), "Page 4: 'prev' / 'next' for more")
}

func TestCategoriesCommand(t *testing.T) {
	api := &fakeAPI{categories: []models.Category{{ID: "c1", Name: "Shoes"}, {ID: "c2", Name: "Hats"}}}
	a, out := newTestApp(t, api)
	loggedIn(t, a)

	require.NoError(t, a.Categories(context.Background()))
	assert.Contains(t, out.String(), "c2  Hats")
}
