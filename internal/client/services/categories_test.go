package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/catalog-admin/internal/client/client"
	"github.com/dmitrijs2005/catalog-admin/internal/client/models"
	"github.com/dmitrijs2005/catalog-admin/internal/client/store"
	"github.com/dmitrijs2005/catalog-admin/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryLoad_OncePerSession(t *testing.T) {
	fc := &fakeClient{ListCategoriesFn: func(ctx context.Context, p client.CategoriesParams) ([]models.Category, error) {
		return []models.Category{{ID: "c1", Name: "Shoes"}}, nil
	}}
	st := store.New(nil)
	svc := NewCategoryService(st, fc, logging.Discard())
	ctx := context.Background()

	require.NoError(t, svc.Load(ctx, false))
	require.NoError(t, svc.Load(ctx, false))
	assert.Equal(t, []string{"ListCategories"}, fc.calls())

	require.NoError(t, svc.Load(ctx, true))
	assert.Len(t, fc.calls(), 2)

	c := st.Snapshot().Categories
	assert.True(t, c.Loaded)
	assert.Equal(t, "Shoes", c.Name("c1"))
}

func TestCategoryLoad_FailureKeepsPreviousSet(t *testing.T) {
	boom := errors.New("boom")
	fc := &fakeClient{ListCategoriesFn: func(ctx context.Context, p client.CategoriesParams) ([]models.Category, error) {
		return nil, boom
	}}
	st := store.New(nil)
	ctx := context.Background()
	_, err := st.Dispatch(ctx, store.SetCategories{Items: []models.Category{{ID: "c1"}}})
	require.NoError(t, err)

	svc := NewCategoryService(st, fc, logging.Discard())
	require.ErrorIs(t, svc.Load(ctx, true), boom)
	assert.Len(t, st.Snapshot().Categories.Items, 1)
}

func TestCategorySearch(t *testing.T) {
	fc := &fakeClient{SearchCategoriesFn: func(ctx context.Context, text string) ([]models.Category, error) {
		assert.Equal(t, "sh", text)
		return []models.Category{{ID: "c1"}}, nil
	}}
	st := store.New(nil)
	svc := NewCategoryService(st, fc, logging.Discard())

	got, err := svc.Search(context.Background(), "sh")
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.False(t, st.Snapshot().Categories.Loaded, "search results are not stored")
}
