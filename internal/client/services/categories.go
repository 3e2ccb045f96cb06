package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/catalog-admin/internal/client/client"
	"github.com/dmitrijs2005/catalog-admin/internal/client/models"
	"github.com/dmitrijs2005/catalog-admin/internal/client/store"
	"github.com/dmitrijs2005/catalog-admin/internal/logging"
)

// CategoryService loads the category set used by filters and forms.
type CategoryService struct {
	store  *store.Store
	client client.Client
	log    logging.Logger
}

func NewCategoryService(st *store.Store, c client.Client, log logging.Logger) *CategoryService {
	return &CategoryService{store: st, client: c, log: log}
}

// Load fetches all categories once per session; force reloads anyway.
// Failures are logged and leave the previous set in place.
func (s *CategoryService) Load(ctx context.Context, force bool) error {
	if !force && s.store.Snapshot().Categories.Loaded {
		return nil
	}

	items, err := s.client.ListCategories(ctx, client.CategoriesParams{})
	if err != nil {
		s.log.Error(ctx, "Failed to fetch categories", "error", err)
		return fmt.Errorf("fetch categories: %w", err)
	}

	apply(ctx, s.store, s.log, store.SetCategories{Items: items})
	return nil
}

// Search proxies the category search endpoint. Results are not stored.
func (s *CategoryService) Search(ctx context.Context, text string) ([]models.Category, error) {
	items, err := s.client.SearchCategories(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("search categories: %w", err)
	}
	return items, nil
}
