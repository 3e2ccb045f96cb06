package store

import "github.com/dmitrijs2005/catalog-admin/internal/client/models"

// Categories is the flat lookup list used by filters and product forms.
// Loaded marks that the list has been fetched for the current session.
type Categories struct {
	Items  []models.Category
	Loaded bool
}

// Name returns the name of category id, or "" when unknown.
func (c Categories) Name(id string) string {
	for _, cat := range c.Items {
		if cat.ID == id {
			return cat.Name
		}
	}
	return ""
}

// SetCategories replaces the whole set.
type SetCategories struct{ Items []models.Category }

func (a SetCategories) Reduce(s State) (State, []Effect) {
	items := make([]models.Category, len(a.Items))
	copy(items, a.Items)
	s.Categories = Categories{Items: items, Loaded: true}
	return s, nil
}

// ResetCategories forgets the loaded set.
type ResetCategories struct{}

func (ResetCategories) Reduce(s State) (State, []Effect) {
	s.Categories = Categories{}
	return s, nil
}
