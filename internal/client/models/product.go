// Package models defines client-side data models used by the catalog admin CLI.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// The API speaks JSON numbers for prices.
	decimal.MarshalJSONWithoutQuotes = true
}

// PlaceholderImage is shown when a product carries no image URLs.
const PlaceholderImage = "/placeholder.png"

// Product is a catalog item as returned by the API.
// ID is server-assigned; Slug is the human-readable secondary key used for
// detail lookups.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Images      []string        `json:"images"`
	Price       decimal.Decimal `json:"price"`
	Slug        string          `json:"slug"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
	Category    CategoryRef     `json:"category"`
}

// CoverImage returns the first image URL or the placeholder.
func (p Product) CoverImage() string {
	for _, img := range p.Images {
		if img != "" {
			return img
		}
	}
	return PlaceholderImage
}

// ProductInput is the body of a create request.
type ProductInput struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Images      []string        `json:"images"`
	Price       decimal.Decimal `json:"price"`
	CategoryID  string          `json:"categoryId"`
}

// ProductPatch is the body of an update request. Nil fields are not sent.
type ProductPatch struct {
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	Images      []string         `json:"images,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	CategoryID  *string          `json:"categoryId,omitempty"`
}

// PatchFromInput builds a patch that replaces every editable field.
func PatchFromInput(in ProductInput) ProductPatch {
	price := in.Price
	return ProductPatch{
		Name:        &in.Name,
		Description: &in.Description,
		Images:      in.Images,
		Price:       &price,
		CategoryID:  &in.CategoryID,
	}
}
