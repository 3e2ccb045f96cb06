package client

import (
	"context"

	"github.com/dmitrijs2005/catalog-admin/internal/client/models"
)

// Client is the catalog API contract. Every method is a single attempt:
// no retries, no caching.
type Client interface {
	Login(ctx context.Context, email string) (*LoginResponse, error)

	ListProducts(ctx context.Context, params ProductsParams) ([]models.Product, error)
	SearchProducts(ctx context.Context, text string) ([]models.Product, error)
	GetProductBySlug(ctx context.Context, slug string) (*models.Product, error)
	CreateProduct(ctx context.Context, in models.ProductInput) (*models.Product, error)
	UpdateProduct(ctx context.Context, id string, patch models.ProductPatch) (*models.Product, error)
	DeleteProduct(ctx context.Context, id string) (*models.Product, error)

	ListCategories(ctx context.Context, params CategoriesParams) ([]models.Category, error)
	SearchCategories(ctx context.Context, text string) ([]models.Category, error)
}

// TokenSource supplies the bearer credential attached to outbound requests.
// An empty token means the request goes out unauthenticated.
type TokenSource interface {
	Token() string
}

// TokenFunc adapts a plain function to TokenSource.
type TokenFunc func() string

func (f TokenFunc) Token() string { return f() }

// LoginResponse is the body returned by POST /auth.
type LoginResponse struct {
	Token string `json:"token"`
}

// ProductsParams are the query parameters of GET /products.
// Nil Offset/Limit and empty CategoryID are omitted.
type ProductsParams struct {
	Offset     *int
	Limit      *int
	CategoryID string
}

// CategoriesParams are the query parameters of GET /categories.
type CategoriesParams struct {
	Offset *int
	Limit  *int
}

// Int returns a pointer to v; handy for building params.
func Int(v int) *int { return &v }
