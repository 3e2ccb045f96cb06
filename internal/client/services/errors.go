package services

import (
	"errors"
	"sort"
	"strings"

	"github.com/dmitrijs2005/catalog-admin/internal/client/client"
	"github.com/dmitrijs2005/catalog-admin/internal/client/validation"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrNoMorePages     = errors.New("no more pages")
	ErrSearchMode      = errors.New("paging is disabled while searching")
)

// Fallback messages shown when an error carries nothing better.
const (
	MsgFetchProducts = "Failed to fetch products"
	MsgFetchProduct  = "Failed to fetch product"
	MsgCreateProduct = "Failed to create product. Please try again."
	MsgUpdateProduct = "Failed to update product. Please try again."
	MsgDeleteProduct = "Failed to delete product"
	MsgLogin         = "Failed to login. Please check your email and try again."
	MsgProductLookup = "Product not found"
)

// UserMessage converts err into the text a user sees.
//
// Field errors list their messages, API errors show the server's message and
// everything else (transport failures, cancellations, unexpected errors) gets
// fallback.
func UserMessage(err error, fallback string) string {
	if err == nil {
		return ""
	}

	var fe validation.FieldErrors
	if errors.As(err, &fe) {
		keys := make([]string, 0, len(fe))
		for k := range fe {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		msgs := make([]string, 0, len(keys))
		for _, k := range keys {
			msgs = append(msgs, fe[k])
		}
		return strings.Join(msgs, "; ")
	}

	if errors.Is(err, ErrProductNotFound) {
		return MsgProductLookup
	}

	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.Status != 0 && apiErr.Message != "" {
		return apiErr.Message
	}

	return fallback
}
