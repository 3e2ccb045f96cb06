package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/catalog-admin/internal/client/models"
	"github.com/google/uuid"
)

const (
	authorizationHeader = "Authorization"
	requestIDHeader     = "X-Request-ID"
)

// RESTClient talks to the catalog API over HTTP/JSON.
type RESTClient struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
}

// Option customizes a RESTClient.
type Option func(*RESTClient)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(c *http.Client) Option {
	return func(r *RESTClient) { r.http = c }
}

// WithTimeout sets the per-request timeout of the default *http.Client.
func WithTimeout(d time.Duration) Option {
	return func(r *RESTClient) { r.http.Timeout = d }
}

// NewRESTClient builds a client rooted at baseURL. tokens may be nil.
func NewRESTClient(baseURL string, tokens TokenSource, opts ...Option) (*RESTClient, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("base url %q: scheme must be http or https", baseURL)
	}

	c := &RESTClient{baseURL: u.String(), http: &http.Client{Timeout: 15 * time.Second}, tokens: tokens}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

func (c *RESTClient) Login(ctx context.Context, email string) (*LoginResponse, error) {
	var resp LoginResponse
	body := struct {
		Email string `json:"email"`
	}{Email: email}

	if err := c.do(ctx, http.MethodPost, "/auth", nil, body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *RESTClient) ListProducts(ctx context.Context, params ProductsParams) ([]models.Product, error) {
	q := url.Values{}
	setInt(q, "offset", params.Offset)
	setInt(q, "limit", params.Limit)
	if params.CategoryID != "" {
		q.Set("categoryId", params.CategoryID)
	}

	var out []models.Product
	if err := c.do(ctx, http.MethodGet, "/products", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *RESTClient) SearchProducts(ctx context.Context, text string) ([]models.Product, error) {
	var out []models.Product
	q := url.Values{"searchedText": []string{text}}
	if err := c.do(ctx, http.MethodGet, "/products/search", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *RESTClient) GetProductBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var out models.Product
	if err := c.do(ctx, http.MethodGet, "/products/"+url.PathEscape(slug), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *RESTClient) CreateProduct(ctx context.Context, in models.ProductInput) (*models.Product, error) {
	var out models.Product
	if err := c.do(ctx, http.MethodPost, "/products", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *RESTClient) UpdateProduct(ctx context.Context, id string, patch models.ProductPatch) (*models.Product, error) {
	var out models.Product
	if err := c.do(ctx, http.MethodPut, "/products/"+url.PathEscape(id), nil, patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *RESTClient) DeleteProduct(ctx context.Context, id string) (*models.Product, error) {
	var out models.Product
	if err := c.do(ctx, http.MethodDelete, "/products/"+url.PathEscape(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *RESTClient) ListCategories(ctx context.Context, params CategoriesParams) ([]models.Category, error) {
	q := url.Values{}
	setInt(q, "offset", params.Offset)
	setInt(q, "limit", params.Limit)

	var out []models.Category
	if err := c.do(ctx, http.MethodGet, "/categories", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *RESTClient) SearchCategories(ctx context.Context, text string) ([]models.Category, error) {
	var out []models.Category
	q := url.Values{"searchedText": []string{text}}
	if err := c.do(ctx, http.MethodGet, "/categories/search", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func setInt(q url.Values, key string, v *int) {
	if v != nil {
		q.Set(key, strconv.Itoa(*v))
	}
}

// do performs one request. in is JSON-encoded when non-nil; out is decoded
// from a 2xx body when non-nil and the body is not empty.
func (c *RESTClient) do(ctx context.Context, method, path string, q url.Values, in, out any) error {
	target := c.baseURL + path
	if len(q) > 0 {
		target += "?" + q.Encode()
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, uuid.NewString())
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set(authorizationHeader, "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return c.mapError(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.mapError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Status: resp.StatusCode, Message: errorMessage(resp.StatusCode, data)}
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &APIError{Status: resp.StatusCode, Message: "malformed response body", Err: err}
	}
	return nil
}

// mapError turns a transport failure into an APIError without status.
// Cancellation stays reachable through Unwrap.
func (c *RESTClient) mapError(err error) error {
	if errors.Is(err, context.Canceled) {
		return &APIError{Message: "request cancelled", Err: err}
	}
	return &APIError{Message: err.Error(), Err: err}
}

// errorMessage extracts "message" from an error body. The API returns either
// a string or a list of validation messages; anything else falls back to the
// status text.
func errorMessage(status int, body []byte) string {
	var payload struct {
		Message json.RawMessage `json:"message"`
		Error   string          `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		var s string
		if json.Unmarshal(payload.Message, &s) == nil && s != "" {
			return s
		}
		var list []string
		if json.Unmarshal(payload.Message, &list) == nil && len(list) > 0 {
			return strings.Join(list, "; ")
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	return http.StatusText(status)
}
