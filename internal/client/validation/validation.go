// Package validation re-checks login and product forms before anything is
// sent to the API. The server stays the source of truth; these checks only
// give the user early, field-scoped feedback.
package validation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dmitrijs2005/catalog-admin/internal/client/models"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Field names used as FieldErrors keys.
const (
	FieldEmail       = "email"
	FieldName        = "name"
	FieldDescription = "description"
	FieldPrice       = "price"
	FieldCategory    = "categoryId"
	FieldImages      = "images"
)

const (
	minNameLen        = 3
	minDescriptionLen = 10
)

var maxPrice = decimal.NewFromInt(1_000_000)

var validate = validator.New(validator.WithRequiredStructEnabled())

// FieldErrors maps a form field to its message. A non-empty FieldErrors
// blocks submission.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, fe[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Err returns fe as an error, or nil when there are no field errors.
func (fe FieldErrors) Err() error {
	if len(fe) == 0 {
		return nil
	}
	return fe
}

// ValidateEmail checks the login form.
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return FieldErrors{FieldEmail: "Email is required"}
	}
	if err := validate.Var(email, "email"); err != nil {
		return FieldErrors{FieldEmail: "Please enter a valid email address"}
	}
	return nil
}

// ProductForm is the raw text of the create/edit form.
type ProductForm struct {
	Name        string
	Description string
	Price       string
	CategoryID  string
	Images      []string
}

// ValidateProductForm checks every field and returns all problems at once.
func ValidateProductForm(f ProductForm) FieldErrors {
	errs := FieldErrors{}

	switch name := strings.TrimSpace(f.Name); {
	case name == "":
		errs[FieldName] = "Product name is required"
	case len([]rune(name)) < minNameLen:
		errs[FieldName] = fmt.Sprintf("Product name must be at least %d characters", minNameLen)
	}

	switch desc := strings.TrimSpace(f.Description); {
	case desc == "":
		errs[FieldDescription] = "Description is required"
	case len([]rune(desc)) < minDescriptionLen:
		errs[FieldDescription] = fmt.Sprintf("Description must be at least %d characters", minDescriptionLen)
	}

	if msg := checkPrice(f.Price); msg != "" {
		errs[FieldPrice] = msg
	}

	if strings.TrimSpace(f.CategoryID) == "" {
		errs[FieldCategory] = "Category is required"
	}

	if msg := checkImages(f.Images); msg != "" {
		errs[FieldImages] = msg
	}

	return errs
}

func checkPrice(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "Price is required"
	}
	price, err := decimal.NewFromString(raw)
	if err != nil {
		return "Price must be a valid number"
	}
	if !price.IsPositive() {
		return "Price must be greater than 0"
	}
	if price.GreaterThan(maxPrice) {
		return "Price must be less than 1,000,000"
	}
	return ""
}

func checkImages(images []string) string {
	valid := NonBlank(images)
	if len(valid) == 0 {
		return "At least one image URL is required"
	}
	for _, u := range valid {
		// The scheme must be lowercase.
		if !strings.HasPrefix(u, "http://") && !strings.HasPrefix(u, "https://") {
			return "All image URLs must be valid URLs (starting with http:// or https://)"
		}
		if err := validate.Var(u, "http_url"); err != nil {
			return "All image URLs must be valid URLs (starting with http:// or https://)"
		}
	}
	return ""
}

// NonBlank drops blank entries and trims the rest.
func NonBlank(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// ToInput converts a form that passed ValidateProductForm into an API body.
func ToInput(f ProductForm) (models.ProductInput, error) {
	if err := ValidateProductForm(f).Err(); err != nil {
		return models.ProductInput{}, err
	}
	price, _ := decimal.NewFromString(strings.TrimSpace(f.Price))
	return models.ProductInput{
		Name:        strings.TrimSpace(f.Name),
		Description: strings.TrimSpace(f.Description),
		Images:      NonBlank(f.Images),
		Price:       price,
		CategoryID:  strings.TrimSpace(f.CategoryID),
	}, nil
}

// FormFromProduct pre-fills the edit form. An imageless product gets one
// empty image slot.
func FormFromProduct(p models.Product) ProductForm {
	images := append([]string(nil), p.Images...)
	if len(images) == 0 {
		images = []string{""}
	}
	return ProductForm{
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.String(),
		CategoryID:  p.Category.ID,
		Images:      images,
	}
}
