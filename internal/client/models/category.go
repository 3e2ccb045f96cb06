package models

import "time"

// Category is a read-only lookup entry used for filters and form selects.
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Image       string    `json:"image"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CategoryRef is the category embedded in a product payload.
type CategoryRef = Category
