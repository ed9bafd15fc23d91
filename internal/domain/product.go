package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category is the closed set of product categories
type Category string

const (
	CategoryAll         Category = "" // no filter
	CategoryElectronics Category = "Electronics"
	CategoryClothes     Category = "Clothes"
	CategoryBooks       Category = "Books"
	CategoryOthers      Category = "Others"
)

// Categories returns the selectable categories in display order
func Categories() []Category {
	return []Category{CategoryElectronics, CategoryClothes, CategoryBooks, CategoryOthers}
}

// Valid reports whether c is one of the product categories
func (c Category) Valid() bool {
	switch c {
	case CategoryElectronics, CategoryClothes, CategoryBooks, CategoryOthers:
		return true
	}
	return false
}

type Product struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    Category        `json:"category"`
	Image       string          `json:"image"`
	Images      []string        `json:"images,omitempty"`
	SellerID    string          `json:"seller_id"`
	SellerName  string          `json:"seller_name"`
	CreatedAt   time.Time       `json:"created_at"`
	Featured    bool            `json:"featured,omitempty"`
}
