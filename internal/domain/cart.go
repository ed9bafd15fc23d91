package domain

import "github.com/shopspring/decimal"

type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Subtotal is price times quantity for the line
func (c CartItem) Subtotal() decimal.Decimal {
	return c.Product.Price.Mul(decimal.NewFromInt(int64(c.Quantity)))
}

// CartSummary is computed on read and never stored
type CartSummary struct {
	Lines     int             `json:"lines"`
	ItemCount int             `json:"item_count"`
	Total     decimal.Decimal `json:"total"`
}

// Summarize totals a cart
func Summarize(items []CartItem) CartSummary {
	summary := CartSummary{Lines: len(items), Total: decimal.Zero}
	for _, item := range items {
		summary.ItemCount += item.Quantity
		summary.Total = summary.Total.Add(item.Subtotal())
	}
	return summary
}

// FindCartItem returns the index of the line for productID, or -1
func FindCartItem(items []CartItem, productID string) int {
	for i, item := range items {
		if item.Product.ID == productID {
			return i
		}
	}
	return -1
}
