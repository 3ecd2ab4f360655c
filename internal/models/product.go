package models

import "github.com/shopspring/decimal"

// Product represents an item in the catalog. The ID is assigned by the store
// on creation and never changes afterwards. Price is kept as an exact decimal
// so monetary values survive round-trips without floating-point drift; it
// serializes as a JSON string.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Available   bool            `json:"available"`
	Category    Category        `json:"category"`
}
