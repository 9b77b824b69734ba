package model

import (
	"github.com/shopspring/decimal"

	"listinha/internal/catalog"
)

func init() {
	// Entries persist as plain JSON numbers, matching the stored document
	// shape (`"price": 2.5`, not `"price": "2.5"`).
	decimal.MarshalJSONWithoutQuotes = true
}

// Entry is one line of the active shopping list, distinct from the catalog
// template it may have been created from.
type Entry struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Unit      catalog.Unit    `json:"unit"`
	Icon      string          `json:"icon,omitempty"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Purchased bool            `json:"purchased"`
}

// LineTotal is quantity × unit price.
func (e Entry) LineTotal() decimal.Decimal {
	return e.Price.Mul(decimal.NewFromInt(int64(e.Quantity)))
}
