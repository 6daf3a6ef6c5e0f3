package models

import "github.com/shopspring/decimal"

// MenuEntry represents a purchasable item and its live stock counter.
// Stock must only be mutated through the catalog's Reserve and Release
// operations so that reserved line quantities stay conserved.
type MenuEntry struct {
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Stock     int             `json:"stock"`
}

// LineItem is one (menu entry, quantity) pair within an order. Each line
// is independent of other lines, even for the same entry. A line exists
// only while its quantity is reserved against the entry's stock.
type LineItem struct {
	Entry    *MenuEntry `json:"entry"`
	Quantity int        `json:"quantity"`
}
