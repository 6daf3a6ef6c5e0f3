package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus represents the lifecycle state of an order
type OrderStatus string

const (
	StatusOpen   OrderStatus = "open"
	StatusBilled OrderStatus = "billed"
	StatusPaid   OrderStatus = "paid"
)

// BillLine is one priced row of a bill
type BillLine struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

// Bill is a snapshot of an order's charges, derived on demand from the
// order's current lines and never stored. Total carries the exact
// decimal sum; rounding to two places happens only at presentation.
type Bill struct {
	CustomerName string          `json:"customer_name"`
	OrderedAt    time.Time       `json:"ordered_at"`
	GeneratedAt  time.Time       `json:"generated_at"`
	Lines        []BillLine      `json:"lines"`
	Total        decimal.Decimal `json:"total"`
}
