package order

import "errors"

var (
	// ErrNotFound is returned when an item name is not in the catalog,
	// or when a cancellation target is not present in the order.
	ErrNotFound = errors.New("item not found")

	// ErrOrderClosed is returned for add/cancel attempts after payment.
	ErrOrderClosed = errors.New("order is already paid")

	// ErrNotBilled is returned when an order is marked paid before a
	// bill has been generated for it.
	ErrNotBilled = errors.New("order has no bill yet")
)
