package menu

import "errors"

var (
	// ErrInsufficientStock is returned when a reservation asks for more
	// than the entry's live stock. The stock counter is left unchanged.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrInvalidQuantity is returned for non-positive quantities.
	ErrInvalidQuantity = errors.New("quantity must be greater than 0")
)
