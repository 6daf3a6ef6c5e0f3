package order

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"restaurant-pos/internal/models"
	"restaurant-pos/internal/services/menu"
)

// Order is the open tab for one customer. It owns its line items and
// mutates catalog stock through Reserve/Release as lines come and go,
// keeping stock + reserved quantities conserved per entry.
//
// Lifecycle: open -> billed -> paid. Adds and cancels stay allowed
// while billed (the bill is simply regenerated), but a paid order
// rejects further mutation.
type Order struct {
	ID           uuid.UUID
	CustomerName string
	CreatedAt    time.Time

	status models.OrderStatus
	lines  []models.LineItem
}

// New opens an order for the given customer.
func New(customerName string) *Order {
	return &Order{
		ID:           uuid.New(),
		CustomerName: customerName,
		CreatedAt:    time.Now(),
		status:       models.StatusOpen,
	}
}

// AddItem resolves itemName against the catalog, reserves quantity from
// its stock and appends a new line item. Repeated adds of the same name
// create independent lines rather than merging quantities.
//
// Failures are typed: menu.ErrInvalidQuantity for quantity <= 0,
// ErrNotFound for an unknown name, menu.ErrInsufficientStock when the
// reservation fails. A failed reservation never produces a line.
func (o *Order) AddItem(catalog *menu.Catalog, itemName string, quantity int) (*models.LineItem, error) {
	if o.status == models.StatusPaid {
		return nil, ErrOrderClosed
	}
	if quantity <= 0 {
		return nil, menu.ErrInvalidQuantity
	}

	entry, ok := catalog.Find(itemName)
	if !ok {
		return nil, ErrNotFound
	}

	if err := catalog.Reserve(entry, quantity); err != nil {
		return nil, err
	}

	o.lines = append(o.lines, models.LineItem{Entry: entry, Quantity: quantity})
	return &o.lines[len(o.lines)-1], nil
}

// CancelItem removes the first line whose entry name matches itemName
// case-insensitively, releases exactly that line's quantity back to
// stock and returns the released quantity. Only one line is removed
// even when several lines share the name.
func (o *Order) CancelItem(catalog *menu.Catalog, itemName string) (int, error) {
	if o.status == models.StatusPaid {
		return 0, ErrOrderClosed
	}

	for i, line := range o.lines {
		if strings.EqualFold(line.Entry.Name, itemName) {
			catalog.Release(line.Entry, line.Quantity)
			o.lines = append(o.lines[:i], o.lines[i+1:]...)
			return line.Quantity, nil
		}
	}
	return 0, ErrNotFound
}

// Lines returns a read-only copy of the current line items.
func (o *Order) Lines() []models.LineItem {
	out := make([]models.LineItem, len(o.lines))
	copy(out, o.lines)
	return out
}

// Status reports the order's lifecycle state.
func (o *Order) Status() models.OrderStatus {
	return o.status
}

// MarkBilled records that a bill has been generated. Billing an
// already-paid order is a no-op.
func (o *Order) MarkBilled() {
	if o.status == models.StatusOpen {
		o.status = models.StatusBilled
	}
}

// MarkPaid closes the order after a successful payment. The order must
// have been billed first.
func (o *Order) MarkPaid() error {
	switch o.status {
	case models.StatusPaid:
		return ErrOrderClosed
	case models.StatusOpen:
		return ErrNotBilled
	}
	o.status = models.StatusPaid
	return nil
}
