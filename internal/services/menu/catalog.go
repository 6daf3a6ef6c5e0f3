package menu

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"restaurant-pos/internal/models"
)

// Catalog holds the purchasable entries for one simulated restaurant.
// It is passed explicitly into order operations rather than living as
// process-wide state, so independent sessions can run side by side.
type Catalog struct {
	entries []*models.MenuEntry
}

// NewCatalog builds a catalog preserving the given insertion order.
func NewCatalog(entries ...*models.MenuEntry) *Catalog {
	return &Catalog{entries: entries}
}

// DefaultCatalog returns the sample menu the simulator starts with.
func DefaultCatalog() *Catalog {
	return NewCatalog(
		&models.MenuEntry{Name: "Burger", UnitPrice: decimal.NewFromFloat(5.99), Stock: 10},
		&models.MenuEntry{Name: "Pizza", UnitPrice: decimal.NewFromFloat(8.99), Stock: 5},
		&models.MenuEntry{Name: "Fries", UnitPrice: decimal.NewFromFloat(2.99), Stock: 20},
		&models.MenuEntry{Name: "Coke", UnitPrice: decimal.NewFromFloat(1.50), Stock: 15},
	)
}

// Find looks an entry up by name, case-insensitively. A miss is not an
// error; the second return value reports whether the entry exists.
func (c *Catalog) Find(name string) (*models.MenuEntry, bool) {
	for _, entry := range c.entries {
		if strings.EqualFold(entry.Name, name) {
			return entry, true
		}
	}
	return nil, false
}

// Entries returns the catalog in insertion order for display.
func (c *Catalog) Entries() []*models.MenuEntry {
	out := make([]*models.MenuEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Reserve decrements the entry's stock by quantity, backing a new line
// item. On failure the stock counter is untouched.
func (c *Catalog) Reserve(entry *models.MenuEntry, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if entry.Stock < quantity {
		return fmt.Errorf("%w: %s has %d left, requested %d", ErrInsufficientStock, entry.Name, entry.Stock, quantity)
	}
	entry.Stock -= quantity
	return nil
}

// Release returns a previously reserved quantity to the entry's stock.
// Callers must only release quantities reserved from the same entry;
// there is no upper bound check.
func (c *Catalog) Release(entry *models.MenuEntry, quantity int) {
	entry.Stock += quantity
}
