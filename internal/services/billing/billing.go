package billing

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"restaurant-pos/internal/models"
	"restaurant-pos/internal/services/order"
)

// GenerateBill derives a bill from the order's current lines. It is a
// pure computation: no caching, no stock mutation, recomputed fresh on
// every call. Subtotals and the total accumulate exact decimals;
// rounding to two places happens only in Format.
func GenerateBill(o *order.Order) *models.Bill {
	bill := &models.Bill{
		CustomerName: o.CustomerName,
		OrderedAt:    o.CreatedAt,
		GeneratedAt:  time.Now(),
		Total:        decimal.Zero,
	}

	for _, line := range o.Lines() {
		subtotal := line.Entry.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity)))
		bill.Lines = append(bill.Lines, models.BillLine{
			Name:     line.Entry.Name,
			Quantity: line.Quantity,
			Subtotal: subtotal,
		})
		bill.Total = bill.Total.Add(subtotal)
	}

	return bill
}

// Format renders the bill for display, rounding each amount to two
// decimal places. currency is the symbol prefix, e.g. "$".
func Format(b *models.Bill, currency string) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Order for %s\n", b.CustomerName)
	fmt.Fprintf(&sb, "Order time: %s\n", b.OrderedAt.Format("2006-01-02 15:04:05"))

	if len(b.Lines) == 0 {
		sb.WriteString("No items in the order.\n")
	}
	for _, line := range b.Lines {
		fmt.Fprintf(&sb, "%s x %d = %s%s\n", line.Name, line.Quantity, currency, line.Subtotal.StringFixed(2))
	}

	fmt.Fprintf(&sb, "Total Bill: %s%s", currency, b.Total.StringFixed(2))
	return sb.String()
}
