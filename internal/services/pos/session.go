package pos

import (
	"fmt"

	"restaurant-pos/internal/logger"
	"restaurant-pos/internal/models"
	"restaurant-pos/internal/services/billing"
	"restaurant-pos/internal/services/menu"
	"restaurant-pos/internal/services/order"
	"restaurant-pos/internal/services/payment"
)

// Session drives one customer's visit against a shared catalog. Both
// the prompt loop and the web form UI operate through it, so the
// domain packages never see the drivers.
type Session struct {
	log     *logger.Logger
	catalog *menu.Catalog

	Order    *order.Order
	LastBill *models.Bill
	Payment  *payment.Record
}

// NewSession opens an order for customerName against catalog.
func NewSession(catalog *menu.Catalog, customerName string, log *logger.Logger) *Session {
	s := &Session{
		log:     log,
		catalog: catalog,
		Order:   order.New(customerName),
	}
	s.log.Info("session_started", s.Order.ID.String(), fmt.Sprintf("Session started for %s", customerName))
	return s
}

// Catalog exposes the shared catalog for menu display.
func (s *Session) Catalog() *menu.Catalog {
	return s.catalog
}

// AddItem adds quantity of itemName to the order, reserving stock.
func (s *Session) AddItem(itemName string, quantity int) (*models.LineItem, error) {
	line, err := s.Order.AddItem(s.catalog, itemName, quantity)
	if err != nil {
		s.log.Debug("add_item_rejected", s.Order.ID.String(), fmt.Sprintf("%s x %d: %v", itemName, quantity, err))
		return nil, err
	}
	s.log.Info("item_added", s.Order.ID.String(), fmt.Sprintf("%d x %s added", quantity, line.Entry.Name))
	return line, nil
}

// CancelItem removes the first matching line and returns stock.
func (s *Session) CancelItem(itemName string) (int, error) {
	released, err := s.Order.CancelItem(s.catalog, itemName)
	if err != nil {
		s.log.Debug("cancel_item_rejected", s.Order.ID.String(), fmt.Sprintf("%s: %v", itemName, err))
		return 0, err
	}
	s.log.Info("item_cancelled", s.Order.ID.String(), fmt.Sprintf("%s x %d cancelled", itemName, released))
	return released, nil
}

// GenerateBill derives a fresh bill from the order's current lines,
// marks the order billed and keeps the bill for the payment step.
func (s *Session) GenerateBill() *models.Bill {
	bill := billing.GenerateBill(s.Order)
	s.Order.MarkBilled()
	s.LastBill = bill
	s.log.Info("bill_generated", s.Order.ID.String(), fmt.Sprintf("Total %s", bill.Total.StringFixed(2)))
	return bill
}

// Pay settles the last generated bill with the given free-text method
// and closes the order. It fails if no bill has been generated yet.
func (s *Session) Pay(methodInput string) (*payment.Record, string, error) {
	if s.LastBill == nil {
		return nil, "", order.ErrNotBilled
	}
	if s.Order.Status() == models.StatusPaid {
		return nil, "", order.ErrOrderClosed
	}

	record, err := payment.New(s.LastBill.Total, methodInput)
	if err != nil {
		return nil, "", err
	}

	confirmation, err := record.Process()
	if err != nil {
		return nil, "", err
	}

	if err := s.Order.MarkPaid(); err != nil {
		return nil, "", err
	}

	s.Payment = record
	s.log.Info("payment_processed", s.Order.ID.String(), confirmation)
	return record, confirmation, nil
}
