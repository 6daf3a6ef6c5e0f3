package payment

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrNegativeAmount is returned for payments below zero. A zero
	// amount is legal and means nothing is owed.
	ErrNegativeAmount = errors.New("payment amount must not be negative")

	// ErrAlreadySettled is returned when Process is called on a record
	// that has already been settled.
	ErrAlreadySettled = errors.New("payment already settled")
)

// Method is the closed set of supported payment methods. Input outside
// the canonical set maps to MethodOther, keeping the caller's wording
// in the record's detail.
type Method string

const (
	MethodCash          Method = "cash"
	MethodCreditCard    Method = "credit_card"
	MethodMobilePayment Method = "mobile_payment"
	MethodOther         Method = "other"
)

// ParseMethod maps free-text input to a Method, case-insensitively and
// ignoring spaces, so "Credit Card" and "creditcard" both resolve.
func ParseMethod(input string) Method {
	switch strings.ToLower(strings.ReplaceAll(strings.TrimSpace(input), " ", "")) {
	case "cash":
		return MethodCash
	case "creditcard", "card":
		return MethodCreditCard
	case "mobilepayment", "mobile":
		return MethodMobilePayment
	default:
		return MethodOther
	}
}

// Record is the settlement of one bill total. It has no further
// lifecycle: no refunds, no partial payments.
type Record struct {
	ID     uuid.UUID
	Amount decimal.Decimal
	Method Method

	// Detail keeps the caller's verbatim method wording. For canonical
	// methods it holds the display name.
	Detail string

	settled   bool
	settledAt time.Time
}

// New creates an unsettled record for the given amount and free-text
// method input.
func New(amount decimal.Decimal, methodInput string) (*Record, error) {
	if amount.IsNegative() {
		return nil, fmt.Errorf("%w: %s", ErrNegativeAmount, amount.StringFixed(2))
	}

	method := ParseMethod(methodInput)
	detail := strings.TrimSpace(methodInput)
	switch method {
	case MethodCash:
		detail = "Cash"
	case MethodCreditCard:
		detail = "Credit Card"
	case MethodMobilePayment:
		detail = "Mobile Payment"
	}

	return &Record{
		ID:     uuid.New(),
		Amount: amount,
		Method: method,
		Detail: detail,
	}, nil
}

// Process settles the record exactly once and returns a confirmation
// message. A second call fails with ErrAlreadySettled.
func (r *Record) Process() (string, error) {
	if r.settled {
		return "", ErrAlreadySettled
	}
	r.settled = true
	r.settledAt = time.Now()
	return fmt.Sprintf("Payment of $%s received via %s.", r.Amount.StringFixed(2), r.Detail), nil
}

// Settled reports whether the record has been processed.
func (r *Record) Settled() bool {
	return r.settled
}

// SettledAt returns the settlement time, zero if unsettled.
func (r *Record) SettledAt() time.Time {
	return r.settledAt
}
