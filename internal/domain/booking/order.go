package booking

import (
	"encoding/json"
	"errors"
)

// Currency is the only currency the checkout widget is configured with.
const Currency = "INR"

var (
	ErrEmptyOrderID    = errors.New("order id is required")
	ErrInvalidAmount   = errors.New("order amount must be positive")
	ErrMalformedOrder  = errors.New("malformed order descriptor")
	ErrCurrencyUnknown = errors.New("unsupported order currency")
)

// Order is the server-issued payment order tied to an Attempt. Exactly one
// Order exists per Attempt, and once created it must reach exactly one
// terminal outcome: confirmed or cancelled.
type Order struct {
	id     string
	amount int64
}

func NewOrder(id string, amount int64) (Order, error) {
	if id == "" {
		return Order{}, ErrEmptyOrderID
	}
	if amount <= 0 {
		return Order{}, ErrInvalidAmount
	}
	return Order{id: id, amount: amount}, nil
}

// ParseOrder decodes the JSON order descriptor the booking-create endpoint
// returns inside its string "data" field.
func ParseOrder(data string) (Order, error) {
	var descriptor struct {
		ID       string `json:"id"`
		Amount   int64  `json:"amount"`
		Currency string `json:"currency"`
	}
	if err := json.Unmarshal([]byte(data), &descriptor); err != nil {
		return Order{}, ErrMalformedOrder
	}
	if descriptor.Currency != "" && descriptor.Currency != Currency {
		return Order{}, ErrCurrencyUnknown
	}
	return NewOrder(descriptor.ID, descriptor.Amount)
}

func (o Order) ID() string {
	return o.id
}

// Amount in minor currency units.
func (o Order) Amount() int64 {
	return o.amount
}

// PaymentResult is the payload the checkout widget hands back on a completed
// payment.
type PaymentResult struct {
	PaymentID string
	OrderID   string
	Signature string
}
