// Package gateway defines the port to the hosted payment widget. The real
// implementation lives in gateway/relay; tests use gatewaytest.Fake.
package gateway

import (
	"context"

	"shadow-events-cli/internal/domain/booking"
)

// Checkout carries the options the hosted widget is instantiated with.
type Checkout struct {
	Key         string
	Amount      int64
	Currency    string
	Name        string
	Description string
	OrderID     string
	Prefill     Prefill
	ThemeColor  string
}

type Prefill struct {
	Name  string
	Email string
}

// Callbacks are invoked by the widget. For one opened session they are
// mutually exclusive and each fires at most once.
type Callbacks struct {
	// OnSuccess receives the widget's payment confirmation payload.
	OnSuccess func(booking.PaymentResult)
	// OnDismiss fires when the user closes the widget without paying.
	OnDismiss func()
}

// Session is one surfaced checkout widget.
type Session interface {
	// Open presents the widget and blocks until one callback has been
	// delivered or ctx is done. It performs no polling.
	Open(ctx context.Context) error
}

type PaymentGateway interface {
	CreateSession(ctx context.Context, checkout Checkout, callbacks Callbacks) (Session, error)
}
