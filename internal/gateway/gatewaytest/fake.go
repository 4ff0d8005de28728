// Package gatewaytest provides a deterministic PaymentGateway for tests: the
// widget interaction is replaced by a scripted behavior run while the session
// is open.
package gatewaytest

import (
	"context"

	"shadow-events-cli/internal/domain/booking"
	"shadow-events-cli/internal/gateway"
)

// Behavior synthesizes the widget's callbacks for one opened session.
type Behavior func(checkout gateway.Checkout, callbacks gateway.Callbacks)

// Succeed reports a completed payment for the session's order.
func Succeed(paymentID, signature string) Behavior {
	return func(checkout gateway.Checkout, callbacks gateway.Callbacks) {
		callbacks.OnSuccess(booking.PaymentResult{
			PaymentID: paymentID,
			OrderID:   checkout.OrderID,
			Signature: signature,
		})
	}
}

// Dismiss closes the widget without paying.
func Dismiss() Behavior {
	return func(_ gateway.Checkout, callbacks gateway.Callbacks) {
		callbacks.OnDismiss()
	}
}

// Sequence runs several behaviors in order, for duplicate-callback and
// race-replay scenarios.
func Sequence(behaviors ...Behavior) Behavior {
	return func(checkout gateway.Checkout, callbacks gateway.Callbacks) {
		for _, b := range behaviors {
			b(checkout, callbacks)
		}
	}
}

type Fake struct {
	Behavior  Behavior
	CreateErr error
	OpenErr   error

	// Recorded for assertions.
	LastCheckout gateway.Checkout
	CreateCalls  int
	OpenCalls    int
}

func (f *Fake) CreateSession(_ context.Context, checkout gateway.Checkout, callbacks gateway.Callbacks) (gateway.Session, error) {
	f.CreateCalls++
	f.LastCheckout = checkout
	if f.CreateErr != nil {
		return nil, f.CreateErr
	}
	return &fakeSession{fake: f, checkout: checkout, callbacks: callbacks}, nil
}

type fakeSession struct {
	fake      *Fake
	checkout  gateway.Checkout
	callbacks gateway.Callbacks
}

func (s *fakeSession) Open(_ context.Context) error {
	s.fake.OpenCalls++
	if s.fake.OpenErr != nil {
		return s.fake.OpenErr
	}
	if s.fake.Behavior != nil {
		s.fake.Behavior(s.checkout, s.callbacks)
	}
	return nil
}
