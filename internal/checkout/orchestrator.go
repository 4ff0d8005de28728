// Package checkout drives the lifecycle of a single booking attempt: create a
// pending booking, surface the hosted payment widget, and guarantee the
// resulting order reaches exactly one terminal outcome with the backend.
package checkout

import (
	"context"
	"log/slog"
	"sync"

	"shadow-events-cli/internal/domain/booking"
	"shadow-events-cli/internal/gateway"
	"shadow-events-cli/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	// ErrValidation: bad attendee input, no network call was attempted.
	ErrValidation = errs.New("booking input validation failed")
	// ErrSessionCreate: the booking-create call failed, no widget was opened.
	ErrSessionCreate = errs.New("booking session create failed")
	// ErrWidgetUnavailable: the payment widget could not be surfaced.
	ErrWidgetUnavailable = errs.New("payment widget unavailable")
	// ErrConfirmation: payment succeeded but the confirm call failed. The
	// user must be told to seek manual follow-up, not to retry.
	ErrConfirmation = errs.New("booking confirmation failed after payment")
	// ErrCancellation: the user aborted and the cancel call itself failed.
	ErrCancellation = errs.New("booking cancellation failed")
	// ErrPaymentAborted: the user aborted and the order was cancelled.
	ErrPaymentAborted = errs.New("payment aborted by user")
	// ErrAttemptInFlight: the orchestrator instance was already used.
	ErrAttemptInFlight = errs.New("checkout attempt already in flight")
)

// BookingAPI is the remote booking endpoint surface the orchestrator drives.
type BookingAPI interface {
	CreateBooking(ctx context.Context, attempt booking.Attempt) (booking.Order, error)
	ConfirmBooking(ctx context.Context, payment booking.PaymentResult, attendeeEmail string) error
	CancelBooking(ctx context.Context, orderID string) error
}

// Snapshot is handed to the observer on every state transition.
type Snapshot struct {
	AttemptID uuid.UUID
	State     State
	Order     booking.Order
	Payment   *booking.PaymentResult
	Err       error
}

// Observer receives every state transition, decoupling the state machine from
// any presentation layer.
type Observer func(Snapshot)

// Result is the terminal outcome of one attempt.
type Result struct {
	State   State
	Order   booking.Order
	Payment *booking.PaymentResult
}

// Options carry the widget branding the orchestrator passes through to the
// gateway untouched.
type Options struct {
	CheckoutKey string
	MerchantLbl string
	Description string
	ThemeColor  string
}

type outcome struct {
	payment   *booking.PaymentResult
	dismissed bool
}

// Orchestrator sequences create → pay → confirm/cancel for exactly one
// attempt. Instances are single-use; a second Run returns ErrAttemptInFlight.
type Orchestrator struct {
	api     BookingAPI
	gateway gateway.PaymentGateway
	observe Observer
	opts    Options
	logger  *slog.Logger

	mu        sync.Mutex
	attemptID uuid.UUID
	state     State
	order     booking.Order
	payment   *booking.PaymentResult
	outcomeCh chan outcome
}

func NewOrchestrator(api BookingAPI, gw gateway.PaymentGateway, observe Observer, opts Options, logger *slog.Logger) *Orchestrator {
	if observe == nil {
		observe = func(Snapshot) {}
	}
	if logger == nil {
		logger = slog.Default()
	}
	if opts.MerchantLbl == "" {
		opts.MerchantLbl = "Event Booking"
	}
	if opts.Description == "" {
		opts.Description = "Ticket Purchase"
	}
	return &Orchestrator{
		api:       api,
		gateway:   gw,
		observe:   observe,
		opts:      opts,
		logger:    logger,
		attemptID: uuid.New(),
		state:     StateIdle,
		outcomeCh: make(chan outcome, 1),
	}
}

// Run executes one checkout attempt to its terminal state. It blocks while
// the widget is open; during that window the orchestrator performs no polling
// and reacts only to widget callbacks.
func (o *Orchestrator) Run(ctx context.Context, eventID, attendeeName, attendeeEmail string) (Result, error) {
	o.mu.Lock()
	if o.state != StateIdle {
		o.mu.Unlock()
		return o.result(), ErrAttemptInFlight
	}
	o.state = StateValidating
	snap := o.snapshotLocked(nil)
	o.mu.Unlock()
	o.observe(snap)

	attempt, err := booking.NewAttempt(eventID, attendeeName, attendeeEmail)
	if err != nil {
		return o.fail(errs.Mark(err, ErrValidation))
	}

	o.transition(StateCreatingSession, nil)
	order, err := o.api.CreateBooking(ctx, attempt)
	if err != nil {
		return o.fail(errs.Mark(err, ErrSessionCreate))
	}
	o.setOrder(order)
	o.logger.Debug("booking order created",
		"attempt_id", o.attemptID.String(), "order_id", order.ID(), "amount", order.Amount())

	session, err := o.gateway.CreateSession(ctx, o.checkoutFor(attempt, order), o.callbacks())
	if err != nil {
		return o.fail(errs.Mark(err, ErrWidgetUnavailable))
	}

	o.transition(StateAwaitingPayment, nil)
	if err := session.Open(ctx); err != nil {
		o.mu.Lock()
		interrupted := o.state == StateAwaitingPayment
		o.mu.Unlock()
		if interrupted {
			// The widget went away without reporting success or
			// dismissal; the client cannot know the outcome.
			return o.fail(errs.Mark(err, ErrWidgetUnavailable))
		}
	}

	out, ok := o.takeOutcome()
	if !ok {
		return o.fail(errs.Mark(errs.New("widget closed without reporting an outcome"), ErrWidgetUnavailable))
	}
	if out.dismissed {
		return o.cancelOrder(ctx, order)
	}
	return o.confirmPayment(ctx, attempt, *out.payment)
}

func (o *Orchestrator) confirmPayment(ctx context.Context, attempt booking.Attempt, payment booking.PaymentResult) (Result, error) {
	if err := o.api.ConfirmBooking(ctx, payment, attempt.AttendeeEmail()); err != nil {
		marked := errs.Mark(err, ErrConfirmation)
		o.transition(StateFailed, marked)
		return o.result(), marked
	}
	o.transition(StateConfirmed, nil)
	o.logger.Info("booking confirmed",
		"attempt_id", o.attemptID.String(), "order_id", payment.OrderID, "payment_id", payment.PaymentID)
	return o.result(), nil
}

func (o *Orchestrator) cancelOrder(ctx context.Context, order booking.Order) (Result, error) {
	// The user already aborted; the dismiss callback moved the attempt to
	// Cancelled and notified the observer, so no further transition happens
	// here. A failed cancel call is reported, never retried automatically.
	if err := o.api.CancelBooking(ctx, order.ID()); err != nil {
		o.logger.Warn("booking cancel call failed",
			"attempt_id", o.attemptID.String(), "order_id", order.ID(), "error", err)
		return o.result(), errs.Mark(err, ErrCancellation)
	}
	return o.result(), ErrPaymentAborted
}

// callbacks returns the guarded widget callbacks. A callback arriving once
// the attempt has left AwaitingPayment is ignored, which covers both
// duplicate invocation and a stray dismiss racing a slow confirm.
func (o *Orchestrator) callbacks() gateway.Callbacks {
	return gateway.Callbacks{
		OnSuccess: func(p booking.PaymentResult) {
			o.mu.Lock()
			if o.state != StateAwaitingPayment {
				state := o.state
				o.mu.Unlock()
				o.logger.Warn("ignoring payment success callback outside awaiting_payment",
					"attempt_id", o.attemptID.String(), "state", state.String())
				return
			}
			o.state = StateConfirming
			o.payment = &p
			snap := o.snapshotLocked(nil)
			o.mu.Unlock()
			o.observe(snap)
			o.outcomeCh <- outcome{payment: &p}
		},
		OnDismiss: func() {
			o.mu.Lock()
			if o.state != StateAwaitingPayment {
				state := o.state
				o.mu.Unlock()
				o.logger.Warn("ignoring widget dismiss callback outside awaiting_payment",
					"attempt_id", o.attemptID.String(), "state", state.String())
				return
			}
			o.state = StateCancelled
			snap := o.snapshotLocked(nil)
			o.mu.Unlock()
			o.observe(snap)
			o.outcomeCh <- outcome{dismissed: true}
		},
	}
}

func (o *Orchestrator) takeOutcome() (outcome, bool) {
	select {
	case out := <-o.outcomeCh:
		return out, true
	default:
		return outcome{}, false
	}
}

func (o *Orchestrator) checkoutFor(attempt booking.Attempt, order booking.Order) gateway.Checkout {
	return gateway.Checkout{
		Key:         o.opts.CheckoutKey,
		Amount:      order.Amount(),
		Currency:    booking.Currency,
		Name:        o.opts.MerchantLbl,
		Description: o.opts.Description,
		OrderID:     order.ID(),
		Prefill: gateway.Prefill{
			Name:  attempt.AttendeeName(),
			Email: attempt.AttendeeEmail(),
		},
		ThemeColor: o.opts.ThemeColor,
	}
}

func (o *Orchestrator) fail(err error) (Result, error) {
	o.transition(StateFailed, err)
	return o.result(), err
}

func (o *Orchestrator) transition(next State, err error) {
	o.mu.Lock()
	o.state = next
	snap := o.snapshotLocked(err)
	o.mu.Unlock()
	o.logger.Debug("checkout state transition",
		"attempt_id", o.attemptID.String(), "state", next.String())
	o.observe(snap)
}

func (o *Orchestrator) setOrder(order booking.Order) {
	o.mu.Lock()
	o.order = order
	o.mu.Unlock()
}

func (o *Orchestrator) snapshotLocked(err error) Snapshot {
	return Snapshot{
		AttemptID: o.attemptID,
		State:     o.state,
		Order:     o.order,
		Payment:   o.payment,
		Err:       err,
	}
}

func (o *Orchestrator) result() Result {
	o.mu.Lock()
	defer o.mu.Unlock()
	return Result{
		State:   o.state,
		Order:   o.order,
		Payment: o.payment,
	}
}
