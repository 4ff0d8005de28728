//go:build unit

package checkout_test

import (
	"context"
	"errors"
	"testing"

	"shadow-events-cli/internal/checkout"
	"shadow-events-cli/internal/domain/booking"
	"shadow-events-cli/internal/gateway"
	"shadow-events-cli/internal/gateway/gatewaytest"
	checkoutmock "shadow-events-cli/tests/mock/checkout"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testEventID = "11111111-2222-3333-4444-555555555555"
	testName    = "Asha Rao"
	testEmail   = "asha@example.com"
)

func mustOrder(t *testing.T, id string, amount int64) booking.Order {
	t.Helper()
	order, err := booking.NewOrder(id, amount)
	require.NoError(t, err)
	return order
}

func newOrchestrator(api checkout.BookingAPI, gw gateway.PaymentGateway, observe checkout.Observer) *checkout.Orchestrator {
	return checkout.NewOrchestrator(api, gw, observe, checkout.Options{
		CheckoutKey: "rzp_test_key",
		ThemeColor:  "#319795",
	}, nil)
}

func TestOrchestratorRun(t *testing.T) {
	ctx := context.Background()

	t.Run("success: payment confirmed exactly once", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := checkoutmock.NewMockBookingAPI(ctrl)
		order := mustOrder(t, "order_1", 50000)

		api.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return(order, nil).Times(1)
		api.EXPECT().ConfirmBooking(gomock.Any(), booking.PaymentResult{
			PaymentID: "pay_1",
			OrderID:   "order_1",
			Signature: "sig_1",
		}, testEmail).Return(nil).Times(1)

		var states []checkout.State
		gw := &gatewaytest.Fake{Behavior: gatewaytest.Succeed("pay_1", "sig_1")}
		o := newOrchestrator(api, gw, func(s checkout.Snapshot) { states = append(states, s.State) })

		result, err := o.Run(ctx, testEventID, testName, testEmail)
		require.NoError(t, err)

		assert.Equal(t, checkout.StateConfirmed, result.State)
		assert.Equal(t, "order_1", result.Order.ID())
		require.NotNil(t, result.Payment)
		assert.Equal(t, "pay_1", result.Payment.PaymentID)
		assert.Equal(t, []checkout.State{
			checkout.StateValidating,
			checkout.StateCreatingSession,
			checkout.StateAwaitingPayment,
			checkout.StateConfirming,
			checkout.StateConfirmed,
		}, states)
	})

	t.Run("success: widget options carry the order and prefill", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := checkoutmock.NewMockBookingAPI(ctrl)
		order := mustOrder(t, "order_1", 50000)

		api.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return(order, nil)
		api.EXPECT().ConfirmBooking(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		gw := &gatewaytest.Fake{Behavior: gatewaytest.Succeed("pay_1", "sig_1")}
		o := newOrchestrator(api, gw, nil)

		_, err := o.Run(ctx, testEventID, testName, testEmail)
		require.NoError(t, err)

		assert.Equal(t, "rzp_test_key", gw.LastCheckout.Key)
		assert.Equal(t, int64(50000), gw.LastCheckout.Amount)
		assert.Equal(t, booking.Currency, gw.LastCheckout.Currency)
		assert.Equal(t, "order_1", gw.LastCheckout.OrderID)
		assert.Equal(t, testName, gw.LastCheckout.Prefill.Name)
		assert.Equal(t, testEmail, gw.LastCheckout.Prefill.Email)
	})

	t.Run("duplicate success callback confirms only once", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := checkoutmock.NewMockBookingAPI(ctrl)

		api.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return(mustOrder(t, "order_1", 50000), nil)
		api.EXPECT().ConfirmBooking(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(1)

		gw := &gatewaytest.Fake{Behavior: gatewaytest.Sequence(
			gatewaytest.Succeed("pay_1", "sig_1"),
			gatewaytest.Succeed("pay_1", "sig_1"),
		)}
		o := newOrchestrator(api, gw, nil)

		result, err := o.Run(ctx, testEventID, testName, testEmail)
		require.NoError(t, err)
		assert.Equal(t, checkout.StateConfirmed, result.State)
	})

	t.Run("dismiss cancels the order and never confirms", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := checkoutmock.NewMockBookingAPI(ctrl)

		api.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return(mustOrder(t, "order_1", 50000), nil)
		api.EXPECT().CancelBooking(gomock.Any(), "order_1").Return(nil).Times(1)

		gw := &gatewaytest.Fake{Behavior: gatewaytest.Dismiss()}
		o := newOrchestrator(api, gw, nil)

		result, err := o.Run(ctx, testEventID, testName, testEmail)
		require.ErrorIs(t, err, checkout.ErrPaymentAborted)
		assert.Equal(t, checkout.StateCancelled, result.State)
		assert.Nil(t, result.Payment)
	})

	t.Run("success racing a stray dismiss confirms and never cancels", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := checkoutmock.NewMockBookingAPI(ctrl)

		api.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return(mustOrder(t, "order_1", 50000), nil)
		api.EXPECT().ConfirmBooking(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(1)

		gw := &gatewaytest.Fake{Behavior: gatewaytest.Sequence(
			gatewaytest.Succeed("pay_1", "sig_1"),
			gatewaytest.Dismiss(),
		)}
		o := newOrchestrator(api, gw, nil)

		result, err := o.Run(ctx, testEventID, testName, testEmail)
		require.NoError(t, err)
		assert.Equal(t, checkout.StateConfirmed, result.State)
	})

	t.Run("dismiss racing a stray success cancels and never confirms", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := checkoutmock.NewMockBookingAPI(ctrl)

		api.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return(mustOrder(t, "order_1", 50000), nil)
		api.EXPECT().CancelBooking(gomock.Any(), "order_1").Return(nil).Times(1)

		gw := &gatewaytest.Fake{Behavior: gatewaytest.Sequence(
			gatewaytest.Dismiss(),
			gatewaytest.Succeed("pay_1", "sig_1"),
		)}
		o := newOrchestrator(api, gw, nil)

		result, err := o.Run(ctx, testEventID, testName, testEmail)
		require.ErrorIs(t, err, checkout.ErrPaymentAborted)
		assert.Equal(t, checkout.StateCancelled, result.State)
	})

	t.Run("validation failure performs no network calls", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := checkoutmock.NewMockBookingAPI(ctrl)
		gw := &gatewaytest.Fake{}
		o := newOrchestrator(api, gw, nil)

		result, err := o.Run(ctx, testEventID, testName, "not-an-email")
		require.ErrorIs(t, err, checkout.ErrValidation)
		require.ErrorIs(t, err, booking.ErrInvalidEmail)
		assert.Equal(t, checkout.StateFailed, result.State)
		assert.Zero(t, gw.CreateCalls)
	})

	t.Run("booking create failure never opens the widget", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := checkoutmock.NewMockBookingAPI(ctrl)

		api.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
			Return(booking.Order{}, errors.New("503 service unavailable"))

		gw := &gatewaytest.Fake{}
		o := newOrchestrator(api, gw, nil)

		result, err := o.Run(ctx, testEventID, testName, testEmail)
		require.ErrorIs(t, err, checkout.ErrSessionCreate)
		assert.Equal(t, checkout.StateFailed, result.State)
		assert.Zero(t, gw.CreateCalls)
	})

	t.Run("widget unavailable fails without cancelling the order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := checkoutmock.NewMockBookingAPI(ctrl)

		api.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return(mustOrder(t, "order_1", 50000), nil)

		gw := &gatewaytest.Fake{CreateErr: errors.New("script load failed")}
		o := newOrchestrator(api, gw, nil)

		result, err := o.Run(ctx, testEventID, testName, testEmail)
		require.ErrorIs(t, err, checkout.ErrWidgetUnavailable)
		assert.Equal(t, checkout.StateFailed, result.State)
	})

	t.Run("widget dying mid-session fails without an outcome", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := checkoutmock.NewMockBookingAPI(ctrl)

		api.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return(mustOrder(t, "order_1", 50000), nil)

		gw := &gatewaytest.Fake{OpenErr: errors.New("relay listener closed")}
		o := newOrchestrator(api, gw, nil)

		result, err := o.Run(ctx, testEventID, testName, testEmail)
		require.ErrorIs(t, err, checkout.ErrWidgetUnavailable)
		assert.Equal(t, checkout.StateFailed, result.State)
	})

	t.Run("confirm failure after payment is terminal and keeps the payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := checkoutmock.NewMockBookingAPI(ctrl)

		api.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return(mustOrder(t, "order_1", 50000), nil)
		api.EXPECT().ConfirmBooking(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("signature mismatch")).Times(1)

		gw := &gatewaytest.Fake{Behavior: gatewaytest.Succeed("pay_1", "sig_1")}
		o := newOrchestrator(api, gw, nil)

		result, err := o.Run(ctx, testEventID, testName, testEmail)
		require.ErrorIs(t, err, checkout.ErrConfirmation)
		assert.Equal(t, checkout.StateFailed, result.State)
		require.NotNil(t, result.Payment)
		assert.Equal(t, "pay_1", result.Payment.PaymentID)
	})

	t.Run("cancel failure still ends in cancelled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := checkoutmock.NewMockBookingAPI(ctrl)

		api.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return(mustOrder(t, "order_1", 50000), nil)
		api.EXPECT().CancelBooking(gomock.Any(), "order_1").Return(errors.New("500 internal")).Times(1)

		cancelledSeen := 0
		gw := &gatewaytest.Fake{Behavior: gatewaytest.Dismiss()}
		o := newOrchestrator(api, gw, func(s checkout.Snapshot) {
			if s.State == checkout.StateCancelled {
				cancelledSeen++
			}
		})

		result, err := o.Run(ctx, testEventID, testName, testEmail)
		require.ErrorIs(t, err, checkout.ErrCancellation)
		assert.Equal(t, checkout.StateCancelled, result.State)
		assert.Equal(t, 1, cancelledSeen)
	})

	t.Run("orchestrator instances are single-use", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := checkoutmock.NewMockBookingAPI(ctrl)

		api.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return(mustOrder(t, "order_1", 50000), nil)
		api.EXPECT().ConfirmBooking(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		gw := &gatewaytest.Fake{Behavior: gatewaytest.Succeed("pay_1", "sig_1")}
		o := newOrchestrator(api, gw, nil)

		_, err := o.Run(ctx, testEventID, testName, testEmail)
		require.NoError(t, err)

		_, err = o.Run(ctx, testEventID, testName, testEmail)
		require.ErrorIs(t, err, checkout.ErrAttemptInFlight)
	})

	t.Run("widget closing silently is treated as unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := checkoutmock.NewMockBookingAPI(ctrl)

		api.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return(mustOrder(t, "order_1", 50000), nil)

		gw := &gatewaytest.Fake{} // no behavior: Open returns with no callback fired
		o := newOrchestrator(api, gw, nil)

		result, err := o.Run(ctx, testEventID, testName, testEmail)
		require.ErrorIs(t, err, checkout.ErrWidgetUnavailable)
		assert.Equal(t, checkout.StateFailed, result.State)
	})
}
