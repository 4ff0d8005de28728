package cli

import (
	"errors"
	"fmt"
	"io"

	"shadow-events-cli/internal/checkout"
	"shadow-events-cli/internal/gateway/relay"

	"github.com/spf13/cobra"
)

func (a *App) newBookCmd() *cobra.Command {
	var eventID, name, email string

	cmd := &cobra.Command{
		Use:   "book",
		Short: "Book a ticket and pay through the hosted checkout",
		Long: "Creates a pending booking, opens the hosted payment page in your " +
			"browser, and confirms or cancels the booking with the backend " +
			"depending on how the checkout ends.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := a.authedClient()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			gw := relay.New(a.cfg.Checkout.RelayAddr, nil, a.logger)
			orchestrator := checkout.NewOrchestrator(client, gw, progressObserver(out), checkout.Options{
				CheckoutKey: a.cfg.Checkout.Key,
				ThemeColor:  a.cfg.Checkout.ThemeColor,
			}, a.logger)

			result, err := orchestrator.Run(cmd.Context(), eventID, name, email)
			return reportOutcome(out, result, err)
		},
	}

	cmd.Flags().StringVar(&eventID, "event", "", "id of the event to book")
	cmd.Flags().StringVar(&name, "name", "", "attendee name")
	cmd.Flags().StringVar(&email, "email", "", "attendee email")
	_ = cmd.MarkFlagRequired("event")
	return cmd
}

func progressObserver(out io.Writer) checkout.Observer {
	return func(snap checkout.Snapshot) {
		switch snap.State {
		case checkout.StateCreatingSession:
			fmt.Fprintln(out, "Creating booking order…")
		case checkout.StateAwaitingPayment:
			fmt.Fprintln(out, "Waiting for payment in your browser…")
		case checkout.StateConfirming:
			if snap.Payment != nil {
				fmt.Fprintf(out, "Confirming your payment, please wait… (payment id %s)\n", snap.Payment.PaymentID)
			} else {
				fmt.Fprintln(out, "Confirming your payment, please wait…")
			}
		}
	}
}

// reportOutcome maps the orchestrator's error taxonomy to user messaging. The
// confirm-after-payment failure gets its own wording because money has
// already moved; retrying would be the wrong advice.
func reportOutcome(out io.Writer, result checkout.Result, err error) error {
	if err == nil {
		fmt.Fprintln(out, "Payment successful. Booking confirmed. Check your email for the ticket.")
		return nil
	}

	switch {
	case errors.Is(err, checkout.ErrValidation):
		return errors.New("please provide both --name and a valid --email to proceed")
	case errors.Is(err, checkout.ErrSessionCreate):
		return fmt.Errorf("booking failed: %w", err)
	case errors.Is(err, checkout.ErrWidgetUnavailable):
		return fmt.Errorf("checkout could not be opened: %w", err)
	case errors.Is(err, checkout.ErrConfirmation):
		fmt.Fprintln(out, "Your payment went through, but confirming the booking failed.")
		if result.Payment != nil {
			fmt.Fprintf(out, "Keep this payment id for support: %s\n", result.Payment.PaymentID)
		}
		return errors.New("booking requires manual follow-up; do not pay again")
	case errors.Is(err, checkout.ErrPaymentAborted):
		fmt.Fprintln(out, "Payment cancelled. Your booking was cancelled.")
		return nil
	case errors.Is(err, checkout.ErrCancellation):
		fmt.Fprintln(out, "Payment cancelled, but releasing the booking failed; it will be reconciled server-side.")
		return nil
	default:
		return err
	}
}
