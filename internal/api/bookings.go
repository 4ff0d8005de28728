package api

import (
	"context"

	"shadow-events-cli/internal/api/dto/request"
	"shadow-events-cli/internal/api/dto/response"
	"shadow-events-cli/internal/domain/booking"
	"shadow-events-cli/internal/pkg/errs"
)

// CreateBooking registers a pending booking and returns the payment order the
// checkout widget must be opened with. Satisfies checkout.BookingAPI.
func (c *Client) CreateBooking(ctx context.Context, attempt booking.Attempt) (booking.Order, error) {
	var resp response.CreateBookingResponse
	err := c.post(ctx, "/bookings/create", request.CreateBookingRequest{
		EventID:       attempt.EventID(),
		AttendeeName:  attempt.AttendeeName(),
		AttendeeEmail: attempt.AttendeeEmail(),
	}, &resp)
	if err != nil {
		return booking.Order{}, err
	}

	order, err := booking.ParseOrder(resp.Data)
	if err != nil {
		return booking.Order{}, errs.Wrap(err, "booking-create returned an unusable order descriptor")
	}
	return order, nil
}

func (c *Client) ConfirmBooking(ctx context.Context, payment booking.PaymentResult, attendeeEmail string) error {
	return c.post(ctx, "/bookings/confirm", request.ConfirmBookingRequest{
		PaymentID:     payment.PaymentID,
		OrderID:       payment.OrderID,
		Signature:     payment.Signature,
		AttendeeEmail: attendeeEmail,
	}, nil)
}

func (c *Client) CancelBooking(ctx context.Context, orderID string) error {
	return c.post(ctx, "/bookings/cancel", request.CancelBookingRequest{
		OrderID: orderID,
	}, nil)
}

func (c *Client) MyTickets(ctx context.Context) ([]response.TicketView, error) {
	var tickets []response.TicketView
	if err := c.get(ctx, "/bookings/my-tickets", nil, &tickets); err != nil {
		return nil, err
	}
	return tickets, nil
}
