package response

import "time"

// CreateBookingResponse carries the order descriptor as a JSON-encoded string
// in Data, matching the booking-create endpoint's wire format.
type CreateBookingResponse struct {
	Message string `json:"message"`
	Data    string `json:"data"`
}

type TicketView struct {
	TicketID      string    `json:"ticketId"`
	EventID       string    `json:"eventId"`
	EventTitle    string    `json:"eventTitle"`
	Location      string    `json:"location"`
	ImgURL        string    `json:"imgUrl"`
	StartTime     time.Time `json:"startTime"`
	AttendeeName  string    `json:"attendeeName"`
	AttendeeEmail string    `json:"attendeeEmail"`
	QRCode        string    `json:"qrCode"`
}

type BookingView struct {
	ID            string    `json:"id"`
	AttendeeName  string    `json:"attendeeName"`
	AttendeeEmail string    `json:"attendeeEmail"`
	Status        string    `json:"status"`
	BookedAt      time.Time `json:"bookedAt"`
}
