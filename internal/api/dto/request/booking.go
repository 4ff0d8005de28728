package request

type CreateBookingRequest struct {
	EventID       string `json:"eventId" binding:"required"`
	AttendeeName  string `json:"attendeeName" binding:"required"`
	AttendeeEmail string `json:"attendeeEmail" binding:"required,email"`
}

type ConfirmBookingRequest struct {
	PaymentID     string `json:"paymentId" binding:"required"`
	OrderID       string `json:"orderId" binding:"required"`
	Signature     string `json:"signature" binding:"required"`
	AttendeeEmail string `json:"attendeeEmail" binding:"required,email"`
}

type CancelBookingRequest struct {
	OrderID string `json:"orderId" binding:"required"`
}
