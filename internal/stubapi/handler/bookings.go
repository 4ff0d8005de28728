package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"shadow-events-cli/internal/api/dto/request"
	"shadow-events-cli/internal/api/dto/response"
	"shadow-events-cli/internal/domain/booking"
	"shadow-events-cli/internal/stubapi/middleware"
	"shadow-events-cli/internal/stubapi/payment"
	"shadow-events-cli/internal/stubapi/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingsHandler struct {
	store  *store.Store
	signer *payment.Signer
	logger *slog.Logger
}

func NewBookingsHandler(st *store.Store, signer *payment.Signer, logger *slog.Logger) *BookingsHandler {
	return &BookingsHandler{store: st, signer: signer, logger: logger}
}

// Create registers a pending booking and returns the payment order
// descriptor, JSON-encoded inside the response's data field as the real
// backend does.
func (h *BookingsHandler) Create(c *gin.Context) {
	var req request.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request format"})
		return
	}

	eventID, err := uuid.Parse(req.EventID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid event id"})
		return
	}
	event, err := h.store.GetEvent(eventID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Event not found"})
		return
	}

	userID, _ := middleware.GetUserID(c)
	orderID := payment.NewOrderID()
	amountMinor := int64(event.Price * 100)

	if _, err := h.store.CreateBooking(eventID, userID, req.AttendeeName, req.AttendeeEmail, orderID, amountMinor); err != nil {
		if errors.Is(err, store.ErrEventFull) {
			c.JSON(http.StatusConflict, gin.H{"message": "Event is fully booked"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	descriptor, err := json.Marshal(map[string]any{
		"id":       orderID,
		"amount":   amountMinor,
		"currency": booking.Currency,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	h.logger.Info("booking order issued", "order_id", orderID, "event_id", eventID.String())
	c.JSON(http.StatusOK, response.CreateBookingResponse{
		Message: "Booking pending payment",
		Data:    string(descriptor),
	})
}

func (h *BookingsHandler) Confirm(c *gin.Context) {
	var req request.ConfirmBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request format"})
		return
	}

	if !h.signer.Verify(req.OrderID, req.PaymentID, req.Signature) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Payment signature verification failed"})
		return
	}

	if _, err := h.store.ConfirmBooking(req.OrderID, req.PaymentID); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Booking not found"})
		case errors.Is(err, store.ErrBookingResolved):
			c.JSON(http.StatusConflict, gin.H{"message": "Booking already resolved"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: "Booking confirmed"})
}

func (h *BookingsHandler) Cancel(c *gin.Context) {
	var req request.CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request format"})
		return
	}

	if _, err := h.store.CancelBooking(req.OrderID); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Booking not found"})
		case errors.Is(err, store.ErrBookingResolved):
			c.JSON(http.StatusConflict, gin.H{"message": "Booking already resolved"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: "Booking cancelled"})
}

func (h *BookingsHandler) MyTickets(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}

	tickets := make([]response.TicketView, 0)
	for _, b := range h.store.ListBookingsByUser(userID) {
		if b.Status != store.BookingConfirmed {
			continue
		}
		event, err := h.store.GetEvent(b.EventID)
		if err != nil {
			continue
		}
		tickets = append(tickets, response.TicketView{
			TicketID:      b.ID.String(),
			EventID:       event.ID.String(),
			EventTitle:    event.Title,
			Location:      event.Location,
			ImgURL:        event.ImgURL,
			StartTime:     event.StartTime,
			AttendeeName:  b.AttendeeName,
			AttendeeEmail: b.AttendeeEmail,
			QRCode:        "shadow-ticket:" + b.ID.String(),
		})
	}
	c.JSON(http.StatusOK, tickets)
}
