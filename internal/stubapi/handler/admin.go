package handler

import (
	"errors"
	"net/http"
	"sort"
	"time"

	"shadow-events-cli/internal/api/dto/request"
	"shadow-events-cli/internal/api/dto/response"
	"shadow-events-cli/internal/stubapi/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdminHandler struct {
	store *store.Store
}

func NewAdminHandler(st *store.Store) *AdminHandler {
	return &AdminHandler{store: st}
}

func (h *AdminHandler) Dashboard(c *gin.Context) {
	bookings := h.store.ListBookings()

	stats := response.DashboardStats{
		TotalEvents:    h.store.CountEvents(),
		TotalBookings:  len(bookings),
		TotalUsers:     h.store.CountUsers(),
		IncomeOverTime: []response.IncomePoint{},
	}

	incomeByMonth := make(map[string]float64)
	for _, b := range bookings {
		switch b.Status {
		case store.BookingConfirmed:
			stats.ConfirmedCount++
			income := float64(b.AmountMinor) / 100
			stats.TotalIncome += income
			incomeByMonth[b.BookedAt.Format("Jan 2006")] += income
		case store.BookingPending:
			stats.PendingCount++
		case store.BookingCancelled:
			stats.CancelledCount++
		}
	}
	if len(bookings) > 0 {
		stats.BookingCompletionRate = float64(stats.ConfirmedCount) / float64(len(bookings)) * 100
	}

	labels := make([]string, 0, len(incomeByMonth))
	for label := range incomeByMonth {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		ti, _ := time.Parse("Jan 2006", labels[i])
		tj, _ := time.Parse("Jan 2006", labels[j])
		return ti.Before(tj)
	})
	for _, label := range labels {
		stats.IncomeOverTime = append(stats.IncomeOverTime, response.IncomePoint{
			Label:  label,
			Income: incomeByMonth[label],
		})
	}

	c.JSON(http.StatusOK, stats)
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	users := h.store.ListUsers()
	views := make([]response.UserView, 0, len(users))
	for _, u := range users {
		views = append(views, userToView(u))
	}
	c.JSON(http.StatusOK, views)
}

func (h *AdminHandler) ListEvents(c *gin.Context) {
	page := intQuery(c, "page", 0)
	size := intQuery(c, "size", 10)

	events := h.store.ListEvents(store.EventFilter{
		Search:   c.Query("name"),
		Location: c.Query("location"),
		Date:     c.Query("date"),
	})
	c.JSON(http.StatusOK, paginate(eventsToViews(events), page, size))
}

func (h *AdminHandler) CreateEvent(c *gin.Context) {
	var req request.SaveEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request format"})
		return
	}

	event, err := eventFromRequest(req, uuid.Nil)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	saved := h.store.SaveEvent(event)
	c.JSON(http.StatusCreated, eventToView(saved))
}

func (h *AdminHandler) UpdateEvent(c *gin.Context) {
	var req request.SaveEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request format"})
		return
	}

	id, err := uuid.Parse(req.ID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid event id"})
		return
	}
	event, err := eventFromRequest(req, id)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	updated, err := h.store.UpdateEvent(event)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Event not found"})
		return
	}
	c.JSON(http.StatusOK, eventToView(updated))
}

func (h *AdminHandler) DeleteEvent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid event id"})
		return
	}
	if err := h.store.DeleteEvent(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Event not found"})
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Event deleted"})
}

// EventBookings pages through the bookings taken for one event.
func (h *AdminHandler) EventBookings(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid event id"})
		return
	}
	if _, err := h.store.GetEvent(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Event not found"})
		return
	}

	page := intQuery(c, "page", 0)
	limit := intQuery(c, "limit", 10)

	bookings := h.store.ListBookingsByEvent(id)
	views := make([]response.BookingView, 0, len(bookings))
	for _, b := range bookings {
		views = append(views, bookingToView(b))
	}
	c.JSON(http.StatusOK, paginate(views, page, limit))
}

var errBadEventTimes = errors.New("invalid event start or end time")

// eventFromRequest accepts both RFC 3339 timestamps and the shorter
// datetime-local format the admin form submits.
func eventFromRequest(req request.SaveEventRequest, id uuid.UUID) (store.Event, error) {
	start, err := parseEventTime(req.StartTime)
	if err != nil {
		return store.Event{}, errBadEventTimes
	}
	end, err := parseEventTime(req.EndTime)
	if err != nil || !end.After(start) {
		return store.Event{}, errBadEventTimes
	}

	return store.Event{
		ID:           id,
		Title:        req.Title,
		Description:  req.Description,
		Location:     req.Location,
		ImgURL:       req.ImgURL,
		StartTime:    start,
		EndTime:      end,
		Category:     req.Category,
		Price:        req.Price,
		MaxAttendees: req.MaxAttendees,
	}, nil
}

func parseEventTime(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02T15:04", value)
}
