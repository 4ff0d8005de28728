package handler

import (
	"net/http"
	"strconv"

	"shadow-events-cli/internal/stubapi/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type EventsHandler struct {
	store *store.Store
}

func NewEventsHandler(st *store.Store) *EventsHandler {
	return &EventsHandler{store: st}
}

func (h *EventsHandler) List(c *gin.Context) {
	page := intQuery(c, "page", 0)
	size := intQuery(c, "size", 5)

	events := h.store.ListEvents(store.EventFilter{
		Search:   c.Query("search"),
		Category: c.Query("category"),
	})
	c.JSON(http.StatusOK, paginate(eventsToViews(events), page, size))
}

func (h *EventsHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid event id"})
		return
	}

	event, err := h.store.GetEvent(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Event not found"})
		return
	}
	c.JSON(http.StatusOK, eventToView(event))
}

func intQuery(c *gin.Context, name string, fallback int) int {
	value, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return fallback
	}
	return value
}
