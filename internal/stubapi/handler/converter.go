package handler

import (
	"shadow-events-cli/internal/api/dto/response"
	"shadow-events-cli/internal/stubapi/store"

	"github.com/jinzhu/copier"
)

func eventToView(e store.Event) response.EventView {
	var view response.EventView
	_ = copier.Copy(&view, &e)
	view.ID = e.ID.String()
	return view
}

func eventsToViews(events []store.Event) []response.EventView {
	views := make([]response.EventView, 0, len(events))
	for _, e := range events {
		views = append(views, eventToView(e))
	}
	return views
}

func userToView(u store.User) response.UserView {
	var view response.UserView
	_ = copier.Copy(&view, &u)
	view.ID = u.ID.String()
	return view
}

func bookingToView(b store.Booking) response.BookingView {
	var view response.BookingView
	_ = copier.Copy(&view, &b)
	view.ID = b.ID.String()
	view.Status = string(b.Status)
	return view
}

// paginate slices items into the paged envelope the real API returns.
func paginate[T any](items []T, page, size int) response.Page[T] {
	if size <= 0 {
		size = 10
	}
	if page < 0 {
		page = 0
	}

	total := len(items)
	totalPages := (total + size - 1) / size

	start := page * size
	if start > total {
		start = total
	}
	end := start + size
	if end > total {
		end = total
	}

	return response.Page[T]{
		Content:       items[start:end],
		Number:        page,
		Size:          size,
		TotalElements: total,
		TotalPages:    totalPages,
		Last:          page >= totalPages-1,
	}
}
