package api

import (
	"context"
	"net/url"
	"strconv"

	"shadow-events-cli/internal/api/dto/request"
	"shadow-events-cli/internal/api/dto/response"
)

func (c *Client) Dashboard(ctx context.Context) (response.DashboardStats, error) {
	var stats response.DashboardStats
	if err := c.get(ctx, "/admin/dashboard", nil, &stats); err != nil {
		return response.DashboardStats{}, err
	}
	return stats, nil
}

func (c *Client) ListUsers(ctx context.Context) ([]response.UserView, error) {
	var users []response.UserView
	if err := c.get(ctx, "/admin/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

type AdminListEventsParams struct {
	Page     int
	Size     int
	Name     string
	Location string
	Date     string
}

func (c *Client) AdminListEvents(ctx context.Context, params AdminListEventsParams) (response.Page[response.EventView], error) {
	if params.Size <= 0 {
		params.Size = 10
	}
	query := url.Values{}
	query.Set("page", strconv.Itoa(params.Page))
	query.Set("size", strconv.Itoa(params.Size))
	if params.Name != "" {
		query.Set("name", params.Name)
	}
	if params.Location != "" {
		query.Set("location", params.Location)
	}
	if params.Date != "" {
		query.Set("date", params.Date)
	}

	var page response.Page[response.EventView]
	if err := c.get(ctx, "/admin/event", query, &page); err != nil {
		return response.Page[response.EventView]{}, err
	}
	return page, nil
}

func (c *Client) CreateEvent(ctx context.Context, event request.SaveEventRequest) error {
	event.ID = ""
	return c.post(ctx, "/admin/event", event, nil)
}

func (c *Client) UpdateEvent(ctx context.Context, event request.SaveEventRequest) error {
	return c.put(ctx, "/admin/event", event, nil)
}

func (c *Client) DeleteEvent(ctx context.Context, eventID string) error {
	return c.delete(ctx, "/admin/event/"+url.PathEscape(eventID))
}

// EventBookings lists the bookings taken for one event.
func (c *Client) EventBookings(ctx context.Context, eventID string, page, limit int) (response.Page[response.BookingView], error) {
	if limit <= 0 {
		limit = 10
	}
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(limit))

	var result response.Page[response.BookingView]
	if err := c.get(ctx, "/admin/event/"+url.PathEscape(eventID), query, &result); err != nil {
		return response.Page[response.BookingView]{}, err
	}
	return result, nil
}
