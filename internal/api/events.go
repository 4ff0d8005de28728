package api

import (
	"context"
	"net/url"
	"strconv"

	"shadow-events-cli/internal/api/dto/response"
)

type ListEventsParams struct {
	Page     int
	Size     int
	Search   string
	Category string
}

func (c *Client) ListEvents(ctx context.Context, params ListEventsParams) (response.Page[response.EventView], error) {
	if params.Size <= 0 {
		params.Size = 5
	}
	query := url.Values{}
	query.Set("page", strconv.Itoa(params.Page))
	query.Set("size", strconv.Itoa(params.Size))
	query.Set("search", params.Search)
	query.Set("category", params.Category)

	var page response.Page[response.EventView]
	if err := c.get(ctx, "/public/user/event", query, &page); err != nil {
		return response.Page[response.EventView]{}, err
	}
	return page, nil
}

func (c *Client) GetEvent(ctx context.Context, eventID string) (response.EventView, error) {
	var event response.EventView
	if err := c.get(ctx, "/public/user/data/"+url.PathEscape(eventID), nil, &event); err != nil {
		return response.EventView{}, err
	}
	return event, nil
}
