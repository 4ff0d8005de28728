package response

import "time"

type EventView struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Location     string    `json:"location"`
	ImgURL       string    `json:"imgUrl"`
	StartTime    time.Time `json:"startTime"`
	EndTime      time.Time `json:"endTime"`
	Category     string    `json:"category"`
	Price        float64   `json:"price"`
	MaxAttendees int       `json:"maxAttendees"`
}

// Page mirrors the paged listing envelope the API returns.
type Page[T any] struct {
	Content       []T  `json:"content"`
	Number        int  `json:"number"`
	Size          int  `json:"size"`
	TotalElements int  `json:"totalElements"`
	TotalPages    int  `json:"totalPages"`
	Last          bool `json:"last"`
}
