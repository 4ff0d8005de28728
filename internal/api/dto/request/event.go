package request

// SaveEventRequest is the body of both the admin create (POST) and update
// (PUT) endpoints; ID is empty on create.
type SaveEventRequest struct {
	ID           string  `json:"id,omitempty"`
	Title        string  `json:"title" binding:"required"`
	Description  string  `json:"description" binding:"required"`
	Location     string  `json:"location" binding:"required"`
	ImgURL       string  `json:"imgUrl" binding:"required"`
	StartTime    string  `json:"startTime" binding:"required"`
	EndTime      string  `json:"endTime" binding:"required"`
	Category     string  `json:"category" binding:"required"`
	Price        float64 `json:"price" binding:"gte=0"`
	MaxAttendees int     `json:"maxAttendees" binding:"gte=1"`
}
