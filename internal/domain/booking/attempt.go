package booking

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrEmptyEventID      = errors.New("event id is required")
	ErrEmptyAttendeeName = errors.New("attendee name is required")
	ErrInvalidEmail      = errors.New("invalid attendee email format")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Attempt is one user's in-flight intent to reserve a ticket for an event.
// It lives in memory for the duration of a single checkout attempt.
type Attempt struct {
	eventID       string
	attendeeName  string
	attendeeEmail string
}

func NewAttempt(eventID, attendeeName, attendeeEmail string) (Attempt, error) {
	eventID = strings.TrimSpace(eventID)
	attendeeName = strings.TrimSpace(attendeeName)
	attendeeEmail = strings.TrimSpace(attendeeEmail)

	if eventID == "" {
		return Attempt{}, ErrEmptyEventID
	}
	if attendeeName == "" {
		return Attempt{}, ErrEmptyAttendeeName
	}
	if !emailRegex.MatchString(attendeeEmail) {
		return Attempt{}, ErrInvalidEmail
	}

	return Attempt{
		eventID:       eventID,
		attendeeName:  attendeeName,
		attendeeEmail: attendeeEmail,
	}, nil
}

func (a Attempt) EventID() string {
	return a.eventID
}

func (a Attempt) AttendeeName() string {
	return a.attendeeName
}

func (a Attempt) AttendeeEmail() string {
	return a.attendeeEmail
}
