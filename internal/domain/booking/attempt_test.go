//go:build unit

package booking_test

import (
	"testing"

	"shadow-events-cli/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAttempt(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		attempt, err := booking.NewAttempt("event-1", "Asha Rao", "asha@example.com")
		require.NoError(t, err)

		assert.Equal(t, "event-1", attempt.EventID())
		assert.Equal(t, "Asha Rao", attempt.AttendeeName())
		assert.Equal(t, "asha@example.com", attempt.AttendeeEmail())
	})

	t.Run("surrounding whitespace is trimmed", func(t *testing.T) {
		attempt, err := booking.NewAttempt("  event-1 ", " Asha Rao ", " asha@example.com ")
		require.NoError(t, err)

		assert.Equal(t, "event-1", attempt.EventID())
		assert.Equal(t, "Asha Rao", attempt.AttendeeName())
		assert.Equal(t, "asha@example.com", attempt.AttendeeEmail())
	})

	tests := []struct {
		name    string
		eventID string
		attName string
		email   string
		errIs   error
	}{
		{
			name:    "missing event id",
			eventID: "",
			attName: "Asha Rao",
			email:   "asha@example.com",
			errIs:   booking.ErrEmptyEventID,
		},
		{
			name:    "whitespace-only event id",
			eventID: "   ",
			attName: "Asha Rao",
			email:   "asha@example.com",
			errIs:   booking.ErrEmptyEventID,
		},
		{
			name:    "missing attendee name",
			eventID: "event-1",
			attName: "",
			email:   "asha@example.com",
			errIs:   booking.ErrEmptyAttendeeName,
		},
		{
			name:    "email without domain",
			eventID: "event-1",
			attName: "Asha Rao",
			email:   "asha@",
			errIs:   booking.ErrInvalidEmail,
		},
		{
			name:    "email without at sign",
			eventID: "event-1",
			attName: "Asha Rao",
			email:   "asha.example.com",
			errIs:   booking.ErrInvalidEmail,
		},
		{
			name:    "email with single-letter tld",
			eventID: "event-1",
			attName: "Asha Rao",
			email:   "asha@example.c",
			errIs:   booking.ErrInvalidEmail,
		},
		{
			name:    "empty email",
			eventID: "event-1",
			attName: "Asha Rao",
			email:   "",
			errIs:   booking.ErrInvalidEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := booking.NewAttempt(tt.eventID, tt.attName, tt.email)
			require.ErrorIs(t, err, tt.errIs)
		})
	}
}
