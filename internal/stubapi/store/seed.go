package store

import (
	"time"

	"shadow-events-cli/internal/pkg/password"
)

// Seed loads the demo users and a handful of events so the CLI has something
// to browse out of the box. Demo credentials match the hosted demo
// environment: user@shadowevents.com / admin@shadowevents.com, both 12345678.
func (s *Store) Seed() error {
	userHash, err := password.Hash("12345678")
	if err != nil {
		return err
	}

	if _, err := s.CreateUser("demo-user", "user@shadowevents.com", userHash, RoleUser); err != nil {
		return err
	}
	if _, err := s.CreateUser("demo-admin", "admin@shadowevents.com", userHash, RoleAdmin); err != nil {
		return err
	}

	base := s.clock.Now().AddDate(0, 1, 0).Truncate(time.Hour)
	seedEvents := []Event{
		{
			Title:        "Tech Conference 2026",
			Description:  "A conference about emerging tech trends.",
			Location:     "Chennai Trade Centre",
			ImgURL:       "/images/tech-conference.jpg",
			StartTime:    base,
			EndTime:      base.Add(2 * time.Hour),
			Category:     "education",
			Price:        1500,
			MaxAttendees: 200,
		},
		{
			Title:        "Indie Music Night",
			Description:  "Live sets from upcoming indie artists.",
			Location:     "Phoenix Arena, Bangalore",
			ImgURL:       "/images/indie-night.jpg",
			StartTime:    base.AddDate(0, 0, 7),
			EndTime:      base.AddDate(0, 0, 7).Add(4 * time.Hour),
			Category:     "music",
			Price:        499,
			MaxAttendees: 500,
		},
		{
			Title:        "Startup Pitch Day",
			Description:  "Early-stage founders pitch to local investors.",
			Location:     "T-Hub, Hyderabad",
			ImgURL:       "/images/pitch-day.jpg",
			StartTime:    base.AddDate(0, 0, 14),
			EndTime:      base.AddDate(0, 0, 14).Add(6 * time.Hour),
			Category:     "business",
			Price:        199,
			MaxAttendees: 100,
		},
	}
	for _, e := range seedEvents {
		s.SaveEvent(e)
	}
	return nil
}
