// Package store is the stub server's in-memory persistence. Nothing survives
// a restart; that is the point of a test double.
package store

import (
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"shadow-events-cli/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrDuplicateEmail  = errors.New("email already registered")
	ErrEventFull       = errors.New("event is fully booked")
	ErrBookingResolved = errors.New("booking already resolved")
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	Role         string
}

type Event struct {
	ID           uuid.UUID
	Title        string
	Description  string
	Location     string
	ImgURL       string
	StartTime    time.Time
	EndTime      time.Time
	Category     string
	Price        float64
	MaxAttendees int
}

type BookingStatus string

const (
	BookingPending   BookingStatus = "PENDING"
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingCancelled BookingStatus = "CANCELLED"
)

type Booking struct {
	ID            uuid.UUID
	EventID       uuid.UUID
	UserID        uuid.UUID
	AttendeeName  string
	AttendeeEmail string
	OrderID       string
	PaymentID     string
	AmountMinor   int64
	Status        BookingStatus
	BookedAt      time.Time
}

type Store struct {
	mu       sync.RWMutex
	users    map[uuid.UUID]User
	events   map[uuid.UUID]Event
	bookings map[uuid.UUID]Booking
	byOrder  map[string]uuid.UUID
	clock    clock.Clock
}

func New(clk clock.Clock) *Store {
	return &Store{
		users:    make(map[uuid.UUID]User),
		events:   make(map[uuid.UUID]Event),
		bookings: make(map[uuid.UUID]Booking),
		byOrder:  make(map[string]uuid.UUID),
		clock:    clk,
	}
}

// --- users ---

func (s *Store) CreateUser(username, email, passwordHash, role string) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	email = strings.ToLower(strings.TrimSpace(email))
	for _, u := range s.users {
		if u.Email == email {
			return User{}, ErrDuplicateEmail
		}
	}

	user := User{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
	}
	s.users[user.ID] = user
	return user, nil
}

func (s *Store) FindUserByEmail(email string) (User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	email = strings.ToLower(strings.TrimSpace(email))
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

func (s *Store) ListUsers() []User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Username < users[j].Username })
	return users
}

// --- events ---

func (s *Store) SaveEvent(event Event) Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	s.events[event.ID] = event
	return event
}

func (s *Store) UpdateEvent(event Event) (Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.events[event.ID]; !ok {
		return Event{}, ErrNotFound
	}
	s.events[event.ID] = event
	return event, nil
}

func (s *Store) DeleteEvent(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.events[id]; !ok {
		return ErrNotFound
	}
	delete(s.events, id)
	return nil
}

func (s *Store) GetEvent(id uuid.UUID) (Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	event, ok := s.events[id]
	if !ok {
		return Event{}, ErrNotFound
	}
	return event, nil
}

// EventFilter narrows ListEvents; zero values match everything.
type EventFilter struct {
	Search   string // matches title, case-insensitive substring
	Category string
	Location string
	Date     string // YYYY-MM-DD of the start time
}

func (s *Store) ListEvents(filter EventFilter) []Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	events := make([]Event, 0, len(s.events))
	for _, e := range s.events {
		if filter.Search != "" && !strings.Contains(strings.ToLower(e.Title), strings.ToLower(filter.Search)) {
			continue
		}
		if filter.Category != "" && !strings.EqualFold(e.Category, filter.Category) {
			continue
		}
		if filter.Location != "" && !strings.Contains(strings.ToLower(e.Location), strings.ToLower(filter.Location)) {
			continue
		}
		if filter.Date != "" && e.StartTime.Format("2006-01-02") != filter.Date {
			continue
		}
		events = append(events, e)
	}
	sort.Slice(events, func(i, j int) bool { return events[i].StartTime.Before(events[j].StartTime) })
	return events
}

// --- bookings ---

// CreateBooking registers a pending booking against an order id, enforcing
// event capacity over non-cancelled bookings.
func (s *Store) CreateBooking(eventID, userID uuid.UUID, attendeeName, attendeeEmail, orderID string, amountMinor int64) (Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	event, ok := s.events[eventID]
	if !ok {
		return Booking{}, ErrNotFound
	}

	taken := 0
	for _, b := range s.bookings {
		if b.EventID == eventID && b.Status != BookingCancelled {
			taken++
		}
	}
	if taken >= event.MaxAttendees {
		return Booking{}, ErrEventFull
	}

	b := Booking{
		ID:            uuid.New(),
		EventID:       eventID,
		UserID:        userID,
		AttendeeName:  attendeeName,
		AttendeeEmail: strings.ToLower(strings.TrimSpace(attendeeEmail)),
		OrderID:       orderID,
		AmountMinor:   amountMinor,
		Status:        BookingPending,
		BookedAt:      s.clock.Now(),
	}
	s.bookings[b.ID] = b
	s.byOrder[orderID] = b.ID
	return b, nil
}

func (s *Store) FindBookingByOrderID(orderID string) (Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byOrder[orderID]
	if !ok {
		return Booking{}, ErrNotFound
	}
	return s.bookings[id], nil
}

// ConfirmBooking resolves a pending booking to confirmed. A booking that has
// already reached a terminal status stays there.
func (s *Store) ConfirmBooking(orderID, paymentID string) (Booking, error) {
	return s.resolve(orderID, func(b *Booking) {
		b.Status = BookingConfirmed
		b.PaymentID = paymentID
	})
}

func (s *Store) CancelBooking(orderID string) (Booking, error) {
	return s.resolve(orderID, func(b *Booking) {
		b.Status = BookingCancelled
	})
}

func (s *Store) resolve(orderID string, mutate func(*Booking)) (Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.byOrder[orderID]
	if !ok {
		return Booking{}, ErrNotFound
	}
	b := s.bookings[id]
	if b.Status != BookingPending {
		return b, ErrBookingResolved
	}
	mutate(&b)
	s.bookings[id] = b
	return b, nil
}

func (s *Store) ListBookingsByEvent(eventID uuid.UUID) []Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bookings := make([]Booking, 0)
	for _, b := range s.bookings {
		if b.EventID == eventID {
			bookings = append(bookings, b)
		}
	}
	sortBookings(bookings)
	return bookings
}

func (s *Store) ListBookingsByUser(userID uuid.UUID) []Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bookings := make([]Booking, 0)
	for _, b := range s.bookings {
		if b.UserID == userID {
			bookings = append(bookings, b)
		}
	}
	sortBookings(bookings)
	return bookings
}

func (s *Store) ListBookings() []Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bookings := make([]Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		bookings = append(bookings, b)
	}
	sortBookings(bookings)
	return bookings
}

func (s *Store) CountUsers() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}

func (s *Store) CountEvents() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.events)
}

func sortBookings(bookings []Booking) {
	sort.Slice(bookings, func(i, j int) bool { return bookings[i].BookedAt.Before(bookings[j].BookedAt) })
}
