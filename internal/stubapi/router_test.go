//go:build unit

package stubapi_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"shadow-events-cli/internal/api/dto/response"
	"shadow-events-cli/internal/pkg/clock"
	"shadow-events-cli/internal/pkg/config"
	"shadow-events-cli/internal/pkg/password"
	"shadow-events-cli/internal/stubapi"
	"shadow-events-cli/internal/stubapi/auth"
	"shadow-events-cli/internal/stubapi/handler"
	"shadow-events-cli/internal/stubapi/middleware"
	"shadow-events-cli/internal/stubapi/payment"
	"shadow-events-cli/internal/stubapi/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

type RouterTestSuite struct {
	suite.Suite
	router *gin.Engine
	store  *store.Store
	signer *payment.Signer
	clock  *clock.FixedClock

	userToken  string
	adminToken string
	event      store.Event
}

func (s *RouterTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	cfg := config.NewStubTestConfig()
	logger := newDiscardLogger()

	s.clock = clock.NewFixedClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	s.store = store.New(s.clock)
	s.signer = payment.NewSigner(cfg.Payment.Secret)
	jwtService := auth.NewJWTService(cfg.JWT)

	s.router = gin.New()
	stubapi.NewRouter(
		s.router,
		cfg,
		logger,
		handler.NewAuthHandler(s.store, jwtService, logger),
		handler.NewEventsHandler(s.store),
		handler.NewBookingsHandler(s.store, s.signer, logger),
		handler.NewAdminHandler(s.store),
		middleware.NewAuthMiddleware(jwtService),
	)

	hash, err := password.Hash("12345678")
	s.Require().NoError(err)
	user, err := s.store.CreateUser("asha", "asha@example.com", hash, store.RoleUser)
	s.Require().NoError(err)
	admin, err := s.store.CreateUser("admin", "admin@example.com", hash, store.RoleAdmin)
	s.Require().NoError(err)

	s.userToken, err = jwtService.GenerateToken(user.ID, user.Role, user.Email)
	s.Require().NoError(err)
	s.adminToken, err = jwtService.GenerateToken(admin.ID, admin.Role, admin.Email)
	s.Require().NoError(err)

	s.event = s.store.SaveEvent(store.Event{
		Title:        "Night Jazz",
		Description:  "Live jazz evening",
		Location:     "Blue Note",
		ImgURL:       "https://img.example.com/jazz.png",
		Category:     "music",
		Price:        500,
		MaxAttendees: 10,
		StartTime:    time.Date(2025, 7, 1, 19, 0, 0, 0, time.UTC),
		EndTime:      time.Date(2025, 7, 1, 22, 0, 0, 0, time.UTC),
	})
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (s *RouterTestSuite) request(method, path, token string, body any) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		encoded, err := json.Marshal(body)
		s.Require().NoError(err)
		reqBody = bytes.NewBuffer(encoded)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *RouterTestSuite) decode(rec *httptest.ResponseRecorder, out any) {
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), out))
}

// createOrder drives /bookings/create and returns the issued order descriptor.
func (s *RouterTestSuite) createOrder(email string) (orderID string, amount int64) {
	rec := s.request(http.MethodPost, "/bookings/create", s.userToken, map[string]string{
		"eventId":       s.event.ID.String(),
		"attendeeName":  "Asha Rao",
		"attendeeEmail": email,
	})
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var resp response.CreateBookingResponse
	s.decode(rec, &resp)

	var descriptor struct {
		ID       string `json:"id"`
		Amount   int64  `json:"amount"`
		Currency string `json:"currency"`
	}
	s.Require().NoError(json.Unmarshal([]byte(resp.Data), &descriptor))
	s.Equal("INR", descriptor.Currency)
	return descriptor.ID, descriptor.Amount
}

func (s *RouterTestSuite) TestAuth() {
	s.Run("login issues a token", func() {
		rec := s.request(http.MethodPost, "/auth/login", "", map[string]string{
			"email":    "asha@example.com",
			"password": "12345678",
		})
		s.Equal(http.StatusOK, rec.Code)

		var resp map[string]string
		s.decode(rec, &resp)
		s.NotEmpty(resp["token"])
	})

	s.Run("wrong password is rejected", func() {
		rec := s.request(http.MethodPost, "/auth/login", "", map[string]string{
			"email":    "asha@example.com",
			"password": "wrong-password",
		})
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("signup then login", func() {
		rec := s.request(http.MethodPost, "/auth/signup", "", map[string]string{
			"username": "ravi",
			"email":    "ravi@example.com",
			"password": "12345678",
		})
		s.Equal(http.StatusCreated, rec.Code)

		rec = s.request(http.MethodPost, "/auth/login", "", map[string]string{
			"email":    "ravi@example.com",
			"password": "12345678",
		})
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("duplicate signup is rejected", func() {
		rec := s.request(http.MethodPost, "/auth/signup", "", map[string]string{
			"username": "asha2",
			"email":    "asha@example.com",
			"password": "12345678",
		})
		s.Equal(http.StatusConflict, rec.Code)
	})
}

func (s *RouterTestSuite) TestPublicEvents() {
	s.Run("listing pages events", func() {
		rec := s.request(http.MethodGet, "/public/user/event?page=0&size=5", "", nil)
		s.Equal(http.StatusOK, rec.Code)

		var page response.Page[response.EventView]
		s.decode(rec, &page)
		s.Require().Len(page.Content, 1)
		s.Equal("Night Jazz", page.Content[0].Title)
		s.Equal(1, page.TotalElements)
		s.True(page.Last)
	})

	s.Run("search filters the listing", func() {
		rec := s.request(http.MethodGet, "/public/user/event?page=0&size=5&search=opera", "", nil)
		s.Equal(http.StatusOK, rec.Code)

		var page response.Page[response.EventView]
		s.decode(rec, &page)
		s.Empty(page.Content)
	})

	s.Run("event detail", func() {
		rec := s.request(http.MethodGet, "/public/user/data/"+s.event.ID.String(), "", nil)
		s.Equal(http.StatusOK, rec.Code)

		var event response.EventView
		s.decode(rec, &event)
		s.Equal("Night Jazz", event.Title)
	})

	s.Run("unknown event detail", func() {
		rec := s.request(http.MethodGet, "/public/user/data/00000000-0000-0000-0000-000000000001", "", nil)
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

func (s *RouterTestSuite) TestBookingFlow() {
	s.Run("booking endpoints require a token", func() {
		rec := s.request(http.MethodPost, "/bookings/create", "", map[string]string{})
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("create, pay, confirm", func() {
		orderID, amount := s.createOrder("asha@example.com")
		s.Equal(int64(50000), amount)

		paymentID := payment.NewPaymentID()
		rec := s.request(http.MethodPost, "/bookings/confirm", s.userToken, map[string]string{
			"paymentId":     paymentID,
			"orderId":       orderID,
			"signature":     s.signer.Sign(orderID, paymentID),
			"attendeeEmail": "asha@example.com",
		})
		s.Equal(http.StatusOK, rec.Code, rec.Body.String())

		rec = s.request(http.MethodGet, "/bookings/my-tickets", s.userToken, nil)
		s.Equal(http.StatusOK, rec.Code)
		var tickets []response.TicketView
		s.decode(rec, &tickets)
		s.Require().Len(tickets, 1)
		s.Equal("Night Jazz", tickets[0].EventTitle)
		s.NotEmpty(tickets[0].QRCode)
	})

	s.Run("bad signature is rejected", func() {
		orderID, _ := s.createOrder("asha@example.com")

		rec := s.request(http.MethodPost, "/bookings/confirm", s.userToken, map[string]string{
			"paymentId":     payment.NewPaymentID(),
			"orderId":       orderID,
			"signature":     "deadbeef",
			"attendeeEmail": "asha@example.com",
		})
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("cancel releases the pending booking", func() {
		orderID, _ := s.createOrder("asha@example.com")

		rec := s.request(http.MethodPost, "/bookings/cancel", s.userToken, map[string]string{
			"orderId": orderID,
		})
		s.Equal(http.StatusOK, rec.Code)

		// A cancelled booking cannot be confirmed afterwards.
		paymentID := payment.NewPaymentID()
		rec = s.request(http.MethodPost, "/bookings/confirm", s.userToken, map[string]string{
			"paymentId":     paymentID,
			"orderId":       orderID,
			"signature":     s.signer.Sign(orderID, paymentID),
			"attendeeEmail": "asha@example.com",
		})
		s.Equal(http.StatusConflict, rec.Code)
	})

	s.Run("full event rejects new bookings", func() {
		small := s.store.SaveEvent(store.Event{
			Title:        "Intimate Set",
			Location:     "Back Room",
			Category:     "music",
			Price:        300,
			MaxAttendees: 1,
			StartTime:    time.Date(2025, 7, 2, 20, 0, 0, 0, time.UTC),
			EndTime:      time.Date(2025, 7, 2, 23, 0, 0, 0, time.UTC),
		})

		book := func() *httptest.ResponseRecorder {
			return s.request(http.MethodPost, "/bookings/create", s.userToken, map[string]string{
				"eventId":       small.ID.String(),
				"attendeeName":  "Asha Rao",
				"attendeeEmail": "asha@example.com",
			})
		}
		s.Equal(http.StatusOK, book().Code)
		s.Equal(http.StatusConflict, book().Code)
	})
}

func (s *RouterTestSuite) TestAdmin() {
	s.Run("admin endpoints reject non-admin tokens", func() {
		rec := s.request(http.MethodGet, "/admin/dashboard", s.userToken, nil)
		s.Equal(http.StatusForbidden, rec.Code)
	})

	s.Run("dashboard aggregates bookings", func() {
		orderID, _ := s.createOrder("asha@example.com")
		paymentID := payment.NewPaymentID()
		rec := s.request(http.MethodPost, "/bookings/confirm", s.userToken, map[string]string{
			"paymentId":     paymentID,
			"orderId":       orderID,
			"signature":     s.signer.Sign(orderID, paymentID),
			"attendeeEmail": "asha@example.com",
		})
		s.Require().Equal(http.StatusOK, rec.Code)

		rec = s.request(http.MethodGet, "/admin/dashboard", s.adminToken, nil)
		s.Equal(http.StatusOK, rec.Code)

		var stats response.DashboardStats
		s.decode(rec, &stats)
		s.Equal(1, stats.TotalEvents)
		s.Equal(2, stats.TotalUsers)
		s.Equal(1, stats.TotalBookings)
		s.Equal(1, stats.ConfirmedCount)
		s.Equal(float64(100), stats.BookingCompletionRate)
		s.Equal(float64(500), stats.TotalIncome)
		s.Require().Len(stats.IncomeOverTime, 1)
		s.Equal("Jun 2025", stats.IncomeOverTime[0].Label)
	})

	s.Run("event crud", func() {
		rec := s.request(http.MethodPost, "/admin/event", s.adminToken, map[string]any{
			"title":        "Go Conference",
			"description":  "Talks and hallway track",
			"location":     "Convention Center",
			"imgUrl":       "https://img.example.com/go.png",
			"startTime":    "2025-08-01T09:00",
			"endTime":      "2025-08-01T18:00",
			"category":     "tech",
			"price":        1500,
			"maxAttendees": 300,
		})
		s.Equal(http.StatusCreated, rec.Code, rec.Body.String())

		rec = s.request(http.MethodGet, "/admin/event?page=0&size=10", s.adminToken, nil)
		s.Equal(http.StatusOK, rec.Code)
		var page response.Page[response.EventView]
		s.decode(rec, &page)
		s.Len(page.Content, 2)

		var created response.EventView
		for _, e := range page.Content {
			if e.Title == "Go Conference" {
				created = e
			}
		}
		s.Require().NotEmpty(created.ID)

		rec = s.request(http.MethodPut, "/admin/event", s.adminToken, map[string]any{
			"id":           created.ID,
			"title":        "GopherCon",
			"description":  created.Description,
			"location":     created.Location,
			"imgUrl":       created.ImgURL,
			"startTime":    "2025-08-01T09:00",
			"endTime":      "2025-08-01T18:00",
			"category":     created.Category,
			"price":        created.Price,
			"maxAttendees": created.MaxAttendees,
		})
		s.Equal(http.StatusOK, rec.Code, rec.Body.String())

		rec = s.request(http.MethodDelete, "/admin/event/"+created.ID, s.adminToken, nil)
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("event bookings listing", func() {
		s.createOrder("ravi@example.com")

		rec := s.request(http.MethodGet, fmt.Sprintf("/admin/event/%s?page=0&limit=10", s.event.ID), s.adminToken, nil)
		s.Equal(http.StatusOK, rec.Code)

		// One confirmed booking from the dashboard case plus the pending one.
		var page response.Page[response.BookingView]
		s.decode(rec, &page)
		s.Require().Len(page.Content, 2)
		statuses := []string{page.Content[0].Status, page.Content[1].Status}
		s.ElementsMatch(statuses, []string{"CONFIRMED", "PENDING"})
	})

	s.Run("users listing", func() {
		rec := s.request(http.MethodGet, "/admin/users", s.adminToken, nil)
		s.Equal(http.StatusOK, rec.Code)

		var users []response.UserView
		s.decode(rec, &users)
		s.Len(users, 2)
	})
}
