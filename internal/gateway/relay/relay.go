// Package relay implements gateway.PaymentGateway by serving the hosted
// checkout page from a short-lived local HTTP server. The page embeds the
// provider's checkout script; its success handler and dismiss hook post back
// to the relay, which forwards exactly one outcome to the caller.
package relay

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"shadow-events-cli/internal/domain/booking"
	"shadow-events-cli/internal/gateway"
	"shadow-events-cli/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Relay struct {
	addr    string
	openURL func(string) error
	logger  *slog.Logger
}

func New(addr string, openURL func(string) error, logger *slog.Logger) *Relay {
	if openURL == nil {
		openURL = OpenBrowser
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Relay{addr: addr, openURL: openURL, logger: logger}
}

func (r *Relay) CreateSession(_ context.Context, checkout gateway.Checkout, callbacks gateway.Callbacks) (gateway.Session, error) {
	listener, err := net.Listen("tcp", r.addr)
	if err != nil {
		return nil, errs.Wrap(err, "failed to bind checkout relay listener")
	}

	s := &session{
		relay:     r,
		checkout:  checkout,
		callbacks: callbacks,
		listener:  listener,
		done:      make(chan struct{}),
	}
	s.engine = s.newEngine()
	return s, nil
}

type session struct {
	relay     *Relay
	checkout  gateway.Checkout
	callbacks gateway.Callbacks
	listener  net.Listener
	engine    *gin.Engine
	done      chan struct{}

	mu       sync.Mutex
	resolved bool
}

type paymentPostback struct {
	PaymentID string `json:"razorpay_payment_id" binding:"required"`
	OrderID   string `json:"razorpay_order_id" binding:"required"`
	Signature string `json:"razorpay_signature" binding:"required"`
}

func (s *session) newEngine() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	engine.GET("/", s.servePage)
	engine.POST("/callback/payment", s.handlePayment)
	engine.POST("/callback/dismiss", s.handleDismiss)
	return engine
}

// Open surfaces the checkout page in the user's browser and blocks until the
// widget reports success or dismissal, or ctx is done. The delivered callback
// has returned by the time Open returns.
func (s *session) Open(ctx context.Context) error {
	server := &http.Server{Handler: s.engine}
	serveErr := make(chan error, 1)
	go func() {
		if err := server.Serve(s.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	pageURL := fmt.Sprintf("http://%s/", s.listener.Addr().String())
	s.relay.logger.Info("opening checkout page", "url", pageURL, "order_id", s.checkout.OrderID)
	if err := s.relay.openURL(pageURL); err != nil {
		s.shutdown(server)
		return errs.Wrap(err, "failed to open checkout page in browser")
	}

	select {
	case <-s.done:
		s.shutdown(server)
		return nil
	case err := <-serveErr:
		return errs.Wrap(err, "checkout relay server failed")
	case <-ctx.Done():
		s.shutdown(server)
		return ctx.Err()
	}
}

func (s *session) servePage(c *gin.Context) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.String(http.StatusOK, renderPage(s.checkout))
}

func (s *session) handlePayment(c *gin.Context) {
	var postback paymentPostback
	if err := c.ShouldBindJSON(&postback); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payment postback"})
		return
	}

	if !s.resolve() {
		c.JSON(http.StatusConflict, gin.H{"error": "checkout already resolved"})
		return
	}

	s.callbacks.OnSuccess(booking.PaymentResult{
		PaymentID: postback.PaymentID,
		OrderID:   postback.OrderID,
		Signature: postback.Signature,
	})
	close(s.done)
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *session) handleDismiss(c *gin.Context) {
	if !s.resolve() {
		c.JSON(http.StatusConflict, gin.H{"error": "checkout already resolved"})
		return
	}

	s.callbacks.OnDismiss()
	close(s.done)
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// resolve claims the session's single outcome; the widget contract says the
// success and dismiss hooks are mutually exclusive and fire at most once, and
// the relay holds that line even against a misbehaving page.
func (s *session) resolve() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.resolved {
		return false
	}
	s.resolved = true
	return true
}

func (s *session) shutdown(server *http.Server) {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		s.relay.logger.Warn("checkout relay shutdown failed", "error", err)
	}
}
