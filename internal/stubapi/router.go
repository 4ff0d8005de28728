// Package stubapi assembles the in-memory reference implementation of the
// Shadow Events API, used for local development and end-to-end tests.
package stubapi

import (
	"log/slog"
	"net/http"

	"shadow-events-cli/internal/pkg/config"
	"shadow-events-cli/internal/stubapi/handler"
	"shadow-events-cli/internal/stubapi/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(
	engine *gin.Engine,
	cfg config.StubConfig,
	logger *slog.Logger,
	authHandler *handler.AuthHandler,
	eventsHandler *handler.EventsHandler,
	bookingsHandler *handler.BookingsHandler,
	adminHandler *handler.AdminHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.Use(gin.Recovery())
	engine.Use(middleware.Logging(logger))
	engine.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowOrigins,
		AllowMethods:     cfg.CORS.AllowMethods,
		AllowHeaders:     cfg.CORS.AllowHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
	}))

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authGroup := engine.Group("/auth")
	{
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/signup", authHandler.Signup)
	}

	public := engine.Group("/public/user")
	{
		public.GET("/event", eventsHandler.List)
		public.GET("/data/:id", eventsHandler.Get)
	}

	bookings := engine.Group("/bookings")
	bookings.Use(authMiddleware.RequireAuth())
	{
		bookings.POST("/create", bookingsHandler.Create)
		bookings.POST("/confirm", bookingsHandler.Confirm)
		bookings.POST("/cancel", bookingsHandler.Cancel)
		bookings.GET("/my-tickets", bookingsHandler.MyTickets)
	}

	admin := engine.Group("/admin")
	admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
	{
		admin.GET("/dashboard", adminHandler.Dashboard)
		admin.GET("/users", adminHandler.ListUsers)
		admin.GET("/event", adminHandler.ListEvents)
		admin.POST("/event", adminHandler.CreateEvent)
		admin.PUT("/event", adminHandler.UpdateEvent)
		admin.DELETE("/event/:id", adminHandler.DeleteEvent)
		admin.GET("/event/:id", adminHandler.EventBookings)
	}
}
