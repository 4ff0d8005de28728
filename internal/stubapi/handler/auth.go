package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"shadow-events-cli/internal/api/dto/request"
	"shadow-events-cli/internal/api/dto/response"
	"shadow-events-cli/internal/pkg/password"
	"shadow-events-cli/internal/stubapi/auth"
	"shadow-events-cli/internal/stubapi/store"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	store  *store.Store
	jwt    *auth.JWTService
	logger *slog.Logger
}

func NewAuthHandler(st *store.Store, jwtService *auth.JWTService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{store: st, jwt: jwtService, logger: logger}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request format"})
		return
	}

	user, err := h.store.FindUserByEmail(req.Email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
		return
	}
	if err := password.Compare(user.PasswordHash, req.Password); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
		return
	}

	token, err := h.jwt.GenerateToken(user.ID, user.Role, user.Email)
	if err != nil {
		h.logger.Error("token generation failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, response.LoginResponse{Token: token})
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req request.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request format"})
		return
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	if _, err := h.store.CreateUser(req.Username, req.Email, hash, store.RoleUser); err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			c.JSON(http.StatusConflict, gin.H{"message": "Email already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Account created"})
}
