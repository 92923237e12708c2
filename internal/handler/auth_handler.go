package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/ShirinKhan1/system-design/internal/middleware"
	"github.com/ShirinKhan1/system-design/internal/models"
	"github.com/ShirinKhan1/system-design/internal/repository"
	"github.com/ShirinKhan1/system-design/internal/service"
	"github.com/gin-gonic/gin"
)

// Authenticator defines the operations used by AuthHandler.
type Authenticator interface {
	Login(ctx context.Context, username, password string) (string, error)
	Register(ctx context.Context, cmd service.RegisterCommand) (*models.User, string, error)
}

// AuthHandler handles login and registration; both endpoints produce
// tokens rather than consuming them, so neither sits behind the auth gate.
type AuthHandler struct {
	users Authenticator
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Age      *int   `json:"age,omitempty" validate:"omitempty,gte=0"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type RegisterResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        *models.User `json:"user"`
}

func NewAuthHandler(users Authenticator) *AuthHandler {
	return &AuthHandler{users: users}
}

// Login exchanges form credentials for a bearer token.
func (h *AuthHandler) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")
	if username == "" || password == "" {
		middleware.RespondWithError(c, http.StatusBadRequest, "username and password are required")
		return
	}

	token, err := h.users.Login(c.Request.Context(), username, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			middleware.RespondWithError(c, http.StatusUnauthorized, "Incorrect username or password")
			return
		}
		middleware.RespondWithError(c, http.StatusServiceUnavailable, "Failed to log in")
		return
	}

	c.JSON(http.StatusOK, TokenResponse{AccessToken: token, TokenType: "bearer"})
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	user, token, err := h.users.Register(c.Request.Context(), service.RegisterCommand{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Age:      req.Age,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			middleware.RespondWithError(c, http.StatusConflict, "Username or email already exists")
			return
		}
		middleware.RespondWithError(c, http.StatusServiceUnavailable, "Failed to register user")
		return
	}

	c.JSON(http.StatusCreated, RegisterResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        user,
	})
}
