package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/ShirinKhan1/system-design/internal/middleware"
	"github.com/ShirinKhan1/system-design/internal/models"
	"github.com/ShirinKhan1/system-design/internal/repository"
	"github.com/gin-gonic/gin"
)

// UserQuerier defines the read operations used by UserHandler.
type UserQuerier interface {
	GetUser(ctx context.Context, username string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
}

type UserHandler struct {
	users UserQuerier
}

func NewUserHandler(users UserQuerier) *UserHandler {
	return &UserHandler{users: users}
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.users.ListUsers(c.Request.Context())
	if err != nil {
		middleware.RespondWithError(c, http.StatusServiceUnavailable, "Failed to list users")
		return
	}
	if users == nil {
		users = []models.User{}
	}
	c.JSON(http.StatusOK, users)
}

// GetUser serves a single user by username through the cache-aside path.
func (h *UserHandler) GetUser(c *gin.Context) {
	username := c.Param("username")

	user, err := h.users.GetUser(c.Request.Context(), username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			middleware.RespondWithError(c, http.StatusNotFound, "User not found")
			return
		}
		middleware.RespondWithError(c, http.StatusServiceUnavailable, "Failed to get user")
		return
	}

	c.JSON(http.StatusOK, user)
}
