package handler

import (
	"context"
	"net/http"

	"github.com/ShirinKhan1/system-design/internal/middleware"
	"github.com/ShirinKhan1/system-design/internal/models"
	"github.com/ShirinKhan1/system-design/internal/service"
	"github.com/gin-gonic/gin"
)

// OrderManager defines the operations used by OrderHandler.
type OrderManager interface {
	CreateOrder(ctx context.Context, cmd service.CreateOrderCommand) (*models.Order, error)
	ListOrders(ctx context.Context) ([]models.Order, error)
}

// OrderHandler serves the order endpoints. These sit outside the auth
// gate, matching the reference API.
type OrderHandler struct {
	orders OrderManager
}

type CreateOrderRequest struct {
	UserID      int64  `json:"user_id" validate:"required"`
	PackageID   int64  `json:"package_id" validate:"required"`
	AddressFrom string `json:"address_from" validate:"required"`
	AddressTo   string `json:"address_to" validate:"required"`
}

func NewOrderHandler(orders OrderManager) *OrderHandler {
	return &OrderHandler{orders: orders}
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	order, err := h.orders.CreateOrder(c.Request.Context(), service.CreateOrderCommand{
		UserID:      req.UserID,
		PackageID:   req.PackageID,
		AddressFrom: req.AddressFrom,
		AddressTo:   req.AddressTo,
	})
	if err != nil {
		middleware.RespondWithError(c, http.StatusServiceUnavailable, "Failed to create order")
		return
	}

	c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.orders.ListOrders(c.Request.Context())
	if err != nil {
		middleware.RespondWithError(c, http.StatusServiceUnavailable, "Failed to list orders")
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}
	c.JSON(http.StatusOK, orders)
}
