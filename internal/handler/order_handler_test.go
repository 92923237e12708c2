package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/ShirinKhan1/system-design/internal/models"
	"github.com/ShirinKhan1/system-design/internal/service"
	"github.com/gin-gonic/gin"
)

type mockOrderManager struct {
	createFn func(ctx context.Context, cmd service.CreateOrderCommand) (*models.Order, error)
	listFn   func(ctx context.Context) ([]models.Order, error)
}

func (m *mockOrderManager) CreateOrder(ctx context.Context, cmd service.CreateOrderCommand) (*models.Order, error) {
	if m.createFn != nil {
		return m.createFn(ctx, cmd)
	}
	return nil, fmt.Errorf("not configured")
}

func (m *mockOrderManager) ListOrders(ctx context.Context) ([]models.Order, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, fmt.Errorf("not configured")
}

func newOrderTestRouter(orders OrderManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewOrderHandler(orders)
	r.POST("/orders/", h.CreateOrder)
	r.GET("/orders/", h.ListOrders)
	return r
}

func TestCreateOrderEndpoint(t *testing.T) {
	validBody := map[string]any{
		"user_id": 1, "package_id": 2,
		"address_from": "1 Origin Way", "address_to": "2 Destination Road",
	}

	tests := []struct {
		name           string
		body           any
		createFn       func(ctx context.Context, cmd service.CreateOrderCommand) (*models.Order, error)
		expectedStatus int
	}{
		{
			name: "created",
			body: validBody,
			createFn: func(ctx context.Context, cmd service.CreateOrderCommand) (*models.Order, error) {
				return &models.Order{
					ID: "ord-1", UserID: cmd.UserID, PackageID: cmd.PackageID,
					AddressFrom: cmd.AddressFrom, AddressTo: cmd.AddressTo,
				}, nil
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "bad request - missing addresses",
			body:           map[string]any{"user_id": 1, "package_id": 2},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "service unavailable - document store failure",
			body: validBody,
			createFn: func(ctx context.Context, cmd service.CreateOrderCommand) (*models.Order, error) {
				return nil, fmt.Errorf("mongo down")
			},
			expectedStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newOrderTestRouter(&mockOrderManager{createFn: tt.createFn})
			w := doJSON(router, http.MethodPost, "/orders/", tt.body)

			if w.Code != tt.expectedStatus {
				t.Fatalf("status = %d, want %d (body: %s)", w.Code, tt.expectedStatus, w.Body.String())
			}
			if tt.expectedStatus == http.StatusCreated {
				var order models.Order
				if err := json.Unmarshal(w.Body.Bytes(), &order); err != nil {
					t.Fatalf("decode response: %v", err)
				}
				if order.ID != "ord-1" || order.AddressTo != "2 Destination Road" {
					t.Fatalf("unexpected order: %+v", order)
				}
			}
		})
	}
}

func TestListOrdersEndpoint(t *testing.T) {
	router := newOrderTestRouter(&mockOrderManager{
		listFn: func(ctx context.Context) ([]models.Order, error) {
			return []models.Order{{ID: "ord-1"}, {ID: "ord-2"}}, nil
		},
	})

	w := doJSON(router, http.MethodGet, "/orders/", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var orders []models.Order
	if err := json.Unmarshal(w.Body.Bytes(), &orders); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(orders))
	}
}
