package service

import (
	"context"

	"github.com/ShirinKhan1/system-design/internal/models"
	"github.com/google/uuid"
)

// OrderStore is the document-store gateway for orders.
// Implemented by *repository.OrderRepository.
type OrderStore interface {
	Insert(ctx context.Context, order *models.Order) error
	List(ctx context.Context) ([]models.Order, error)
}

type OrderService struct {
	orders OrderStore
}

func NewOrderService(orders OrderStore) *OrderService {
	return &OrderService{orders: orders}
}

func (s *OrderService) CreateOrder(ctx context.Context, cmd CreateOrderCommand) (*models.Order, error) {
	order := &models.Order{
		ID:          uuid.NewString(),
		UserID:      cmd.UserID,
		PackageID:   cmd.PackageID,
		AddressFrom: cmd.AddressFrom,
		AddressTo:   cmd.AddressTo,
	}
	if err := s.orders.Insert(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) ListOrders(ctx context.Context) ([]models.Order, error) {
	return s.orders.List(ctx)
}
