package services

import (
	"grentify/internal/domain"
	"grentify/internal/repos"

	"github.com/google/uuid"
)

// OrderService covers direct order submission and the user-facing order
// views. Payment-originated orders go through CheckoutService instead.
type OrderService struct {
	Orders *repos.OrderRepo
}

func NewOrderService(orders *repos.OrderRepo) *OrderService {
	return &OrderService{Orders: orders}
}

func (s *OrderService) Create(o domain.Order) (string, error) {
	if o.UserEmail == "" {
		return "", ErrMissingEmail
	}
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	if o.Status == "" {
		o.Status = "PLACED"
	}
	if err := s.Orders.Insert(o, nil); err != nil {
		return "", err
	}
	return o.ID, nil
}

func (s *OrderService) ListByUser(email string) ([]domain.Order, error) {
	if email == "" {
		return nil, ErrMissingEmail
	}
	return s.Orders.ListByUser(email)
}

func (s *OrderService) Remove(id string) error {
	n, err := s.Orders.Delete(id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
