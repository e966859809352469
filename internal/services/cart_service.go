package services

import (
	"grentify/internal/domain"
	"grentify/internal/repos"

	"github.com/google/uuid"
)

type CartService struct {
	Carts *repos.CartRepo
}

func NewCartService(carts *repos.CartRepo) *CartService {
	return &CartService{Carts: carts}
}

// Add appends a line item without dedup: carting the same gadget twice
// produces two rows.
func (s *CartService) Add(it domain.CartItem) (string, error) {
	if it.UserEmail == "" {
		return "", ErrMissingEmail
	}
	if it.ID == "" {
		it.ID = uuid.NewString()
	}
	if err := s.Carts.Insert(it); err != nil {
		return "", err
	}
	return it.ID, nil
}

// ListByUser rejects a missing email before touching the store.
func (s *CartService) ListByUser(email string) ([]domain.CartItem, error) {
	if email == "" {
		return nil, ErrMissingEmail
	}
	return s.Carts.ListByUser(email)
}

// Remove distinguishes an id that was never there from a store failure.
func (s *CartService) Remove(id string) error {
	n, err := s.Carts.Delete(id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
