package services

import (
	"database/sql"
	"errors"

	"grentify/internal/domain"
	"grentify/internal/repos"

	"github.com/google/uuid"
)

type CouponService struct {
	Coupons *repos.CouponRepo
}

func NewCouponService(coupons *repos.CouponRepo) *CouponService {
	return &CouponService{Coupons: coupons}
}

// Validate checks presence only: no expiry or usage accounting. The lookup
// is case-sensitive, so an unknown casing is an invalid coupon, not an
// error.
func (s *CouponService) Validate(code string) (domain.Coupon, error) {
	c, err := s.Coupons.ByCode(code)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Coupon{}, ErrInvalidCoupon
	}
	return c, err
}

func (s *CouponService) Create(c domain.Coupon) (string, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if err := s.Coupons.Insert(c); err != nil {
		return "", err
	}
	return c.ID, nil
}
