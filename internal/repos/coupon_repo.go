package repos

import (
	"grentify/internal/domain"

	"github.com/jmoiron/sqlx"
)

type CouponRepo struct{ db *sqlx.DB }

func NewCouponRepo(db *sqlx.DB) *CouponRepo { return &CouponRepo{db: db} }

func (r *CouponRepo) Insert(c domain.Coupon) error {
	_, err := r.db.Exec(`
	  INSERT INTO coupons(id, code, discount, description, created_at)
	  VALUES(?, ?, ?, ?, CURRENT_TIMESTAMP)
	`, c.ID, c.Code, c.Discount, c.Description)
	return err
}

// ByCode is a case-sensitive exact match: SAVE10 and save10 are different
// codes.
func (r *CouponRepo) ByCode(code string) (domain.Coupon, error) {
	var c domain.Coupon
	err := r.db.Get(&c, `
	  SELECT id, code, discount, description, created_at
	  FROM coupons WHERE code = ?`, code)
	return c, err
}
