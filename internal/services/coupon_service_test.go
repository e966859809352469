package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grentify/internal/domain"
	"grentify/internal/repos"
	"grentify/internal/services"
)

func TestCouponValidate_CaseSensitive(t *testing.T) {
	db := memdb(t)
	svc := services.NewCouponService(repos.NewCouponRepo(db))

	_, err := svc.Create(domain.Coupon{Code: "SAVE10", Discount: 10})
	require.NoError(t, err)

	c, err := svc.Validate("SAVE10")
	require.NoError(t, err)
	assert.Equal(t, "SAVE10", c.Code)

	_, err = svc.Validate("save10")
	assert.ErrorIs(t, err, services.ErrInvalidCoupon)
}

func TestCouponValidate_UnknownCodeIsClientOutcome(t *testing.T) {
	db := memdb(t)
	svc := services.NewCouponService(repos.NewCouponRepo(db))

	_, err := svc.Validate("NOPE")
	assert.ErrorIs(t, err, services.ErrInvalidCoupon)
}
