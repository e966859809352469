package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grentify/internal/repos"
	"grentify/internal/services"
)

func TestCheckout_ClearsExactlyTheSettledItems(t *testing.T) {
	db := memdb(t)
	insertCartItem(t, db, "c1", "buyer@x.test", "g1")
	insertCartItem(t, db, "c2", "buyer@x.test", "g2")
	insertCartItem(t, db, "c3", "buyer@x.test", "g3") // not part of the payment

	cartRepo := repos.NewCartRepo(db)
	orderRepo := repos.NewOrderRepo(db)
	svc := services.NewCheckoutService(orderRepo, cartRepo, true)

	res, err := svc.Checkout(services.PaymentPayload{
		UserEmail:     "buyer@x.test",
		UserName:      "Buyer",
		Total:         99.50,
		TransactionID: "txn-1",
		CartItemIDs:   []string{"c1", "c2"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, res.OrderID)
	assert.EqualValues(t, 2, res.DeletedCount)
	assert.Empty(t, res.CleanupError)

	// cart no longer lists c1/c2, c3 survives
	left, err := cartRepo.ListByUser("buyer@x.test")
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, "c3", left[0].ID)

	// the order durably references both settled ids
	o, err := orderRepo.Get(res.OrderID)
	require.NoError(t, err)
	assert.Equal(t, "PAID", o.Status)
	assert.Equal(t, "txn-1", o.TransactionID)
	ids, err := orderRepo.CartItemIDs(res.OrderID)
	require.NoError(t, err)
	assert.Equal(t, []string{"c1", "c2"}, ids)
}

func TestCheckout_InsertFailureLeavesCartUntouched(t *testing.T) {
	db := memdb(t)
	insertCartItem(t, db, "c1", "buyer@x.test", "g1")
	insertCartItem(t, db, "c2", "buyer@x.test", "g2")

	cartRepo := repos.NewCartRepo(db)
	svc := services.NewCheckoutService(repos.NewOrderRepo(db), cartRepo, true)

	// force the durability point to fail
	_, err := db.Exec(`DROP TABLE orders`)
	require.NoError(t, err)

	_, err = svc.Checkout(services.PaymentPayload{
		UserEmail:   "buyer@x.test",
		CartItemIDs: []string{"c1", "c2"},
	})
	require.Error(t, err)

	// no delete may precede a recorded order
	left, err := cartRepo.ListByUser("buyer@x.test")
	require.NoError(t, err)
	assert.Len(t, left, 2)
}

func TestCheckout_CleanupFailureReportedNotMasked(t *testing.T) {
	db := memdb(t)

	cartRepo := repos.NewCartRepo(db)
	orderRepo := repos.NewOrderRepo(db)
	// ownership check off so the missing cart table is first hit in the
	// cleanup phase
	svc := services.NewCheckoutService(orderRepo, cartRepo, false)

	_, err := db.Exec(`DROP TABLE cart_items`)
	require.NoError(t, err)

	res, err := svc.Checkout(services.PaymentPayload{
		UserEmail:   "buyer@x.test",
		CartItemIDs: []string{"c1"},
	})
	require.NoError(t, err, "a recorded order is a success even when cleanup fails")
	assert.NotEmpty(t, res.OrderID)
	assert.NotEmpty(t, res.CleanupError)
	assert.EqualValues(t, 0, res.DeletedCount)

	// the order was still durably recorded
	_, err = orderRepo.Get(res.OrderID)
	assert.NoError(t, err)
}

func TestCheckout_RejectsForeignCartItems(t *testing.T) {
	db := memdb(t)
	insertCartItem(t, db, "c1", "buyer@x.test", "g1")
	insertCartItem(t, db, "other", "someone-else@x.test", "g2")

	cartRepo := repos.NewCartRepo(db)
	svc := services.NewCheckoutService(repos.NewOrderRepo(db), cartRepo, true)

	_, err := svc.Checkout(services.PaymentPayload{
		UserEmail:   "buyer@x.test",
		CartItemIDs: []string{"c1", "other"},
	})
	assert.ErrorIs(t, err, services.ErrForeignCartItem)

	// nothing was deleted, not even the caller's own item
	left, err := cartRepo.ListByUser("buyer@x.test")
	require.NoError(t, err)
	assert.Len(t, left, 1)
}

func TestCheckout_RejectsEmptyAndAnonymousPayloads(t *testing.T) {
	db := memdb(t)
	svc := services.NewCheckoutService(repos.NewOrderRepo(db), repos.NewCartRepo(db), true)

	_, err := svc.Checkout(services.PaymentPayload{CartItemIDs: []string{"c1"}})
	assert.ErrorIs(t, err, services.ErrMissingEmail)

	_, err = svc.Checkout(services.PaymentPayload{UserEmail: "buyer@x.test"})
	assert.ErrorIs(t, err, services.ErrEmptyCheckout)
}

func TestCheckout_DuplicateIdsAreOneItem(t *testing.T) {
	db := memdb(t)
	insertCartItem(t, db, "c1", "buyer@x.test", "g1")

	cartRepo := repos.NewCartRepo(db)
	orderRepo := repos.NewOrderRepo(db)
	svc := services.NewCheckoutService(orderRepo, cartRepo, true)

	res, err := svc.Checkout(services.PaymentPayload{
		UserEmail:   "buyer@x.test",
		CartItemIDs: []string{"c1", "c1"},
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, res.DeletedCount)

	ids, err := orderRepo.CartItemIDs(res.OrderID)
	require.NoError(t, err)
	assert.Equal(t, []string{"c1"}, ids)
}
