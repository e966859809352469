package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grentify/internal/domain"
	"grentify/internal/repos"
	"grentify/internal/services"
)

func TestCartAdd_NoDedup(t *testing.T) {
	db := memdb(t)
	svc := services.NewCartService(repos.NewCartRepo(db))

	item := domain.CartItem{UserEmail: "buyer@x.test", GadgetID: "g1", Title: "Canon", Price: 45, Days: 3}
	id1, err := svc.Add(item)
	require.NoError(t, err)
	id2, err := svc.Add(item)
	require.NoError(t, err)
	assert.NotEqual(t, id1, id2)

	items, err := svc.ListByUser("buyer@x.test")
	require.NoError(t, err)
	assert.Len(t, items, 2, "same gadget may be carted twice")
}

func TestCartList_MissingEmailRejectedBeforeQuery(t *testing.T) {
	db := memdb(t)
	svc := services.NewCartService(repos.NewCartRepo(db))

	_, err := svc.ListByUser("")
	assert.ErrorIs(t, err, services.ErrMissingEmail)
}

func TestCartList_ScopedToOwner(t *testing.T) {
	db := memdb(t)
	insertCartItem(t, db, "c1", "a@x.test", "g1")
	insertCartItem(t, db, "c2", "b@x.test", "g1")
	svc := services.NewCartService(repos.NewCartRepo(db))

	items, err := svc.ListByUser("a@x.test")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "c1", items[0].ID)
}

func TestCartRemove_NotFoundIsDistinct(t *testing.T) {
	db := memdb(t)
	insertCartItem(t, db, "c1", "a@x.test", "g1")
	svc := services.NewCartService(repos.NewCartRepo(db))

	require.NoError(t, svc.Remove("c1"))
	assert.ErrorIs(t, svc.Remove("c1"), services.ErrNotFound)
}
