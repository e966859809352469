package services_test

import (
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"grentify/internal/repos"
)

func memdb(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlx.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, repos.EnsureSchema(db))
	return db
}

func insertGadget(t *testing.T, db *sqlx.DB, id, title string, price float64, category, lender, created string) {
	t.Helper()
	_, err := db.Exec(`
	  INSERT INTO gadgets(id,title,description,price,category,category_label,lender_email,created_at)
	  VALUES(?,?,?,?,?,?,?,?)`,
		id, title, title+" description", price, category, category, lender, created)
	require.NoError(t, err)
}

func insertCartItem(t *testing.T, db *sqlx.DB, id, email, gadgetID string) {
	t.Helper()
	_, err := db.Exec(`
	  INSERT INTO cart_items(id,user_email,gadget_id,title,price,days)
	  VALUES(?,?,?,?,?,?)`,
		id, email, gadgetID, "item "+id, 10.0, 2)
	require.NoError(t, err)
}

func insertUser(t *testing.T, db *sqlx.DB, id, email, role, status string) {
	t.Helper()
	_, err := db.Exec(`
	  INSERT INTO users(id,name,email,phone,role,status)
	  VALUES(?,?,?,?,?,?)`,
		id, "user "+id, email, "+15550000000", role, status)
	require.NoError(t, err)
}
