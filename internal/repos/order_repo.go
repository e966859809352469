package repos

import (
	"grentify/internal/domain"

	"github.com/jmoiron/sqlx"
)

type OrderRepo struct{ db *sqlx.DB }

func NewOrderRepo(db *sqlx.DB) *OrderRepo { return &OrderRepo{db: db} }

const orderCols = `id, user_email, user_name, total, status, transaction_id, created_at`

// Insert records the order header plus the settled cart item ids in one
// transaction: either the whole order exists or none of it does.
func (r *OrderRepo) Insert(o domain.Order, cartItemIDs []string) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`
	  INSERT INTO orders(id, user_email, user_name, total, status, transaction_id, created_at)
	  VALUES(?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
	`, o.ID, o.UserEmail, o.UserName, o.Total, o.Status, o.TransactionID); err != nil {
		return err
	}
	for _, cid := range cartItemIDs {
		if _, err := tx.Exec(`
		  INSERT INTO order_cart_items(order_id, cart_item_id) VALUES(?, ?)
		`, o.ID, cid); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *OrderRepo) Get(id string) (domain.Order, error) {
	var o domain.Order
	err := r.db.Get(&o, `SELECT `+orderCols+` FROM orders WHERE id = ?`, id)
	return o, err
}

// CartItemIDs returns the cart item ids a payment-originated order settled.
func (r *OrderRepo) CartItemIDs(orderID string) ([]string, error) {
	out := []string{}
	err := r.db.Select(&out, `
	  SELECT cart_item_id FROM order_cart_items WHERE order_id = ? ORDER BY cart_item_id`, orderID)
	return out, err
}

func (r *OrderRepo) ListByUser(email string) ([]domain.Order, error) {
	out := []domain.Order{}
	err := r.db.Select(&out, `
	  SELECT `+orderCols+` FROM orders
	  WHERE user_email = ?
	  ORDER BY created_at DESC, rowid DESC`, email)
	return out, err
}

// Page returns one window of all orders, newest first, plus the total.
func (r *OrderRepo) Page(limit, offset int) ([]domain.Order, int, error) {
	var total int
	if err := r.db.Get(&total, `SELECT COUNT(*) FROM orders`); err != nil {
		return nil, 0, err
	}
	out := []domain.Order{}
	err := r.db.Select(&out, `
	  SELECT `+orderCols+` FROM orders
	  ORDER BY created_at DESC, rowid DESC
	  LIMIT ? OFFSET ?`, limit, offset)
	return out, total, err
}

func (r *OrderRepo) Delete(id string) (int64, error) {
	res, err := r.db.Exec(`DELETE FROM orders WHERE id = ?`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
