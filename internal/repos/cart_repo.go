package repos

import (
	"grentify/internal/domain"

	"github.com/jmoiron/sqlx"
)

type CartRepo struct{ db *sqlx.DB }

func NewCartRepo(db *sqlx.DB) *CartRepo { return &CartRepo{db: db} }

// Insert appends a line item. No dedup against existing rows: the same
// gadget may sit in a cart more than once.
func (r *CartRepo) Insert(it domain.CartItem) error {
	days := it.Days
	if days < 1 {
		days = 1
	}
	_, err := r.db.Exec(`
	  INSERT INTO cart_items(id, user_email, gadget_id, title, price, days, note, created_at)
	  VALUES(?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
	`, it.ID, it.UserEmail, it.GadgetID, it.Title, it.Price, days, it.Note)
	return err
}

func (r *CartRepo) ListByUser(email string) ([]domain.CartItem, error) {
	out := []domain.CartItem{}
	err := r.db.Select(&out, `
	  SELECT id, user_email, gadget_id, title, price, days, note, created_at
	  FROM cart_items
	  WHERE user_email = ?
	  ORDER BY created_at DESC, rowid DESC`, email)
	return out, err
}

func (r *CartRepo) Get(id string) (domain.CartItem, error) {
	var it domain.CartItem
	err := r.db.Get(&it, `
	  SELECT id, user_email, gadget_id, title, price, days, note, created_at
	  FROM cart_items WHERE id = ?`, id)
	return it, err
}

// Delete reports rows affected; zero means the id was already gone.
func (r *CartRepo) Delete(id string) (int64, error) {
	res, err := r.db.Exec(`DELETE FROM cart_items WHERE id = ?`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// DeleteOwned deletes the item only when it belongs to the given user.
func (r *CartRepo) DeleteOwned(id, email string) (int64, error) {
	res, err := r.db.Exec(`DELETE FROM cart_items WHERE id = ? AND user_email = ?`, id, email)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// OwnedBy reports how many of the given ids belong to the user. Checkout
// uses it to verify a payment only settles the payer's own items.
func (r *CartRepo) OwnedBy(ids []string, email string) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	query, args, err := sqlx.In(`SELECT COUNT(*) FROM cart_items WHERE id IN (?) AND user_email = ?`, ids, email)
	if err != nil {
		return 0, err
	}
	var n int
	err = r.db.Get(&n, r.db.Rebind(query), args...)
	return n, err
}

// DeleteMany removes every listed id and reports how many rows went away.
// Ids that are already gone simply do not count.
func (r *CartRepo) DeleteMany(ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	query, args, err := sqlx.In(`DELETE FROM cart_items WHERE id IN (?)`, ids)
	if err != nil {
		return 0, err
	}
	res, err := r.db.Exec(r.db.Rebind(query), args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
