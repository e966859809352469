package repos

import (
	"grentify/internal/domain"

	"github.com/jmoiron/sqlx"
)

type GadgetRepo struct{ db *sqlx.DB }

func NewGadgetRepo(db *sqlx.DB) *GadgetRepo { return &GadgetRepo{db: db} }

const gadgetCols = `id, title, description, price, category, category_label, lender_email, created_at`

func (r *GadgetRepo) Insert(g domain.Gadget) error {
	_, err := r.db.Exec(`
	  INSERT INTO gadgets(id, title, description, price, category, category_label, lender_email, created_at)
	  VALUES(?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
	`, g.ID, g.Title, g.Description, g.Price, g.Category, g.CategoryLabel, g.LenderEmail)
	return err
}

func (r *GadgetRepo) Get(id string) (domain.Gadget, error) {
	var g domain.Gadget
	err := r.db.Get(&g, `SELECT `+gadgetCols+` FROM gadgets WHERE id = ?`, id)
	return g, err
}

// List returns the full filtered result set in the resolved sort order.
func (r *GadgetRepo) List(q GadgetQuery) ([]domain.Gadget, error) {
	where, args := q.Where()
	out := []domain.Gadget{}
	err := r.db.Select(&out, `
	  SELECT `+gadgetCols+` FROM gadgets
	  WHERE `+where+`
	  ORDER BY `+q.OrderBy(), args...)
	return out, err
}

// Page returns one window plus the total under the same predicate. The
// count never uses a different filter than the rows.
func (r *GadgetRepo) Page(q GadgetQuery) ([]domain.Gadget, int, error) {
	where, args := q.Where()

	var total int
	if err := r.db.Get(&total, `SELECT COUNT(*) FROM gadgets WHERE `+where, args...); err != nil {
		return nil, 0, err
	}

	out := []domain.Gadget{}
	pageArgs := append(args, q.PageLimit(), q.Offset())
	err := r.db.Select(&out, `
	  SELECT `+gadgetCols+` FROM gadgets
	  WHERE `+where+`
	  ORDER BY `+q.OrderBy()+`
	  LIMIT ? OFFSET ?`, pageArgs...)
	return out, total, err
}

// PageSummaries is Page projected down to the owner-dashboard field set.
func (r *GadgetRepo) PageSummaries(q GadgetQuery) ([]domain.GadgetSummary, int, error) {
	where, args := q.Where()

	var total int
	if err := r.db.Get(&total, `SELECT COUNT(*) FROM gadgets WHERE `+where, args...); err != nil {
		return nil, 0, err
	}

	out := []domain.GadgetSummary{}
	pageArgs := append(args, q.PageLimit(), q.Offset())
	err := r.db.Select(&out, `
	  SELECT id, title, price, category, lender_email, created_at FROM gadgets
	  WHERE `+where+`
	  ORDER BY `+q.OrderBy()+`
	  LIMIT ? OFFSET ?`, pageArgs...)
	return out, total, err
}

// Sample returns up to n gadgets uniformly at random without replacement.
// A catalog smaller than n yields the whole catalog.
func (r *GadgetRepo) Sample(n int) ([]domain.Gadget, error) {
	out := []domain.Gadget{}
	err := r.db.Select(&out, `
	  SELECT `+gadgetCols+` FROM gadgets
	  ORDER BY RANDOM()
	  LIMIT ?`, n)
	return out, err
}

func (r *GadgetRepo) Newest(n int) ([]domain.Gadget, error) {
	out := []domain.Gadget{}
	err := r.db.Select(&out, `
	  SELECT `+gadgetCols+` FROM gadgets
	  ORDER BY created_at DESC, rowid DESC
	  LIMIT ?`, n)
	return out, err
}

// Delete reports rows affected so callers can tell not-found from a store
// failure.
func (r *GadgetRepo) Delete(id string) (int64, error) {
	res, err := r.db.Exec(`DELETE FROM gadgets WHERE id = ?`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Categories lists the distinct filter values present in the catalog.
func (r *GadgetRepo) Categories() ([]string, error) {
	out := []string{}
	err := r.db.Select(&out, `SELECT DISTINCT category FROM gadgets ORDER BY category`)
	return out, err
}
