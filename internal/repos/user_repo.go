package repos

import (
	"strings"

	"grentify/internal/domain"

	"github.com/jmoiron/sqlx"
)

type UserRepo struct{ db *sqlx.DB }

func NewUserRepo(db *sqlx.DB) *UserRepo { return &UserRepo{db: db} }

const userCols = `id, name, email, phone, role, status, created_at`

// UserFilter composes the admin listing predicate. Role and Status are
// validated at the boundary; empty means no constraint.
type UserFilter struct {
	Role   domain.Role
	Status domain.Status
	Search string // substring match on name, email or phone
}

func (f UserFilter) where() (string, []any) {
	where := `1=1`
	args := []any{}
	if f.Role != "" {
		where += ` AND role = ?`
		args = append(args, string(f.Role))
	}
	if f.Status != "" {
		where += ` AND status = ?`
		args = append(args, string(f.Status))
	}
	if f.Search != "" {
		like := "%" + strings.ToLower(f.Search) + "%"
		where += ` AND (LOWER(name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(phone) LIKE ?)`
		args = append(args, like, like, like)
	}
	return where, args
}

// Page returns one window plus the total counted under the same predicate.
func (r *UserRepo) Page(f UserFilter, limit, offset int) ([]domain.User, int, error) {
	where, args := f.where()

	var total int
	if err := r.db.Get(&total, `SELECT COUNT(*) FROM users WHERE `+where, args...); err != nil {
		return nil, 0, err
	}

	out := []domain.User{}
	pageArgs := append(args, limit, offset)
	err := r.db.Select(&out, `
	  SELECT `+userCols+` FROM users
	  WHERE `+where+`
	  ORDER BY created_at DESC, rowid DESC
	  LIMIT ? OFFSET ?`, pageArgs...)
	return out, total, err
}

type facetCounts struct {
	Pending  int `db:"pending"`
	Approved int `db:"approved"`
	Blocked  int `db:"blocked"`
	Borrower int `db:"borrower"`
	Lender   int `db:"lender"`
	Admin    int `db:"admin"`
}

// StatusFacets computes all six status/role counts in a single pass over
// the users table. Empty branches count as zero, never null.
func (r *UserRepo) StatusFacets() ([]domain.Facet, error) {
	var c facetCounts
	if err := r.db.Get(&c, `
	  SELECT
	    COALESCE(SUM(CASE WHEN status = 'pending'  THEN 1 ELSE 0 END), 0) AS pending,
	    COALESCE(SUM(CASE WHEN status = 'approved' THEN 1 ELSE 0 END), 0) AS approved,
	    COALESCE(SUM(CASE WHEN status = 'blocked'  THEN 1 ELSE 0 END), 0) AS blocked,
	    COALESCE(SUM(CASE WHEN role = 'borrower'   THEN 1 ELSE 0 END), 0) AS borrower,
	    COALESCE(SUM(CASE WHEN role = 'lender'     THEN 1 ELSE 0 END), 0) AS lender,
	    COALESCE(SUM(CASE WHEN role = 'admin'      THEN 1 ELSE 0 END), 0) AS admin
	  FROM users`); err != nil {
		return nil, err
	}
	return []domain.Facet{
		{Title: "pending", Count: c.Pending, ColorTag: "warning"},
		{Title: "approved", Count: c.Approved, ColorTag: "success"},
		{Title: "blocked", Count: c.Blocked, ColorTag: "danger"},
		{Title: "borrower", Count: c.Borrower, ColorTag: "info"},
		{Title: "lender", Count: c.Lender, ColorTag: "primary"},
		{Title: "admin", Count: c.Admin, ColorTag: "secondary"},
	}, nil
}
