package repos

import (
	"strings"

	"grentify/internal/domain"
	"grentify/internal/validate"
)

// GadgetQuery translates the loose catalog query parameters into a SQL
// predicate, sort and window. The zero value matches every gadget, newest
// first, first page of validate.DefaultLimit rows.
type GadgetQuery struct {
	Search           string
	Categories       []string
	OwnerEmail       string
	MatchDescription bool // dashboard variants also search the description
	Sort             domain.SortOrder
	Page             int
	Limit            int
}

// ParseCategories splits the comma-separated category parameter, dropping
// empty segments so ",," imposes no constraint.
func ParseCategories(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Where builds the filter. Search and category are ANDed together; the
// categories themselves are a membership test (OR across values).
func (q GadgetQuery) Where() (string, []any) {
	where := `1=1`
	args := []any{}
	if q.Search != "" {
		like := "%" + strings.ToLower(q.Search) + "%"
		if q.MatchDescription {
			where += ` AND (LOWER(title) LIKE ? OR LOWER(description) LIKE ?)`
			args = append(args, like, like)
		} else {
			where += ` AND LOWER(title) LIKE ?`
			args = append(args, like)
		}
	}
	if len(q.Categories) > 0 {
		where += ` AND category IN (?` + strings.Repeat(`,?`, len(q.Categories)-1) + `)`
		for _, c := range q.Categories {
			args = append(args, c)
		}
	}
	if q.OwnerEmail != "" {
		where += ` AND lender_email = ?`
		args = append(args, q.OwnerEmail)
	}
	return where, args
}

func (q GadgetQuery) OrderBy() string {
	switch q.Sort {
	case domain.SortTitle:
		return `title ASC`
	case domain.SortPriceAsc:
		return `price ASC`
	case domain.SortPriceDesc:
		return `price DESC`
	}
	// creation order, newest first; rowid breaks same-second ties
	return `created_at DESC, rowid DESC`
}

// PageLimit and Offset carry the explicit clamping contract: limit below 1
// becomes the default, page below 1 behaves as page 1, offset is never
// negative.
func (q GadgetQuery) PageLimit() int {
	if q.Limit < 1 {
		return validate.DefaultLimit
	}
	return q.Limit
}

func (q GadgetQuery) Offset() int {
	page := q.Page
	if page < 1 {
		page = 1
	}
	return (page - 1) * q.PageLimit()
}
