package repos_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"grentify/internal/domain"
	"grentify/internal/repos"
	"grentify/internal/validate"
)

func TestGadgetQuery_ZeroValueMatchesEverything(t *testing.T) {
	where, args := repos.GadgetQuery{}.Where()
	assert.Equal(t, "1=1", where)
	assert.Empty(t, args)
}

func TestGadgetQuery_PredicateComposition(t *testing.T) {
	q := repos.GadgetQuery{
		Search:     "Canon",
		Categories: []string{"camera", "drone"},
		OwnerEmail: "a@x.test",
	}
	where, args := q.Where()
	assert.Equal(t, "1=1 AND LOWER(title) LIKE ? AND category IN (?,?) AND lender_email = ?", where)
	assert.Equal(t, []any{"%canon%", "camera", "drone", "a@x.test"}, args)

	q.MatchDescription = true
	where, args = q.Where()
	assert.Contains(t, where, "LOWER(description) LIKE ?")
	assert.Len(t, args, 5)
}

func TestParseCategories_DropsEmptySegments(t *testing.T) {
	assert.Nil(t, repos.ParseCategories(""))
	assert.Nil(t, repos.ParseCategories(" , ,"))
	assert.Equal(t, []string{"camera", "drone"}, repos.ParseCategories("camera, drone,"))
}

func TestGadgetQuery_SortMapping(t *testing.T) {
	assert.Equal(t, "title ASC", repos.GadgetQuery{Sort: domain.SortTitle}.OrderBy())
	assert.Equal(t, "price ASC", repos.GadgetQuery{Sort: domain.SortPriceAsc}.OrderBy())
	assert.Equal(t, "price DESC", repos.GadgetQuery{Sort: domain.SortPriceDesc}.OrderBy())
	// anything else is creation order, newest first
	assert.Equal(t, "created_at DESC, rowid DESC", repos.GadgetQuery{}.OrderBy())
	assert.Equal(t, repos.GadgetQuery{}.OrderBy(), repos.GadgetQuery{Sort: domain.ParseSort("bogus")}.OrderBy())
}

func TestGadgetQuery_WindowClamping(t *testing.T) {
	// limit below 1 becomes the default, never zero rows
	assert.Equal(t, validate.DefaultLimit, repos.GadgetQuery{}.PageLimit())
	assert.Equal(t, 25, repos.GadgetQuery{Limit: 25}.PageLimit())

	// page below 1 behaves as page 1: the offset is never negative
	assert.Equal(t, 0, repos.GadgetQuery{Page: -3, Limit: 10}.Offset())
	assert.Equal(t, 0, repos.GadgetQuery{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 20, repos.GadgetQuery{Page: 3, Limit: 10}.Offset())
}
