package services_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grentify/internal/domain"
	"grentify/internal/repos"
	"grentify/internal/services"
)

func catalogFixture(t *testing.T) *services.CatalogService {
	db := memdb(t)
	insertGadget(t, db, "g1", "Canon EOS R6", 45.00, "camera", "a@x.test", "2024-01-01 10:00:00")
	insertGadget(t, db, "g2", "DJI Mini 3", 38.50, "drone", "a@x.test", "2024-01-02 10:00:00")
	insertGadget(t, db, "g3", "PlayStation 5", 22.00, "console", "b@x.test", "2024-01-03 10:00:00")
	insertGadget(t, db, "g4", "Sigma 35mm Lens", 15.00, "camera", "b@x.test", "2024-01-04 10:00:00")
	return services.NewCatalogService(repos.NewGadgetRepo(db))
}

func TestSearch_EmptyQueryReturnsEverything(t *testing.T) {
	svc := catalogFixture(t)

	got, err := svc.Search(repos.GadgetQuery{})
	require.NoError(t, err)
	require.Len(t, got, 4)
	// default sort: newest first
	assert.Equal(t, "g4", got[0].ID)
	assert.Equal(t, "g1", got[3].ID)
}

func TestSearch_TitleSubstringCaseInsensitive(t *testing.T) {
	svc := catalogFixture(t)

	got, err := svc.Search(repos.GadgetQuery{Search: "CANON"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "g1", got[0].ID)
}

func TestSearch_CategoryMembershipOrSemantics(t *testing.T) {
	svc := catalogFixture(t)

	got, err := svc.Search(repos.GadgetQuery{Categories: repos.ParseCategories("camera,console")})
	require.NoError(t, err)
	assert.Len(t, got, 3)

	// search ANDs with category
	got, err = svc.Search(repos.GadgetQuery{
		Search:     "sigma",
		Categories: repos.ParseCategories("camera,console"),
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "g4", got[0].ID)
}

func TestSearch_PriceSortsAreExactReverses(t *testing.T) {
	svc := catalogFixture(t)

	asc, err := svc.Search(repos.GadgetQuery{Sort: domain.SortPriceAsc})
	require.NoError(t, err)
	desc, err := svc.Search(repos.GadgetQuery{Sort: domain.SortPriceDesc})
	require.NoError(t, err)

	require.Len(t, asc, 4)
	require.Len(t, desc, 4)
	for i := range asc {
		assert.Equal(t, asc[i].ID, desc[len(desc)-1-i].ID)
	}
	assert.Equal(t, "g4", asc[0].ID) // cheapest first
}

func TestDashboardList_PaginationInvariant(t *testing.T) {
	svc := catalogFixture(t)

	limit := 3
	first, err := svc.DashboardList(repos.GadgetQuery{Page: 1, Limit: limit})
	require.NoError(t, err)
	assert.Equal(t, 4, first.Total)
	assert.Equal(t, 2, first.TotalPages) // ceil(4/3)
	assert.Equal(t, 1, first.CurrentPage)

	seen := 0
	for page := 1; page <= first.TotalPages; page++ {
		p, err := svc.DashboardList(repos.GadgetQuery{Page: page, Limit: limit})
		require.NoError(t, err)
		seen += len(p.Gadgets)
	}
	assert.Equal(t, first.Total, seen)
}

func TestDashboardList_TotalUsesSameFilterAsRows(t *testing.T) {
	svc := catalogFixture(t)

	p, err := svc.DashboardList(repos.GadgetQuery{
		Categories: repos.ParseCategories("camera"),
		Page:       1, Limit: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, p.Total)
	assert.Len(t, p.Gadgets, 2)
}

func TestDashboardList_SearchAlsoMatchesDescription(t *testing.T) {
	svc := catalogFixture(t)

	// fixture descriptions are "<title> description"
	p, err := svc.DashboardList(repos.GadgetQuery{
		Search: "description", MatchDescription: true, Page: 1, Limit: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, 4, p.Total)
}

func TestOwnerList_ScopedAndProjected(t *testing.T) {
	svc := catalogFixture(t)

	p, err := svc.OwnerList(repos.GadgetQuery{OwnerEmail: "a@x.test", Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 2, p.Total)
	for _, g := range p.Gadgets {
		assert.Equal(t, "a@x.test", g.LenderEmail)
	}
}

func TestPagination_ZeroLimitIsClampedNotDivisionError(t *testing.T) {
	svc := catalogFixture(t)

	p, err := svc.DashboardList(repos.GadgetQuery{Page: 0, Limit: 0})
	require.NoError(t, err)
	assert.Equal(t, 4, p.Total)
	assert.Equal(t, 1, p.CurrentPage)
	assert.Equal(t, 1, p.TotalPages) // default limit 10 covers all 4
	assert.Len(t, p.Gadgets, 4)
}

func TestSidebarSample_ToleratesSmallCatalog(t *testing.T) {
	svc := catalogFixture(t)

	got, err := svc.SidebarSample(10)
	require.NoError(t, err)
	assert.Len(t, got, 4)

	got, err = svc.SidebarSample(2)
	require.NoError(t, err)
	assert.Len(t, got, 2)
	// without replacement: no duplicates
	assert.NotEqual(t, got[0].ID, got[1].ID)
}

func TestHomePreview_NewestFirstCapped(t *testing.T) {
	svc := catalogFixture(t)

	got, err := svc.HomePreview(2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "g4", got[0].ID)
	assert.Equal(t, "g3", got[1].ID)
}

func TestByID_NotFound(t *testing.T) {
	svc := catalogFixture(t)

	g, err := svc.ByID("g1")
	require.NoError(t, err)
	assert.Equal(t, "Canon EOS R6", g.Title)

	_, err = svc.ByID("nope")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestCreateAndDelete(t *testing.T) {
	svc := catalogFixture(t)

	id, err := svc.Create(domain.Gadget{Title: "GoPro 12", Price: 12.5, Category: "camera", LenderEmail: "a@x.test"})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	require.NoError(t, svc.Delete(id))
	// second delete: the id is gone, and that is distinguishable from a
	// store failure
	assert.ErrorIs(t, svc.Delete(id), services.ErrNotFound)
}

func TestDashboardList_ManyPagesSumToTotal(t *testing.T) {
	db := memdb(t)
	for i := 0; i < 23; i++ {
		insertGadget(t, db, fmt.Sprintf("g%02d", i), fmt.Sprintf("Gadget %02d", i),
			float64(i), "misc", "a@x.test", fmt.Sprintf("2024-02-01 10:00:%02d", i))
	}
	svc := services.NewCatalogService(repos.NewGadgetRepo(db))

	limit := 5
	first, err := svc.DashboardList(repos.GadgetQuery{Page: 1, Limit: limit})
	require.NoError(t, err)
	require.Equal(t, 23, first.Total)
	require.Equal(t, 5, first.TotalPages)

	seen := map[string]bool{}
	for page := 1; page <= first.TotalPages; page++ {
		p, err := svc.DashboardList(repos.GadgetQuery{Page: page, Limit: limit})
		require.NoError(t, err)
		for _, g := range p.Gadgets {
			require.False(t, seen[g.ID], "gadget %s served twice", g.ID)
			seen[g.ID] = true
		}
	}
	assert.Len(t, seen, 23)
}
