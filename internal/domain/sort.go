package domain

type SortOrder string

const (
	SortNewest    SortOrder = "newest"
	SortTitle     SortOrder = "title"
	SortPriceAsc  SortOrder = "price_asc"
	SortPriceDesc SortOrder = "price_desc"
)

// ParseSort never fails: anything other than the three named orders falls
// back to newest-first, including the empty string.
func ParseSort(s string) SortOrder {
	switch SortOrder(s) {
	case SortTitle, SortPriceAsc, SortPriceDesc:
		return SortOrder(s)
	}
	return SortNewest
}
