package models

// SortKey selects the comparator applied after filtering.
type SortKey string

// Supported sort keys. Missing price/averageValue compares as +Inf, so
// "inquire" cards land last ascending and first descending.
const (
	SortDateAddedDesc    SortKey = "dateAdded_desc"
	SortDateAddedAsc     SortKey = "dateAdded_asc"
	SortYearDesc         SortKey = "year_desc"
	SortYearAsc          SortKey = "year_asc"
	SortPriceAsc         SortKey = "price_asc"
	SortPriceDesc        SortKey = "price_desc"
	SortAverageValueAsc  SortKey = "averageValue_asc"
	SortAverageValueDesc SortKey = "averageValue_desc"
	SortTitleAsc         SortKey = "title_asc"
	SortTitleDesc        SortKey = "title_desc"
)

// DefaultSort is applied when no sort key (or an unrecognized one) is given.
const DefaultSort = SortDateAddedDesc

// ParseSortKey normalizes a raw sort parameter. Unknown values fall back to
// DefaultSort rather than erroring — a stale bookmark should still render.
func ParseSortKey(s string) SortKey {
	switch k := SortKey(s); k {
	case SortDateAddedDesc, SortDateAddedAsc,
		SortYearDesc, SortYearAsc,
		SortPriceAsc, SortPriceDesc,
		SortAverageValueAsc, SortAverageValueDesc,
		SortTitleAsc, SortTitleDesc:
		return k
	default:
		return DefaultSort
	}
}

// QueryParams are the filter and sort selections for one catalog view.
// All filters are optional and compose with logical AND. Year is kept as a
// string because it arrives as a URL parameter and is compared against the
// decimal form of the card year.
type QueryParams struct {
	Search    string
	Year      string
	Brand     string
	Condition string
	Sort      SortKey
}

// Facets are the distinct filter options derived from the collection,
// used to populate the browse dropdowns.
type Facets struct {
	Years      []int    `json:"years"`
	Brands     []string `json:"brands"`
	Conditions []string `json:"conditions"`
}
