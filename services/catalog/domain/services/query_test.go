package services

import (
	"reflect"
	"testing"
	"time"

	"github.com/ghuser/cardboard/services/catalog/domain/models"
)

func fp(v float64) *float64 { return &v }

func card(id string, year int, price *float64, added models.Date) models.Card {
	return models.Card{
		ID:        id,
		Title:     "Card " + id,
		Player:    "Player " + id,
		Year:      year,
		Brand:     "Topps",
		Condition: models.ConditionNearMint,
		Price:     price,
		DateAdded: added,
	}
}

// fixture returns the three-card example collection:
// A(1989, price 650), B(1964, no price), C(2011, price 425),
// added in A, B, C order on consecutive days.
func fixture() []models.Card {
	return []models.Card{
		card("A", 1989, fp(650), models.NewDate(2024, time.March, 1)),
		card("B", 1964, nil, models.NewDate(2024, time.March, 2)),
		card("C", 2011, fp(425), models.NewDate(2024, time.March, 3)),
	}
}

func ids(cards []models.Card) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.ID
	}
	return out
}

func TestQuery_PriceSortWithMissingValues(t *testing.T) {
	tests := []struct {
		sort models.SortKey
		want []string
	}{
		{models.SortPriceAsc, []string{"C", "A", "B"}},
		{models.SortPriceDesc, []string{"B", "A", "C"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.sort), func(t *testing.T) {
			got := ids(Query(fixture(), models.QueryParams{Sort: tt.sort}))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestQuery_DefaultSortIsDateAddedDesc(t *testing.T) {
	tests := []struct {
		name string
		sort models.SortKey
	}{
		{"empty params", ""},
		{"unrecognized key", models.ParseSortKey("bogus_asc")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Query(fixture(), models.QueryParams{Sort: tt.sort}))
			want := []string{"C", "B", "A"}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("got %v, want %v", got, want)
			}
		})
	}
}

func TestQuery_SortKeys(t *testing.T) {
	tests := []struct {
		sort models.SortKey
		want []string
	}{
		{models.SortDateAddedAsc, []string{"A", "B", "C"}},
		{models.SortYearAsc, []string{"B", "A", "C"}},
		{models.SortYearDesc, []string{"C", "A", "B"}},
		{models.SortTitleAsc, []string{"A", "B", "C"}},
		{models.SortTitleDesc, []string{"C", "B", "A"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.sort), func(t *testing.T) {
			got := ids(Query(fixture(), models.QueryParams{Sort: tt.sort}))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestQuery_FreeTextSearch(t *testing.T) {
	cards := []models.Card{
		{ID: "griffey", Title: "1989 Upper Deck Ken Griffey Jr. RC", Player: "Ken Griffey Jr.", Brand: "Upper Deck", Year: 1989, DateAdded: models.NewDate(2024, 1, 1)},
		{ID: "mantle", Title: "1952 Topps Mickey Mantle", Player: "Mickey Mantle", Brand: "Topps", Year: 1952, DateAdded: models.NewDate(2024, 1, 2)},
		{ID: "trout", Title: "2011 Topps Update Mike Trout RC", Player: "Mike Trout", Brand: "Topps", Year: 2011, DateAdded: models.NewDate(2024, 1, 3)},
	}

	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{"matches title", "upper deck ken", []string{"griffey"}},
		{"matches player case-insensitively", "MICKEY", []string{"mantle"}},
		{"matches brand", "topps", []string{"trout", "mantle"}},
		{"matches year substring", "19", []string{"mantle", "griffey"}},
		{"trimmed before matching", "  trout  ", []string{"trout"}},
		{"no match", "jordan", []string{}},
		{"empty keeps all", "", []string{"trout", "mantle", "griffey"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Query(cards, models.QueryParams{Search: tt.search}))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("search %q: got %v, want %v", tt.search, got, tt.want)
			}
		})
	}
}

func TestQuery_ExactFilters(t *testing.T) {
	cards := fixture()
	cards[1].Brand = "Upper Deck"
	cards[1].Condition = models.ConditionGood

	tests := []struct {
		name   string
		params models.QueryParams
		want   []string
	}{
		{"year", models.QueryParams{Year: "1989"}, []string{"A"}},
		{"year no match", models.QueryParams{Year: "1990"}, []string{}},
		{"brand", models.QueryParams{Brand: "Upper Deck"}, []string{"B"}},
		{"condition", models.QueryParams{Condition: models.ConditionGood}, []string{"B"}},
		{"filters AND-compose", models.QueryParams{Brand: "Topps", Year: "2011"}, []string{"C"}},
		{"conflicting filters empty", models.QueryParams{Brand: "Upper Deck", Year: "2011"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.params.Sort = models.SortDateAddedAsc
			got := ids(Query(cards, tt.params))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

// TestQuery_ReturnsSubset checks the pipeline never invents or duplicates
// entries: every result id exists exactly once in the input.
func TestQuery_ReturnsSubset(t *testing.T) {
	cards := fixture()
	params := []models.QueryParams{
		{},
		{Search: "card"},
		{Year: "1989"},
		{Search: "card", Brand: "Topps", Sort: models.SortPriceAsc},
	}
	inputIDs := make(map[string]bool, len(cards))
	for _, c := range cards {
		inputIDs[c.ID] = true
	}

	for _, p := range params {
		got := Query(cards, p)
		seen := make(map[string]bool, len(got))
		for _, c := range got {
			if !inputIDs[c.ID] {
				t.Errorf("params %+v: result contains invented id %q", p, c.ID)
			}
			if seen[c.ID] {
				t.Errorf("params %+v: duplicate id %q", p, c.ID)
			}
			seen[c.ID] = true
		}
	}
}

// TestQuery_StableSort: cards with equal sort keys keep collection order,
// and identical inputs always produce identical output order.
func TestQuery_StableSort(t *testing.T) {
	samePrice := fp(100)
	cards := []models.Card{
		card("first", 1980, samePrice, models.NewDate(2024, 1, 1)),
		card("second", 1981, samePrice, models.NewDate(2024, 1, 1)),
		card("third", 1982, samePrice, models.NewDate(2024, 1, 1)),
	}

	want := []string{"first", "second", "third"}
	for _, key := range []models.SortKey{models.SortPriceAsc, models.SortPriceDesc, models.SortDateAddedDesc} {
		for range 3 {
			got := ids(Query(cards, models.QueryParams{Sort: key}))
			if !reflect.DeepEqual(got, want) {
				t.Fatalf("sort %s: got %v, want %v", key, got, want)
			}
		}
	}
}

// TestQuery_DoesNotMutateInput: the caller's slice must keep its order.
func TestQuery_DoesNotMutateInput(t *testing.T) {
	cards := fixture()
	before := ids(cards)

	_ = Query(cards, models.QueryParams{Search: "A", Sort: models.SortPriceAsc})

	if got := ids(cards); !reflect.DeepEqual(got, before) {
		t.Errorf("input mutated: got %v, want %v", got, before)
	}
}

func TestQuery_AverageValueSort(t *testing.T) {
	cards := []models.Card{
		card("low", 1980, nil, models.NewDate(2024, 1, 1)),
		card("high", 1981, nil, models.NewDate(2024, 1, 2)),
		card("none", 1982, nil, models.NewDate(2024, 1, 3)),
	}
	cards[0].AverageValue = fp(50)
	cards[1].AverageValue = fp(900)

	asc := ids(Query(cards, models.QueryParams{Sort: models.SortAverageValueAsc}))
	if want := []string{"low", "high", "none"}; !reflect.DeepEqual(asc, want) {
		t.Errorf("asc: got %v, want %v", asc, want)
	}
	desc := ids(Query(cards, models.QueryParams{Sort: models.SortAverageValueDesc}))
	if want := []string{"none", "high", "low"}; !reflect.DeepEqual(desc, want) {
		t.Errorf("desc: got %v, want %v", desc, want)
	}
}
