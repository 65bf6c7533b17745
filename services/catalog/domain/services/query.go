// Package services contains stateless domain services for the catalog
// bounded context. The query pipeline is a pure function over the in-memory
// collection: no I/O, no mutation of the input slice.
package services

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/ghuser/cardboard/services/catalog/domain/models"
)

// Query filters and sorts the collection for one catalog view.
//
// Filters apply in order (free-text, year, brand, condition) and compose
// with logical AND; the final set is the same regardless of order. Sorting
// is stable — cards with equal keys keep their collection order.
func Query(cards []models.Card, p models.QueryParams) []models.Card {
	out := make([]models.Card, len(cards))
	copy(out, cards)

	if term := strings.ToLower(strings.TrimSpace(p.Search)); term != "" {
		out = keep(out, func(c models.Card) bool { return matchesSearch(c, term) })
	}
	if p.Year != "" {
		out = keep(out, func(c models.Card) bool { return strconv.Itoa(c.Year) == p.Year })
	}
	if p.Brand != "" {
		out = keep(out, func(c models.Card) bool { return c.Brand == p.Brand })
	}
	if p.Condition != "" {
		out = keep(out, func(c models.Card) bool { return c.Condition == p.Condition })
	}

	sortCards(out, p.Sort)
	return out
}

// matchesSearch reports whether any searchable field contains the
// (already lowercased) term. The year matches on its decimal string form,
// so "198" matches 1987 and 1989.
func matchesSearch(c models.Card, term string) bool {
	return strings.Contains(strings.ToLower(c.Title), term) ||
		strings.Contains(strings.ToLower(c.Player), term) ||
		strings.Contains(strings.ToLower(c.Brand), term) ||
		strings.Contains(strconv.Itoa(c.Year), term)
}

// keep filters in place. The caller owns the slice (Query copies up front),
// so reuse of the backing array is safe.
func keep(cards []models.Card, pred func(models.Card) bool) []models.Card {
	kept := cards[:0]
	for _, c := range cards {
		if pred(c) {
			kept = append(kept, c)
		}
	}
	return kept
}

func sortCards(cards []models.Card, key models.SortKey) {
	switch key {
	case models.SortDateAddedAsc:
		stableSort(cards, func(a, b models.Card) bool { return a.DateAdded.Before(b.DateAdded.Time) })
	case models.SortYearDesc:
		stableSort(cards, func(a, b models.Card) bool { return a.Year > b.Year })
	case models.SortYearAsc:
		stableSort(cards, func(a, b models.Card) bool { return a.Year < b.Year })
	case models.SortPriceAsc:
		stableSort(cards, func(a, b models.Card) bool {
			return orInf(a.Price) < orInf(b.Price)
		})
	case models.SortPriceDesc:
		stableSort(cards, func(a, b models.Card) bool {
			return orInf(a.Price) > orInf(b.Price)
		})
	case models.SortAverageValueAsc:
		stableSort(cards, func(a, b models.Card) bool {
			return orInf(a.AverageValue) < orInf(b.AverageValue)
		})
	case models.SortAverageValueDesc:
		stableSort(cards, func(a, b models.Card) bool {
			return orInf(a.AverageValue) > orInf(b.AverageValue)
		})
	case models.SortTitleAsc:
		c := titleCollator()
		stableSort(cards, func(a, b models.Card) bool { return c.CompareString(a.Title, b.Title) < 0 })
	case models.SortTitleDesc:
		c := titleCollator()
		stableSort(cards, func(a, b models.Card) bool { return c.CompareString(b.Title, a.Title) < 0 })
	default:
		// dateAdded_desc, including unrecognized keys.
		stableSort(cards, func(a, b models.Card) bool { return b.DateAdded.Before(a.DateAdded.Time) })
	}
}

// titleCollator returns a locale-aware collator for title comparisons.
// A Collator is not safe for concurrent use, so each sort gets its own.
func titleCollator() *collate.Collator {
	return collate.New(language.English, collate.Loose)
}

// orInf returns the value, or +Inf when nil. "Inquire" cards sort last
// ascending and first descending.
func orInf(v *float64) float64 {
	if v == nil {
		return math.Inf(1)
	}
	return *v
}

// stableSort keeps collection order for equal keys.
func stableSort(cards []models.Card, less func(a, b models.Card) bool) {
	sort.SliceStable(cards, func(i, j int) bool { return less(cards[i], cards[j]) })
}
