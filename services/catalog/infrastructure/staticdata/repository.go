// Package staticdata implements the catalog repository over a seed file
// embedded at build time. The collection is parsed and invariant-checked
// once at startup and never changes afterwards, so reads need no locking.
package staticdata

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	catalogdomain "github.com/ghuser/cardboard/services/catalog/domain"
	"github.com/ghuser/cardboard/services/catalog/domain/models"
)

//go:embed cards.json
var seed []byte

// Repository is an immutable in-memory card collection.
type Repository struct {
	cards []models.Card
	byID  map[string]int
}

// Load parses the embedded seed and verifies collection invariants:
// per-card structural checks plus id uniqueness across the collection.
func Load() (*Repository, error) {
	return load(seed)
}

func load(data []byte) (*Repository, error) {
	var cards []models.Card
	if err := json.Unmarshal(data, &cards); err != nil {
		return nil, fmt.Errorf("%w: parse seed: %w", catalogdomain.ErrInvalidCollection, err)
	}

	byID := make(map[string]int, len(cards))
	for i, c := range cards {
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %w", catalogdomain.ErrInvalidCollection, err)
		}
		if _, dup := byID[c.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate card id %q", catalogdomain.ErrInvalidCollection, c.ID)
		}
		byID[c.ID] = i
	}

	return &Repository{cards: cards, byID: byID}, nil
}

// All returns a copy of the collection in load order. Callers may reorder
// or filter the returned slice freely.
func (r *Repository) All() []models.Card {
	out := make([]models.Card, len(r.cards))
	copy(out, r.cards)
	return out
}

// GetByID returns the card with the given identifier.
func (r *Repository) GetByID(id string) (models.Card, error) {
	i, ok := r.byID[id]
	if !ok {
		return models.Card{}, fmt.Errorf("%w: %q", catalogdomain.ErrCardNotFound, id)
	}
	return r.cards[i], nil
}

// Count reports the number of cards in the collection.
func (r *Repository) Count() int {
	return len(r.cards)
}

// Facets derives the distinct filter options offered by the browse
// controls: years ascending, brands locale-sorted, plus the fixed
// condition grades.
func (r *Repository) Facets() models.Facets {
	yearSet := make(map[int]struct{})
	brandSet := make(map[string]struct{})
	for _, c := range r.cards {
		yearSet[c.Year] = struct{}{}
		brandSet[c.Brand] = struct{}{}
	}

	years := make([]int, 0, len(yearSet))
	for y := range yearSet {
		years = append(years, y)
	}
	sort.Ints(years)

	brands := make([]string, 0, len(brandSet))
	for b := range brandSet {
		brands = append(brands, b)
	}
	collate.New(language.English, collate.Loose).SortStrings(brands)

	return models.Facets{
		Years:      years,
		Brands:     brands,
		Conditions: models.Conditions(),
	}
}
