package repositories

import (
	"github.com/ghuser/cardboard/services/catalog/domain/models"
)

// CardRepository is the read-only access interface for the card collection.
// The domain layer owns this interface; infrastructure implements it.
//
// The collection is fixed at process start, so no method takes a context —
// every call is an in-memory lookup with no blocking I/O.
type CardRepository interface {
	// All returns a copy of the full collection in load order.
	All() []models.Card

	// GetByID returns the card with the given identifier.
	// Returns ErrCardNotFound when no card matches.
	GetByID(id string) (models.Card, error)

	// Count reports the number of cards in the collection.
	Count() int

	// Facets returns the distinct filter options derived from the collection.
	Facets() models.Facets
}
