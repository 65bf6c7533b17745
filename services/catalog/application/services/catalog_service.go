package services

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	pkgcache "github.com/ghuser/cardboard/pkg/cache"
	"github.com/ghuser/cardboard/pkg/logger"
	"github.com/ghuser/cardboard/services/catalog/domain/models"
	"github.com/ghuser/cardboard/services/catalog/domain/repositories"
	domainsvcs "github.com/ghuser/cardboard/services/catalog/domain/services"
)

// CatalogService orchestrates reads over the card collection.
// The filter/sort pipeline itself is a pure domain service; this layer adds
// the optional Redis read-through cache of query results. Cache failures
// always degrade to recompute.
type CatalogService struct {
	repo  repositories.CardRepository
	cache *pkgcache.CatalogCache // nil when Redis is not configured
	log   logger.Logger
}

// NewCatalogService returns a CatalogService wired with the given repository,
// optional query cache, and logger.
func NewCatalogService(repo repositories.CardRepository, queryCache *pkgcache.CatalogCache, log logger.Logger) *CatalogService {
	return &CatalogService{repo: repo, cache: queryCache, log: log}
}

// Search runs the filter/sort pipeline over the full collection:
//  1. Check the Redis query cache first.
//  2. On cache miss (or cache error), run the pure pipeline.
//  3. Asynchronously warm the cache with the result.
func (s *CatalogService) Search(ctx context.Context, p models.QueryParams) []models.Card {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, p); err == nil {
			return cached
		} else if !errors.Is(err, redis.Nil) {
			s.log.WarnContext(ctx, "catalog: query cache read failed, recomputing", "error", err)
		}
	}

	cards := domainsvcs.Query(s.repo.All(), p)

	if s.cache != nil {
		go func() {
			if err := s.cache.Set(context.Background(), p, cards); err != nil {
				s.log.Warn("catalog: query cache write failed", "error", err)
			}
		}()
	}

	return cards
}

// GetByID retrieves a single card. Returns domain.ErrCardNotFound for
// unknown ids.
func (s *CatalogService) GetByID(ctx context.Context, id string) (models.Card, error) {
	return s.repo.GetByID(id)
}

// Facets returns the filter control values: distinct years ascending,
// distinct brands locale-sorted, and the fixed condition enumeration.
func (s *CatalogService) Facets(ctx context.Context) models.Facets {
	return s.repo.Facets()
}

// Count returns the collection size.
func (s *CatalogService) Count() int {
	return s.repo.Count()
}
