package services

import (
	"github.com/ghuser/cardboard/pkg/app"
	"github.com/ghuser/cardboard/pkg/cache"
)

// Services is the application-layer service container for this bounded context.
// It wires the pure query pipeline with its infrastructure.
type Services struct {
	Catalog *CatalogService
}

// New wires all catalog application services with infrastructure from the
// Application container. The query cache is only attached when Redis is
// configured.
func New(a *app.Application) *Services {
	var queryCache *cache.CatalogCache
	if a.Redis != nil {
		queryCache = cache.NewCatalogCache(a.Redis)
	}
	return &Services{
		Catalog: NewCatalogService(a.Catalog, queryCache, a.Logger),
	}
}
