package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/cardboard/pkg/app"
	"github.com/ghuser/cardboard/services/catalog/application/handlers"
	appsvcs "github.com/ghuser/cardboard/services/catalog/application/services"
)

// CatalogRoutes registers catalog endpoints on the provided chi router.
func CatalogRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Group(func(r chi.Router) {
		r.Route("/cards", func(r chi.Router) {
			r.Get("/", handlers.NewGetCardsHandler(svcs).Execute)
			r.Get("/facets", handlers.NewGetFacetsHandler(svcs).Execute)
			r.Get("/{id}", handlers.NewGetCardHandler(svcs).Execute)
		})
	})
}
