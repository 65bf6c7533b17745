package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/cardboard/pkg/app"
	"github.com/ghuser/cardboard/services/inquiry/application/handlers"
	appsvcs "github.com/ghuser/cardboard/services/inquiry/application/services"
)

// InquiryRoutes registers inquiry endpoints on the provided chi router.
func InquiryRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Group(func(r chi.Router) {
		r.Post("/inquiry", handlers.NewPostInquiryHandler(svcs).Execute)
	})
}
