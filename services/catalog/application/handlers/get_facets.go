package handlers

import (
	"net/http"

	"github.com/ghuser/cardboard/pkg/httpx"
	appsvcs "github.com/ghuser/cardboard/services/catalog/application/services"
)

// GetFacetsHandler handles GET /cards/facets requests.
type GetFacetsHandler struct {
	svc *appsvcs.Services
}

// NewGetFacetsHandler returns a GetFacetsHandler backed by the given services.
func NewGetFacetsHandler(svc *appsvcs.Services) *GetFacetsHandler {
	return &GetFacetsHandler{svc: svc}
}

// Execute returns the filter control values for the catalog UI.
//
//	@Summary		List facets
//	@Description	Distinct years and brands present in the collection, plus the fixed condition list
//	@Tags			cards
//	@Produce		json
//	@Success		200	{object}	models.Facets
//	@Router			/cards/facets [get]
func (h *GetFacetsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.svc.Catalog.Facets(r.Context()))
}
