package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/cardboard/pkg/errhttp"
	"github.com/ghuser/cardboard/pkg/httpx"
	appsvcs "github.com/ghuser/cardboard/services/catalog/application/services"
)

// GetCardHandler handles GET /cards/{id} requests.
type GetCardHandler struct {
	svc *appsvcs.Services
}

// NewGetCardHandler returns a GetCardHandler backed by the given services.
func NewGetCardHandler(svc *appsvcs.Services) *GetCardHandler {
	return &GetCardHandler{svc: svc}
}

// Execute returns one card by id.
//
//	@Summary		Get card
//	@Description	Returns a single card by its identifier
//	@Tags			cards
//	@Produce		json
//	@Param			id	path		string	true	"Card identifier"
//	@Success		200	{object}	models.Card
//	@Failure		404	{object}	httpx.ErrorBody
//	@Router			/cards/{id} [get]
func (h *GetCardHandler) Execute(w http.ResponseWriter, r *http.Request) {
	card, err := h.svc.Catalog.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, card)
}
