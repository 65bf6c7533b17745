package handlers

import (
	"net/http"

	"github.com/ghuser/cardboard/pkg/httpx"
	appsvcs "github.com/ghuser/cardboard/services/catalog/application/services"
	"github.com/ghuser/cardboard/services/catalog/domain/models"
)

// CardsResponse is returned by GET /cards.
type CardsResponse struct {
	Data  []models.Card `json:"data"`
	Total int           `json:"total" example:"19"`
} // @name CardsResponse

// GetCardsHandler handles GET /cards requests.
type GetCardsHandler struct {
	svc *appsvcs.Services
}

// NewGetCardsHandler returns a GetCardsHandler backed by the given services.
func NewGetCardsHandler(svc *appsvcs.Services) *GetCardsHandler {
	return &GetCardsHandler{svc: svc}
}

// Execute lists cards matching the query controls.
//
//	@Summary		List cards
//	@Description	Filters and sorts the card collection. All filters compose with AND.
//	@Tags			cards
//	@Produce		json
//	@Param			q			query		string	false	"Free-text search over title, player, brand, and year"
//	@Param			year		query		string	false	"Exact year match"
//	@Param			brand		query		string	false	"Exact brand match"
//	@Param			condition	query		string	false	"Exact condition match"
//	@Param			sort		query		string	false	"Sort key, e.g. price_asc; unrecognized values fall back to dateAdded_desc"
//	@Success		200			{object}	CardsResponse
//	@Router			/cards [get]
func (h *GetCardsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := models.QueryParams{
		Search:    q.Get("q"),
		Year:      q.Get("year"),
		Brand:     q.Get("brand"),
		Condition: q.Get("condition"),
		Sort:      models.ParseSortKey(q.Get("sort")),
	}

	cards := h.svc.Catalog.Search(r.Context(), params)

	httpx.JSON(w, http.StatusOK, CardsResponse{Data: cards, Total: len(cards)})
}
