package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ghuser/cardboard/pkg/httpx"
	appsvcs "github.com/ghuser/cardboard/services/inquiry/application/services"
	"github.com/ghuser/cardboard/services/inquiry/domain"
	"github.com/ghuser/cardboard/services/inquiry/domain/models"
)

// User-facing response messages. These are part of the endpoint contract —
// the storefront displays them verbatim.
const (
	msgSuccess       = "Inquiry sent successfully!"
	msgSpam          = "Spam detected."
	msgNotConfigured = "Email service is not configured correctly on the server."
	msgSendFailed    = "Failed to send email."
	msgProcessing    = "Error processing request."
)

// InquiryRequest is the request body for POST /inquiry. Phone is a honeypot:
// hidden in the storefront form, so any non-empty value marks the submission
// as automated.
type InquiryRequest struct {
	Name     string `json:"name" example:"Jo Collector"`
	Email    string `json:"email" example:"jo@example.com"`
	Message  string `json:"message" example:"Is the Griffey rookie still available?"`
	CardID   string `json:"cardId,omitempty" example:"griffey-1989-ud"`
	CardName string `json:"cardName,omitempty" example:"1989 Griffey RC"`
	Phone    string `json:"phone,omitempty"`
} // @name InquiryRequest

// InquiryResponse is returned on successful relay.
type InquiryResponse struct {
	Message string     `json:"message" example:"Inquiry sent successfully!"`
	Data    SendResult `json:"data"`
} // @name InquiryResponse

// SendResult carries the email provider's send result.
type SendResult struct {
	ID string `json:"id" example:"49a3999c-0ce1-4ea6-ab68-afcd6dc2e794"`
} // @name SendResult

// InquiryErrorResponse is returned on all inquiry error responses. Error
// carries the underlying description for send failures and unhandled errors;
// validation and configuration responses omit it.
type InquiryErrorResponse struct {
	Message string `json:"message" example:"Valid email is required."`
	Error   string `json:"error,omitempty"`
} // @name InquiryErrorResponse

// PostInquiryHandler handles POST /inquiry requests.
type PostInquiryHandler struct {
	svc *appsvcs.Services
}

// NewPostInquiryHandler returns a PostInquiryHandler backed by the given services.
func NewPostInquiryHandler(svc *appsvcs.Services) *PostInquiryHandler {
	return &PostInquiryHandler{svc: svc}
}

// Execute relays an inquiry to the store owner by email.
//
//	@Summary		Submit inquiry
//	@Description	Validates an inquiry form submission and relays it to the store owner's inbox
//	@Tags			inquiry
//	@Accept			json
//	@Produce		json
//	@Param			request	body		InquiryRequest	true	"Inquiry submission"
//	@Success		200		{object}	InquiryResponse
//	@Failure		400		{object}	InquiryErrorResponse
//	@Failure		500		{object}	InquiryErrorResponse
//	@Router			/inquiry [post]
func (h *PostInquiryHandler) Execute(w http.ResponseWriter, r *http.Request) {
	var req InquiryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSON(w, http.StatusInternalServerError, InquiryErrorResponse{
			Message: msgProcessing,
			Error:   err.Error(),
		})
		return
	}

	receipt, err := h.svc.Inquiry.Submit(r.Context(), models.Inquiry{
		Name:     req.Name,
		Email:    req.Email,
		Message:  req.Message,
		CardID:   req.CardID,
		CardName: req.CardName,
		Phone:    req.Phone,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, InquiryResponse{
		Message: msgSuccess,
		Data:    SendResult{ID: receipt.MessageID},
	})
}

// writeError maps pipeline errors to the endpoint's response contract.
// The spam branch precedes the generic validation branch: honeypot hits get
// the generic spam message, never a field-level one.
func (h *PostInquiryHandler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotConfigured):
		httpx.JSON(w, http.StatusInternalServerError, InquiryErrorResponse{Message: msgNotConfigured})
	case errors.Is(err, domain.ErrSpamDetected):
		httpx.JSON(w, http.StatusBadRequest, InquiryErrorResponse{Message: msgSpam})
	case errors.Is(err, domain.ErrInvalidInquiry):
		httpx.JSON(w, http.StatusBadRequest, InquiryErrorResponse{Message: err.Error()})
	case errors.Is(err, domain.ErrSendFailed):
		httpx.JSON(w, http.StatusInternalServerError, InquiryErrorResponse{
			Message: msgSendFailed,
			Error:   err.Error(),
		})
	default:
		httpx.JSON(w, http.StatusInternalServerError, InquiryErrorResponse{
			Message: msgProcessing,
			Error:   err.Error(),
		})
	}
}
