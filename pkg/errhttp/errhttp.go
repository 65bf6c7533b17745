// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to Status for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/cardboard/pkg/httpx"
	catalogdomain "github.com/ghuser/cardboard/services/catalog/domain"
	inquirydomain "github.com/ghuser/cardboard/services/inquiry/domain"
)

// WriteError maps err to an HTTP status code and writes the standard
// {"message": ...} JSON error body. Uses errors.Is() so wrapped sentinel
// errors are matched correctly. Defaults to 500 Internal Server Error for
// unrecognized errors.
func WriteError(w http.ResponseWriter, err error) {
	httpx.JSONError(w, Status(err), err.Error())
}

// Status returns the HTTP status code for a domain error. Handlers that
// need an endpoint-specific body can pair Status with their own shape.
func Status(err error) int {
	switch {
	case errors.Is(err, catalogdomain.ErrCardNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, inquirydomain.ErrInvalidInquiry):
		return http.StatusBadRequest // 400
	case errors.Is(err, inquirydomain.ErrSpamDetected):
		return http.StatusBadRequest // 400
	case errors.Is(err, inquirydomain.ErrNotConfigured):
		return http.StatusInternalServerError // 500
	case errors.Is(err, inquirydomain.ErrSendFailed):
		return http.StatusInternalServerError // 500
	default:
		return http.StatusInternalServerError // 500
	}
}
