package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"settleup/internal/auth"
	"settleup/internal/reconcile"
	"settleup/internal/service"
	"settleup/internal/storage"
)

type errorResponse struct {
	Message string `json:"message"`
}

// errBadRequest marks malformed request bodies.
var errBadRequest = errors.New("malformed request body")

// writeJSON serializes v with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

// writeError maps domain errors to HTTP status codes. Anything unrecognized
// is a 500 with a generic message; the real error goes to the log only.
func writeError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors

	switch {
	case errors.Is(err, reconcile.ErrForbidden),
		errors.Is(err, service.ErrNotMember):
		writeJSON(w, http.StatusForbidden, errorResponse{Message: err.Error()})

	case errors.Is(err, storage.ErrNotFound),
		errors.Is(err, reconcile.ErrUnknownEvent),
		errors.Is(err, reconcile.ErrUnknownDebtor),
		errors.Is(err, reconcile.ErrUnknownMember),
		errors.Is(err, service.ErrUserNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Message: err.Error()})

	case errors.Is(err, errBadRequest),
		errors.Is(err, reconcile.ErrInvalidTransaction),
		errors.Is(err, service.ErrInvalidCurrency),
		errors.Is(err, service.ErrAlreadyMember),
		errors.Is(err, auth.ErrWeakPassword),
		errors.Is(err, auth.ErrUserExists),
		errors.Is(err, auth.ErrInvalidCredentials),
		errors.As(err, &validationErrs):
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: err.Error()})

	case errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrInvalidToken):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Message: err.Error()})

	default:
		slog.Error("Internal error", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Message: "server error"})
	}
}

// decode parses the JSON body into v and runs struct validation.
func (a *API) decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errBadRequest
	}
	return a.validate.Struct(v)
}
