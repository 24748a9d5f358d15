package transport

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"shop-backoffice/internal/middleware"
	"shop-backoffice/internal/repository"
	"shop-backoffice/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Fixed messages shared by several handlers.
const (
	msgInvalidID   = "Invalid ID"
	msgInvalidBody = "Invalid request body"
	msgInternal    = "Internal server error"
)

// WriteGuard wraps routes that mutate state.
type WriteGuard func(http.Handler) http.Handler

// uuidParam reads a UUID path parameter.
func uuidParam(r *http.Request, name string) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, name))
}

// uuidQuery reads a required UUID query parameter.
func uuidQuery(r *http.Request, name string) (uuid.UUID, error) {
	return uuid.Parse(r.URL.Query().Get(name))
}

// optionalInt reads an integer query parameter. Absent parameters yield nil.
func optionalInt(r *http.Request, name string) (*int, error) {
	if !r.URL.Query().Has(name) {
		return nil, nil
	}
	n, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// respondCreated answers 201 with a Location pointing at the new resource.
func respondCreated(w http.ResponseWriter, r *http.Request, id uuid.UUID, body interface{}) {
	w.Header().Set("Location", strings.TrimSuffix(r.URL.Path, "/")+"/"+id.String())
	middleware.RespondWithJSON(w, http.StatusCreated, body)
}

// respondServiceError maps service and repository errors to HTTP replies.
// Not-found errors get notFoundMsg, bad input gets invalidMsg with the
// offending fields. Anything else is logged and answered with a 500.
func respondServiceError(w http.ResponseWriter, logger *zap.Logger, err error, notFoundMsg, invalidMsg string) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		middleware.RespondWithError(w, http.StatusNotFound, notFoundMsg)
	case errors.Is(err, service.ErrInvalidArgument):
		logger.Debug("Rejected invalid input", zap.Error(err))
		if details := middleware.FormatValidationErrors(err); len(details) > 0 {
			middleware.RespondWithValidationErrors(w, invalidMsg, details)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, invalidMsg)
	default:
		logger.Error("Request failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, msgInternal)
	}
}
