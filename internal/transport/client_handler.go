package transport

import (
	"errors"
	"net/http"

	"shop-backoffice/internal/dto"
	"shop-backoffice/internal/middleware"
	"shop-backoffice/internal/repository"
	"shop-backoffice/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const (
	msgInvalidClient       = "Invalid client data"
	msgClientNotFound      = "Invalid ID"
	msgInvalidPagination   = "Invalid limit or offset (< 1)"
	msgMissingName         = "firstName and lastName are required"
	msgClientAddressFailed = "Invalid client ID or invalid address"
)

// ClientHandler handles HTTP requests for client operations
type ClientHandler struct {
	clientService service.ClientService
	logger        *zap.Logger
}

// NewClientHandler creates a new ClientHandler
func NewClientHandler(clientService service.ClientService, logger *zap.Logger) *ClientHandler {
	return &ClientHandler{
		clientService: clientService,
		logger:        logger,
	}
}

// RegisterRoutes registers all client routes
func (h *ClientHandler) RegisterRoutes(r chi.Router, guard WriteGuard) {
	r.Route("/clients", func(r chi.Router) {
		r.Get("/", h.GetAll)
		r.Get("/search", h.Search)
		r.Get("/{id}", h.GetByID)

		r.Group(func(r chi.Router) {
			r.Use(guard)
			r.Post("/", h.Add)
			r.Delete("/", h.DeleteByID)
			r.Patch("/{id}/address", h.ChangeAddress)
		})
	})
}

// Add handles client registration
func (h *ClientHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req dto.ClientDTO
	if err := middleware.DecodeJSON(r, &req); err != nil {
		h.logger.Debug("Client decode failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusBadRequest, msgInvalidClient)
		return
	}

	client, err := h.clientService.Add(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.logger, err, msgClientNotFound, msgInvalidClient)
		return
	}

	h.logger.Info("Client added", zap.String("client_id", client.ID.String()))
	respondCreated(w, r, client.ID, client)
}

// DeleteByID handles client removal
func (h *ClientHandler) DeleteByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuidQuery(r, "id")
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, msgInvalidID)
		return
	}

	if err := h.clientService.DeleteByID(r.Context(), id); err != nil {
		respondServiceError(w, h.logger, err, msgClientNotFound, msgInvalidClient)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Search handles lookup by exact first and last name
func (h *ClientHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	if !query.Has("firstName") || !query.Has("lastName") {
		middleware.RespondWithError(w, http.StatusBadRequest, msgMissingName)
		return
	}

	clients, err := h.clientService.GetByNameAndSurname(r.Context(), query.Get("firstName"), query.Get("lastName"))
	if err != nil {
		respondServiceError(w, h.logger, err, msgClientNotFound, msgInvalidClient)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, clients)
}

// GetAll handles listing clients, optionally one page at a time
func (h *ClientHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	limit, err := optionalInt(r, "limit")
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "limit must be an integer")
		return
	}
	offset, err := optionalInt(r, "offset")
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "offset must be an integer")
		return
	}

	clients, err := h.clientService.GetAll(r.Context(), limit, offset)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPagination) {
			middleware.RespondWithError(w, http.StatusNotFound, msgInvalidPagination)
			return
		}
		respondServiceError(w, h.logger, err, msgClientNotFound, msgInvalidClient)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, clients)
}

// GetByID handles reading one client
func (h *ClientHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, msgInvalidID)
		return
	}

	client, err := h.clientService.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.logger, err, msgClientNotFound, msgInvalidClient)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, client)
}

// ChangeAddress handles moving a client to a new address. Both an unknown
// client and a bad address answer 404.
func (h *ClientHandler) ChangeAddress(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		middleware.RespondWithError(w, http.StatusNotFound, msgClientAddressFailed)
		return
	}

	var req dto.AddressDTO
	if err := middleware.DecodeJSON(r, &req); err != nil {
		h.logger.Debug("Address decode failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusNotFound, msgClientAddressFailed)
		return
	}

	client, err := h.clientService.ChangeAddress(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) || errors.Is(err, service.ErrInvalidArgument) {
			middleware.RespondWithError(w, http.StatusNotFound, msgClientAddressFailed)
			return
		}
		respondServiceError(w, h.logger, err, msgClientAddressFailed, msgClientAddressFailed)
		return
	}

	h.logger.Info("Client address changed",
		zap.String("client_id", client.ID.String()),
		zap.String("address_id", client.AddressID.String()),
	)
	middleware.RespondWithJSON(w, http.StatusOK, client)
}
