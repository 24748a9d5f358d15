package transport

import (
	"net/http"

	"shop-backoffice/internal/dto"
	"shop-backoffice/internal/middleware"
	"shop-backoffice/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const (
	msgInvalidAddress  = "Invalid address data"
	msgAddressNotFound  = "Address with this ID not found"
)

// AddressHandler handles HTTP requests for standalone address operations
type AddressHandler struct {
	addressService service.AddressService
	logger         *zap.Logger
}

// NewAddressHandler creates a new AddressHandler
func NewAddressHandler(addressService service.AddressService, logger *zap.Logger) *AddressHandler {
	return &AddressHandler{
		addressService: addressService,
		logger:         logger,
	}
}

// RegisterRoutes registers all address routes
func (h *AddressHandler) RegisterRoutes(r chi.Router, guard WriteGuard) {
	r.Route("/addresses", func(r chi.Router) {
		r.Get("/{id}", h.GetByID)

		r.Group(func(r chi.Router) {
			r.Use(guard)
			r.Post("/", h.Add)
			r.Delete("/", h.DeleteByID)
		})
	})
}

// Add handles address creation
func (h *AddressHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req dto.AddressDTO
	if err := middleware.DecodeJSON(r, &req); err != nil {
		h.logger.Debug("Address decode failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusBadRequest, msgInvalidAddress)
		return
	}

	address, err := h.addressService.Add(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.logger, err, msgAddressNotFound, msgInvalidAddress)
		return
	}

	respondCreated(w, r, address.ID, address)
}

// GetByID handles reading one address
func (h *AddressHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, msgInvalidID)
		return
	}

	address, err := h.addressService.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.logger, err, msgAddressNotFound, msgInvalidAddress)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, address)
}

// DeleteByID handles address removal
func (h *AddressHandler) DeleteByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuidQuery(r, "id")
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, msgInvalidID)
		return
	}

	if err := h.addressService.DeleteByID(r.Context(), id); err != nil {
		respondServiceError(w, h.logger, err, msgAddressNotFound, msgInvalidAddress)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
