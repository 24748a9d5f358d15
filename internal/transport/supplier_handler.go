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
	msgInvalidSupplier       = "Invalid supplier data"
	msgSupplierNotFound      = "Supplier with this ID not found"
	msgSupplierAddressFailed = "Invalid supplier ID or invalid address"
)

// SupplierHandler handles HTTP requests for supplier operations
type SupplierHandler struct {
	supplierService service.SupplierService
	logger          *zap.Logger
}

// NewSupplierHandler creates a new SupplierHandler
func NewSupplierHandler(supplierService service.SupplierService, logger *zap.Logger) *SupplierHandler {
	return &SupplierHandler{
		supplierService: supplierService,
		logger:          logger,
	}
}

// RegisterRoutes registers all supplier routes. The singular
// /supplier/{id}/address path is kept next to the plural one.
func (h *SupplierHandler) RegisterRoutes(r chi.Router, guard WriteGuard) {
	r.Route("/suppliers", func(r chi.Router) {
		r.Get("/", h.GetAll)
		r.Get("/{id}", h.GetByID)

		r.Group(func(r chi.Router) {
			r.Use(guard)
			r.Post("/", h.Add)
			r.Delete("/", h.DeleteByID)
			r.Patch("/{id}/address", h.ChangeAddress)
		})
	})

	r.With(guard).Patch("/supplier/{id}/address", h.ChangeAddress)
}

// Add handles supplier creation
func (h *SupplierHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req dto.SupplierDTO
	if err := middleware.DecodeJSON(r, &req); err != nil {
		h.logger.Debug("Supplier decode failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusBadRequest, msgInvalidSupplier)
		return
	}

	supplier, err := h.supplierService.Add(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.logger, err, msgSupplierNotFound, msgInvalidSupplier)
		return
	}

	h.logger.Info("Supplier added", zap.String("supplier_id", supplier.ID.String()))
	respondCreated(w, r, supplier.ID, supplier)
}

// DeleteByID handles supplier removal
func (h *SupplierHandler) DeleteByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuidQuery(r, "id")
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, msgInvalidID)
		return
	}

	if err := h.supplierService.DeleteByID(r.Context(), id); err != nil {
		respondServiceError(w, h.logger, err, msgSupplierNotFound, msgInvalidSupplier)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetAll handles listing suppliers
func (h *SupplierHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	suppliers, err := h.supplierService.GetAll(r.Context())
	if err != nil {
		respondServiceError(w, h.logger, err, msgSupplierNotFound, msgInvalidSupplier)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, suppliers)
}

// GetByID handles reading one supplier
func (h *SupplierHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, msgInvalidID)
		return
	}

	supplier, err := h.supplierService.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.logger, err, msgSupplierNotFound, msgInvalidSupplier)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, supplier)
}

// ChangeAddress handles moving a supplier to a new address
func (h *SupplierHandler) ChangeAddress(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		middleware.RespondWithError(w, http.StatusNotFound, msgSupplierAddressFailed)
		return
	}

	var req dto.AddressDTO
	if err := middleware.DecodeJSON(r, &req); err != nil {
		h.logger.Debug("Address decode failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusNotFound, msgSupplierAddressFailed)
		return
	}

	supplier, err := h.supplierService.ChangeAddress(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) || errors.Is(err, service.ErrInvalidArgument) {
			middleware.RespondWithError(w, http.StatusNotFound, msgSupplierAddressFailed)
			return
		}
		respondServiceError(w, h.logger, err, msgSupplierAddressFailed, msgSupplierAddressFailed)
		return
	}

	h.logger.Info("Supplier address changed",
		zap.String("supplier_id", supplier.ID.String()),
		zap.String("address_id", supplier.AddressID.String()),
	)
	middleware.RespondWithJSON(w, http.StatusOK, supplier)
}
