package transport

import (
	"errors"
	"net/http"
	"strconv"

	"shop-backoffice/internal/dto"
	"shop-backoffice/internal/middleware"
	"shop-backoffice/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const (
	msgInvalidProduct  = "Invalid product data"
	msgProductNotFound = "Product with this ID not found"
	msgInvalidAmount   = "Invalid amount of product units"
)

// ProductHandler handles HTTP requests for product operations
type ProductHandler struct {
	productService service.ProductService
	logger         *zap.Logger
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productService service.ProductService, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		logger:         logger,
	}
}

// RegisterRoutes registers all product routes
func (h *ProductHandler) RegisterRoutes(r chi.Router, guard WriteGuard) {
	r.Route("/products", func(r chi.Router) {
		r.Get("/", h.GetAll)
		r.Get("/{id}", h.GetByID)

		r.Group(func(r chi.Router) {
			r.Use(guard)
			r.Post("/", h.Add)
			r.Delete("/", h.DeleteByID)
			r.Patch("/{id}/available-stock", h.ReduceStock)
		})
	})
}

// Add handles product creation
func (h *ProductHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req dto.ProductDTO
	if err := middleware.DecodeJSON(r, &req); err != nil {
		h.logger.Debug("Product decode failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusBadRequest, msgInvalidProduct)
		return
	}

	product, err := h.productService.Add(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.logger, err, msgProductNotFound, msgInvalidProduct)
		return
	}

	h.logger.Info("Product added", zap.String("product_id", product.ID.String()))
	respondCreated(w, r, product.ID, product)
}

// ReduceStock handles taking units of a product out of stock
func (h *ProductHandler) ReduceStock(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, msgInvalidID)
		return
	}

	amount, err := strconv.Atoi(r.URL.Query().Get("amount"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, msgInvalidAmount)
		return
	}

	product, err := h.productService.ReduceByAmount(r.Context(), id, amount)
	if err != nil {
		if errors.Is(err, service.ErrInvalidAmount) {
			middleware.RespondWithError(w, http.StatusBadRequest, msgInvalidAmount)
			return
		}
		respondServiceError(w, h.logger, err, msgProductNotFound, msgInvalidAmount)
		return
	}

	h.logger.Info("Product stock reduced",
		zap.String("product_id", product.ID.String()),
		zap.Int("amount", amount),
	)
	middleware.RespondWithJSON(w, http.StatusOK, product)
}

// GetByID handles reading one product
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, msgInvalidID)
		return
	}

	product, err := h.productService.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.logger, err, msgProductNotFound, msgInvalidProduct)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, product)
}

// GetAll handles listing products
func (h *ProductHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	products, err := h.productService.GetAll(r.Context())
	if err != nil {
		respondServiceError(w, h.logger, err, msgProductNotFound, msgInvalidProduct)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, products)
}

// DeleteByID handles product removal
func (h *ProductHandler) DeleteByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuidQuery(r, "productId")
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, msgInvalidID)
		return
	}

	if err := h.productService.DeleteByID(r.Context(), id); err != nil {
		respondServiceError(w, h.logger, err, msgProductNotFound, msgInvalidProduct)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
