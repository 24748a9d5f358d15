package transport

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"shop-backoffice/internal/dto"
	"shop-backoffice/internal/middleware"
	"shop-backoffice/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const (
	msgInvalidImage         = "Invalid image bytes"
	msgImageNotFound        = "Image with this ID not found"
	msgProductImageNotFound = "Image for this product ID not found"
	msgImageTooLarge        = "Image is too large"
)

// ImageHandler handles HTTP requests for image operations
type ImageHandler struct {
	imageService service.ImageService
	maxBytes     int64
	logger       *zap.Logger
}

// NewImageHandler creates a new ImageHandler. Uploaded bodies larger than
// maxBytes are rejected.
func NewImageHandler(imageService service.ImageService, maxBytes int64, logger *zap.Logger) *ImageHandler {
	return &ImageHandler{
		imageService: imageService,
		maxBytes:     maxBytes,
		logger:       logger,
	}
}

// RegisterRoutes registers all image routes
func (h *ImageHandler) RegisterRoutes(r chi.Router, guard WriteGuard) {
	r.Route("/images", func(r chi.Router) {
		r.Get("/{id}", h.GetByID)
		r.Get("/products/{id}", h.GetByProductID)

		r.Group(func(r chi.Router) {
			r.Use(guard)
			r.Post("/", h.Add)
			r.Patch("/{id}", h.ChangeBytes)
			r.Delete("/", h.DeleteByID)
		})
	})
}

// Add handles storing an image under a caller-chosen id
func (h *ImageHandler) Add(w http.ResponseWriter, r *http.Request) {
	id, err := uuidQuery(r, "id")
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, msgInvalidID)
		return
	}

	bytes, ok := h.readBytes(w, r)
	if !ok {
		return
	}
	if bytes == nil {
		bytes = []byte{}
	}

	if err := h.imageService.Add(r.Context(), id, bytes); err != nil {
		respondServiceError(w, h.logger, err, msgImageNotFound, msgInvalidImage)
		return
	}

	h.logger.Info("Image stored", zap.String("image_id", id.String()), zap.Int("size", len(bytes)))
	respondCreated(w, r, id, id)
}

// ChangeBytes handles replacing the bytes of an existing image
func (h *ImageHandler) ChangeBytes(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, msgInvalidID)
		return
	}

	bytes, ok := h.readBytes(w, r)
	if !ok {
		return
	}

	if err := h.imageService.ChangeBytesByID(r.Context(), id, bytes); err != nil {
		respondServiceError(w, h.logger, err, msgInvalidID, msgInvalidImage)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, id)
}

// DeleteByID handles image removal
func (h *ImageHandler) DeleteByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuidQuery(r, "id")
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, msgInvalidID)
		return
	}

	if err := h.imageService.DeleteByID(r.Context(), id); err != nil {
		respondServiceError(w, h.logger, err, msgImageNotFound, msgInvalidImage)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetByID handles downloading an image
func (h *ImageHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, msgInvalidID)
		return
	}

	image, err := h.imageService.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.logger, err, msgImageNotFound, msgInvalidImage)
		return
	}

	h.download(w, image)
}

// GetByProductID handles downloading the image attached to a product
func (h *ImageHandler) GetByProductID(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, msgInvalidID)
		return
	}

	image, err := h.imageService.GetByProductID(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.logger, err, msgProductImageNotFound, msgInvalidImage)
		return
	}

	h.download(w, image)
}

func (h *ImageHandler) download(w http.ResponseWriter, image *dto.ImageDTO) {
	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="image_%s.bin"`, image.ID))
	w.Header().Set("Content-Length", strconv.Itoa(len(image.Bytes)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(image.Bytes); err != nil {
		h.logger.Warn("Image download interrupted", zap.String("image_id", image.ID.String()), zap.Error(err))
	}
}

// readBytes takes image bytes from the bytes query parameter or, when it is
// absent, from the request body. A missing parameter with an empty body
// yields nil. It writes the error reply itself and reports false on failure.
func (h *ImageHandler) readBytes(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	if r.URL.Query().Has("bytes") {
		bytes, err := parseByteList(r.URL.Query().Get("bytes"))
		if err != nil {
			middleware.RespondWithError(w, http.StatusBadRequest, msgInvalidImage)
			return nil, false
		}
		return bytes, true
	}

	if r.Body == nil || r.Body == http.NoBody {
		return nil, true
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			middleware.RespondWithError(w, http.StatusRequestEntityTooLarge, msgImageTooLarge)
			return nil, false
		}
		middleware.RespondWithError(w, http.StatusBadRequest, msgInvalidImage)
		return nil, false
	}
	if len(body) == 0 {
		return nil, true
	}
	return body, true
}

// parseByteList parses a comma separated list of byte values. Signed values
// from -128 are accepted alongside 0..255.
func parseByteList(raw string) ([]byte, error) {
	if strings.TrimSpace(raw) == "" {
		return []byte{}, nil
	}

	parts := strings.Split(raw, ",")
	out := make([]byte, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid byte %q: %w", part, err)
		}
		if n < -128 || n > 255 {
			return nil, fmt.Errorf("byte %d out of range", n)
		}
		out = append(out, byte(n))
	}
	return out, nil
}
