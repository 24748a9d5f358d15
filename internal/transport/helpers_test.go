package transport

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"shop-backoffice/internal/middleware"
	"shop-backoffice/internal/repository/repotest"
	"shop-backoffice/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testAPI struct {
	store  *repotest.Store
	router http.Handler
}

func passthrough(next http.Handler) http.Handler { return next }

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	store := repotest.NewStore()
	repos := store.Repositories()
	logger := zap.NewNop()

	products := service.NewProductService(repos.Products, store)

	r := chi.NewRouter()
	r.Route("/api/v1", func(r chi.Router) {
		NewAddressHandler(service.NewAddressService(repos.Addresses), logger).RegisterRoutes(r, passthrough)
		NewClientHandler(service.NewClientService(repos.Clients, store), logger).RegisterRoutes(r, passthrough)
		NewSupplierHandler(service.NewSupplierService(repos.Suppliers, store), logger).RegisterRoutes(r, passthrough)
		NewProductHandler(products, logger).RegisterRoutes(r, passthrough)
		NewImageHandler(service.NewImageService(repos.Images, products), 16, logger).RegisterRoutes(r, passthrough)
	})

	return &testAPI{store: store, router: r}
}

func (a *testAPI) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case []byte:
		reader = bytes.NewReader(b)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	rr := httptest.NewRecorder()
	a.router.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}

func requireError(t *testing.T, rr *httptest.ResponseRecorder, status int, message string) {
	t.Helper()
	require.Equal(t, status, rr.Code, rr.Body.String())
	body := decode[middleware.ErrorResponse](t, rr)
	require.Equal(t, message, body.Error)
	require.Equal(t, middleware.ErrorCode(status), body.Code)
}

func addressBody(id string) map[string]interface{} {
	return map[string]interface{}{"id": id, "country": "Russia", "city": "Tver", "street": "Sovetskaya"}
}

func clientBody(id, addressID string) map[string]interface{} {
	return map[string]interface{}{
		"id":               id,
		"name":             "Olga",
		"surname":          "Ivanova",
		"birthday":         "1992-04-18",
		"gender":           "female",
		"registrationDate": "2000-01-01",
		"addressId":        addressID,
	}
}

func productBody(id, supplierID string, stock int) map[string]interface{} {
	return map[string]interface{}{
		"id":             id,
		"name":           "Mug",
		"category":       "kitchen",
		"price":          4.999,
		"availableStock": stock,
		"supplierId":     supplierID,
	}
}
