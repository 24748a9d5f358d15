package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"shop-backoffice/internal/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-chi/chi/v5"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestProperty_RateLimitingBlocksExcessiveRequests(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("requests beyond the window limit get 429", prop.ForAll(
		func(requestsPerWindow int, excessRequests int) bool {
			mr, err := miniredis.Run()
			if err != nil {
				t.Fatalf("Failed to start miniredis: %v", err)
			}
			defer mr.Close()

			redisClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})
			defer redisClient.Close()

			config := RateLimitConfig{
				RequestsPerWindow: requestsPerWindow,
				Window:            time.Minute,
				KeyPrefix:         "test_rate_limit",
			}
			handler := RateLimitMiddleware(redisClient, config, zap.NewNop())(okHandler())

			successCount, blockedCount := 0, 0
			for i := 0; i < requestsPerWindow+excessRequests; i++ {
				req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
				req.RemoteAddr = "192.168.1.100:5000"
				w := httptest.NewRecorder()

				handler.ServeHTTP(w, req)

				switch w.Code {
				case http.StatusOK:
					successCount++
				case http.StatusTooManyRequests:
					blockedCount++
				}
			}

			return successCount == requestsPerWindow && blockedCount == excessRequests
		},
		gen.IntRange(1, 20),
		gen.IntRange(1, 10),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestRateLimitHeadersAndBody(t *testing.T) {
	mr := miniredis.RunT(t)
	redisClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer redisClient.Close()

	config := RateLimitConfig{RequestsPerWindow: 2, Window: time.Minute, KeyPrefix: "rl"}
	handler := RateLimitMiddleware(redisClient, config, zap.NewNop())(okHandler())

	var last *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		last = httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		handler.ServeHTTP(last, req)

		if i == 0 {
			assert.Equal(t, "2", last.Header().Get("X-RateLimit-Limit"))
			assert.Equal(t, "1", last.Header().Get("X-RateLimit-Remaining"))
		}
	}

	require.Equal(t, http.StatusTooManyRequests, last.Code)
	assert.Equal(t, "0", last.Header().Get("X-RateLimit-Remaining"))
	retry, err := strconv.Atoi(last.Header().Get("Retry-After"))
	require.NoError(t, err)
	assert.LessOrEqual(t, retry, 60)
	assert.Contains(t, last.Body.String(), `"code":"rate_limited"`)
}

func TestRateLimitSeparatesClients(t *testing.T) {
	mr := miniredis.RunT(t)
	redisClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer redisClient.Close()

	config := RateLimitConfig{RequestsPerWindow: 1, Window: time.Minute, KeyPrefix: "rl"}
	handler := RateLimitMiddleware(redisClient, config, zap.NewNop())(okHandler())

	for _, addr := range []string{"10.0.0.1:1", "10.0.0.2:1"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = addr
		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, addr)
	}
}

func TestRateLimitFailsOpenWhenRedisIsDown(t *testing.T) {
	mr := miniredis.RunT(t)
	redisClient := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	defer redisClient.Close()
	mr.Close()

	config := RateLimitConfig{RequestsPerWindow: 1, Window: time.Minute, KeyPrefix: "rl"}
	handler := RateLimitMiddleware(redisClient, config, zap.NewNop())(okHandler())

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestMemoryRateLimit(t *testing.T) {
	config := RateLimitConfig{RequestsPerWindow: 3, Window: time.Minute}
	handler := MemoryRateLimitMiddleware(config)(okHandler())

	codes := make([]int, 0, 4)
	for i := 0; i < 4; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "172.16.0.9:4000"
		handler.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{200, 200, 200, 429}, codes)
}

func TestAuthenticatedCallersBehindOneIPGetSeparateBuckets(t *testing.T) {
	authCfg := config.AuthConfig{Enabled: true, JWTSecret: testSecret, WriteRoles: []string{"admin"}}
	limits := RateLimitConfig{RequestsPerWindow: 1, Window: time.Minute}

	router := chi.NewRouter()
	router.Route("/api/v1", func(r chi.Router) {
		r.Use(IdentifyCaller(authCfg.JWTSecret))
		r.Use(MemoryRateLimitMiddleware(limits))
		r.Group(func(r chi.Router) {
			r.Use(WriteGuard(authCfg, zap.NewNop()))
			r.Post("/clients", okHandler().ServeHTTP)
		})
	})

	post := func(token string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/clients", nil)
		req.RemoteAddr = "10.0.0.1:5000"
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w.Code
	}

	alice := signToken(t, testSecret, "alice", "admin", time.Hour)
	bob := signToken(t, testSecret, "bob", "admin", time.Hour)

	assert.Equal(t, http.StatusOK, post(alice))
	assert.Equal(t, http.StatusOK, post(bob))
	assert.Equal(t, http.StatusTooManyRequests, post(alice))

	assert.Equal(t, http.StatusUnauthorized, post(""), "anonymous callers are keyed by IP")
	assert.Equal(t, http.StatusTooManyRequests, post(""))
}

func TestIdentifyCallerIgnoresBadTokens(t *testing.T) {
	var subject string
	var found bool
	handler := IdentifyCaller(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		subject, found = GetSubject(r.Context())
	}))

	for _, header := range []string{"", "Bearer garbage", "Bearer " + signToken(t, "other-secret", "eve", "admin", time.Hour)} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.False(t, found, header)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, "carol", "viewer", time.Hour))
	handler.ServeHTTP(httptest.NewRecorder(), req)
	assert.True(t, found)
	assert.Equal(t, "carol", subject)
}
