package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"shop-backoffice/internal/config"
	"shop-backoffice/internal/database"
	custommiddleware "shop-backoffice/internal/middleware"
	"shop-backoffice/internal/observability"
	"shop-backoffice/internal/repository"
	"shop-backoffice/internal/service"
	"shop-backoffice/internal/transport"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Server struct {
	*http.Server
	config *config.Config
	logger *zap.Logger
	db     database.Service
	redis  *redis.Client
}

func NewServer(cfg *config.Config, logger *zap.Logger, db database.Service) *Server {
	metrics := observability.NewMetrics()
	if err := metrics.RegisterDB(db.DB(), cfg.Database.Database); err != nil {
		logger.Warn("Failed to register database metrics", zap.Error(err))
	}

	rateLimiter, redisClient := newRateLimiter(cfg, logger)

	router := chi.NewRouter()

	// Add basic middleware
	router.Use(custommiddleware.DefaultMiddlewareStack()...)
	router.Use(custommiddleware.ErrorHandlingMiddleware(logger))
	router.Use(custommiddleware.LoggingMiddleware(logger))
	router.Use(metrics.Middleware)
	router.Use(custommiddleware.SecureHeaders(cfg.Server.IsProduction()))
	router.Use(custommiddleware.CORSMiddleware(cfg.CORS.AllowedOrigins, !cfg.Server.IsProduction()))

	router.Get("/health", healthHandler(db))
	router.Method(http.MethodGet, "/metrics", metrics.Handler())

	// Initialize repositories
	repos := repository.NewRepositories(db.DB())
	tx := repository.NewTxManager(db.DB())

	// Initialize services
	addressService := service.NewAddressService(repos.Addresses)
	clientService := service.NewClientService(repos.Clients, tx)
	supplierService := service.NewSupplierService(repos.Suppliers, tx)
	productService := service.NewProductService(repos.Products, tx)
	imageService := service.NewImageService(repos.Images, productService)

	// Initialize handlers
	addressHandler := transport.NewAddressHandler(addressService, logger)
	clientHandler := transport.NewClientHandler(clientService, logger)
	supplierHandler := transport.NewSupplierHandler(supplierService, logger)
	productHandler := transport.NewProductHandler(productService, logger)
	imageHandler := transport.NewImageHandler(imageService, cfg.Images.MaxBytes, logger)

	writeGuard := custommiddleware.WriteGuard(cfg.Auth, logger)

	// Register routes
	router.Route(cfg.Server.APIPrefix, func(r chi.Router) {
		if rateLimiter != nil {
			if cfg.Auth.Enabled {
				r.Use(custommiddleware.IdentifyCaller(cfg.Auth.JWTSecret))
			}
			r.Use(rateLimiter)
		}
		addressHandler.RegisterRoutes(r, writeGuard)
		clientHandler.RegisterRoutes(r, writeGuard)
		supplierHandler.RegisterRoutes(r, writeGuard)
		productHandler.RegisterRoutes(r, writeGuard)
		imageHandler.RegisterRoutes(r, writeGuard)
	})

	server := &Server{
		Server: &http.Server{
			Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
			Handler:      router,
			IdleTimeout:  cfg.Server.IdleTimeout,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
		},
		config: cfg,
		logger: logger,
		db:     db,
		redis:  redisClient,
	}

	return server
}

// newRateLimiter picks the Redis limiter when Redis answers a ping and the
// in-memory limiter otherwise. It returns nil when rate limiting is off.
func newRateLimiter(cfg *config.Config, logger *zap.Logger) (func(http.Handler) http.Handler, *redis.Client) {
	if !cfg.RateLimit.Enabled {
		return nil, nil
	}

	limits := custommiddleware.RateLimitConfig{
		RequestsPerWindow: cfg.RateLimit.Requests,
		Window:            cfg.RateLimit.Window,
		KeyPrefix:         "shop:ratelimit",
	}

	if cfg.RateLimit.Backend == "redis" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		err := client.Ping(ctx).Err()
		if err == nil {
			logger.Info("Rate limiting with Redis", zap.String("addr", cfg.Redis.Addr()))
			return custommiddleware.RateLimitMiddleware(client, limits, logger), client
		}

		logger.Warn("Redis unavailable, falling back to in-memory rate limiting", zap.Error(err))
		client.Close()
	}

	return custommiddleware.MemoryRateLimitMiddleware(limits), nil
}

func healthHandler(db database.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		health := db.Health()

		status := http.StatusOK
		if health["status"] != "up" {
			status = http.StatusServiceUnavailable
		}

		custommiddleware.RespondWithJSON(w, status, health)
	}
}

func (s *Server) Close() error {
	s.logger.Info("Closing server resources")

	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			s.logger.Error("Failed to close redis client", zap.Error(err))
		}
	}

	// Close database connection
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			s.logger.Error("Failed to close database connection", zap.Error(err))
		}
	}

	s.logger.Sync()
	return nil
}
