package wire

import (
	"fmt"
	"net/http"
	"time"

	"runup-api/internal/adaptor"
	"runup-api/internal/data/repository"
	"runup-api/internal/usecase"
	"runup-api/pkg/middleware"
	"runup-api/pkg/token"
	"runup-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// App holds the wired dependencies
type App struct {
	Router *chi.Mux
}

// Wiring initializes all dependencies
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) (*App, error) {
	tokens, err := token.NewService(
		config.JWT.Secret,
		time.Duration(config.JWT.ExpiryHours)*time.Hour,
	)
	if err != nil {
		return nil, fmt.Errorf("init token service: %w", err)
	}

	service := usecase.NewService(repo, tokens, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, tokens, config, logger)

	return &App{
		Router: router,
	}, nil
}

// setupRouter configures the chi router
func setupRouter(
	handler *adaptor.Handler,
	tokens *token.Service,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.Metrics())
	r.Use(middleware.CORS())

	// Apply routes
	wireAuth(r, handler.Auth, tokens, logger)
	wireMedia(r, handler.Media)
	wireReview(r, handler.Review, tokens, logger)
	wireAdmin(r, handler.Admin, config, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Prometheus metrics
	r.Handle("/metrics", promhttp.Handler())

	// Unrouted paths get the same envelope as every other error
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseNotFound(w, "Not Found")
	})

	return r
}
