package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/redmonkez12/mini-auth-api/internal/config"
	"github.com/redmonkez12/mini-auth-api/internal/httputil"
	"github.com/redmonkez12/mini-auth-api/internal/logging"
	"github.com/redmonkez12/mini-auth-api/internal/user"
)

const readinessTimeout = 3 * time.Second

// Pinger reports whether a backing dependency is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// APIInfo is the capability listing served at /
type APIInfo struct {
	Message   string            `json:"message"`
	Endpoints map[string]string `json:"endpoints"`
}

// NewRouter creates and configures the HTTP router
func NewRouter(cfg *config.Config, userHandler *user.Handler, store Pinger, metrics *Metrics, logger *logging.Logger) *chi.Mux {
	r := chi.NewRouter()

	// CORS - must be first
	if len(cfg.Server.TrustedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   cfg.Server.TrustedOrigins,
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type"},
			ExposedHeaders:   []string{"Content-Length"},
			AllowCredentials: false,
			MaxAge:           300, // 5 minutes
		}))
	}

	// Global middleware
	r.Use(SecurityHeaders)               // Security headers on all responses
	r.Use(middleware.RequestID)          // Add request ID, before anything that logs it
	r.Use(Recoverer(logger))             // Panics become JSON 500s
	r.Use(middleware.RealIP)             // Set RemoteAddr to real IP
	r.Use(logging.RequestLogger(logger)) // Structured logging with request context
	if metrics != nil {
		r.Use(metrics.Middleware)
	}
	r.Use(middleware.Compress(5)) // Compress responses

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httputil.RespondError(w, "Not found", http.StatusNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		httputil.RespondError(w, "Method not allowed", http.StatusMethodNotAllowed)
	})

	r.Get("/", handleRoot)
	r.Get("/health", handleHealth)
	r.Get("/readyz", handleReady(store))
	if metrics != nil {
		r.Method(http.MethodGet, "/metrics", metrics.Handler())
	}

	// Swagger UI - only in development
	// Production builds will not have this route at all
	if cfg.Server.IsDevelopment() {
		logger.Info("swagger UI enabled at /swagger/*")
		r.Get("/swagger/*", httpSwagger.WrapHandler)
	} else {
		logger.Info("swagger UI disabled (production mode)")
	}

	r.Post("/signup", userHandler.Signup)
	r.Get("/myprofile", userHandler.MyProfile)

	return r
}

// handleRoot lists the available endpoints
// @Summary      API information
// @Description  Lists the endpoints this API exposes
// @Tags         meta
// @Produce      json
// @Success      200 {object} APIInfo
// @Router       / [get]
func handleRoot(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, APIInfo{
		Message: "Mini User Authentication System API",
		Endpoints: map[string]string{
			"signup":  "POST /signup",
			"profile": "GET /myprofile?name=<name>",
		},
	}, http.StatusOK)
}

// handleHealth is a simple health check endpoint
// @Summary      Health check
// @Description  Check if the API is running
// @Tags         health
// @Produce      json
// @Success      200 {object} map[string]string
// @Router       /health [get]
func handleHealth(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, map[string]string{"status": "api is running"}, http.StatusOK)
}

// handleReady pings the user store
// @Summary      Readiness check
// @Description  Check that the user store is reachable
// @Tags         health
// @Produce      json
// @Success      200 {object} map[string]string
// @Failure      503 {object} httputil.ErrorResponse "Store unavailable"
// @Router       /readyz [get]
func handleReady(store Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		if err := store.Ping(ctx); err != nil {
			logging.GetLoggerFromContext(r.Context()).Error("readiness check failed", "error", err.Error())
			httputil.RespondErrorWithDetails(w, "Store unavailable", err.Error(), http.StatusServiceUnavailable)
			return
		}

		httputil.RespondJSON(w, map[string]string{"status": "ready"}, http.StatusOK)
	}
}
