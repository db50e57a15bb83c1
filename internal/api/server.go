// Package api provides the HTTP API server and handlers for the meal
// planner.
package api

import (
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/GamingGoku/ProductionMealApp/internal/service"
	"github.com/GamingGoku/ProductionMealApp/internal/sse"
	"github.com/GamingGoku/ProductionMealApp/internal/store"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	store           *store.Store
	planService     *service.PlanService
	shoppingService *service.ShoppingService
	catalogService  *service.CatalogService
	sseManager      *sse.Manager
	sseHandler      *sse.Handler
	router          *chi.Mux
	api             huma.API
	logger          *slog.Logger
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(
	store *store.Store,
	planService *service.PlanService,
	shoppingService *service.ShoppingService,
	catalogService *service.CatalogService,
	sseManager *sse.Manager,
	sseHandler *sse.Handler,
	logger *slog.Logger,
) *Server {
	s := &Server{
		store:           store,
		planService:     planService,
		shoppingService: shoppingService,
		catalogService:  catalogService,
		sseManager:      sseManager,
		sseHandler:      sseHandler,
		router:          chi.NewRouter(),
		logger:          logger,
	}

	s.setupMiddleware()

	humaConfig := huma.DefaultConfig("Meal Planner API", "1.0.0")
	s.api = humachi.New(s.router, humaConfig)
	RegisterErrorHandler()

	s.setupRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// setupMiddleware configures the middleware stack.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))

	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	s.registerHealthRoutes()
	s.registerPlanRoutes()
	s.registerShoppingRoutes()
	s.registerCatalogRoutes()

	// SSE streams outside huma; it is a long-lived raw connection.
	s.router.Get("/api/v1/events", s.sseHandler.ServeHTTP)
}
