package api

import (
	"encoding/json"
	"net/http"

	_ "github.com/blaisecz/gym-dashboard/docs"
	"github.com/blaisecz/gym-dashboard/internal/api/handler"
	"github.com/blaisecz/gym-dashboard/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	allowedOrigins []string
	metricsHandler *handler.MetricsHandler
	profileHandler *handler.ProfileHandler
	wizardHandler  *handler.WizardHandler
}

func NewRouter(allowedOrigins []string, metricsHandler *handler.MetricsHandler, profileHandler *handler.ProfileHandler, wizardHandler *handler.WizardHandler) *Router {
	return &Router{
		allowedOrigins: allowedOrigins,
		metricsHandler: metricsHandler,
		profileHandler: profileHandler,
		wizardHandler:  wizardHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.Logger)
	r.Use(middleware.Recovery)
	r.Use(middleware.Tracing)
	r.Use(cors.New(cors.Options{
		AllowedOrigins: rt.allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		ExposedHeaders: []string{chimw.RequestIDHeader},
	}).Handler)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		r.Route("/health-metrics", func(r chi.Router) {
			r.Post("/", rt.metricsHandler.Calculate)
			r.Post("/guidance", rt.metricsHandler.Guidance)
		})

		r.Route("/clients/{clientId}/health-profile", func(r chi.Router) {
			r.Post("/", rt.profileHandler.Submit)
			r.Get("/submissions", rt.profileHandler.ListSubmissions)
			r.Post("/wizard", rt.wizardHandler.Start)
		})

		r.Route("/health-profile-wizards/{sessionId}", func(r chi.Router) {
			r.Get("/", rt.wizardHandler.Get)
			r.Post("/actions", rt.wizardHandler.Dispatch)
			r.Post("/submit", rt.wizardHandler.Submit)
		})
	})

	return r
}
