// Gym Dashboard API
//
// REST API for health profile intake, metrics and submission relay.
//
//	@title			Gym Dashboard API
//	@version		1.0
//	@description	Health profile intake, metrics calculation and submission relay for gym clients.
//
//	@BasePath	/v1
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token forwarded to the profile backend.
//
//	@tag.name			health-metrics
//	@tag.description	Health metrics calculation and coaching guidance
//
//	@tag.name			health-profile
//	@tag.description	Health profile submission to the profile backend
//
//	@tag.name			health-profile-wizard
//	@tag.description	Step-by-step health profile intake
package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/blaisecz/gym-dashboard/internal/api"
	"github.com/blaisecz/gym-dashboard/internal/api/handler"
	"github.com/blaisecz/gym-dashboard/internal/calculator"
	"github.com/blaisecz/gym-dashboard/internal/config"
	"github.com/blaisecz/gym-dashboard/internal/llm"
	"github.com/blaisecz/gym-dashboard/internal/relay"
	"github.com/blaisecz/gym-dashboard/internal/repository"
	"github.com/blaisecz/gym-dashboard/internal/seed"
	"github.com/blaisecz/gym-dashboard/internal/service"
	"github.com/blaisecz/gym-dashboard/internal/telemetry"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Tracing (no-op without an OTLP endpoint)
	shutdownTracer, err := telemetry.InitTracer(context.Background(), cfg, "gym-dashboard-api")
	if err != nil {
		log.Fatalf("Failed to initialize tracing: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracer(ctx); err != nil {
			log.Printf("Failed to shut down tracer: %v", err)
		}
	}()

	// Connect to database
	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database schema
	if err := config.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	calc := calculator.New(calculator.ParseOtherGenderPolicy(cfg.BMROtherGenderFormula))
	log.Printf("BMR formula for gender \"other\": %s", calc.OtherGender)

	if cfg.Seed {
		log.Println("Seeding database with sample data (SEED=true)...")
		if err := seed.Run(db, calc); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	}

	// Initialize repositories
	submissionRepo := repository.NewSubmissionRepository(db)
	wizardRepo := repository.NewWizardSessionRepository(db)

	// Profile backend relay (disabled when BACKEND_BASE_URL is empty)
	relayClient := relay.NewClient(relay.Config{
		BaseURL: cfg.BackendBaseURL,
		Timeout: cfg.BackendTimeout,
	})

	// Initialize OpenAI client (may be nil if not configured)
	var guidanceLLM llm.GuidanceLLM
	if openaiClient := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIGuidanceModel); openaiClient != nil {
		guidanceLLM = openaiClient
	} else {
		log.Println("Warning: OpenAI API key not configured, guidance endpoint will be unavailable")
	}

	// Initialize services
	metricsService := service.NewMetricsService(calc)
	profileService := service.NewProfileService(metricsService, relayClient, submissionRepo)
	wizardService := service.NewWizardService(wizardRepo, metricsService, profileService)
	guidanceService := service.NewGuidanceService(metricsService, guidanceLLM)

	// Initialize handlers
	metricsHandler := handler.NewMetricsHandler(metricsService, guidanceService)
	profileHandler := handler.NewProfileHandler(profileService)
	wizardHandler := handler.NewWizardHandler(wizardService)

	// Setup router
	router := api.NewRouter(cfg.CORSAllowedOrigins, metricsHandler, profileHandler, wizardHandler)
	routerHandler := router.Setup()

	// Start server
	addr := ":" + cfg.Port
	log.Printf("Starting server on %s", addr)
	if err := http.ListenAndServe(addr, routerHandler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
