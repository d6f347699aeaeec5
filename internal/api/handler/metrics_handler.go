package handler

import (
	"errors"
	"net/http"

	"github.com/blaisecz/gym-dashboard/internal/llm"
	"github.com/blaisecz/gym-dashboard/internal/service"
	"github.com/blaisecz/gym-dashboard/pkg/problem"
	"go.opentelemetry.io/otel/trace"
)

// MetricsHandler handles health metrics endpoints.
type MetricsHandler struct {
	metricsService  service.MetricsService
	guidanceService service.GuidanceService
}

// NewMetricsHandler creates a new MetricsHandler.
func NewMetricsHandler(metricsService service.MetricsService, guidanceService service.GuidanceService) *MetricsHandler {
	return &MetricsHandler{
		metricsService:  metricsService,
		guidanceService: guidanceService,
	}
}

// Calculate handles POST /v1/health-metrics
// @Summary Calculate health metrics
// @Description Compute BMI, BMR, TDEE, target calories and macro grams from intake answers. Nothing is stored.
// @Tags health-metrics
// @Accept json
// @Produce json
// @Param request body domain.HealthProfileInput true "Intake answers"
// @Success 200 {object} domain.HealthMetrics "Computed metrics"
// @Failure 400 {object} problem.Problem "Malformed JSON"
// @Failure 422 {object} problem.Problem "Invalid fields"
// @Router /health-metrics [post]
func (h *MetricsHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeProfileInput(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, h.metricsService.Calculate(r.Context(), in))
}

// Guidance handles POST /v1/health-metrics/guidance
// @Summary Get coaching guidance
// @Description Compute metrics and ask the LLM for non-medical nutrition and training suggestions.
// @Tags health-metrics
// @Accept json
// @Produce json
// @Param request body domain.HealthProfileInput true "Intake answers"
// @Success 200 {object} domain.GuidanceResponse "Metrics with guidance"
// @Failure 400 {object} problem.Problem "Malformed JSON"
// @Failure 422 {object} problem.Problem "Invalid fields"
// @Failure 502 {object} problem.Problem "LLM request failed"
// @Failure 503 {object} problem.Problem "LLM not configured"
// @Router /health-metrics/guidance [post]
func (h *MetricsHandler) Guidance(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeProfileInput(w, r)
	if !ok {
		return
	}

	result, err := h.guidanceService.Generate(r.Context(), in)
	if err != nil {
		if errors.Is(err, service.ErrGuidanceUnavailable) || errors.Is(err, llm.ErrOpenAIUnavailable) {
			problem.Unavailable("Guidance is not configured").Write(w)
			return
		}
		if errors.Is(err, llm.ErrOpenAIRequest) || errors.Is(err, llm.ErrOpenAIResponse) {
			problem.New(http.StatusBadGateway, "llm-error", "LLM Error", "Failed to generate guidance from LLM").Write(w)
			return
		}
		problem.InternalError("Failed to generate guidance").Write(w)
		return
	}

	// Attach OTEL trace ID (if present) so clients can correlate the response
	span := trace.SpanFromContext(r.Context())
	if span.SpanContext().IsValid() {
		result.TraceID = span.SpanContext().TraceID().String()
	}

	writeJSON(w, http.StatusOK, result)
}
