package service

import (
	"context"
	"encoding/json"

	"github.com/blaisecz/gym-dashboard/internal/calculator"
	"github.com/blaisecz/gym-dashboard/internal/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// MetricsService computes health metrics from profile answers.
type MetricsService interface {
	// Calculate runs the metrics pipeline. Input must already be validated.
	Calculate(ctx context.Context, in domain.HealthProfileInput) domain.HealthMetrics
}

type metricsService struct {
	calc *calculator.Calculator
}

// NewMetricsService creates a new MetricsService.
func NewMetricsService(calc *calculator.Calculator) MetricsService {
	return &metricsService{calc: calc}
}

func (s *metricsService) Calculate(ctx context.Context, in domain.HealthProfileInput) domain.HealthMetrics {
	tracer := otel.Tracer("gym-dashboard-api/metrics")
	_, span := tracer.Start(ctx, "MetricsService.Calculate",
		trace.WithAttributes(
			attribute.String("profile.goal", string(in.Goal)),
			attribute.String("profile.activity_level", string(in.ActivityLevel)),
			attribute.String("bmr.other_gender_policy", string(s.calc.OtherGender)),
		),
	)
	defer span.End()

	if inputJSON, err := json.Marshal(in); err == nil {
		span.SetAttributes(attribute.String("metrics.input", string(inputJSON)))
	}

	metrics := s.calc.Calculate(in)

	span.SetAttributes(
		attribute.Float64("metrics.bmi", metrics.BMI),
		attribute.String("metrics.bmi_category", string(metrics.BMICategory)),
		attribute.Float64("metrics.target_calories", metrics.TargetCalories),
	)

	return metrics
}
