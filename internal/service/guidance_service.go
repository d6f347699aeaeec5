package service

import (
	"context"
	"errors"

	"github.com/blaisecz/gym-dashboard/internal/domain"
	"github.com/blaisecz/gym-dashboard/internal/llm"
)

// ErrGuidanceUnavailable is returned when no LLM is configured.
var ErrGuidanceUnavailable = errors.New("guidance is not configured")

// GuidanceService produces coaching guidance on top of computed metrics.
type GuidanceService interface {
	Generate(ctx context.Context, in domain.HealthProfileInput) (*domain.GuidanceResponse, error)
}

type guidanceService struct {
	metrics   MetricsService
	llmClient llm.GuidanceLLM
}

// NewGuidanceService creates a new GuidanceService. llmClient may be nil.
func NewGuidanceService(metrics MetricsService, llmClient llm.GuidanceLLM) GuidanceService {
	return &guidanceService{
		metrics:   metrics,
		llmClient: llmClient,
	}
}

func (s *guidanceService) Generate(ctx context.Context, in domain.HealthProfileInput) (*domain.GuidanceResponse, error) {
	if s.llmClient == nil {
		return nil, ErrGuidanceUnavailable
	}

	metrics := s.metrics.Calculate(ctx, in)

	output, err := s.llmClient.GenerateGuidance(ctx, &domain.GuidanceContext{
		Profile: in,
		Metrics: metrics,
	})
	if err != nil {
		return nil, err
	}

	return &domain.GuidanceResponse{
		Metrics:  metrics,
		Guidance: *output,
	}, nil
}
