package service

import (
	"context"
	"log"

	"github.com/blaisecz/gym-dashboard/internal/domain"
	"github.com/blaisecz/gym-dashboard/internal/repository"
	"github.com/blaisecz/gym-dashboard/internal/wizard"
	"github.com/google/uuid"
)

// WizardService drives persisted health profile wizards.
type WizardService interface {
	// Start opens a new wizard at the first step.
	Start(ctx context.Context, clientID uuid.UUID) (*domain.WizardSessionResponse, error)
	// Get returns the session, with a metrics preview once the review step is reached.
	Get(ctx context.Context, sessionID uuid.UUID) (*domain.WizardSessionResponse, error)
	// Dispatch applies one action and persists the resulting state.
	Dispatch(ctx context.Context, sessionID uuid.UUID, action wizard.Action) (*domain.WizardSessionResponse, error)
	// Submit relays a finished wizard. The session is removed once the backend accepts it.
	Submit(ctx context.Context, sessionID uuid.UUID, token string) (*SubmitOutcome, error)
}

type wizardService struct {
	repo     repository.WizardSessionRepository
	metrics  MetricsService
	profiles ProfileService
}

func NewWizardService(repo repository.WizardSessionRepository, metrics MetricsService, profiles ProfileService) WizardService {
	return &wizardService{
		repo:     repo,
		metrics:  metrics,
		profiles: profiles,
	}
}

func (s *wizardService) Start(ctx context.Context, clientID uuid.UUID) (*domain.WizardSessionResponse, error) {
	session := &domain.WizardSession{
		ID:       uuid.New(),
		ClientID: clientID,
		State:    wizard.NewState(),
	}
	if err := s.repo.Create(ctx, session); err != nil {
		return nil, err
	}
	return s.respond(ctx, session), nil
}

func (s *wizardService) Get(ctx context.Context, sessionID uuid.UUID) (*domain.WizardSessionResponse, error) {
	session, err := s.repo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.respond(ctx, session), nil
}

func (s *wizardService) Dispatch(ctx context.Context, sessionID uuid.UUID, action wizard.Action) (*domain.WizardSessionResponse, error) {
	session, err := s.repo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	state, err := wizard.Reduce(session.State, action)
	if err != nil {
		return nil, err
	}

	session.State = state
	if err := s.repo.Update(ctx, session); err != nil {
		return nil, err
	}
	return s.respond(ctx, session), nil
}

func (s *wizardService) Submit(ctx context.Context, sessionID uuid.UUID, token string) (*SubmitOutcome, error) {
	session, err := s.repo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	in, err := wizard.ProfileInput(session.State)
	if err != nil {
		return nil, err
	}

	outcome := s.profiles.Submit(ctx, session.ClientID, token, in)
	if outcome.Result.Success {
		if err := s.repo.Delete(ctx, session.ID); err != nil {
			log.Printf("[wizard] failed to delete submitted session %s: %v", session.ID, err)
		}
	}
	return outcome, nil
}

func (s *wizardService) respond(ctx context.Context, session *domain.WizardSession) *domain.WizardSessionResponse {
	resp := session.ToResponse()
	if in, err := wizard.ProfileInput(session.State); err == nil {
		metrics := s.metrics.Calculate(ctx, in)
		resp.Metrics = &metrics
	}
	return &resp
}
