package handler

import (
	"context"
	"time"

	"github.com/blaisecz/gym-dashboard/internal/domain"
	"github.com/blaisecz/gym-dashboard/internal/relay"
	"github.com/blaisecz/gym-dashboard/internal/service"
	"github.com/blaisecz/gym-dashboard/internal/wizard"
	"github.com/google/uuid"
)

// MockMetricsService is a mock implementation of MetricsService
type MockMetricsService struct {
	calculateFunc func(ctx context.Context, in domain.HealthProfileInput) domain.HealthMetrics
}

func (m *MockMetricsService) Calculate(ctx context.Context, in domain.HealthProfileInput) domain.HealthMetrics {
	if m.calculateFunc != nil {
		return m.calculateFunc(ctx, in)
	}
	return domain.HealthMetrics{BMI: 22.9, BMICategory: domain.BMINormal}
}

// MockGuidanceService is a mock implementation of GuidanceService
type MockGuidanceService struct {
	generateFunc func(ctx context.Context, in domain.HealthProfileInput) (*domain.GuidanceResponse, error)
}

func (m *MockGuidanceService) Generate(ctx context.Context, in domain.HealthProfileInput) (*domain.GuidanceResponse, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, in)
	}
	return &domain.GuidanceResponse{Guidance: domain.GuidanceOutput{Summary: "ok"}}, nil
}

// MockProfileService is a mock implementation of ProfileService
type MockProfileService struct {
	submitFunc func(ctx context.Context, clientID uuid.UUID, token string, in domain.HealthProfileInput) *service.SubmitOutcome
	listFunc   func(ctx context.Context, clientID uuid.UUID, filter domain.SubmissionFilter) (*domain.ProfileSubmissionListResponse, error)
}

func (m *MockProfileService) Submit(ctx context.Context, clientID uuid.UUID, token string, in domain.HealthProfileInput) *service.SubmitOutcome {
	if m.submitFunc != nil {
		return m.submitFunc(ctx, clientID, token, in)
	}
	return acceptedOutcome(clientID, in)
}

func (m *MockProfileService) List(ctx context.Context, clientID uuid.UUID, filter domain.SubmissionFilter) (*domain.ProfileSubmissionListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, clientID, filter)
	}
	return &domain.ProfileSubmissionListResponse{
		Data:       []domain.ProfileSubmissionResponse{},
		Pagination: domain.PaginationResponse{HasMore: false},
	}, nil
}

// MockWizardService is a mock implementation of WizardService
type MockWizardService struct {
	startFunc    func(ctx context.Context, clientID uuid.UUID) (*domain.WizardSessionResponse, error)
	getFunc      func(ctx context.Context, sessionID uuid.UUID) (*domain.WizardSessionResponse, error)
	dispatchFunc func(ctx context.Context, sessionID uuid.UUID, action wizard.Action) (*domain.WizardSessionResponse, error)
	submitFunc   func(ctx context.Context, sessionID uuid.UUID, token string) (*service.SubmitOutcome, error)
}

func (m *MockWizardService) Start(ctx context.Context, clientID uuid.UUID) (*domain.WizardSessionResponse, error) {
	if m.startFunc != nil {
		return m.startFunc(ctx, clientID)
	}
	return sessionResponse(uuid.New(), clientID, wizard.NewState()), nil
}

func (m *MockWizardService) Get(ctx context.Context, sessionID uuid.UUID) (*domain.WizardSessionResponse, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, sessionID)
	}
	return sessionResponse(sessionID, uuid.New(), wizard.NewState()), nil
}

func (m *MockWizardService) Dispatch(ctx context.Context, sessionID uuid.UUID, action wizard.Action) (*domain.WizardSessionResponse, error) {
	if m.dispatchFunc != nil {
		return m.dispatchFunc(ctx, sessionID, action)
	}
	state, err := wizard.Reduce(wizard.NewState(), action)
	if err != nil {
		return nil, err
	}
	return sessionResponse(sessionID, uuid.New(), state), nil
}

func (m *MockWizardService) Submit(ctx context.Context, sessionID uuid.UUID, token string) (*service.SubmitOutcome, error) {
	if m.submitFunc != nil {
		return m.submitFunc(ctx, sessionID, token)
	}
	return acceptedOutcome(uuid.New(), domain.HealthProfileInput{}), nil
}

func sessionResponse(id, clientID uuid.UUID, state domain.WizardState) *domain.WizardSessionResponse {
	now := time.Now()
	return &domain.WizardSessionResponse{
		ID:        id,
		ClientID:  clientID,
		State:     state,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func acceptedOutcome(clientID uuid.UUID, in domain.HealthProfileInput) *service.SubmitOutcome {
	return &service.SubmitOutcome{
		Submission: &domain.ProfileSubmission{
			ID:        uuid.New(),
			ClientID:  clientID,
			Payload:   domain.HealthProfileSubmission{HealthProfileFormData: in},
			Success:   true,
			CreatedAt: time.Now(),
		},
		Result: relay.Result{Success: true},
	}
}
