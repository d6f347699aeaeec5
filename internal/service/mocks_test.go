package service

import (
	"context"
	"time"

	"github.com/blaisecz/gym-dashboard/internal/domain"
	"github.com/blaisecz/gym-dashboard/internal/relay"
	"github.com/google/uuid"
)

// MockSubmissionRepository is a mock implementation of SubmissionRepository
type MockSubmissionRepository struct {
	submissions []*domain.ProfileSubmission
	listResult  []domain.ProfileSubmission
	err         error
}

func NewMockSubmissionRepository() *MockSubmissionRepository {
	return &MockSubmissionRepository{}
}

func (m *MockSubmissionRepository) Create(ctx context.Context, submission *domain.ProfileSubmission) error {
	if m.err != nil {
		return m.err
	}
	if submission.ID == uuid.Nil {
		submission.ID = uuid.New()
	}
	submission.CreatedAt = time.Now()
	m.submissions = append(m.submissions, submission)
	return nil
}

func (m *MockSubmissionRepository) List(ctx context.Context, clientID uuid.UUID, filter domain.SubmissionFilter) ([]domain.ProfileSubmission, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.listResult != nil {
		result := make([]domain.ProfileSubmission, len(m.listResult))
		copy(result, m.listResult)
		return result, nil
	}
	var result []domain.ProfileSubmission
	for _, s := range m.submissions {
		if s.ClientID == clientID {
			result = append(result, *s)
		}
	}
	return result, nil
}

// MockWizardSessionRepository is a mock implementation of WizardSessionRepository
type MockWizardSessionRepository struct {
	sessions map[uuid.UUID]*domain.WizardSession
	err      error
	deleted  []uuid.UUID
}

func NewMockWizardSessionRepository() *MockWizardSessionRepository {
	return &MockWizardSessionRepository{
		sessions: make(map[uuid.UUID]*domain.WizardSession),
	}
}

func (m *MockWizardSessionRepository) Create(ctx context.Context, session *domain.WizardSession) error {
	if m.err != nil {
		return m.err
	}
	if session.ID == uuid.Nil {
		session.ID = uuid.New()
	}
	now := time.Now()
	session.CreatedAt = now
	session.UpdatedAt = now
	stored := *session
	m.sessions[session.ID] = &stored
	return nil
}

func (m *MockWizardSessionRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.WizardSession, error) {
	if m.err != nil {
		return nil, m.err
	}
	session, ok := m.sessions[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := *session
	return &out, nil
}

func (m *MockWizardSessionRepository) Update(ctx context.Context, session *domain.WizardSession) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.sessions[session.ID]; !ok {
		return domain.ErrNotFound
	}
	session.UpdatedAt = time.Now()
	stored := *session
	m.sessions[session.ID] = &stored
	return nil
}

func (m *MockWizardSessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	delete(m.sessions, id)
	m.deleted = append(m.deleted, id)
	return nil
}

// MockRelayClient is a mock implementation of relay.Client
type MockRelayClient struct {
	result   relay.Result
	calls    int
	lastAuth string
	payload  domain.HealthProfileSubmission
}

func (m *MockRelayClient) IsEnabled() bool {
	return true
}

func (m *MockRelayClient) SubmitHealthProfile(ctx context.Context, token string, payload domain.HealthProfileSubmission) relay.Result {
	m.calls++
	m.lastAuth = token
	m.payload = payload
	return m.result
}

// MockGuidanceLLM is a mock implementation of llm.GuidanceLLM
type MockGuidanceLLM struct {
	output  *domain.GuidanceOutput
	err     error
	context *domain.GuidanceContext
}

func (m *MockGuidanceLLM) GenerateGuidance(ctx context.Context, guidanceCtx *domain.GuidanceContext) (*domain.GuidanceOutput, error) {
	m.context = guidanceCtx
	if m.err != nil {
		return nil, m.err
	}
	return m.output, nil
}
