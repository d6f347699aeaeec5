package service

import (
	"context"
	"log"

	"github.com/blaisecz/gym-dashboard/internal/auth"
	"github.com/blaisecz/gym-dashboard/internal/domain"
	"github.com/blaisecz/gym-dashboard/internal/relay"
	"github.com/blaisecz/gym-dashboard/internal/repository"
	"github.com/blaisecz/gym-dashboard/pkg/pagination"
	"github.com/google/uuid"
)

// SubmitOutcome pairs the recorded submission with the backend's answer.
type SubmitOutcome struct {
	Submission *domain.ProfileSubmission
	Result     relay.Result
}

// ProfileService relays health profiles and keeps a history of attempts.
type ProfileService interface {
	// Submit calculates metrics, relays them with the answers and records the attempt.
	Submit(ctx context.Context, clientID uuid.UUID, token string, in domain.HealthProfileInput) *SubmitOutcome
	// List returns a client's submissions, newest first.
	List(ctx context.Context, clientID uuid.UUID, filter domain.SubmissionFilter) (*domain.ProfileSubmissionListResponse, error)
}

type profileService struct {
	metrics MetricsService
	relay   relay.Client
	repo    repository.SubmissionRepository
}

func NewProfileService(metrics MetricsService, relayClient relay.Client, repo repository.SubmissionRepository) ProfileService {
	return &profileService{
		metrics: metrics,
		relay:   relayClient,
		repo:    repo,
	}
}

// Submit never fails: a relay failure is reported in the outcome, and a failure
// to record the attempt is only logged because the backend already answered.
func (s *profileService) Submit(ctx context.Context, clientID uuid.UUID, token string, in domain.HealthProfileInput) *SubmitOutcome {
	payload := domain.HealthProfileSubmission{
		HealthProfileFormData: in,
		HealthMetrics:         s.metrics.Calculate(ctx, in),
	}

	result := s.relay.SubmitHealthProfile(ctx, token, payload)

	submission := &domain.ProfileSubmission{
		ID:          uuid.New(),
		ClientID:    clientID,
		SubmittedBy: auth.Subject(token),
		Payload:     payload,
		Success:     result.Success,
		Error:       result.Error,
		Response:    result.Data,
	}
	if err := s.repo.Create(ctx, submission); err != nil {
		log.Printf("[profile] failed to record submission %s for client %s: %v", submission.ID, clientID, err)
	}

	return &SubmitOutcome{Submission: submission, Result: result}
}

func (s *profileService) List(ctx context.Context, clientID uuid.UUID, filter domain.SubmissionFilter) (*domain.ProfileSubmissionListResponse, error) {
	submissions, err := s.repo.List(ctx, clientID, filter)
	if err != nil {
		return nil, err
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	hasMore := len(submissions) > limit
	if hasMore {
		submissions = submissions[:limit]
	}

	response := &domain.ProfileSubmissionListResponse{
		Data: make([]domain.ProfileSubmissionResponse, len(submissions)),
		Pagination: domain.PaginationResponse{
			HasMore: hasMore,
		},
	}
	for i, submission := range submissions {
		response.Data[i] = submission.ToResponse()
	}

	if hasMore && len(submissions) > 0 {
		last := submissions[len(submissions)-1]
		cursor := &pagination.Cursor{ID: last.ID, CreatedAt: last.CreatedAt}
		response.Pagination.NextCursor = cursor.Encode()
	}

	return response, nil
}
