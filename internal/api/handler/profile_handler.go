package handler

import (
	"errors"
	"net/http"

	"github.com/blaisecz/gym-dashboard/internal/domain"
	"github.com/blaisecz/gym-dashboard/internal/service"
	"github.com/blaisecz/gym-dashboard/pkg/problem"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type ProfileHandler struct {
	service service.ProfileService
}

func NewProfileHandler(service service.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// Submit handles POST /v1/clients/{clientId}/health-profile
// @Summary Submit health profile
// @Description Compute metrics and relay answers plus metrics to the profile backend. The caller's bearer token is forwarded. Every attempt is recorded.
// @Tags health-profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param clientId path string true "Client UUID" format(uuid) example(660e8400-e29b-41d4-a716-446655440001)
// @Param request body domain.HealthProfileInput true "Intake answers"
// @Success 201 {object} domain.SubmitProfileResponse "Backend accepted the profile"
// @Failure 400 {object} problem.Problem "Invalid client ID or JSON"
// @Failure 422 {object} problem.Problem "Invalid fields"
// @Failure 502 {object} problem.Problem "Backend rejected or unreachable"
// @Router /clients/{clientId}/health-profile [post]
func (h *ProfileHandler) Submit(w http.ResponseWriter, r *http.Request) {
	clientID, err := uuid.Parse(chi.URLParam(r, "clientId"))
	if err != nil {
		problem.BadRequest("Invalid client ID format").Write(w)
		return
	}

	in, ok := decodeProfileInput(w, r)
	if !ok {
		return
	}

	writeSubmitOutcome(w, h.service.Submit(r.Context(), clientID, bearerToken(r), in))
}

// ListSubmissions handles GET /v1/clients/{clientId}/health-profile/submissions
// @Summary List profile submissions
// @Description Fetch the client's submission attempts, newest first.
// @Tags health-profile
// @Produce json
// @Param clientId path string true "Client UUID" format(uuid) example(660e8400-e29b-41d4-a716-446655440001)
// @Param limit query integer false "Results per page (1-100)" default(20) minimum(1) maximum(100)
// @Param cursor query string false "Cursor from previous response's next_cursor"
// @Success 200 {object} domain.ProfileSubmissionListResponse "Submissions with pagination"
// @Failure 400 {object} problem.Problem "Invalid client ID"
// @Failure 422 {object} problem.Problem "Invalid query parameters"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /clients/{clientId}/health-profile/submissions [get]
func (h *ProfileHandler) ListSubmissions(w http.ResponseWriter, r *http.Request) {
	clientID, err := uuid.Parse(chi.URLParam(r, "clientId"))
	if err != nil {
		problem.BadRequest("Invalid client ID format").Write(w)
		return
	}

	filter, fieldErrors := parseListFilter(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	response, err := h.service.List(r.Context(), clientID, filter)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			problem.ValidationError("Invalid query parameters", []problem.FieldError{
				{Field: "cursor", Message: "must be a next_cursor value from a previous page"},
			}).Write(w)
			return
		}
		problem.InternalError("Failed to list submissions").Write(w)
		return
	}

	writeJSON(w, http.StatusOK, response)
}

// writeSubmitOutcome answers 201 when the backend accepted the profile and
// 502 with the relay's message otherwise.
func writeSubmitOutcome(w http.ResponseWriter, outcome *service.SubmitOutcome) {
	if !outcome.Result.Success {
		problem.BackendError(outcome.Result.Error).Write(w)
		return
	}

	writeJSON(w, http.StatusCreated, domain.SubmitProfileResponse{
		Submission: outcome.Submission.ToResponse(),
		Data:       outcome.Result.Data,
	})
}
