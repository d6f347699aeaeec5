package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/blaisecz/gym-dashboard/internal/api/validation"
	"github.com/blaisecz/gym-dashboard/internal/domain"
	"github.com/blaisecz/gym-dashboard/internal/service"
	"github.com/blaisecz/gym-dashboard/internal/wizard"
	"github.com/blaisecz/gym-dashboard/pkg/problem"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// WizardHandler handles the step-by-step health profile wizard.
type WizardHandler struct {
	service service.WizardService
}

func NewWizardHandler(service service.WizardService) *WizardHandler {
	return &WizardHandler{service: service}
}

// Start handles POST /v1/clients/{clientId}/health-profile/wizard
// @Summary Start wizard
// @Description Open a new health profile wizard positioned at the first step.
// @Tags health-profile-wizard
// @Produce json
// @Param clientId path string true "Client UUID" format(uuid) example(660e8400-e29b-41d4-a716-446655440001)
// @Success 201 {object} domain.WizardSessionResponse "New wizard session"
// @Failure 400 {object} problem.Problem "Invalid client ID"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /clients/{clientId}/health-profile/wizard [post]
func (h *WizardHandler) Start(w http.ResponseWriter, r *http.Request) {
	clientID, err := uuid.Parse(chi.URLParam(r, "clientId"))
	if err != nil {
		problem.BadRequest("Invalid client ID format").Write(w)
		return
	}

	session, err := h.service.Start(r.Context(), clientID)
	if err != nil {
		problem.InternalError("Failed to start wizard").Write(w)
		return
	}

	writeJSON(w, http.StatusCreated, session)
}

// Get handles GET /v1/health-profile-wizards/{sessionId}
// @Summary Get wizard
// @Description Read the wizard state. Metrics are included once the review step is reached.
// @Tags health-profile-wizard
// @Produce json
// @Param sessionId path string true "Wizard session UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Success 200 {object} domain.WizardSessionResponse "Wizard session"
// @Failure 400 {object} problem.Problem "Invalid session ID"
// @Failure 404 {object} problem.Problem "Wizard not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /health-profile-wizards/{sessionId} [get]
func (h *WizardHandler) Get(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := parseSessionID(w, r)
	if !ok {
		return
	}

	session, err := h.service.Get(r.Context(), sessionID)
	if err != nil {
		writeWizardError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, session)
}

// Dispatch handles POST /v1/health-profile-wizards/{sessionId}/actions
// @Summary Apply wizard action
// @Description Apply one action (set_gender, set_age, set_height, set_weight, set_activity_level, set_goal, set_goal_details, set_dietary_preferences, set_allergies, set_allergy_details, set_medical_conditions, set_medical_condition_details, next, back, go_to, reset).
// @Tags health-profile-wizard
// @Accept json
// @Produce json
// @Param sessionId path string true "Wizard session UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param request body domain.WizardActionRequest true "Action"
// @Success 200 {object} domain.WizardSessionResponse "Updated wizard session"
// @Failure 400 {object} problem.Problem "Invalid JSON, unknown action or malformed payload"
// @Failure 404 {object} problem.Problem "Wizard not found"
// @Failure 409 {object} problem.Problem "Action not allowed in the current state"
// @Failure 422 {object} problem.Problem "Invalid payload fields"
// @Router /health-profile-wizards/{sessionId}/actions [post]
func (h *WizardHandler) Dispatch(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := parseSessionID(w, r)
	if !ok {
		return
	}

	var req domain.WizardActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}
	if fieldErrors := validation.Validate(&req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	action, err := wizard.DecodeAction(req)
	if err != nil {
		problem.BadRequest(err.Error()).Write(w)
		return
	}
	if fieldErrors := validation.Validate(action); fieldErrors != nil {
		problem.ValidationError("Action payload contains invalid fields", fieldErrors).Write(w)
		return
	}

	session, err := h.service.Dispatch(r.Context(), sessionID, action)
	if err != nil {
		writeWizardError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, session)
}

// Submit handles POST /v1/health-profile-wizards/{sessionId}/submit
// @Summary Submit wizard
// @Description Relay a finished wizard to the profile backend. The session is removed once the backend accepts it and kept for retries otherwise.
// @Tags health-profile-wizard
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "Wizard session UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Success 201 {object} domain.SubmitProfileResponse "Backend accepted the profile"
// @Failure 400 {object} problem.Problem "Invalid session ID"
// @Failure 404 {object} problem.Problem "Wizard not found"
// @Failure 409 {object} problem.Problem "Wizard has not reached review"
// @Failure 502 {object} problem.Problem "Backend rejected or unreachable"
// @Router /health-profile-wizards/{sessionId}/submit [post]
func (h *WizardHandler) Submit(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := parseSessionID(w, r)
	if !ok {
		return
	}

	outcome, err := h.service.Submit(r.Context(), sessionID, bearerToken(r))
	if err != nil {
		writeWizardError(w, err)
		return
	}

	writeSubmitOutcome(w, outcome)
}

func parseSessionID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	sessionID, err := uuid.Parse(chi.URLParam(r, "sessionId"))
	if err != nil {
		problem.BadRequest("Invalid session ID format").Write(w)
		return uuid.Nil, false
	}
	return sessionID, true
}

func writeWizardError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		problem.NotFound("Wizard not found").Write(w)
	case errors.Is(err, wizard.ErrWrongStep),
		errors.Is(err, wizard.ErrStepIncomplete),
		errors.Is(err, wizard.ErrNoPreviousStep),
		errors.Is(err, wizard.ErrStepNotVisited),
		errors.Is(err, wizard.ErrWizardIncomplete):
		problem.WizardStateError(err.Error()).Write(w)
	default:
		problem.InternalError("Failed to update wizard").Write(w)
	}
}
