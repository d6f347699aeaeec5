package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/blaisecz/gym-dashboard/internal/api/validation"
	"github.com/blaisecz/gym-dashboard/internal/domain"
	"github.com/blaisecz/gym-dashboard/pkg/pagination"
	"github.com/blaisecz/gym-dashboard/pkg/problem"
)

// bearerToken returns the caller's bearer token, or "" when none was sent.
func bearerToken(r *http.Request) string {
	auth := strings.TrimSpace(r.Header.Get("Authorization"))
	if len(auth) < 7 || !strings.EqualFold(auth[:7], "bearer ") {
		return ""
	}
	return strings.TrimSpace(auth[7:])
}

// decodeProfileInput reads and validates a HealthProfileInput body. On failure
// the problem response has already been written and ok is false.
func decodeProfileInput(w http.ResponseWriter, r *http.Request) (in domain.HealthProfileInput, ok bool) {
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return in, false
	}
	if fieldErrors := validation.Validate(&in); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return in, false
	}
	return in, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func parseListFilter(r *http.Request) (domain.SubmissionFilter, []problem.FieldError) {
	var filter domain.SubmissionFilter
	var fieldErrors []problem.FieldError

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "limit",
				Message: "must be a positive integer",
			})
		} else {
			filter.Limit = limit
		}
	}

	if cursor := r.URL.Query().Get("cursor"); cursor != "" {
		if _, err := pagination.DecodeCursor(cursor); err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "cursor",
				Message: "must be a next_cursor value from a previous page",
			})
		} else {
			filter.Cursor = cursor
		}
	}

	if len(fieldErrors) > 0 {
		return filter, fieldErrors
	}
	return filter, nil
}
