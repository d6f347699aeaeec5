package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ProfileSubmission records one attempt to relay a health profile to the backend.
type ProfileSubmission struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ClientID uuid.UUID `gorm:"type:uuid;not null;index:idx_profile_submissions_client_created" json:"client_id"`
	// Subject of the caller's token, when it was a JWT
	SubmittedBy string                  `gorm:"type:text" json:"submitted_by,omitempty"`
	Payload     HealthProfileSubmission `gorm:"type:jsonb;serializer:json;not null" json:"payload"`
	Success     bool                    `gorm:"not null" json:"success"`
	Error       string                  `gorm:"type:text" json:"error,omitempty"`
	Response    json.RawMessage         `gorm:"type:jsonb;serializer:json" json:"response,omitempty"`
	CreatedAt   time.Time               `gorm:"autoCreateTime;index:idx_profile_submissions_client_created,sort:desc" json:"created_at"`
}

func (ProfileSubmission) TableName() string {
	return "profile_submissions"
}

// ProfileSubmissionResponse is the response body for a recorded submission.
// @Description Recorded health profile submission.
type ProfileSubmissionResponse struct {
	// Submission identifier
	ID uuid.UUID `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Client the profile belongs to
	ClientID uuid.UUID `json:"client_id" example:"660e8400-e29b-41d4-a716-446655440001"`
	// Subject of the token the profile was submitted with
	SubmittedBy string `json:"submitted_by,omitempty" example:"user-42"`
	// True if the backend accepted the profile
	Success bool `json:"success" example:"true"`
	// Backend or relay error message
	Error string `json:"error,omitempty" example:"Failed to submit health profile"`
	// Answers that were submitted
	Profile HealthProfileInput `json:"profile"`
	// Metrics that were submitted
	Metrics HealthMetrics `json:"metrics"`
	// Submission timestamp
	CreatedAt time.Time `json:"created_at" example:"2024-01-16T07:05:00Z"`
}

func (s *ProfileSubmission) ToResponse() ProfileSubmissionResponse {
	return ProfileSubmissionResponse{
		ID:          s.ID,
		ClientID:    s.ClientID,
		SubmittedBy: s.SubmittedBy,
		Success:     s.Success,
		Error:       s.Error,
		Profile:     s.Payload.HealthProfileFormData,
		Metrics:     s.Payload.HealthMetrics,
		CreatedAt:   s.CreatedAt,
	}
}

// SubmitProfileResponse is returned after a profile was relayed.
// @Description Result of relaying a health profile to the backend.
type SubmitProfileResponse struct {
	// Recorded submission
	Submission ProfileSubmissionResponse `json:"submission"`
	// Data returned by the backend, if any
	Data json.RawMessage `json:"data,omitempty" swaggertype:"object"`
}

// ProfileSubmissionListResponse is the response body for listing submissions.
// @Description Paginated list of health profile submissions.
type ProfileSubmissionListResponse struct {
	Data       []ProfileSubmissionResponse `json:"data"`
	Pagination PaginationResponse          `json:"pagination"`
}

// PaginationResponse contains pagination metadata.
// @Description Cursor-based pagination info.
type PaginationResponse struct {
	// Cursor for fetching the next page (empty if no more pages)
	NextCursor string `json:"next_cursor,omitempty"`
	// True if more results are available
	HasMore bool `json:"has_more" example:"true"`
}

// SubmissionFilter contains filter parameters for listing submissions
type SubmissionFilter struct {
	Limit  int
	Cursor string
}
