package domain

import (
	"time"

	"github.com/google/uuid"
)

// WizardStep identifies one screen of the health profile wizard.
type WizardStep string

const (
	StepGender                  WizardStep = "gender"
	StepAge                     WizardStep = "age"
	StepHeight                  WizardStep = "height"
	StepWeight                  WizardStep = "weight"
	StepActivityLevel           WizardStep = "activity_level"
	StepGoal                    WizardStep = "goal"
	StepGoalDetails             WizardStep = "goal_details"
	StepDietaryPreferences      WizardStep = "dietary_preferences"
	StepAllergies               WizardStep = "allergies"
	StepAllergyDetails          WizardStep = "allergy_details"
	StepMedicalConditions       WizardStep = "medical_conditions"
	StepMedicalConditionDetails WizardStep = "medical_condition_details"
	StepReview                  WizardStep = "review"
)

// WizardAnswers holds whatever has been answered so far. Zero values mean unanswered.
type WizardAnswers struct {
	Gender               Gender        `json:"gender,omitempty"`
	Age                  int           `json:"age,omitempty"`
	Height               *Height       `json:"height,omitempty"`
	Weight               *Weight       `json:"weight,omitempty"`
	ActivityLevel        ActivityLevel `json:"activityLevel,omitempty"`
	Goal                 Goal          `json:"goal,omitempty"`
	GoalDetails          string        `json:"goalDetails,omitempty"`
	DietaryPreferences   []string      `json:"dietaryPreferences,omitempty"`
	HasAllergies         *bool         `json:"hasAllergies,omitempty"`
	Allergies            []string      `json:"allergies,omitempty"`
	HasMedicalConditions *bool         `json:"hasMedicalConditions,omitempty"`
	MedicalConditions    []string      `json:"medicalConditions,omitempty"`
}

// WizardState is the full, serializable state of a wizard run.
// @Description Health profile wizard state.
type WizardState struct {
	// Step currently shown
	Step WizardStep `json:"step" example:"gender"`
	// Answers collected so far
	Answers WizardAnswers `json:"answers"`
	// Steps visited before the current one, oldest first
	History []WizardStep `json:"history"`
}

// WizardSession persists a wizard run for a client between requests.
type WizardSession struct {
	ID        uuid.UUID   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ClientID  uuid.UUID   `gorm:"type:uuid;not null;index" json:"client_id"`
	State     WizardState `gorm:"type:jsonb;serializer:json;not null" json:"state"`
	CreatedAt time.Time   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time   `gorm:"autoUpdateTime" json:"updated_at"`
}

func (WizardSession) TableName() string {
	return "wizard_sessions"
}

// WizardSessionResponse is the response body for wizard endpoints.
// @Description Wizard session with its current state.
type WizardSessionResponse struct {
	// Session identifier
	ID uuid.UUID `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Client the wizard belongs to
	ClientID uuid.UUID `json:"client_id" example:"660e8400-e29b-41d4-a716-446655440001"`
	// Current wizard state
	State WizardState `json:"state"`
	// Live metrics preview, present once the review step is reached
	Metrics *HealthMetrics `json:"metrics,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at"`
	// Last update timestamp
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *WizardSession) ToResponse() WizardSessionResponse {
	return WizardSessionResponse{
		ID:        s.ID,
		ClientID:  s.ClientID,
		State:     s.State,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// WizardActionRequest is the wire form of a wizard action.
// @Description Wizard action: a type plus an optional type-specific payload.
type WizardActionRequest struct {
	Type    string         `json:"type" validate:"required" example:"set_gender"`
	Payload map[string]any `json:"payload,omitempty" swaggertype:"object"`
}
