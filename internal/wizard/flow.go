// Package wizard implements the health profile intake as a pure reducer over
// domain.WizardState. Nothing here performs I/O: callers load a state, apply
// actions with Reduce and persist the result.
package wizard

import (
	"errors"

	"github.com/blaisecz/gym-dashboard/internal/domain"
)

var (
	ErrStepIncomplete   = errors.New("current step is not answered")
	ErrNoPreviousStep   = errors.New("already at the first step")
	ErrStepNotVisited   = errors.New("step has not been visited")
	ErrWizardIncomplete = errors.New("wizard has not reached the review step")
	ErrUnknownAction    = errors.New("unknown wizard action")
)

// FirstStep is where every new wizard starts.
const FirstStep = domain.StepGender

// NewState returns an empty wizard positioned at the first step.
func NewState() domain.WizardState {
	return domain.WizardState{
		Step:    FirstStep,
		History: []domain.WizardStep{},
	}
}

// nextStep returns the step that follows current given the answers so far.
func nextStep(current domain.WizardStep, a domain.WizardAnswers) domain.WizardStep {
	switch current {
	case domain.StepGender:
		return domain.StepAge
	case domain.StepAge:
		return domain.StepHeight
	case domain.StepHeight:
		return domain.StepWeight
	case domain.StepWeight:
		return domain.StepActivityLevel
	case domain.StepActivityLevel:
		return domain.StepGoal
	case domain.StepGoal:
		if a.Goal == domain.GoalOther {
			return domain.StepGoalDetails
		}
		return domain.StepDietaryPreferences
	case domain.StepGoalDetails:
		return domain.StepDietaryPreferences
	case domain.StepDietaryPreferences:
		return domain.StepAllergies
	case domain.StepAllergies:
		if a.HasAllergies != nil && *a.HasAllergies {
			return domain.StepAllergyDetails
		}
		return domain.StepMedicalConditions
	case domain.StepAllergyDetails:
		return domain.StepMedicalConditions
	case domain.StepMedicalConditions:
		if a.HasMedicalConditions != nil && *a.HasMedicalConditions {
			return domain.StepMedicalConditionDetails
		}
		return domain.StepReview
	case domain.StepMedicalConditionDetails:
		return domain.StepReview
	default:
		return domain.StepReview
	}
}

// isAnswered reports whether the given step has enough data to move on.
func isAnswered(step domain.WizardStep, a domain.WizardAnswers) bool {
	switch step {
	case domain.StepGender:
		return a.Gender != ""
	case domain.StepAge:
		return a.Age > 0
	case domain.StepHeight:
		return a.Height != nil && a.Height.Value > 0
	case domain.StepWeight:
		return a.Weight != nil && a.Weight.Value > 0
	case domain.StepActivityLevel:
		return a.ActivityLevel != ""
	case domain.StepGoal:
		return a.Goal != ""
	case domain.StepGoalDetails:
		return a.GoalDetails != ""
	case domain.StepDietaryPreferences:
		return true
	case domain.StepAllergies:
		return a.HasAllergies != nil
	case domain.StepAllergyDetails:
		return len(a.Allergies) > 0
	case domain.StepMedicalConditions:
		return a.HasMedicalConditions != nil
	case domain.StepMedicalConditionDetails:
		return len(a.MedicalConditions) > 0
	case domain.StepReview:
		return true
	default:
		return false
	}
}

// Path returns the steps a wizard with these answers walks through, in order.
func Path(a domain.WizardAnswers) []domain.WizardStep {
	path := []domain.WizardStep{FirstStep}
	for step := FirstStep; step != domain.StepReview; {
		step = nextStep(step, a)
		path = append(path, step)
	}
	return path
}

// Complete reports whether every step on the current path is answered.
func Complete(s domain.WizardState) bool {
	for _, step := range Path(s.Answers) {
		if !isAnswered(step, s.Answers) {
			return false
		}
	}
	return true
}

// ProfileInput turns a finished wizard into the calculator input.
func ProfileInput(s domain.WizardState) (domain.HealthProfileInput, error) {
	if s.Step != domain.StepReview || !Complete(s) {
		return domain.HealthProfileInput{}, ErrWizardIncomplete
	}

	a := s.Answers
	in := domain.HealthProfileInput{
		Gender:             a.Gender,
		Age:                a.Age,
		Weight:             *a.Weight,
		Height:             *a.Height,
		ActivityLevel:      a.ActivityLevel,
		Goal:               a.Goal,
		GoalDetails:        a.GoalDetails,
		DietaryPreferences: cloneStrings(a.DietaryPreferences),
		Allergies:          cloneStrings(a.Allergies),
		MedicalConditions:  cloneStrings(a.MedicalConditions),
	}
	return in, nil
}
