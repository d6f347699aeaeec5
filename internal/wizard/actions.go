package wizard

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/blaisecz/gym-dashboard/internal/domain"
)

// ErrWrongStep is returned when an answer is sent for a step other than the current one.
var ErrWrongStep = errors.New("action does not apply to the current step")

// Action is one reducer input. The set is closed: only this package defines actions.
type Action interface {
	Type() string
	apply(s domain.WizardState) (domain.WizardState, error)
}

type SetGender struct {
	Gender domain.Gender `json:"gender" validate:"required,oneof=male female other"`
}

type SetAge struct {
	Age int `json:"age" validate:"required,gt=0,lte=120"`
}

type SetHeight struct {
	domain.Height
}

type SetWeight struct {
	domain.Weight
}

type SetActivityLevel struct {
	ActivityLevel domain.ActivityLevel `json:"activityLevel" validate:"required,oneof=sedentary light moderate active veryActive"`
}

type SetGoal struct {
	Goal domain.Goal `json:"goal" validate:"required,oneof=fat-loss muscle-building muscle-building-with-fat-loss bodybuilding maintenance general-fitness other"`
}

type SetGoalDetails struct {
	GoalDetails string `json:"goalDetails" validate:"required,max=500"`
}

type SetDietaryPreferences struct {
	DietaryPreferences []string `json:"dietaryPreferences" validate:"max=20,dive,min=1,max=100"`
}

// SetAllergies answers the yes/no allergy question. A missing answer is not "no".
type SetAllergies struct {
	HasAllergies *bool `json:"hasAllergies" validate:"required"`
}

type SetAllergyDetails struct {
	Allergies []string `json:"allergies" validate:"required,min=1,max=20,dive,min=1,max=100"`
}

type SetMedicalConditions struct {
	HasMedicalConditions *bool `json:"hasMedicalConditions" validate:"required"`
}

type SetMedicalConditionDetails struct {
	MedicalConditions []string `json:"medicalConditions" validate:"required,min=1,max=20,dive,min=1,max=200"`
}

// Next moves forward once the current step is answered.
type Next struct{}

// Back returns to the previously visited step.
type Back struct{}

// GoTo jumps back to a step that was already visited.
type GoTo struct {
	Step domain.WizardStep `json:"step" validate:"required"`
}

// Reset discards every answer.
type Reset struct{}

func (SetGender) Type() string                  { return "set_gender" }
func (SetAge) Type() string                     { return "set_age" }
func (SetHeight) Type() string                  { return "set_height" }
func (SetWeight) Type() string                  { return "set_weight" }
func (SetActivityLevel) Type() string           { return "set_activity_level" }
func (SetGoal) Type() string                    { return "set_goal" }
func (SetGoalDetails) Type() string             { return "set_goal_details" }
func (SetDietaryPreferences) Type() string      { return "set_dietary_preferences" }
func (SetAllergies) Type() string               { return "set_allergies" }
func (SetAllergyDetails) Type() string          { return "set_allergy_details" }
func (SetMedicalConditions) Type() string       { return "set_medical_conditions" }
func (SetMedicalConditionDetails) Type() string { return "set_medical_condition_details" }
func (Next) Type() string                       { return "next" }
func (Back) Type() string                       { return "back" }
func (GoTo) Type() string                       { return "go_to" }
func (Reset) Type() string                      { return "reset" }

// Reduce applies an action and returns the resulting state. The input state
// is never modified; on error it is returned unchanged.
func Reduce(s domain.WizardState, a Action) (domain.WizardState, error) {
	next, err := a.apply(clone(s))
	if err != nil {
		return s, err
	}
	return next, nil
}

func requireStep(s domain.WizardState, step domain.WizardStep) error {
	if s.Step != step {
		return fmt.Errorf("%w: expected %s, current step is %s", ErrWrongStep, step, s.Step)
	}
	return nil
}

func (a SetGender) apply(s domain.WizardState) (domain.WizardState, error) {
	if err := requireStep(s, domain.StepGender); err != nil {
		return s, err
	}
	s.Answers.Gender = a.Gender
	return s, nil
}

func (a SetAge) apply(s domain.WizardState) (domain.WizardState, error) {
	if err := requireStep(s, domain.StepAge); err != nil {
		return s, err
	}
	s.Answers.Age = a.Age
	return s, nil
}

func (a SetHeight) apply(s domain.WizardState) (domain.WizardState, error) {
	if err := requireStep(s, domain.StepHeight); err != nil {
		return s, err
	}
	h := a.Height
	s.Answers.Height = &h
	return s, nil
}

func (a SetWeight) apply(s domain.WizardState) (domain.WizardState, error) {
	if err := requireStep(s, domain.StepWeight); err != nil {
		return s, err
	}
	w := a.Weight
	s.Answers.Weight = &w
	return s, nil
}

func (a SetActivityLevel) apply(s domain.WizardState) (domain.WizardState, error) {
	if err := requireStep(s, domain.StepActivityLevel); err != nil {
		return s, err
	}
	s.Answers.ActivityLevel = a.ActivityLevel
	return s, nil
}

func (a SetGoal) apply(s domain.WizardState) (domain.WizardState, error) {
	if err := requireStep(s, domain.StepGoal); err != nil {
		return s, err
	}
	s.Answers.Goal = a.Goal
	if a.Goal != domain.GoalOther {
		s.Answers.GoalDetails = ""
	}
	return s, nil
}

func (a SetGoalDetails) apply(s domain.WizardState) (domain.WizardState, error) {
	if err := requireStep(s, domain.StepGoalDetails); err != nil {
		return s, err
	}
	s.Answers.GoalDetails = a.GoalDetails
	return s, nil
}

func (a SetDietaryPreferences) apply(s domain.WizardState) (domain.WizardState, error) {
	if err := requireStep(s, domain.StepDietaryPreferences); err != nil {
		return s, err
	}
	s.Answers.DietaryPreferences = cloneStrings(a.DietaryPreferences)
	return s, nil
}

func (a SetAllergies) apply(s domain.WizardState) (domain.WizardState, error) {
	if err := requireStep(s, domain.StepAllergies); err != nil {
		return s, err
	}
	if a.HasAllergies == nil {
		return s, fmt.Errorf("%w: %s needs a yes or no answer", ErrStepIncomplete, s.Step)
	}
	has := *a.HasAllergies
	s.Answers.HasAllergies = &has
	if !has {
		s.Answers.Allergies = nil
	}
	return s, nil
}

func (a SetAllergyDetails) apply(s domain.WizardState) (domain.WizardState, error) {
	if err := requireStep(s, domain.StepAllergyDetails); err != nil {
		return s, err
	}
	s.Answers.Allergies = cloneStrings(a.Allergies)
	return s, nil
}

func (a SetMedicalConditions) apply(s domain.WizardState) (domain.WizardState, error) {
	if err := requireStep(s, domain.StepMedicalConditions); err != nil {
		return s, err
	}
	if a.HasMedicalConditions == nil {
		return s, fmt.Errorf("%w: %s needs a yes or no answer", ErrStepIncomplete, s.Step)
	}
	has := *a.HasMedicalConditions
	s.Answers.HasMedicalConditions = &has
	if !has {
		s.Answers.MedicalConditions = nil
	}
	return s, nil
}

func (a SetMedicalConditionDetails) apply(s domain.WizardState) (domain.WizardState, error) {
	if err := requireStep(s, domain.StepMedicalConditionDetails); err != nil {
		return s, err
	}
	s.Answers.MedicalConditions = cloneStrings(a.MedicalConditions)
	return s, nil
}

func (Next) apply(s domain.WizardState) (domain.WizardState, error) {
	if s.Step == domain.StepReview {
		return s, nil
	}
	if !isAnswered(s.Step, s.Answers) {
		return s, fmt.Errorf("%w: %s", ErrStepIncomplete, s.Step)
	}
	s.History = append(s.History, s.Step)
	s.Step = nextStep(s.Step, s.Answers)
	return s, nil
}

func (Back) apply(s domain.WizardState) (domain.WizardState, error) {
	if len(s.History) == 0 {
		return s, ErrNoPreviousStep
	}
	last := len(s.History) - 1
	s.Step = s.History[last]
	s.History = s.History[:last]
	return s, nil
}

func (a GoTo) apply(s domain.WizardState) (domain.WizardState, error) {
	if a.Step == s.Step {
		return s, nil
	}
	for i, step := range s.History {
		if step == a.Step {
			s.Step = step
			s.History = s.History[:i]
			return s, nil
		}
	}
	return s, fmt.Errorf("%w: %s", ErrStepNotVisited, a.Step)
}

func (Reset) apply(domain.WizardState) (domain.WizardState, error) {
	return NewState(), nil
}

var actionFactories = map[string]func() Action{
	"set_gender":                    func() Action { return &SetGender{} },
	"set_age":                       func() Action { return &SetAge{} },
	"set_height":                    func() Action { return &SetHeight{} },
	"set_weight":                    func() Action { return &SetWeight{} },
	"set_activity_level":            func() Action { return &SetActivityLevel{} },
	"set_goal":                      func() Action { return &SetGoal{} },
	"set_goal_details":              func() Action { return &SetGoalDetails{} },
	"set_dietary_preferences":       func() Action { return &SetDietaryPreferences{} },
	"set_allergies":                 func() Action { return &SetAllergies{} },
	"set_allergy_details":           func() Action { return &SetAllergyDetails{} },
	"set_medical_conditions":        func() Action { return &SetMedicalConditions{} },
	"set_medical_condition_details": func() Action { return &SetMedicalConditionDetails{} },
	"next":                          func() Action { return &Next{} },
	"back":                          func() Action { return &Back{} },
	"go_to":                         func() Action { return &GoTo{} },
	"reset":                         func() Action { return &Reset{} },
}

// DecodeAction builds a typed action from its wire form. The returned value
// is a pointer to the action struct so it can be handed to a struct validator.
func DecodeAction(req domain.WizardActionRequest) (Action, error) {
	factory, ok := actionFactories[req.Type]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, req.Type)
	}
	action := factory()

	if len(req.Payload) > 0 {
		raw, err := json.Marshal(req.Payload)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		if err := json.Unmarshal(raw, action); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
	}
	return action, nil
}

func clone(s domain.WizardState) domain.WizardState {
	out := s
	out.History = append([]domain.WizardStep{}, s.History...)
	a := s.Answers
	if a.Height != nil {
		h := *a.Height
		out.Answers.Height = &h
	}
	if a.Weight != nil {
		w := *a.Weight
		out.Answers.Weight = &w
	}
	if a.HasAllergies != nil {
		v := *a.HasAllergies
		out.Answers.HasAllergies = &v
	}
	if a.HasMedicalConditions != nil {
		v := *a.HasMedicalConditions
		out.Answers.HasMedicalConditions = &v
	}
	out.Answers.DietaryPreferences = cloneStrings(a.DietaryPreferences)
	out.Answers.Allergies = cloneStrings(a.Allergies)
	out.Answers.MedicalConditions = cloneStrings(a.MedicalConditions)
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string{}, in...)
}
