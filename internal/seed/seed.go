package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/blaisecz/gym-dashboard/internal/calculator"
	"github.com/blaisecz/gym-dashboard/internal/config"
	"github.com/blaisecz/gym-dashboard/internal/domain"
	"github.com/blaisecz/gym-dashboard/internal/wizard"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const seededWeeks = 8

// seedNamespace derives stable IDs so repeated runs update nothing.
var seedNamespace = uuid.MustParse("6f1c2a52-5d0e-4b8e-9a39-0c7d1f3e8b21")

// Client is a demo client with a starting profile.
type Client struct {
	ID      uuid.UUID
	Profile domain.HealthProfileInput
}

// Clients are the demo clients created by Run.
var Clients = []Client{
	{
		ID: uuid.MustParse("11111111-1111-1111-1111-111111111111"),
		Profile: domain.HealthProfileInput{
			Gender:        domain.GenderMale,
			Age:           30,
			Weight:        domain.Weight{Value: 92, Unit: domain.WeightUnitKg},
			Height:        domain.Height{Value: 180, Unit: domain.HeightUnitCm},
			ActivityLevel: domain.ActivityModerate,
			Goal:          domain.GoalFatLoss,
		},
	},
	{
		ID: uuid.MustParse("22222222-2222-2222-2222-222222222222"),
		Profile: domain.HealthProfileInput{
			Gender:             domain.GenderFemale,
			Age:                26,
			Weight:             domain.Weight{Value: 128, Unit: domain.WeightUnitLb},
			Height:             domain.Height{Value: 5.5, Unit: domain.HeightUnitFt},
			ActivityLevel:      domain.ActivityActive,
			Goal:               domain.GoalMuscleBuilding,
			DietaryPreferences: []string{"vegetarian"},
		},
	},
	{
		ID: uuid.MustParse("33333333-3333-3333-3333-333333333333"),
		Profile: domain.HealthProfileInput{
			Gender:            domain.GenderOther,
			Age:               45,
			Weight:            domain.Weight{Value: 75, Unit: domain.WeightUnitKg},
			Height:            domain.Height{Value: 170, Unit: domain.HeightUnitCm},
			ActivityLevel:     domain.ActivityLight,
			Goal:              domain.GoalOther,
			GoalDetails:       "Train for a 10k run",
			Allergies:         []string{"peanuts"},
			MedicalConditions: []string{"asthma"},
		},
	},
}

// Run seeds the database with demo submissions and one open wizard per client.
// Safe to call multiple times.
func Run(db *gorm.DB, calc *calculator.Calculator) error {
	if err := config.Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for _, client := range Clients {
		if err := seedSubmissionsForClient(db, calc, client, rng); err != nil {
			return err
		}
		if err := seedWizardForClient(db, client); err != nil {
			return err
		}
	}

	log.Println("Seed completed")
	return nil
}

// seedSubmissionsForClient records one weekly submission with a slowly drifting weight.
func seedSubmissionsForClient(db *gorm.DB, calc *calculator.Calculator, client Client, rng *rand.Rand) error {
	now := time.Now().UTC()
	profile := client.Profile

	for week := seededWeeks - 1; week >= 0; week-- {
		profile.Weight.Value = roundWeight(profile.Weight.Value + weeklyDrift(profile.Goal, rng))

		payload := domain.HealthProfileSubmission{
			HealthProfileFormData: profile,
			HealthMetrics:         calc.Calculate(profile),
		}
		submission := domain.ProfileSubmission{
			ID:        uuid.NewSHA1(seedNamespace, []byte(fmt.Sprintf("submission-%s-%d", client.ID, week))),
			ClientID:  client.ID,
			Payload:   payload,
			Success:   true,
			CreatedAt: now.AddDate(0, 0, -7*week),
		}

		if err := db.Where("id = ?", submission.ID).FirstOrCreate(&submission).Error; err != nil {
			return fmt.Errorf("failed to create submission for client %s: %w", client.ID, err)
		}
	}
	return nil
}

// seedWizardForClient opens a wizard already answered up to the activity level.
func seedWizardForClient(db *gorm.DB, client Client) error {
	p := client.Profile
	state, err := applyAll(wizard.NewState(),
		wizard.SetGender{Gender: p.Gender}, wizard.Next{},
		wizard.SetAge{Age: p.Age}, wizard.Next{},
		wizard.SetHeight{Height: p.Height}, wizard.Next{},
		wizard.SetWeight{Weight: p.Weight}, wizard.Next{},
		wizard.SetActivityLevel{ActivityLevel: p.ActivityLevel}, wizard.Next{},
	)
	if err != nil {
		return fmt.Errorf("failed to build wizard state for client %s: %w", client.ID, err)
	}

	session := domain.WizardSession{
		ID:       uuid.NewSHA1(seedNamespace, []byte("wizard-"+client.ID.String())),
		ClientID: client.ID,
		State:    state,
	}
	if err := db.Where("id = ?", session.ID).FirstOrCreate(&session).Error; err != nil {
		return fmt.Errorf("failed to create wizard for client %s: %w", client.ID, err)
	}
	return nil
}

func applyAll(s domain.WizardState, actions ...wizard.Action) (domain.WizardState, error) {
	for _, a := range actions {
		var err error
		if s, err = wizard.Reduce(s, a); err != nil {
			return s, err
		}
	}
	return s, nil
}

// weeklyDrift moves weight in the direction of the goal with some noise.
func weeklyDrift(goal domain.Goal, rng *rand.Rand) float64 {
	noise := rng.Float64()*0.4 - 0.2
	switch goal {
	case domain.GoalFatLoss:
		return -0.5 + noise
	case domain.GoalMuscleBuilding, domain.GoalBodybuilding:
		return 0.25 + noise
	default:
		return noise
	}
}

func roundWeight(v float64) float64 {
	return float64(int(v*10+0.5)) / 10
}
