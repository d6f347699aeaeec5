// Package calculator converts health profile answers into BMI, BMR, TDEE,
// target calories and a macro split. All functions are pure and assume
// validated input: zero or missing weight/height yields NaN or Inf.
package calculator

import (
	"math"

	"github.com/blaisecz/gym-dashboard/internal/domain"
)

const (
	// KgPerLb is the exact international avoirdupois pound.
	KgPerLb = 0.45359237

	// CmPerFt converts decimal feet. Feet and inches are not separated.
	CmPerFt = 30.48

	// CmPerInch is used by FeetAndInches to pre-flatten a height.
	CmPerInch = 2.54

	// Goal offsets applied to TDEE, in kcal/day.
	FatLossDeficit  = 500.0
	SurplusCalories = 250.0

	kcalPerGramProtein = 4.0
	kcalPerGramCarbs   = 4.0
	kcalPerGramFat     = 9.0
)

// OtherGenderPolicy decides which BMR formula applies to gender "other".
type OtherGenderPolicy string

const (
	// OtherUsesFemale reuses the female formula. This is the default.
	OtherUsesFemale OtherGenderPolicy = "female"
	// OtherUsesMale reuses the male formula.
	OtherUsesMale OtherGenderPolicy = "male"
	// OtherUsesAverage averages the male and female formulas.
	OtherUsesAverage OtherGenderPolicy = "average"
)

// ParseOtherGenderPolicy maps a config value to a policy, falling back to OtherUsesFemale.
func ParseOtherGenderPolicy(s string) OtherGenderPolicy {
	switch OtherGenderPolicy(s) {
	case OtherUsesMale:
		return OtherUsesMale
	case OtherUsesAverage:
		return OtherUsesAverage
	default:
		return OtherUsesFemale
	}
}

// Calculator runs the metrics pipeline with a fixed policy for gender "other".
type Calculator struct {
	OtherGender OtherGenderPolicy
}

// New creates a Calculator. An empty policy means OtherUsesFemale.
func New(policy OtherGenderPolicy) *Calculator {
	if policy == "" {
		policy = OtherUsesFemale
	}
	return &Calculator{OtherGender: policy}
}

// ConvertWeight converts between kg and lb. Same-unit conversions return value as is.
func ConvertWeight(value float64, from, to domain.WeightUnit) float64 {
	if from == to {
		return value
	}
	if from == domain.WeightUnitLb && to == domain.WeightUnitKg {
		return value * KgPerLb
	}
	return value / KgPerLb
}

// ConvertHeight converts between cm and decimal feet.
func ConvertHeight(value float64, from, to domain.HeightUnit) float64 {
	if from == to {
		return value
	}
	if from == domain.HeightUnitFt && to == domain.HeightUnitCm {
		return value * CmPerFt
	}
	return value / CmPerFt
}

// FeetAndInches flattens a feet+inches height into decimal feet, e.g. 5'10" -> 5.8333.
func FeetAndInches(feet, inches float64) float64 {
	return feet + inches*CmPerInch/CmPerFt
}

// CalculateBMI returns weight / height² (height in metres) rounded to one decimal.
func CalculateBMI(weightKg, heightCm float64) float64 {
	heightM := heightCm / 100
	return roundTo(weightKg/(heightM*heightM), 1)
}

// BMICategory classifies a BMI. Each band includes its lower bound.
func BMICategory(bmi float64) domain.BMICategory {
	switch {
	case bmi < 18.5:
		return domain.BMIUnderweight
	case bmi < 25:
		return domain.BMINormal
	case bmi < 30:
		return domain.BMIOverweight
	case bmi < 35:
		return domain.BMIObesityClass1
	case bmi < 40:
		return domain.BMIObesityClass2
	default:
		return domain.BMIObesityClass3
	}
}

func maleBMR(weightKg, heightCm float64, age int) float64 {
	return 66.5 + 13.75*weightKg + 5.003*heightCm - 6.755*float64(age)
}

func femaleBMR(weightKg, heightCm float64, age int) float64 {
	return 655.1 + 9.563*weightKg + 1.85*heightCm - 4.676*float64(age)
}

// CalculateBMR returns the unrounded basal metabolic rate in kcal/day.
func (c *Calculator) CalculateBMR(gender domain.Gender, weightKg, heightCm float64, age int) float64 {
	switch gender {
	case domain.GenderMale:
		return maleBMR(weightKg, heightCm, age)
	case domain.GenderFemale:
		return femaleBMR(weightKg, heightCm, age)
	}

	switch c.OtherGender {
	case OtherUsesMale:
		return maleBMR(weightKg, heightCm, age)
	case OtherUsesAverage:
		return (maleBMR(weightKg, heightCm, age) + femaleBMR(weightKg, heightCm, age)) / 2
	default:
		return femaleBMR(weightKg, heightCm, age)
	}
}

var activityFactors = map[domain.ActivityLevel]float64{
	domain.ActivitySedentary:  1.2,
	domain.ActivityLight:      1.375,
	domain.ActivityModerate:   1.55,
	domain.ActivityActive:     1.725,
	domain.ActivityVeryActive: 1.9,
}

// ActivityFactor returns the TDEE multiplier; unknown levels count as sedentary.
func ActivityFactor(level domain.ActivityLevel) float64 {
	if f, ok := activityFactors[level]; ok {
		return f
	}
	return activityFactors[domain.ActivitySedentary]
}

// CalculateTDEE scales a BMR by the activity factor.
func CalculateTDEE(bmr float64, level domain.ActivityLevel) float64 {
	return bmr * ActivityFactor(level)
}

// CalculateTargetCalories applies the goal offset to a TDEE.
func CalculateTargetCalories(tdee float64, goal domain.Goal) float64 {
	switch goal {
	case domain.GoalFatLoss:
		return tdee - FatLossDeficit
	case domain.GoalMuscleBuilding, domain.GoalMuscleBuildingAndFatLoss, domain.GoalBodybuilding:
		return tdee + SurplusCalories
	default:
		return tdee
	}
}

// MacroSplit is a percentage split of calories; the three parts sum to 100.
type MacroSplit struct {
	Protein float64
	Carbs   float64
	Fat     float64
}

// MacroSplitFor returns the split used for a goal.
func MacroSplitFor(goal domain.Goal) MacroSplit {
	switch goal {
	case domain.GoalBodybuilding:
		return MacroSplit{Protein: 30, Carbs: 50, Fat: 20}
	case domain.GoalFatLoss:
		return MacroSplit{Protein: 45, Carbs: 20, Fat: 35}
	default:
		return MacroSplit{Protein: 30, Carbs: 40, Fat: 30}
	}
}

// CalculateMacros splits calories into grams using 4/4/9 kcal per gram.
func CalculateMacros(calories float64, goal domain.Goal) domain.Macros {
	split := MacroSplitFor(goal)
	return domain.Macros{
		Protein: int(math.Round(calories * split.Protein / 100 / kcalPerGramProtein)),
		Carbs:   int(math.Round(calories * split.Carbs / 100 / kcalPerGramCarbs)),
		Fat:     int(math.Round(calories * split.Fat / 100 / kcalPerGramFat)),
	}
}

// Calculate runs the full pipeline. Each stage consumes the previous stage's
// rounded value, so TDEE is derived from the integer BMR.
func (c *Calculator) Calculate(in domain.HealthProfileInput) domain.HealthMetrics {
	weightKg := ConvertWeight(in.Weight.Value, in.Weight.Unit, domain.WeightUnitKg)
	heightCm := ConvertHeight(in.Height.Value, in.Height.Unit, domain.HeightUnitCm)

	bmi := CalculateBMI(weightKg, heightCm)
	bmr := math.Round(c.CalculateBMR(in.Gender, weightKg, heightCm, in.Age))
	tdee := math.Round(CalculateTDEE(bmr, in.ActivityLevel))
	target := math.Round(CalculateTargetCalories(tdee, in.Goal))

	return domain.HealthMetrics{
		BMI:            bmi,
		BMICategory:    BMICategory(bmi),
		BMR:            bmr,
		TDEE:           tdee,
		TargetCalories: target,
		Macros:         CalculateMacros(target, in.Goal),
	}
}

func roundTo(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}
