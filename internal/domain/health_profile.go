package domain

// Gender is the gender answer used to pick a BMR formula.
// @Description Gender answer: male, female or other.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// WeightUnit is the unit a weight value was entered in.
type WeightUnit string

const (
	WeightUnitKg WeightUnit = "kg"
	WeightUnitLb WeightUnit = "lb"
)

// HeightUnit is the unit a height value was entered in.
// Feet are decimal feet: 5'10" must be sent as 5.833.
type HeightUnit string

const (
	HeightUnitCm HeightUnit = "cm"
	HeightUnitFt HeightUnit = "ft"
)

// ActivityLevel describes how active the client is on a typical week.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "veryActive"
)

// Goal is the client's training goal.
type Goal string

const (
	GoalFatLoss                  Goal = "fat-loss"
	GoalMuscleBuilding           Goal = "muscle-building"
	GoalMuscleBuildingAndFatLoss Goal = "muscle-building-with-fat-loss"
	GoalBodybuilding             Goal = "bodybuilding"
	GoalMaintenance              Goal = "maintenance"
	GoalGeneralFitness           Goal = "general-fitness"
	GoalOther                    Goal = "other"
)

// BMICategory is the label derived from a BMI value.
type BMICategory string

const (
	BMIUnderweight   BMICategory = "Underweight"
	BMINormal        BMICategory = "Normal weight"
	BMIOverweight    BMICategory = "Overweight"
	BMIObesityClass1 BMICategory = "Obesity (Class 1)"
	BMIObesityClass2 BMICategory = "Obesity (Class 2)"
	BMIObesityClass3 BMICategory = "Obesity (Class 3 - Severe/Morbid)"
)

// Weight is a body weight together with its unit.
// @Description Body weight value and unit.
type Weight struct {
	Value float64    `json:"value" validate:"required,gt=0" example:"70"`
	Unit  WeightUnit `json:"unit" validate:"required,oneof=kg lb" example:"kg" enums:"kg,lb"`
}

// Height is a body height together with its unit.
// @Description Body height value and unit (ft is decimal feet).
type Height struct {
	Value float64    `json:"value" validate:"required,gt=0" example:"175"`
	Unit  HeightUnit `json:"unit" validate:"required,oneof=cm ft" example:"cm" enums:"cm,ft"`
}

// HealthProfileInput holds the answers of the health profile intake.
// The JSON shape is the one expected by the profile backend.
// @Description Health profile answers collected during intake.
type HealthProfileInput struct {
	Gender        Gender        `json:"gender" validate:"required,oneof=male female other" example:"male" enums:"male,female,other"`
	Age           int           `json:"age" validate:"required,gt=0,lte=120" example:"30"`
	Weight        Weight        `json:"weight"`
	Height        Height        `json:"height"`
	ActivityLevel ActivityLevel `json:"activityLevel" validate:"required,oneof=sedentary light moderate active veryActive" example:"moderate"`
	Goal          Goal          `json:"goal" validate:"required,oneof=fat-loss muscle-building muscle-building-with-fat-loss bodybuilding maintenance general-fitness other" example:"maintenance"`
	// Free text describing the goal when goal is "other"
	GoalDetails        string   `json:"goalDetails,omitempty" validate:"max=500"`
	DietaryPreferences []string `json:"dietaryPreferences,omitempty" validate:"max=20,dive,min=1,max=100"`
	Allergies          []string `json:"allergies,omitempty" validate:"max=20,dive,min=1,max=100"`
	MedicalConditions  []string `json:"medicalConditions,omitempty" validate:"max=20,dive,min=1,max=200"`
}

// Macros is a daily macronutrient breakdown in grams.
// @Description Daily macronutrient targets in grams.
type Macros struct {
	Protein int `json:"protein" example:"198"`
	Carbs   int `json:"carbs" example:"264"`
	Fat     int `json:"fat" example:"88"`
}

// HealthMetrics is derived from a HealthProfileInput and never stored on its own.
// @Description Metrics calculated from a health profile.
type HealthMetrics struct {
	BMI            float64     `json:"bmi" example:"22.9"`
	BMICategory    BMICategory `json:"bmiCategory" example:"Normal weight"`
	BMR            float64     `json:"bmr" example:"1702"`
	TDEE           float64     `json:"tdee" example:"2638"`
	TargetCalories float64     `json:"targetCalories" example:"2638"`
	Macros         Macros      `json:"macros"`
}

// HealthProfileSubmission is the body relayed to the profile backend.
type HealthProfileSubmission struct {
	HealthProfileFormData HealthProfileInput `json:"healthProfileFormData"`
	HealthMetrics         HealthMetrics      `json:"healthMetrics"`
}
