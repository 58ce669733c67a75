// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package calc

import "fmt"

// BMICategory is the weight status band of a BMI value.
type BMICategory string

const (
	Underweight   BMICategory = "Underweight"
	HealthyWeight BMICategory = "Healthy Weight"
	Overweight    BMICategory = "Overweight"
	Obese         BMICategory = "Obese"
)

// BMIResult holds a body mass index and the healthy weight range for the
// given height.
type BMIResult struct {
	BMI        float64     `json:"bmi" yaml:"bmi"`
	Category   BMICategory `json:"category" yaml:"category"`
	MinHealthy float64     `json:"min_healthy_kg" yaml:"min_healthy_kg"`
	MaxHealthy float64     `json:"max_healthy_kg" yaml:"max_healthy_kg"`
	HeightCm   float64     `json:"height_cm" yaml:"height_cm"`
	WeightKg   float64     `json:"weight_kg" yaml:"weight_kg"`
}

// BMI computes the body mass index from height in centimeters and weight
// in kilograms. The value is rounded to one decimal and the category is
// taken from the rounded value.
func BMI(heightCm, weightKg float64) (BMIResult, error) {
	if !finite(heightCm, weightKg) {
		return BMIResult{}, ErrInvalidValue
	}
	if heightCm <= 0 || weightKg <= 0 {
		return BMIResult{}, fmt.Errorf("height and weight: %w", ErrNonPositive)
	}
	bmi := roundTo(weightKg*10000/(heightCm*heightCm), 1)
	m2 := heightCm * heightCm / 10000
	return BMIResult{
		BMI:        bmi,
		Category:   ClassifyBMI(bmi),
		MinHealthy: roundTo(18.5*m2, 1),
		MaxHealthy: roundTo(24.9*m2, 1),
		HeightCm:   heightCm,
		WeightKg:   weightKg,
	}, nil
}

// BMIImperial computes the body mass index from feet, inches and pounds.
func BMIImperial(feet, inches, pounds float64) (BMIResult, error) {
	if feet < 0 || inches < 0 {
		return BMIResult{}, fmt.Errorf("height: %w", ErrNegative)
	}
	return BMI((feet*12+inches)*2.54, pounds*0.45359237)
}

// ClassifyBMI returns the weight band for a BMI value.
func ClassifyBMI(bmi float64) BMICategory {
	switch {
	case bmi < 18.5:
		return Underweight
	case bmi < 25:
		return HealthyWeight
	case bmi < 30:
		return Overweight
	default:
		return Obese
	}
}

// Sex selects the sex-specific BMR constants.
type Sex string

const (
	Male   Sex = "male"
	Female Sex = "female"
)

// BMRFormula names a basal metabolic rate equation.
type BMRFormula string

const (
	MifflinStJeor  BMRFormula = "mifflin-st-jeor"
	HarrisBenedict BMRFormula = "harris-benedict"
	KatchMcArdle   BMRFormula = "katch-mcardle"
)

// BMRInput holds the body measurements for BMR and calorie estimates.
type BMRInput struct {
	Sex            Sex        `json:"sex" yaml:"sex"`
	WeightKg       float64    `json:"weight_kg" yaml:"weight_kg"`
	HeightCm       float64    `json:"height_cm" yaml:"height_cm"`
	AgeYears       float64    `json:"age_years" yaml:"age_years"`
	Formula        BMRFormula `json:"formula,omitempty" yaml:"formula,omitempty"`
	BodyFatPercent float64    `json:"body_fat_percent,omitempty" yaml:"body_fat_percent,omitempty"`
}

// BMR returns the basal metabolic rate in kcal/day. The Mifflin-St Jeor
// equation is used when no formula is set.
func BMR(in BMRInput) (float64, error) {
	if !finite(in.WeightKg, in.HeightCm, in.AgeYears, in.BodyFatPercent) {
		return 0, ErrInvalidValue
	}
	if in.WeightKg <= 0 || in.HeightCm <= 0 || in.AgeYears <= 0 {
		return 0, fmt.Errorf("weight, height and age: %w", ErrNonPositive)
	}
	if in.Sex != Male && in.Sex != Female {
		return 0, fmt.Errorf("sex %q: %w", in.Sex, ErrUnknown)
	}

	w, h, a := in.WeightKg, in.HeightCm, in.AgeYears
	switch in.Formula {
	case MifflinStJeor, "":
		bmr := 10*w + 6.25*h - 5*a
		if in.Sex == Male {
			return bmr + 5, nil
		}
		return bmr - 161, nil
	case HarrisBenedict:
		if in.Sex == Male {
			return 13.397*w + 4.799*h - 5.677*a + 88.362, nil
		}
		return 9.247*w + 3.098*h - 4.330*a + 447.593, nil
	case KatchMcArdle:
		if in.BodyFatPercent <= 0 || in.BodyFatPercent >= 100 {
			return 0, fmt.Errorf("body fat %v%%: %w", in.BodyFatPercent, ErrDomain)
		}
		lean := w * (1 - in.BodyFatPercent/100)
		return 370 + 21.6*lean, nil
	default:
		return 0, fmt.Errorf("formula %q: %w", in.Formula, ErrUnknown)
	}
}

// Activity is a daily activity level.
type Activity string

const (
	Sedentary  Activity = "sedentary"
	Light      Activity = "light"
	Moderate   Activity = "moderate"
	Active     Activity = "active"
	VeryActive Activity = "very-active"
)

var activityFactors = map[Activity]float64{
	Sedentary:  1.2,
	Light:      1.375,
	Moderate:   1.55,
	Active:     1.725,
	VeryActive: 1.9,
}

// CalorieGoal is a daily intake target relative to maintenance.
type CalorieGoal struct {
	Name     string  `json:"name" yaml:"name"`
	Delta    float64 `json:"delta" yaml:"delta"`
	Calories float64 `json:"calories" yaml:"calories"`
}

// CalorieResult holds maintenance calories and goal targets.
type CalorieResult struct {
	BMR   float64       `json:"bmr" yaml:"bmr"`
	TDEE  float64       `json:"tdee" yaml:"tdee"`
	Goals []CalorieGoal `json:"goals" yaml:"goals"`
}

var calorieGoals = []struct {
	name  string
	delta float64
}{
	{"maintain", 0},
	{"mild weight loss", -250},
	{"weight loss", -500},
	{"extreme weight loss", -1000},
	{"mild weight gain", 250},
	{"weight gain", 500},
}

// Calories estimates total daily energy expenditure for an activity level
// and the intake targets for common goals.
func Calories(in BMRInput, activity Activity) (CalorieResult, error) {
	factor, ok := activityFactors[activity]
	if !ok {
		return CalorieResult{}, fmt.Errorf("activity %q: %w", activity, ErrUnknown)
	}
	bmr, err := BMR(in)
	if err != nil {
		return CalorieResult{}, err
	}

	tdee := bmr * factor
	r := CalorieResult{BMR: bmr, TDEE: tdee, Goals: make([]CalorieGoal, len(calorieGoals))}
	for i, g := range calorieGoals {
		r.Goals[i] = CalorieGoal{Name: g.name, Delta: g.delta, Calories: tdee + g.delta}
	}
	return r, nil
}
