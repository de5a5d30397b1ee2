package service

import (
	"math"

	"github.com/nutriplan/nutriplan-backend/pkg/model"
)

// Calorie content per gram of each macronutrient.
const (
	CaloriesPerGramProtein = 4.0
	CaloriesPerGramCarbs   = 4.0
	CaloriesPerGramFat     = 9.0
)

// Goal adjustments applied to TDEE. The dashboard and the plan generator in
// the original product disagreed on relative vs absolute adjustments; this
// codebase uses the absolute policy everywhere and the tests pin it.
const (
	weightLossDeficitKcal = 500
	muscleGainSurplusKcal = 300
)

// activityMultipliers maps activity levels to their TDEE multiplier.
// Single source of truth, also used by profile validation.
var activityMultipliers = map[model.ActivityLevel]float64{
	model.ActivitySedentary:  1.2,
	model.ActivityLight:      1.375,
	model.ActivityModerate:   1.55,
	model.ActivityActive:     1.725,
	model.ActivityVeryActive: 1.9,
}

// MacroSplit is a macro-ratio row; Protein+Carbs+Fat always sums to 1.0.
type MacroSplit struct {
	Protein float64
	Carbs   float64
	Fat     float64
}

// macroRatiosByDiet is policy, not physics: the ratio table the product
// ships with, reproduced exactly. Diet types not listed fall back to the
// default omnivore split.
var macroRatiosByDiet = map[model.DietType]MacroSplit{
	model.DietOmnivore:    {Protein: 0.30, Carbs: 0.45, Fat: 0.25},
	model.DietPescatarian: {Protein: 0.30, Carbs: 0.45, Fat: 0.25},
	model.DietKeto:        {Protein: 0.25, Carbs: 0.05, Fat: 0.70},
	model.DietPaleo:       {Protein: 0.30, Carbs: 0.35, Fat: 0.35},
	model.DietVegetarian:  {Protein: 0.20, Carbs: 0.55, Fat: 0.25},
	model.DietVegan:       {Protein: 0.20, Carbs: 0.55, Fat: 0.25},
}

// Daily micronutrient reference targets. Like the macro table these are
// shipped configuration, not computed values.
var (
	referenceVitamins = model.VitaminProfile{VitaminA: 900, VitaminC: 90, VitaminD: 20, VitaminB12: 2.4}
	referenceMinerals = model.MineralProfile{Calcium: 1000, Iron: 18, Potassium: 3400, Zinc: 11}
)

// ComputeBMR returns the Mifflin-St Jeor basal metabolic rate. Assumes
// pre-validated inputs; out-of-range values are a caller contract violation.
func ComputeBMR(weightKG, heightCM float64, age int, gender model.Gender) float64 {
	bmr := 10*weightKG + 6.25*heightCM - 5*float64(age)
	if gender == model.GenderMale {
		return bmr + 5
	}
	return bmr - 161
}

// ActivityMultiplier returns the TDEE multiplier for a level. Unknown levels
// default to moderate (1.55) so targets are always computable.
func ActivityMultiplier(level model.ActivityLevel) float64 {
	if m, ok := activityMultipliers[level]; ok {
		return m
	}
	return activityMultipliers[model.ActivityModerate]
}

// ComputeTDEE scales BMR by the activity multiplier.
func ComputeTDEE(bmr float64, level model.ActivityLevel) float64 {
	return bmr * ActivityMultiplier(level)
}

// AdjustForGoal applies the absolute calorie adjustment for the user's goal.
func AdjustForGoal(tdee float64, goal model.Goal) float64 {
	switch goal {
	case model.GoalWeightLoss:
		return tdee - weightLossDeficitKcal
	case model.GoalMuscleGain:
		return tdee + muscleGainSurplusKcal
	default:
		return tdee
	}
}

// MacroRatios returns the macro-ratio split for a diet type.
func MacroRatios(diet model.DietType) MacroSplit {
	if split, ok := macroRatiosByDiet[diet]; ok {
		return split
	}
	return macroRatiosByDiet[model.DietOmnivore]
}

// GramsFromCalories converts a calorie share into grams of a macronutrient.
func GramsFromCalories(calories, ratio, caloriesPerGram float64) int {
	return int(math.Round(calories * ratio / caloriesPerGram))
}

// ComputeTargets derives the full daily nutrition targets from a profile.
// Deterministic: the same profile always yields the same snapshot.
func ComputeTargets(profile *model.UserProfile) model.NutritionTargets {
	bmr := ComputeBMR(profile.WeightKG, profile.HeightCM, profile.Age, profile.Gender)
	tdee := ComputeTDEE(bmr, profile.ActivityLevel)
	calories := AdjustForGoal(tdee, profile.PrimaryGoal)

	split := MacroRatios(profile.DietType)
	daily := int(math.Round(calories))

	protein := GramsFromCalories(calories, split.Protein, CaloriesPerGramProtein)
	fat := GramsFromCalories(calories, split.Fat, CaloriesPerGramFat)
	// Carbs absorb the rounding remainder of protein and fat so that
	// protein*4 + carbs*4 + fat*9 stays within rounding of dailyCalories.
	carbs := int(math.Round((calories - float64(protein)*CaloriesPerGramProtein - float64(fat)*CaloriesPerGramFat) / CaloriesPerGramCarbs))

	return model.NutritionTargets{
		DailyCalories: daily,
		Protein:       protein,
		Carbs:         carbs,
		Fat:           fat,
		// 14 g fiber per 1000 kcal, sugar capped at 10% of calories.
		Fiber:       int(math.Round(calories / 1000 * 14)),
		Sugar:       GramsFromCalories(calories, 0.10, CaloriesPerGramCarbs),
		Sodium:      2300,
		Cholesterol: 300,
		Vitamins:    referenceVitamins,
		Minerals:    referenceMinerals,
	}
}
