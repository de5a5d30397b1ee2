package service

import (
	"math"

	"github.com/nutriplan/nutriplan-backend/pkg/model"
)

// Status thresholds as percentage-of-target. Deficit takes priority over
// excess when both apply.
const (
	deficitThresholdPct = 80
	excessThresholdPct  = 120
)

// SumNutrition adds two nutrition records field-wise. Commutative and
// associative; zero values represent absent data.
func SumNutrition(a, b model.NutritionData) model.NutritionData {
	return model.NutritionData{
		Calories:    a.Calories + b.Calories,
		Protein:     a.Protein + b.Protein,
		Carbs:       a.Carbs + b.Carbs,
		Fat:         a.Fat + b.Fat,
		Fiber:       a.Fiber + b.Fiber,
		Sugar:       a.Sugar + b.Sugar,
		Sodium:      a.Sodium + b.Sodium,
		Cholesterol: a.Cholesterol + b.Cholesterol,
		Vitamins: model.VitaminProfile{
			VitaminA:   a.Vitamins.VitaminA + b.Vitamins.VitaminA,
			VitaminC:   a.Vitamins.VitaminC + b.Vitamins.VitaminC,
			VitaminD:   a.Vitamins.VitaminD + b.Vitamins.VitaminD,
			VitaminB12: a.Vitamins.VitaminB12 + b.Vitamins.VitaminB12,
		},
		Minerals: model.MineralProfile{
			Calcium:   a.Minerals.Calcium + b.Minerals.Calcium,
			Iron:      a.Minerals.Iron + b.Minerals.Iron,
			Potassium: a.Minerals.Potassium + b.Minerals.Potassium,
			Zinc:      a.Minerals.Zinc + b.Minerals.Zinc,
		},
	}
}

// DayTotal sums nutrition across all meals of the day regardless of
// completion state.
func DayTotal(day *model.DayPlan) model.NutritionData {
	total := SumNutrition(day.Breakfast.Nutrition, day.Lunch.Nutrition)
	total = SumNutrition(total, day.Dinner.Nutrition)
	for _, snack := range day.Snacks {
		total = SumNutrition(total, snack.Nutrition)
	}
	return total
}

// CompletedTotal sums nutrition across completed meals only.
func CompletedTotal(day *model.DayPlan) model.NutritionData {
	var total model.NutritionData
	for _, slot := range model.MealSlots {
		for _, meal := range day.MealsInSlot(slot) {
			if meal.Completed {
				total = SumNutrition(total, meal.Nutrition)
			}
		}
	}
	return total
}

// percentOfTarget returns round(current/target*100). A target of zero is a
// documented edge case, not a crash: it yields 0%.
func percentOfTarget(current, target float64) int {
	if target == 0 {
		return 0
	}
	return int(math.Round(current / target * 100))
}

// Progress computes per-nutrient percentage-of-target.
func Progress(current, target model.NutritionData) model.NutritionProgress {
	return model.NutritionProgress{
		Calories: percentOfTarget(current.Calories, target.Calories),
		Protein:  percentOfTarget(current.Protein, target.Protein),
		Carbs:    percentOfTarget(current.Carbs, target.Carbs),
		Fat:      percentOfTarget(current.Fat, target.Fat),
		Fiber:    percentOfTarget(current.Fiber, target.Fiber),
	}
}

// Status classifies progress. Deficit wins when one nutrient is low and
// another is high.
func Status(p model.NutritionProgress) model.NutritionStatus {
	core := []int{p.Calories, p.Protein, p.Carbs, p.Fat}
	for _, pct := range core {
		if pct < deficitThresholdPct {
			return model.StatusDeficit
		}
	}
	for _, pct := range core {
		if pct > excessThresholdPct {
			return model.StatusExcess
		}
	}
	return model.StatusOptimal
}

// nutrientSubScore scores a single nutrient's percentage: 100 within
// [90,110], 80 within [80,120], otherwise distance from 100 floored at 0.
func nutrientSubScore(pct int) float64 {
	switch {
	case pct >= 90 && pct <= 110:
		return 100
	case pct >= 80 && pct <= 120:
		return 80
	default:
		return math.Max(0, 100-math.Abs(float64(pct)-100))
	}
}

// fiberSubScore uses a one-sided curve: under-consumption is the only
// failure mode of interest for fiber.
func fiberSubScore(pct int) float64 {
	return math.Min(100, float64(pct)*1.25)
}

// Score computes the weighted composite 0-100 nutrition score.
func Score(p model.NutritionProgress) int {
	score := 0.40*nutrientSubScore(p.Calories) +
		0.20*nutrientSubScore(p.Protein) +
		0.20*nutrientSubScore(p.Carbs) +
		0.10*nutrientSubScore(p.Fat) +
		0.10*fiberSubScore(p.Fiber)

	rounded := int(math.Round(score))
	if rounded < 0 {
		return 0
	}
	if rounded > 100 {
		return 100
	}
	return rounded
}

// advisory text per nutrient and direction. Deterministic template
// selection, not free text generation.
var lowAdvisories = map[string]string{
	"calories": "You're eating below your calorie target. Consider adding a nutritious snack.",
	"protein":  "Protein intake is low. Add a protein source to your next meal.",
	"carbs":    "Carbohydrate intake is low. Whole grains or fruit can close the gap.",
	"fat":      "Fat intake is low. Nuts, seeds, or olive oil are easy additions.",
	"fiber":    "Fiber intake is low. Vegetables, legumes, and whole grains help.",
}

var highAdvisories = map[string]string{
	"calories": "You're above your calorie target. Smaller portions can help.",
	"protein":  "Protein intake is above target. Rebalance toward vegetables and grains.",
	"carbs":    "Carbohydrate intake is high. Swap refined carbs for vegetables.",
	"fat":      "Fat intake is high. Favor lean preparations for the rest of the day.",
}

var dietAdvisories = map[model.DietType]string{
	model.DietVegan:      "On a vegan diet, keep an eye on B12 and iron sources.",
	model.DietVegetarian: "Combine legumes and grains to cover complete proteins.",
	model.DietKeto:       "Stay hydrated and maintain electrolytes on a keto diet.",
	model.DietPaleo:      "Include starchy vegetables to sustain training energy.",
}

var goalAdvisories = map[model.Goal]string{
	model.GoalWeightLoss: "Consistency beats perfection: a steady small deficit wins.",
	model.GoalMuscleGain: "Spread protein across meals to support muscle growth.",
}

// Recommendations generates rule-based advisory strings from progress,
// supplemented by diet-type and goal guidance.
func Recommendations(p model.NutritionProgress, profile *model.UserProfile) []string {
	var recs []string

	checks := []struct {
		name string
		pct  int
	}{
		{"calories", p.Calories},
		{"protein", p.Protein},
		{"carbs", p.Carbs},
		{"fat", p.Fat},
		{"fiber", p.Fiber},
	}
	for _, c := range checks {
		if c.pct < deficitThresholdPct {
			recs = append(recs, lowAdvisories[c.name])
		} else if c.pct > excessThresholdPct {
			if advice, ok := highAdvisories[c.name]; ok {
				recs = append(recs, advice)
			}
		}
	}

	if advice, ok := dietAdvisories[profile.DietType]; ok {
		recs = append(recs, advice)
	}
	if advice, ok := goalAdvisories[profile.PrimaryGoal]; ok {
		recs = append(recs, advice)
	}

	return recs
}

// Achievements returns milestone strings for nutrients inside the optimal
// band. Same rule-based selection as Recommendations, positive direction.
func Achievements(p model.NutritionProgress) []string {
	var out []string
	if p.Calories >= 90 && p.Calories <= 110 {
		out = append(out, "Calorie target hit within 10%.")
	}
	if p.Protein >= 90 && p.Protein <= 110 {
		out = append(out, "Protein target hit within 10%.")
	}
	if p.Fiber >= 100 {
		out = append(out, "Fiber goal fully met.")
	}
	return out
}
