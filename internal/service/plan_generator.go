package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nutriplan/nutriplan-backend/pkg/model"
	"go.uber.org/zap"
)

// Plan duration bounds in days.
const (
	MinPlanDurationDays = 7
	MaxPlanDurationDays = 365
)

// slotCalorieRatios allocates daily calories across the four slots.
// Must sum to 1.0.
var slotCalorieRatios = map[model.MealSlot]float64{
	model.SlotBreakfast: 0.25,
	model.SlotLunch:     0.35,
	model.SlotDinner:    0.30,
	model.SlotSnacks:    0.10,
}

// Intra-meal macro split applied to each slot's calorie allocation. This is
// an approximation policy, independent of the day's overall target ratios:
// only calories are exactly allocated, per-meal macros need not sum to the
// daily macro targets.
const (
	mealProteinRatio = 0.15
	mealCarbsRatio   = 0.50
	mealFatRatio     = 0.35
)

// PlanAssistClient is the optional text-generation collaborator. Any failure
// or unparseable output routes generation back to the deterministic
// template algorithm.
type PlanAssistClient interface {
	GeneratePlanText(ctx context.Context, prompt string) (string, error)
}

// PlanGenerator builds DietPlans from a profile and its nutrition targets.
type PlanGenerator struct {
	assist PlanAssistClient // nil disables the AI path
	now    func() time.Time
	logger *zap.Logger
}

// NewPlanGenerator creates a new PlanGenerator. assist may be nil.
func NewPlanGenerator(assist PlanAssistClient, logger *zap.Logger) *PlanGenerator {
	return &PlanGenerator{
		assist: assist,
		now:    time.Now,
		logger: logger,
	}
}

// Generate produces a DietPlan for the profile. Validation failures return
// ErrInvalidInput and no partial plan. The AI-assist path is best-effort;
// the deterministic template algorithm is the guaranteed behavior.
func (g *PlanGenerator) Generate(ctx context.Context, profile *model.UserProfile, targets model.NutritionTargets) (*model.DietPlan, error) {
	if profile.PlanDurationDays < MinPlanDurationDays || profile.PlanDurationDays > MaxPlanDurationDays {
		return nil, fmt.Errorf("%w: plan duration %d days outside [%d,%d]",
			ErrInvalidInput, profile.PlanDurationDays, MinPlanDurationDays, MaxPlanDurationDays)
	}
	if targets.DailyCalories < 0 || targets.Protein < 0 || targets.Carbs < 0 || targets.Fat < 0 {
		return nil, fmt.Errorf("%w: nutrition targets contain negative values", ErrInvalidInput)
	}

	if g.assist != nil {
		if plan, err := g.generateAssisted(ctx, profile, targets); err == nil {
			return plan, nil
		} else {
			g.logger.Warn("assisted plan generation failed, falling back to templates",
				zap.Error(err),
				zap.String("user_id", profile.ID),
			)
		}
	}

	return g.generateFromTemplates(profile, targets), nil
}

// generateFromTemplates is the deterministic fallback generator.
func (g *PlanGenerator) generateFromTemplates(profile *model.UserProfile, targets model.NutritionTargets) *model.DietPlan {
	start := g.now()
	days := make([]model.DayPlan, 0, profile.PlanDurationDays)

	daily := targets.DailyCalories
	breakfastCal := slotCalories(daily, model.SlotBreakfast)
	lunchCal := slotCalories(daily, model.SlotLunch)
	dinnerCal := slotCalories(daily, model.SlotDinner)
	// Snacks take the remainder so the day total matches the daily target
	// exactly instead of drifting by per-slot rounding.
	snackCal := daily - breakfastCal - lunchCal - dinnerCal

	for d := 1; d <= profile.PlanDurationDays; d++ {
		day := model.DayPlan{
			Day:       d,
			Date:      start.AddDate(0, 0, d-1),
			Breakfast: g.buildMeal(profile.DietType, model.SlotBreakfast, d, breakfastCal),
			Lunch:     g.buildMeal(profile.DietType, model.SlotLunch, d, lunchCal),
			Dinner:    g.buildMeal(profile.DietType, model.SlotDinner, d, dinnerCal),
			Snacks:    []model.Meal{g.buildMeal(profile.DietType, model.SlotSnacks, d, snackCal)},
		}
		RecalculateDayTotals(&day)
		days = append(days, day)
	}

	plan := &model.DietPlan{
		ID:            uuid.New().String(),
		UserID:        profile.ID,
		Name:          PlanName(profile.DietType, profile.PrimaryGoal),
		Description:   planDescription(profile, targets),
		DurationDays:  profile.PlanDurationDays,
		DailyCalories: targets.DailyCalories,
		Targets:       targets,
		Days:          days,
		Progress:      model.PlanProgress{TotalDays: profile.PlanDurationDays},
		CreatedAt:     start,
		UpdatedAt:     start,
	}
	return plan
}

// slotCalories returns the rounded calorie allocation for a slot.
func slotCalories(dailyCalories int, slot model.MealSlot) int {
	return int(math.Round(float64(dailyCalories) * slotCalorieRatios[slot]))
}

// buildMeal instantiates the round-robin template for a slot and fills its
// nutrition from the slot's calorie allocation.
func (g *PlanGenerator) buildMeal(diet model.DietType, slot model.MealSlot, day, calories int) model.Meal {
	tpl := templateForDay(diet, slot, day)

	return model.Meal{
		Name:         tpl.Name,
		Description:  tpl.Description,
		Ingredients:  tpl.Ingredients,
		Instructions: tpl.Instructions,
		Nutrition:    mealNutrition(calories),
		PrepTimeMin:  tpl.PrepTimeMin,
		CookTimeMin:  tpl.CookTimeMin,
		Servings:     tpl.Servings,
	}
}

// mealNutrition derives a meal's macros from its calorie allocation using
// the fixed intra-meal split.
func mealNutrition(calories int) model.NutritionData {
	cal := float64(calories)
	return model.NutritionData{
		Calories: cal,
		Protein:  float64(GramsFromCalories(cal, mealProteinRatio, CaloriesPerGramProtein)),
		Carbs:    float64(GramsFromCalories(cal, mealCarbsRatio, CaloriesPerGramCarbs)),
		Fat:      float64(GramsFromCalories(cal, mealFatRatio, CaloriesPerGramFat)),
		Fiber:    math.Round(cal / 1000 * 14),
	}
}

// PlanName builds the display name: "<DietLabel> <GoalLabel> Plan". The
// diet label is empty for omnivore profiles.
func PlanName(diet model.DietType, goal model.Goal) string {
	var parts []string
	if label := dietLabel(diet); label != "" {
		parts = append(parts, label)
	}
	parts = append(parts, goalLabel(goal), "Plan")
	return strings.Join(parts, " ")
}

func dietLabel(diet model.DietType) string {
	switch diet {
	case model.DietOmnivore:
		return ""
	case model.DietVegetarian:
		return "Vegetarian"
	case model.DietVegan:
		return "Vegan"
	case model.DietPescatarian:
		return "Pescatarian"
	case model.DietKeto:
		return "Keto"
	case model.DietPaleo:
		return "Paleo"
	}
	return ""
}

func goalLabel(goal model.Goal) string {
	switch goal {
	case model.GoalWeightLoss:
		return "Weight Loss"
	case model.GoalMuscleGain:
		return "Muscle Gain"
	case model.GoalMaintenance:
		return "Maintenance"
	case model.GoalGeneralHealth:
		return "General Health"
	}
	return "Nutrition"
}

func planDescription(profile *model.UserProfile, targets model.NutritionTargets) string {
	return fmt.Sprintf("A %d-day %s plan targeting %d kcal per day for your %s goal.",
		profile.PlanDurationDays,
		string(profile.DietType),
		targets.DailyCalories,
		strings.ReplaceAll(string(profile.PrimaryGoal), "_", " "),
	)
}

// RecalculateDayTotals recomputes the derived TotalCalories and Completed
// fields of a day plan from its meals. Idempotent: calling it twice in a
// row yields the same result.
func RecalculateDayTotals(day *model.DayPlan) {
	total := DayTotal(day)
	day.TotalCalories = int(math.Round(total.Calories))

	completed := day.Breakfast.Completed && day.Lunch.Completed && day.Dinner.Completed
	for _, snack := range day.Snacks {
		completed = completed && snack.Completed
	}
	day.Completed = completed
}
