package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/nutriplan/nutriplan-backend/pkg/model"
	"go.uber.org/zap"
)

// assistedDay and assistedMeal mirror the JSON shape requested from the
// text-generation collaborator.
type assistedMeal struct {
	Name         string             `json:"name"`
	Description  string             `json:"description"`
	Ingredients  []model.Ingredient `json:"ingredients"`
	Instructions []string           `json:"instructions"`
	Calories     float64            `json:"calories"`
	Protein      float64            `json:"protein"`
	Carbs        float64            `json:"carbs"`
	Fat          float64            `json:"fat"`
	Fiber        float64            `json:"fiber"`
	PrepTimeMin  int                `json:"prep_time_min"`
	CookTimeMin  int                `json:"cook_time_min"`
	Servings     int                `json:"servings"`
}

type assistedDay struct {
	Day       int            `json:"day"`
	Breakfast assistedMeal   `json:"breakfast"`
	Lunch     assistedMeal   `json:"lunch"`
	Dinner    assistedMeal   `json:"dinner"`
	Snacks    []assistedMeal `json:"snacks"`
}

type assistedPlan struct {
	Days []assistedDay `json:"days"`
}

// generateAssisted calls the text-generation collaborator and converts its
// output into a DietPlan. Any error here means the caller falls back to the
// deterministic generator; it is never surfaced to the user.
func (g *PlanGenerator) generateAssisted(ctx context.Context, profile *model.UserProfile, targets model.NutritionTargets) (*model.DietPlan, error) {
	prompt := buildPlanPrompt(profile, targets)

	response, err := g.assist.GeneratePlanText(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("plan assist request failed: %w", err)
	}

	parsed, err := parsePlanResponse(response)
	if err != nil {
		return nil, fmt.Errorf("failed to parse plan assist response: %w", err)
	}

	plan, err := g.assistedToPlan(parsed, profile, targets)
	if err != nil {
		return nil, err
	}

	g.logger.Info("assisted plan generated",
		zap.String("user_id", profile.ID),
		zap.Int("days", len(plan.Days)),
	)
	return plan, nil
}

// buildPlanPrompt serializes targets and preferences into the structured
// prompt sent to the collaborator.
func buildPlanPrompt(profile *model.UserProfile, targets model.NutritionTargets) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are a nutrition planning assistant. Create a %d-day meal plan.\n\n", profile.PlanDurationDays)
	fmt.Fprintf(&b, "Daily targets: %d kcal, %dg protein, %dg carbs, %dg fat, %dg fiber.\n",
		targets.DailyCalories, targets.Protein, targets.Carbs, targets.Fat, targets.Fiber)
	fmt.Fprintf(&b, "Diet type: %s. Goal: %s.\n", profile.DietType, profile.PrimaryGoal)
	if len(profile.Allergies) > 0 {
		fmt.Fprintf(&b, "Strictly avoid: %s.\n", strings.Join(profile.Allergies, ", "))
	}
	if len(profile.PreferredCuisines) > 0 {
		fmt.Fprintf(&b, "Preferred cuisines, in order: %s.\n", strings.Join(profile.PreferredCuisines, ", "))
	}
	b.WriteString(`
Return valid JSON only, no prose, in this shape:
{
  "days": [
    {
      "day": 1,
      "breakfast": {"name": "", "description": "", "ingredients": [{"name": "", "amount": 0, "unit": ""}], "instructions": [""], "calories": 0, "protein": 0, "carbs": 0, "fat": 0, "fiber": 0, "prep_time_min": 0, "cook_time_min": 0, "servings": 1},
      "lunch": {...},
      "dinner": {...},
      "snacks": [{...}]
    }
  ]
}`)
	return b.String()
}

// parsePlanResponse extracts the JSON document from the response text. The
// model occasionally wraps output in markdown fences or leading prose.
func parsePlanResponse(response string) (*assistedPlan, error) {
	start := strings.Index(response, "{")
	end := strings.LastIndex(response, "}")
	if start == -1 || end == -1 || end <= start {
		return nil, fmt.Errorf("no JSON object found in response")
	}

	var plan assistedPlan
	if err := json.Unmarshal([]byte(response[start:end+1]), &plan); err != nil {
		return nil, fmt.Errorf("invalid plan JSON: %w", err)
	}
	return &plan, nil
}

// assistedToPlan validates and converts the parsed response. Wrong day
// counts, missing meals, and negative nutrition values are all rejected so
// the caller falls back rather than persisting a malformed plan.
func (g *PlanGenerator) assistedToPlan(parsed *assistedPlan, profile *model.UserProfile, targets model.NutritionTargets) (*model.DietPlan, error) {
	if len(parsed.Days) != profile.PlanDurationDays {
		return nil, fmt.Errorf("expected %d days, got %d", profile.PlanDurationDays, len(parsed.Days))
	}

	start := g.now()
	days := make([]model.DayPlan, 0, len(parsed.Days))
	for i, ad := range parsed.Days {
		breakfast, err := convertAssistedMeal(ad.Breakfast)
		if err != nil {
			return nil, fmt.Errorf("day %d breakfast: %w", i+1, err)
		}
		lunch, err := convertAssistedMeal(ad.Lunch)
		if err != nil {
			return nil, fmt.Errorf("day %d lunch: %w", i+1, err)
		}
		dinner, err := convertAssistedMeal(ad.Dinner)
		if err != nil {
			return nil, fmt.Errorf("day %d dinner: %w", i+1, err)
		}
		snacks := make([]model.Meal, 0, len(ad.Snacks))
		for _, s := range ad.Snacks {
			snack, err := convertAssistedMeal(s)
			if err != nil {
				return nil, fmt.Errorf("day %d snack: %w", i+1, err)
			}
			snacks = append(snacks, snack)
		}

		day := model.DayPlan{
			Day:       i + 1,
			Date:      start.AddDate(0, 0, i),
			Breakfast: breakfast,
			Lunch:     lunch,
			Dinner:    dinner,
			Snacks:    snacks,
		}
		RecalculateDayTotals(&day)
		days = append(days, day)
	}

	return &model.DietPlan{
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
	}, nil
}

func convertAssistedMeal(am assistedMeal) (model.Meal, error) {
	if am.Name == "" {
		return model.Meal{}, fmt.Errorf("meal has no name")
	}
	if am.Calories < 0 || am.Protein < 0 || am.Carbs < 0 || am.Fat < 0 || am.Fiber < 0 {
		return model.Meal{}, fmt.Errorf("meal %q has negative nutrition values", am.Name)
	}
	servings := am.Servings
	if servings < 1 {
		servings = 1
	}
	return model.Meal{
		Name:         am.Name,
		Description:  am.Description,
		Ingredients:  am.Ingredients,
		Instructions: am.Instructions,
		Nutrition: model.NutritionData{
			Calories: am.Calories,
			Protein:  am.Protein,
			Carbs:    am.Carbs,
			Fat:      am.Fat,
			Fiber:    am.Fiber,
		},
		PrepTimeMin: am.PrepTimeMin,
		CookTimeMin: am.CookTimeMin,
		Servings:    servings,
	}, nil
}
