package service

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/nutriplan/nutriplan-backend/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func assistedMealJSON(name string, calories float64) string {
	return fmt.Sprintf(`{"name": %q, "description": "test meal", "ingredients": [{"name": "oats", "amount": 60, "unit": "g"}], "instructions": ["cook"], "calories": %.0f, "protein": 20, "carbs": 50, "fat": 10, "fiber": 5, "prep_time_min": 5, "cook_time_min": 10, "servings": 1}`, name, calories)
}

func assistedDayJSON(day int) string {
	return fmt.Sprintf(`{"day": %d, "breakfast": %s, "lunch": %s, "dinner": %s, "snacks": [%s]}`,
		day,
		assistedMealJSON("Breakfast Bowl", 600),
		assistedMealJSON("Lunch Plate", 900),
		assistedMealJSON("Dinner Plate", 800),
		assistedMealJSON("Snack Mix", 300),
	)
}

func assistedPlanJSON(days int) string {
	parts := make([]string, 0, days)
	for d := 1; d <= days; d++ {
		parts = append(parts, assistedDayJSON(d))
	}
	return fmt.Sprintf(`{"days": [%s]}`, strings.Join(parts, ","))
}

func TestParsePlanResponse_PlainJSON(t *testing.T) {
	parsed, err := parsePlanResponse(assistedPlanJSON(7))

	assert.NoError(t, err)
	assert.Len(t, parsed.Days, 7)
	assert.Equal(t, "Breakfast Bowl", parsed.Days[0].Breakfast.Name)
}

func TestParsePlanResponse_StripsMarkdownFences(t *testing.T) {
	response := "Here is the plan:\n```json\n" + assistedPlanJSON(7) + "\n```\nEnjoy!"

	parsed, err := parsePlanResponse(response)

	assert.NoError(t, err)
	assert.Len(t, parsed.Days, 7)
}

func TestParsePlanResponse_NoJSONObject(t *testing.T) {
	_, err := parsePlanResponse("I cannot produce a plan right now.")

	assert.Error(t, err)
}

func TestParsePlanResponse_MalformedJSON(t *testing.T) {
	_, err := parsePlanResponse(`{"days": [}`)

	assert.Error(t, err)
}

func TestGenerateAssisted_UsesParsedPlan(t *testing.T) {
	// Arrange
	mockAssist := new(MockPlanAssistClient)
	mockAssist.On("GeneratePlanText", mock.Anything, mock.Anything).Return(assistedPlanJSON(7), nil)
	generator := fixedClockGenerator(mockAssist)
	profile := maintenanceProfile()
	targets := ComputeTargets(profile)

	// Act
	plan, err := generator.Generate(context.Background(), profile, targets)

	// Assert
	assert.NoError(t, err)
	assert.Len(t, plan.Days, 7)
	assert.Equal(t, "Breakfast Bowl", plan.Days[0].Breakfast.Name)
	assert.Equal(t, 2600, plan.Days[0].TotalCalories)
	mockAssist.AssertExpectations(t)
}

func TestAssistedToPlan_RejectsWrongDayCount(t *testing.T) {
	// Arrange: collaborator returns 3 days for a 7-day request, so the
	// generator falls back to templates instead of truncating the plan.
	mockAssist := new(MockPlanAssistClient)
	mockAssist.On("GeneratePlanText", mock.Anything, mock.Anything).Return(assistedPlanJSON(3), nil)
	generator := fixedClockGenerator(mockAssist)
	profile := maintenanceProfile()
	targets := ComputeTargets(profile)

	// Act
	plan, err := generator.Generate(context.Background(), profile, targets)

	// Assert
	assert.NoError(t, err)
	assert.Len(t, plan.Days, 7)
	assert.NotEqual(t, "Breakfast Bowl", plan.Days[0].Breakfast.Name)
}

func TestConvertAssistedMeal_RejectsNegativeNutrition(t *testing.T) {
	_, err := convertAssistedMeal(assistedMeal{Name: "Bad Meal", Calories: -100})

	assert.Error(t, err)
}

func TestConvertAssistedMeal_RejectsMissingName(t *testing.T) {
	_, err := convertAssistedMeal(assistedMeal{Calories: 400})

	assert.Error(t, err)
}

func TestConvertAssistedMeal_ServingsFloorAtOne(t *testing.T) {
	meal, err := convertAssistedMeal(assistedMeal{Name: "Snack", Calories: 200, Servings: 0})

	assert.NoError(t, err)
	assert.Equal(t, 1, meal.Servings)
}

func TestBuildPlanPrompt_IncludesTargetsAndConstraints(t *testing.T) {
	profile := maintenanceProfile()
	profile.Allergies = []string{"peanuts", "shellfish"}
	profile.PreferredCuisines = []string{"italian"}
	targets := ComputeTargets(profile)

	prompt := buildPlanPrompt(profile, targets)

	assert.Contains(t, prompt, "7-day meal plan")
	assert.Contains(t, prompt, "2701 kcal")
	assert.Contains(t, prompt, "peanuts, shellfish")
	assert.Contains(t, prompt, "italian")
	assert.Contains(t, prompt, string(model.DietOmnivore))
}
