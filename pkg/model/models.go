package model

import "time"

// Gender is the biological sex used by the BMR formula.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// ActivityLevel maps to a fixed TDEE multiplier.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

// Goal is the user's primary nutrition goal.
type Goal string

const (
	GoalWeightLoss    Goal = "weight_loss"
	GoalMuscleGain    Goal = "muscle_gain"
	GoalMaintenance   Goal = "maintenance"
	GoalGeneralHealth Goal = "general_health"
)

// DietType selects the macro-ratio table and the meal template pool.
type DietType string

const (
	DietOmnivore    DietType = "omnivore"
	DietVegetarian  DietType = "vegetarian"
	DietVegan       DietType = "vegan"
	DietPescatarian DietType = "pescatarian"
	DietKeto        DietType = "keto"
	DietPaleo       DietType = "paleo"
)

// MealSlot identifies one of the four daily meal slots.
type MealSlot string

const (
	SlotBreakfast MealSlot = "breakfast"
	SlotLunch     MealSlot = "lunch"
	SlotDinner    MealSlot = "dinner"
	SlotSnacks    MealSlot = "snacks"
)

// MealSlots lists the slots in serving order. Slot calorie ratios and the
// completion AND both iterate this list.
var MealSlots = []MealSlot{SlotBreakfast, SlotLunch, SlotDinner, SlotSnacks}

// ConditionNone is the sentinel medical condition that suppresses all
// condition-specific logic when present.
const ConditionNone = "none"

// MealTimings holds the user's preferred times of day for the main meals.
type MealTimings struct {
	Breakfast string `json:"breakfast"` // HH:MM
	Lunch     string `json:"lunch"`
	Dinner    string `json:"dinner"`
}

// UserProfile is a user's physiological and preference data. Numeric fields
// must fall within their documented ranges; a profile is never persisted
// partially valid.
type UserProfile struct {
	ID                string        `json:"id"`
	Age               int           `json:"age"`       // 13-120
	Gender            Gender        `json:"gender"`
	WeightKG          float64       `json:"weight_kg"` // 30-300
	HeightCM          float64       `json:"height_cm"` // 100-250
	ActivityLevel     ActivityLevel `json:"activity_level"`
	PrimaryGoal       Goal          `json:"primary_goal"`
	DietType          DietType      `json:"diet_type"`
	Allergies         []string      `json:"allergies,omitempty"`
	PreferredCuisines []string      `json:"preferred_cuisines,omitempty"`
	MealTimings       MealTimings   `json:"meal_timings"`
	PlanDurationDays  int           `json:"plan_duration_days"` // 7-365
	MedicalConditions []string      `json:"medical_conditions,omitempty"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}

// Ingredient is one entry of a meal's ingredient list.
type Ingredient struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

// Meal is a single meal inside a day plan. It is owned exclusively by its
// containing DayPlan and mutated only through completion and edit operations.
type Meal struct {
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	Ingredients  []Ingredient  `json:"ingredients"`
	Instructions []string      `json:"instructions"`
	Nutrition    NutritionData `json:"nutrition"`
	PrepTimeMin  int           `json:"prep_time_min"`
	CookTimeMin  int           `json:"cook_time_min"`
	Servings     int           `json:"servings"`
	Completed    bool          `json:"completed"`
}

// DayPlan is one calendar day's worth of meals. TotalCalories is derived and
// recomputed after every meal mutation; Completed is true iff every slot is
// completed.
type DayPlan struct {
	Day           int       `json:"day"` // 1..duration
	Date          time.Time `json:"date"`
	Breakfast     Meal      `json:"breakfast"`
	Lunch         Meal      `json:"lunch"`
	Dinner        Meal      `json:"dinner"`
	Snacks        []Meal    `json:"snacks"`
	TotalCalories int       `json:"total_calories"`
	Completed     bool      `json:"completed"`
}

// PlanProgress tracks plan-level adherence derived from day completion.
type PlanProgress struct {
	CompletedDays int `json:"completed_days"`
	TotalDays     int `json:"total_days"`
	AdherenceRate int `json:"adherence_rate"` // 0-100
}

// DietPlan is a generated multi-day meal plan. At most one plan per user is
// active at a time; a plan may be deleted only while inactive.
type DietPlan struct {
	ID            string           `json:"id"`
	UserID        string           `json:"user_id"`
	Name          string           `json:"name"`
	Description   string           `json:"description"`
	DurationDays  int              `json:"duration_days"`
	DailyCalories int              `json:"daily_calories"`
	Targets       NutritionTargets `json:"targets"`
	Days          []DayPlan        `json:"days"`
	IsActive      bool             `json:"is_active"`
	Progress      PlanProgress     `json:"progress"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// MealsInSlot returns the meals occupying a slot. Breakfast, lunch and
// dinner hold exactly one meal; snacks hold zero or more.
func (d *DayPlan) MealsInSlot(slot MealSlot) []Meal {
	switch slot {
	case SlotBreakfast:
		return []Meal{d.Breakfast}
	case SlotLunch:
		return []Meal{d.Lunch}
	case SlotDinner:
		return []Meal{d.Dinner}
	case SlotSnacks:
		return d.Snacks
	}
	return nil
}
