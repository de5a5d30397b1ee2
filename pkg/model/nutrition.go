package model

// VitaminProfile holds vitamin amounts with explicit zero defaults.
// A fixed shape keeps nutrition arithmetic total: every field participates
// in sums and comparisons, absent data is simply zero.
type VitaminProfile struct {
	VitaminA   float64 `json:"vitamin_a"`   // mcg RAE
	VitaminC   float64 `json:"vitamin_c"`   // mg
	VitaminD   float64 `json:"vitamin_d"`   // mcg
	VitaminB12 float64 `json:"vitamin_b12"` // mcg
}

// MineralProfile holds mineral amounts with explicit zero defaults.
type MineralProfile struct {
	Calcium   float64 `json:"calcium"`   // mg
	Iron      float64 `json:"iron"`      // mg
	Potassium float64 `json:"potassium"` // mg
	Zinc      float64 `json:"zinc"`      // mg
}

// NutritionData is the field-wise nutrition record shared by meals, day
// totals, and targets. All fields are non-negative by contract.
type NutritionData struct {
	Calories    float64        `json:"calories"`
	Protein     float64        `json:"protein"` // g
	Carbs       float64        `json:"carbs"`   // g
	Fat         float64        `json:"fat"`     // g
	Fiber       float64        `json:"fiber"`   // g
	Sugar       float64        `json:"sugar"`   // g
	Sodium      float64        `json:"sodium"`  // mg
	Cholesterol float64        `json:"cholesterol"`
	Vitamins    VitaminProfile `json:"vitamins"`
	Minerals    MineralProfile `json:"minerals"`
}

// NutritionTargets is a read-only snapshot derived from a UserProfile.
// Any profile change produces a new snapshot; it is never mutated in place.
type NutritionTargets struct {
	DailyCalories int            `json:"daily_calories"`
	Protein       int            `json:"protein"` // g
	Carbs         int            `json:"carbs"`   // g
	Fat           int            `json:"fat"`     // g
	Fiber         int            `json:"fiber"`   // g
	Sugar         int            `json:"sugar"`   // g, upper bound
	Sodium        int            `json:"sodium"`  // mg, upper bound
	Cholesterol   int            `json:"cholesterol"`
	Vitamins      VitaminProfile `json:"vitamins"`
	Minerals      MineralProfile `json:"minerals"`
}

// Data converts the integer targets into a NutritionData record so they can
// be compared field-wise against aggregated intake.
func (t NutritionTargets) Data() NutritionData {
	return NutritionData{
		Calories:    float64(t.DailyCalories),
		Protein:     float64(t.Protein),
		Carbs:       float64(t.Carbs),
		Fat:         float64(t.Fat),
		Fiber:       float64(t.Fiber),
		Sugar:       float64(t.Sugar),
		Sodium:      float64(t.Sodium),
		Cholesterol: float64(t.Cholesterol),
		Vitamins:    t.Vitamins,
		Minerals:    t.Minerals,
	}
}

// NutritionStatus classifies aggregated intake against targets.
type NutritionStatus string

const (
	StatusDeficit NutritionStatus = "deficit"
	StatusOptimal NutritionStatus = "optimal"
	StatusExcess  NutritionStatus = "excess"
)

// NutritionProgress holds rounded percentage-of-target values for the
// nutrients the scoring model cares about. A target of zero yields 0%.
type NutritionProgress struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
	Fiber    int `json:"fiber"`
}

// NutritionReport is a derived, point-in-time view of one day plan. It is
// always recomputable from the DayPlan and the user's targets and is never
// persisted as primary state.
type NutritionReport struct {
	Day             int               `json:"day"`
	Current         NutritionData     `json:"current"` // completed meals only
	Target          NutritionData     `json:"target"`
	Progress        NutritionProgress `json:"progress"`
	Status          NutritionStatus   `json:"status"`
	Score           int               `json:"score"` // 0-100
	Recommendations []string          `json:"recommendations"`
	Achievements    []string          `json:"achievements"`
}
