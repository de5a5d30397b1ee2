package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/nutriplan/nutriplan-backend/internal/events"
	"github.com/nutriplan/nutriplan-backend/pkg/model"
	"go.uber.org/zap"
)

// Trend classifications over a sequence of daily reports.
const (
	TrendImproving = "improving"
	TrendDeclining = "declining"
	TrendStable    = "stable"
)

// deficiencyThreshold flags a nutrient when intake falls below this share
// of its target.
const deficiencyThreshold = 0.8

// PlanRepositoryInterface is the persistence collaborator for diet plans.
type PlanRepositoryInterface interface {
	CreatePlan(ctx context.Context, plan *model.DietPlan) error
	GetPlan(ctx context.Context, planID string) (*model.DietPlan, error)
	UpdatePlan(ctx context.Context, plan *model.DietPlan) error
	ListPlansByUser(ctx context.Context, userID string) ([]model.DietPlan, error)
	SetActivePlan(ctx context.Context, userID, planID string) error
	DeletePlan(ctx context.Context, planID string) error
}

// EventPublisher is the outbound notification boundary.
type EventPublisher interface {
	Publish(event events.Event)
}

// ProgressTracker maintains plan-level adherence state across days.
type ProgressTracker struct {
	repo   PlanRepositoryInterface
	bus    EventPublisher
	logger *zap.Logger
}

// NewProgressTracker creates a new ProgressTracker.
func NewProgressTracker(repo PlanRepositoryInterface, bus EventPublisher, logger *zap.Logger) *ProgressTracker {
	return &ProgressTracker{
		repo:   repo,
		bus:    bus,
		logger: logger,
	}
}

// CompleteMeal marks a meal complete and recomputes the owning day's totals
// and the plan's progress. Operations on days, slots, or meals that don't
// exist, or plans the user doesn't own, are rejected.
func (t *ProgressTracker) CompleteMeal(ctx context.Context, userID, planID string, day int, slot model.MealSlot, mealIndex int) (*model.DietPlan, error) {
	return t.setMealCompleted(ctx, userID, planID, day, slot, mealIndex, true)
}

// UncompleteMeal reopens a completed meal. Recomputation is fully symmetric
// with CompleteMeal: day and plan state follow the meal flags in both
// directions.
func (t *ProgressTracker) UncompleteMeal(ctx context.Context, userID, planID string, day int, slot model.MealSlot, mealIndex int) (*model.DietPlan, error) {
	return t.setMealCompleted(ctx, userID, planID, day, slot, mealIndex, false)
}

func (t *ProgressTracker) setMealCompleted(ctx context.Context, userID, planID string, day int, slot model.MealSlot, mealIndex int, completed bool) (*model.DietPlan, error) {
	plan, err := t.repo.GetPlan(ctx, planID)
	if err != nil {
		return nil, err
	}
	if plan.UserID != userID {
		return nil, fmt.Errorf("%w: plan %s is not owned by user %s", ErrForbidden, planID, userID)
	}
	if day < 1 || day > len(plan.Days) {
		return nil, fmt.Errorf("%w: day %d outside plan range", ErrNotFound, day)
	}

	dayPlan := &plan.Days[day-1]
	meal, err := mealAt(dayPlan, slot, mealIndex)
	if err != nil {
		return nil, err
	}

	wasCompleted := dayPlan.Completed
	meal.Completed = completed
	RecalculateDayTotals(dayPlan)
	RecalculatePlanProgress(plan)
	plan.UpdatedAt = time.Now()

	if err := t.repo.UpdatePlan(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to persist plan progress: %w", err)
	}

	t.logger.Info("meal completion updated",
		zap.String("plan_id", planID),
		zap.Int("day", day),
		zap.String("slot", string(slot)),
		zap.Bool("completed", completed),
		zap.Int("adherence_rate", plan.Progress.AdherenceRate),
	)

	if !wasCompleted && dayPlan.Completed {
		t.publishMilestones(plan)
	}
	return plan, nil
}

// mealAt resolves a slot and index to the addressable meal within the day.
func mealAt(day *model.DayPlan, slot model.MealSlot, index int) (*model.Meal, error) {
	switch slot {
	case model.SlotBreakfast:
		return &day.Breakfast, nil
	case model.SlotLunch:
		return &day.Lunch, nil
	case model.SlotDinner:
		return &day.Dinner, nil
	case model.SlotSnacks:
		if index < 0 || index >= len(day.Snacks) {
			return nil, fmt.Errorf("%w: snack index %d out of range", ErrNotFound, index)
		}
		return &day.Snacks[index], nil
	}
	return nil, fmt.Errorf("%w: unknown meal slot %q", ErrNotFound, slot)
}

// RecalculatePlanProgress recomputes completedDays and adherenceRate from
// the day completion flags.
func RecalculatePlanProgress(plan *model.DietPlan) {
	completed := 0
	for _, day := range plan.Days {
		if day.Completed {
			completed++
		}
	}
	plan.Progress.CompletedDays = completed
	plan.Progress.TotalDays = len(plan.Days)
	if plan.Progress.TotalDays == 0 {
		plan.Progress.AdherenceRate = 0
		return
	}
	plan.Progress.AdherenceRate = int(math.Round(float64(completed) / float64(plan.Progress.TotalDays) * 100))
}

// publishMilestones emits progress events when a day completes. The plan
// name and the adherence numbers are the whole payload; delivery is the
// subscribers' problem.
func (t *ProgressTracker) publishMilestones(plan *model.DietPlan) {
	payload := map[string]any{
		"plan_name":      plan.Name,
		"completed_days": plan.Progress.CompletedDays,
		"total_days":     plan.Progress.TotalDays,
		"adherence_rate": plan.Progress.AdherenceRate,
	}
	t.bus.Publish(events.Event{Name: events.EventProgressMilestone, UserID: plan.UserID, Payload: payload})

	if plan.Progress.CompletedDays == plan.Progress.TotalDays {
		t.bus.Publish(events.Event{Name: events.EventPlanCompleted, UserID: plan.UserID, Payload: payload})
	}
}

// ActivatePlan makes a plan the user's single active plan, deactivating all
// others. Activating a plan the user doesn't own is rejected.
func (t *ProgressTracker) ActivatePlan(ctx context.Context, userID, planID string) error {
	plan, err := t.repo.GetPlan(ctx, planID)
	if err != nil {
		return err
	}
	if plan.UserID != userID {
		return fmt.Errorf("%w: plan %s is not owned by user %s", ErrForbidden, planID, userID)
	}
	return t.repo.SetActivePlan(ctx, userID, planID)
}

// DeletePlan removes a plan. Active plans cannot be deleted.
func (t *ProgressTracker) DeletePlan(ctx context.Context, userID, planID string) error {
	plan, err := t.repo.GetPlan(ctx, planID)
	if err != nil {
		return err
	}
	if plan.UserID != userID {
		return fmt.Errorf("%w: plan %s is not owned by user %s", ErrForbidden, planID, userID)
	}
	if plan.IsActive {
		return fmt.Errorf("%w: deactivate plan %s before deleting it", ErrPlanActive, planID)
	}
	return t.repo.DeletePlan(ctx, planID)
}

// WeeklyTrend compares mean scores of the first and second halves of an
// ordered report sequence. Fewer than two reports is stable by definition.
func WeeklyTrend(reports []model.NutritionReport) string {
	if len(reports) < 2 {
		return TrendStable
	}

	mid := len(reports) / 2
	firstMean := meanScore(reports[:mid])
	secondMean := meanScore(reports[mid:])

	switch {
	case secondMean-firstMean > 5:
		return TrendImproving
	case firstMean-secondMean > 5:
		return TrendDeclining
	default:
		return TrendStable
	}
}

func meanScore(reports []model.NutritionReport) float64 {
	if len(reports) == 0 {
		return 0
	}
	sum := 0.0
	for _, r := range reports {
		sum += float64(r.Score)
	}
	return sum / float64(len(reports))
}

// StrongestWeakestArea averages each macro area's percentage-of-target
// across the reports and ranks them. Ties keep the fixed evaluation order
// (protein, carbs, fat, fiber).
func StrongestWeakestArea(reports []model.NutritionReport) (strongest, weakest string) {
	if len(reports) == 0 {
		return "", ""
	}

	areas := []struct {
		name string
		mean float64
	}{
		{"protein", 0}, {"carbs", 0}, {"fat", 0}, {"fiber", 0},
	}
	for _, r := range reports {
		areas[0].mean += float64(r.Progress.Protein)
		areas[1].mean += float64(r.Progress.Carbs)
		areas[2].mean += float64(r.Progress.Fat)
		areas[3].mean += float64(r.Progress.Fiber)
	}

	best, worst := 0, 0
	for i := range areas {
		areas[i].mean /= float64(len(reports))
		if areas[i].mean > areas[best].mean {
			best = i
		}
		if areas[i].mean < areas[worst].mean {
			worst = i
		}
	}
	return areas[best].name, areas[worst].name
}

// Deficiencies returns the names of nutrients whose intake falls below 80%
// of target. Stateless threshold comparison over the input snapshot.
func Deficiencies(current, target model.NutritionData) []string {
	var flagged []string
	checks := []struct {
		name            string
		current, target float64
	}{
		{"protein", current.Protein, target.Protein},
		{"carbs", current.Carbs, target.Carbs},
		{"fat", current.Fat, target.Fat},
		{"fiber", current.Fiber, target.Fiber},
		{"vitamin_c", current.Vitamins.VitaminC, target.Vitamins.VitaminC},
		{"vitamin_d", current.Vitamins.VitaminD, target.Vitamins.VitaminD},
		{"calcium", current.Minerals.Calcium, target.Minerals.Calcium},
		{"iron", current.Minerals.Iron, target.Minerals.Iron},
	}
	for _, c := range checks {
		if c.target > 0 && c.current < c.target*deficiencyThreshold {
			flagged = append(flagged, c.name)
		}
	}
	return flagged
}
