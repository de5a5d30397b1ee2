package service

import (
	"context"
	"fmt"
	"math"

	"github.com/nutriplan/nutriplan-backend/pkg/model"
	"go.uber.org/zap"
)

// ReportService assembles derived nutrition reports and plan summaries.
// Reports are value objects: always recomputable, never persisted.
type ReportService struct {
	repo   PlanRepositoryInterface
	logger *zap.Logger
}

// NewReportService creates a new ReportService.
func NewReportService(repo PlanRepositoryInterface, logger *zap.Logger) *ReportService {
	return &ReportService{
		repo:   repo,
		logger: logger,
	}
}

// BuildDailyReport computes the NutritionReport for one day against the
// plan's targets. Current intake counts completed meals only.
func BuildDailyReport(day *model.DayPlan, targets model.NutritionTargets, profile *model.UserProfile) model.NutritionReport {
	current := CompletedTotal(day)
	target := targets.Data()
	progress := Progress(current, target)

	return model.NutritionReport{
		Day:             day.Day,
		Current:         current,
		Target:          target,
		Progress:        progress,
		Status:          Status(progress),
		Score:           Score(progress),
		Recommendations: Recommendations(progress, profile),
		Achievements:    Achievements(progress),
	}
}

// DailyReport loads a plan and builds the report for one of its days.
func (s *ReportService) DailyReport(ctx context.Context, userID, planID string, day int, profile *model.UserProfile) (*model.NutritionReport, error) {
	plan, err := s.ownedPlan(ctx, userID, planID)
	if err != nil {
		return nil, err
	}
	if day < 1 || day > len(plan.Days) {
		return nil, fmt.Errorf("%w: day %d outside plan range", ErrNotFound, day)
	}

	report := BuildDailyReport(&plan.Days[day-1], plan.Targets, profile)
	return &report, nil
}

// PlanSummary aggregates the whole plan: per-day reports, adherence, trend,
// and strongest/weakest macro areas.
type PlanSummary struct {
	PlanID       string             `json:"plan_id"`
	PlanName     string             `json:"plan_name"`
	Progress     model.PlanProgress `json:"progress"`
	Trend        string             `json:"trend"`
	Strongest    string             `json:"strongest_area"`
	Weakest      string             `json:"weakest_area"`
	Deficiencies []string           `json:"deficiencies,omitempty"`
	AverageScore int                `json:"average_score"`
}

// Summary builds the plan-level summary from day reports. Only days with at
// least one completed meal contribute to trend and area ranking; a plan
// with no activity yet reports a stable trend and empty areas.
func (s *ReportService) Summary(ctx context.Context, userID, planID string, profile *model.UserProfile) (*PlanSummary, error) {
	plan, err := s.ownedPlan(ctx, userID, planID)
	if err != nil {
		return nil, err
	}

	var reports []model.NutritionReport
	totalCurrent := model.NutritionData{}
	activeDays := 0
	for i := range plan.Days {
		current := CompletedTotal(&plan.Days[i])
		if current.Calories == 0 && current.Protein == 0 && current.Carbs == 0 && current.Fat == 0 {
			continue
		}
		reports = append(reports, BuildDailyReport(&plan.Days[i], plan.Targets, profile))
		totalCurrent = SumNutrition(totalCurrent, current)
		activeDays++
	}

	strongest, weakest := StrongestWeakestArea(reports)

	summary := &PlanSummary{
		PlanID:    plan.ID,
		PlanName:  plan.Name,
		Progress:  plan.Progress,
		Trend:     WeeklyTrend(reports),
		Strongest: strongest,
		Weakest:   weakest,
	}

	if activeDays > 0 {
		// Deficiencies are judged against targets scaled to the active days.
		target := plan.Targets.Data()
		scaled := model.NutritionData{}
		for i := 0; i < activeDays; i++ {
			scaled = SumNutrition(scaled, target)
		}
		summary.Deficiencies = Deficiencies(totalCurrent, scaled)

		sum := 0
		for _, r := range reports {
			sum += r.Score
		}
		summary.AverageScore = int(math.Round(float64(sum) / float64(len(reports))))
	}

	s.logger.Info("plan summary built",
		zap.String("plan_id", planID),
		zap.Int("active_days", activeDays),
		zap.String("trend", summary.Trend),
	)
	return summary, nil
}

func (s *ReportService) ownedPlan(ctx context.Context, userID, planID string) (*model.DietPlan, error) {
	plan, err := s.repo.GetPlan(ctx, planID)
	if err != nil {
		return nil, err
	}
	if plan.UserID != userID {
		return nil, fmt.Errorf("%w: plan %s is not owned by user %s", ErrForbidden, planID, userID)
	}
	return plan, nil
}
