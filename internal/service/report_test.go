package service

import (
	"context"
	"testing"

	"github.com/nutriplan/nutriplan-backend/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestBuildDailyReport_CountsCompletedIntakeOnly(t *testing.T) {
	// Arrange
	profile := maintenanceProfile()
	day := testDay()
	day.Breakfast.Completed = true
	day.Lunch.Completed = true

	targets := model.NutritionTargets{
		DailyCalories: 2000, Protein: 125, Carbs: 235, Fat: 60, Fiber: 31,
	}

	// Act
	report := BuildDailyReport(day, targets, profile)

	// Assert: breakfast + lunch = 1200 kcal of a 2000 kcal target.
	assert.Equal(t, 1, report.Day)
	assert.Equal(t, 1200.0, report.Current.Calories)
	assert.Equal(t, 60, report.Progress.Calories)
	assert.Equal(t, model.StatusDeficit, report.Status)
	assert.NotEmpty(t, report.Recommendations)
}

func TestBuildDailyReport_FullyCompletedDayIsOptimal(t *testing.T) {
	// Arrange: targets equal to the day's actual totals.
	profile := maintenanceProfile()
	day := testDay()
	completeDay(day)

	total := DayTotal(day)
	targets := model.NutritionTargets{
		DailyCalories: int(total.Calories),
		Protein:       int(total.Protein),
		Carbs:         int(total.Carbs),
		Fat:           int(total.Fat),
		Fiber:         int(total.Fiber),
	}

	// Act
	report := BuildDailyReport(day, targets, profile)

	// Assert
	assert.Equal(t, model.StatusOptimal, report.Status)
	assert.Equal(t, 100, report.Score)
	assert.NotEmpty(t, report.Achievements)
}

func TestReportService_DailyReport_DayOutOfRange(t *testing.T) {
	// Arrange
	mockRepo := new(MockPlanRepository)
	service := NewReportService(mockRepo, zap.NewNop())

	plan := sevenDayPlan(t)
	mockRepo.On("GetPlan", mock.Anything, plan.ID).Return(plan, nil)

	// Act
	_, err := service.DailyReport(context.Background(), plan.UserID, plan.ID, 8, maintenanceProfile())

	// Assert
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReportService_DailyReport_ForeignPlanForbidden(t *testing.T) {
	// Arrange
	mockRepo := new(MockPlanRepository)
	service := NewReportService(mockRepo, zap.NewNop())

	plan := sevenDayPlan(t)
	mockRepo.On("GetPlan", mock.Anything, plan.ID).Return(plan, nil)

	// Act
	_, err := service.DailyReport(context.Background(), "intruder", plan.ID, 1, maintenanceProfile())

	// Assert
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestReportService_Summary_NoActivityYet(t *testing.T) {
	// Arrange
	mockRepo := new(MockPlanRepository)
	service := NewReportService(mockRepo, zap.NewNop())

	plan := sevenDayPlan(t)
	mockRepo.On("GetPlan", mock.Anything, plan.ID).Return(plan, nil)

	// Act
	summary, err := service.Summary(context.Background(), plan.UserID, plan.ID, maintenanceProfile())

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, TrendStable, summary.Trend)
	assert.Empty(t, summary.Strongest)
	assert.Empty(t, summary.Weakest)
	assert.Empty(t, summary.Deficiencies)
	assert.Equal(t, 0, summary.AverageScore)
}

// setDayIntake puts the whole intake on breakfast, clears the other slots,
// and marks every meal complete.
func setDayIntake(day *model.DayPlan, intake model.NutritionData) {
	day.Breakfast.Nutrition = intake
	day.Lunch.Nutrition = model.NutritionData{}
	day.Dinner.Nutrition = model.NutritionData{}
	for i := range day.Snacks {
		day.Snacks[i].Nutrition = model.NutritionData{}
	}
	completeDay(day)
}

func TestReportService_Summary_AverageScoreRoundsHalfUp(t *testing.T) {
	// Arrange: two active days scoring 100 and 89, so the true average is
	// 94.5 and must round to 95 rather than truncate to 94.
	mockRepo := new(MockPlanRepository)
	service := NewReportService(mockRepo, zap.NewNop())

	plan := sevenDayPlan(t)
	plan.Targets = model.NutritionTargets{
		DailyCalories: 2000, Protein: 100, Carbs: 200, Fat: 60, Fiber: 30,
	}
	setDayIntake(&plan.Days[0], model.NutritionData{
		Calories: 2000, Protein: 100, Carbs: 200, Fat: 60, Fiber: 30,
	})
	setDayIntake(&plan.Days[1], model.NutritionData{
		Calories: 1460, Protein: 100, Carbs: 200, Fat: 60, Fiber: 30,
	})
	mockRepo.On("GetPlan", mock.Anything, plan.ID).Return(plan, nil)

	// Act
	summary, err := service.Summary(context.Background(), plan.UserID, plan.ID, maintenanceProfile())

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, 95, summary.AverageScore)
}

func TestReportService_Summary_AggregatesActiveDays(t *testing.T) {
	// Arrange: two fully completed days out of seven.
	mockRepo := new(MockPlanRepository)
	service := NewReportService(mockRepo, zap.NewNop())

	plan := sevenDayPlan(t)
	completeDay(&plan.Days[0])
	completeDay(&plan.Days[1])
	RecalculatePlanProgress(plan)
	mockRepo.On("GetPlan", mock.Anything, plan.ID).Return(plan, nil)

	// Act
	summary, err := service.Summary(context.Background(), plan.UserID, plan.ID, maintenanceProfile())

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, plan.ID, summary.PlanID)
	assert.Equal(t, plan.Name, summary.PlanName)
	assert.Equal(t, 2, summary.Progress.CompletedDays)
	assert.Greater(t, summary.AverageScore, 0)
	assert.NotEmpty(t, summary.Strongest)
	assert.NotEmpty(t, summary.Weakest)
}
