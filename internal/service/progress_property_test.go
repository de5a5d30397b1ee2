package service

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/nutriplan/nutriplan-backend/pkg/model"
)

func TestProperty_AdherenceRateBounds(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("Adherence rate is round(completed/total*100) and stays within [0,100]", prop.ForAll(
		func(completedFlags []bool) bool {
			plan := &model.DietPlan{Days: make([]model.DayPlan, len(completedFlags))}
			completed := 0
			for i, flag := range completedFlags {
				plan.Days[i].Day = i + 1
				plan.Days[i].Completed = flag
				if flag {
					completed++
				}
			}

			RecalculatePlanProgress(plan)

			if plan.Progress.CompletedDays != completed || plan.Progress.TotalDays != len(completedFlags) {
				return false
			}
			if plan.Progress.AdherenceRate < 0 || plan.Progress.AdherenceRate > 100 {
				return false
			}
			if len(completedFlags) == 0 {
				return plan.Progress.AdherenceRate == 0
			}
			want := int(math.Round(float64(completed) / float64(len(completedFlags)) * 100))
			return plan.Progress.AdherenceRate == want
		},
		gen.SliceOf(gen.Bool()),
	))

	properties.TestingRun(t)
}

func TestProperty_DayCompletionIsFourSlotAnd(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("A day is complete exactly when breakfast, lunch, dinner, and all snacks are", prop.ForAll(
		func(breakfast, lunch, dinner, snack bool) bool {
			day := testDay()
			day.Breakfast.Completed = breakfast
			day.Lunch.Completed = lunch
			day.Dinner.Completed = dinner
			day.Snacks[0].Completed = snack

			RecalculateDayTotals(day)

			return day.Completed == (breakfast && lunch && dinner && snack)
		},
		gen.Bool(),
		gen.Bool(),
		gen.Bool(),
		gen.Bool(),
	))

	properties.TestingRun(t)
}
