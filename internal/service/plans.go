package service

import (
	"context"
	"fmt"

	"github.com/nutriplan/nutriplan-backend/internal/events"
	"github.com/nutriplan/nutriplan-backend/pkg/model"
	"go.uber.org/zap"
)

// PlanService orchestrates plan generation and persistence.
type PlanService struct {
	profiles  ProfileRepositoryInterface
	plans     PlanRepositoryInterface
	generator *PlanGenerator
	bus       EventPublisher
	logger    *zap.Logger
}

// NewPlanService creates a new PlanService.
func NewPlanService(
	profiles ProfileRepositoryInterface,
	plans PlanRepositoryInterface,
	generator *PlanGenerator,
	bus EventPublisher,
	logger *zap.Logger,
) *PlanService {
	return &PlanService{
		profiles:  profiles,
		plans:     plans,
		generator: generator,
		bus:       bus,
		logger:    logger,
	}
}

// CreateForProfile derives targets from the stored profile, generates a
// plan, persists it, and announces it. The new plan starts inactive; the
// user activates it explicitly.
func (s *PlanService) CreateForProfile(ctx context.Context, profileID string) (*model.DietPlan, error) {
	profile, err := s.profiles.GetProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}

	targets := ComputeTargets(profile)
	plan, err := s.generator.Generate(ctx, profile, targets)
	if err != nil {
		return nil, err
	}

	if err := s.plans.CreatePlan(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to persist generated plan: %w", err)
	}

	s.logger.Info("diet plan created",
		zap.String("plan_id", plan.ID),
		zap.String("user_id", plan.UserID),
		zap.Int("duration_days", plan.DurationDays),
		zap.Int("daily_calories", plan.DailyCalories),
	)

	s.bus.Publish(events.Event{
		Name:   events.EventPlanGenerated,
		UserID: plan.UserID,
		Payload: map[string]any{
			"plan_name":      plan.Name,
			"total_days":     plan.Progress.TotalDays,
			"daily_calories": plan.DailyCalories,
		},
	})

	return plan, nil
}

// Get loads a plan, enforcing ownership.
func (s *PlanService) Get(ctx context.Context, userID, planID string) (*model.DietPlan, error) {
	plan, err := s.plans.GetPlan(ctx, planID)
	if err != nil {
		return nil, err
	}
	if plan.UserID != userID {
		return nil, fmt.Errorf("%w: plan %s is not owned by user %s", ErrForbidden, planID, userID)
	}
	return plan, nil
}

// ListForUser returns all plans belonging to a user, newest first.
func (s *PlanService) ListForUser(ctx context.Context, userID string) ([]model.DietPlan, error) {
	return s.plans.ListPlansByUser(ctx, userID)
}
