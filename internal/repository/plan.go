package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nutriplan/nutriplan-backend/internal/service"
	"github.com/nutriplan/nutriplan-backend/pkg/model"
	"go.uber.org/zap"
)

// PlanRepository manages diet plan persistence. Day plans and targets are
// stored as jsonb documents; progress counters are kept in columns so plan
// lists don't need to load the full day payload.
type PlanRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

// NewPlanRepository creates a new PlanRepository.
func NewPlanRepository(db *pgxpool.Pool, logger *zap.Logger) *PlanRepository {
	return &PlanRepository{
		db:     db,
		logger: logger,
	}
}

// CreatePlan inserts a generated plan.
func (r *PlanRepository) CreatePlan(ctx context.Context, plan *model.DietPlan) error {
	daysJSON, targetsJSON, err := marshalPlanDocuments(plan)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO diet_plans (
			id, user_id, name, description, duration_days, daily_calories,
			targets, days, is_active,
			completed_days, total_days, adherence_rate,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6,
			$7, $8, $9,
			$10, $11, $12,
			$13, $14
		)
	`

	_, err = r.db.Exec(ctx, query,
		plan.ID,
		plan.UserID,
		plan.Name,
		plan.Description,
		plan.DurationDays,
		plan.DailyCalories,
		targetsJSON,
		daysJSON,
		plan.IsActive,
		plan.Progress.CompletedDays,
		plan.Progress.TotalDays,
		plan.Progress.AdherenceRate,
		plan.CreatedAt,
		plan.UpdatedAt,
	)

	if err != nil {
		r.logger.Error("failed to create plan", zap.Error(err), zap.String("plan_id", plan.ID))
		return fmt.Errorf("failed to create plan: %w", err)
	}

	return nil
}

// GetPlan retrieves a plan by ID, including its full day payload.
func (r *PlanRepository) GetPlan(ctx context.Context, planID string) (*model.DietPlan, error) {
	query := `
		SELECT id, user_id, name, description, duration_days, daily_calories,
			targets, days, is_active,
			completed_days, total_days, adherence_rate,
			created_at, updated_at
		FROM diet_plans
		WHERE id = $1
	`

	var plan model.DietPlan
	var targetsJSON, daysJSON []byte
	err := r.db.QueryRow(ctx, query, planID).Scan(
		&plan.ID,
		&plan.UserID,
		&plan.Name,
		&plan.Description,
		&plan.DurationDays,
		&plan.DailyCalories,
		&targetsJSON,
		&daysJSON,
		&plan.IsActive,
		&plan.Progress.CompletedDays,
		&plan.Progress.TotalDays,
		&plan.Progress.AdherenceRate,
		&plan.CreatedAt,
		&plan.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("%w: plan %s", service.ErrNotFound, planID)
		}
		r.logger.Error("failed to get plan", zap.Error(err), zap.String("plan_id", planID))
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}

	if err := json.Unmarshal(targetsJSON, &plan.Targets); err != nil {
		return nil, fmt.Errorf("failed to decode plan targets: %w", err)
	}
	if err := json.Unmarshal(daysJSON, &plan.Days); err != nil {
		return nil, fmt.Errorf("failed to decode plan days: %w", err)
	}

	return &plan, nil
}

// UpdatePlan writes back a mutated plan (meal completion, progress). The
// caller stamps UpdatedAt; the row stores exactly what the struct carries.
func (r *PlanRepository) UpdatePlan(ctx context.Context, plan *model.DietPlan) error {
	daysJSON, targetsJSON, err := marshalPlanDocuments(plan)
	if err != nil {
		return err
	}

	query := `
		UPDATE diet_plans
		SET name = $1, description = $2, targets = $3, days = $4,
			is_active = $5, completed_days = $6, total_days = $7,
			adherence_rate = $8, updated_at = $9
		WHERE id = $10
	`

	result, err := r.db.Exec(ctx, query,
		plan.Name,
		plan.Description,
		targetsJSON,
		daysJSON,
		plan.IsActive,
		plan.Progress.CompletedDays,
		plan.Progress.TotalDays,
		plan.Progress.AdherenceRate,
		plan.UpdatedAt,
		plan.ID,
	)

	if err != nil {
		r.logger.Error("failed to update plan", zap.Error(err), zap.String("plan_id", plan.ID))
		return fmt.Errorf("failed to update plan: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("%w: plan %s", service.ErrNotFound, plan.ID)
	}

	return nil
}

// ListPlansByUser retrieves all plans for a user, newest first.
func (r *PlanRepository) ListPlansByUser(ctx context.Context, userID string) ([]model.DietPlan, error) {
	query := `
		SELECT id, user_id, name, description, duration_days, daily_calories,
			targets, days, is_active,
			completed_days, total_days, adherence_rate,
			created_at, updated_at
		FROM diet_plans
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.logger.Error("failed to list plans", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}
	defer rows.Close()

	var plans []model.DietPlan
	for rows.Next() {
		var plan model.DietPlan
		var targetsJSON, daysJSON []byte
		err := rows.Scan(
			&plan.ID,
			&plan.UserID,
			&plan.Name,
			&plan.Description,
			&plan.DurationDays,
			&plan.DailyCalories,
			&targetsJSON,
			&daysJSON,
			&plan.IsActive,
			&plan.Progress.CompletedDays,
			&plan.Progress.TotalDays,
			&plan.Progress.AdherenceRate,
			&plan.CreatedAt,
			&plan.UpdatedAt,
		)
		if err != nil {
			r.logger.Error("failed to scan plan", zap.Error(err))
			continue
		}
		if err := json.Unmarshal(targetsJSON, &plan.Targets); err != nil {
			r.logger.Error("failed to decode plan targets", zap.Error(err), zap.String("plan_id", plan.ID))
			continue
		}
		if err := json.Unmarshal(daysJSON, &plan.Days); err != nil {
			r.logger.Error("failed to decode plan days", zap.Error(err), zap.String("plan_id", plan.ID))
			continue
		}
		plans = append(plans, plan)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("error iterating plans", zap.Error(err))
		return nil, fmt.Errorf("error iterating plans: %w", err)
	}

	return plans, nil
}

// SetActivePlan activates one plan and deactivates every other plan owned
// by the user, in a single transaction.
func (r *PlanRepository) SetActivePlan(ctx context.Context, userID, planID string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx,
		`UPDATE diet_plans SET is_active = FALSE, updated_at = NOW() WHERE user_id = $1 AND is_active`,
		userID,
	); err != nil {
		return fmt.Errorf("failed to deactivate plans: %w", err)
	}

	result, err := tx.Exec(ctx,
		`UPDATE diet_plans SET is_active = TRUE, updated_at = NOW() WHERE id = $1 AND user_id = $2`,
		planID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to activate plan: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("%w: plan %s", service.ErrNotFound, planID)
	}

	return tx.Commit(ctx)
}

// DeletePlan removes a plan. The service layer guarantees the plan is
// inactive before calling this.
func (r *PlanRepository) DeletePlan(ctx context.Context, planID string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM diet_plans WHERE id = $1`, planID)
	if err != nil {
		r.logger.Error("failed to delete plan", zap.Error(err), zap.String("plan_id", planID))
		return fmt.Errorf("failed to delete plan: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("%w: plan %s", service.ErrNotFound, planID)
	}
	return nil
}

func marshalPlanDocuments(plan *model.DietPlan) (daysJSON, targetsJSON []byte, err error) {
	daysJSON, err = json.Marshal(plan.Days)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode plan days: %w", err)
	}
	targetsJSON, err = json.Marshal(plan.Targets)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode plan targets: %w", err)
	}
	return daysJSON, targetsJSON, nil
}
