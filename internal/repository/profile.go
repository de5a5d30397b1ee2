package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nutriplan/nutriplan-backend/internal/service"
	"github.com/nutriplan/nutriplan-backend/pkg/model"
	"go.uber.org/zap"
)

// ProfileRepository manages user profile persistence.
type ProfileRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

// NewProfileRepository creates a new ProfileRepository.
func NewProfileRepository(db *pgxpool.Pool, logger *zap.Logger) *ProfileRepository {
	return &ProfileRepository{
		db:     db,
		logger: logger,
	}
}

// CreateProfile inserts a new user profile.
func (r *ProfileRepository) CreateProfile(ctx context.Context, profile *model.UserProfile) error {
	query := `
		INSERT INTO user_profiles (
			id, age, gender, weight_kg, height_cm,
			activity_level, primary_goal, diet_type,
			allergies, preferred_cuisines,
			breakfast_time, lunch_time, dinner_time,
			plan_duration_days, medical_conditions,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, $8,
			$9, $10,
			$11, $12, $13,
			$14, $15,
			$16, $17
		)
	`

	_, err := r.db.Exec(ctx, query,
		profile.ID,
		profile.Age,
		profile.Gender,
		profile.WeightKG,
		profile.HeightCM,
		profile.ActivityLevel,
		profile.PrimaryGoal,
		profile.DietType,
		profile.Allergies,
		profile.PreferredCuisines,
		profile.MealTimings.Breakfast,
		profile.MealTimings.Lunch,
		profile.MealTimings.Dinner,
		profile.PlanDurationDays,
		profile.MedicalConditions,
		profile.CreatedAt,
		profile.UpdatedAt,
	)

	if err != nil {
		r.logger.Error("failed to create profile", zap.Error(err), zap.String("profile_id", profile.ID))
		return fmt.Errorf("failed to create profile: %w", err)
	}

	return nil
}

// GetProfile retrieves a profile by ID.
func (r *ProfileRepository) GetProfile(ctx context.Context, id string) (*model.UserProfile, error) {
	query := `
		SELECT id, age, gender, weight_kg, height_cm,
			activity_level, primary_goal, diet_type,
			allergies, preferred_cuisines,
			breakfast_time, lunch_time, dinner_time,
			plan_duration_days, medical_conditions,
			created_at, updated_at
		FROM user_profiles
		WHERE id = $1
	`

	var profile model.UserProfile
	err := r.db.QueryRow(ctx, query, id).Scan(
		&profile.ID,
		&profile.Age,
		&profile.Gender,
		&profile.WeightKG,
		&profile.HeightCM,
		&profile.ActivityLevel,
		&profile.PrimaryGoal,
		&profile.DietType,
		&profile.Allergies,
		&profile.PreferredCuisines,
		&profile.MealTimings.Breakfast,
		&profile.MealTimings.Lunch,
		&profile.MealTimings.Dinner,
		&profile.PlanDurationDays,
		&profile.MedicalConditions,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("%w: profile %s", service.ErrNotFound, id)
		}
		r.logger.Error("failed to get profile", zap.Error(err), zap.String("profile_id", id))
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return &profile, nil
}

// UpdateProfile replaces an existing profile's fields.
func (r *ProfileRepository) UpdateProfile(ctx context.Context, profile *model.UserProfile) error {
	query := `
		UPDATE user_profiles
		SET age = $1, gender = $2, weight_kg = $3, height_cm = $4,
			activity_level = $5, primary_goal = $6, diet_type = $7,
			allergies = $8, preferred_cuisines = $9,
			breakfast_time = $10, lunch_time = $11, dinner_time = $12,
			plan_duration_days = $13, medical_conditions = $14,
			updated_at = $15
		WHERE id = $16
	`

	result, err := r.db.Exec(ctx, query,
		profile.Age,
		profile.Gender,
		profile.WeightKG,
		profile.HeightCM,
		profile.ActivityLevel,
		profile.PrimaryGoal,
		profile.DietType,
		profile.Allergies,
		profile.PreferredCuisines,
		profile.MealTimings.Breakfast,
		profile.MealTimings.Lunch,
		profile.MealTimings.Dinner,
		profile.PlanDurationDays,
		profile.MedicalConditions,
		profile.UpdatedAt,
		profile.ID,
	)

	if err != nil {
		r.logger.Error("failed to update profile", zap.Error(err), zap.String("profile_id", profile.ID))
		return fmt.Errorf("failed to update profile: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("%w: profile %s", service.ErrNotFound, profile.ID)
	}

	return nil
}
