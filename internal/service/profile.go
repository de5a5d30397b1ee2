package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nutriplan/nutriplan-backend/pkg/model"
	"go.uber.org/zap"
)

// Documented ranges for profile numeric fields. Validation happens here,
// before any computation: NutritionMath assumes pre-validated input.
const (
	minAge      = 13
	maxAge      = 120
	minWeightKG = 30
	maxWeightKG = 300
	minHeightCM = 100
	maxHeightCM = 250
)

var validGenders = map[model.Gender]bool{
	model.GenderMale: true, model.GenderFemale: true, model.GenderOther: true,
}

var validGoals = map[model.Goal]bool{
	model.GoalWeightLoss: true, model.GoalMuscleGain: true,
	model.GoalMaintenance: true, model.GoalGeneralHealth: true,
}

var validDiets = map[model.DietType]bool{
	model.DietOmnivore: true, model.DietVegetarian: true, model.DietVegan: true,
	model.DietPescatarian: true, model.DietKeto: true, model.DietPaleo: true,
}

// ProfileRepositoryInterface is the persistence collaborator for profiles.
type ProfileRepositoryInterface interface {
	CreateProfile(ctx context.Context, profile *model.UserProfile) error
	GetProfile(ctx context.Context, id string) (*model.UserProfile, error)
	UpdateProfile(ctx context.Context, profile *model.UserProfile) error
}

// ProfileService validates and persists user profiles and derives their
// nutrition targets.
type ProfileService struct {
	repo   ProfileRepositoryInterface
	logger *zap.Logger
}

// NewProfileService creates a new ProfileService.
func NewProfileService(repo ProfileRepositoryInterface, logger *zap.Logger) *ProfileService {
	return &ProfileService{
		repo:   repo,
		logger: logger,
	}
}

// ValidateProfile checks every documented range. A profile is rejected
// whole: it is never partially applied.
func ValidateProfile(p *model.UserProfile) error {
	if p.Age < minAge || p.Age > maxAge {
		return fmt.Errorf("%w: age %d outside [%d,%d]", ErrInvalidInput, p.Age, minAge, maxAge)
	}
	if !validGenders[p.Gender] {
		return fmt.Errorf("%w: unknown gender %q", ErrInvalidInput, p.Gender)
	}
	if p.WeightKG < minWeightKG || p.WeightKG > maxWeightKG {
		return fmt.Errorf("%w: weight %.1f kg outside [%d,%d]", ErrInvalidInput, p.WeightKG, minWeightKG, maxWeightKG)
	}
	if p.HeightCM < minHeightCM || p.HeightCM > maxHeightCM {
		return fmt.Errorf("%w: height %.1f cm outside [%d,%d]", ErrInvalidInput, p.HeightCM, minHeightCM, maxHeightCM)
	}
	if _, ok := activityMultipliers[p.ActivityLevel]; !ok {
		return fmt.Errorf("%w: unknown activity level %q", ErrInvalidInput, p.ActivityLevel)
	}
	if !validGoals[p.PrimaryGoal] {
		return fmt.Errorf("%w: unknown goal %q", ErrInvalidInput, p.PrimaryGoal)
	}
	if !validDiets[p.DietType] {
		return fmt.Errorf("%w: unknown diet type %q", ErrInvalidInput, p.DietType)
	}
	if p.PlanDurationDays < MinPlanDurationDays || p.PlanDurationDays > MaxPlanDurationDays {
		return fmt.Errorf("%w: plan duration %d days outside [%d,%d]",
			ErrInvalidInput, p.PlanDurationDays, MinPlanDurationDays, MaxPlanDurationDays)
	}
	return nil
}

// Create validates and persists a new profile from a completed intake form.
func (s *ProfileService) Create(ctx context.Context, profile *model.UserProfile) (*model.UserProfile, error) {
	if err := ValidateProfile(profile); err != nil {
		return nil, err
	}

	now := time.Now()
	profile.ID = uuid.New().String()
	profile.CreatedAt = now
	profile.UpdatedAt = now
	normalizeConditions(profile)

	if err := s.repo.CreateProfile(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	s.logger.Info("profile created",
		zap.String("profile_id", profile.ID),
		zap.String("goal", string(profile.PrimaryGoal)),
		zap.String("diet_type", string(profile.DietType)),
	)
	return profile, nil
}

// Get loads a profile by id.
func (s *ProfileService) Get(ctx context.Context, id string) (*model.UserProfile, error) {
	return s.repo.GetProfile(ctx, id)
}

// Update replaces a profile through an explicit update operation. The
// updated profile is validated whole before anything is written.
func (s *ProfileService) Update(ctx context.Context, profile *model.UserProfile) (*model.UserProfile, error) {
	if err := ValidateProfile(profile); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetProfile(ctx, profile.ID)
	if err != nil {
		return nil, err
	}
	profile.CreatedAt = existing.CreatedAt
	profile.UpdatedAt = time.Now()
	normalizeConditions(profile)

	if err := s.repo.UpdateProfile(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return profile, nil
}

// Targets derives the nutrition targets snapshot for a stored profile.
func (s *ProfileService) Targets(ctx context.Context, id string) (*model.NutritionTargets, error) {
	profile, err := s.repo.GetProfile(ctx, id)
	if err != nil {
		return nil, err
	}
	targets := ComputeTargets(profile)
	return &targets, nil
}

// normalizeConditions applies the "none" sentinel: its presence suppresses
// every other condition.
func normalizeConditions(p *model.UserProfile) {
	for _, c := range p.MedicalConditions {
		if c == model.ConditionNone {
			p.MedicalConditions = []string{model.ConditionNone}
			return
		}
	}
}
