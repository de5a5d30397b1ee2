package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/nutriplan/nutriplan-backend/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// MockProfileRepository is a mock implementation of ProfileRepositoryInterface
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) CreateProfile(ctx context.Context, profile *model.UserProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) GetProfile(ctx context.Context, id string) (*model.UserProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserProfile), args.Error(1)
}

func (m *MockProfileRepository) UpdateProfile(ctx context.Context, profile *model.UserProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func TestValidateProfile_AcceptsValidProfile(t *testing.T) {
	assert.NoError(t, ValidateProfile(maintenanceProfile()))
}

func TestValidateProfile_RangeBoundaries(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.UserProfile)
		valid  bool
	}{
		{"age at lower bound", func(p *model.UserProfile) { p.Age = 13 }, true},
		{"age below lower bound", func(p *model.UserProfile) { p.Age = 12 }, false},
		{"age at upper bound", func(p *model.UserProfile) { p.Age = 120 }, true},
		{"age above upper bound", func(p *model.UserProfile) { p.Age = 121 }, false},
		{"weight at lower bound", func(p *model.UserProfile) { p.WeightKG = 30 }, true},
		{"weight below lower bound", func(p *model.UserProfile) { p.WeightKG = 29.9 }, false},
		{"weight at upper bound", func(p *model.UserProfile) { p.WeightKG = 300 }, true},
		{"weight above upper bound", func(p *model.UserProfile) { p.WeightKG = 300.1 }, false},
		{"height at lower bound", func(p *model.UserProfile) { p.HeightCM = 100 }, true},
		{"height below lower bound", func(p *model.UserProfile) { p.HeightCM = 99 }, false},
		{"height at upper bound", func(p *model.UserProfile) { p.HeightCM = 250 }, true},
		{"height above upper bound", func(p *model.UserProfile) { p.HeightCM = 251 }, false},
		{"duration at lower bound", func(p *model.UserProfile) { p.PlanDurationDays = 7 }, true},
		{"duration below lower bound", func(p *model.UserProfile) { p.PlanDurationDays = 6 }, false},
		{"duration at upper bound", func(p *model.UserProfile) { p.PlanDurationDays = 365 }, true},
		{"duration above upper bound", func(p *model.UserProfile) { p.PlanDurationDays = 366 }, false},
		{"unknown gender", func(p *model.UserProfile) { p.Gender = "robot" }, false},
		{"unknown activity level", func(p *model.UserProfile) { p.ActivityLevel = "hyperactive" }, false},
		{"unknown goal", func(p *model.UserProfile) { p.PrimaryGoal = "world_domination" }, false},
		{"unknown diet type", func(p *model.UserProfile) { p.DietType = "carnivore" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := maintenanceProfile()
			tt.mutate(profile)

			err := ValidateProfile(profile)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidInput)
			}
		})
	}
}

func TestProfileService_Create_AssignsIDAndTimestamps(t *testing.T) {
	// Arrange
	mockRepo := new(MockProfileRepository)
	service := NewProfileService(mockRepo, zap.NewNop())

	profile := maintenanceProfile()
	profile.ID = ""
	mockRepo.On("CreateProfile", mock.Anything, profile).Return(nil)

	// Act
	created, err := service.Create(context.Background(), profile)

	// Assert
	assert.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)
	mockRepo.AssertExpectations(t)
}

func TestProfileService_Create_RejectsInvalidProfileWithoutPersisting(t *testing.T) {
	// Arrange
	mockRepo := new(MockProfileRepository)
	service := NewProfileService(mockRepo, zap.NewNop())

	profile := maintenanceProfile()
	profile.Age = 9

	// Act
	_, err := service.Create(context.Background(), profile)

	// Assert
	assert.ErrorIs(t, err, ErrInvalidInput)
	mockRepo.AssertNotCalled(t, "CreateProfile", mock.Anything, mock.Anything)
}

func TestProfileService_Create_NoneConditionSuppressesOthers(t *testing.T) {
	// Arrange
	mockRepo := new(MockProfileRepository)
	service := NewProfileService(mockRepo, zap.NewNop())

	profile := maintenanceProfile()
	profile.MedicalConditions = []string{"diabetes", model.ConditionNone, "hypertension"}
	mockRepo.On("CreateProfile", mock.Anything, profile).Return(nil)

	// Act
	created, err := service.Create(context.Background(), profile)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, []string{model.ConditionNone}, created.MedicalConditions)
}

func TestProfileService_Update_PreservesCreatedAt(t *testing.T) {
	// Arrange
	mockRepo := new(MockProfileRepository)
	service := NewProfileService(mockRepo, zap.NewNop())

	existing := maintenanceProfile()
	existing.CreatedAt = existing.CreatedAt.AddDate(-1, 0, 0)

	updated := maintenanceProfile()
	updated.WeightKG = 78

	mockRepo.On("GetProfile", mock.Anything, updated.ID).Return(existing, nil)
	mockRepo.On("UpdateProfile", mock.Anything, updated).Return(nil)

	// Act
	result, err := service.Update(context.Background(), updated)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, existing.CreatedAt, result.CreatedAt)
	assert.True(t, result.UpdatedAt.After(result.CreatedAt))
	mockRepo.AssertExpectations(t)
}

func TestProfileService_Update_MissingProfile(t *testing.T) {
	// Arrange
	mockRepo := new(MockProfileRepository)
	service := NewProfileService(mockRepo, zap.NewNop())

	profile := maintenanceProfile()
	mockRepo.On("GetProfile", mock.Anything, profile.ID).Return(nil, fmt.Errorf("%w: profile %s", ErrNotFound, profile.ID))

	// Act
	_, err := service.Update(context.Background(), profile)

	// Assert
	assert.ErrorIs(t, err, ErrNotFound)
	mockRepo.AssertNotCalled(t, "UpdateProfile", mock.Anything, mock.Anything)
}

func TestProfileService_Targets_DerivedFromStoredProfile(t *testing.T) {
	// Arrange
	mockRepo := new(MockProfileRepository)
	service := NewProfileService(mockRepo, zap.NewNop())

	profile := maintenanceProfile()
	mockRepo.On("GetProfile", mock.Anything, profile.ID).Return(profile, nil)

	// Act
	targets, err := service.Targets(context.Background(), profile.ID)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, 2701, targets.DailyCalories)
	mockRepo.AssertExpectations(t)
}
