package service

import (
	"context"
	"errors"
	"testing"

	"github.com/nutriplan/nutriplan-backend/internal/events"
	"github.com/nutriplan/nutriplan-backend/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func newPlanService(profiles *MockProfileRepository, plans *MockPlanRepository, bus *MockEventPublisher) *PlanService {
	return NewPlanService(profiles, plans, fixedClockGenerator(nil), bus, zap.NewNop())
}

func TestPlanService_CreateForProfile_PersistsAndAnnounces(t *testing.T) {
	// Arrange
	profile := maintenanceProfile()
	mockProfiles := new(MockProfileRepository)
	mockPlans := new(MockPlanRepository)
	mockBus := new(MockEventPublisher)
	service := newPlanService(mockProfiles, mockPlans, mockBus)

	mockProfiles.On("GetProfile", mock.Anything, profile.ID).Return(profile, nil)
	var persisted *model.DietPlan
	mockPlans.On("CreatePlan", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		persisted = args.Get(1).(*model.DietPlan)
	}).Return(nil)
	var published events.Event
	mockBus.On("Publish", mock.Anything).Run(func(args mock.Arguments) {
		published = args.Get(0).(events.Event)
	}).Return()

	// Act
	plan, err := service.CreateForProfile(context.Background(), profile.ID)

	// Assert
	assert.NoError(t, err)
	assert.NotNil(t, plan)
	assert.Same(t, plan, persisted)
	assert.Equal(t, profile.ID, plan.UserID)
	assert.Equal(t, profile.PlanDurationDays, plan.DurationDays)
	assert.False(t, plan.IsActive)
	assert.Equal(t, events.EventPlanGenerated, published.Name)
	assert.Equal(t, profile.ID, published.UserID)
	assert.Equal(t, plan.Name, published.Payload["plan_name"])
	assert.Equal(t, plan.Progress.TotalDays, published.Payload["total_days"])
	assert.Equal(t, plan.DailyCalories, published.Payload["daily_calories"])
	mockPlans.AssertExpectations(t)
	mockBus.AssertExpectations(t)
}

func TestPlanService_CreateForProfile_UnknownProfile(t *testing.T) {
	// Arrange
	mockProfiles := new(MockProfileRepository)
	mockPlans := new(MockPlanRepository)
	mockBus := new(MockEventPublisher)
	service := newPlanService(mockProfiles, mockPlans, mockBus)

	mockProfiles.On("GetProfile", mock.Anything, "missing").Return(nil, ErrNotFound)

	// Act
	plan, err := service.CreateForProfile(context.Background(), "missing")

	// Assert
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, plan)
	mockPlans.AssertNotCalled(t, "CreatePlan", mock.Anything, mock.Anything)
	mockBus.AssertNotCalled(t, "Publish", mock.Anything)
}

func TestPlanService_CreateForProfile_PersistenceFailureSuppressesEvent(t *testing.T) {
	// Arrange
	profile := maintenanceProfile()
	mockProfiles := new(MockProfileRepository)
	mockPlans := new(MockPlanRepository)
	mockBus := new(MockEventPublisher)
	service := newPlanService(mockProfiles, mockPlans, mockBus)

	storeErr := errors.New("connection reset")
	mockProfiles.On("GetProfile", mock.Anything, profile.ID).Return(profile, nil)
	mockPlans.On("CreatePlan", mock.Anything, mock.Anything).Return(storeErr)

	// Act
	plan, err := service.CreateForProfile(context.Background(), profile.ID)

	// Assert
	assert.ErrorIs(t, err, storeErr)
	assert.Nil(t, plan)
	mockBus.AssertNotCalled(t, "Publish", mock.Anything)
}

func TestPlanService_Get_EnforcesOwnership(t *testing.T) {
	// Arrange
	plan := sevenDayPlan(t)
	mockPlans := new(MockPlanRepository)
	service := newPlanService(new(MockProfileRepository), mockPlans, new(MockEventPublisher))
	mockPlans.On("GetPlan", mock.Anything, plan.ID).Return(plan, nil)

	// Act
	owned, ownedErr := service.Get(context.Background(), plan.UserID, plan.ID)
	foreign, foreignErr := service.Get(context.Background(), "user-2", plan.ID)

	// Assert
	assert.NoError(t, ownedErr)
	assert.Same(t, plan, owned)
	assert.ErrorIs(t, foreignErr, ErrForbidden)
	assert.Nil(t, foreign)
}

func TestPlanService_ListForUser(t *testing.T) {
	// Arrange
	plans := []model.DietPlan{*sevenDayPlan(t)}
	mockPlans := new(MockPlanRepository)
	service := newPlanService(new(MockProfileRepository), mockPlans, new(MockEventPublisher))
	mockPlans.On("ListPlansByUser", mock.Anything, "user-1").Return(plans, nil)

	// Act
	listed, err := service.ListForUser(context.Background(), "user-1")

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, plans, listed)
}
