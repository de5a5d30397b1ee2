package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nutriplan/nutriplan-backend/internal/service"
	"github.com/nutriplan/nutriplan-backend/pkg/model"
	"go.uber.org/zap"
)

// ProgressHandler implements the meal completion endpoints.
type ProgressHandler struct {
	tracker *service.ProgressTracker
	logger  *zap.Logger
}

// NewProgressHandler creates a new ProgressHandler.
func NewProgressHandler(tracker *service.ProgressTracker, logger *zap.Logger) *ProgressHandler {
	return &ProgressHandler{
		tracker: tracker,
		logger:  logger,
	}
}

// CompleteMeal handles POST /api/v1/plans/:id/days/:day/meals/:slot/:index/complete.
func (h *ProgressHandler) CompleteMeal(c *gin.Context) {
	h.setCompleted(c, true)
}

// UncompleteMeal handles POST /api/v1/plans/:id/days/:day/meals/:slot/:index/uncomplete.
func (h *ProgressHandler) UncompleteMeal(c *gin.Context) {
	h.setCompleted(c, false)
}

func (h *ProgressHandler) setCompleted(c *gin.Context, completed bool) {
	day, err := strconv.Atoi(c.Param("day"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    "INVALID_INPUT",
			Message: "day must be an integer",
		})
		return
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    "INVALID_INPUT",
			Message: "meal index must be an integer",
		})
		return
	}
	slot := model.MealSlot(c.Param("slot"))

	var plan *model.DietPlan
	if completed {
		plan, err = h.tracker.CompleteMeal(c.Request.Context(), requestUserID(c), c.Param("id"), day, slot, index)
	} else {
		plan, err = h.tracker.UncompleteMeal(c.Request.Context(), requestUserID(c), c.Param("id"), day, slot, index)
	}
	if err != nil {
		h.logger.Warn("meal completion update rejected",
			zap.Error(err),
			zap.String("plan_id", c.Param("id")),
			zap.Int("day", day),
			zap.String("slot", string(slot)),
		)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"day":      plan.Days[day-1],
		"progress": plan.Progress,
	})
}
