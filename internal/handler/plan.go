package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nutriplan/nutriplan-backend/internal/service"
	"go.uber.org/zap"
)

// PlanHandler implements the diet plan endpoints.
type PlanHandler struct {
	plans    *service.PlanService
	progress *service.ProgressTracker
	logger   *zap.Logger
}

// NewPlanHandler creates a new PlanHandler.
func NewPlanHandler(plans *service.PlanService, progress *service.ProgressTracker, logger *zap.Logger) *PlanHandler {
	return &PlanHandler{
		plans:    plans,
		progress: progress,
		logger:   logger,
	}
}

type createPlanRequest struct {
	ProfileID string `json:"profile_id" binding:"required"`
}

// CreatePlan handles POST /api/v1/plans.
func (h *PlanHandler) CreatePlan(c *gin.Context) {
	var req createPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    "INVALID_INPUT",
			Message: "profile_id is required",
			Details: err.Error(),
		})
		return
	}

	plan, err := h.plans.CreateForProfile(c.Request.Context(), req.ProfileID)
	if err != nil {
		h.logger.Error("failed to create plan",
			zap.Error(err),
			zap.String("profile_id", req.ProfileID),
		)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, plan)
}

// GetPlan handles GET /api/v1/plans/:id.
func (h *PlanHandler) GetPlan(c *gin.Context) {
	plan, err := h.plans.Get(c.Request.Context(), requestUserID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

// ListPlans handles GET /api/v1/users/:id/plans.
func (h *PlanHandler) ListPlans(c *gin.Context) {
	plans, err := h.plans.ListForUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plans)
}

// ActivatePlan handles POST /api/v1/plans/:id/activate.
func (h *PlanHandler) ActivatePlan(c *gin.Context) {
	if err := h.progress.ActivatePlan(c.Request.Context(), requestUserID(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeletePlan handles DELETE /api/v1/plans/:id. Active plans are rejected.
func (h *PlanHandler) DeletePlan(c *gin.Context) {
	if err := h.progress.DeletePlan(c.Request.Context(), requestUserID(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
