package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nutriplan/nutriplan-backend/internal/service"
	"github.com/nutriplan/nutriplan-backend/pkg/model"
	"go.uber.org/zap"
)

// ProfileHandler implements the user profile endpoints.
type ProfileHandler struct {
	service *service.ProfileService
	logger  *zap.Logger
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(service *service.ProfileService, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		service: service,
		logger:  logger,
	}
}

// CreateProfile handles POST /api/v1/profiles.
func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	var profile model.UserProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    "INVALID_INPUT",
			Message: "Invalid profile payload",
			Details: err.Error(),
		})
		return
	}

	created, err := h.service.Create(c.Request.Context(), &profile)
	if err != nil {
		h.logger.Error("failed to create profile", zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// GetProfile handles GET /api/v1/profiles/:id.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profile, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateProfile handles PUT /api/v1/profiles/:id.
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var profile model.UserProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    "INVALID_INPUT",
			Message: "Invalid profile payload",
			Details: err.Error(),
		})
		return
	}
	profile.ID = c.Param("id")

	updated, err := h.service.Update(c.Request.Context(), &profile)
	if err != nil {
		h.logger.Error("failed to update profile",
			zap.Error(err),
			zap.String("profile_id", profile.ID),
		)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// GetTargets handles GET /api/v1/profiles/:id/targets.
func (h *ProfileHandler) GetTargets(c *gin.Context) {
	targets, err := h.service.Targets(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, targets)
}
