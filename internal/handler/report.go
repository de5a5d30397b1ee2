package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nutriplan/nutriplan-backend/internal/pdf"
	"github.com/nutriplan/nutriplan-backend/internal/service"
	"go.uber.org/zap"
)

// ReportHandler implements the report, summary, and export endpoints.
type ReportHandler struct {
	reports  *service.ReportService
	plans    *service.PlanService
	profiles *service.ProfileService
	exporter *pdf.PlanExporter
	logger   *zap.Logger
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(
	reports *service.ReportService,
	plans *service.PlanService,
	profiles *service.ProfileService,
	exporter *pdf.PlanExporter,
	logger *zap.Logger,
) *ReportHandler {
	return &ReportHandler{
		reports:  reports,
		plans:    plans,
		profiles: profiles,
		exporter: exporter,
		logger:   logger,
	}
}

// DailyReport handles GET /api/v1/plans/:id/days/:day/report.
func (h *ReportHandler) DailyReport(c *gin.Context) {
	day, err := strconv.Atoi(c.Param("day"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    "INVALID_INPUT",
			Message: "day must be an integer",
		})
		return
	}

	userID := requestUserID(c)
	profile, err := h.profiles.Get(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	report, err := h.reports.DailyReport(c.Request.Context(), userID, c.Param("id"), day, profile)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// Summary handles GET /api/v1/plans/:id/summary.
func (h *ReportHandler) Summary(c *gin.Context) {
	userID := requestUserID(c)
	profile, err := h.profiles.Get(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	summary, err := h.reports.Summary(c.Request.Context(), userID, c.Param("id"), profile)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// Export handles GET /api/v1/plans/:id/export and streams the plan PDF.
func (h *ReportHandler) Export(c *gin.Context) {
	plan, err := h.plans.Get(c.Request.Context(), requestUserID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	pdfBytes, err := h.exporter.Export(plan)
	if err != nil {
		h.logger.Error("failed to export plan PDF",
			zap.Error(err),
			zap.String("plan_id", plan.ID),
		)
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", plan.Name+".pdf"))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
