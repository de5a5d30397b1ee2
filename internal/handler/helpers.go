package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nutriplan/nutriplan-backend/internal/service"
)

// ErrorResponse is the JSON error body returned by every endpoint.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// respondError maps service sentinel errors onto HTTP status codes. Anything
// unrecognized is an internal error; details are withheld for those.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    "INVALID_INPUT",
			Message: "Request failed validation",
			Details: err.Error(),
		})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{
			Code:    "NOT_FOUND",
			Message: "Resource not found",
			Details: err.Error(),
		})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{
			Code:    "FORBIDDEN",
			Message: "Operation not permitted",
			Details: err.Error(),
		})
	case errors.Is(err, service.ErrPlanActive):
		c.JSON(http.StatusConflict, ErrorResponse{
			Code:    "PLAN_ACTIVE",
			Message: "Active plans cannot be deleted",
			Details: err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    "INTERNAL_ERROR",
			Message: "An internal error occurred",
		})
	}
}

// requestUserID resolves the acting user. Authentication is handled by the
// hosted backend in front of this service; it forwards the identity in a
// header.
func requestUserID(c *gin.Context) string {
	return c.GetHeader("X-User-ID")
}
