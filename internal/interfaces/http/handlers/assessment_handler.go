// Package handlers contains the gin HTTP handlers of the service.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/veilscan/veilscan/internal/application/dto"
	appservice "github.com/veilscan/veilscan/internal/application/service"
	"github.com/veilscan/veilscan/pkg/errors"
	"github.com/veilscan/veilscan/pkg/logger"
)

// AssessmentHandler serves the assessment endpoints.
type AssessmentHandler struct {
	assessments appservice.AssessmentAppService
	log         logger.Logger
}

// NewAssessmentHandler creates a new AssessmentHandler.
func NewAssessmentHandler(assessments appservice.AssessmentAppService, log logger.Logger) *AssessmentHandler {
	return &AssessmentHandler{
		assessments: assessments,
		log:         log.WithComponent("assessment_handler"),
	}
}

// Assess evaluates an evidence document and returns the risk report.
// POST /api/v1/assessments
func (h *AssessmentHandler) Assess(c *gin.Context) {
	var req dto.AssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := errors.ErrInvalidRequest("request body is not a valid evidence document").WithError(err)
		c.JSON(appErr.HTTPStatus, dto.ErrorResponse(appErr, traceID(c)))
		return
	}

	report, err := h.assessments.Assess(c.Request.Context(), &req)
	if err != nil {
		appErr := errors.AsAppError(err)
		c.JSON(appErr.HTTPStatus, dto.ErrorResponse(appErr, traceID(c)))
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse(report, traceID(c)))
}

// GetReport returns a recently produced report by id.
// GET /api/v1/assessments/:id
func (h *AssessmentHandler) GetReport(c *gin.Context) {
	report, err := h.assessments.GetReport(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := errors.AsAppError(err)
		c.JSON(appErr.HTTPStatus, dto.ErrorResponse(appErr, traceID(c)))
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse(report, traceID(c)))
}

// traceID extracts the current trace id for response correlation. Empty when
// tracing is disabled.
func traceID(c *gin.Context) string {
	spanCtx := trace.SpanContextFromContext(c.Request.Context())
	if !spanCtx.HasTraceID() {
		return ""
	}
	return spanCtx.TraceID().String()
}
