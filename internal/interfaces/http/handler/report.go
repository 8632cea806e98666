package handler

import (
	"github.com/gin-gonic/gin"
	appreport "github.com/quantivo/backend/internal/application/report"
)

// ReportHandler handles business report HTTP requests
type ReportHandler struct {
	BaseHandler
	reportService *appreport.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *appreport.ReportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// Summary returns the caller's business totals
func (h *ReportHandler) Summary(c *gin.Context) {
	ownerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	summary, err := h.reportService.Summary(c.Request.Context(), ownerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, summary)
}

// Chart returns the caller's daily revenue/profit series
func (h *ReportHandler) Chart(c *gin.Context) {
	ownerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	series, err := h.reportService.Chart(c.Request.Context(), ownerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, series)
}
