package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"hostel-management-backend/internal/analytics"
	"hostel-management-backend/internal/service"
	"hostel-management-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ReportHandler serves the dashboard, the reports screen and CSV exports
type ReportHandler struct {
	dashboardService *service.DashboardService
	reportService    *service.ReportService
	now              service.Clock
}

func NewReportHandler(dashboardService *service.DashboardService, reportService *service.ReportService, now service.Clock) *ReportHandler {
	if now == nil {
		now = time.Now
	}
	return &ReportHandler{
		dashboardService: dashboardService,
		reportService:    reportService,
		now:              now,
	}
}

// GetDashboard returns the overview cards, charts and feeds
func (h *ReportHandler) GetDashboard(c *gin.Context) {
	dashboard, err := h.dashboardService.Get(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to build dashboard")
		return
	}

	utils.SuccessResponse(c, dashboard)
}

// GetReport returns KPIs and breakdowns for ?period=week|month|quarter|year and ?hostel=all|<id>
func (h *ReportHandler) GetReport(c *gin.Context) {
	period, err := analytics.ParsePeriod(c.Query("period"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	hostelID, ok := queryID(c, "hostel")
	if !ok {
		return
	}

	report, err := h.reportService.Report(c.Request.Context(), service.ReportFilter{Period: period, HostelID: hostelID})
	if err != nil {
		respondError(c, err, "Failed to build report")
		return
	}

	utils.SuccessResponse(c, report)
}

// ExportDataset downloads one collection as CSV
func (h *ReportHandler) ExportDataset(c *gin.Context) {
	dataset := c.Param("dataset")

	var buf bytes.Buffer
	if err := h.reportService.Export(c.Request.Context(), dataset, &buf); err != nil {
		respondError(c, err, "Failed to export "+dataset)
		return
	}

	filename := fmt.Sprintf("%s-%s.csv", dataset, h.now.Today())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
