package handlers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/workreward/work-reward-api/internal/dto"
	apierrors "github.com/workreward/work-reward-api/internal/errors"
	"github.com/workreward/work-reward-api/internal/middleware"
	"github.com/workreward/work-reward-api/internal/services"
	"github.com/workreward/work-reward-api/internal/utils"
)

type ReportHandler struct {
	reportService *services.ReportService
}

func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// CreateReport submits the report for a completed task
func (h *ReportHandler) CreateReport(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	type CreateReportRequest struct {
		Text string `json:"text" binding:"required"`
	}

	var req CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "")
		return
	}

	report, err := h.reportService.CreateReport(taskID, userID, req.Text)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToReportDTO(*report))
}

// ListReports returns the reports visible to the current user
func (h *ReportHandler) ListReports(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	params := utils.GetPaginationParams(c)

	reports, total, err := h.reportService.ListReports(services.ListReportsInput{
		ActorID:  userID,
		Page:     params.Page,
		PageSize: params.Limit,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReportListResponse(reports, params, total))
}

// GetReport returns a specific report by ID
func (h *ReportHandler) GetReport(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	reportID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	report, err := h.reportService.GetReport(reportID, userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReportDTO(*report))
}

// DownloadReportPDF streams a PDF rendition of the report
func (h *ReportHandler) DownloadReportPDF(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	reportID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	report, err := h.reportService.GetReport(reportID, userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := services.BuildReportPDF(report, &buf); err != nil {
		apierrors.InternalError(c, "Failed to render report")
		return
	}

	filename := fmt.Sprintf("task-report-%d.pdf", report.ID)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
