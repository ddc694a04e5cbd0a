package dto

import (
	"time"

	"github.com/workreward/work-reward-api/internal/models"
	"github.com/workreward/work-reward-api/internal/utils"
)

// ReportDTO represents a task report in API responses
type ReportDTO struct {
	ID              uint64    `json:"id"`
	TaskID          *uint64   `json:"task_id"`
	Text            string    `json:"text"`
	EfficiencyScore float64   `json:"efficiency_score"`
	IsAwarded       bool      `json:"is_awarded"`
	CreatedAt       time.Time `json:"created_at"`
	Task            *TaskDTO  `json:"task,omitempty"`
}

// ReportListResponse represents a paginated list of reports
type ReportListResponse struct {
	Reports    []ReportDTO              `json:"reports"`
	Pagination utils.PaginationResponse `json:"pagination"`
}

// ToReportDTO converts a TaskReport model to ReportDTO
func ToReportDTO(report models.TaskReport) ReportDTO {
	dto := ReportDTO{
		ID:              report.ID,
		TaskID:          report.TaskID,
		Text:            report.Text,
		EfficiencyScore: report.EfficiencyScore,
		IsAwarded:       report.IsAwarded,
		CreatedAt:       report.CreatedAt,
	}

	if report.Task != nil {
		task := ToTaskDTO(*report.Task)
		dto.Task = &task
	}

	return dto
}

// ToReportListResponse converts a slice of reports to ReportListResponse
func ToReportListResponse(reports []models.TaskReport, params utils.PaginationParams, total int64) ReportListResponse {
	items := make([]ReportDTO, len(reports))
	for i, report := range reports {
		items[i] = ToReportDTO(report)
	}

	return ReportListResponse{
		Reports: items,
		Pagination: utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	}
}
