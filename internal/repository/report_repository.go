package repository

import (
	"github.com/workreward/work-reward-api/internal/models"
	"gorm.io/gorm"
)

// GormReportRepository is a GORM implementation of ReportRepository
type GormReportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new ReportRepository
func NewReportRepository(db *gorm.DB) ReportRepository {
	return &GormReportRepository{db: db}
}

// Create persists a new report. Duplicate reports for the same task are
// rejected by the unique index on task_id.
func (r *GormReportRepository) Create(report *models.TaskReport) error {
	return r.db.Create(report).Error
}

// FindByID finds a report by ID with optional preloading
func (r *GormReportRepository) FindByID(id uint64, preload ...string) (*models.TaskReport, error) {
	var report models.TaskReport
	query := r.db

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&report, id).Error; err != nil {
		return nil, err
	}

	return &report, nil
}

// FindByTaskID finds the report belonging to a task, if any
func (r *GormReportRepository) FindByTaskID(taskID uint64) (*models.TaskReport, error) {
	var report models.TaskReport
	if err := r.db.Where("task_id = ?", taskID).First(&report).Error; err != nil {
		return nil, err
	}
	return &report, nil
}

// List retrieves reports with filtering and pagination
func (r *GormReportRepository) List(filter ReportFilter) ([]models.TaskReport, int64, error) {
	var reports []models.TaskReport

	query := r.db.Model(&models.TaskReport{})

	if filter.TaskCreatorID != nil {
		creatorSubQuery := r.db.Model(&models.Task{}).
			Select("1").
			Where("tasks.id = task_reports.task_id").
			Where("tasks.creator_id = ?", *filter.TaskCreatorID)
		query = query.Where("EXISTS (?)", creatorSubQuery)
	}
	if filter.PerformerID != nil {
		performerSubQuery := r.db.Model(&models.Task{}).
			Select("1").
			Where("tasks.id = task_reports.task_id").
			Where("tasks.performer_id = ?", *filter.PerformerID)
		query = query.Where("EXISTS (?)", performerSubQuery)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	listQuery := query.Order("task_reports.created_at DESC")
	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		listQuery = listQuery.Offset(offset).Limit(filter.PageSize)
	}

	if err := listQuery.Preload("Task").Find(&reports).Error; err != nil {
		return nil, 0, err
	}

	return reports, total, nil
}
