package repository

import (
	"time"

	"github.com/workreward/work-reward-api/internal/models"
	"gorm.io/gorm"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create creates a new task
func (r *GormTaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// FindByID finds a task by ID with optional preloading
func (r *GormTaskRepository) FindByID(id uint64, preload ...string) (*models.Task, error) {
	var task models.Task
	query := r.db

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&task, id).Error; err != nil {
		return nil, err
	}

	return &task, nil
}

// List retrieves tasks with filtering and pagination
func (r *GormTaskRepository) List(filter TaskFilter) ([]models.Task, int64, error) {
	var tasks []models.Task

	query := r.db.Model(&models.Task{})

	if filter.CreatorID != nil {
		query = query.Where("tasks.creator_id = ?", *filter.CreatorID)
	}
	if filter.PerformerID != nil {
		query = query.Where("tasks.performer_id = ?", *filter.PerformerID)
	}
	if filter.Unassigned {
		query = query.Where("tasks.performer_id IS NULL")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	listQuery := query.Order("tasks.created_at DESC")
	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		listQuery = listQuery.Offset(offset).Limit(filter.PageSize)
	}

	if err := listQuery.Preload("Creator").Preload("Performer").Find(&tasks).Error; err != nil {
		return nil, 0, err
	}

	return tasks, total, nil
}

// Assign sets the performer on an unassigned task. The WHERE clause is the
// actual race guard: of two concurrent assigns only one matches the row.
func (r *GormTaskRepository) Assign(taskID, performerID uint64, startedAt time.Time) (bool, error) {
	res := r.db.Model(&models.Task{}).
		Where("id = ? AND performer_id IS NULL AND completed_at IS NULL", taskID).
		Updates(map[string]interface{}{
			"performer_id": performerID,
			"started_at":   startedAt,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Complete stamps completed_at on the performer's assigned task, guarded
// against double completion the same way Assign is guarded.
func (r *GormTaskRepository) Complete(taskID, performerID uint64, completedAt time.Time) (bool, error) {
	res := r.db.Model(&models.Task{}).
		Where("id = ? AND performer_id = ? AND completed_at IS NULL", taskID, performerID).
		Update("completed_at", completedAt)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
