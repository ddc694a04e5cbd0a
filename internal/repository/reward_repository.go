package repository

import (
	"errors"
	"fmt"

	"github.com/workreward/work-reward-api/internal/models"
	"gorm.io/gorm"
)

// GormRewardRepository is a GORM implementation of RewardRepository
type GormRewardRepository struct {
	db *gorm.DB
}

var (
	// ErrMarkAwarded is returned when flipping the report's awarded flag fails inside the issuance transaction.
	ErrMarkAwarded = errors.New("reward repository: mark report awarded failed")
)

// NewRewardRepository creates a new RewardRepository
func NewRewardRepository(db *gorm.DB) RewardRepository {
	return &GormRewardRepository{db: db}
}

// CreateForReport creates the reward and marks the report as awarded
// atomically. A concurrent duplicate insert trips the unique index on
// task_report_id and rolls the whole transaction back.
func (r *GormRewardRepository) CreateForReport(reward *models.Reward, reportID uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		reward.TaskReportID = &reportID

		if err := tx.Create(reward).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.TaskReport{}).
			Where("id = ?", reportID).
			Update("is_awarded", true).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrMarkAwarded, err)
		}

		return nil
	})
}

// FindByReportID finds the reward issued for a report, if any
func (r *GormRewardRepository) FindByReportID(reportID uint64) (*models.Reward, error) {
	var reward models.Reward
	if err := r.db.Where("task_report_id = ?", reportID).First(&reward).Error; err != nil {
		return nil, err
	}
	return &reward, nil
}

// ListByPerformer lists rewards received by a performer, newest first
func (r *GormRewardRepository) ListByPerformer(performerID uint64, page, pageSize int) ([]models.Reward, int64, error) {
	var rewards []models.Reward

	performerSubQuery := r.db.Model(&models.TaskReport{}).
		Select("1").
		Joins("JOIN tasks ON tasks.id = task_reports.task_id").
		Where("task_reports.id = rewards.task_report_id").
		Where("tasks.performer_id = ?", performerID)

	query := r.db.Model(&models.Reward{}).Where("EXISTS (?)", performerSubQuery)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	listQuery := query.Order("rewards.created_at DESC")
	if page > 0 && pageSize > 0 {
		listQuery = listQuery.Offset((page - 1) * pageSize).Limit(pageSize)
	}

	if err := listQuery.Preload("TaskReport").Preload("TaskReport.Task").Find(&rewards).Error; err != nil {
		return nil, 0, err
	}

	return rewards, total, nil
}
