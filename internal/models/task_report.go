package models

import (
	"time"

	"gorm.io/gorm"
)

// TaskReport is the performer's write-up for a completed task. The unique
// index on TaskID is the storage-level guarantee that at most one report
// exists per task; application pre-checks only produce friendlier errors.
// EfficiencyScore is computed once at creation and never updated.
type TaskReport struct {
	ID              uint64         `gorm:"primarykey" json:"id"`
	TaskID          *uint64        `gorm:"uniqueIndex" json:"task_id"`
	Text            string         `gorm:"type:text;not null" json:"text"`
	EfficiencyScore float64        `gorm:"not null" json:"efficiency_score"`
	IsAwarded       bool           `gorm:"not null;default:false" json:"is_awarded"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Task   *Task   `gorm:"foreignKey:TaskID;constraint:OnDelete:SET NULL" json:"task,omitempty"`
	Reward *Reward `gorm:"foreignKey:TaskReportID" json:"reward,omitempty"`
}
