package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Reward is the monetary award issued for a task report. Amount is stored
// as decimal(7,2); the cap of 10000.00 fits within that precision. The
// unique index on TaskReportID enforces one reward per report.
type Reward struct {
	ID           uint64          `gorm:"primarykey" json:"id"`
	TaskReportID *uint64         `gorm:"uniqueIndex" json:"task_report_id"`
	Amount       decimal.Decimal `gorm:"type:decimal(7,2);not null" json:"amount"`
	Comment      string          `gorm:"type:text;not null" json:"comment"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	DeletedAt    gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relations
	TaskReport *TaskReport `gorm:"foreignKey:TaskReportID;constraint:OnDelete:SET NULL" json:"task_report,omitempty"`
}
