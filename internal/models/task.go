package models

import (
	"time"

	"gorm.io/gorm"
)

// Task lifecycle is append-only: once a performer is set it is never
// reassigned, and a completed task never becomes incomplete again.
// The state (unassigned / assigned / completed) is derived from
// PerformerID and CompletedAt rather than stored separately.
type Task struct {
	ID          uint64         `gorm:"primarykey" json:"id"`
	Title       string         `gorm:"type:varchar(255);uniqueIndex;not null" json:"title"`
	Description string         `gorm:"type:text;not null" json:"description"`
	Difficulty  int            `gorm:"not null" json:"difficulty"`
	Duration    time.Duration  `gorm:"not null" json:"-"`
	StartedAt   *time.Time     `json:"started_at"`
	CompletedAt *time.Time     `json:"completed_at"`
	CreatorID   *uint64        `json:"creator_id"`
	PerformerID *uint64        `json:"performer_id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Creator   *User       `gorm:"foreignKey:CreatorID;constraint:OnDelete:SET NULL" json:"creator,omitempty"`
	Performer *User       `gorm:"foreignKey:PerformerID;constraint:OnDelete:SET NULL" json:"performer,omitempty"`
	Report    *TaskReport `gorm:"foreignKey:TaskID" json:"report,omitempty"`
}

// IsAssigned reports whether a performer has taken or been assigned the task.
func (t *Task) IsAssigned() bool {
	return t.PerformerID != nil
}

// IsCompleted reports whether the performer has marked the task complete.
func (t *Task) IsCompleted() bool {
	return t.CompletedAt != nil
}
