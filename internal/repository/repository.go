package repository

import (
	"time"

	"github.com/workreward/work-reward-api/internal/models"
)

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// FindByID finds a task by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Task, error)

	// List retrieves tasks with filtering and pagination
	List(filter TaskFilter) ([]models.Task, int64, error)

	// Assign sets the performer and start time on an unassigned task.
	// The update is guarded at the SQL level so two concurrent assigns
	// cannot both succeed; it reports whether the row was updated.
	Assign(taskID, performerID uint64, startedAt time.Time) (bool, error)

	// Complete stamps the completion time on an assigned, uncompleted
	// task, guarded the same way as Assign.
	Complete(taskID, performerID uint64, completedAt time.Time) (bool, error)
}

// TaskFilter holds filtering options for listing tasks
type TaskFilter struct {
	CreatorID   *uint64
	PerformerID *uint64
	Unassigned  bool
	Page        int
	PageSize    int
}

// ReportRepository defines the interface for task report data access
type ReportRepository interface {
	// Create persists a new report. The unique index on task_id makes
	// duplicate creation fail with gorm.ErrDuplicatedKey.
	Create(report *models.TaskReport) error

	// FindByID finds a report by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.TaskReport, error)

	// FindByTaskID finds the report belonging to a task, if any
	FindByTaskID(taskID uint64) (*models.TaskReport, error)

	// List retrieves reports with filtering and pagination
	List(filter ReportFilter) ([]models.TaskReport, int64, error)
}

// ReportFilter holds filtering options for listing reports
type ReportFilter struct {
	TaskCreatorID *uint64
	PerformerID   *uint64
	Page          int
	PageSize      int
}

// RewardRepository defines the interface for reward data access
type RewardRepository interface {
	// CreateForReport creates the reward and flips the owning report's
	// is_awarded flag in one transaction; both writes commit or neither.
	CreateForReport(reward *models.Reward, reportID uint64) error

	// FindByReportID finds the reward issued for a report, if any
	FindByReportID(reportID uint64) (*models.Reward, error)

	// ListByPerformer lists rewards received by a performer
	ListByPerformer(performerID uint64, page, pageSize int) ([]models.Reward, int64, error)
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// CreateManagerWithCode creates a manager account and consumes the
	// registration code within a single transaction.
	CreateManagerWithCode(user *models.User, code string) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)
}

// ManagerCodeRepository defines the interface for manager code data access
type ManagerCodeRepository interface {
	// Create persists a freshly generated code
	Create(code *models.ManagerCode) error
}
