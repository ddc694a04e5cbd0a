package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/workreward/work-reward-api/internal/models"
	"github.com/workreward/work-reward-api/internal/repository"
	"gorm.io/gorm"
)

// ReportService guards report issuance: exactly one report per task, only
// by the task's performer, only after completion. The efficiency score is
// computed once here and never recomputed.
type ReportService struct {
	reportRepo repository.ReportRepository
	taskRepo   repository.TaskRepository
	userRepo   repository.UserRepository
	notifier   Notifier
	efficiency EfficiencyParams
}

// NewReportService creates a new ReportService
func NewReportService(reportRepo repository.ReportRepository, taskRepo repository.TaskRepository, userRepo repository.UserRepository, notifier Notifier) *ReportService {
	return &ReportService{
		reportRepo: reportRepo,
		taskRepo:   taskRepo,
		userRepo:   userRepo,
		notifier:   notifier,
		efficiency: DefaultEfficiencyParams(),
	}
}

// ListReportsInput represents filters for listing reports
type ListReportsInput struct {
	ActorID  uint64
	Page     int
	PageSize int
}

// CreateReport creates the report for a completed task, computing the
// performer's efficiency from the task's stored timestamps.
func (s *ReportService) CreateReport(taskID, authorID uint64, text string) (*models.TaskReport, error) {
	author, err := s.findUser(authorID)
	if err != nil {
		return nil, err
	}
	if author.IsManager() {
		return nil, ErrManagersNotAllowed
	}

	task, err := s.taskRepo.FindByID(taskID, "Creator")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	if task.PerformerID == nil || *task.PerformerID != author.ID {
		return nil, ErrNotTaskPerformer
	}
	if !task.IsCompleted() {
		return nil, ErrTaskNotCompleted
	}
	if strings.TrimSpace(text) == "" {
		return nil, ErrReportTextRequired
	}

	// Friendly pre-check; the unique index on task_id is what actually
	// prevents two racing creations from both succeeding.
	if _, err := s.reportRepo.FindByTaskID(task.ID); err == nil {
		return nil, ErrReportExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check for existing report: %w", err)
	}

	report := &models.TaskReport{
		TaskID:          &task.ID,
		Text:            text,
		EfficiencyScore: s.efficiency.Score(task.Duration, *task.StartedAt, *task.CompletedAt, task.Difficulty),
	}

	if err := s.reportRepo.Create(report); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrReportExists
		}
		return nil, fmt.Errorf("failed to create report: %w", err)
	}

	if task.Creator != nil {
		notify(s.notifier, task.Creator.Email,
			"Task completed, report submitted",
			fmt.Sprintf("Performer %s completed the task %q and submitted a report.", author.FullName(), task.Title))
	}

	return s.reportRepo.FindByID(report.ID, "Task")
}

// GetReport returns a report visible to the actor: its author or the
// creator of the reported task.
func (s *ReportService) GetReport(reportID, actorID uint64) (*models.TaskReport, error) {
	report, err := s.reportRepo.FindByID(reportID, "Task", "Task.Creator", "Task.Performer", "Reward")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to find report: %w", err)
	}

	if !s.canViewReport(report, actorID) {
		return nil, ErrNotReportParty
	}

	return report, nil
}

// ListReports returns the reports visible to the actor: managers see
// reports on tasks they created, performers see reports they wrote.
func (s *ReportService) ListReports(input ListReportsInput) ([]models.TaskReport, int64, error) {
	actor, err := s.findUser(input.ActorID)
	if err != nil {
		return nil, 0, err
	}

	filter := repository.ReportFilter{
		Page:     input.Page,
		PageSize: input.PageSize,
	}
	if actor.IsManager() {
		filter.TaskCreatorID = &actor.ID
	} else {
		filter.PerformerID = &actor.ID
	}

	reports, total, err := s.reportRepo.List(filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list reports: %w", err)
	}

	return reports, total, nil
}

func (s *ReportService) canViewReport(report *models.TaskReport, actorID uint64) bool {
	if report.Task == nil {
		return false
	}
	if report.Task.PerformerID != nil && *report.Task.PerformerID == actorID {
		return true
	}
	if report.Task.CreatorID != nil && *report.Task.CreatorID == actorID {
		return true
	}
	return false
}

func (s *ReportService) findUser(id uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}
