package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/workreward/work-reward-api/internal/constants"
	"github.com/workreward/work-reward-api/internal/models"
	"github.com/workreward/work-reward-api/internal/repository"
	"gorm.io/gorm"
)

// TaskService governs the task lifecycle: creation by managers, assignment
// or self-assignment to a performer, and completion. Transitions are
// append-only; there is no unassign, no reassign and no un-complete.
type TaskService struct {
	taskRepo repository.TaskRepository
	userRepo repository.UserRepository
	notifier Notifier
	now      func() time.Time
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository, userRepo repository.UserRepository, notifier Notifier) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
		userRepo: userRepo,
		notifier: notifier,
		now:      time.Now,
	}
}

// CreateTaskInput represents input for creating a task
type CreateTaskInput struct {
	Title       string
	Description string
	Difficulty  int
	Duration    time.Duration
	CreatorID   uint64
	PerformerID *uint64
}

// ListTasksInput represents filters for listing tasks
type ListTasksInput struct {
	ActorID  uint64
	Page     int
	PageSize int
}

// CreateTask creates a new task. Only managers create tasks; an optional
// performer may be assigned immediately, which also stamps the start time.
func (s *TaskService) CreateTask(input CreateTaskInput) (*models.Task, error) {
	actor, err := s.findUser(input.CreatorID)
	if err != nil {
		return nil, err
	}
	if !actor.IsManager() {
		return nil, ErrOnlyManagers
	}

	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrTitleRequired
	}
	if strings.TrimSpace(input.Description) == "" {
		return nil, ErrDescriptionRequired
	}
	if input.Difficulty < constants.MinDifficulty || input.Difficulty > constants.MaxDifficulty {
		return nil, ErrInvalidDifficulty
	}
	if input.Duration <= 0 {
		return nil, ErrInvalidDuration
	}

	var performer *models.User
	if input.PerformerID != nil {
		performer, err = s.validatePerformer(*input.PerformerID)
		if err != nil {
			return nil, err
		}
	}

	task := &models.Task{
		Title:       input.Title,
		Description: input.Description,
		Difficulty:  input.Difficulty,
		Duration:    input.Duration,
		CreatorID:   &input.CreatorID,
	}

	if performer != nil {
		startedAt := s.now()
		task.PerformerID = &performer.ID
		task.StartedAt = &startedAt
	}

	if err := s.taskRepo.Create(task); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrTitleTaken
		}
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	if performer != nil {
		notify(s.notifier, performer.Email,
			"Task assignment",
			fmt.Sprintf("Manager %s assigned you to the task %q.", actor.FullName(), task.Title))
	}

	return s.taskRepo.FindByID(task.ID, "Creator", "Performer")
}

// GetTask returns a task with related data
func (s *TaskService) GetTask(taskID uint64) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(taskID, "Creator", "Performer", "Report")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	return task, nil
}

// ListTasks returns the tasks visible to the actor: managers see tasks
// they created, performers see tasks still open for taking.
func (s *TaskService) ListTasks(input ListTasksInput) ([]models.Task, int64, error) {
	actor, err := s.findUser(input.ActorID)
	if err != nil {
		return nil, 0, err
	}

	filter := repository.TaskFilter{
		Page:     input.Page,
		PageSize: input.PageSize,
	}
	if actor.IsManager() {
		filter.CreatorID = &actor.ID
	} else {
		filter.Unassigned = true
	}

	tasks, total, err := s.taskRepo.List(filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tasks: %w", err)
	}

	return tasks, total, nil
}

// MyTasks returns the tasks assigned to the acting performer.
func (s *TaskService) MyTasks(input ListTasksInput) ([]models.Task, int64, error) {
	actor, err := s.findUser(input.ActorID)
	if err != nil {
		return nil, 0, err
	}
	if actor.IsManager() {
		return nil, 0, ErrManagersNotAllowed
	}

	tasks, total, err := s.taskRepo.List(repository.TaskFilter{
		PerformerID: &actor.ID,
		Page:        input.Page,
		PageSize:    input.PageSize,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tasks: %w", err)
	}

	return tasks, total, nil
}

// Take self-assigns an unassigned task to the acting performer and stamps
// the start time.
func (s *TaskService) Take(taskID, actorID uint64) (*models.Task, error) {
	actor, err := s.findUser(actorID)
	if err != nil {
		return nil, err
	}
	if actor.IsManager() {
		return nil, ErrManagersNotAllowed
	}
	if !actor.IsActive {
		return nil, ErrUserInactive
	}

	task, err := s.GetTask(taskID)
	if err != nil {
		return nil, err
	}
	if task.IsAssigned() {
		return nil, ErrTaskAlreadyAssigned
	}

	return s.assignPerformer(task.ID, actor.ID)
}

// Assign gives an unassigned task to an active performer. Only the task's
// creating manager may assign.
func (s *TaskService) Assign(taskID, performerID, actorID uint64) (*models.Task, error) {
	actor, err := s.findUser(actorID)
	if err != nil {
		return nil, err
	}
	if !actor.IsManager() {
		return nil, ErrOnlyManagers
	}

	task, err := s.GetTask(taskID)
	if err != nil {
		return nil, err
	}
	if task.CreatorID == nil || *task.CreatorID != actor.ID {
		return nil, ErrNotTaskCreator
	}
	if task.IsAssigned() {
		return nil, ErrTaskAlreadyAssigned
	}

	performer, err := s.validatePerformer(performerID)
	if err != nil {
		return nil, err
	}

	assigned, err := s.assignPerformer(task.ID, performer.ID)
	if err != nil {
		return nil, err
	}

	notify(s.notifier, performer.Email,
		"Task assignment",
		fmt.Sprintf("Manager %s assigned you to the task %q.", actor.FullName(), assigned.Title))

	return assigned, nil
}

// Complete marks the actor's assigned task as done and stamps the
// completion time. Completion is terminal.
func (s *TaskService) Complete(taskID, actorID uint64) (*models.Task, error) {
	actor, err := s.findUser(actorID)
	if err != nil {
		return nil, err
	}
	if actor.IsManager() {
		return nil, ErrManagersNotAllowed
	}

	task, err := s.GetTask(taskID)
	if err != nil {
		return nil, err
	}
	if task.IsCompleted() {
		return nil, ErrTaskAlreadyCompleted
	}
	if !task.IsAssigned() {
		return nil, ErrTaskNotAssigned
	}
	if *task.PerformerID != actor.ID {
		return nil, ErrNotTaskPerformer
	}

	completed, err := s.taskRepo.Complete(task.ID, actor.ID, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to complete task: %w", err)
	}
	if !completed {
		// Lost the race against another completion of the same row.
		return nil, ErrTaskAlreadyCompleted
	}

	return s.GetTask(task.ID)
}

// assignPerformer runs the guarded assignment update and reloads the task.
func (s *TaskService) assignPerformer(taskID, performerID uint64) (*models.Task, error) {
	assigned, err := s.taskRepo.Assign(taskID, performerID, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to assign task: %w", err)
	}
	if !assigned {
		return nil, ErrTaskAlreadyAssigned
	}

	return s.GetTask(taskID)
}

// validatePerformer checks that the target user is an active performer.
func (s *TaskService) validatePerformer(performerID uint64) (*models.User, error) {
	performer, err := s.userRepo.FindByID(performerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPerformerNotFound
		}
		return nil, fmt.Errorf("failed to find performer: %w", err)
	}
	if performer.IsManager() {
		return nil, ErrPerformerIsManager
	}
	if !performer.IsActive {
		return nil, ErrPerformerInactive
	}
	return performer, nil
}

func (s *TaskService) findUser(id uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}
