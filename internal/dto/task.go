package dto

import (
	"time"

	"github.com/workreward/work-reward-api/internal/models"
	"github.com/workreward/work-reward-api/internal/utils"
)

// TaskDTO represents a task in API responses. Duration is exposed in
// whole seconds.
type TaskDTO struct {
	ID              uint64     `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Difficulty      int        `json:"difficulty"`
	DurationSeconds int64      `json:"duration_seconds"`
	StartedAt       *time.Time `json:"started_at"`
	CompletedAt     *time.Time `json:"completed_at"`
	CreatorID       *uint64    `json:"creator_id"`
	PerformerID     *uint64    `json:"performer_id"`
	CreatedAt       time.Time  `json:"created_at"`
	Creator         *UserDTO   `json:"creator,omitempty"`
	Performer       *UserDTO   `json:"performer,omitempty"`
}

// TaskListResponse represents a paginated list of tasks
type TaskListResponse struct {
	Tasks      []TaskDTO                `json:"tasks"`
	Pagination utils.PaginationResponse `json:"pagination"`
}

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	dto := TaskDTO{
		ID:              task.ID,
		Title:           task.Title,
		Description:     task.Description,
		Difficulty:      task.Difficulty,
		DurationSeconds: int64(task.Duration.Seconds()),
		StartedAt:       task.StartedAt,
		CompletedAt:     task.CompletedAt,
		CreatorID:       task.CreatorID,
		PerformerID:     task.PerformerID,
		CreatedAt:       task.CreatedAt,
	}

	// Include creator if preloaded
	if task.Creator != nil {
		creator := ToUserDTO(*task.Creator)
		dto.Creator = &creator
	}

	// Include performer if preloaded
	if task.Performer != nil {
		performer := ToUserDTO(*task.Performer)
		dto.Performer = &performer
	}

	return dto
}

// ToTaskListResponse converts a slice of tasks to TaskListResponse
func ToTaskListResponse(tasks []models.Task, params utils.PaginationParams, total int64) TaskListResponse {
	items := make([]TaskDTO, len(tasks))
	for i, task := range tasks {
		items[i] = ToTaskDTO(task)
	}

	return TaskListResponse{
		Tasks: items,
		Pagination: utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	}
}
