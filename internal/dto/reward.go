package dto

import (
	"time"

	"github.com/workreward/work-reward-api/internal/models"
	"github.com/workreward/work-reward-api/internal/utils"
)

// RewardDTO represents a reward in API responses. Amount is serialized as
// a fixed two-decimal string to keep monetary precision on the wire.
type RewardDTO struct {
	ID           uint64     `json:"id"`
	TaskReportID *uint64    `json:"task_report_id"`
	Amount       string     `json:"amount"`
	Comment      string     `json:"comment"`
	CreatedAt    time.Time  `json:"created_at"`
	TaskReport   *ReportDTO `json:"task_report,omitempty"`
}

// RewardListResponse represents a paginated list of rewards
type RewardListResponse struct {
	Rewards    []RewardDTO              `json:"rewards"`
	Pagination utils.PaginationResponse `json:"pagination"`
}

// ToRewardDTO converts a Reward model to RewardDTO
func ToRewardDTO(reward models.Reward) RewardDTO {
	dto := RewardDTO{
		ID:           reward.ID,
		TaskReportID: reward.TaskReportID,
		Amount:       reward.Amount.StringFixed(2),
		Comment:      reward.Comment,
		CreatedAt:    reward.CreatedAt,
	}

	if reward.TaskReport != nil {
		report := ToReportDTO(*reward.TaskReport)
		dto.TaskReport = &report
	}

	return dto
}

// ToRewardListResponse converts a slice of rewards to RewardListResponse
func ToRewardListResponse(rewards []models.Reward, params utils.PaginationParams, total int64) RewardListResponse {
	items := make([]RewardDTO, len(rewards))
	for i, reward := range rewards {
		items[i] = ToRewardDTO(reward)
	}

	return RewardListResponse{
		Rewards: items,
		Pagination: utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	}
}
