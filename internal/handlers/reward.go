package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/workreward/work-reward-api/internal/dto"
	apierrors "github.com/workreward/work-reward-api/internal/errors"
	"github.com/workreward/work-reward-api/internal/middleware"
	"github.com/workreward/work-reward-api/internal/services"
	"github.com/workreward/work-reward-api/internal/utils"
)

type RewardHandler struct {
	rewardService *services.RewardService
}

func NewRewardHandler(rewardService *services.RewardService) *RewardHandler {
	return &RewardHandler{
		rewardService: rewardService,
	}
}

// CreateReward issues the reward for a report (creator manager only)
func (h *RewardHandler) CreateReward(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	reportID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	type CreateRewardRequest struct {
		Comment string `json:"comment" binding:"required"`
	}

	var req CreateRewardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "")
		return
	}

	reward, err := h.rewardService.CreateReward(reportID, userID, req.Comment)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToRewardDTO(*reward))
}

// MyRewards lists the rewards received by the current performer
func (h *RewardHandler) MyRewards(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	params := utils.GetPaginationParams(c)

	rewards, total, err := h.rewardService.MyRewards(userID, params.Page, params.Limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRewardListResponse(rewards, params, total))
}
