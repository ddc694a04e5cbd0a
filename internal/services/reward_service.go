package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/workreward/work-reward-api/internal/models"
	"github.com/workreward/work-reward-api/internal/repository"
	"gorm.io/gorm"
)

// RewardService guards reward issuance: exactly one reward per report,
// issued by the manager who created the task, amount derived from the
// report's efficiency score. Creating the reward and marking the report
// as awarded commit as one transaction.
type RewardService struct {
	rewardRepo repository.RewardRepository
	reportRepo repository.ReportRepository
	userRepo   repository.UserRepository
	notifier   Notifier
	params     RewardParams
}

// NewRewardService creates a new RewardService
func NewRewardService(rewardRepo repository.RewardRepository, reportRepo repository.ReportRepository, userRepo repository.UserRepository, notifier Notifier) *RewardService {
	return &RewardService{
		rewardRepo: rewardRepo,
		reportRepo: reportRepo,
		userRepo:   userRepo,
		notifier:   notifier,
		params:     DefaultRewardParams(),
	}
}

// CreateReward issues the reward for a report.
func (s *RewardService) CreateReward(reportID, issuerID uint64, comment string) (*models.Reward, error) {
	issuer, err := s.findUser(issuerID)
	if err != nil {
		return nil, err
	}
	if !issuer.IsManager() {
		return nil, ErrOnlyManagers
	}

	report, err := s.reportRepo.FindByID(reportID, "Task", "Task.Performer")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to find report: %w", err)
	}

	if report.Task == nil || report.Task.CreatorID == nil || *report.Task.CreatorID != issuer.ID {
		return nil, ErrNotTaskCreator
	}
	if strings.TrimSpace(comment) == "" {
		return nil, ErrCommentRequired
	}

	// Checked via reward existence rather than only the is_awarded flag;
	// the unique index on task_report_id closes the remaining race.
	if _, err := s.rewardRepo.FindByReportID(report.ID); err == nil {
		return nil, ErrRewardExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check for existing reward: %w", err)
	}

	reward := &models.Reward{
		Amount:  s.params.Amount(report.EfficiencyScore),
		Comment: comment,
	}

	if err := s.rewardRepo.CreateForReport(reward, report.ID); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrRewardExists
		}
		return nil, fmt.Errorf("failed to create reward: %w", err)
	}

	if report.Task.Performer != nil {
		notify(s.notifier, report.Task.Performer.Email,
			"Reward issued",
			fmt.Sprintf("Manager %s issued you a reward of %s for the task %q.\nComment: %s",
				issuer.FullName(), reward.Amount.StringFixed(2), report.Task.Title, comment))
	}

	return reward, nil
}

// MyRewards lists the rewards received by the acting performer.
func (s *RewardService) MyRewards(actorID uint64, page, pageSize int) ([]models.Reward, int64, error) {
	actor, err := s.findUser(actorID)
	if err != nil {
		return nil, 0, err
	}
	if actor.IsManager() {
		return nil, 0, ErrManagersNotAllowed
	}

	rewards, total, err := s.rewardRepo.ListByPerformer(actor.ID, page, pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list rewards: %w", err)
	}

	return rewards, total, nil
}

func (s *RewardService) findUser(id uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}
