package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"github.com/workreward/work-reward-api/internal/models"
	"github.com/workreward/work-reward-api/internal/repository"
	"gorm.io/gorm"
)

// RewardServiceTestSuite defines the test suite for RewardService
type RewardServiceTestSuite struct {
	suite.Suite
	db       *gorm.DB
	service  *RewardService
	notifier *recordingNotifier

	manager   *models.User
	performer *models.User
	task      *models.Task
	report    *models.TaskReport
}

// SetupTest runs before each test
func (suite *RewardServiceTestSuite) SetupTest() {
	var err error
	suite.db, err = newTestDB()
	suite.Require().NoError(err)

	suite.notifier = &recordingNotifier{}
	suite.service = NewRewardService(
		repository.NewRewardRepository(suite.db),
		repository.NewReportRepository(suite.db),
		repository.NewUserRepository(suite.db),
		suite.notifier,
	)

	suite.manager = suite.createUser("manager@example.com", models.RoleManager)
	suite.performer = suite.createUser("performer@example.com", models.RolePerformer)
	suite.task, suite.report = suite.createReportedTask("Ship the release", 1.536)
}

// TearDownTest runs after each test
func (suite *RewardServiceTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *RewardServiceTestSuite) createUser(email string, role models.UserRole) *models.User {
	user := &models.User{
		Email:        email,
		PasswordHash: "hashedpassword",
		FirstName:    "Test",
		LastName:     "User",
		Role:         role,
		IsActive:     true,
	}
	suite.Require().NoError(suite.db.Create(user).Error)
	return user
}

// createReportedTask creates a completed task by suite.performer with a
// report carrying the given efficiency score.
func (suite *RewardServiceTestSuite) createReportedTask(title string, score float64) (*models.Task, *models.TaskReport) {
	startedAt := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	completedAt := startedAt.Add(100 * time.Minute)

	task := &models.Task{
		Title:       title,
		Description: "Test Description",
		Difficulty:  3,
		Duration:    2 * time.Hour,
		CreatorID:   &suite.manager.ID,
		PerformerID: &suite.performer.ID,
		StartedAt:   &startedAt,
		CompletedAt: &completedAt,
	}
	suite.Require().NoError(suite.db.Create(task).Error)

	report := &models.TaskReport{
		TaskID:          &task.ID,
		Text:            "All done.",
		EfficiencyScore: score,
	}
	suite.Require().NoError(suite.db.Create(report).Error)

	return task, report
}

// TestCreateReward_Success tests reward issuance: amount derived from the
// score and the report flipped to awarded in the same transaction
func (suite *RewardServiceTestSuite) TestCreateReward_Success() {
	reward, err := suite.service.CreateReward(suite.report.ID, suite.manager.ID, "Great work")

	suite.Require().NoError(err)
	// 500 * 1.536 = 768.00
	assert.Equal(suite.T(), "768.00", reward.Amount.StringFixed(2))
	assert.Equal(suite.T(), suite.report.ID, *reward.TaskReportID)
	assert.Equal(suite.T(), "Great work", reward.Comment)

	var report models.TaskReport
	suite.Require().NoError(suite.db.First(&report, suite.report.ID).Error)
	assert.True(suite.T(), report.IsAwarded)

	// The performer is notified with the exact amount
	suite.Require().Len(suite.notifier.sent, 1)
	assert.Equal(suite.T(), suite.performer.Email, suite.notifier.sent[0].To)
	assert.Contains(suite.T(), suite.notifier.sent[0].Body, "768.00")
}

// TestCreateReward_Capped tests the amount cap
func (suite *RewardServiceTestSuite) TestCreateReward_Capped() {
	_, bigReport := suite.createReportedTask("Heroic task", 25)

	reward, err := suite.service.CreateReward(bigReport.ID, suite.manager.ID, "Outstanding")

	suite.Require().NoError(err)
	assert.Equal(suite.T(), "10000.00", reward.Amount.StringFixed(2))
}

// TestCreateReward_Duplicate tests that a report gets at most one reward
func (suite *RewardServiceTestSuite) TestCreateReward_Duplicate() {
	_, err := suite.service.CreateReward(suite.report.ID, suite.manager.ID, "Great work")
	suite.Require().NoError(err)

	_, err = suite.service.CreateReward(suite.report.ID, suite.manager.ID, "Again")
	assert.ErrorIs(suite.T(), err, ErrRewardExists)
	assert.ErrorIs(suite.T(), err, ErrConflict)

	var count int64
	suite.Require().NoError(suite.db.Model(&models.Reward{}).Where("task_report_id = ?", suite.report.ID).Count(&count).Error)
	assert.Equal(suite.T(), int64(1), count)

	var report models.TaskReport
	suite.Require().NoError(suite.db.First(&report, suite.report.ID).Error)
	assert.True(suite.T(), report.IsAwarded)
}

// TestCreateReward_NotCreator tests issuance by a manager who did not
// create the task
func (suite *RewardServiceTestSuite) TestCreateReward_NotCreator() {
	other := suite.createUser("other@example.com", models.RoleManager)

	_, err := suite.service.CreateReward(suite.report.ID, other.ID, "Not my task")

	assert.ErrorIs(suite.T(), err, ErrNotTaskCreator)
	assert.ErrorIs(suite.T(), err, ErrPermissionDenied)
}

// TestCreateReward_PerformerForbidden tests issuance by a performer
func (suite *RewardServiceTestSuite) TestCreateReward_PerformerForbidden() {
	_, err := suite.service.CreateReward(suite.report.ID, suite.performer.ID, "Self reward")

	assert.ErrorIs(suite.T(), err, ErrOnlyManagers)
}

// TestCreateReward_EmptyComment tests comment validation
func (suite *RewardServiceTestSuite) TestCreateReward_EmptyComment() {
	_, err := suite.service.CreateReward(suite.report.ID, suite.manager.ID, "  ")

	assert.ErrorIs(suite.T(), err, ErrCommentRequired)
	assert.ErrorIs(suite.T(), err, ErrInvalidInput)
}

// TestCreateReward_ReportNotFound tests issuance for a missing report
func (suite *RewardServiceTestSuite) TestCreateReward_ReportNotFound() {
	_, err := suite.service.CreateReward(9999, suite.manager.ID, "Nothing here")

	assert.ErrorIs(suite.T(), err, ErrReportNotFound)
}

// TestCreateReward_NotifierFailure tests that a failed notification does
// not roll back the reward
func (suite *RewardServiceTestSuite) TestCreateReward_NotifierFailure() {
	suite.notifier.err = errors.New("smtp unreachable")

	reward, err := suite.service.CreateReward(suite.report.ID, suite.manager.ID, "Great work")

	suite.Require().NoError(err)
	assert.NotZero(suite.T(), reward.ID)

	var report models.TaskReport
	suite.Require().NoError(suite.db.First(&report, suite.report.ID).Error)
	assert.True(suite.T(), report.IsAwarded)
}

// TestMyRewards tests the performer's reward list
func (suite *RewardServiceTestSuite) TestMyRewards() {
	_, err := suite.service.CreateReward(suite.report.ID, suite.manager.ID, "Great work")
	suite.Require().NoError(err)

	rewards, total, err := suite.service.MyRewards(suite.performer.ID, 1, 20)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), int64(1), total)
	suite.Require().Len(rewards, 1)
	assert.Equal(suite.T(), "768.00", rewards[0].Amount.StringFixed(2))

	// Another performer sees nothing
	other := suite.createUser("other-performer@example.com", models.RolePerformer)
	rewards, total, err = suite.service.MyRewards(other.ID, 1, 20)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), int64(0), total)
	assert.Empty(suite.T(), rewards)

	// Managers have no reward list
	_, _, err = suite.service.MyRewards(suite.manager.ID, 1, 20)
	assert.ErrorIs(suite.T(), err, ErrManagersNotAllowed)
}

// TestRewardServiceTestSuite runs the test suite
func TestRewardServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RewardServiceTestSuite))
}
