package repository

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workreward/work-reward-api/internal/models"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

// TestCreateForReport_Transaction verifies that the reward insert and the
// is_awarded flip run inside a single transaction.
func TestCreateForReport_Transaction(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRewardRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `rewards`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("UPDATE `task_reports` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	reward := &models.Reward{
		Amount:  decimal.RequireFromString("768.00"),
		Comment: "Great work",
	}
	err := repo.CreateForReport(reward, 42)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
	require.NotNil(t, reward.TaskReportID)
	assert.Equal(t, uint64(42), *reward.TaskReportID)
}

// TestCreateForReport_InsertFailureRollsBack verifies that a failed insert
// leaves the report untouched.
func TestCreateForReport_InsertFailureRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRewardRepository(db)

	insertErr := errors.New("Error 1062 (23000): Duplicate entry '42' for key 'idx_rewards_task_report_id'")

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `rewards`").
		WillReturnError(insertErr)
	mock.ExpectRollback()

	reward := &models.Reward{
		Amount:  decimal.RequireFromString("768.00"),
		Comment: "Great work",
	}
	err := repo.CreateForReport(reward, 42)

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestCreateForReport_FlagUpdateFailureRollsBack verifies that a failed
// is_awarded update rolls the reward insert back too.
func TestCreateForReport_FlagUpdateFailureRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRewardRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `rewards`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("UPDATE `task_reports` SET").
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	reward := &models.Reward{
		Amount:  decimal.RequireFromString("768.00"),
		Comment: "Great work",
	}
	err := repo.CreateForReport(reward, 42)

	assert.ErrorIs(t, err, ErrMarkAwarded)
	assert.NoError(t, mock.ExpectationsWereMet())
}
