package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/workreward/work-reward-api/internal/models"
	"gorm.io/gorm"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

var (
	// ErrCreateUser is returned when creating a user fails inside the signup transaction.
	ErrCreateUser = errors.New("user repository: create user failed")
	// ErrManagerCodeUnavailable is returned when the registration code is missing or already used.
	ErrManagerCodeUnavailable = errors.New("user repository: manager code unavailable")
)

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// Create creates a new user
func (r *GormUserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// CreateManagerWithCode creates a manager account and consumes the
// registration code atomically. The guarded UPDATE on is_used means a code
// racing two signups is only ever consumed once.
func (r *GormUserRepository) CreateManagerWithCode(user *models.User, code string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.ManagerCode{}).
			Where("code = ? AND is_used = ?", code, false).
			Updates(map[string]interface{}{
				"is_used": true,
				"used_at": time.Now(),
			})
		if res.Error != nil {
			return fmt.Errorf("%w: %v", ErrManagerCodeUnavailable, res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrManagerCodeUnavailable
		}

		user.Role = models.RoleManager
		if err := tx.Create(user).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return err
			}
			return fmt.Errorf("%w: %v", ErrCreateUser, err)
		}

		return nil
	})
}

// FindByID finds a user by ID
func (r *GormUserRepository) FindByID(id uint64) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail finds a user by email
func (r *GormUserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
