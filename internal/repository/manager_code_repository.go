package repository

import (
	"github.com/workreward/work-reward-api/internal/models"
	"gorm.io/gorm"
)

// GormManagerCodeRepository is a GORM implementation of ManagerCodeRepository
type GormManagerCodeRepository struct {
	db *gorm.DB
}

// NewManagerCodeRepository creates a new ManagerCodeRepository
func NewManagerCodeRepository(db *gorm.DB) ManagerCodeRepository {
	return &GormManagerCodeRepository{db: db}
}

// Create persists a freshly generated code
func (r *GormManagerCodeRepository) Create(code *models.ManagerCode) error {
	return r.db.Create(code).Error
}
