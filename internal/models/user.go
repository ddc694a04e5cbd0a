package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// UserRole distinguishes the two kinds of principals in the system.
// Managers create tasks and issue rewards; performers execute tasks
// and submit reports.
type UserRole string

const (
	RoleManager   UserRole = "manager"
	RolePerformer UserRole = "performer"
)

type User struct {
	ID           uint64         `gorm:"primarykey" json:"id"`
	Email        string         `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string         `gorm:"type:varchar(255);not null" json:"-"`
	FirstName    string         `gorm:"type:varchar(150);not null" json:"first_name"`
	LastName     string         `gorm:"type:varchar(150);not null" json:"last_name"`
	Patronymic   string         `gorm:"type:varchar(150)" json:"patronymic,omitempty"`
	Role         UserRole       `gorm:"type:varchar(20);not null;default:'performer'" json:"role"`
	IsActive     bool           `gorm:"not null;default:true" json:"is_active"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	CreatedTasks   []Task `gorm:"foreignKey:CreatorID" json:"-"`
	PerformedTasks []Task `gorm:"foreignKey:PerformerID" json:"-"`
}

// IsManager reports whether the user holds the manager role.
func (u *User) IsManager() bool {
	return u.Role == RoleManager
}

// FullName returns "last first patronymic" with the patronymic omitted
// when absent.
func (u *User) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(u.LastName+" "+u.FirstName) + " " + u.Patronymic)
}
