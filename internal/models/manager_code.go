package models

import "time"

// ManagerCode is a one-time registration code. Signing up with a valid
// unused code grants the manager role; the code is consumed in the same
// transaction that creates the user.
type ManagerCode struct {
	ID        uint64     `gorm:"primarykey" json:"id"`
	Code      string     `gorm:"type:varchar(50);uniqueIndex;not null" json:"code"`
	IsUsed    bool       `gorm:"not null;default:false" json:"is_used"`
	CreatedAt time.Time  `json:"created_at"`
	UsedAt    *time.Time `json:"used_at"`
}
