package model

import (
	"time"

	"gorm.io/gorm"
)

// User carries identity only. Aggregates like total score and tests attempted
// are recomputed from Attempt rows on every read and are never stored here,
// so the raw attempts stay the single source of truth.
type User struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Name      string         `json:"name" gorm:"not null"`
	Email     string         `json:"email" gorm:"uniqueIndex"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
