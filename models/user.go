package models

import (
	"time"
)

type User struct {
	ID             string  `json:"id" gorm:"primaryKey;size:191"`
	Name           string  `json:"name" gorm:"not null;size:255"`
	Email          string  `json:"email" gorm:"uniqueIndex;not null;size:255"`
	Password       string  `json:"-" gorm:"not null;size:255"`
	Phone          *string `json:"phone" gorm:"size:50"`
	SignatureBlock *string `json:"signature_block" gorm:"type:text"`
	Role           string  `json:"role" gorm:"not null;default:'event_manager';size:50"`
	IsActive       bool    `json:"is_active" gorm:"default:true"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Projects []Project `json:"projects,omitempty" gorm:"foreignKey:UserID"`
}
