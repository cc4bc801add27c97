package models

import (
	"time"
)

// Project status values.
const (
	ProjectStatusActive    = "active"
	ProjectStatusCompleted = "completed"
	ProjectStatusCancelled = "cancelled"
)

// IsValidProjectStatus reports whether s is a known project status.
func IsValidProjectStatus(s string) bool {
	switch s {
	case ProjectStatusActive, ProjectStatusCompleted, ProjectStatusCancelled:
		return true
	}
	return false
}

// Project is a venue sourcing effort for a specific client event.
type Project struct {
	ID                 string      `json:"id" gorm:"primaryKey;size:191"`
	UserID             string      `json:"user_id" gorm:"not null;size:191;index"`
	ClientName         string      `json:"client_name" gorm:"not null;size:255;index"`
	EventName          string      `json:"event_name" gorm:"not null;size:500"`
	EventDateStart     time.Time   `json:"event_date_start" gorm:"not null"`
	EventDateEnd       *time.Time  `json:"event_date_end"`
	AttendeeCount      int         `json:"attendee_count" gorm:"not null"`
	Budget             *float64    `json:"budget"`
	LocationPreference *string     `json:"location_preference" gorm:"size:255"`
	Requirements       StringSlice `json:"requirements" gorm:"type:json"`
	Status             string      `json:"status" gorm:"not null;default:'active';size:50;index"`
	Notes              *string     `json:"notes" gorm:"type:text"`

	// Optional link to a client profile used for branded proposal output
	ClientID *string `json:"client_id" gorm:"size:191;index"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User          User           `json:"-" gorm:"foreignKey:UserID"`
	Client        *Client        `json:"client,omitempty" gorm:"foreignKey:ClientID"`
	ProjectVenues []ProjectVenue `json:"project_venues,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	ActivityLogs  []ActivityLog  `json:"activity_logs,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}
