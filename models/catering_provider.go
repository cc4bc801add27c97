package models

import (
	"time"

	"gorm.io/datatypes"
)

// CateringProvider is an external catering company that can be attached to a
// venue candidate within a project.
type CateringProvider struct {
	ID             string            `json:"id" gorm:"primaryKey;size:191"`
	Name           string            `json:"name" gorm:"not null;size:255;index"`
	PricePerPerson float64           `json:"price_per_person" gorm:"not null"`
	MenuOptions    datatypes.JSONMap `json:"menu_options" gorm:"type:json"`
	IsActive       bool              `json:"is_active" gorm:"default:true"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`

	ProjectVenues []ProjectVenue `json:"-" gorm:"foreignKey:CateringProviderID"`
}
