package models

import (
	"time"

	"gorm.io/datatypes"
)

// Client is a customer profile carrying branding and writing preferences
// that feed into AI description generation for their projects.
type Client struct {
	ID       string  `json:"id" gorm:"primaryKey;size:191"`
	Name     string  `json:"name" gorm:"uniqueIndex;not null;size:255"`
	Industry *string `json:"industry" gorm:"size:255"`
	Website  *string `json:"website" gorm:"size:500"`
	LogoURL  *string `json:"logo_url" gorm:"size:500"`

	// Branding context for generated copy
	BrandTone              *string `json:"brand_tone" gorm:"size:500"`
	DescriptionPreferences *string `json:"description_preferences" gorm:"type:text"`

	// Default requirements applied to new projects for this client
	StandardRequirements datatypes.JSONMap `json:"standard_requirements" gorm:"type:json"`

	Notes     *string   `json:"notes" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Projects []Project `json:"projects,omitempty" gorm:"foreignKey:ClientID"`
}
