package models

import (
	"time"
)

// Venue is a physical location that can host client events.
// Venues are never hard-deleted: past projects keep referencing them
// through their project_venue links, so deletion only sets IsDeleted.
type Venue struct {
	ID                  string      `json:"id" gorm:"primaryKey;size:191"`
	Name                string      `json:"name" gorm:"not null;size:255;index"`
	City                string      `json:"city" gorm:"not null;size:100;index"`
	Capacity            int         `json:"capacity" gorm:"not null"`
	Facilities          StringSlice `json:"facilities" gorm:"type:json"`
	EventTypes          StringSlice `json:"event_types" gorm:"type:json"`
	ContactEmail        *string     `json:"contact_email" gorm:"size:255"`
	ContactPhone        *string     `json:"contact_phone" gorm:"size:50"`
	Website             *string     `json:"website" gorm:"size:500"`
	Address             *string     `json:"address" gorm:"type:text"`
	DescriptionTemplate *string     `json:"description_template" gorm:"type:text"`
	Notes               *string     `json:"notes" gorm:"type:text"`
	IsDeleted           bool        `json:"is_deleted" gorm:"default:false;index"`
	CreatedAt           time.Time   `json:"created_at"`
	UpdatedAt           time.Time   `json:"updated_at"`

	// Photos are ordered by display_order; index 0 is the primary photo
	Photos []Photo `json:"photos" gorm:"foreignKey:VenueID"`
}

// Photo is an image attached to a venue.
type Photo struct {
	ID           string    `json:"id" gorm:"primaryKey;size:191"`
	VenueID      string    `json:"venue_id" gorm:"not null;size:191;index"`
	URL          string    `json:"url" gorm:"not null;size:1000"`
	Caption      *string   `json:"caption" gorm:"type:text"`
	DisplayOrder int       `json:"display_order" gorm:"default:0"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Venue Venue `json:"-" gorm:"foreignKey:VenueID"`
}
