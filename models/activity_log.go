package models

import (
	"time"

	"gorm.io/datatypes"
)

// Activity log actions.
const (
	ActionVenueAdded           = "venue_added"
	ActionVenueRemoved         = "venue_removed"
	ActionVenueUpdated         = "venue_updated"
	ActionInquirySent          = "inquiry_sent"
	ActionDescriptionGenerated = "description_generated"
	ActionProposalGenerated    = "proposal_generated"
)

// ActivityLog is an append-only audit record of an action taken on a
// project. Entries are never updated or deleted; they only disappear when
// their project is deleted (cascade).
type ActivityLog struct {
	ID        string            `json:"id" gorm:"primaryKey;size:191"`
	ProjectID string            `json:"project_id" gorm:"not null;size:191;index"`
	UserID    string            `json:"user_id" gorm:"not null;size:191;index"`
	Action    string            `json:"action" gorm:"not null;size:100;index"`
	Details   datatypes.JSONMap `json:"details" gorm:"type:json"`
	CreatedAt time.Time         `json:"created_at"`

	Project Project `json:"-" gorm:"foreignKey:ProjectID"`
	User    User    `json:"-" gorm:"foreignKey:UserID"`
}
