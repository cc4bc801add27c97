package models

import (
	"time"

	"gorm.io/datatypes"
)

// Outreach status values for a venue candidate within a project.
const (
	OutreachDraft     = "draft"
	OutreachSent      = "sent"
	OutreachAwaiting  = "awaiting"
	OutreachResponded = "responded"
	OutreachDeclined  = "declined"
)

// IsValidOutreachStatus reports whether s is a known outreach status.
func IsValidOutreachStatus(s string) bool {
	switch s {
	case OutreachDraft, OutreachSent, OutreachAwaiting, OutreachResponded, OutreachDeclined:
		return true
	}
	return false
}

// AllowTransition reports whether an outreach status change from one value
// to another is permitted. Every transition is currently allowed: event
// managers routinely correct statuses by hand (e.g. reverting "sent" back to
// "draft"), so the workflow deliberately enforces no transition graph. Any
// future restriction belongs here and nowhere else.
func AllowTransition(from, to string) bool {
	return true
}

// ProjectVenue links a venue to a project and tracks the outreach workflow:
// status, the venue's response, narrative content and whether the venue
// belongs in the final client-facing proposal. At most one link may exist
// per (project, venue) pair, enforced by a database unique constraint.
type ProjectVenue struct {
	ID        string `json:"id" gorm:"primaryKey;size:191"`
	ProjectID string `json:"project_id" gorm:"not null;size:191;uniqueIndex:uq_project_venue;index"`
	VenueID   string `json:"venue_id" gorm:"not null;size:191;uniqueIndex:uq_project_venue;index"`

	CateringProviderID *string `json:"catering_provider_id" gorm:"size:191;index"`

	// Outreach tracking
	OutreachStatus string `json:"outreach_status" gorm:"not null;default:'draft';size:50;index"`

	// Response data captured from the venue
	AvailabilityDates   *string  `json:"availability_dates" gorm:"size:255"`
	IsAvailable         *bool    `json:"is_available"`
	QuotedPrice         *float64 `json:"quoted_price"`
	RoomAllocation      *string  `json:"room_allocation" gorm:"type:text"`
	CateringDescription *string  `json:"catering_description" gorm:"type:text"`

	// Narrative content. FinalDescription is the human-approved copy used in
	// proposals; editing it never requires regenerating AIDescription.
	Pros             *string `json:"pros" gorm:"type:text"`
	Cons             *string `json:"cons" gorm:"type:text"`
	AIDescription    *string `json:"ai_description" gorm:"type:text"`
	FinalDescription *string `json:"final_description" gorm:"type:text"`

	// Gate for proposal assembly
	IncludeInProposal bool `json:"include_in_proposal" gorm:"not null;default:false"`

	// Structured brief driving AI description generation. Generation requires
	// a non-empty context; its sub-sections (event_context, venue_highlights,
	// practical_details, client_context) are all optional.
	AIContext datatypes.JSONMap `json:"ai_context" gorm:"type:json"`

	// Internal notes, never shown to clients
	Notes *string `json:"notes" gorm:"type:text"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Project          Project           `json:"-" gorm:"foreignKey:ProjectID"`
	Venue            Venue             `json:"venue" gorm:"foreignKey:VenueID"`
	CateringProvider *CateringProvider `json:"catering_provider,omitempty" gorm:"foreignKey:CateringProviderID"`
}
