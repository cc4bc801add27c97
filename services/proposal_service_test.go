package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venuescout-api/models"
	"venuescout-api/utils"
)

func strPtr(s string) *string        { return &s }
func floatPtr(f float64) *float64    { return &f }
func timePtr(t time.Time) *time.Time { return &t }

func proposalTestProject() *models.Project {
	aiDraft := "Raw AI draft that should never reach the client"
	finalCopy := "The Grand Hall combines industrial heritage with modern comfort."

	return &models.Project{
		ID:             "project-1",
		ClientName:     "Acme Corp",
		EventName:      "Annual Summit",
		EventDateStart: time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC),
		EventDateEnd:   timePtr(time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)),
		AttendeeCount:  180,
		ProjectVenues: []models.ProjectVenue{
			{
				ID:                "link-included",
				OutreachStatus:    models.OutreachResponded,
				IncludeInProposal: true,
				AIDescription:     &aiDraft,
				FinalDescription:  &finalCopy,
				QuotedPrice:       floatPtr(12500),
				Pros:              strPtr("Central location"),
				Cons:              strPtr("Limited parking"),
				Venue: models.Venue{
					Name:     "Grand Hall",
					City:     "Brussels",
					Capacity: 300,
					Photos: []models.Photo{
						{URL: "https://media.example.com/grand-hall/1.jpg", Caption: strPtr("Main room")},
					},
				},
			},
			{
				ID:             "link-awaiting",
				OutreachStatus: models.OutreachSent,
				Venue:          models.Venue{Name: "Riverside Loft", City: "Ghent", Capacity: 120},
			},
			{
				ID:             "link-declined",
				OutreachStatus: models.OutreachDeclined,
				Venue:          models.Venue{Name: "Old Brewery", City: "Leuven", Capacity: 90},
			},
			{
				ID:             "link-draft",
				OutreachStatus: models.OutreachDraft,
				Venue:          models.Venue{Name: "Hidden Gem", City: "Bruges", Capacity: 60},
			},
		},
	}
}

func TestBuildProposalPartitionsLinks(t *testing.T) {
	ps := NewProposalService()

	doc, err := ps.BuildProposal(proposalTestProject())
	require.NoError(t, err)

	require.Len(t, doc.Included, 1)
	assert.Equal(t, "Grand Hall", doc.Included[0].Name)

	require.Len(t, doc.Awaiting, 1)
	assert.Equal(t, "Riverside Loft", doc.Awaiting[0].Name)

	require.Len(t, doc.Declined, 1)
	assert.Equal(t, "Old Brewery", doc.Declined[0].Name)
}

func TestBuildProposalOmitsUnincludedDrafts(t *testing.T) {
	ps := NewProposalService()

	doc, err := ps.BuildProposal(proposalTestProject())
	require.NoError(t, err)

	for _, group := range [][]ProposalVenue{doc.Included, doc.Awaiting, doc.Declined} {
		for _, venue := range group {
			assert.NotEqual(t, "Hidden Gem", venue.Name)
		}
	}
}

func TestBuildProposalIncludedWinsOverStatus(t *testing.T) {
	ps := NewProposalService()
	project := proposalTestProject()
	// A declined venue explicitly marked for inclusion stays in the document
	project.ProjectVenues[2].IncludeInProposal = true
	project.ProjectVenues[2].FinalDescription = strPtr("Still worth showing")

	doc, err := ps.BuildProposal(project)
	require.NoError(t, err)

	assert.Len(t, doc.Included, 2)
	assert.Empty(t, doc.Declined)
}

func TestBuildProposalRequiresIncludedVenue(t *testing.T) {
	ps := NewProposalService()
	project := proposalTestProject()
	for i := range project.ProjectVenues {
		project.ProjectVenues[i].IncludeInProposal = false
	}

	_, err := ps.BuildProposal(project)
	require.Error(t, err)
	assert.ErrorIs(t, err, utils.ErrValidation)
}

func TestBuildProposalUsesClientProfileName(t *testing.T) {
	ps := NewProposalService()
	project := proposalTestProject()
	project.Client = &models.Client{
		Name:    "Acme Corporation BV",
		LogoURL: strPtr("https://cdn.acme.example/logo.png"),
	}

	doc, err := ps.BuildProposal(project)
	require.NoError(t, err)

	assert.Equal(t, "Acme Corporation BV", doc.ClientName)
	assert.Equal(t, "https://cdn.acme.example/logo.png", doc.ClientLogoURL)
}

func TestRenderHTMLUsesFinalDescriptionOnly(t *testing.T) {
	ps := NewProposalService()

	doc, err := ps.BuildProposal(proposalTestProject())
	require.NoError(t, err)

	html, err := ps.RenderHTML(doc)
	require.NoError(t, err)

	assert.Contains(t, html, "The Grand Hall combines industrial heritage with modern comfort.")
	assert.NotContains(t, html, "Raw AI draft that should never reach the client")
}

func TestRenderHTMLContainsAllGroups(t *testing.T) {
	ps := NewProposalService()

	doc, err := ps.BuildProposal(proposalTestProject())
	require.NoError(t, err)

	html, err := ps.RenderHTML(doc)
	require.NoError(t, err)

	assert.Contains(t, html, "Grand Hall")
	assert.Contains(t, html, "Riverside Loft")
	assert.Contains(t, html, "Old Brewery")
	assert.NotContains(t, html, "Hidden Gem")
	assert.Contains(t, html, "12500.00")
	assert.Contains(t, html, "https://media.example.com/grand-hall/1.jpg")
}

func TestFormatDateRange(t *testing.T) {
	project := &models.Project{
		EventDateStart: time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC),
		EventDateEnd:   timePtr(time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)),
	}
	assert.Equal(t, "12/03/2026 - 14/03/2026", FormatDateRange(project))

	project.EventDateEnd = nil
	assert.Equal(t, "12/03/2026", FormatDateRange(project))
}

func TestProposalFilename(t *testing.T) {
	project := &models.Project{
		ClientName: "Acme Corp",
		EventName:  "Annual Summit 2026",
	}
	assert.Equal(t, "Acme_Corp_Annual_Summit_2026_proposal.pdf", ProposalFilename(project))
}
