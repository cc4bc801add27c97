package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venuescout-api/models"
)

func promptTestVenue() *models.Venue {
	address := "12 Harbour Street, Antwerp"
	return &models.Venue{
		ID:       "venue-1",
		Name:     "Harbour House",
		City:     "Antwerp",
		Capacity: 250,
		Address:  &address,
	}
}

func promptTestProject() *models.Project {
	return &models.Project{
		ID:            "project-1",
		ClientName:    "Acme Corp",
		EventName:     "Annual Summit",
		AttendeeCount: 180,
	}
}

func TestBuildPromptAlwaysIncludesVenueBasicsAndInstructions(t *testing.T) {
	prompt := BuildPrompt(promptTestVenue(), promptTestProject(), map[string]interface{}{})

	assert.Contains(t, prompt, "VENUE INFORMATION:")
	assert.Contains(t, prompt, "Name: Harbour House")
	assert.Contains(t, prompt, "Location: Antwerp")
	assert.Contains(t, prompt, "Address: 12 Harbour Street, Antwerp")
	assert.Contains(t, prompt, "Capacity: 250 people")
	assert.Contains(t, prompt, "INSTRUCTIONS:")
	assert.Contains(t, prompt, "Do not include a title or heading.")
}

func TestBuildPromptOmitsSectionsWithoutContext(t *testing.T) {
	prompt := BuildPrompt(promptTestVenue(), promptTestProject(), map[string]interface{}{})

	assert.NotContains(t, prompt, "EVENT DETAILS:")
	assert.NotContains(t, prompt, "VENUE HIGHLIGHTS:")
	assert.NotContains(t, prompt, "PRACTICAL INFORMATION:")
	assert.NotContains(t, prompt, "CLIENT BRANDING & GUIDELINES:")
	assert.NotContains(t, prompt, "CLIENT PREFERENCES:")
}

func TestBuildPromptSectionOrder(t *testing.T) {
	ctx := map[string]interface{}{
		"event_context":     map[string]interface{}{"event_type": "Conference"},
		"venue_highlights":  map[string]interface{}{"ambiance": "Industrial chic"},
		"practical_details": map[string]interface{}{"parking": "200 spots on site"},
		"client_context":    map[string]interface{}{"budget_tier": "premium"},
	}

	brandTone := "Bold and direct"
	project := promptTestProject()
	project.Client = &models.Client{Name: "Acme Corp", BrandTone: &brandTone}

	prompt := BuildPrompt(promptTestVenue(), project, ctx)

	sections := []string{
		"VENUE INFORMATION:",
		"EVENT DETAILS:",
		"VENUE HIGHLIGHTS:",
		"PRACTICAL INFORMATION:",
		"CLIENT BRANDING & GUIDELINES:",
		"CLIENT PREFERENCES:",
		"INSTRUCTIONS:",
	}

	last := -1
	for _, section := range sections {
		idx := strings.Index(prompt, section)
		require.GreaterOrEqual(t, idx, 0, "section %q missing", section)
		assert.Greater(t, idx, last, "section %q out of order", section)
		last = idx
	}
}

func TestBuildPromptJoinsListValuesWithCommas(t *testing.T) {
	ctx := map[string]interface{}{
		"client_context": map[string]interface{}{
			"priorities": []interface{}{"sustainability", "accessibility", "budget"},
		},
	}

	prompt := BuildPrompt(promptTestVenue(), promptTestProject(), ctx)

	assert.Contains(t, prompt, "Priorities: sustainability, accessibility, budget")
}

func TestBuildPromptBulletsUniqueFeatures(t *testing.T) {
	ctx := map[string]interface{}{
		"venue_highlights": map[string]interface{}{
			"unique_features": []interface{}{"Rooftop terrace", "Original cranes"},
		},
	}

	prompt := BuildPrompt(promptTestVenue(), promptTestProject(), ctx)

	assert.Contains(t, prompt, "• Rooftop terrace")
	assert.Contains(t, prompt, "• Original cranes")
}

func TestBuildPromptScalarValueForListField(t *testing.T) {
	ctx := map[string]interface{}{
		"venue_highlights": map[string]interface{}{
			"unique_features": "Panoramic river view",
		},
	}

	prompt := BuildPrompt(promptTestVenue(), promptTestProject(), ctx)

	assert.Contains(t, prompt, "• Panoramic river view")
}

func TestBuildPromptClientBrandingRequiresLinkedClient(t *testing.T) {
	brandTone := "Playful"
	prefs := "Short sentences, no jargon"
	project := promptTestProject()
	project.Client = &models.Client{
		Name:                   "Acme Corp",
		BrandTone:              &brandTone,
		DescriptionPreferences: &prefs,
	}

	prompt := BuildPrompt(promptTestVenue(), project, map[string]interface{}{})

	assert.Contains(t, prompt, "CLIENT BRANDING & GUIDELINES:")
	assert.Contains(t, prompt, "Client: Acme Corp")
	assert.Contains(t, prompt, "Brand Tone: Playful")
	assert.Contains(t, prompt, "Writing Requirements: Short sentences, no jargon")
}

func TestBuildPromptDeterministic(t *testing.T) {
	ctx := map[string]interface{}{
		"event_context": map[string]interface{}{
			"event_type": "Workshop",
			"purpose":    "Team offsite",
			"atmosphere": "Relaxed",
		},
		"practical_details": map[string]interface{}{
			"parking": "Paid garage nearby",
			"nearby":  "Hotels, restaurants",
		},
	}

	first := BuildPrompt(promptTestVenue(), promptTestProject(), ctx)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, BuildPrompt(promptTestVenue(), promptTestProject(), ctx))
	}
}

func TestBuildPromptIgnoresNonObjectSubContext(t *testing.T) {
	ctx := map[string]interface{}{
		"event_context": "not an object",
	}

	prompt := BuildPrompt(promptTestVenue(), promptTestProject(), ctx)

	assert.NotContains(t, prompt, "EVENT DETAILS:")
}
