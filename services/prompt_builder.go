package services

import (
	"fmt"
	"strings"

	"venuescout-api/models"
)

// BuildPrompt renders a structured briefing into the natural-language prompt
// handed to the narrative generator. Output depends only on the venue, the
// project (with its client, when linked) and the briefing map: same inputs,
// same prompt. Sections appear in a fixed order and a section is omitted
// entirely when its sub-object is absent or empty.
func BuildPrompt(venue *models.Venue, project *models.Project, aiContext map[string]interface{}) string {
	eventCtx := subContext(aiContext, "event_context")
	highlights := subContext(aiContext, "venue_highlights")
	practical := subContext(aiContext, "practical_details")
	clientCtx := subContext(aiContext, "client_context")

	var parts []string

	// Header
	parts = append(parts, "Write a compelling venue description for a client proposal.\n")

	// Venue basics, always present
	parts = append(parts, "VENUE INFORMATION:")
	parts = append(parts, fmt.Sprintf("Name: %s", venue.Name))
	parts = append(parts, fmt.Sprintf("Location: %s", venue.City))
	if venue.Address != nil && *venue.Address != "" {
		parts = append(parts, fmt.Sprintf("Address: %s", *venue.Address))
	}
	parts = append(parts, fmt.Sprintf("Capacity: %d people", venue.Capacity))
	parts = append(parts, "")

	// Event context
	if len(eventCtx) > 0 {
		parts = append(parts, "EVENT DETAILS:")
		parts = appendField(parts, eventCtx, "event_type", "Type")
		parts = appendField(parts, eventCtx, "purpose", "Purpose")
		parts = appendField(parts, eventCtx, "target_audience", "Audience")
		parts = appendField(parts, eventCtx, "atmosphere", "Desired Atmosphere")
		parts = appendField(parts, eventCtx, "special_requirements", "Special Requirements")
		parts = append(parts, "")
	}

	// Venue highlights
	if len(highlights) > 0 {
		parts = append(parts, "VENUE HIGHLIGHTS:")
		for _, feature := range contextList(highlights, "unique_features") {
			parts = append(parts, fmt.Sprintf("• %s", feature))
		}
		parts = appendField(parts, highlights, "ambiance", "Ambiance")
		parts = appendField(parts, highlights, "technology", "Technology/AV")
		parts = appendField(parts, highlights, "accessibility", "Accessibility")
		parts = appendField(parts, highlights, "sustainability", "Sustainability")
		parts = append(parts, "")
	}

	// Practical details
	if len(practical) > 0 {
		parts = append(parts, "PRACTICAL INFORMATION:")
		parts = appendField(parts, practical, "parking", "Parking")
		parts = appendField(parts, practical, "nearby", "Nearby Amenities")
		parts = appendField(parts, practical, "restrictions", "Restrictions")
		parts = appendField(parts, practical, "setup_time", "Setup Time")
		parts = append(parts, "")
	}

	// Client branding from the linked client profile
	if project != nil && project.Client != nil {
		client := project.Client
		parts = append(parts, "CLIENT BRANDING & GUIDELINES:")
		parts = append(parts, fmt.Sprintf("Client: %s", client.Name))
		if client.BrandTone != nil && *client.BrandTone != "" {
			parts = append(parts, fmt.Sprintf("Brand Tone: %s", *client.BrandTone))
		}
		if client.DescriptionPreferences != nil && *client.DescriptionPreferences != "" {
			parts = append(parts, fmt.Sprintf("Writing Requirements: %s", *client.DescriptionPreferences))
		}
		parts = append(parts, "")
	}

	// Per-link client preferences, independent of the client profile block
	if len(clientCtx) > 0 {
		parts = append(parts, "CLIENT PREFERENCES:")
		parts = appendField(parts, clientCtx, "budget_tier", "Budget Tier")
		parts = appendField(parts, clientCtx, "priorities", "Priorities")
		parts = appendField(parts, clientCtx, "brand_notes", "Brand Alignment")
		parts = appendField(parts, clientCtx, "previous_feedback", "Previous Feedback")
		parts = append(parts, "")
	}

	// Closing instructions
	parts = append(parts, "INSTRUCTIONS:")
	parts = append(parts, "Write a 2-3 paragraph description (200-300 words) that:")
	parts = append(parts, "1. Opens with what makes this venue special and perfect for this event")
	parts = append(parts, "2. Highlights key features that match the client's priorities")
	parts = append(parts, "3. Addresses practical considerations (location, capacity, amenities)")
	parts = append(parts, "4. Maintains a professional yet engaging tone")
	parts = append(parts, "5. Focuses on benefits and experience, not just features")
	parts = append(parts, "")
	parts = append(parts, "Do not include a title or heading. Start directly with the description.")

	return strings.Join(parts, "\n")
}

// subContext extracts a nested sub-object from the briefing map. Anything
// that is not a non-empty object counts as absent.
func subContext(ctx map[string]interface{}, key string) map[string]interface{} {
	if ctx == nil {
		return nil
	}
	sub, ok := ctx[key].(map[string]interface{})
	if !ok || len(sub) == 0 {
		return nil
	}
	return sub
}

// contextValue renders a briefing field as a string. Lists join with commas,
// scalars render directly, everything else counts as absent.
func contextValue(ctx map[string]interface{}, key string) string {
	raw, ok := ctx[key]
	if !ok || raw == nil {
		return ""
	}

	switch v := raw.(type) {
	case string:
		return v
	case []interface{}:
		return strings.Join(contextList(ctx, key), ", ")
	case float64:
		if v == float64(int64(v)) {
			return fmt.Sprintf("%d", int64(v))
		}
		return fmt.Sprintf("%v", v)
	case bool:
		return fmt.Sprintf("%t", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// contextList renders a briefing field as a list of strings. A scalar value
// becomes a single-element list.
func contextList(ctx map[string]interface{}, key string) []string {
	raw, ok := ctx[key]
	if !ok || raw == nil {
		return nil
	}

	switch v := raw.(type) {
	case []interface{}:
		var items []string
		for _, item := range v {
			s := strings.TrimSpace(fmt.Sprintf("%v", item))
			if s != "" {
				items = append(items, s)
			}
		}
		return items
	case string:
		if strings.TrimSpace(v) == "" {
			return nil
		}
		return []string{v}
	default:
		return []string{fmt.Sprintf("%v", v)}
	}
}

func appendField(parts []string, ctx map[string]interface{}, key, label string) []string {
	if value := contextValue(ctx, key); value != "" {
		parts = append(parts, fmt.Sprintf("%s: %s", label, value))
	}
	return parts
}
