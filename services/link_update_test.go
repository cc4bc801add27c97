package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"venuescout-api/utils"
)

func TestLinkUpdatesAppliesOnlyPresentFields(t *testing.T) {
	body := []byte(`{"outreach_status": "responded", "quoted_price": 9500.50}`)

	updates, err := LinkUpdates(body)
	require.NoError(t, err)

	assert.Equal(t, "responded", updates["outreach_status"])
	assert.Equal(t, 9500.50, updates["quoted_price"])
	assert.NotContains(t, updates, "pros")
	assert.NotContains(t, updates, "final_description")
	assert.Len(t, updates, 2)
}

func TestLinkUpdatesExplicitNullClearsField(t *testing.T) {
	body := []byte(`{"quoted_price": null, "availability_dates": null, "is_available": null, "ai_context": null}`)

	updates, err := LinkUpdates(body)
	require.NoError(t, err)

	require.Contains(t, updates, "quoted_price")
	assert.Nil(t, updates["quoted_price"])
	require.Contains(t, updates, "availability_dates")
	assert.Nil(t, updates["availability_dates"])
	require.Contains(t, updates, "is_available")
	assert.Nil(t, updates["is_available"])
	require.Contains(t, updates, "ai_context")
	assert.Nil(t, updates["ai_context"])
}

func TestLinkUpdatesRejectsNullStatus(t *testing.T) {
	_, err := LinkUpdates([]byte(`{"outreach_status": null}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, utils.ErrValidation)
}

func TestLinkUpdatesRejectsUnknownStatus(t *testing.T) {
	_, err := LinkUpdates([]byte(`{"outreach_status": "ghosted"}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, utils.ErrValidation)
}

func TestLinkUpdatesRejectsNullIncludeFlag(t *testing.T) {
	_, err := LinkUpdates([]byte(`{"include_in_proposal": null}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, utils.ErrValidation)
}

func TestLinkUpdatesRejectsNonPositivePrice(t *testing.T) {
	for _, body := range []string{
		`{"quoted_price": 0}`,
		`{"quoted_price": -250}`,
	} {
		_, err := LinkUpdates([]byte(body))
		require.Error(t, err, body)
		assert.ErrorIs(t, err, utils.ErrValidation)
	}
}

func TestLinkUpdatesParsesAIContext(t *testing.T) {
	body := []byte(`{"ai_context": {"event_context": {"event_type": "Conference"}}}`)

	updates, err := LinkUpdates(body)
	require.NoError(t, err)

	ctx, ok := updates["ai_context"].(datatypes.JSONMap)
	require.True(t, ok)
	sub, ok := ctx["event_context"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Conference", sub["event_type"])
}

func TestLinkUpdatesRejectsScalarAIContext(t *testing.T) {
	_, err := LinkUpdates([]byte(`{"ai_context": "just text"}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, utils.ErrValidation)
}

func TestLinkUpdatesIgnoresUnknownKeys(t *testing.T) {
	body := []byte(`{"unknown_field": "value", "notes": "call back Monday"}`)

	updates, err := LinkUpdates(body)
	require.NoError(t, err)

	assert.NotContains(t, updates, "unknown_field")
	assert.Equal(t, "call back Monday", updates["notes"])
}

func TestLinkUpdatesEmptyBodyYieldsNoUpdates(t *testing.T) {
	updates, err := LinkUpdates([]byte(`{}`))
	require.NoError(t, err)
	assert.Empty(t, updates)
}

func TestLinkUpdatesRejectsMalformedJSON(t *testing.T) {
	_, err := LinkUpdates([]byte(`{"outreach_status": `))
	require.Error(t, err)
	assert.ErrorIs(t, err, utils.ErrValidation)
}

func TestLinkUpdatesRejectsWrongTypes(t *testing.T) {
	for _, body := range []string{
		`{"outreach_status": 5}`,
		`{"include_in_proposal": "yes"}`,
		`{"is_available": "maybe"}`,
		`{"quoted_price": "cheap"}`,
		`{"pros": 12}`,
	} {
		_, err := LinkUpdates([]byte(body))
		require.Error(t, err, body)
		assert.ErrorIs(t, err, utils.ErrValidation)
	}
}
