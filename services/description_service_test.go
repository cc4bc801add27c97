package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"venuescout-api/models"
	"venuescout-api/utils"
)

type stubNarrativeClient struct {
	lastPrompt string
	response   string
	err        error
}

func (s *stubNarrativeClient) Generate(ctx context.Context, prompt string) (string, error) {
	s.lastPrompt = prompt
	return s.response, s.err
}

func descriptionTestLink(aiContext datatypes.JSONMap) *models.ProjectVenue {
	return &models.ProjectVenue{
		ID:        "link-1",
		AIContext: aiContext,
		Venue: models.Venue{
			Name:     "Grand Hall",
			City:     "Brussels",
			Capacity: 300,
		},
		Project: models.Project{
			ClientName:    "Acme Corp",
			EventName:     "Annual Summit",
			AttendeeCount: 180,
		},
	}
}

func TestNarrativeHTTPClientBoundsRequests(t *testing.T) {
	client := narrativeHTTPClient()
	assert.Equal(t, 60*time.Second, client.Timeout)

	assert.NotNil(t, NewOpenAINarrativeClient("test-key"))
}

func TestGenerateForLinkRequiresContext(t *testing.T) {
	for _, ctx := range []datatypes.JSONMap{nil, {}} {
		ds := NewDescriptionService(nil, &stubNarrativeClient{})

		_, err := ds.GenerateForLink(context.Background(), descriptionTestLink(ctx))
		require.Error(t, err)
		assert.ErrorIs(t, err, utils.ErrValidation)
	}
}

func TestGenerateForLinkWrapsGenerationFailure(t *testing.T) {
	stub := &stubNarrativeClient{err: errors.New("upstream timeout")}
	ds := NewDescriptionService(nil, stub)

	link := descriptionTestLink(datatypes.JSONMap{
		"event_context": map[string]interface{}{"event_type": "Conference"},
	})

	_, err := ds.GenerateForLink(context.Background(), link)
	require.Error(t, err)
	assert.ErrorIs(t, err, utils.ErrGeneration)
	assert.Contains(t, err.Error(), "upstream timeout")
	assert.Nil(t, link.AIDescription)
}

func TestGenerateForLinkBuildsPromptFromLink(t *testing.T) {
	stub := &stubNarrativeClient{err: errors.New("stop before persistence")}
	ds := NewDescriptionService(nil, stub)

	link := descriptionTestLink(datatypes.JSONMap{
		"event_context": map[string]interface{}{"event_type": "Conference"},
	})

	_, _ = ds.GenerateForLink(context.Background(), link)

	assert.Contains(t, stub.lastPrompt, "Name: Grand Hall")
	assert.Contains(t, stub.lastPrompt, "Location: Brussels")
	assert.Contains(t, stub.lastPrompt, "Type: Conference")
}
