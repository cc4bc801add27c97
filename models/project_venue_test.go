package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidOutreachStatus(t *testing.T) {
	for _, status := range []string{
		OutreachDraft, OutreachSent, OutreachAwaiting, OutreachResponded, OutreachDeclined,
	} {
		assert.True(t, IsValidOutreachStatus(status), status)
	}

	for _, status := range []string{"", "ghosted", "DRAFT", "pending"} {
		assert.False(t, IsValidOutreachStatus(status), status)
	}
}

func TestAllowTransitionIsOpen(t *testing.T) {
	statuses := []string{
		OutreachDraft, OutreachSent, OutreachAwaiting, OutreachResponded, OutreachDeclined,
	}

	for _, from := range statuses {
		for _, to := range statuses {
			assert.True(t, AllowTransition(from, to), "%s -> %s", from, to)
		}
	}
}

func TestIsValidProjectStatus(t *testing.T) {
	for _, status := range []string{ProjectStatusActive, ProjectStatusCompleted, ProjectStatusCancelled} {
		assert.True(t, IsValidProjectStatus(status), status)
	}
	assert.False(t, IsValidProjectStatus("archived"))
	assert.False(t, IsValidProjectStatus(""))
}
