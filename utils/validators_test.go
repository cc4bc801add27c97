package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"events@grandhall.be",
		"first.last+tag@example.co.uk",
		"contact@sub.domain.com",
	}
	for _, email := range valid {
		assert.True(t, IsValidEmail(email), email)
	}

	invalid := []string{
		"",
		"not-an-email",
		"missing@tld",
		"@nodomain.com",
		"spaces in@example.com",
	}
	for _, email := range invalid {
		assert.False(t, IsValidEmail(email), email)
	}
}

func TestIsValidPassword(t *testing.T) {
	assert.True(t, IsValidPassword("Secret123"))
	assert.True(t, IsValidPassword("abc123!x"))

	assert.False(t, IsValidPassword("Sh0r"))
	assert.False(t, IsValidPassword("alllowercase"))
	assert.False(t, IsValidPassword("123456789"))
}

func TestIsValidCapacity(t *testing.T) {
	assert.True(t, IsValidCapacity(1))
	assert.True(t, IsValidCapacity(500))
	assert.False(t, IsValidCapacity(0))
	assert.False(t, IsValidCapacity(-10))
	assert.False(t, IsValidCapacity(1000001))
}

func TestParsePagination(t *testing.T) {
	page, pageSize := ParsePagination(0, 0)
	assert.Equal(t, 1, page)
	assert.Equal(t, 20, pageSize)

	page, pageSize = ParsePagination(3, 50)
	assert.Equal(t, 3, page)
	assert.Equal(t, 50, pageSize)

	_, pageSize = ParsePagination(1, 500)
	assert.Equal(t, 100, pageSize)
}

func TestErrorKindWrappers(t *testing.T) {
	assert.ErrorIs(t, NotFoundf("project %s", "p1"), ErrNotFound)
	assert.ErrorIs(t, Conflictf("duplicate venue"), ErrConflict)
	assert.ErrorIs(t, Validationf("bad payload"), ErrValidation)
}
