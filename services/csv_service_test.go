package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venuescout-api/utils"
)

func TestParseVenueCSVValidRows(t *testing.T) {
	input := strings.Join([]string{
		"name,city,capacity,facilities,event_types,contact_email",
		"Grand Hall,Brussels,300,\"WiFi, Projector\",\"Conference, Workshop\",events@grandhall.be",
		"Riverside Loft,Ghent,120,,,",
	}, "\n")

	rows, errs, total, err := parseVenueCSV(strings.NewReader(input))
	require.NoError(t, err)
	assert.Empty(t, errs)
	assert.Equal(t, 2, total)
	require.Len(t, rows, 2)

	first := rows[0]
	assert.Equal(t, 2, first.row)
	assert.Equal(t, "Grand Hall", first.venue.Name)
	assert.Equal(t, "Brussels", first.venue.City)
	assert.Equal(t, 300, first.venue.Capacity)
	assert.Equal(t, []string{"WiFi", "Projector"}, []string(first.venue.Facilities))
	assert.Equal(t, []string{"Conference", "Workshop"}, []string(first.venue.EventTypes))
	require.NotNil(t, first.venue.ContactEmail)
	assert.Equal(t, "events@grandhall.be", *first.venue.ContactEmail)

	second := rows[1]
	assert.Equal(t, 3, second.row)
	assert.Nil(t, second.venue.ContactEmail)
	assert.Empty(t, second.venue.Facilities)
}

func TestParseVenueCSVMissingRequiredHeaders(t *testing.T) {
	input := "name,city\nGrand Hall,Brussels"

	_, _, _, err := parseVenueCSV(strings.NewReader(input))
	require.Error(t, err)
	assert.ErrorIs(t, err, utils.ErrValidation)
	assert.Contains(t, err.Error(), "capacity")
}

func TestParseVenueCSVRowErrorsCarryRowNumberAndField(t *testing.T) {
	input := strings.Join([]string{
		"name,city,capacity",
		"Grand Hall,Brussels,300",
		"Riverside Loft,Ghent,not-a-number",
		",Leuven,80",
		"No City Venue,,50",
	}, "\n")

	rows, errs, total, err := parseVenueCSV(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 4, total)
	require.Len(t, rows, 1)
	require.Len(t, errs, 3)

	assert.Equal(t, 3, errs[0].Row)
	assert.Equal(t, "capacity", errs[0].Field)

	assert.Equal(t, 4, errs[1].Row)
	assert.Equal(t, "name", errs[1].Field)

	assert.Equal(t, 5, errs[2].Row)
	assert.Equal(t, "city", errs[2].Field)
}

func TestParseVenueCSVRejectsZeroCapacity(t *testing.T) {
	input := strings.Join([]string{
		"name,city,capacity",
		"Grand Hall,Brussels,300",
		"Riverside Loft,Ghent,120",
		"Old Brewery,Leuven,0",
		"Harbour Loft,Antwerp,80",
	}, "\n")

	rows, errs, total, err := parseVenueCSV(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 4, total)
	assert.Len(t, rows, 3)
	require.Len(t, errs, 1)
	assert.Equal(t, 4, errs[0].Row)
	assert.Equal(t, "capacity", errs[0].Field)
}

func TestParseVenueCSVRejectsInvalidEmail(t *testing.T) {
	input := "name,city,capacity,contact_email\nGrand Hall,Brussels,300,not-an-email"

	rows, errs, _, err := parseVenueCSV(strings.NewReader(input))
	require.NoError(t, err)
	assert.Empty(t, rows)
	require.Len(t, errs, 1)
	assert.Equal(t, "contact_email", errs[0].Field)
}

func TestParseVenueCSVSkipsEmptyRows(t *testing.T) {
	input := strings.Join([]string{
		"name,city,capacity",
		"Grand Hall,Brussels,300",
		",,",
		"Riverside Loft,Ghent,120",
	}, "\n")

	rows, errs, total, err := parseVenueCSV(strings.NewReader(input))
	require.NoError(t, err)
	assert.Empty(t, errs)
	assert.Equal(t, 2, total)
	require.Len(t, rows, 2)
	// Skipped empty rows still consume their file line number, so rows
	// after them keep matching the physical file
	assert.Equal(t, 4, rows[1].row)
}

func TestParseVenueCSVHeaderCaseInsensitive(t *testing.T) {
	input := "Name,CITY,Capacity\nGrand Hall,Brussels,300"

	rows, errs, _, err := parseVenueCSV(strings.NewReader(input))
	require.NoError(t, err)
	assert.Empty(t, errs)
	require.Len(t, rows, 1)
}

func TestParseVenueCSVEnforcesRowCap(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("name,city,capacity\n")
	for i := 0; i < MaxCSVRows+10; i++ {
		sb.WriteString("Venue,Brussels,100\n")
	}

	rows, errs, _, err := parseVenueCSV(strings.NewReader(sb.String()))
	require.NoError(t, err)
	assert.Len(t, rows, MaxCSVRows)
	require.NotEmpty(t, errs)
	assert.Contains(t, errs[len(errs)-1].Message, "Maximum")
}

func TestParseVenueCSVEmptyFile(t *testing.T) {
	_, _, _, err := parseVenueCSV(strings.NewReader(""))
	require.Error(t, err)
	assert.ErrorIs(t, err, utils.ErrValidation)
}

func TestGenerateTemplateRoundTrips(t *testing.T) {
	cs := NewCSVService(nil)
	tpl := cs.GenerateTemplate()

	rows, errs, total, err := parseVenueCSV(strings.NewReader(tpl))
	require.NoError(t, err)
	assert.Empty(t, errs)
	assert.Equal(t, 1, total)
	require.Len(t, rows, 1)
	assert.Equal(t, "Example Venue", rows[0].venue.Name)
	assert.Equal(t, 200, rows[0].venue.Capacity)
}
