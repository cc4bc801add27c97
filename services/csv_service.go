package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"venuescout-api/models"
	"venuescout-api/utils"
)

const (
	// MaxCSVFileSize caps uploads at 5MB
	MaxCSVFileSize = 5 * 1024 * 1024
	// MaxCSVRows caps a single import batch
	MaxCSVRows = 1000
)

var csvRequiredHeaders = []string{"name", "city", "capacity"}

var csvAllHeaders = []string{
	"name", "city", "capacity",
	"facilities", "event_types",
	"contact_email", "contact_phone", "website", "address",
	"description_template", "notes",
}

// VenueUploadError describes a single failed row in a bulk import.
type VenueUploadError struct {
	Row     int    `json:"row"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// VenueUploadResult summarizes a bulk import. Row errors are collected, not
// propagated, so a batch with bad rows still imports the good ones.
type VenueUploadResult struct {
	TotalRows     int                `json:"total_rows"`
	Successful    int                `json:"successful"`
	Failed        int                `json:"failed"`
	CreatedVenues []models.Venue     `json:"created_venues"`
	Errors        []VenueUploadError `json:"errors"`
}

type parsedVenueRow struct {
	row   int
	venue models.Venue
}

// CSVService imports venues in bulk from tabular files.
type CSVService struct {
	db *gorm.DB
}

func NewCSVService(db *gorm.DB) *CSVService {
	return &CSVService{db: db}
}

// ProcessVenueCSV parses the uploaded file and creates a venue per valid
// row. Header problems abort the whole import; row problems only fail that
// row.
func (cs *CSVService) ProcessVenueCSV(r io.Reader) (*VenueUploadResult, error) {
	rows, errs, totalRows, err := parseVenueCSV(r)
	if err != nil {
		return nil, err
	}

	result := &VenueUploadResult{
		TotalRows:     totalRows,
		Errors:        errs,
		CreatedVenues: []models.Venue{},
	}

	for _, parsed := range rows {
		venue := parsed.venue
		if err := cs.db.Create(&venue).Error; err != nil {
			result.Errors = append(result.Errors, VenueUploadError{
				Row:     parsed.row,
				Message: fmt.Sprintf("Failed to create venue: %v", err),
			})
			continue
		}
		result.CreatedVenues = append(result.CreatedVenues, venue)
	}

	result.Successful = len(result.CreatedVenues)
	result.Failed = len(result.Errors)
	return result, nil
}

// parseVenueCSV validates headers and rows without touching the database.
// Row numbers are 1-indexed counting the header, so the first data row is 2.
func parseVenueCSV(r io.Reader) ([]parsedVenueRow, []VenueUploadError, int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, nil, 0, utils.Validationf("CSV file is empty or has no headers")
	}

	columns := make(map[string]int)
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}

	var missing []string
	for _, required := range csvRequiredHeaders {
		if _, ok := columns[required]; !ok {
			missing = append(missing, required)
		}
	}
	if len(missing) > 0 {
		return nil, nil, 0, utils.Validationf(
			"missing required headers: %s (required: %s)",
			strings.Join(missing, ", "), strings.Join(csvRequiredHeaders, ", "))
	}

	var rows []parsedVenueRow
	var errs []VenueUploadError
	rowNum := 1
	totalRows := 0

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		rowNum++
		if err != nil {
			totalRows++
			errs = append(errs, VenueUploadError{Row: rowNum, Message: fmt.Sprintf("Malformed row: %v", err)})
			continue
		}

		if rowNum > MaxCSVRows+1 {
			errs = append(errs, VenueUploadError{
				Row:     rowNum,
				Message: fmt.Sprintf("Maximum %d rows allowed. Remaining rows skipped.", MaxCSVRows),
			})
			break
		}

		// Skipped empty rows keep their file line number so error rows
		// always match the physical file
		if isEmptyRecord(record) {
			continue
		}
		totalRows++

		venue, rowErr := venueFromRecord(columns, record, rowNum)
		if rowErr != nil {
			errs = append(errs, *rowErr)
			continue
		}
		rows = append(rows, parsedVenueRow{row: rowNum, venue: *venue})
	}

	return rows, errs, totalRows, nil
}

func venueFromRecord(columns map[string]int, record []string, rowNum int) (*models.Venue, *VenueUploadError) {
	field := func(name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	name := field("name")
	if name == "" {
		return nil, &VenueUploadError{Row: rowNum, Field: "name", Message: "name is required"}
	}

	city := field("city")
	if city == "" {
		return nil, &VenueUploadError{Row: rowNum, Field: "city", Message: "city is required"}
	}

	capacity, err := strconv.Atoi(field("capacity"))
	if err != nil {
		return nil, &VenueUploadError{Row: rowNum, Field: "capacity", Message: "capacity must be an integer"}
	}
	if !utils.IsValidCapacity(capacity) {
		return nil, &VenueUploadError{Row: rowNum, Field: "capacity", Message: "capacity must be greater than zero"}
	}

	venue := &models.Venue{
		ID:         uuid.New().String(),
		Name:       name,
		City:       city,
		Capacity:   capacity,
		Facilities: splitList(field("facilities")),
		EventTypes: splitList(field("event_types")),
	}

	if email := field("contact_email"); email != "" {
		if !utils.IsValidEmail(email) {
			return nil, &VenueUploadError{Row: rowNum, Field: "contact_email", Message: "invalid email address"}
		}
		venue.ContactEmail = &email
	}
	if phone := field("contact_phone"); phone != "" {
		venue.ContactPhone = &phone
	}
	if website := field("website"); website != "" {
		venue.Website = &website
	}
	if address := field("address"); address != "" {
		venue.Address = &address
	}
	if description := field("description_template"); description != "" {
		venue.DescriptionTemplate = &description
	}
	if notes := field("notes"); notes != "" {
		venue.Notes = &notes
	}

	return venue, nil
}

// GenerateTemplate returns a CSV template with headers and an example row.
func (cs *CSVService) GenerateTemplate() string {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	writer.Write(csvAllHeaders)
	writer.Write([]string{
		"Example Venue",
		"Brussels",
		"200",
		"WiFi, Projector, Catering, Parking",
		"Conference, Workshop, Seminar",
		"contact@example-venue.com",
		"+32 2 123 4567",
		"https://www.example-venue.com",
		"123 Example Street, 1000 Brussels, Belgium",
		"A modern venue in the heart of Brussels, perfect for corporate events.",
		"Free parking available. Wheelchair accessible.",
	})
	writer.Flush()

	return sb.String()
}

func isEmptyRecord(record []string) bool {
	for _, value := range record {
		if strings.TrimSpace(value) != "" {
			return false
		}
	}
	return true
}

func splitList(value string) models.StringSlice {
	if value == "" {
		return models.StringSlice{}
	}
	var items models.StringSlice
	for _, item := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}
