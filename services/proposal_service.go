package services

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html/template"
	"strings"

	wkhtmltopdf "github.com/SebastiaanKlippert/go-wkhtmltopdf"

	"venuescout-api/models"
	"venuescout-api/utils"
)

// ProposalPhoto is a single image in the rendered document.
type ProposalPhoto struct {
	URL     string
	Caption string
}

// ProposalVenue is one venue entry in the document.
type ProposalVenue struct {
	Name                string
	City                string
	Address             string
	Capacity            int
	Facilities          []string
	Description         string
	Pros                string
	Cons                string
	QuotedPrice         string
	RoomAllocation      string
	CateringDescription string
	AvailabilityDates   string
	Photos              []ProposalPhoto
}

// ProposalDocument is the intermediate representation both render targets
// share. BuildProposal produces it; RenderHTML and RenderPDF are functions
// over it, so document structure can be asserted without a rendering engine.
type ProposalDocument struct {
	ClientName    string
	EventName     string
	DateRange     string
	AttendeeCount int
	ClientLogoURL string
	LogoDataURI   template.URL

	Included []ProposalVenue
	Awaiting []ProposalVenue
	Declined []ProposalVenue
}

// ProposalService assembles venue proposal documents for projects.
type ProposalService struct{}

func NewProposalService() *ProposalService {
	return &ProposalService{}
}

// BuildProposal partitions a fully-loaded project's venue links into the
// three document groups:
//
//	included: include_in_proposal is set; full entry with photos and copy
//	awaiting: status sent or awaiting; short pending-response row
//	declined: status declined; short "not available" row
//
// Links in draft that are not included are left out of the document. A
// proposal needs at least one included venue.
func (ps *ProposalService) BuildProposal(project *models.Project) (*ProposalDocument, error) {
	doc := &ProposalDocument{
		ClientName:    project.ClientName,
		EventName:     project.EventName,
		DateRange:     FormatDateRange(project),
		AttendeeCount: project.AttendeeCount,
		LogoDataURI:   template.URL(logoDataURI()),
	}

	if project.Client != nil {
		doc.ClientName = project.Client.Name
		if project.Client.LogoURL != nil {
			doc.ClientLogoURL = *project.Client.LogoURL
		}
	}

	for i := range project.ProjectVenues {
		pv := &project.ProjectVenues[i]

		switch {
		case pv.IncludeInProposal:
			doc.Included = append(doc.Included, proposalVenueFromLink(pv, true))
		case pv.OutreachStatus == models.OutreachSent || pv.OutreachStatus == models.OutreachAwaiting:
			doc.Awaiting = append(doc.Awaiting, proposalVenueFromLink(pv, false))
		case pv.OutreachStatus == models.OutreachDeclined:
			doc.Declined = append(doc.Declined, proposalVenueFromLink(pv, false))
		}
	}

	if len(doc.Included) == 0 {
		return nil, utils.Validationf("no venues marked for inclusion in proposal")
	}

	return doc, nil
}

// RenderHTML renders the document as a standalone HTML page.
func (ps *ProposalService) RenderHTML(doc *ProposalDocument) (string, error) {
	var buf bytes.Buffer
	if err := proposalTemplate.Execute(&buf, doc); err != nil {
		return "", fmt.Errorf("failed to render proposal: %w", err)
	}
	return buf.String(), nil
}

// RenderPDF renders the document as a paginated PDF using the same HTML and
// stylesheet. A missing wkhtmltopdf binary is a deployment gap and surfaces
// as ErrRenderingUnavailable rather than a generic rendering failure.
func (ps *ProposalService) RenderPDF(doc *ProposalDocument) ([]byte, error) {
	html, err := ps.RenderHTML(doc)
	if err != nil {
		return nil, err
	}

	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrRenderingUnavailable, err)
	}

	page := wkhtmltopdf.NewPageReader(strings.NewReader(html))
	page.EnableLocalFileAccess.Set(true)
	pdfg.AddPage(page)
	pdfg.PageSize.Set(wkhtmltopdf.PageSizeA4)
	pdfg.MarginTop.Set(10)
	pdfg.MarginBottom.Set(10)

	if err := pdfg.Create(); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}

	return pdfg.Bytes(), nil
}

// ProposalFilename builds the download attachment name for a project's
// proposal, with spaces replaced by underscores.
func ProposalFilename(project *models.Project) string {
	name := fmt.Sprintf("%s_%s_proposal.pdf", project.ClientName, project.EventName)
	return strings.ReplaceAll(name, " ", "_")
}

// FormatDateRange formats the event dates as DD/MM/YYYY - DD/MM/YYYY, or a
// single date when no end date is set.
func FormatDateRange(project *models.Project) string {
	start := project.EventDateStart.Format("02/01/2006")
	if project.EventDateEnd == nil {
		return start
	}
	return fmt.Sprintf("%s - %s", start, project.EventDateEnd.Format("02/01/2006"))
}

func proposalVenueFromLink(pv *models.ProjectVenue, full bool) ProposalVenue {
	venue := ProposalVenue{
		Name:     pv.Venue.Name,
		City:     pv.Venue.City,
		Capacity: pv.Venue.Capacity,
	}
	if pv.Venue.Address != nil {
		venue.Address = *pv.Venue.Address
	}

	if !full {
		return venue
	}

	venue.Facilities = pv.Venue.Facilities
	// Included venues carry the human-approved copy, never the raw AI draft
	if pv.FinalDescription != nil {
		venue.Description = *pv.FinalDescription
	}
	if pv.Pros != nil {
		venue.Pros = *pv.Pros
	}
	if pv.Cons != nil {
		venue.Cons = *pv.Cons
	}
	if pv.QuotedPrice != nil {
		venue.QuotedPrice = fmt.Sprintf("%.2f", *pv.QuotedPrice)
	}
	if pv.RoomAllocation != nil {
		venue.RoomAllocation = *pv.RoomAllocation
	}
	if pv.CateringDescription != nil {
		venue.CateringDescription = *pv.CateringDescription
	}
	if pv.AvailabilityDates != nil {
		venue.AvailabilityDates = *pv.AvailabilityDates
	}

	for _, photo := range pv.Venue.Photos {
		p := ProposalPhoto{URL: photo.URL}
		if photo.Caption != nil {
			p.Caption = *photo.Caption
		}
		venue.Photos = append(venue.Photos, p)
	}

	return venue
}

func logoDataURI() string {
	svg := `<svg width="80" height="80" viewBox="0 0 80 80" xmlns="http://www.w3.org/2000/svg">
  <circle cx="40" cy="40" r="35" fill="#2EC4A0"/>
  <text x="40" y="48" font-family="Arial, sans-serif" font-size="20" font-weight="bold" fill="white" text-anchor="middle">VS</text>
</svg>`
	return "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(svg))
}
