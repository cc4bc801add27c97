package services

import (
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"

	"venuescout-api/config"
	"venuescout-api/models"
	"venuescout-api/utils"
)

// OutreachService sends availability inquiry emails to venue contacts.
type OutreachService struct {
	config *config.Config
	dialer *gomail.Dialer
}

func NewOutreachService(cfg *config.Config) *OutreachService {
	return &OutreachService{
		config: cfg,
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword),
	}
}

// SendVenueInquiry emails the venue contact asking about availability and a
// preliminary quote for the project's event. The venue needs a contact
// email on file.
func (os *OutreachService) SendVenueInquiry(project *models.Project, venue *models.Venue, sender *models.User) error {
	if venue.ContactEmail == nil || *venue.ContactEmail == "" {
		return utils.Validationf("venue %s has no contact email on file", venue.Name)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(os.config.FromEmail, os.config.FromName))
	m.SetHeader("To", *venue.ContactEmail)
	m.SetHeader("Subject", fmt.Sprintf("Availability inquiry: %s", project.EventName))
	m.SetBody("text/html", os.inquiryBody(project, venue, sender))

	if err := os.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send inquiry email: %w", err)
	}

	return nil
}

func (os *OutreachService) inquiryBody(project *models.Project, venue *models.Venue, sender *models.User) string {
	dateRange := FormatDateRange(project)

	requirements := ""
	if len(project.Requirements) > 0 {
		var items []string
		for _, req := range project.Requirements {
			items = append(items, fmt.Sprintf("<li>%s</li>", req))
		}
		requirements = fmt.Sprintf(`
            <p>The event has the following requirements:</p>
            <ul>%s</ul>`, strings.Join(items, "\n"))
	}

	signature := sender.Name
	if sender.SignatureBlock != nil && *sender.SignatureBlock != "" {
		signature = *sender.SignatureBlock
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #2EC4A0; color: white; padding: 16px 24px; border-radius: 8px 8px 0 0; }
        .content { background: #f9f9f9; padding: 24px; border-radius: 0 0 8px 8px; }
        .footer { margin-top: 16px; font-size: 13px; color: #666; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h2>Venue Inquiry - %s</h2>
        </div>
        <div class="content">
            <p>Dear %s team,</p>
            <p>We are sourcing venues for an upcoming client event and would like to
            ask about your availability:</p>
            <ul>
                <li><strong>Event:</strong> %s</li>
                <li><strong>Dates:</strong> %s</li>
                <li><strong>Expected attendees:</strong> %d</li>
            </ul>
            %s
            <p>Could you let us know whether the venue is available on these dates,
            and share a preliminary quote for this group size? If available, we
            would also welcome the opportunity to arrange a site visit.</p>
            <p>Kind regards,<br>%s<br>%s</p>
        </div>
        <div class="footer">
            <p>Sent via %s on behalf of %s.</p>
        </div>
    </div>
</body>
</html>`,
		project.EventName,
		venue.Name,
		project.EventName,
		dateRange,
		project.AttendeeCount,
		requirements,
		signature,
		os.config.FromName,
		os.config.FromName,
		project.ClientName,
	)
}
