package mailer

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/SRSager/bucks-county-fence/models"
)

// Notification timestamps are shown in the company's local time.
var eastern = func() *time.Location {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		return time.UTC
	}
	return loc
}()

// Subject builds the notification subject line for a lead.
func Subject(lead models.Lead) string {
	return fmt.Sprintf("New Lead: %s %s - %s", lead.FirstName, lead.LastName, lead.ProjectType)
}

// HTMLBody renders the styled notification email for a lead.
func HTMLBody(lead models.Lead, received time.Time) string {
	var b strings.Builder

	b.WriteString(`<!DOCTYPE html>
<html>
<head>
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    h1 { color: #2563eb; border-bottom: 2px solid #2563eb; padding-bottom: 10px; }
    h2 { color: #475569; margin-top: 30px; border-bottom: 1px solid #e2e8f0; padding-bottom: 5px; }
    table { width: 100%; border-collapse: collapse; margin-top: 20px; }
    th { background-color: #f1f5f9; text-align: left; padding: 12px; font-weight: 600; width: 40%; }
    td { padding: 12px; border-bottom: 1px solid #e2e8f0; }
    .highlight { background-color: #dbeafe; padding: 15px; border-radius: 8px; margin: 20px 0; }
    .footer { margin-top: 40px; padding-top: 20px; border-top: 1px solid #e2e8f0; color: #64748b; font-size: 14px; }
  </style>
</head>
<body>
  <div class="container">
    <h1>New Fence Lead Submission</h1>
`)
	fmt.Fprintf(&b, `    <div class="highlight"><strong>Lead received:</strong> %s</div>
`, received.In(eastern).Format("1/2/2006, 3:04:05 PM"))

	b.WriteString("    <h2>Project Details</h2>\n    <table>\n")
	htmlRow(&b, "Project Type", models.Label(models.ProjectTypeLabels, lead.ProjectType))
	htmlRow(&b, "Fence Material", models.Label(models.FenceMaterialLabels, lead.FenceMaterial))
	htmlRow(&b, "Timeline", models.Label(models.TimelineLabels, lead.Timeline))
	htmlRow(&b, "Property Type", models.Label(models.PropertyTypeLabels, lead.PropertyType))
	htmlRow(&b, "Fence Purpose", models.PurposeList(lead.FencePurpose))
	htmlRow(&b, "Fence Length", models.Label(models.FenceLengthLabels, lead.FenceLength))
	b.WriteString("    </table>\n")

	b.WriteString("    <h2>Contact Information</h2>\n    <table>\n")
	htmlRow(&b, "Name", lead.FirstName+" "+lead.LastName)
	fmt.Fprintf(&b, "      <tr><th>Email</th><td><a href=\"mailto:%s\">%s</a></td></tr>\n",
		html.EscapeString(lead.Email), html.EscapeString(lead.Email))
	fmt.Fprintf(&b, "      <tr><th>Phone</th><td><a href=\"tel:%s\">%s</a></td></tr>\n",
		html.EscapeString(lead.Phone), html.EscapeString(lead.Phone))
	b.WriteString("    </table>\n")

	b.WriteString("    <h2>Property Address</h2>\n    <table>\n")
	htmlRow(&b, "Street Address", lead.StreetAddress)
	htmlRow(&b, "City", lead.City)
	htmlRow(&b, "ZIP Code", lead.ZipCode)
	b.WriteString("    </table>\n")

	if lead.AdditionalDetails != "" {
		details := strings.ReplaceAll(html.EscapeString(lead.AdditionalDetails), "\n", "<br>")
		fmt.Fprintf(&b, "    <h2>Additional Details</h2>\n    <p>%s</p>\n", details)
	}

	fmt.Fprintf(&b, `    <div class="footer">
      <p>Marketing Consent: %s</p>
      <p>Submitted via Bucks County Fence website</p>
    </div>
  </div>
</body>
</html>
`, yesNo(lead.MarketingConsent))

	return b.String()
}

func htmlRow(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "      <tr><th>%s</th><td>%s</td></tr>\n", label, html.EscapeString(value))
}

// TextBody renders the plain-text equivalent of the notification for
// clients that do not display HTML.
func TextBody(lead models.Lead, received time.Time) string {
	var b strings.Builder

	b.WriteString("NEW FENCE LEAD SUBMISSION\n========================\n\n")
	fmt.Fprintf(&b, "Received: %s\n\n", received.In(eastern).Format("1/2/2006, 3:04:05 PM"))

	b.WriteString("PROJECT DETAILS\n---------------\n")
	fmt.Fprintf(&b, "Project Type: %s\n", models.Label(models.ProjectTypeLabels, lead.ProjectType))
	fmt.Fprintf(&b, "Fence Material: %s\n", models.Label(models.FenceMaterialLabels, lead.FenceMaterial))
	fmt.Fprintf(&b, "Timeline: %s\n", models.Label(models.TimelineLabels, lead.Timeline))
	fmt.Fprintf(&b, "Property Type: %s\n", models.Label(models.PropertyTypeLabels, lead.PropertyType))
	fmt.Fprintf(&b, "Fence Purpose: %s\n", models.PurposeList(lead.FencePurpose))
	fmt.Fprintf(&b, "Fence Length: %s\n\n", models.Label(models.FenceLengthLabels, lead.FenceLength))

	b.WriteString("CONTACT INFORMATION\n-------------------\n")
	fmt.Fprintf(&b, "Name: %s %s\n", lead.FirstName, lead.LastName)
	fmt.Fprintf(&b, "Email: %s\n", lead.Email)
	fmt.Fprintf(&b, "Phone: %s\n\n", lead.Phone)

	b.WriteString("PROPERTY ADDRESS\n----------------\n")
	fmt.Fprintf(&b, "Street: %s\n", lead.StreetAddress)
	fmt.Fprintf(&b, "City: %s\n", lead.City)
	fmt.Fprintf(&b, "ZIP: %s\n\n", lead.ZipCode)

	if lead.AdditionalDetails != "" {
		fmt.Fprintf(&b, "ADDITIONAL DETAILS\n------------------\n%s\n\n", lead.AdditionalDetails)
	}

	fmt.Fprintf(&b, "Marketing Consent: %s", yesNo(lead.MarketingConsent))
	return b.String()
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
