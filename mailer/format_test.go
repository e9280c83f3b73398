package mailer

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/SRSager/bucks-county-fence/models"
)

func sampleLead() models.Lead {
	return models.Lead{
		ProjectType:   "new_fence",
		FenceMaterial: "wood",
		Timeline:      "1_3_months",
		PropertyType:  "single_family",
		FencePurpose:  []string{"privacy", "pet_containment"},
		FenceLength:   "50_100",
		FirstName:     "Jane",
		LastName:      "Doe",
		Email:         "jane@example.com",
		Phone:         "(215) 555-0199",
		StreetAddress: "123 Main Street",
		City:          "Doylestown",
		ZipCode:       "18901",
	}
}

func TestSubject(t *testing.T) {
	assert.Equal(t, "New Lead: Jane Doe - new_fence", Subject(sampleLead()))
}

func TestHTMLBodyLabelsAndSections(t *testing.T) {
	body := HTMLBody(sampleLead(), time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC))

	assert.Contains(t, body, "New Fence Lead Submission")
	assert.Contains(t, body, "New Fence Installation")
	assert.Contains(t, body, "Privacy, Pet Containment")
	assert.Contains(t, body, "50-100 ft")
	assert.Contains(t, body, `mailto:jane@example.com`)
	assert.Contains(t, body, "Doylestown")
	assert.Contains(t, body, "Marketing Consent: No")
	// Optional section only appears when details exist.
	assert.NotContains(t, body, "Additional Details")
}

func TestHTMLBodyUnknownCodeFallsThrough(t *testing.T) {
	lead := sampleLead()
	lead.FenceMaterial = "bamboo"
	body := HTMLBody(lead, time.Now())
	assert.Contains(t, body, "bamboo")
}

func TestHTMLBodyEscapesDetails(t *testing.T) {
	lead := sampleLead()
	lead.AdditionalDetails = "corner lot <script>\nsloped yard"
	body := HTMLBody(lead, time.Now())
	assert.Contains(t, body, "Additional Details")
	assert.Contains(t, body, "corner lot &lt;script&gt;<br>sloped yard")
	assert.NotContains(t, body, "<script>")
}

func TestTextBodySections(t *testing.T) {
	lead := sampleLead()
	lead.MarketingConsent = true
	lead.AdditionalDetails = "call after 5pm"
	body := TextBody(lead, time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC))

	for _, want := range []string{
		"NEW FENCE LEAD SUBMISSION",
		"PROJECT DETAILS",
		"CONTACT INFORMATION",
		"PROPERTY ADDRESS",
		"ADDITIONAL DETAILS",
		"Project Type: New Fence Installation",
		"Fence Purpose: Privacy, Pet Containment",
		"Name: Jane Doe",
		"ZIP: 18901",
		"call after 5pm",
		"Marketing Consent: Yes",
	} {
		assert.Contains(t, body, want)
	}
}

func TestTextBodyOmitsEmptyDetails(t *testing.T) {
	body := TextBody(sampleLead(), time.Now())
	assert.NotContains(t, body, "ADDITIONAL DETAILS")
	assert.True(t, strings.HasSuffix(body, "Marketing Consent: No"))
}
