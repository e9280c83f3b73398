package form

import (
	"regexp"
	"strings"

	"github.com/SRSager/bucks-county-fence/models"
)

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	zipRe   = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
	digitRe = regexp.MustCompile(`\d`)
)

// ValidateStep checks the fields belonging to one step of the quote form
// against the live record. It returns whether the step is satisfied and
// an error message per failing field; fields from other steps are never
// inspected.
func ValidateStep(step int, lead models.Lead) (bool, map[string]string) {
	errs := map[string]string{}

	switch step {
	case 1:
		if lead.ProjectType == "" {
			errs["projectType"] = "Please select a project type"
		}
	case 2:
		if lead.FenceMaterial == "" {
			errs["fenceMaterial"] = "Please select a fence material"
		}
	case 3:
		if lead.Timeline == "" {
			errs["timeline"] = "Please select a timeline"
		}
	case 4:
		if lead.PropertyType == "" {
			errs["propertyType"] = "Please select a property type"
		}
	case 5:
		if len(lead.FencePurpose) == 0 {
			errs["fencePurpose"] = "Please select at least one purpose"
		}
	case 6:
		if lead.FenceLength == "" {
			errs["fenceLength"] = "Please select approximate length"
		}
	case 7:
		if len(strings.TrimSpace(lead.FirstName)) < 2 {
			errs["firstName"] = "First name is required"
		}
		if len(strings.TrimSpace(lead.LastName)) < 2 {
			errs["lastName"] = "Last name is required"
		}
		if !emailRe.MatchString(lead.Email) {
			errs["email"] = "Valid email is required"
		}
		if len(digitRe.FindAllString(lead.Phone, -1)) < 10 {
			errs["phone"] = "Valid phone number is required"
		}
	case 8:
		if len(strings.TrimSpace(lead.StreetAddress)) < 5 {
			errs["streetAddress"] = "Street address is required"
		}
		if len(strings.TrimSpace(lead.City)) < 2 {
			errs["city"] = "City is required"
		}
		if !zipRe.MatchString(lead.ZipCode) {
			errs["zipCode"] = "Valid ZIP code is required"
		}
	}

	return len(errs) == 0, errs
}
