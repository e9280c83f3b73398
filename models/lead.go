package models

import (
	"fmt"
	"strings"
)

// Lead is the record a visitor builds across the multi-step quote form
// and the payload the intake endpoint delivers to the sales inbox.
type Lead struct {
	ProjectType       string   `json:"projectType"`
	FenceMaterial     string   `json:"fenceMaterial"`
	Timeline          string   `json:"timeline"`
	PropertyType      string   `json:"propertyType"`
	FencePurpose      []string `json:"fencePurpose"`
	FenceLength       string   `json:"fenceLength"`
	FirstName         string   `json:"firstName"`
	LastName          string   `json:"lastName"`
	Email             string   `json:"email"`
	Phone             string   `json:"phone"`
	StreetAddress     string   `json:"streetAddress"`
	City              string   `json:"city"`
	ZipCode           string   `json:"zipCode"`
	AdditionalDetails string   `json:"additionalDetails"`
	MarketingConsent  bool     `json:"marketingConsent"`
}

// RequiredLeadFields lists every field the intake endpoint insists on,
// in the order missing fields are reported back to the caller.
var RequiredLeadFields = []string{
	"projectType", "fenceMaterial", "timeline", "propertyType",
	"fencePurpose", "fenceLength", "firstName", "lastName",
	"email", "phone", "streetAddress", "city", "zipCode",
}

// MissingFields returns the names of all required fields that are empty.
func (l Lead) MissingFields() []string {
	missing := []string{}
	for _, f := range RequiredLeadFields {
		if l.fieldEmpty(f) {
			missing = append(missing, f)
		}
	}
	return missing
}

func (l Lead) fieldEmpty(field string) bool {
	switch field {
	case "projectType":
		return l.ProjectType == ""
	case "fenceMaterial":
		return l.FenceMaterial == ""
	case "timeline":
		return l.Timeline == ""
	case "propertyType":
		return l.PropertyType == ""
	case "fencePurpose":
		return len(l.FencePurpose) == 0
	case "fenceLength":
		return l.FenceLength == ""
	case "firstName":
		return l.FirstName == ""
	case "lastName":
		return l.LastName == ""
	case "email":
		return l.Email == ""
	case "phone":
		return l.Phone == ""
	case "streetAddress":
		return l.StreetAddress == ""
	case "city":
		return l.City == ""
	case "zipCode":
		return l.ZipCode == ""
	}
	return false
}

// Set overwrites a single field by its wire name. Values arrive as
// decoded JSON, so set-valued fields may come in as []any.
func (l *Lead) Set(field string, value any) error {
	switch field {
	case "fencePurpose":
		list, err := toStringSlice(value)
		if err != nil {
			return fmt.Errorf("field %s: %w", field, err)
		}
		l.FencePurpose = list
		return nil
	case "marketingConsent":
		b, ok := value.(bool)
		if !ok {
			return fmt.Errorf("field %s: expected boolean", field)
		}
		l.MarketingConsent = b
		return nil
	}

	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("field %s: expected string", field)
	}
	switch field {
	case "projectType":
		l.ProjectType = s
	case "fenceMaterial":
		l.FenceMaterial = s
	case "timeline":
		l.Timeline = s
	case "propertyType":
		l.PropertyType = s
	case "fenceLength":
		l.FenceLength = s
	case "firstName":
		l.FirstName = s
	case "lastName":
		l.LastName = s
	case "email":
		l.Email = s
	case "phone":
		l.Phone = s
	case "streetAddress":
		l.StreetAddress = s
	case "city":
		l.City = s
	case "zipCode":
		l.ZipCode = s
	case "additionalDetails":
		l.AdditionalDetails = s
	default:
		return fmt.Errorf("unknown field %q", field)
	}
	return nil
}

func toStringSlice(value any) ([]string, error) {
	switch v := value.(type) {
	case []string:
		return v, nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("expected string elements")
			}
			out = append(out, s)
		}
		return out, nil
	case nil:
		return nil, nil
	}
	return nil, fmt.Errorf("expected string list")
}

// Human-readable labels for the coded enum values. Unknown codes fall
// through verbatim so a schema drift never blanks a notification.
var (
	ProjectTypeLabels = map[string]string{
		"new_fence":         "New Fence Installation",
		"fence_repair":      "Fence Repair",
		"fence_replacement": "Fence Replacement",
		"gate_installation": "Gate Installation",
		"other":             "Other",
	}
	FenceMaterialLabels = map[string]string{
		"wood":         "Wood",
		"vinyl":        "Vinyl",
		"aluminum":     "Aluminum",
		"chain_link":   "Chain Link",
		"wrought_iron": "Wrought Iron",
		"not_sure":     "Not Sure Yet",
	}
	TimelineLabels = map[string]string{
		"asap":             "As Soon As Possible",
		"within_week":      "Within 1 Week",
		"within_month":     "Within 1 Month",
		"1_3_months":       "1-3 Months",
		"3_plus_months":    "3+ Months",
		"just_researching": "Just Researching",
	}
	PropertyTypeLabels = map[string]string{
		"single_family": "Single Family Home",
		"townhouse":     "Townhouse",
		"condo":         "Condominium",
		"apartment":     "Apartment",
		"commercial":    "Commercial Property",
		"other":         "Other",
	}
	FencePurposeLabels = map[string]string{
		"privacy":           "Privacy",
		"security":          "Security",
		"decorative":        "Decorative",
		"pet_containment":   "Pet Containment",
		"pool_safety":       "Pool Safety",
		"property_boundary": "Property Boundary",
		"noise_reduction":   "Noise Reduction",
		"other":             "Other",
	}
	FenceLengthLabels = map[string]string{
		"under_50": "Under 50 ft",
		"50_100":   "50-100 ft",
		"100_200":  "100-200 ft",
		"200_plus": "200+ ft",
		"not_sure": "Not Sure",
	}
)

// Label resolves a code through a lookup table, passing unknown codes
// through unchanged.
func Label(table map[string]string, code string) string {
	if v, ok := table[code]; ok {
		return v
	}
	return code
}

// PurposeList renders the fence purposes as a comma-joined label list.
func PurposeList(codes []string) string {
	labels := make([]string, 0, len(codes))
	for _, c := range codes {
		labels = append(labels, Label(FencePurposeLabels, c))
	}
	return strings.Join(labels, ", ")
}
