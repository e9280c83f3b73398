package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SRSager/bucks-county-fence/models"
)

func completeLead() models.Lead {
	return models.Lead{
		ProjectType:   "new_fence",
		FenceMaterial: "wood",
		Timeline:      "within_month",
		PropertyType:  "single_family",
		FencePurpose:  []string{"privacy", "security"},
		FenceLength:   "100_200",
		FirstName:     "Jane",
		LastName:      "Doe",
		Email:         "jane@example.com",
		Phone:         "(215) 555-0199",
		StreetAddress: "123 Main Street",
		City:          "Doylestown",
		ZipCode:       "18901",
	}
}

func TestValidateStepEmptyRecord(t *testing.T) {
	expected := map[int][]string{
		1: {"projectType"},
		2: {"fenceMaterial"},
		3: {"timeline"},
		4: {"propertyType"},
		5: {"fencePurpose"},
		6: {"fenceLength"},
		7: {"firstName", "lastName", "email", "phone"},
		8: {"streetAddress", "city", "zipCode"},
	}

	for step := 1; step <= 8; step++ {
		ok, errs := ValidateStep(step, models.Lead{})
		require.False(t, ok, "step %d should fail on an empty record", step)
		require.Len(t, errs, len(expected[step]), "step %d", step)
		for _, field := range expected[step] {
			assert.NotEmpty(t, errs[field], "step %d missing error for %s", step, field)
		}
	}
}

func TestValidateStepCompleteRecord(t *testing.T) {
	lead := completeLead()
	for step := 1; step <= models.TotalSteps; step++ {
		ok, errs := ValidateStep(step, lead)
		assert.True(t, ok, "step %d", step)
		assert.Empty(t, errs, "step %d", step)
	}
}

func TestValidateStepOptionalDetailsStep(t *testing.T) {
	ok, errs := ValidateStep(9, models.Lead{})
	assert.True(t, ok)
	assert.Empty(t, errs)
}

func TestValidateStepContactRules(t *testing.T) {
	lead := completeLead()

	lead.Email = "not-an-email"
	ok, errs := ValidateStep(7, lead)
	assert.False(t, ok)
	assert.Contains(t, errs, "email")

	lead = completeLead()
	lead.Phone = "555-0199" // only 7 digits
	ok, errs = ValidateStep(7, lead)
	assert.False(t, ok)
	assert.Contains(t, errs, "phone")

	lead = completeLead()
	lead.FirstName = " J " // one char after trimming
	ok, errs = ValidateStep(7, lead)
	assert.False(t, ok)
	assert.Contains(t, errs, "firstName")
}

func TestValidateStepAddressRules(t *testing.T) {
	lead := completeLead()

	lead.StreetAddress = "12 A" // under the 5-char minimum
	ok, errs := ValidateStep(8, lead)
	assert.False(t, ok)
	assert.Contains(t, errs, "streetAddress")

	lead = completeLead()
	lead.ZipCode = "18901-1234"
	ok, errs = ValidateStep(8, lead)
	assert.True(t, ok)
	assert.Empty(t, errs)

	lead.ZipCode = "1890"
	ok, errs = ValidateStep(8, lead)
	assert.False(t, ok)
	assert.Contains(t, errs, "zipCode")
}

func TestValidateStepIgnoresOtherSteps(t *testing.T) {
	// Step 1 only looks at projectType even when everything else is empty.
	ok, errs := ValidateStep(1, models.Lead{ProjectType: "other"})
	assert.True(t, ok)
	assert.Empty(t, errs)
}
