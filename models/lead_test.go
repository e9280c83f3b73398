package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullLead() Lead {
	return Lead{
		ProjectType:   "new_fence",
		FenceMaterial: "vinyl",
		Timeline:      "asap",
		PropertyType:  "commercial",
		FencePurpose:  []string{"security"},
		FenceLength:   "200_plus",
		FirstName:     "Sam",
		LastName:      "Rivera",
		Email:         "sam@example.com",
		Phone:         "2155550100",
		StreetAddress: "45 Mill Road",
		City:          "Newtown",
		ZipCode:       "18940",
	}
}

func TestMissingFieldsNoneMissing(t *testing.T) {
	assert.Empty(t, fullLead().MissingFields())
}

func TestMissingFieldsDeclarationOrder(t *testing.T) {
	lead := fullLead()
	lead.Email = ""
	lead.City = ""
	assert.Equal(t, []string{"email", "city"}, lead.MissingFields())
}

func TestMissingFieldsEmptyPurposeSet(t *testing.T) {
	lead := fullLead()
	lead.FencePurpose = []string{}
	assert.Equal(t, []string{"fencePurpose"}, lead.MissingFields())
}

func TestMissingFieldsAllMissing(t *testing.T) {
	assert.Equal(t, RequiredLeadFields, Lead{}.MissingFields())
}

func TestSetFieldByName(t *testing.T) {
	var lead Lead
	require.NoError(t, lead.Set("firstName", "Sam"))
	require.NoError(t, lead.Set("marketingConsent", true))
	require.NoError(t, lead.Set("fencePurpose", []any{"privacy", "security"}))

	assert.Equal(t, "Sam", lead.FirstName)
	assert.True(t, lead.MarketingConsent)
	assert.Equal(t, []string{"privacy", "security"}, lead.FencePurpose)
}

func TestSetFieldRejectsBadInput(t *testing.T) {
	var lead Lead
	assert.Error(t, lead.Set("favoriteColor", "blue"))
	assert.Error(t, lead.Set("firstName", 42))
	assert.Error(t, lead.Set("marketingConsent", "yes"))
	assert.Error(t, lead.Set("fencePurpose", []any{1, 2}))
}

func TestLabelLookup(t *testing.T) {
	assert.Equal(t, "New Fence Installation", Label(ProjectTypeLabels, "new_fence"))
	assert.Equal(t, "Chain Link", Label(FenceMaterialLabels, "chain_link"))
	// Unknown codes pass through verbatim.
	assert.Equal(t, "picket_3000", Label(FenceMaterialLabels, "picket_3000"))
}

func TestPurposeList(t *testing.T) {
	got := PurposeList([]string{"privacy", "pool_safety", "mystery"})
	assert.Equal(t, "Privacy, Pool Safety, mystery", got)
	assert.Equal(t, "", PurposeList(nil))
}

func TestSessionProgress(t *testing.T) {
	s := NewFormSession()
	assert.Equal(t, 0, s.Progress())
	s.CurrentStep = 5
	assert.Equal(t, 44, s.Progress())
	s.CurrentStep = 9
	assert.Equal(t, 89, s.Progress())
}
