package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVariant(t *testing.T) {
	for _, s := range []string{"first_year", "second_year", "spotlight"} {
		v, err := ParseVariant(s)
		require.NoError(t, err)
		assert.Equal(t, Variant(s), v)
	}
	_, err := ParseVariant("third_year")
	assert.Error(t, err)
}

func TestRequiredFieldsExcludeOptional(t *testing.T) {
	schema, err := SchemaFor(VariantFirstYear)
	require.NoError(t, err)

	family := schema.RequiredFields(1)
	assert.Contains(t, family, "fatherName")
	assert.Contains(t, family, "annualIncome")
	assert.NotContains(t, family, "guardianName", "guardian fields are optional everywhere")
	assert.NotContains(t, family, "guardianPhone")

	bank := schema.RequiredFields(3)
	assert.Contains(t, bank, "whyScholarship")
	assert.NotContains(t, bank, "additionalInfo")
}

func TestValidateStepReportsOnlyCurrentStep(t *testing.T) {
	schema, err := SchemaFor(VariantFirstYear)
	require.NoError(t, err)

	// Step 0 is completely empty, but we validate step 2: no personal-step
	// field may be reported.
	values := map[string]string{
		"schoolName":    "Model High School",
		"sscBoard":      "SSC",
		"sscYear":       "2025",
		"sscTotalMarks": "450",
		"sscMaxMarks":   "500",
	}
	errs := schema.ValidateStep(2, values)
	require.Len(t, errs, 1)
	assert.Contains(t, errs, "intendedStream")
	assert.NotContains(t, errs, "fullName")
	assert.NotContains(t, errs, "email")
}

func TestValidateStepFieldRules(t *testing.T) {
	schema, err := SchemaFor(VariantFirstYear)
	require.NoError(t, err)

	values := map[string]string{
		"fullName":     "Asha Patil",
		"email":        "not-an-email",
		"phone":        "12345",
		"dateOfBirth":  "2008-04-12",
		"gender":       "female",
		"aadharNumber": "123412341234",
		"address":      "12 MG Road",
		"city":         "Pune",
		"state":        "Maharashtra",
		"pincode":      "411001",
	}
	errs := schema.ValidateStep(0, values)
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "phone")
	assert.NotContains(t, errs, "aadharNumber")
}

func TestValidateStepEmptyStepPasses(t *testing.T) {
	schema, err := SchemaFor(VariantFirstYear)
	require.NoError(t, err)
	// The documents/review step has no required form fields.
	assert.Empty(t, schema.ValidateStep(4, map[string]string{}))
}

func TestRequiredDocumentsPerVariant(t *testing.T) {
	first, err := SchemaFor(VariantFirstYear)
	require.NoError(t, err)
	names := map[string]bool{}
	for _, d := range first.RequiredDocuments() {
		names[d.Name] = true
	}
	assert.True(t, names["aadhar_student"])
	assert.False(t, names["income_certificate"], "income certificate is the optional upload")

	spotlight, err := SchemaFor(VariantSpotlight)
	require.NoError(t, err)
	spotlightNames := map[string]bool{}
	for _, d := range spotlight.RequiredDocuments() {
		spotlightNames[d.Name] = true
	}
	assert.True(t, spotlightNames["income_certificate"], "spotlight requires the income certificate")
}

func TestPayloadCoercesEmptyToNull(t *testing.T) {
	schema, err := SchemaFor(VariantFirstYear)
	require.NoError(t, err)

	values := map[string]string{
		"fullName":     "Asha Patil",
		"guardianName": "",
	}
	payload := schema.Payload(values)
	assert.Equal(t, "Asha Patil", payload["full_name"])

	v, present := payload["guardian_name"]
	assert.True(t, present, "optional fields are present as explicit nulls")
	assert.Nil(t, v)

	v, present = payload["additional_info"]
	assert.True(t, present)
	assert.Nil(t, v)
}
