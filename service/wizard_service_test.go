package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vidyonnati/foundation-backend/draftstore"
	"github.com/vidyonnati/foundation-backend/forms"
	"github.com/vidyonnati/foundation-backend/models"
)

func newWizardFixture(t *testing.T) (WizardService, *fakeAppRepo, *draftstore.Store) {
	t.Helper()
	apps := &fakeAppRepo{}
	drafts := draftstore.New(draftstore.NewMemoryKV(), quietLogger())
	return NewWizardService(drafts, apps, quietLogger()), apps, drafts
}

func stepZeroValues() map[string]string {
	return map[string]string{
		"fullName":     "Asha Patil",
		"email":        "asha@example.com",
		"phone":        "9876543210",
		"dateOfBirth":  "2008-04-12",
		"gender":       "female",
		"aadharNumber": "123412341234",
		"address":      "12 MG Road",
		"city":         "Pune",
		"state":        "Maharashtra",
		"pincode":      "411001",
	}
}

func TestNextBlockedOnInvalidStep(t *testing.T) {
	svc, _, drafts := newWizardFixture(t)
	user := testUser()
	ctx := context.Background()

	values := stepZeroValues()
	delete(values, "email")

	state, fieldErrs, err := svc.Next(ctx, user, forms.VariantFirstYear, values)
	require.NoError(t, err)
	require.NotEmpty(t, fieldErrs)
	assert.Contains(t, fieldErrs, "email")
	assert.Equal(t, 0, state.Step, "a failed step never advances")

	// Nothing persisted on failure.
	_, _, ok := drafts.Load(ctx, user.ID.String(), forms.VariantFirstYear)
	assert.False(t, ok)
}

func TestNextAdvancesAndPersists(t *testing.T) {
	svc, _, drafts := newWizardFixture(t)
	user := testUser()
	ctx := context.Background()

	state, fieldErrs, err := svc.Next(ctx, user, forms.VariantFirstYear, stepZeroValues())
	require.NoError(t, err)
	assert.Empty(t, fieldErrs)
	assert.Equal(t, 1, state.Step)

	saved, step, ok := drafts.Load(ctx, user.ID.String(), forms.VariantFirstYear)
	require.True(t, ok)
	assert.Equal(t, 1, step)
	assert.Equal(t, "asha@example.com", saved["email"])
}

func TestNextClampsAtLastStep(t *testing.T) {
	svc, _, drafts := newWizardFixture(t)
	user := testUser()
	ctx := context.Background()

	// The final review step has no fields, so Next validates vacuously.
	drafts.Save(ctx, user.ID.String(), forms.VariantFirstYear, stepZeroValues(), forms.StepCount-1)

	state, fieldErrs, err := svc.Next(ctx, user, forms.VariantFirstYear, stepZeroValues())
	require.NoError(t, err)
	assert.Empty(t, fieldErrs)
	assert.Equal(t, forms.StepCount-1, state.Step)
}

func TestBackIsUnconditional(t *testing.T) {
	svc, _, drafts := newWizardFixture(t)
	user := testUser()
	ctx := context.Background()

	drafts.Save(ctx, user.ID.String(), forms.VariantFirstYear, map[string]string{}, 2)

	// Incomplete values move back fine.
	state, err := svc.Back(ctx, user, forms.VariantFirstYear, map[string]string{"city": "Pune"})
	require.NoError(t, err)
	assert.Equal(t, 1, state.Step)

	saved, step, ok := drafts.Load(ctx, user.ID.String(), forms.VariantFirstYear)
	require.True(t, ok)
	assert.Equal(t, 1, step)
	assert.Equal(t, "Pune", saved["city"])
}

func TestBackFloorsAtZero(t *testing.T) {
	svc, _, _ := newWizardFixture(t)
	user := testUser()

	state, err := svc.Back(context.Background(), user, forms.VariantFirstYear, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, state.Step)
}

func TestJumpToClamps(t *testing.T) {
	svc, _, _ := newWizardFixture(t)
	user := testUser()
	ctx := context.Background()

	state, err := svc.JumpTo(ctx, user, forms.VariantFirstYear, 99, nil)
	require.NoError(t, err)
	assert.Equal(t, forms.StepCount-1, state.Step)

	state, err = svc.JumpTo(ctx, user, forms.VariantFirstYear, -3, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, state.Step)
}

func TestStatePrefillsProfileButDraftWins(t *testing.T) {
	svc, _, drafts := newWizardFixture(t)
	user := testUser()
	ctx := context.Background()

	state, err := svc.State(ctx, user, forms.VariantFirstYear)
	require.NoError(t, err)
	assert.Equal(t, user.FullName, state.Values["fullName"])
	assert.Equal(t, user.Email, state.Values["email"])

	drafts.Save(ctx, user.ID.String(), forms.VariantFirstYear, map[string]string{"email": "edited@example.com"}, 1)

	state, err = svc.State(ctx, user, forms.VariantFirstYear)
	require.NoError(t, err)
	assert.Equal(t, "edited@example.com", state.Values["email"], "draft answers beat profile pre-fill")
	assert.Equal(t, user.FullName, state.Values["fullName"], "untouched slots still pre-fill")
	assert.Equal(t, 1, state.Step)
}

func TestStateDerivesPercentage(t *testing.T) {
	svc, _, drafts := newWizardFixture(t)
	user := testUser()
	ctx := context.Background()

	drafts.Save(ctx, user.ID.String(), forms.VariantFirstYear, map[string]string{
		"sscTotalMarks": "450",
		"sscMaxMarks":   "500",
	}, 2)

	state, err := svc.State(ctx, user, forms.VariantFirstYear)
	require.NoError(t, err)
	assert.Equal(t, "90.00", state.Values["sscPercentage"])
}

func TestChangeVariantOpensTargetAtStepZero(t *testing.T) {
	svc, _, drafts := newWizardFixture(t)
	user := testUser()
	ctx := context.Background()

	drafts.Save(ctx, user.ID.String(), forms.VariantFirstYear, stepZeroValues(), 3)
	// The target variant already has a draft parked at a later step.
	drafts.Save(ctx, user.ID.String(), forms.VariantSpotlight, map[string]string{"story": "draft text"}, 3)

	state, err := svc.ChangeVariant(ctx, user, forms.VariantFirstYear, forms.VariantSpotlight, stepZeroValues())
	require.NoError(t, err)
	assert.Equal(t, forms.VariantSpotlight, state.Variant)
	assert.Equal(t, 0, state.Step)

	// The reset is persisted, not just reported: reopening the target
	// variant lands on step 0 with its answers intact.
	state, err = svc.State(ctx, user, forms.VariantSpotlight)
	require.NoError(t, err)
	assert.Equal(t, 0, state.Step)
	assert.Equal(t, "draft text", state.Values["story"])

	// The source draft keeps its step and answers.
	saved, step, ok := drafts.Load(ctx, user.ID.String(), forms.VariantFirstYear)
	require.True(t, ok)
	assert.Equal(t, 3, step)
	assert.Equal(t, "411001", saved["pincode"])
}

func TestStateReportsSubmitted(t *testing.T) {
	svc, apps, _ := newWizardFixture(t)
	user := testUser()

	app := &models.Application{ApplicationID: "VF-2026-ABCD1234", UserID: user.ID}
	app.ID = uuid.New()
	apps.existing = app

	state, err := svc.State(context.Background(), user, forms.VariantFirstYear)
	require.NoError(t, err)
	assert.True(t, state.Submitted)
	assert.Equal(t, "VF-2026-ABCD1234", state.ApplicationID)
}
