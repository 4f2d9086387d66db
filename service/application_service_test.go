package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vidyonnati/foundation-backend/draftstore"
	"github.com/vidyonnati/foundation-backend/events"
	"github.com/vidyonnati/foundation-backend/forms"
	"github.com/vidyonnati/foundation-backend/models"
	"gorm.io/gorm"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func testUser() *models.User {
	u := &models.User{FullName: "Asha Patil", Email: "asha@example.com", Phone: "9876543210", Role: models.RoleApplicant}
	u.ID = uuid.New()
	return u
}

func firstYearValues() map[string]string {
	return map[string]string{
		"fullName":         "Asha Patil",
		"email":            "asha@example.com",
		"phone":            "9876543210",
		"dateOfBirth":      "2008-04-12",
		"gender":           "female",
		"aadharNumber":     "123412341234",
		"address":          "12 MG Road",
		"city":             "Pune",
		"state":            "Maharashtra",
		"pincode":          "411001",
		"fatherName":       "Ramesh Patil",
		"fatherOccupation": "Farmer",
		"motherName":       "Sunita Patil",
		"motherOccupation": "Homemaker",
		"annualIncome":     "90000",
		"parentStatus":     "both",
		"schoolName":       "Model High School",
		"sscBoard":         "SSC",
		"sscYear":          "2025",
		"sscTotalMarks":    "450",
		"sscMaxMarks":      "500",
		"intendedStream":   "Science",
		"accountHolder":    "Asha Patil",
		"accountNumber":    "123456789012",
		"ifscCode":         "SBIN0001234",
		"bankName":         "State Bank of India",
		"branchName":       "Pune Camp",
		"whyScholarship":   "My family cannot afford college fees.",
	}
}

func firstYearAttachments() []Attachment {
	var atts []Attachment
	for _, dt := range []string{"ssc_marksheet", "aadhar_student", "bank_passbook", "photo"} {
		atts = append(atts, Attachment{
			DocumentType: dt,
			FileName:     dt + ".pdf",
			ContentType:  "application/pdf",
			Data:         []byte("fake-" + dt),
		})
	}
	return atts
}

func newSubmitFixture(t *testing.T) (*ApplicationServiceImpl, *fakeAppRepo, *fakeDocRepo, *fakeObjectStore, *draftstore.Store) {
	t.Helper()
	apps := &fakeAppRepo{}
	docs := &fakeDocRepo{}
	store := &fakeObjectStore{}
	drafts := draftstore.New(draftstore.NewMemoryKV(), quietLogger())
	svc := NewApplicationService(apps, docs, store, drafts, events.NopPublisher{}, quietLogger()).(*ApplicationServiceImpl)
	return svc, apps, docs, store, drafts
}

func TestSubmitMissingRequiredDocument(t *testing.T) {
	svc, apps, _, store, _ := newSubmitFixture(t)
	user := testUser()

	// All documents except the mandatory ID proof.
	var atts []Attachment
	for _, a := range firstYearAttachments() {
		if a.DocumentType != "aadhar_student" {
			atts = append(atts, a)
		}
	}

	_, err := svc.Submit(context.Background(), user, forms.VariantFirstYear, firstYearValues(), atts)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingDocument)
	assert.Contains(t, err.Error(), "Aadhar", "the error names the missing document")
	assert.Zero(t, apps.createCalls, "no record may be created")
	assert.Empty(t, store.puts, "no upload may be issued")
}

func TestSubmitSuccess(t *testing.T) {
	svc, apps, docs, store, drafts := newSubmitFixture(t)
	user := testUser()
	ctx := context.Background()

	drafts.Save(ctx, user.ID.String(), forms.VariantFirstYear, firstYearValues(), 4)

	res, err := svc.Submit(ctx, user, forms.VariantFirstYear, firstYearValues(), firstYearAttachments())
	require.NoError(t, err)

	assert.Equal(t, 1, apps.createCalls)
	assert.Len(t, store.puts, 4)
	assert.Len(t, docs.upserts, 4)
	assert.True(t, strings.HasPrefix(res.ApplicationID, "VF-"), "human-readable id: %s", res.ApplicationID)
	assert.Equal(t, 4, res.DocumentsUploaded)
	assert.False(t, res.Reused)

	// Draft cleared only on full success.
	_, _, ok := drafts.Load(ctx, user.ID.String(), forms.VariantFirstYear)
	assert.False(t, ok)
}

func TestSubmitRecordCreatedBeforeAnyUpload(t *testing.T) {
	svc, apps, _, store, _ := newSubmitFixture(t)
	user := testUser()

	store.onPut = func(objectName string) error {
		apps.mu.Lock()
		defer apps.mu.Unlock()
		if len(apps.created) == 0 {
			return fmt.Errorf("upload %s issued before record creation", objectName)
		}
		return nil
	}

	_, err := svc.Submit(context.Background(), user, forms.VariantFirstYear, firstYearValues(), firstYearAttachments())
	require.NoError(t, err)
}

func TestSubmitConflictReusesExistingRecord(t *testing.T) {
	svc, apps, docs, _, _ := newSubmitFixture(t)
	user := testUser()

	existing := &models.Application{
		ApplicationID:   "VF-2026-EXISTING",
		UserID:          user.ID,
		ApplicationType: string(forms.VariantFirstYear),
		Status:          models.ApplicationStatusPending,
	}
	existing.ID = uuid.New()
	apps.createErr = gorm.ErrDuplicatedKey
	apps.existing = existing

	res, err := svc.Submit(context.Background(), user, forms.VariantFirstYear, firstYearValues(), firstYearAttachments())
	require.NoError(t, err)
	assert.True(t, res.Reused)
	assert.Equal(t, "VF-2026-EXISTING", res.ApplicationID)
	assert.Equal(t, existing.ID, res.RecordID)

	for _, d := range docs.upserts {
		assert.Equal(t, existing.ID, d.ApplicationID, "uploads attach to the reused record")
	}
}

func TestSubmitOtherCreateErrorAbortsWithoutUploads(t *testing.T) {
	svc, apps, _, store, _ := newSubmitFixture(t)
	user := testUser()

	apps.createErr = errors.New("connection refused")

	_, err := svc.Submit(context.Background(), user, forms.VariantFirstYear, firstYearValues(), firstYearAttachments())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrMissingDocument)
	assert.Empty(t, store.puts, "no upload after a failed create")
}

func TestSubmitPartialUploadFailureKeepsRecordAndDraft(t *testing.T) {
	svc, apps, _, store, drafts := newSubmitFixture(t)
	user := testUser()
	ctx := context.Background()

	drafts.Save(ctx, user.ID.String(), forms.VariantFirstYear, firstYearValues(), 4)
	store.onPut = func(objectName string) error {
		if strings.Contains(objectName, "photo") {
			return errors.New("network reset")
		}
		return nil
	}

	_, err := svc.Submit(ctx, user, forms.VariantFirstYear, firstYearValues(), firstYearAttachments())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "photo")

	// The record stays; no compensating rollback.
	assert.Len(t, apps.created, 1)

	// The draft stays for a retry.
	_, _, ok := drafts.Load(ctx, user.ID.String(), forms.VariantFirstYear)
	assert.True(t, ok)
}

func TestSubmitPayloadMapping(t *testing.T) {
	svc, apps, _, _, _ := newSubmitFixture(t)
	user := testUser()

	values := firstYearValues()
	values["guardianName"] = "" // explicitly empty optional

	_, err := svc.Submit(context.Background(), user, forms.VariantFirstYear, values, firstYearAttachments())
	require.NoError(t, err)
	require.Len(t, apps.created, 1)

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(apps.created[0].Fields, &fields))

	assert.Equal(t, "Asha Patil", fields["full_name"])
	assert.Equal(t, "90.00", fields["ssc_percentage"], "derived field lands in the payload")

	v, present := fields["guardian_name"]
	assert.True(t, present)
	assert.Nil(t, v, "empty optional is an explicit null, never an empty string")
}

func TestUpdateStatusTransitions(t *testing.T) {
	svc, apps, _, _, _ := newSubmitFixture(t)
	user := testUser()

	_, err := svc.Submit(context.Background(), user, forms.VariantFirstYear, firstYearValues(), firstYearAttachments())
	require.NoError(t, err)
	app := apps.created[0]

	_, err = svc.UpdateStatus(context.Background(), app.ID, models.ApplicationStatusApproved, "")
	require.Error(t, err, "pending cannot jump straight to approved")

	updated, err := svc.UpdateStatus(context.Background(), app.ID, models.ApplicationStatusUnderReview, "looks complete")
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusUnderReview, updated.Status)
	assert.Equal(t, "looks complete", updated.ReviewerNotes)
}

func TestAcademicYear(t *testing.T) {
	tests := []struct {
		at   time.Time
		want string
	}{
		{time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC), "2026-27"},
		{time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), "2026-27"},
		{time.Date(2026, 5, 31, 0, 0, 0, 0, time.UTC), "2025-26"},
		{time.Date(2027, 1, 15, 0, 0, 0, 0, time.UTC), "2026-27"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, AcademicYear(tt.at), "at %s", tt.at)
	}
}
