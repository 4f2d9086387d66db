package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vidyonnati/foundation-backend/draftstore"
	"github.com/vidyonnati/foundation-backend/events"
	"github.com/vidyonnati/foundation-backend/forms"
	"github.com/vidyonnati/foundation-backend/models"
	"github.com/vidyonnati/foundation-backend/pkg/metrics"
	"github.com/vidyonnati/foundation-backend/repository"
	"github.com/vidyonnati/foundation-backend/storage"
	"golang.org/x/sync/errgroup"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ErrMissingDocument marks a submit refused before any record or upload
// because a mandatory attachment was absent.
var ErrMissingDocument = errors.New("missing required document")

// Attachment is one file handed to Submit, tagged with its document type.
type Attachment struct {
	DocumentType string
	FileName     string
	ContentType  string
	Data         []byte
}

type SubmitResult struct {
	ApplicationID     string    `json:"application_id"`
	RecordID          uuid.UUID `json:"record_id"`
	Reused            bool      `json:"reused"`
	DocumentsUploaded int       `json:"documents_uploaded"`
}

// DocumentView is an attachment row plus a short-lived download URL for the
// admin detail screen.
type DocumentView struct {
	*models.Document
	URL string `json:"url"`
}

type ApplicationService interface {
	Submit(ctx context.Context, user *models.User, variant forms.Variant, values map[string]string, attachments []Attachment) (*SubmitResult, error)
	ListForUser(userID uuid.UUID) ([]*models.Application, error)
	List(status string, page, pageSize int) ([]*models.Application, int64, error)
	Detail(ctx context.Context, id uuid.UUID) (*models.Application, []*DocumentView, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status, reviewerNotes string) (*models.Application, error)
}

type ApplicationServiceImpl struct {
	apps   repository.ApplicationRepository
	docs   repository.DocumentRepository
	store  storage.ObjectStore
	drafts *draftstore.Store
	events events.Publisher
	log    *logrus.Logger
	now    func() time.Time
	urlTTL time.Duration
}

func NewApplicationService(apps repository.ApplicationRepository, docs repository.DocumentRepository, store storage.ObjectStore, drafts *draftstore.Store, pub events.Publisher, log *logrus.Logger) ApplicationService {
	return &ApplicationServiceImpl{
		apps:   apps,
		docs:   docs,
		store:  store,
		drafts: drafts,
		events: pub,
		log:    log,
		now:    time.Now,
		urlTTL: 15 * time.Minute,
	}
}

// Submit creates the application record, then uploads every attachment
// concurrently. The record is always created before any upload; a failed
// upload leaves the record and its succeeded siblings in place, and keeps
// the draft so the applicant can retry.
func (s *ApplicationServiceImpl) Submit(ctx context.Context, user *models.User, variant forms.Variant, values map[string]string, attachments []Attachment) (*SubmitResult, error) {
	schema, err := forms.SchemaFor(variant)
	if err != nil {
		return nil, err
	}

	// Final backstop: the review step is reachable without ever visiting the
	// documents step, so required attachments are checked again here.
	attached := make(map[string]bool, len(attachments))
	for _, a := range attachments {
		attached[a.DocumentType] = true
	}
	for _, d := range schema.RequiredDocuments() {
		if !attached[d.Name] {
			return nil, fmt.Errorf("%w: %s", ErrMissingDocument, d.Label)
		}
	}

	schema.Derive(values)
	payload, err := json.Marshal(schema.Payload(values))
	if err != nil {
		return nil, fmt.Errorf("failed to encode application fields: %w", err)
	}

	year := AcademicYear(s.now())
	app := &models.Application{
		ApplicationID:   newApplicationID(s.now()),
		UserID:          user.ID,
		ApplicationType: string(variant),
		AcademicYear:    year,
		FullName:        firstNonEmpty(values["fullName"], user.FullName),
		Email:           firstNonEmpty(values["email"], user.Email),
		Phone:           firstNonEmpty(values["phone"], user.Phone),
		Status:          models.ApplicationStatusPending,
		Fields:          datatypes.JSON(payload),
	}

	reused := false
	if err := s.apps.Create(app); err != nil {
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("failed to create application: %w", err)
		}
		// A record for this user/variant/year already exists (a retry after
		// a partial submission, or a duplicate submit). Reuse it for the
		// uploads instead of failing.
		existing, lerr := s.apps.GetByUserTypeYear(user.ID, string(variant), year)
		if lerr != nil {
			return nil, fmt.Errorf("failed to recover existing application: %w", lerr)
		}
		app = existing
		reused = true
		s.log.WithField("application_id", app.ApplicationID).Info("reusing existing application record")
	}

	// The record exists from here on; uploads are fanned out together and
	// awaited as one. No relative order among them.
	g, gctx := errgroup.WithContext(ctx)
	for _, att := range attachments {
		att := att
		g.Go(func() error {
			return s.uploadDocument(gctx, app, att)
		})
	}
	if err := g.Wait(); err != nil {
		metrics.ApplicationsSubmitted.WithLabelValues(string(variant), "failed").Inc()
		return nil, err
	}
	metrics.ApplicationsSubmitted.WithLabelValues(string(variant), "success").Inc()

	// Full success only: clear the draft and announce.
	s.drafts.Clear(ctx, user.ID.String(), variant)
	s.publish(ctx, app, events.TypeApplicationSubmitted)

	return &SubmitResult{
		ApplicationID:     app.ApplicationID,
		RecordID:          app.ID,
		Reused:            reused,
		DocumentsUploaded: len(attachments),
	}, nil
}

func (s *ApplicationServiceImpl) uploadDocument(ctx context.Context, app *models.Application, att Attachment) error {
	// Object name is keyed by document type, so a re-upload overwrites the
	// earlier object instead of accumulating copies.
	objectName := fmt.Sprintf("applications/%s/%s%s", app.ID, att.DocumentType, filepath.Ext(att.FileName))
	contentType := att.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	if err := s.store.Put(ctx, objectName, contentType, att.Data); err != nil {
		metrics.DocumentUploads.WithLabelValues(att.DocumentType, "failed").Inc()
		return fmt.Errorf("failed to upload %s: %w", att.DocumentType, err)
	}
	metrics.DocumentUploads.WithLabelValues(att.DocumentType, "success").Inc()
	doc := &models.Document{
		ApplicationID: app.ID,
		DocumentType:  att.DocumentType,
		FileName:      att.FileName,
		ContentType:   contentType,
		SizeBytes:     int64(len(att.Data)),
		MinioBucket:   s.store.Bucket(),
		MinioObject:   objectName,
	}
	if err := s.docs.Upsert(doc); err != nil {
		return fmt.Errorf("failed to record %s attachment: %w", att.DocumentType, err)
	}
	return nil
}

func (s *ApplicationServiceImpl) ListForUser(userID uuid.UUID) ([]*models.Application, error) {
	return s.apps.GetByUserID(userID)
}

func (s *ApplicationServiceImpl) List(status string, page, pageSize int) ([]*models.Application, int64, error) {
	return s.apps.ListWithPagination(status, page, pageSize)
}

func (s *ApplicationServiceImpl) Detail(ctx context.Context, id uuid.UUID) (*models.Application, []*DocumentView, error) {
	app, err := s.apps.GetByID(id)
	if err != nil {
		return nil, nil, fmt.Errorf("application not found: %w", err)
	}
	docs, err := s.docs.GetByApplicationID(app.ID)
	if err != nil {
		return nil, nil, err
	}
	views := make([]*DocumentView, 0, len(docs))
	for _, d := range docs {
		url, err := s.store.PresignedGetURL(ctx, d.MinioObject, s.urlTTL)
		if err != nil {
			s.log.WithError(err).WithField("document", d.DocumentType).Warn("presign failed")
		}
		views = append(views, &DocumentView{Document: d, URL: url})
	}
	return app, views, nil
}

func (s *ApplicationServiceImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status, reviewerNotes string) (*models.Application, error) {
	app, err := s.apps.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("application not found: %w", err)
	}
	if !models.ValidStatusTransition(app.Status, status) {
		return nil, fmt.Errorf("invalid status transition: %s -> %s", app.Status, status)
	}
	if err := s.apps.UpdateStatus(id, status, reviewerNotes); err != nil {
		return nil, err
	}
	app.Status = status
	if reviewerNotes != "" {
		app.ReviewerNotes = reviewerNotes
	}
	s.publish(ctx, app, events.TypeApplicationStatusChanged)
	return app, nil
}

func (s *ApplicationServiceImpl) publish(ctx context.Context, app *models.Application, eventType string) {
	err := s.events.Publish(ctx, app.ApplicationID, events.Event{
		Type:          eventType,
		ApplicationID: app.ApplicationID,
		Variant:       app.ApplicationType,
		Status:        app.Status,
		At:            s.now(),
	})
	if err != nil {
		s.log.WithError(err).WithField("event", eventType).Warn("event publish failed")
	}
}

func newApplicationID(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:8])
	return fmt.Sprintf("VF-%d-%s", now.Year(), suffix)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
