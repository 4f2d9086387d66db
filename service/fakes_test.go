package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/vidyonnati/foundation-backend/models"
	"gorm.io/gorm"
)

// --- fakes shared by the service tests ---

type fakeAppRepo struct {
	mu          sync.Mutex
	createErr   error
	existing    *models.Application // returned by GetByUserTypeYear when set
	created     []*models.Application
	updates     []string
	createCalls int
}

func (f *fakeAppRepo) Create(app *models.Application) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createCalls++
	if f.createErr != nil {
		return f.createErr
	}
	app.ID = uuid.New()
	f.created = append(f.created, app)
	return nil
}

func (f *fakeAppRepo) GetByID(id uuid.UUID) (*models.Application, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.existing != nil && f.existing.ID == id {
		return f.existing, nil
	}
	for _, app := range f.created {
		if app.ID == id {
			return app, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAppRepo) GetByApplicationID(applicationID string) (*models.Application, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAppRepo) GetByUserID(userID uuid.UUID) ([]*models.Application, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.created, nil
}

func (f *fakeAppRepo) GetByUserTypeYear(userID uuid.UUID, applicationType, academicYear string) (*models.Application, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.existing != nil {
		return f.existing, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAppRepo) ListWithPagination(status string, page, pageSize int) ([]*models.Application, int64, error) {
	return nil, 0, nil
}

func (f *fakeAppRepo) UpdateStatus(id uuid.UUID, status, reviewerNotes string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates = append(f.updates, status)
	return nil
}

func (f *fakeAppRepo) CountByStatus(status string) (int64, error) { return 0, nil }

type fakeDocRepo struct {
	mu      sync.Mutex
	upserts []*models.Document
}

func (f *fakeDocRepo) Create(doc *models.Document) error { return nil }
func (f *fakeDocRepo) GetByID(id uuid.UUID) (*models.Document, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeDocRepo) Upsert(doc *models.Document) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.upserts = append(f.upserts, doc)
	return nil
}

func (f *fakeDocRepo) GetByApplicationID(applicationID uuid.UUID) ([]*models.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.upserts, nil
}

func (f *fakeDocRepo) GetByApplicationIDAndType(applicationID uuid.UUID, documentType string) (*models.Document, error) {
	return nil, gorm.ErrRecordNotFound
}

type putRecord struct {
	ObjectName  string
	ContentType string
	Size        int
}

type fakeObjectStore struct {
	mu    sync.Mutex
	puts  []putRecord
	onPut func(objectName string) error
}

func (f *fakeObjectStore) Put(ctx context.Context, objectName, contentType string, data []byte) error {
	if f.onPut != nil {
		if err := f.onPut(objectName); err != nil {
			return err
		}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.puts = append(f.puts, putRecord{ObjectName: objectName, ContentType: contentType, Size: len(data)})
	return nil
}

func (f *fakeObjectStore) PresignedGetURL(ctx context.Context, objectName string, expiry time.Duration) (string, error) {
	return "https://minio.test/" + objectName, nil
}

func (f *fakeObjectStore) Bucket() string { return "test-bucket" }
