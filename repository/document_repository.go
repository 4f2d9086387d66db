package repository

import (
	"github.com/google/uuid"
	"github.com/vidyonnati/foundation-backend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DocumentRepository interface {
	BaseRepository[models.Document]
	Upsert(doc *models.Document) error
	GetByApplicationID(applicationID uuid.UUID) ([]*models.Document, error)
	GetByApplicationIDAndType(applicationID uuid.UUID, documentType string) (*models.Document, error)
}

type DocumentRepositoryImpl struct {
	*BaseRepositoryImpl[models.Document]
}

func NewDocumentRepository(db *gorm.DB) DocumentRepository {
	return &DocumentRepositoryImpl{
		BaseRepositoryImpl: NewBaseRepository[models.Document](db),
	}
}

// Upsert writes the attachment row, replacing any prior row for the same
// (application, document type). A retried upload supersedes the earlier one.
func (r *DocumentRepositoryImpl) Upsert(doc *models.Document) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "application_id"}, {Name: "document_type"}},
		DoUpdates: clause.AssignmentColumns([]string{"file_name", "content_type", "size_bytes", "minio_bucket", "minio_object", "updated_at"}),
	}).Create(doc).Error
}

func (r *DocumentRepositoryImpl) GetByApplicationID(applicationID uuid.UUID) ([]*models.Document, error) {
	var docs []*models.Document
	err := r.db.Where("application_id = ?", applicationID).Order("document_type").Find(&docs).Error
	if err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *DocumentRepositoryImpl) GetByApplicationIDAndType(applicationID uuid.UUID, documentType string) (*models.Document, error) {
	var doc models.Document
	err := r.db.Where("application_id = ? AND document_type = ?", applicationID, documentType).First(&doc).Error
	if err != nil {
		return nil, err
	}
	return &doc, nil
}
