package models

import "github.com/google/uuid"

// Document is one uploaded attachment belonging to an application. The
// (application_id, document_type) pair is unique: re-uploading a type
// supersedes the earlier attachment instead of duplicating it.
type Document struct {
	Base
	ApplicationID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_doc_app_type" json:"application_id"`
	DocumentType  string    `gorm:"size:64;not null;uniqueIndex:idx_doc_app_type" json:"document_type"`
	FileName      string    `gorm:"not null" json:"file_name"`
	ContentType   string    `gorm:"size:128" json:"content_type"`
	SizeBytes     int64     `gorm:"not null" json:"size_bytes"`
	MinioBucket   string    `gorm:"not null" json:"minio_bucket"`
	MinioObject   string    `gorm:"not null" json:"minio_object"`
}

func (Document) TableName() string {
	return "documents"
}
