package repository

import (
	"github.com/google/uuid"
	"github.com/vidyonnati/foundation-backend/models"
	"gorm.io/gorm"
)

type ApplicationRepository interface {
	BaseRepository[models.Application]
	GetByApplicationID(applicationID string) (*models.Application, error)
	GetByUserID(userID uuid.UUID) ([]*models.Application, error)
	GetByUserTypeYear(userID uuid.UUID, applicationType, academicYear string) (*models.Application, error)
	ListWithPagination(status string, page, pageSize int) ([]*models.Application, int64, error)
	UpdateStatus(id uuid.UUID, status, reviewerNotes string) error
	CountByStatus(status string) (int64, error)
}

type ApplicationRepositoryImpl struct {
	*BaseRepositoryImpl[models.Application]
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &ApplicationRepositoryImpl{
		BaseRepositoryImpl: NewBaseRepository[models.Application](db),
	}
}

func (r *ApplicationRepositoryImpl) GetByApplicationID(applicationID string) (*models.Application, error) {
	var app models.Application
	err := r.db.Where("application_id = ?", applicationID).First(&app).Error
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) GetByUserID(userID uuid.UUID) ([]*models.Application, error) {
	var apps []*models.Application
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&apps).Error
	if err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *ApplicationRepositoryImpl) GetByUserTypeYear(userID uuid.UUID, applicationType, academicYear string) (*models.Application, error) {
	var app models.Application
	err := r.db.Where("user_id = ? AND application_type = ? AND academic_year = ?", userID, applicationType, academicYear).First(&app).Error
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) ListWithPagination(status string, page, pageSize int) ([]*models.Application, int64, error) {
	var apps []*models.Application
	var total int64

	query := r.db.Model(&models.Application{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.Limit(pageSize).Offset(offset).Order("created_at DESC").Find(&apps).Error
	if err != nil {
		return nil, 0, err
	}
	return apps, total, nil
}

func (r *ApplicationRepositoryImpl) UpdateStatus(id uuid.UUID, status, reviewerNotes string) error {
	updates := map[string]interface{}{"status": status}
	if reviewerNotes != "" {
		updates["reviewer_notes"] = reviewerNotes
	}
	return r.db.Model(&models.Application{}).Where("id = ?", id).Updates(updates).Error
}

func (r *ApplicationRepositoryImpl) CountByStatus(status string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Application{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
