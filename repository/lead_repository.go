package repository

import (
	"github.com/google/uuid"
	"github.com/vidyonnati/foundation-backend/models"
	"gorm.io/gorm"
)

type LeadRepository interface {
	BaseRepository[models.HelpLead]
	ListWithPagination(status string, page, pageSize int) ([]*models.HelpLead, int64, error)
	UpdateStatus(id uuid.UUID, status, notes string) error
}

type LeadRepositoryImpl struct {
	*BaseRepositoryImpl[models.HelpLead]
}

func NewLeadRepository(db *gorm.DB) LeadRepository {
	return &LeadRepositoryImpl{
		BaseRepositoryImpl: NewBaseRepository[models.HelpLead](db),
	}
}

func (r *LeadRepositoryImpl) ListWithPagination(status string, page, pageSize int) ([]*models.HelpLead, int64, error) {
	var leads []*models.HelpLead
	var total int64

	query := r.db.Model(&models.HelpLead{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.Limit(pageSize).Offset(offset).Order("created_at DESC").Find(&leads).Error
	if err != nil {
		return nil, 0, err
	}
	return leads, total, nil
}

func (r *LeadRepositoryImpl) UpdateStatus(id uuid.UUID, status, notes string) error {
	updates := map[string]interface{}{"status": status}
	if notes != "" {
		updates["notes"] = notes
	}
	return r.db.Model(&models.HelpLead{}).Where("id = ?", id).Updates(updates).Error
}
