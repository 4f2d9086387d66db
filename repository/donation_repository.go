package repository

import (
	"github.com/google/uuid"
	"github.com/vidyonnati/foundation-backend/models"
	"gorm.io/gorm"
)

type DonationRepository interface {
	BaseRepository[models.Donation]
	ListWithPagination(status string, page, pageSize int) ([]*models.Donation, int64, error)
	UpdateStatus(id uuid.UUID, status, notes string) error
}

type DonationRepositoryImpl struct {
	*BaseRepositoryImpl[models.Donation]
}

func NewDonationRepository(db *gorm.DB) DonationRepository {
	return &DonationRepositoryImpl{
		BaseRepositoryImpl: NewBaseRepository[models.Donation](db),
	}
}

func (r *DonationRepositoryImpl) ListWithPagination(status string, page, pageSize int) ([]*models.Donation, int64, error) {
	var donations []*models.Donation
	var total int64

	query := r.db.Model(&models.Donation{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.Limit(pageSize).Offset(offset).Order("created_at DESC").Find(&donations).Error
	if err != nil {
		return nil, 0, err
	}
	return donations, total, nil
}

func (r *DonationRepositoryImpl) UpdateStatus(id uuid.UUID, status, notes string) error {
	updates := map[string]interface{}{"status": status}
	if notes != "" {
		updates["notes"] = notes
	}
	return r.db.Model(&models.Donation{}).Where("id = ?", id).Updates(updates).Error
}
