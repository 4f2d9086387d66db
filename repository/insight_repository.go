package repository

import (
	"github.com/google/uuid"
	"github.com/vidyonnati/foundation-backend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InsightRepository interface {
	BaseRepository[models.ApplicationInsight]
	GetByApplicationID(applicationID uuid.UUID) (*models.ApplicationInsight, error)
	Upsert(insight *models.ApplicationInsight) error
}

type InsightRepositoryImpl struct {
	*BaseRepositoryImpl[models.ApplicationInsight]
}

func NewInsightRepository(db *gorm.DB) InsightRepository {
	return &InsightRepositoryImpl{
		BaseRepositoryImpl: NewBaseRepository[models.ApplicationInsight](db),
	}
}

func (r *InsightRepositoryImpl) GetByApplicationID(applicationID uuid.UUID) (*models.ApplicationInsight, error) {
	var insight models.ApplicationInsight
	err := r.db.Where("application_id = ?", applicationID).First(&insight).Error
	if err != nil {
		return nil, err
	}
	return &insight, nil
}

func (r *InsightRepositoryImpl) Upsert(insight *models.ApplicationInsight) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "application_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"model", "summary", "updated_at"}),
	}).Create(insight).Error
}
