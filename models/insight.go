package models

import "github.com/google/uuid"

// ApplicationInsight caches the LLM-generated essay summary shown on the
// admin review screen. One row per application.
type ApplicationInsight struct {
	Base
	ApplicationID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"application_id"`
	Model         string    `gorm:"size:64" json:"model"`
	Summary       string    `gorm:"type:text" json:"summary"`
}

func (ApplicationInsight) TableName() string {
	return "application_insights"
}
