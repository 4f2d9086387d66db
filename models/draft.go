package models

import "time"

// DraftEntry backs the wizard draft store: an opaque string value per key.
type DraftEntry struct {
	Key       string    `gorm:"primaryKey;size:255" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (DraftEntry) TableName() string {
	return "draft_entries"
}
