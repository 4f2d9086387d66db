package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Lifecycle: pending -> under_review -> {approved | rejected | needs_info}
const (
	ApplicationStatusPending     = "pending"
	ApplicationStatusUnderReview = "under_review"
	ApplicationStatusApproved    = "approved"
	ApplicationStatusRejected    = "rejected"
	ApplicationStatusNeedsInfo   = "needs_info"
)

var applicationTransitions = map[string][]string{
	ApplicationStatusPending:     {ApplicationStatusUnderReview},
	ApplicationStatusUnderReview: {ApplicationStatusApproved, ApplicationStatusRejected, ApplicationStatusNeedsInfo},
	ApplicationStatusNeedsInfo:   {ApplicationStatusUnderReview},
}

// ValidStatusTransition reports whether an application may move from one
// lifecycle status to another.
func ValidStatusTransition(from, to string) bool {
	for _, s := range applicationTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

type Application struct {
	Base
	ApplicationID   string         `gorm:"size:32;not null;uniqueIndex" json:"application_id"`
	UserID          uuid.UUID      `gorm:"type:uuid;not null;index;uniqueIndex:idx_app_user_type_year" json:"user_id"`
	ApplicationType string         `gorm:"size:32;not null;uniqueIndex:idx_app_user_type_year" json:"application_type"`
	AcademicYear    string         `gorm:"size:16;not null;uniqueIndex:idx_app_user_type_year" json:"academic_year"`
	FullName        string         `gorm:"not null" json:"full_name"`
	Email           string         `gorm:"not null" json:"email"`
	Phone           string         `gorm:"size:20" json:"phone"`
	Status          string         `gorm:"size:32;not null;index;default:'pending'" json:"status"`
	ReviewerNotes   string         `gorm:"type:text" json:"reviewer_notes"`
	Fields          datatypes.JSON `gorm:"type:jsonb" json:"fields"`

	Documents []Document `gorm:"foreignKey:ApplicationID" json:"documents,omitempty"`
}

func (Application) TableName() string {
	return "applications"
}
