package models

const (
	LeadStatusNew       = "new"
	LeadStatusContacted = "contacted"
	LeadStatusClosed    = "closed"
)

// HelpLead is a "how can I help" interest submission from the marketing pages.
type HelpLead struct {
	Base
	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"not null" json:"email"`
	Phone    string `gorm:"size:20" json:"phone"`
	Interest string `gorm:"size:64" json:"interest"` // volunteer, donate, partner, other
	Message  string `gorm:"type:text" json:"message"`
	Status   string `gorm:"size:32;not null;index;default:'new'" json:"status"`
	Notes    string `gorm:"type:text" json:"notes"`
}

func (HelpLead) TableName() string {
	return "help_leads"
}
