package models

const (
	RoleApplicant = "applicant"
	RoleAdmin     = "admin"
)

type User struct {
	Base
	FullName string `gorm:"not null" json:"full_name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Phone    string `gorm:"size:20" json:"phone"`
	Password string `gorm:"not null" json:"-"` // bcrypt hash
	Role     string `gorm:"size:20;default:'applicant'" json:"role"`
}
