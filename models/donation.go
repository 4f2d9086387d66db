package models

const (
	DonationStatusPending      = "pending"
	DonationStatusReceived     = "received"
	DonationStatusAcknowledged = "acknowledged"
)

type Donation struct {
	Base
	DonorName string  `gorm:"not null" json:"donor_name"`
	Email     string  `gorm:"not null" json:"email"`
	Phone     string  `gorm:"size:20" json:"phone"`
	AmountINR float64 `gorm:"not null" json:"amount_inr"`
	Method    string  `gorm:"size:32" json:"method"` // upi, bank_transfer, cheque
	Message   string  `gorm:"type:text" json:"message"`
	Status    string  `gorm:"size:32;not null;index;default:'pending'" json:"status"`
	Notes     string  `gorm:"type:text" json:"notes"`
}

func (Donation) TableName() string {
	return "donations"
}
