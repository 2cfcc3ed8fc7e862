package models

import "time"

type ApplicationModel struct {
	ID         string `gorm:"primaryKey;type:uuid"`
	MerchantID string `gorm:"index:idx_store_applications_merchant;not null"`

	FirstName    string `gorm:"not null"`
	LastName     string `gorm:"not null"`
	Email        string `gorm:"not null"`
	Phone        string `gorm:"not null"`
	City         string `gorm:"not null"`
	BusinessName string `gorm:"not null"`
	BusinessType string `gorm:"not null"`

	TemplateID       string
	StoreName        string
	StoreDescription string
	PrimaryColor     string `gorm:"not null"`
	SecondaryColor   string `gorm:"not null"`
	BackgroundColor  string `gorm:"not null"`

	Status          string `gorm:"index:idx_store_applications_status;not null"`
	SubmittedAt     time.Time
	ReviewedAt      *time.Time
	ReviewedBy      *string
	RejectionReason *string

	ProvisioningStatus    string
	ProvisioningError     string
	ProvisioningStartedAt *time.Time
	StoreID               string

	Version int64 `gorm:"not null"`
}

func (ApplicationModel) TableName() string {
	return "store_applications"
}
