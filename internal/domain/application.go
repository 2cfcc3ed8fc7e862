package domain

import (
	"context"
	"time"
)

type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationApproved ApplicationStatus = "approved"
	ApplicationRejected ApplicationStatus = "rejected"
)

// IsTerminal reports whether no further transition is legal from s.
func (s ApplicationStatus) IsTerminal() bool {
	return s == ApplicationApproved || s == ApplicationRejected
}

func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationPending, ApplicationApproved, ApplicationRejected:
		return true
	}
	return false
}

// ProvisioningStatus tracks store setup for an approved application.
// Empty while the application is pending or rejected.
type ProvisioningStatus string

const (
	ProvisioningNone    ProvisioningStatus = ""
	ProvisioningPending ProvisioningStatus = "pending"
	ProvisioningDone    ProvisioningStatus = "done"
	ProvisioningFailed  ProvisioningStatus = "failed"
)

type MerchantData struct {
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	City         string
	BusinessName string
	BusinessType string
}

type Customization struct {
	StoreName        string
	StoreDescription string
	PrimaryColor     string
	SecondaryColor   string
	BackgroundColor  string
}

type StoreConfig struct {
	TemplateID    string
	Customization Customization
}

type Application struct {
	ID           string
	MerchantID   string
	MerchantData MerchantData
	StoreConfig  StoreConfig
	Status       ApplicationStatus
	SubmittedAt  time.Time

	ReviewedAt      *time.Time
	ReviewedBy      *string
	RejectionReason *string

	ProvisioningStatus ProvisioningStatus
	ProvisioningError  string
	StoreID            string

	// ProvisioningStartedAt is when the current provisioning attempt was claimed.
	ProvisioningStartedAt *time.Time

	// Version is bumped by the repository on every successful update.
	Version int64
}

// Clone returns a deep copy so callers can mutate a candidate state
// without touching the value they read.
func (a *Application) Clone() *Application {
	if a == nil {
		return nil
	}
	c := *a
	if a.ReviewedAt != nil {
		t := *a.ReviewedAt
		c.ReviewedAt = &t
	}
	if a.ReviewedBy != nil {
		s := *a.ReviewedBy
		c.ReviewedBy = &s
	}
	if a.RejectionReason != nil {
		s := *a.RejectionReason
		c.RejectionReason = &s
	}
	if a.ProvisioningStartedAt != nil {
		t := *a.ProvisioningStartedAt
		c.ProvisioningStartedAt = &t
	}
	return &c
}

type ApplicationStats struct {
	Total    int
	Pending  int
	Approved int
	Rejected int
}

type ApplicationRepository interface {
	CreateApplication(ctx context.Context, app *Application) error
	// GetApplicationByID returns nil, nil when the application does not exist.
	GetApplicationByID(ctx context.Context, id string) (*Application, error)
	// GetApplicationsByMerchantID returns the merchant's applications, newest first.
	GetApplicationsByMerchantID(ctx context.Context, merchantID string) ([]*Application, error)
	// ListApplications returns applications newest first, filtered by status when non-nil.
	ListApplications(ctx context.Context, status *ApplicationStatus) ([]*Application, error)
	// UpdateApplication stores app only if the persisted version still equals
	// app.Version, then increments app.Version. Returns ErrConcurrentUpdate on mismatch.
	UpdateApplication(ctx context.Context, app *Application) error
}
