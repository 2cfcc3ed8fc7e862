package logger

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// ApplicationTransitionEvent is one row of the application audit trail.
type ApplicationTransitionEvent struct {
	ID                 uint   `gorm:"primaryKey"`
	ApplicationID      string `gorm:"index"`
	MerchantID         string `gorm:"index"`
	FromStatus         string
	ToStatus           string
	ReviewerID         string
	Reason             string
	ProvisioningStatus string
	StoreID            string
	Timestamp          time.Time
}

func (ApplicationTransitionEvent) TableName() string {
	return "application_transition_events"
}

type ApplicationEventLogger interface {
	LogTransition(ctx context.Context, event ApplicationTransitionEvent) error
}

type PGApplicationEventLogger struct {
	db *gorm.DB
}

func NewPGApplicationEventLogger(db *gorm.DB) *PGApplicationEventLogger {
	return &PGApplicationEventLogger{db: db}
}

func (l *PGApplicationEventLogger) LogTransition(ctx context.Context, event ApplicationTransitionEvent) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	return l.db.WithContext(ctx).Create(&event).Error
}

// NopApplicationEventLogger drops every event.
type NopApplicationEventLogger struct{}

func (NopApplicationEventLogger) LogTransition(context.Context, ApplicationTransitionEvent) error {
	return nil
}
