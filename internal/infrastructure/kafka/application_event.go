package kafka

import (
	"encoding/json"
	"time"

	"github.com/LavaJover/shvark-storefront-service/internal/domain"
)

const ApplicationEventsTopic = "application-events"

type ApplicationEventType string

const (
	EventApplicationSubmitted ApplicationEventType = "application.submitted"
	EventApplicationApproved  ApplicationEventType = "application.approved"
	EventApplicationRejected  ApplicationEventType = "application.rejected"
	EventStoreProvisioned     ApplicationEventType = "store.provisioned"
	EventProvisioningFailed   ApplicationEventType = "store.provisioning_failed"
)

type ApplicationEvent struct {
	Type            ApplicationEventType `json:"type"`
	ApplicationID   string               `json:"application_id"`
	MerchantID      string               `json:"merchant_id"`
	Status          string               `json:"status"`
	ReviewerID      string               `json:"reviewer_id,omitempty"`
	RejectionReason string               `json:"rejection_reason,omitempty"`
	StoreID         string               `json:"store_id,omitempty"`
	StoreSlug       string               `json:"store_slug,omitempty"`
	Error           string               `json:"error,omitempty"`
	OccurredAt      time.Time            `json:"occurred_at"`
}

// Message encodes the event keyed by merchant so a merchant's events stay ordered.
func (e ApplicationEvent) Message() (domain.Message, error) {
	v, err := json.Marshal(e)
	if err != nil {
		return domain.Message{}, err
	}
	return domain.Message{Key: []byte(e.MerchantID), Value: v}, nil
}
