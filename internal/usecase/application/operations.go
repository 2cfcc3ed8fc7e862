package application

import (
	"context"
	"errors"
	"time"

	"github.com/LavaJover/shvark-storefront-service/internal/domain"
	"github.com/LavaJover/shvark-storefront-service/internal/infrastructure/logger"
	publisher "github.com/LavaJover/shvark-storefront-service/internal/infrastructure/kafka"
)

// PublishTimeout bounds a single event publish.
const PublishTimeout = 5 * time.Second

// ApplicationOperation is a single state change of an application.
type ApplicationOperation struct {
	Operation string
	Previous  *domain.Application
	Next      *domain.Application
	Event     publisher.ApplicationEventType
}

// commit persists op.Next with a version check. It returns false when another
// writer changed the application first.
func (u *DefaultApplicationUsecase) commit(ctx context.Context, op *ApplicationOperation) (bool, error) {
	if err := u.applicationRepo.UpdateApplication(ctx, op.Next); err != nil {
		if errors.Is(err, domain.ErrConcurrentUpdate) {
			u.metrics.RecordConflict(op.Operation)
			u.log.Warn("application changed concurrently", map[string]interface{}{
				"application_id": op.Next.ID,
				"operation":      op.Operation,
			})
			return false, nil
		}
		return false, err
	}

	u.audit(ctx, op)
	u.publish(ctx, op)
	return true, nil
}

func (u *DefaultApplicationUsecase) audit(ctx context.Context, op *ApplicationOperation) {
	next := op.Next
	event := logger.ApplicationTransitionEvent{
		ApplicationID:      next.ID,
		MerchantID:         next.MerchantID,
		ToStatus:           string(next.Status),
		ProvisioningStatus: string(next.ProvisioningStatus),
		StoreID:            next.StoreID,
		Timestamp:          u.now(),
	}
	if op.Previous != nil {
		event.FromStatus = string(op.Previous.Status)
	}
	if next.ReviewedBy != nil {
		event.ReviewerID = *next.ReviewedBy
	}
	if next.RejectionReason != nil {
		event.Reason = *next.RejectionReason
	} else if next.ProvisioningStatus == domain.ProvisioningFailed {
		event.Reason = next.ProvisioningError
	}
	if err := u.eventLogger.LogTransition(ctx, event); err != nil {
		u.log.WithError(err).Warn("failed to write application audit event", map[string]interface{}{
			"application_id": next.ID,
			"operation":      op.Operation,
		})
	}
}

func (u *DefaultApplicationUsecase) publish(ctx context.Context, op *ApplicationOperation) {
	if u.publisher == nil || op.Event == "" {
		return
	}
	next := op.Next
	event := publisher.ApplicationEvent{
		Type:          op.Event,
		ApplicationID: next.ID,
		MerchantID:    next.MerchantID,
		Status:        string(next.Status),
		StoreID:       next.StoreID,
		OccurredAt:    u.now(),
	}
	if next.ReviewedBy != nil {
		event.ReviewerID = *next.ReviewedBy
	}
	if next.RejectionReason != nil {
		event.RejectionReason = *next.RejectionReason
	}
	if next.ProvisioningStatus == domain.ProvisioningFailed {
		event.Error = next.ProvisioningError
	}

	fields := map[string]interface{}{
		"application_id": next.ID,
		"event":          string(op.Event),
	}
	msg, err := event.Message()
	if err != nil {
		u.log.WithError(err).Warn("failed to encode application event", fields)
		return
	}

	// Fire and forget; Wait drains in-flight publishes.
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), PublishTimeout)
	u.inflight.Add(1)
	go func() {
		defer u.inflight.Done()
		defer cancel()
		if err := u.publisher.Publish(pubCtx, publisher.ApplicationEventsTopic, msg); err != nil {
			u.log.WithError(err).Warn("failed to publish application event", fields)
		}
	}()
}

// Wait blocks until every in-flight event publish has finished.
func (u *DefaultApplicationUsecase) Wait() {
	u.inflight.Wait()
}

func (u *DefaultApplicationUsecase) logFor(app *domain.Application) logger.Logger {
	return u.log.With(map[string]interface{}{
		"application_id": app.ID,
		"merchant_id":    app.MerchantID,
	})
}
