package application

import (
	"context"
	"time"

	"github.com/LavaJover/shvark-storefront-service/internal/domain"
	publisher "github.com/LavaJover/shvark-storefront-service/internal/infrastructure/kafka"
	"github.com/LavaJover/shvark-storefront-service/internal/infrastructure/metrics"
)

// StalePendingAfter is how long a provisioning claim may stay pending
// before the background retry picks it up.
const StalePendingAfter = 5 * time.Minute

// provisionStore creates and seeds the store for an approved application and
// records the outcome on it. The returned application reflects what was
// persisted, re-read when another writer recorded first.
func (u *DefaultApplicationUsecase) provisionStore(ctx context.Context, app *domain.Application) (*domain.Application, *domain.Store) {
	log := u.logFor(app)
	started := time.Now()

	res := u.provisioner.Provision(ctx, app)
	store, provErr := res.Store, res.Err
	if provErr == nil {
		if _, err := u.seeder.Seed(ctx, store); err != nil {
			provErr = err
		}
	}

	next := app.Clone()
	op := &ApplicationOperation{Operation: "provision", Previous: app, Next: next}
	if store != nil {
		next.StoreID = store.ID
	}
	if provErr != nil {
		next.ProvisioningStatus = domain.ProvisioningFailed
		next.ProvisioningError = provErr.Error()
		op.Event = publisher.EventProvisioningFailed
		u.metrics.RecordProvisioning(metrics.ProvisioningFailed, started)
		log.WithError(provErr).Error("store setup failed, approval kept", nil)
	} else {
		next.ProvisioningStatus = domain.ProvisioningDone
		next.ProvisioningError = ""
		op.Event = publisher.EventStoreProvisioned
		u.metrics.RecordProvisioning(metrics.ProvisioningSucceeded, started)
		log.Info("store provisioned", map[string]interface{}{
			"store_id": store.ID,
			"slug":     store.Slug,
			"reused":   res.Reused,
		})
	}

	applied, err := u.commit(ctx, op)
	if err != nil || !applied {
		log.WithError(err).Error("failed to record provisioning outcome", map[string]interface{}{
			"provisioning_status": string(next.ProvisioningStatus),
		})
		current, getErr := u.applicationRepo.GetApplicationByID(ctx, app.ID)
		if getErr != nil || current == nil {
			return app, store
		}
		return current, store
	}
	return next, store
}

// RetryProvisioning re-runs store setup for an approved application whose
// provisioning failed or never finished.
func (u *DefaultApplicationUsecase) RetryProvisioning(ctx context.Context, applicationID string) (*Decision, error) {
	app, err := u.applicationRepo.GetApplicationByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return &Decision{}, nil
	}
	if app.Status != domain.ApplicationApproved ||
		(app.ProvisioningStatus != domain.ProvisioningFailed && app.ProvisioningStatus != domain.ProvisioningPending) {
		return &Decision{Application: app}, nil
	}

	claimedAt := u.now()
	claim := app.Clone()
	claim.ProvisioningStatus = domain.ProvisioningPending
	claim.ProvisioningError = ""
	claim.ProvisioningStartedAt = &claimedAt
	applied, err := u.commit(ctx, &ApplicationOperation{
		Operation: "retry_provisioning",
		Previous:  app,
		Next:      claim,
	})
	if err != nil {
		return nil, err
	}
	if !applied {
		return u.currentState(ctx, applicationID)
	}

	final, store := u.provisionStore(context.WithoutCancel(ctx), claim)
	return &Decision{Applied: true, Application: final, Store: store}, nil
}

// RetryFailedProvisioning retries every approved application with failed or
// stale pending provisioning. It returns how many now have a store.
func (u *DefaultApplicationUsecase) RetryFailedProvisioning(ctx context.Context) (int, error) {
	approved := domain.ApplicationApproved
	apps, err := u.applicationRepo.ListApplications(ctx, &approved)
	if err != nil {
		return 0, err
	}

	staleBefore := u.now().Add(-StalePendingAfter)
	recovered := 0
	for _, app := range apps {
		switch app.ProvisioningStatus {
		case domain.ProvisioningFailed:
		case domain.ProvisioningPending:
			if !claimStale(app, staleBefore) {
				continue
			}
		default:
			continue
		}
		if err := ctx.Err(); err != nil {
			return recovered, err
		}

		decision, err := u.RetryProvisioning(ctx, app.ID)
		if err != nil {
			u.logFor(app).WithError(err).Error("provisioning retry failed", nil)
			continue
		}
		if decision.Applied && decision.Application.ProvisioningStatus == domain.ProvisioningDone {
			recovered++
		}
	}
	return recovered, nil
}

// claimStale reports a pending claim older than staleBefore. Rows written
// before claims were timestamped fall back to the review time.
func claimStale(app *domain.Application, staleBefore time.Time) bool {
	claimed := app.ProvisioningStartedAt
	if claimed == nil {
		claimed = app.ReviewedAt
	}
	return claimed != nil && !claimed.After(staleBefore)
}
