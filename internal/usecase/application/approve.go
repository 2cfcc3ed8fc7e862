package application

import (
	"context"
	"strings"

	"github.com/LavaJover/shvark-storefront-service/internal/domain"
	publisher "github.com/LavaJover/shvark-storefront-service/internal/infrastructure/kafka"
	"github.com/LavaJover/shvark-storefront-service/internal/infrastructure/metrics"
)

// ApproveApplication moves a pending application to approved and then
// provisions and seeds its store. Provisioning problems never undo the
// approval; they show up as ProvisioningFailed on the returned application.
func (u *DefaultApplicationUsecase) ApproveApplication(ctx context.Context, applicationID, reviewerID string) (*Decision, error) {
	if strings.TrimSpace(reviewerID) == "" {
		verr := &domain.ValidationError{}
		verr.Add("reviewerId", "is required")
		return nil, verr
	}

	app, err := u.applicationRepo.GetApplicationByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return &Decision{}, nil
	}
	if app.Status != domain.ApplicationPending {
		return &Decision{Application: app}, nil
	}

	reviewedAt := u.now()
	next := app.Clone()
	next.Status = domain.ApplicationApproved
	next.ReviewedAt = &reviewedAt
	next.ReviewedBy = &reviewerID
	next.ProvisioningStatus = domain.ProvisioningPending
	next.ProvisioningStartedAt = &reviewedAt

	applied, err := u.commit(ctx, &ApplicationOperation{
		Operation: "approve",
		Previous:  app,
		Next:      next,
		Event:     publisher.EventApplicationApproved,
	})
	if err != nil {
		return nil, err
	}
	if !applied {
		return u.currentState(ctx, applicationID)
	}

	u.metrics.RecordDecision(metrics.DecisionApproved)
	u.logFor(next).Info("application approved", map[string]interface{}{"reviewer_id": reviewerID})

	// The approval is committed; provisioning outlives the caller.
	final, store := u.provisionStore(context.WithoutCancel(ctx), next)
	return &Decision{Applied: true, Application: final, Store: store}, nil
}

func (u *DefaultApplicationUsecase) currentState(ctx context.Context, applicationID string) (*Decision, error) {
	current, err := u.applicationRepo.GetApplicationByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	return &Decision{Application: current}, nil
}
