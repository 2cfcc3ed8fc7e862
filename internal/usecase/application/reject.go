package application

import (
	"context"
	"strings"

	"github.com/LavaJover/shvark-storefront-service/internal/domain"
	publisher "github.com/LavaJover/shvark-storefront-service/internal/infrastructure/kafka"
	"github.com/LavaJover/shvark-storefront-service/internal/infrastructure/metrics"
	applicationdto "github.com/LavaJover/shvark-storefront-service/internal/usecase/dto/application"
)

func (u *DefaultApplicationUsecase) RejectApplication(ctx context.Context, input *applicationdto.RejectApplicationInput) (*Decision, error) {
	verr := &domain.ValidationError{}
	if strings.TrimSpace(input.ReviewerID) == "" {
		verr.Add("reviewerId", "is required")
	}
	reason := strings.TrimSpace(input.Reason)
	if reason == "" {
		verr.Add("reason", "is required")
	}
	if verr.HasErrors() {
		return nil, verr
	}

	app, err := u.applicationRepo.GetApplicationByID(ctx, input.ApplicationID)
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
	reviewer := input.ReviewerID
	next := app.Clone()
	next.Status = domain.ApplicationRejected
	next.ReviewedAt = &reviewedAt
	next.ReviewedBy = &reviewer
	next.RejectionReason = &reason

	applied, err := u.commit(ctx, &ApplicationOperation{
		Operation: "reject",
		Previous:  app,
		Next:      next,
		Event:     publisher.EventApplicationRejected,
	})
	if err != nil {
		return nil, err
	}
	if !applied {
		return u.currentState(ctx, input.ApplicationID)
	}

	u.metrics.RecordDecision(metrics.DecisionRejected)
	u.logFor(next).Info("application rejected", map[string]interface{}{
		"reviewer_id": reviewer,
		"reason":      reason,
	})
	return &Decision{Applied: true, Application: next}, nil
}
