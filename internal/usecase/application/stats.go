package application

import (
	"context"

	"github.com/LavaJover/shvark-storefront-service/internal/domain"
)

func (u *DefaultApplicationUsecase) GetApplicationStats(ctx context.Context) (*domain.ApplicationStats, error) {
	apps, err := u.applicationRepo.ListApplications(ctx, nil)
	if err != nil {
		return nil, err
	}
	return Tally(apps), nil
}

func Tally(apps []*domain.Application) *domain.ApplicationStats {
	stats := &domain.ApplicationStats{Total: len(apps)}
	for _, app := range apps {
		switch app.Status {
		case domain.ApplicationPending:
			stats.Pending++
		case domain.ApplicationApproved:
			stats.Approved++
		case domain.ApplicationRejected:
			stats.Rejected++
		}
	}
	return stats
}
