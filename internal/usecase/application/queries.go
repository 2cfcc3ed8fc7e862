package application

import (
	"context"

	"github.com/LavaJover/shvark-storefront-service/internal/domain"
)

// GetApplicationByID returns nil, nil for an unknown id.
func (u *DefaultApplicationUsecase) GetApplicationByID(ctx context.Context, applicationID string) (*domain.Application, error) {
	return u.applicationRepo.GetApplicationByID(ctx, applicationID)
}

// GetApplicationByMerchantID returns the merchant's most recent application, or nil.
func (u *DefaultApplicationUsecase) GetApplicationByMerchantID(ctx context.Context, merchantID string) (*domain.Application, error) {
	apps, err := u.applicationRepo.GetApplicationsByMerchantID(ctx, merchantID)
	if err != nil {
		return nil, err
	}
	if len(apps) == 0 {
		return nil, nil
	}
	return apps[0], nil
}

func (u *DefaultApplicationUsecase) ListApplications(ctx context.Context, status *domain.ApplicationStatus) ([]*domain.Application, error) {
	apps, err := u.applicationRepo.ListApplications(ctx, status)
	if err != nil {
		return nil, err
	}
	if apps == nil {
		apps = []*domain.Application{}
	}
	return apps, nil
}
