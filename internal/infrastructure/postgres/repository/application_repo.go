package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/LavaJover/shvark-storefront-service/internal/domain"
	"github.com/LavaJover/shvark-storefront-service/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-storefront-service/internal/infrastructure/postgres/models"
)

type DefaultApplicationRepository struct {
	db *gorm.DB
}

func NewDefaultApplicationRepository(db *gorm.DB) *DefaultApplicationRepository {
	return &DefaultApplicationRepository{db: db}
}

// CreateApplication maps a unique violation on the one-active-application
// index to ErrActiveApplicationExists.
func (r *DefaultApplicationRepository) CreateApplication(ctx context.Context, app *domain.Application) error {
	if err := r.db.WithContext(ctx).Create(mappers.ToGORMApplication(app)).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrActiveApplicationExists
		}
		return err
	}
	return nil
}

func (r *DefaultApplicationRepository) GetApplicationByID(ctx context.Context, id string) (*domain.Application, error) {
	var model models.ApplicationModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mappers.ToDomainApplication(&model), nil
}

func (r *DefaultApplicationRepository) GetApplicationsByMerchantID(ctx context.Context, merchantID string) ([]*domain.Application, error) {
	var rows []models.ApplicationModel
	if err := r.db.WithContext(ctx).
		Where("merchant_id = ?", merchantID).
		Order("submitted_at DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return toDomainApplications(rows), nil
}

func (r *DefaultApplicationRepository) ListApplications(ctx context.Context, status *domain.ApplicationStatus) ([]*domain.Application, error) {
	query := r.db.WithContext(ctx).Model(&models.ApplicationModel{})
	if status != nil {
		query = query.Where("status = ?", string(*status))
	}
	var rows []models.ApplicationModel
	if err := query.Order("submitted_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return toDomainApplications(rows), nil
}

// UpdateApplication writes the mutable lifecycle columns guarded by the
// version the caller read. Identity, merchant data and store config are never rewritten.
func (r *DefaultApplicationRepository) UpdateApplication(ctx context.Context, app *domain.Application) error {
	res := r.db.WithContext(ctx).
		Model(&models.ApplicationModel{}).
		Where("id = ? AND version = ?", app.ID, app.Version).
		Updates(map[string]interface{}{
			"status":                  string(app.Status),
			"reviewed_at":             app.ReviewedAt,
			"reviewed_by":             app.ReviewedBy,
			"rejection_reason":        app.RejectionReason,
			"provisioning_status":     string(app.ProvisioningStatus),
			"provisioning_error":      app.ProvisioningError,
			"provisioning_started_at": app.ProvisioningStartedAt,
			"store_id":                app.StoreID,
			"version":                 gorm.Expr("version + 1"),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrConcurrentUpdate
	}
	app.Version++
	return nil
}

func toDomainApplications(rows []models.ApplicationModel) []*domain.Application {
	out := make([]*domain.Application, 0, len(rows))
	for i := range rows {
		out = append(out, mappers.ToDomainApplication(&rows[i]))
	}
	return out
}
