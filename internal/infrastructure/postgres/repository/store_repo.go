package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/LavaJover/shvark-storefront-service/internal/domain"
	"github.com/LavaJover/shvark-storefront-service/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-storefront-service/internal/infrastructure/postgres/models"
)

type DefaultStoreRepository struct {
	db *gorm.DB
}

func NewDefaultStoreRepository(db *gorm.DB) *DefaultStoreRepository {
	return &DefaultStoreRepository{db: db}
}

// CreateStore relies on the unique indexes on slug and application_id. A
// duplicate is reported as ErrStoreExists when the application already owns
// a store, otherwise as ErrSlugTaken.
func (r *DefaultStoreRepository) CreateStore(ctx context.Context, store *domain.Store) error {
	err := r.db.WithContext(ctx).Create(mappers.ToGORMStore(store)).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		return err
	}
	if store.ApplicationID != "" {
		existing, getErr := r.GetStoreByApplicationID(ctx, store.ApplicationID)
		if getErr != nil {
			return getErr
		}
		if existing != nil {
			return domain.ErrStoreExists
		}
	}
	return domain.ErrSlugTaken
}

func (r *DefaultStoreRepository) GetStoreByID(ctx context.Context, id string) (*domain.Store, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *DefaultStoreRepository) GetStoreBySlug(ctx context.Context, slug string) (*domain.Store, error) {
	return r.first(ctx, "slug = ?", slug)
}

func (r *DefaultStoreRepository) GetStoreByApplicationID(ctx context.Context, applicationID string) (*domain.Store, error) {
	return r.first(ctx, "application_id = ?", applicationID)
}

func (r *DefaultStoreRepository) GetStoresByOwnerID(ctx context.Context, ownerID string) ([]*domain.Store, error) {
	var rows []models.StoreModel
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]*domain.Store, 0, len(rows))
	for i := range rows {
		out = append(out, mappers.ToDomainStore(&rows[i]))
	}
	return out, nil
}

func (r *DefaultStoreRepository) first(ctx context.Context, cond string, arg interface{}) (*domain.Store, error) {
	var model models.StoreModel
	if err := r.db.WithContext(ctx).Where(cond, arg).Take(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mappers.ToDomainStore(&model), nil
}
