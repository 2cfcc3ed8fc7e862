package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/LavaJover/shvark-storefront-service/internal/domain"
	"github.com/LavaJover/shvark-storefront-service/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-storefront-service/internal/infrastructure/postgres/models"
)

type DefaultCatalogRepository struct {
	db *gorm.DB
}

func NewDefaultCatalogRepository(db *gorm.DB) *DefaultCatalogRepository {
	return &DefaultCatalogRepository{db: db}
}

// SeedCatalog inserts categories before products in one transaction. Rows
// whose primary key already exists are skipped.
func (r *DefaultCatalogRepository) SeedCatalog(ctx context.Context, categories []*domain.Category, products []*domain.Product) (int64, error) {
	var inserted int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(categories) > 0 {
			rows := make([]*models.CategoryModel, 0, len(categories))
			for _, c := range categories {
				rows = append(rows, mappers.ToGORMCategory(c))
			}
			res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows)
			if res.Error != nil {
				return res.Error
			}
			inserted += res.RowsAffected
		}
		if len(products) > 0 {
			rows := make([]*models.ProductModel, 0, len(products))
			for _, p := range products {
				rows = append(rows, mappers.ToGORMProduct(p))
			}
			res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows)
			if res.Error != nil {
				return res.Error
			}
			inserted += res.RowsAffected
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}
