package mappers

import (
	"github.com/LavaJover/shvark-storefront-service/internal/domain"
	"github.com/LavaJover/shvark-storefront-service/internal/infrastructure/postgres/models"
)

func ToGORMCategory(c *domain.Category) *models.CategoryModel {
	return &models.CategoryModel{
		ID:        c.ID,
		StoreID:   c.StoreID,
		Slug:      c.Slug,
		Name:      c.Name,
		NameAr:    c.NameAr,
		SortOrder: c.SortOrder,
		IsSample:  c.IsSample,
		CreatedAt: c.CreatedAt,
	}
}

func ToGORMProduct(p *domain.Product) *models.ProductModel {
	return &models.ProductModel{
		ID:            p.ID,
		StoreID:       p.StoreID,
		CategoryID:    p.CategoryID,
		Name:          p.Name,
		NameAr:        p.NameAr,
		Description:   p.Description,
		DescriptionAr: p.DescriptionAr,
		Price:         p.Price,
		ComparePrice:  p.ComparePrice,
		Currency:      p.Currency,
		Stock:         p.Stock,
		ImageURL:      p.ImageURL,
		IsFeatured:    p.IsFeatured,
		IsSample:      p.IsSample,
		CreatedAt:     p.CreatedAt,
	}
}
