package domain

import (
	"context"
	"time"
)

type Category struct {
	ID        string
	StoreID   string
	Slug      string
	Name      string
	NameAr    string
	SortOrder int
	IsSample  bool
	CreatedAt time.Time
}

type Product struct {
	ID            string
	StoreID       string
	CategoryID    string
	Name          string
	NameAr        string
	Description   string
	DescriptionAr string
	Price         float64
	ComparePrice  float64
	Currency      string
	Stock         int
	ImageURL      string
	IsFeatured    bool
	IsSample      bool
	CreatedAt     time.Time
}

type CatalogRepository interface {
	// SeedCatalog inserts categories and products, skipping rows whose ID
	// already exists. Returns the number of rows actually inserted.
	SeedCatalog(ctx context.Context, categories []*Category, products []*Product) (int64, error)
}
