package models

import "time"

type CategoryModel struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	StoreID   string `gorm:"index:idx_categories_store;not null"`
	Slug      string
	Name      string
	NameAr    string
	SortOrder int
	IsSample  bool
	CreatedAt time.Time
}

func (CategoryModel) TableName() string {
	return "store_categories"
}

type ProductModel struct {
	ID            string `gorm:"primaryKey;type:uuid"`
	StoreID       string `gorm:"index:idx_products_store;not null"`
	CategoryID    string `gorm:"index:idx_products_category"`
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

func (ProductModel) TableName() string {
	return "store_products"
}
