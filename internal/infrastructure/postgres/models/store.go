package models

import "time"

type ColorsData struct {
	Primary          string `json:"primary"`
	Secondary        string `json:"secondary"`
	Background       string `json:"background"`
	Accent           string `json:"accent"`
	Text             string `json:"text"`
	Border           string `json:"border"`
	HeaderBackground string `json:"headerBackground"`
	FooterBackground string `json:"footerBackground"`
}

type BrandingData struct {
	LogoURL     string     `json:"logoUrl,omitempty"`
	FaviconURL  string     `json:"faviconUrl,omitempty"`
	Colors      ColorsData `json:"colors"`
	HeadingFont string     `json:"headingFont"`
	BodyFont    string     `json:"bodyFont"`
}

type LayoutData struct {
	HeaderStyle        string `json:"headerStyle"`
	FooterStyle        string `json:"footerStyle"`
	ProductCardStyle   string `json:"productCardStyle"`
	ProductGridColumns int    `json:"productGridColumns"`
	ShowSearchBar      bool   `json:"showSearchBar"`
}

type HomepageData struct {
	Hero             bool `json:"hero"`
	Categories       bool `json:"categories"`
	FeaturedProducts bool `json:"featuredProducts"`
	NewArrivals      bool `json:"newArrivals"`
	Testimonials     bool `json:"testimonials"`
	Newsletter       bool `json:"newsletter"`
}

type SettingsData struct {
	CashOnDelivery        bool    `json:"cashOnDelivery"`
	BankTransfer          bool    `json:"bankTransfer"`
	OnlinePayment         bool    `json:"onlinePayment"`
	FreeShippingThreshold float64 `json:"freeShippingThreshold"`
	StandardShippingRate  float64 `json:"standardShippingRate"`
	ExpressShippingRate   float64 `json:"expressShippingRate"`
	ProcessingDays        int     `json:"processingDays"`
	TaxEnabled            bool    `json:"taxEnabled"`
	TaxRate               float64 `json:"taxRate"`
	TaxIncludedInPrice    bool    `json:"taxIncludedInPrice"`
	OrderEmail            bool    `json:"orderEmail"`
	OrderSMS              bool    `json:"orderSms"`
	LowStockAlert         bool    `json:"lowStockAlert"`
}

type StoreModel struct {
	ID            string `gorm:"primaryKey;type:uuid"`
	Slug          string `gorm:"uniqueIndex:idx_stores_slug;not null"`
	OwnerID       string `gorm:"index:idx_stores_owner;not null"`
	ApplicationID string `gorm:"uniqueIndex:idx_stores_application"`
	TemplateID    string
	Name          string `gorm:"not null"`
	Description   string
	BusinessType  string

	Branding BrandingData `gorm:"type:jsonb;serializer:json"`
	Layout   LayoutData   `gorm:"type:jsonb;serializer:json"`
	Homepage HomepageData `gorm:"type:jsonb;serializer:json"`
	Settings SettingsData `gorm:"type:jsonb;serializer:json"`

	Currency string `gorm:"not null"`
	Language string `gorm:"not null"`

	ContactEmail string
	ContactPhone string
	City         string

	Status    string `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (StoreModel) TableName() string {
	return "stores"
}
