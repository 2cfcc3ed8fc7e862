package domain

import (
	"context"
	"time"
)

type StoreStatus string

const (
	StoreActive   StoreStatus = "active"
	StoreInactive StoreStatus = "inactive"
)

type StoreColors struct {
	Primary          string
	Secondary        string
	Background       string
	Accent           string
	Text             string
	Border           string
	HeaderBackground string
	FooterBackground string
}

type StoreFonts struct {
	Heading string
	Body    string
}

type StoreBranding struct {
	LogoURL    string
	FaviconURL string
	Colors     StoreColors
	Fonts      StoreFonts
}

type StoreLayout struct {
	HeaderStyle        string
	FooterStyle        string
	ProductCardStyle   string
	ProductGridColumns int
	ShowSearchBar      bool
}

type HomepageSections struct {
	Hero             bool
	Categories       bool
	FeaturedProducts bool
	NewArrivals      bool
	Testimonials     bool
	Newsletter       bool
}

type PaymentSettings struct {
	CashOnDelivery bool
	BankTransfer   bool
	OnlinePayment  bool
}

type ShippingSettings struct {
	FreeShippingThreshold float64
	StandardRate          float64
	ExpressRate           float64
	ProcessingDays        int
}

type TaxSettings struct {
	Enabled         bool
	Rate            float64
	IncludedInPrice bool
}

type NotificationSettings struct {
	OrderEmail    bool
	OrderSMS      bool
	LowStockAlert bool
}

type StoreSettings struct {
	Currency      string
	Language      string
	Payment       PaymentSettings
	Shipping      ShippingSettings
	Tax           TaxSettings
	Notifications NotificationSettings
}

type StoreContact struct {
	Email string
	Phone string
	City  string
}

type Store struct {
	ID            string
	Slug          string
	OwnerID       string
	ApplicationID string
	TemplateID    string
	Name          string
	Description   string
	BusinessType  string
	Branding      StoreBranding
	Layout        StoreLayout
	Homepage      HomepageSections
	Settings      StoreSettings
	Contact       StoreContact
	Status        StoreStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type StoreRepository interface {
	// CreateStore returns ErrSlugTaken when the slug is already used and
	// ErrStoreExists when a store was already created for the application.
	CreateStore(ctx context.Context, store *Store) error
	GetStoreByID(ctx context.Context, id string) (*Store, error)
	GetStoreBySlug(ctx context.Context, slug string) (*Store, error)
	GetStoreByApplicationID(ctx context.Context, applicationID string) (*Store, error)
	GetStoresByOwnerID(ctx context.Context, ownerID string) ([]*Store, error)
}
