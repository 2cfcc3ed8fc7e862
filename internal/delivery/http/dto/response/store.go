package response

import "time"

type Colors struct {
	Primary          string `json:"primary"`
	Secondary        string `json:"secondary"`
	Background       string `json:"background"`
	Accent           string `json:"accent"`
	Text             string `json:"text"`
	Border           string `json:"border"`
	HeaderBackground string `json:"headerBackground"`
	FooterBackground string `json:"footerBackground"`
}

type Fonts struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
}

type Branding struct {
	LogoURL    string `json:"logoUrl,omitempty"`
	FaviconURL string `json:"faviconUrl,omitempty"`
	Colors     Colors `json:"colors"`
	Fonts      Fonts  `json:"fonts"`
}

type Layout struct {
	HeaderStyle        string `json:"headerStyle"`
	FooterStyle        string `json:"footerStyle"`
	ProductCardStyle   string `json:"productCardStyle"`
	ProductGridColumns int    `json:"productGridColumns"`
	ShowSearchBar      bool   `json:"showSearchBar"`
}

type Homepage struct {
	Hero             bool `json:"hero"`
	Categories       bool `json:"categories"`
	FeaturedProducts bool `json:"featuredProducts"`
	NewArrivals      bool `json:"newArrivals"`
	Testimonials     bool `json:"testimonials"`
	Newsletter       bool `json:"newsletter"`
}

type Settings struct {
	Currency string `json:"currency"`
	Language string `json:"language"`
	Payment  struct {
		CashOnDelivery bool `json:"cashOnDelivery"`
		BankTransfer   bool `json:"bankTransfer"`
		OnlinePayment  bool `json:"onlinePayment"`
	} `json:"payment"`
	Shipping struct {
		FreeShippingThreshold float64 `json:"freeShippingThreshold"`
		StandardRate          float64 `json:"standardRate"`
		ExpressRate           float64 `json:"expressRate"`
		ProcessingDays        int     `json:"processingDays"`
	} `json:"shipping"`
	Tax struct {
		Enabled         bool    `json:"enabled"`
		Rate            float64 `json:"rate"`
		IncludedInPrice bool    `json:"includedInPrice"`
	} `json:"tax"`
	Notifications struct {
		OrderEmail    bool `json:"orderEmail"`
		OrderSMS      bool `json:"orderSms"`
		LowStockAlert bool `json:"lowStockAlert"`
	} `json:"notifications"`
}

type StoreResponse struct {
	ID            string    `json:"id"`
	Slug          string    `json:"slug"`
	OwnerID       string    `json:"ownerId"`
	ApplicationID string    `json:"applicationId"`
	TemplateID    string    `json:"templateId"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	BusinessType  string    `json:"businessType"`
	Branding      Branding  `json:"branding"`
	Layout        Layout    `json:"layout"`
	Homepage      Homepage  `json:"homepage"`
	Settings      Settings  `json:"settings"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

type TemplateResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	NameAr      string   `json:"nameAr"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Colors      Colors   `json:"colors"`
	Fonts       Fonts    `json:"fonts"`
	Layout      Layout   `json:"layout"`
	Homepage    Homepage `json:"homepage"`
}
