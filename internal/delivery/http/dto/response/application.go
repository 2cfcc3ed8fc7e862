package response

import "time"

type MerchantData struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	City         string `json:"city"`
	BusinessName string `json:"businessName"`
	BusinessType string `json:"businessType"`
}

type Customization struct {
	StoreName        string `json:"storeName"`
	StoreDescription string `json:"storeDescription"`
	PrimaryColor     string `json:"primaryColor"`
	SecondaryColor   string `json:"secondaryColor"`
	BackgroundColor  string `json:"backgroundColor"`
}

type StoreConfig struct {
	Template      string        `json:"template"`
	Customization Customization `json:"customization"`
}

type ApplicationResponse struct {
	ID                 string       `json:"id"`
	MerchantID         string       `json:"merchantId"`
	MerchantData       MerchantData `json:"merchantData"`
	StoreConfig        StoreConfig  `json:"storeConfig"`
	Status             string       `json:"status"`
	SubmittedAt        time.Time    `json:"submittedAt"`
	ReviewedAt         *time.Time   `json:"reviewedAt,omitempty"`
	ReviewedBy         *string      `json:"reviewedBy,omitempty"`
	RejectionReason    *string      `json:"rejectionReason,omitempty"`
	ProvisioningStatus string       `json:"provisioningStatus,omitempty"`
	ProvisioningError  string       `json:"provisioningError,omitempty"`
	StoreID            string       `json:"storeId,omitempty"`
}

type SubmitApplicationResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type DecisionResponse struct {
	Application            *ApplicationResponse `json:"application"`
	Store                  *StoreResponse       `json:"store,omitempty"`
	NeedsProvisioningRetry bool                 `json:"needsProvisioningRetry"`
}

type StatsResponse struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
