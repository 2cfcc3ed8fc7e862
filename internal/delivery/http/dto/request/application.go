package request

// Binding tags reject structurally incomplete bodies; the usecase still
// validates trimmed values.
type MerchantData struct {
	FirstName    string `json:"firstName" binding:"required"`
	LastName     string `json:"lastName" binding:"required"`
	Email        string `json:"email" binding:"required"`
	Phone        string `json:"phone" binding:"required"`
	City         string `json:"city" binding:"required"`
	BusinessName string `json:"businessName" binding:"required"`
	BusinessType string `json:"businessType" binding:"required"`
}

type Customization struct {
	StoreName        string `json:"storeName"`
	StoreDescription string `json:"storeDescription"`
	PrimaryColor     string `json:"primaryColor" binding:"required"`
	SecondaryColor   string `json:"secondaryColor" binding:"required"`
	BackgroundColor  string `json:"backgroundColor" binding:"required"`
}

type StoreConfig struct {
	Template      string        `json:"template" binding:"required"`
	Customization Customization `json:"customization"`
}

type SubmitApplicationRequest struct {
	MerchantData MerchantData `json:"merchantData"`
	StoreConfig  StoreConfig  `json:"storeConfig"`
}

type RejectApplicationRequest struct {
	Reason string `json:"reason" binding:"required"`
}
