package redisstore

import (
	"fmt"
	"time"

	"github.com/LavaJover/shvark-storefront-service/internal/domain"
)

// applicationDoc is the stored JSON form. Timestamps are RFC3339Nano strings.
type applicationDoc struct {
	ID           string `json:"id"`
	MerchantID   string `json:"merchantId"`
	MerchantData struct {
		FirstName    string `json:"firstName"`
		LastName     string `json:"lastName"`
		Email        string `json:"email"`
		Phone        string `json:"phone"`
		City         string `json:"city"`
		BusinessName string `json:"businessName"`
		BusinessType string `json:"businessType"`
	} `json:"merchantData"`
	StoreConfig struct {
		Template      string `json:"template"`
		Customization struct {
			StoreName        string `json:"storeName"`
			StoreDescription string `json:"storeDescription"`
			PrimaryColor     string `json:"primaryColor"`
			SecondaryColor   string `json:"secondaryColor"`
			BackgroundColor  string `json:"backgroundColor"`
		} `json:"customization"`
	} `json:"storeConfig"`
	Status             string  `json:"status"`
	SubmittedAt        string  `json:"submittedAt"`
	ReviewedAt         *string `json:"reviewedAt,omitempty"`
	ReviewedBy         *string `json:"reviewedBy,omitempty"`
	RejectionReason    *string `json:"rejectionReason,omitempty"`
	ProvisioningStatus string  `json:"provisioningStatus,omitempty"`
	ProvisioningError  string  `json:"provisioningError,omitempty"`
	ProvisioningAt     *string `json:"provisioningStartedAt,omitempty"`
	StoreID            string  `json:"storeId,omitempty"`
	Version            int64   `json:"version"`
}

func toDoc(app *domain.Application) *applicationDoc {
	d := &applicationDoc{
		ID:                 app.ID,
		MerchantID:         app.MerchantID,
		Status:             string(app.Status),
		SubmittedAt:        app.SubmittedAt.UTC().Format(time.RFC3339Nano),
		ReviewedBy:         app.ReviewedBy,
		RejectionReason:    app.RejectionReason,
		ProvisioningStatus: string(app.ProvisioningStatus),
		ProvisioningError:  app.ProvisioningError,
		StoreID:            app.StoreID,
		Version:            app.Version,
	}
	md := app.MerchantData
	d.MerchantData.FirstName = md.FirstName
	d.MerchantData.LastName = md.LastName
	d.MerchantData.Email = md.Email
	d.MerchantData.Phone = md.Phone
	d.MerchantData.City = md.City
	d.MerchantData.BusinessName = md.BusinessName
	d.MerchantData.BusinessType = md.BusinessType

	c := app.StoreConfig.Customization
	d.StoreConfig.Template = app.StoreConfig.TemplateID
	d.StoreConfig.Customization.StoreName = c.StoreName
	d.StoreConfig.Customization.StoreDescription = c.StoreDescription
	d.StoreConfig.Customization.PrimaryColor = c.PrimaryColor
	d.StoreConfig.Customization.SecondaryColor = c.SecondaryColor
	d.StoreConfig.Customization.BackgroundColor = c.BackgroundColor

	d.ReviewedAt = formatTime(app.ReviewedAt)
	d.ProvisioningAt = formatTime(app.ProvisioningStartedAt)
	return d
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339Nano)
	return &s
}

func parseTime(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339Nano, *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (d *applicationDoc) toDomain() (*domain.Application, error) {
	submitted, err := time.Parse(time.RFC3339Nano, d.SubmittedAt)
	if err != nil {
		return nil, fmt.Errorf("application %s: bad submittedAt: %w", d.ID, err)
	}
	app := &domain.Application{
		ID:         d.ID,
		MerchantID: d.MerchantID,
		MerchantData: domain.MerchantData{
			FirstName:    d.MerchantData.FirstName,
			LastName:     d.MerchantData.LastName,
			Email:        d.MerchantData.Email,
			Phone:        d.MerchantData.Phone,
			City:         d.MerchantData.City,
			BusinessName: d.MerchantData.BusinessName,
			BusinessType: d.MerchantData.BusinessType,
		},
		StoreConfig: domain.StoreConfig{
			TemplateID: d.StoreConfig.Template,
			Customization: domain.Customization{
				StoreName:        d.StoreConfig.Customization.StoreName,
				StoreDescription: d.StoreConfig.Customization.StoreDescription,
				PrimaryColor:     d.StoreConfig.Customization.PrimaryColor,
				SecondaryColor:   d.StoreConfig.Customization.SecondaryColor,
				BackgroundColor:  d.StoreConfig.Customization.BackgroundColor,
			},
		},
		Status:             domain.ApplicationStatus(d.Status),
		SubmittedAt:        submitted,
		ReviewedBy:         d.ReviewedBy,
		RejectionReason:    d.RejectionReason,
		ProvisioningStatus: domain.ProvisioningStatus(d.ProvisioningStatus),
		ProvisioningError:  d.ProvisioningError,
		StoreID:            d.StoreID,
		Version:            d.Version,
	}
	if app.ReviewedAt, err = parseTime(d.ReviewedAt); err != nil {
		return nil, fmt.Errorf("application %s: bad reviewedAt: %w", d.ID, err)
	}
	if app.ProvisioningStartedAt, err = parseTime(d.ProvisioningAt); err != nil {
		return nil, fmt.Errorf("application %s: bad provisioningStartedAt: %w", d.ID, err)
	}
	return app, nil
}
