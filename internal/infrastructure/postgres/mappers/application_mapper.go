package mappers

import (
	"github.com/LavaJover/shvark-storefront-service/internal/domain"
	"github.com/LavaJover/shvark-storefront-service/internal/infrastructure/postgres/models"
)

func ToDomainApplication(model *models.ApplicationModel) *domain.Application {
	return &domain.Application{
		ID:         model.ID,
		MerchantID: model.MerchantID,
		MerchantData: domain.MerchantData{
			FirstName:    model.FirstName,
			LastName:     model.LastName,
			Email:        model.Email,
			Phone:        model.Phone,
			City:         model.City,
			BusinessName: model.BusinessName,
			BusinessType: model.BusinessType,
		},
		StoreConfig: domain.StoreConfig{
			TemplateID: model.TemplateID,
			Customization: domain.Customization{
				StoreName:        model.StoreName,
				StoreDescription: model.StoreDescription,
				PrimaryColor:     model.PrimaryColor,
				SecondaryColor:   model.SecondaryColor,
				BackgroundColor:  model.BackgroundColor,
			},
		},
		Status:             domain.ApplicationStatus(model.Status),
		SubmittedAt:        model.SubmittedAt,
		ReviewedAt:         model.ReviewedAt,
		ReviewedBy:         model.ReviewedBy,
		RejectionReason:    model.RejectionReason,
		ProvisioningStatus: domain.ProvisioningStatus(model.ProvisioningStatus),
		ProvisioningError:  model.ProvisioningError,
		StoreID:            model.StoreID,
		Version:            model.Version,

		ProvisioningStartedAt: model.ProvisioningStartedAt,
	}
}

func ToGORMApplication(app *domain.Application) *models.ApplicationModel {
	md := app.MerchantData
	c := app.StoreConfig.Customization
	return &models.ApplicationModel{
		ID:                 app.ID,
		MerchantID:         app.MerchantID,
		FirstName:          md.FirstName,
		LastName:           md.LastName,
		Email:              md.Email,
		Phone:              md.Phone,
		City:               md.City,
		BusinessName:       md.BusinessName,
		BusinessType:       md.BusinessType,
		TemplateID:         app.StoreConfig.TemplateID,
		StoreName:          c.StoreName,
		StoreDescription:   c.StoreDescription,
		PrimaryColor:       c.PrimaryColor,
		SecondaryColor:     c.SecondaryColor,
		BackgroundColor:    c.BackgroundColor,
		Status:             string(app.Status),
		SubmittedAt:        app.SubmittedAt,
		ReviewedAt:         app.ReviewedAt,
		ReviewedBy:         app.ReviewedBy,
		RejectionReason:    app.RejectionReason,
		ProvisioningStatus: string(app.ProvisioningStatus),
		ProvisioningError:  app.ProvisioningError,
		StoreID:            app.StoreID,
		Version:            app.Version,

		ProvisioningStartedAt: app.ProvisioningStartedAt,
	}
}
