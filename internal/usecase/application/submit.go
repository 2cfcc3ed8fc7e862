package application

import (
	"context"
	"strings"

	"github.com/LavaJover/shvark-storefront-service/internal/domain"
	publisher "github.com/LavaJover/shvark-storefront-service/internal/infrastructure/kafka"
	applicationdto "github.com/LavaJover/shvark-storefront-service/internal/usecase/dto/application"
)

func validateSubmission(input *applicationdto.SubmitApplicationInput) error {
	verr := &domain.ValidationError{}
	required := func(field, value string) {
		if strings.TrimSpace(value) == "" {
			verr.Add(field, "is required")
		}
	}

	required("merchantId", input.MerchantID)

	md := input.MerchantData
	required("merchantData.firstName", md.FirstName)
	required("merchantData.lastName", md.LastName)
	required("merchantData.email", md.Email)
	required("merchantData.phone", md.Phone)
	required("merchantData.city", md.City)
	required("merchantData.businessName", md.BusinessName)
	required("merchantData.businessType", md.BusinessType)

	c := input.StoreConfig.Customization
	required("storeConfig.customization.primaryColor", c.PrimaryColor)
	required("storeConfig.customization.secondaryColor", c.SecondaryColor)
	required("storeConfig.customization.backgroundColor", c.BackgroundColor)

	if verr.HasErrors() {
		return verr
	}
	return nil
}

// SubmitApplication records a new pending application and returns its id.
// A merchant may hold at most one application that is not rejected.
func (u *DefaultApplicationUsecase) SubmitApplication(ctx context.Context, input *applicationdto.SubmitApplicationInput) (string, error) {
	if input == nil {
		input = &applicationdto.SubmitApplicationInput{}
	}
	if err := validateSubmission(input); err != nil {
		return "", err
	}

	existing, err := u.applicationRepo.GetApplicationsByMerchantID(ctx, input.MerchantID)
	if err != nil {
		return "", err
	}
	for _, app := range existing {
		if app.Status != domain.ApplicationRejected {
			return "", domain.ErrActiveApplicationExists
		}
	}

	app := &domain.Application{
		ID:           u.newID(),
		MerchantID:   input.MerchantID,
		MerchantData: input.MerchantData,
		StoreConfig:  input.StoreConfig,
		Status:       domain.ApplicationPending,
		SubmittedAt:  u.now(),
		Version:      1,
	}
	if err := u.applicationRepo.CreateApplication(ctx, app); err != nil {
		return "", err
	}

	u.metrics.RecordSubmitted(app.StoreConfig.TemplateID, app.MerchantData.BusinessType)
	op := &ApplicationOperation{Operation: "submit", Next: app, Event: publisher.EventApplicationSubmitted}
	u.audit(ctx, op)
	u.publish(ctx, op)

	u.logFor(app).Info("application submitted", map[string]interface{}{
		"template_id": app.StoreConfig.TemplateID,
	})
	return app.ID, nil
}
