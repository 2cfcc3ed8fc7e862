package handlers

import (
	"github.com/LavaJover/shvark-storefront-service/internal/delivery/http/dto/request"
	"github.com/LavaJover/shvark-storefront-service/internal/delivery/http/dto/response"
	"github.com/LavaJover/shvark-storefront-service/internal/domain"
	"github.com/LavaJover/shvark-storefront-service/internal/usecase/application"
	applicationdto "github.com/LavaJover/shvark-storefront-service/internal/usecase/dto/application"
)

func toSubmitInput(merchantID string, req *request.SubmitApplicationRequest) *applicationdto.SubmitApplicationInput {
	return &applicationdto.SubmitApplicationInput{
		MerchantID:   merchantID,
		MerchantData: domain.MerchantData(req.MerchantData),
		StoreConfig: domain.StoreConfig{
			TemplateID:    req.StoreConfig.Template,
			Customization: domain.Customization(req.StoreConfig.Customization),
		},
	}
}

func toApplicationResponse(app *domain.Application) *response.ApplicationResponse {
	if app == nil {
		return nil
	}
	return &response.ApplicationResponse{
		ID:           app.ID,
		MerchantID:   app.MerchantID,
		MerchantData: response.MerchantData(app.MerchantData),
		StoreConfig: response.StoreConfig{
			Template:      app.StoreConfig.TemplateID,
			Customization: response.Customization(app.StoreConfig.Customization),
		},
		Status:             string(app.Status),
		SubmittedAt:        app.SubmittedAt,
		ReviewedAt:         app.ReviewedAt,
		ReviewedBy:         app.ReviewedBy,
		RejectionReason:    app.RejectionReason,
		ProvisioningStatus: string(app.ProvisioningStatus),
		ProvisioningError:  app.ProvisioningError,
		StoreID:            app.StoreID,
	}
}

func toApplicationResponses(apps []*domain.Application) []*response.ApplicationResponse {
	out := make([]*response.ApplicationResponse, 0, len(apps))
	for _, app := range apps {
		out = append(out, toApplicationResponse(app))
	}
	return out
}

func toDecisionResponse(d *application.Decision) *response.DecisionResponse {
	return &response.DecisionResponse{
		Application:            toApplicationResponse(d.Application),
		Store:                  toStoreResponse(d.Store),
		NeedsProvisioningRetry: d.NeedsProvisioningRetry(),
	}
}

func toFieldErrors(fields []domain.FieldError) []response.FieldError {
	out := make([]response.FieldError, 0, len(fields))
	for _, f := range fields {
		out = append(out, response.FieldError(f))
	}
	return out
}

func toStoreResponse(s *domain.Store) *response.StoreResponse {
	if s == nil {
		return nil
	}
	out := &response.StoreResponse{
		ID:            s.ID,
		Slug:          s.Slug,
		OwnerID:       s.OwnerID,
		ApplicationID: s.ApplicationID,
		TemplateID:    s.TemplateID,
		Name:          s.Name,
		Description:   s.Description,
		BusinessType:  s.BusinessType,
		Branding: response.Branding{
			LogoURL:    s.Branding.LogoURL,
			FaviconURL: s.Branding.FaviconURL,
			Colors:     response.Colors(s.Branding.Colors),
			Fonts:      response.Fonts(s.Branding.Fonts),
		},
		Layout:    response.Layout(s.Layout),
		Homepage:  response.Homepage(s.Homepage),
		Status:    string(s.Status),
		CreatedAt: s.CreatedAt,
	}

	st := s.Settings
	out.Settings.Currency = st.Currency
	out.Settings.Language = st.Language
	out.Settings.Payment.CashOnDelivery = st.Payment.CashOnDelivery
	out.Settings.Payment.BankTransfer = st.Payment.BankTransfer
	out.Settings.Payment.OnlinePayment = st.Payment.OnlinePayment
	out.Settings.Shipping.FreeShippingThreshold = st.Shipping.FreeShippingThreshold
	out.Settings.Shipping.StandardRate = st.Shipping.StandardRate
	out.Settings.Shipping.ExpressRate = st.Shipping.ExpressRate
	out.Settings.Shipping.ProcessingDays = st.Shipping.ProcessingDays
	out.Settings.Tax.Enabled = st.Tax.Enabled
	out.Settings.Tax.Rate = st.Tax.Rate
	out.Settings.Tax.IncludedInPrice = st.Tax.IncludedInPrice
	out.Settings.Notifications.OrderEmail = st.Notifications.OrderEmail
	out.Settings.Notifications.OrderSMS = st.Notifications.OrderSMS
	out.Settings.Notifications.LowStockAlert = st.Notifications.LowStockAlert
	return out
}

func toStoreResponses(stores []*domain.Store) []*response.StoreResponse {
	out := make([]*response.StoreResponse, 0, len(stores))
	for _, s := range stores {
		out = append(out, toStoreResponse(s))
	}
	return out
}

func toTemplateResponse(t *domain.Template) *response.TemplateResponse {
	if t == nil {
		return nil
	}
	return &response.TemplateResponse{
		ID:          t.ID,
		Name:        t.Name,
		NameAr:      t.NameAr,
		Category:    t.Category,
		Description: t.Description,
		Colors:      response.Colors(t.Colors),
		Fonts:       response.Fonts(t.Fonts),
		Layout:      response.Layout(t.Layout),
		Homepage:    response.Homepage(t.Homepage),
	}
}
