package mappers

import (
	"github.com/LavaJover/shvark-storefront-service/internal/domain"
	"github.com/LavaJover/shvark-storefront-service/internal/infrastructure/postgres/models"
)

func ToDomainStore(model *models.StoreModel) *domain.Store {
	b, l, h, s := model.Branding, model.Layout, model.Homepage, model.Settings
	return &domain.Store{
		ID:            model.ID,
		Slug:          model.Slug,
		OwnerID:       model.OwnerID,
		ApplicationID: model.ApplicationID,
		TemplateID:    model.TemplateID,
		Name:          model.Name,
		Description:   model.Description,
		BusinessType:  model.BusinessType,
		Branding: domain.StoreBranding{
			LogoURL:    b.LogoURL,
			FaviconURL: b.FaviconURL,
			Colors:     domain.StoreColors(b.Colors),
			Fonts:      domain.StoreFonts{Heading: b.HeadingFont, Body: b.BodyFont},
		},
		Layout:   domain.StoreLayout(l),
		Homepage: domain.HomepageSections(h),
		Settings: domain.StoreSettings{
			Currency: model.Currency,
			Language: model.Language,
			Payment: domain.PaymentSettings{
				CashOnDelivery: s.CashOnDelivery,
				BankTransfer:   s.BankTransfer,
				OnlinePayment:  s.OnlinePayment,
			},
			Shipping: domain.ShippingSettings{
				FreeShippingThreshold: s.FreeShippingThreshold,
				StandardRate:          s.StandardShippingRate,
				ExpressRate:           s.ExpressShippingRate,
				ProcessingDays:        s.ProcessingDays,
			},
			Tax: domain.TaxSettings{
				Enabled:         s.TaxEnabled,
				Rate:            s.TaxRate,
				IncludedInPrice: s.TaxIncludedInPrice,
			},
			Notifications: domain.NotificationSettings{
				OrderEmail:    s.OrderEmail,
				OrderSMS:      s.OrderSMS,
				LowStockAlert: s.LowStockAlert,
			},
		},
		Contact: domain.StoreContact{
			Email: model.ContactEmail,
			Phone: model.ContactPhone,
			City:  model.City,
		},
		Status:    domain.StoreStatus(model.Status),
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func ToGORMStore(store *domain.Store) *models.StoreModel {
	b, st := store.Branding, store.Settings
	return &models.StoreModel{
		ID:            store.ID,
		Slug:          store.Slug,
		OwnerID:       store.OwnerID,
		ApplicationID: store.ApplicationID,
		TemplateID:    store.TemplateID,
		Name:          store.Name,
		Description:   store.Description,
		BusinessType:  store.BusinessType,
		Branding: models.BrandingData{
			LogoURL:     b.LogoURL,
			FaviconURL:  b.FaviconURL,
			Colors:      models.ColorsData(b.Colors),
			HeadingFont: b.Fonts.Heading,
			BodyFont:    b.Fonts.Body,
		},
		Layout:   models.LayoutData(store.Layout),
		Homepage: models.HomepageData(store.Homepage),
		Settings: models.SettingsData{
			CashOnDelivery:        st.Payment.CashOnDelivery,
			BankTransfer:          st.Payment.BankTransfer,
			OnlinePayment:         st.Payment.OnlinePayment,
			FreeShippingThreshold: st.Shipping.FreeShippingThreshold,
			StandardShippingRate:  st.Shipping.StandardRate,
			ExpressShippingRate:   st.Shipping.ExpressRate,
			ProcessingDays:        st.Shipping.ProcessingDays,
			TaxEnabled:            st.Tax.Enabled,
			TaxRate:               st.Tax.Rate,
			TaxIncludedInPrice:    st.Tax.IncludedInPrice,
			OrderEmail:            st.Notifications.OrderEmail,
			OrderSMS:              st.Notifications.OrderSMS,
			LowStockAlert:         st.Notifications.LowStockAlert,
		},
		Currency:     st.Currency,
		Language:     st.Language,
		ContactEmail: store.Contact.Email,
		ContactPhone: store.Contact.Phone,
		City:         store.Contact.City,
		Status:       string(store.Status),
		CreatedAt:    store.CreatedAt,
		UpdatedAt:    store.UpdatedAt,
	}
}
