package provisioning

import "github.com/LavaJover/shvark-storefront-service/internal/domain"

// Platform defaults applied to every new store. Template values win for
// colors and fonts when the template defines them.
var (
	defaultColors = domain.StoreColors{
		Primary:          "#111827",
		Secondary:        "#6B7280",
		Background:       "#FFFFFF",
		Accent:           "#3B82F6",
		Text:             "#111827",
		Border:           "#E5E7EB",
		HeaderBackground: "#FFFFFF",
		FooterBackground: "#F9FAFB",
	}

	defaultFonts = domain.StoreFonts{Heading: "Cairo", Body: "Cairo"}

	defaultLayout = domain.StoreLayout{
		HeaderStyle:        "left-aligned",
		FooterStyle:        "columns",
		ProductCardStyle:   "rounded",
		ProductGridColumns: 4,
		ShowSearchBar:      true,
	}

	defaultHomepage = domain.HomepageSections{
		Hero:             true,
		Categories:       true,
		FeaturedProducts: true,
		NewArrivals:      true,
		Testimonials:     false,
		Newsletter:       false,
	}

	defaultPayment = domain.PaymentSettings{
		CashOnDelivery: true,
		BankTransfer:   true,
		OnlinePayment:  false,
	}

	defaultShipping = domain.ShippingSettings{
		FreeShippingThreshold: 200,
		StandardRate:          25,
		ExpressRate:           50,
		ProcessingDays:        2,
	}

	defaultTax = domain.TaxSettings{
		Enabled:         true,
		Rate:            15,
		IncludedInPrice: true,
	}

	defaultNotifications = domain.NotificationSettings{
		OrderEmail:    true,
		OrderSMS:      false,
		LowStockAlert: true,
	}
)

func pick(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func resolveColors(c domain.Customization, tmpl *domain.Template) domain.StoreColors {
	var t domain.StoreColors
	if tmpl != nil {
		t = tmpl.Colors
	}
	return domain.StoreColors{
		Primary:          pick(c.PrimaryColor, t.Primary, defaultColors.Primary),
		Secondary:        pick(c.SecondaryColor, t.Secondary, defaultColors.Secondary),
		Background:       pick(c.BackgroundColor, t.Background, defaultColors.Background),
		Accent:           pick(t.Accent, defaultColors.Accent),
		Text:             pick(t.Text, defaultColors.Text),
		Border:           pick(t.Border, defaultColors.Border),
		HeaderBackground: pick(t.HeaderBackground, defaultColors.HeaderBackground),
		FooterBackground: pick(t.FooterBackground, defaultColors.FooterBackground),
	}
}

func resolveFonts(tmpl *domain.Template) domain.StoreFonts {
	if tmpl == nil {
		return defaultFonts
	}
	return domain.StoreFonts{
		Heading: pick(tmpl.Fonts.Heading, defaultFonts.Heading),
		Body:    pick(tmpl.Fonts.Body, defaultFonts.Body),
	}
}
