package mappers

import (
	"testing"
	"time"

	"github.com/LavaJover/shvark-storefront-service/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestApplicationMapping_KeepsNullableAuditFields(t *testing.T) {
	pending := &domain.Application{ID: "a", Status: domain.ApplicationPending, Version: 3}
	model := ToGORMApplication(pending)
	assert.Nil(t, model.ReviewedAt)
	assert.Nil(t, model.RejectionReason)
	assert.Equal(t, int64(3), model.Version)

	at := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	reviewer, reason := "admin", "spam"
	rejected := &domain.Application{ID: "b", Status: domain.ApplicationRejected, ReviewedAt: &at, ReviewedBy: &reviewer, RejectionReason: &reason}
	back := ToDomainApplication(ToGORMApplication(rejected))
	assert.Equal(t, rejected, back)
}

func TestStoreMapping_FlattensSettings(t *testing.T) {
	store := &domain.Store{
		ID:   "s",
		Slug: "rose",
		Branding: domain.StoreBranding{
			Colors: domain.StoreColors{Primary: "#1", FooterBackground: "#2"},
			Fonts:  domain.StoreFonts{Heading: "Cairo", Body: "Tajawal"},
		},
		Layout: domain.StoreLayout{ProductGridColumns: 4},
		Settings: domain.StoreSettings{
			Currency: "SAR",
			Language: "ar",
			Shipping: domain.ShippingSettings{StandardRate: 25, ProcessingDays: 2},
			Tax:      domain.TaxSettings{Enabled: true, Rate: 15},
		},
		Status: domain.StoreActive,
	}

	model := ToGORMStore(store)
	assert.Equal(t, "SAR", model.Currency)
	assert.Equal(t, 25.0, model.Settings.StandardShippingRate)
	assert.Equal(t, "Cairo", model.Branding.HeadingFont)

	assert.Equal(t, store, ToDomainStore(model))
}
