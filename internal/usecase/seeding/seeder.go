package seeding

import (
	"context"
	"fmt"
	"time"

	"github.com/LavaJover/shvark-storefront-service/internal/domain"
	"github.com/LavaJover/shvark-storefront-service/internal/infrastructure/logger"
	"github.com/LavaJover/shvark-storefront-service/internal/infrastructure/metrics"
	"github.com/google/uuid"
)

// sampleNamespace scopes the name-based UUIDs of sample rows.
var sampleNamespace = uuid.MustParse("6f1c1f5e-3b7a-4c43-9a55-2f0d8e6c9b41")

type Result struct {
	Categories int
	Products   int
	// Inserted counts rows that did not exist yet.
	Inserted int64
}

type SampleDataSeeder struct {
	catalog   domain.CatalogRepository
	templates domain.TemplateCatalog
	log       logger.Logger
	metrics   *metrics.ApplicationMetrics
	now       func() time.Time
}

func NewSampleDataSeeder(
	catalog domain.CatalogRepository,
	templates domain.TemplateCatalog,
	log logger.Logger,
	m *metrics.ApplicationMetrics,
) *SampleDataSeeder {
	return &SampleDataSeeder{
		catalog:   catalog,
		templates: templates,
		log:       log,
		metrics:   m,
		now:       time.Now,
	}
}

func sampleID(storeID, kind string, index int) string {
	return uuid.NewSHA1(sampleNamespace, []byte(fmt.Sprintf("%s/%s/%d", storeID, kind, index))).String()
}

// BuildCatalog returns the sample rows for store. Row IDs depend only on the
// store ID and the row position, so repeated calls yield the same keys.
func (s *SampleDataSeeder) BuildCatalog(store *domain.Store) ([]*domain.Category, []*domain.Product) {
	category := ""
	if tmpl := s.templates.FindByID(store.TemplateID); tmpl != nil {
		category = tmpl.Category
	}
	now := s.now().UTC()

	var (
		categories []*domain.Category
		products   []*domain.Product
	)
	productIndex := 0
	for i, sc := range samplesFor(category) {
		cat := &domain.Category{
			ID:        sampleID(store.ID, "category", i),
			StoreID:   store.ID,
			Slug:      sc.slug,
			Name:      sc.name,
			NameAr:    sc.nameAr,
			SortOrder: i,
			IsSample:  true,
			CreatedAt: now,
		}
		categories = append(categories, cat)

		for _, sp := range sc.products {
			products = append(products, &domain.Product{
				ID:            sampleID(store.ID, "product", productIndex),
				StoreID:       store.ID,
				CategoryID:    cat.ID,
				Name:          sp.name,
				NameAr:        sp.nameAr,
				Description:   sp.description,
				DescriptionAr: sp.descriptionAr,
				Price:         sp.price,
				ComparePrice:  sp.comparePrice,
				Currency:      store.Settings.Currency,
				Stock:         sp.stock,
				IsFeatured:    sp.featured,
				IsSample:      true,
				CreatedAt:     now,
			})
			productIndex++
		}
	}
	return categories, products
}

// Seed inserts the sample catalog for a freshly created store. Seeding the
// same store again inserts nothing.
func (s *SampleDataSeeder) Seed(ctx context.Context, store *domain.Store) (Result, error) {
	categories, products := s.BuildCatalog(store)

	inserted, err := s.catalog.SeedCatalog(ctx, categories, products)
	if err != nil {
		return Result{}, fmt.Errorf("seed sample catalog for store %s: %w", store.ID, err)
	}

	s.metrics.RecordSeeded(store.TemplateID, int(inserted))
	s.log.Info("sample catalog seeded", map[string]interface{}{
		"store_id":   store.ID,
		"categories": len(categories),
		"products":   len(products),
		"inserted":   inserted,
	})
	return Result{Categories: len(categories), Products: len(products), Inserted: inserted}, nil
}
