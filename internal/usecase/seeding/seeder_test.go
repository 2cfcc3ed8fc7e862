package seeding

import (
	"context"
	"errors"
	"testing"

	"github.com/LavaJover/shvark-storefront-service/internal/domain"
	"github.com/LavaJover/shvark-storefront-service/internal/infrastructure/logger"
	"github.com/LavaJover/shvark-storefront-service/internal/templates"
	"github.com/LavaJover/shvark-storefront-service/internal/usecase/usecasetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(templateID string) *domain.Store {
	return &domain.Store{
		ID:         "4d1e3c0a-8f0e-4a51-9c55-1c1b2e0f7a10",
		TemplateID: templateID,
		Settings:   domain.StoreSettings{Currency: "SAR"},
	}
}

func TestBuildCatalog_FollowsTemplateCategory(t *testing.T) {
	s := NewSampleDataSeeder(usecasetest.NewCatalogRepo(), templates.NewStaticCatalog(), logger.NewNoOpLogger(), nil)

	cats, products := s.BuildCatalog(testStore("food-fresh"))

	require.Len(t, cats, 2)
	assert.Equal(t, "bakery", cats[0].Slug)
	assert.Equal(t, "مخبوزات", cats[0].NameAr)
	require.Len(t, products, 3)
	for _, p := range products {
		assert.True(t, p.IsSample)
		assert.Equal(t, "SAR", p.Currency)
		assert.NotEmpty(t, p.NameAr)
	}
	assert.Equal(t, cats[0].ID, products[0].CategoryID)
	assert.Equal(t, cats[1].ID, products[2].CategoryID)
}

func TestBuildCatalog_UnknownTemplateUsesGeneralSamples(t *testing.T) {
	s := NewSampleDataSeeder(usecasetest.NewCatalogRepo(), templates.NewStaticCatalog(), logger.NewNoOpLogger(), nil)

	cats, _ := s.BuildCatalog(testStore("no-such-template"))

	require.NotEmpty(t, cats)
	assert.Equal(t, "featured", cats[0].Slug)
}

func TestBuildCatalog_DeterministicIDs(t *testing.T) {
	s := NewSampleDataSeeder(usecasetest.NewCatalogRepo(), templates.NewStaticCatalog(), logger.NewNoOpLogger(), nil)

	cats1, prods1 := s.BuildCatalog(testStore("tech-modern"))
	cats2, prods2 := s.BuildCatalog(testStore("tech-modern"))

	for i := range cats1 {
		assert.Equal(t, cats1[i].ID, cats2[i].ID)
	}
	for i := range prods1 {
		assert.Equal(t, prods1[i].ID, prods2[i].ID)
	}

	other := testStore("tech-modern")
	other.ID = "another-store"
	cats3, _ := s.BuildCatalog(other)
	assert.NotEqual(t, cats1[0].ID, cats3[0].ID)
}

func TestSeed_IsIdempotent(t *testing.T) {
	repo := usecasetest.NewCatalogRepo()
	s := NewSampleDataSeeder(repo, templates.NewStaticCatalog(), logger.NewTestLogger(t), nil)
	store := testStore("beauty-glow")

	first, err := s.Seed(context.Background(), store)
	require.NoError(t, err)
	assert.Equal(t, int64(first.Categories+first.Products), first.Inserted)

	second, err := s.Seed(context.Background(), store)
	require.NoError(t, err)
	assert.Zero(t, second.Inserted)

	assert.Len(t, repo.Categories(), first.Categories)
	assert.Len(t, repo.Products(), first.Products)
	assert.Equal(t, 2, repo.SeedCalls)
}

func TestSeed_PropagatesRepositoryError(t *testing.T) {
	repo := usecasetest.NewCatalogRepo()
	repo.SeedErr = errors.New("disk full")
	s := NewSampleDataSeeder(repo, templates.NewStaticCatalog(), logger.NewNoOpLogger(), nil)

	_, err := s.Seed(context.Background(), testStore("minimal-classic"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}
