package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/LavaJover/shvark-storefront-service/internal/domain"
)

type StoreUsecase interface {
	GetStoreByID(ctx context.Context, id string) (*domain.Store, error)
	GetStoreBySlug(ctx context.Context, slug string) (*domain.Store, error)
	GetStoresByMerchantID(ctx context.Context, merchantID string) ([]*domain.Store, error)
	ListTemplates() []*domain.Template
	GetTemplate(id string) *domain.Template
}

type DefaultStoreUsecase struct {
	storeRepo domain.StoreRepository
	templates domain.TemplateCatalog
}

func NewDefaultStoreUsecase(storeRepo domain.StoreRepository, templates domain.TemplateCatalog) *DefaultStoreUsecase {
	return &DefaultStoreUsecase{
		storeRepo: storeRepo,
		templates: templates,
	}
}

func (uc *DefaultStoreUsecase) GetStoreByID(ctx context.Context, id string) (*domain.Store, error) {
	store, err := uc.storeRepo.GetStoreByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get store %s: %w", id, err)
	}
	return store, nil
}

// GetStoreBySlug matches case-insensitively since slugs are always lowercase.
func (uc *DefaultStoreUsecase) GetStoreBySlug(ctx context.Context, slug string) (*domain.Store, error) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	if slug == "" {
		return nil, nil
	}
	store, err := uc.storeRepo.GetStoreBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to get store by slug %q: %w", slug, err)
	}
	return store, nil
}

func (uc *DefaultStoreUsecase) GetStoresByMerchantID(ctx context.Context, merchantID string) ([]*domain.Store, error) {
	stores, err := uc.storeRepo.GetStoresByOwnerID(ctx, merchantID)
	if err != nil {
		return nil, fmt.Errorf("failed to get stores of merchant %s: %w", merchantID, err)
	}
	if stores == nil {
		stores = []*domain.Store{}
	}
	return stores, nil
}

func (uc *DefaultStoreUsecase) ListTemplates() []*domain.Template {
	return uc.templates.List()
}

func (uc *DefaultStoreUsecase) GetTemplate(id string) *domain.Template {
	return uc.templates.FindByID(id)
}
