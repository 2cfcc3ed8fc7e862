// Package usecasetest provides in-memory doubles of the domain ports for
// usecase tests.
package usecasetest

import (
	"context"
	"sort"
	"sync"

	"github.com/LavaJover/shvark-storefront-service/internal/domain"
)

type ApplicationRepo struct {
	mu   sync.Mutex
	apps map[string]*domain.Application

	CreateErr error
	UpdateErr error
	// BeforeUpdate runs outside the lock right before the version check.
	BeforeUpdate func(app *domain.Application)
}

func NewApplicationRepo(apps ...*domain.Application) *ApplicationRepo {
	r := &ApplicationRepo{apps: make(map[string]*domain.Application)}
	for _, a := range apps {
		r.apps[a.ID] = a.Clone()
	}
	return r
}

func (r *ApplicationRepo) CreateApplication(_ context.Context, app *domain.Application) error {
	if r.CreateErr != nil {
		return r.CreateErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.apps[app.ID] = app.Clone()
	return nil
}

func (r *ApplicationRepo) GetApplicationByID(_ context.Context, id string) (*domain.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.apps[id].Clone(), nil
}

func (r *ApplicationRepo) GetApplicationsByMerchantID(_ context.Context, merchantID string) ([]*domain.Application, error) {
	return r.filter(func(a *domain.Application) bool { return a.MerchantID == merchantID }), nil
}

func (r *ApplicationRepo) ListApplications(_ context.Context, status *domain.ApplicationStatus) ([]*domain.Application, error) {
	return r.filter(func(a *domain.Application) bool { return status == nil || a.Status == *status }), nil
}

func (r *ApplicationRepo) UpdateApplication(_ context.Context, app *domain.Application) error {
	if r.BeforeUpdate != nil {
		r.BeforeUpdate(app)
	}
	if r.UpdateErr != nil {
		return r.UpdateErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.apps[app.ID]
	if !ok || cur.Version != app.Version {
		return domain.ErrConcurrentUpdate
	}
	app.Version++
	r.apps[app.ID] = app.Clone()
	return nil
}

func (r *ApplicationRepo) filter(keep func(*domain.Application) bool) []*domain.Application {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Application
	for _, a := range r.apps {
		if keep(a) {
			out = append(out, a.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SubmittedAt.After(out[j].SubmittedAt) })
	return out
}

type StoreRepo struct {
	mu     sync.Mutex
	stores map[string]*domain.Store

	CreateErr   error
	CreateCalls int
}

func NewStoreRepo(stores ...*domain.Store) *StoreRepo {
	r := &StoreRepo{stores: make(map[string]*domain.Store)}
	for _, s := range stores {
		cp := *s
		r.stores[s.ID] = &cp
	}
	return r
}

func (r *StoreRepo) CreateStore(_ context.Context, store *domain.Store) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.CreateCalls++
	if r.CreateErr != nil {
		return r.CreateErr
	}
	for _, s := range r.stores {
		if s.Slug == store.Slug {
			return domain.ErrSlugTaken
		}
		if store.ApplicationID != "" && s.ApplicationID == store.ApplicationID {
			return domain.ErrStoreExists
		}
	}
	cp := *store
	r.stores[store.ID] = &cp
	return nil
}

func (r *StoreRepo) GetStoreByID(_ context.Context, id string) (*domain.Store, error) {
	return r.find(func(s *domain.Store) bool { return s.ID == id }), nil
}

func (r *StoreRepo) GetStoreBySlug(_ context.Context, slug string) (*domain.Store, error) {
	return r.find(func(s *domain.Store) bool { return s.Slug == slug }), nil
}

func (r *StoreRepo) GetStoreByApplicationID(_ context.Context, applicationID string) (*domain.Store, error) {
	return r.find(func(s *domain.Store) bool { return s.ApplicationID == applicationID }), nil
}

func (r *StoreRepo) GetStoresByOwnerID(_ context.Context, ownerID string) ([]*domain.Store, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Store
	for _, s := range r.stores {
		if s.OwnerID == ownerID {
			cp := *s
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *StoreRepo) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.stores)
}

func (r *StoreRepo) find(match func(*domain.Store) bool) *domain.Store {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.stores {
		if match(s) {
			cp := *s
			return &cp
		}
	}
	return nil
}

type CatalogRepo struct {
	mu         sync.Mutex
	categories map[string]*domain.Category
	products   map[string]*domain.Product

	SeedErr   error
	SeedCalls int
}

func NewCatalogRepo() *CatalogRepo {
	return &CatalogRepo{
		categories: make(map[string]*domain.Category),
		products:   make(map[string]*domain.Product),
	}
}

func (r *CatalogRepo) SeedCatalog(_ context.Context, categories []*domain.Category, products []*domain.Product) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.SeedCalls++
	if r.SeedErr != nil {
		return 0, r.SeedErr
	}
	var inserted int64
	for _, c := range categories {
		if _, ok := r.categories[c.ID]; !ok {
			r.categories[c.ID] = c
			inserted++
		}
	}
	for _, p := range products {
		if _, ok := r.products[p.ID]; !ok {
			r.products[p.ID] = p
			inserted++
		}
	}
	return inserted, nil
}

func (r *CatalogRepo) Categories() []*domain.Category {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.Category, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, c)
	}
	return out
}

func (r *CatalogRepo) Products() []*domain.Product {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p)
	}
	return out
}

type Publisher struct {
	mu       sync.Mutex
	Messages map[string][]domain.Message
	Err      error
	// Block, when set, holds every Publish until it is closed or ctx is done.
	Block chan struct{}
}

func NewPublisher() *Publisher {
	return &Publisher{Messages: make(map[string][]domain.Message)}
}

func (p *Publisher) Publish(ctx context.Context, topic string, msgs ...domain.Message) error {
	if p.Block != nil {
		select {
		case <-p.Block:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.Err != nil {
		return p.Err
	}
	p.Messages[topic] = append(p.Messages[topic], msgs...)
	return nil
}

func (p *Publisher) Count(topic string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.Messages[topic])
}
