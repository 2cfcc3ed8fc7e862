package provisioning

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/LavaJover/shvark-storefront-service/internal/domain"
	"github.com/LavaJover/shvark-storefront-service/internal/infrastructure/logger"
	"github.com/LavaJover/shvark-storefront-service/internal/infrastructure/metrics"
	"github.com/LavaJover/shvark-storefront-service/internal/slug"
	"github.com/google/uuid"
	nanoid "github.com/jaevor/go-nanoid"
)

const suffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

type Config struct {
	// SlugAttempts is the number of CreateStore calls made before giving up on slug conflicts.
	SlugAttempts int
	SuffixLength int
	Currency     string
	Language     string
}

// Result describes one provisioning run. Err is set instead of being
// returned so callers always get a value back.
type Result struct {
	Store  *domain.Store
	Reused bool
	Err    error
}

func (r Result) OK() bool {
	return r.Err == nil && r.Store != nil
}

type StoreProvisioner struct {
	stores    domain.StoreRepository
	templates domain.TemplateCatalog
	log       logger.Logger
	metrics   *metrics.ApplicationMetrics
	cfg       Config
	suffix    func() string
	now       func() time.Time
}

func NewStoreProvisioner(
	stores domain.StoreRepository,
	templates domain.TemplateCatalog,
	cfg Config,
	log logger.Logger,
	m *metrics.ApplicationMetrics,
) (*StoreProvisioner, error) {
	if cfg.SlugAttempts <= 0 {
		cfg.SlugAttempts = 5
	}
	if cfg.SuffixLength <= 0 {
		cfg.SuffixLength = 6
	}
	if cfg.Currency == "" {
		cfg.Currency = "SAR"
	}
	if cfg.Language == "" {
		cfg.Language = "ar"
	}
	suffix, err := nanoid.CustomASCII(suffixAlphabet, cfg.SuffixLength)
	if err != nil {
		return nil, fmt.Errorf("slug suffix generator: %w", err)
	}
	return &StoreProvisioner{
		stores:    stores,
		templates: templates,
		log:       log,
		metrics:   m,
		cfg:       cfg,
		suffix:    suffix,
		now:       time.Now,
	}, nil
}

// BuildStore maps an approved application and its template into a complete
// store record. It does not touch the repository.
func (p *StoreProvisioner) BuildStore(app *domain.Application, tmpl *domain.Template) *domain.Store {
	custom := app.StoreConfig.Customization
	md := app.MerchantData
	now := p.now().UTC()

	name := pick(strings.TrimSpace(custom.StoreName), md.BusinessName)
	description := pick(strings.TrimSpace(custom.StoreDescription), md.BusinessName)

	return &domain.Store{
		ID:            uuid.New().String(),
		Slug:          slug.GenerateAt(name, now),
		OwnerID:       app.MerchantID,
		ApplicationID: app.ID,
		TemplateID:    app.StoreConfig.TemplateID,
		Name:          name,
		Description:   description,
		BusinessType:  md.BusinessType,
		Branding: domain.StoreBranding{
			Colors: resolveColors(custom, tmpl),
			Fonts:  resolveFonts(tmpl),
		},
		Layout:   defaultLayout,
		Homepage: defaultHomepage,
		Settings: domain.StoreSettings{
			Currency:      p.cfg.Currency,
			Language:      p.cfg.Language,
			Payment:       defaultPayment,
			Shipping:      defaultShipping,
			Tax:           defaultTax,
			Notifications: defaultNotifications,
		},
		Contact: domain.StoreContact{
			Email: md.Email,
			Phone: md.Phone,
			City:  md.City,
		},
		Status:    domain.StoreActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Provision creates the store for an approved application. A store already
// created for the application is returned as is. Failures are logged and
// reported through Result.Err.
func (p *StoreProvisioner) Provision(ctx context.Context, app *domain.Application) Result {
	log := p.log.With(map[string]interface{}{
		"application_id": app.ID,
		"merchant_id":    app.MerchantID,
	})

	existing, err := p.stores.GetStoreByApplicationID(ctx, app.ID)
	if err != nil {
		return p.fail(log, fmt.Errorf("lookup existing store: %w", err))
	}
	if existing != nil {
		log.Info("store already provisioned", map[string]interface{}{"store_id": existing.ID, "slug": existing.Slug})
		return Result{Store: existing, Reused: true}
	}

	store := p.BuildStore(app, p.templates.FindByID(app.StoreConfig.TemplateID))
	base := store.Slug

	for attempt := 1; attempt <= p.cfg.SlugAttempts; attempt++ {
		err = p.stores.CreateStore(ctx, store)
		switch {
		case err == nil:
			log.Info("store created", map[string]interface{}{"store_id": store.ID, "slug": store.Slug})
			return Result{Store: store}
		case errors.Is(err, domain.ErrSlugTaken):
			p.metrics.RecordSlugCollision()
			log.Debug("slug taken, retrying with suffix", map[string]interface{}{"slug": store.Slug, "attempt": attempt})
			store.Slug = slug.WithSuffix(base, p.suffix())
		case errors.Is(err, domain.ErrStoreExists):
			existing, getErr := p.stores.GetStoreByApplicationID(ctx, app.ID)
			if getErr != nil || existing == nil {
				return p.fail(log, fmt.Errorf("store exists but cannot be loaded: %w", errors.Join(err, getErr)))
			}
			return Result{Store: existing, Reused: true}
		default:
			return p.fail(log, fmt.Errorf("create store: %w", err))
		}
	}
	return p.fail(log, fmt.Errorf("no free slug for %q after %d attempts: %w", base, p.cfg.SlugAttempts, domain.ErrSlugTaken))
}

func (p *StoreProvisioner) fail(log logger.Logger, err error) Result {
	err = fmt.Errorf("%w: %w", domain.ErrProvisioning, err)
	log.WithError(err).Error("store provisioning failed", nil)
	return Result{Err: err}
}
