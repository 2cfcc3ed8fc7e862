package application

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/LavaJover/shvark-storefront-service/internal/domain"
	"github.com/LavaJover/shvark-storefront-service/internal/infrastructure/logger"
	"github.com/LavaJover/shvark-storefront-service/internal/infrastructure/metrics"
	"github.com/LavaJover/shvark-storefront-service/internal/templates"
	applicationdto "github.com/LavaJover/shvark-storefront-service/internal/usecase/dto/application"
	"github.com/LavaJover/shvark-storefront-service/internal/usecase/provisioning"
	"github.com/LavaJover/shvark-storefront-service/internal/usecase/seeding"
	"github.com/LavaJover/shvark-storefront-service/internal/usecase/usecasetest"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

type countingSeeder struct {
	inner CatalogSeeder
	calls atomic.Int32
	err   error
}

func (s *countingSeeder) Seed(ctx context.Context, store *domain.Store) (seeding.Result, error) {
	s.calls.Add(1)
	if s.err != nil {
		return seeding.Result{}, s.err
	}
	if err := ctx.Err(); err != nil {
		return seeding.Result{}, err
	}
	return s.inner.Seed(ctx, store)
}

type recordingEventLogger struct {
	mu     sync.Mutex
	events []logger.ApplicationTransitionEvent
}

func (l *recordingEventLogger) LogTransition(_ context.Context, e logger.ApplicationTransitionEvent) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, e)
	return nil
}

type fixture struct {
	uc      *DefaultApplicationUsecase
	apps    *usecasetest.ApplicationRepo
	stores  *usecasetest.StoreRepo
	catalog *usecasetest.CatalogRepo
	pub     *usecasetest.Publisher
	audit   *recordingEventLogger
	seeder  *countingSeeder
	metrics *metrics.ApplicationMetrics
}

func newFixture(t *testing.T, seed ...*domain.Application) *fixture {
	t.Helper()
	f := &fixture{
		apps:    usecasetest.NewApplicationRepo(seed...),
		stores:  usecasetest.NewStoreRepo(),
		catalog: usecasetest.NewCatalogRepo(),
		pub:     usecasetest.NewPublisher(),
		audit:   &recordingEventLogger{},
		metrics: metrics.NewApplicationMetrics(prometheus.NewRegistry()),
	}
	log := logger.NewTestLogger(t)
	catalog := templates.NewStaticCatalog()

	prov, err := provisioning.NewStoreProvisioner(f.stores, catalog, provisioning.Config{SlugAttempts: 3}, log, f.metrics)
	require.NoError(t, err)
	f.seeder = &countingSeeder{inner: seeding.NewSampleDataSeeder(f.catalog, catalog, log, f.metrics)}

	f.uc = NewDefaultApplicationUsecase(f.apps, prov, f.seeder, f.pub, f.audit, f.metrics, log)
	t.Cleanup(f.uc.Wait)
	return f
}

func validInput(merchantID string) *applicationdto.SubmitApplicationInput {
	return &applicationdto.SubmitApplicationInput{
		MerchantID: merchantID,
		MerchantData: domain.MerchantData{
			FirstName:    "Sara",
			LastName:     "Ali",
			Email:        "sara@example.com",
			Phone:        "+966500000000",
			City:         "Riyadh",
			BusinessName: "Sara Boutique",
			BusinessType: "fashion",
		},
		StoreConfig: domain.StoreConfig{
			TemplateID: "fashion-elegance",
			Customization: domain.Customization{
				StoreName:        "My Fashion Store!!",
				StoreDescription: "Modest fashion",
				PrimaryColor:     "#000000",
				SecondaryColor:   "#FFFFFF",
				BackgroundColor:  "#F5F5F5",
			},
		},
	}
}

func (f *fixture) submit(t *testing.T, merchantID string) string {
	t.Helper()
	id, err := f.uc.SubmitApplication(context.Background(), validInput(merchantID))
	require.NoError(t, err)
	return id
}

func (f *fixture) stored(t *testing.T, id string) *domain.Application {
	t.Helper()
	app, err := f.apps.GetApplicationByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, app)
	return app
}

func pendingApp(id, merchantID string, submitted time.Time) *domain.Application {
	in := validInput(merchantID)
	return &domain.Application{
		ID:           id,
		MerchantID:   merchantID,
		MerchantData: in.MerchantData,
		StoreConfig:  in.StoreConfig,
		Status:       domain.ApplicationPending,
		SubmittedAt:  submitted,
		Version:      1,
	}
}

func reviewed(app *domain.Application, status domain.ApplicationStatus, at time.Time) *domain.Application {
	reviewer := "admin-1"
	app.Status = status
	app.ReviewedAt = &at
	app.ReviewedBy = &reviewer
	if status == domain.ApplicationRejected {
		reason := "incomplete documents"
		app.RejectionReason = &reason
	}
	return app
}

func assertAuditInvariant(t *testing.T, app *domain.Application) {
	t.Helper()
	reviewedSet := app.ReviewedAt != nil && app.ReviewedBy != nil
	require.Equal(t, app.Status != domain.ApplicationPending, reviewedSet, "reviewed fields for %s", app.Status)
	require.Equal(t, app.Status == domain.ApplicationRejected, app.RejectionReason != nil, "rejection reason for %s", app.Status)
}

var errDB = errors.New("db unavailable")
