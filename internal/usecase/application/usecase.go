package application

import (
	"context"
	"sync"
	"time"

	"github.com/LavaJover/shvark-storefront-service/internal/domain"
	"github.com/LavaJover/shvark-storefront-service/internal/infrastructure/logger"
	"github.com/LavaJover/shvark-storefront-service/internal/infrastructure/metrics"
	applicationdto "github.com/LavaJover/shvark-storefront-service/internal/usecase/dto/application"
	"github.com/LavaJover/shvark-storefront-service/internal/usecase/provisioning"
	"github.com/LavaJover/shvark-storefront-service/internal/usecase/seeding"
	"github.com/google/uuid"
)

type ApplicationUsecase interface {
	SubmitApplication(ctx context.Context, input *applicationdto.SubmitApplicationInput) (string, error)
	ApproveApplication(ctx context.Context, applicationID, reviewerID string) (*Decision, error)
	RejectApplication(ctx context.Context, input *applicationdto.RejectApplicationInput) (*Decision, error)
	RetryProvisioning(ctx context.Context, applicationID string) (*Decision, error)
	RetryFailedProvisioning(ctx context.Context) (int, error)

	GetApplicationByID(ctx context.Context, applicationID string) (*domain.Application, error)
	GetApplicationByMerchantID(ctx context.Context, merchantID string) (*domain.Application, error)
	ListApplications(ctx context.Context, status *domain.ApplicationStatus) ([]*domain.Application, error)
	GetApplicationStats(ctx context.Context) (*domain.ApplicationStats, error)

	// Wait blocks until in-flight event publishes finish.
	Wait()
}

// Decision is the outcome of a reviewer or operator action.
//
// Applied is false when the application does not exist (Application is nil)
// or is not in a state that allows the action (Application holds the current
// state). When Applied is true, Application is the state after the action
// and Store is the provisioned store, if any.
type Decision struct {
	Applied     bool
	Application *domain.Application
	Store       *domain.Store
}

func (d *Decision) Found() bool {
	return d != nil && d.Application != nil
}

// NeedsProvisioningRetry reports an approval whose store could not be set up.
func (d *Decision) NeedsProvisioningRetry() bool {
	return d != nil && d.Applied && d.Application != nil &&
		d.Application.Status == domain.ApplicationApproved &&
		d.Application.ProvisioningStatus != domain.ProvisioningDone
}

type StoreProvisioner interface {
	Provision(ctx context.Context, app *domain.Application) provisioning.Result
}

type CatalogSeeder interface {
	Seed(ctx context.Context, store *domain.Store) (seeding.Result, error)
}

type DefaultApplicationUsecase struct {
	applicationRepo domain.ApplicationRepository
	provisioner     StoreProvisioner
	seeder          CatalogSeeder
	publisher       domain.PublisherPort
	eventLogger     logger.ApplicationEventLogger
	metrics         *metrics.ApplicationMetrics
	log             logger.Logger
	inflight        sync.WaitGroup

	newID func() string
	now   func() time.Time
}

func NewDefaultApplicationUsecase(
	applicationRepo domain.ApplicationRepository,
	provisioner StoreProvisioner,
	seeder CatalogSeeder,
	publisher domain.PublisherPort,
	eventLogger logger.ApplicationEventLogger,
	applicationMetrics *metrics.ApplicationMetrics,
	log logger.Logger,
) *DefaultApplicationUsecase {
	if eventLogger == nil {
		eventLogger = logger.NopApplicationEventLogger{}
	}
	return &DefaultApplicationUsecase{
		applicationRepo: applicationRepo,
		provisioner:     provisioner,
		seeder:          seeder,
		publisher:       publisher,
		eventLogger:     eventLogger,
		metrics:         applicationMetrics,
		log:             log,
		newID:           func() string { return uuid.New().String() },
		now:             func() time.Time { return time.Now().UTC() },
	}
}
