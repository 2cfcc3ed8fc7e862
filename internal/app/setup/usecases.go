package setup

import (
	"fmt"

	"github.com/LavaJover/shvark-storefront-service/internal/templates"
	"github.com/LavaJover/shvark-storefront-service/internal/usecase"
	"github.com/LavaJover/shvark-storefront-service/internal/usecase/application"
	"github.com/LavaJover/shvark-storefront-service/internal/usecase/provisioning"
	"github.com/LavaJover/shvark-storefront-service/internal/usecase/seeding"
)

type UseCases struct {
	ApplicationUsecase application.ApplicationUsecase
	StoreUsecase       usecase.StoreUsecase
	Templates          *templates.StaticCatalog
}

func InitializeUseCases(deps *Dependencies) (*UseCases, error) {
	catalog := templates.NewStaticCatalog()
	repos := deps.Repositories
	p := deps.Config.Provisioning

	provisioner, err := provisioning.NewStoreProvisioner(
		repos.StoreRepo,
		catalog,
		provisioning.Config{
			SlugAttempts: p.SlugAttempts,
			SuffixLength: p.SlugSuffixLen,
			Currency:     p.DefaultCurrency,
			Language:     p.DefaultLanguage,
		},
		deps.Log,
		deps.Metrics,
	)
	if err != nil {
		return nil, fmt.Errorf("store provisioner: %w", err)
	}
	seeder := seeding.NewSampleDataSeeder(repos.CatalogRepo, catalog, deps.Log, deps.Metrics)

	applicationUsecase := application.NewDefaultApplicationUsecase(
		repos.ApplicationRepo,
		provisioner,
		seeder,
		deps.Publisher,
		deps.EventLogger,
		deps.Metrics,
		deps.Log,
	)

	return &UseCases{
		ApplicationUsecase: applicationUsecase,
		StoreUsecase:       usecase.NewDefaultStoreUsecase(repos.StoreRepo, catalog),
		Templates:          catalog,
	}, nil
}
