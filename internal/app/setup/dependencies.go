package setup

import (
	"context"
	"errors"
	"fmt"

	"github.com/LavaJover/shvark-storefront-service/internal/config"
	"github.com/LavaJover/shvark-storefront-service/internal/domain"
	publisher "github.com/LavaJover/shvark-storefront-service/internal/infrastructure/kafka"
	"github.com/LavaJover/shvark-storefront-service/internal/infrastructure/logger"
	"github.com/LavaJover/shvark-storefront-service/internal/infrastructure/metrics"
	"github.com/LavaJover/shvark-storefront-service/internal/infrastructure/migrate"
	"github.com/LavaJover/shvark-storefront-service/internal/infrastructure/postgres"
	"github.com/LavaJover/shvark-storefront-service/internal/infrastructure/postgres/repository"
	"github.com/LavaJover/shvark-storefront-service/internal/infrastructure/redisstore"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const (
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

type Dependencies struct {
	Config       *config.StoreConfig
	DB           *gorm.DB
	Redis        *redis.Client
	Publisher    domain.PublisherPort
	Registry     *prometheus.Registry
	Metrics      *metrics.ApplicationMetrics
	EventLogger  logger.ApplicationEventLogger
	Log          logger.Logger
	Repositories *Repositories

	closers []func() error
}

type Repositories struct {
	ApplicationRepo domain.ApplicationRepository
	StoreRepo       domain.StoreRepository
	CatalogRepo     domain.CatalogRepository
}

func InitializeDependencies(ctx context.Context, cfg *config.StoreConfig, log logger.Logger) (*Dependencies, error) {
	deps := &Dependencies{Config: cfg, Log: log}

	db, err := postgres.InitDB(cfg)
	if err != nil {
		return nil, err
	}
	deps.DB = db
	deps.closers = append(deps.closers, func() error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	})

	version, err := migrate.RunMigrations(db, cfg.StoreDB.MigrationsPath)
	if err != nil {
		deps.Close()
		return nil, fmt.Errorf("migrations: %w", err)
	}
	log.Info("database schema ready", map[string]interface{}{"version": version})

	deps.Registry = prometheus.NewRegistry()
	deps.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	deps.Metrics = metrics.NewApplicationMetrics(deps.Registry)
	deps.EventLogger = logger.NewPGApplicationEventLogger(db)

	deps.Repositories = &Repositories{
		StoreRepo:   repository.NewDefaultStoreRepository(db),
		CatalogRepo: repository.NewDefaultCatalogRepository(db),
	}
	if deps.Repositories.ApplicationRepo, err = deps.initApplicationRepo(ctx); err != nil {
		deps.Close()
		return nil, err
	}

	if cfg.KafkaService.Enabled {
		pub := publisher.NewDefaultKafkaPublisher(cfg.KafkaService.Brokers())
		deps.Publisher = pub
		deps.closers = append(deps.closers, pub.Close)
		log.Info("publishing application events", map[string]interface{}{
			"brokers": cfg.KafkaService.Brokers(),
			"topic":   publisher.ApplicationEventsTopic,
		})
	}

	return deps, nil
}

func (d *Dependencies) initApplicationRepo(ctx context.Context) (domain.ApplicationRepository, error) {
	switch d.Config.ApplicationStore.Driver {
	case DriverRedis:
		rdb, err := redisstore.NewClient(ctx, d.Config.Redis)
		if err != nil {
			return nil, err
		}
		d.Redis = rdb
		d.closers = append(d.closers, rdb.Close)
		d.Log.Info("applications stored in redis", map[string]interface{}{"addr": d.Config.Redis.Addr})
		return redisstore.NewApplicationRepository(rdb, d.Config.Redis.KeyPrefix), nil
	case DriverPostgres, "":
		return repository.NewDefaultApplicationRepository(d.DB), nil
	default:
		return nil, fmt.Errorf("unknown application store driver %q", d.Config.ApplicationStore.Driver)
	}
}

// Ping checks every storage backend in use.
func (d *Dependencies) Ping(ctx context.Context) error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("postgres: %w", err)
	}
	if d.Redis != nil {
		if err := d.Redis.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis: %w", err)
		}
	}
	return nil
}

// Close releases resources in reverse order of acquisition.
func (d *Dependencies) Close() error {
	var errs []error
	for i := len(d.closers) - 1; i >= 0; i-- {
		if err := d.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	d.closers = nil
	return errors.Join(errs...)
}
