package postgres

import (
	"fmt"

	"github.com/LavaJover/shvark-storefront-service/internal/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// InitDB opens the store database. Unique violations surface as gorm.ErrDuplicatedKey.
func InitDB(cfg *config.StoreConfig) (*gorm.DB, error) {
	logLevel := gormlogger.Warn
	if cfg.LogConfig.LogLevel == "debug" {
		logLevel = gormlogger.Info
	}

	db, err := gorm.Open(postgres.Open(cfg.StoreDB.Dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 gormlogger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to init db: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	if cfg.StoreDB.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.StoreDB.MaxOpenConns)
	}
	if cfg.StoreDB.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.StoreDB.MaxIdleConns)
	}
	return db, nil
}
