// Package storage keeps the last searched city across restarts. Every
// driver stores a single string under LastCityKey.
package storage

import (
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/valpere/pohoda/internal/config"
	"github.com/valpere/pohoda/internal/interfaces"
)

// LastCityKey is the fixed key the last searched city is stored under
const LastCityKey = "lastSearchedCity"

// Open builds the store selected by cfg.Storage.Driver. The returned
// function releases any underlying connection.
func Open(cfg *config.Config, logger *zerolog.Logger) (interfaces.LastCityStore, func() error, error) {
	switch cfg.Storage.Driver {
	case "memory":
		return NewMemoryStore(), func() error { return nil }, nil

	case "redis":
		rdb, err := ConnectRedis(&cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		logger.Info().Str("addr", rdb.Options().Addr).Msg("Using Redis for last city storage")
		return NewRedisStore(rdb), rdb.Close, nil

	case "sqlite":
		db, err := ConnectSQLite(cfg.Storage.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		logger.Info().Str("path", cfg.Storage.SQLitePath).Msg("Using SQLite for last city storage")
		return gormStore(db)

	case "postgres":
		db, err := Connect(&cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		logger.Info().Str("host", cfg.Database.Host).Msg("Using PostgreSQL for last city storage")
		return gormStore(db)

	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

func gormStore(db *gorm.DB) (interfaces.LastCityStore, func() error, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get database instance: %w", err)
	}
	return NewGormStore(db), sqlDB.Close, nil
}
