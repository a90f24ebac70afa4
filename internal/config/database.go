package config

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectionPoolConfig tunes the sql.DB behind a single gorm handle. This is
// driver-level pooling inside one handle; the per-tenant handle pool lives in
// the tenantpool package.
type ConnectionPoolConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// adminPoolConfig sizes the long-lived control-plane connection. The admin
// directory only serves point lookups, so it stays small.
func adminPoolConfig() *ConnectionPoolConfig {
	return &ConnectionPoolConfig{
		MaxOpenConns:    getEnvIntWithDefault("ADMIN_DB_MAX_OPEN_CONNS", 10),
		MaxIdleConns:    getEnvIntWithDefault("ADMIN_DB_MAX_IDLE_CONNS", 2),
		ConnMaxLifetime: getEnvDurationWithDefault("ADMIN_DB_CONN_MAX_LIFETIME", 1*time.Hour),
	}
}

// tenantPoolConfig sizes each pooled tenant handle. One sql connection per
// gorm handle keeps the tenantpool cap meaningful at the database level.
func tenantPoolConfig() *ConnectionPoolConfig {
	return &ConnectionPoolConfig{
		MaxOpenConns:    getEnvIntWithDefault("TENANT_DB_MAX_OPEN_CONNS", 1),
		MaxIdleConns:    getEnvIntWithDefault("TENANT_DB_MAX_IDLE_CONNS", 1),
		ConnMaxLifetime: getEnvDurationWithDefault("TENANT_DB_CONN_MAX_LIFETIME", 1*time.Hour),
	}
}

func configureConnectionPool(gormDB *gorm.DB, poolConfig *ConnectionPoolConfig) error {
	sqlDB, err := gormDB.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB from gorm.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(poolConfig.MaxOpenConns)
	sqlDB.SetMaxIdleConns(poolConfig.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(poolConfig.ConnMaxLifetime)

	return nil
}

func openDatabase(dsn string, poolConfig *ConnectionPoolConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := configureConnectionPool(db, poolConfig); err != nil {
		return nil, err
	}

	return db, nil
}

// NewAdminDatabase opens the long-lived connection to the control-plane
// database holding the tenant registry.
func NewAdminDatabase(cfg *Config) (*gorm.DB, error) {
	if cfg.AdminDatabaseURL == "" {
		return nil, fmt.Errorf("ADMIN_DATABASE_URL is not set")
	}
	return openDatabase(cfg.AdminDatabaseURL, adminPoolConfig())
}

// OpenTenantDatabase opens one pooled handle to a tenant database. Fed to
// the tenant pool as its opener.
func OpenTenantDatabase(_ context.Context, dsn string) (*gorm.DB, error) {
	return openDatabase(dsn, tenantPoolConfig())
}

// CloseDatabase releases the sql.DB behind a gorm handle.
func CloseDatabase(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
