package database

import (
	"fmt"
	"time"

	"cs-crm-backend/internal/database/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Options struct {
	LogLevel        logger.LogLevel
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	SkipMigrate     bool
}

// Initialize opens a Postgres connection and creates the schema from GORM models.
func Initialize(dsn string, opts *Options) (*gorm.DB, error) {
	// Defaults
	if opts == nil {
		opts = &Options{}
	}
	if opts.LogLevel == 0 {
		opts.LogLevel = logger.Error
	}
	if opts.MaxOpenConns == 0 {
		opts.MaxOpenConns = 20
	}
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 10
	}
	if opts.ConnMaxLifetime == 0 {
		opts.ConnMaxLifetime = 30 * time.Minute
	}
	if opts.ConnMaxIdleTime == 0 {
		opts.ConnMaxIdleTime = 10 * time.Minute
	}

	// Open DB
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(opts.LogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
		sqlDB.SetConnMaxIdleTime(opts.ConnMaxIdleTime)
	}

	// Ensure required extension for UUID generation (used by BaseModel default gen_random_uuid())
	_ = db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error

	if !opts.SkipMigrate {
		if err := Migrate(db); err != nil {
			return nil, err
		}
	}

	return db, nil
}

// Migrate creates or updates all tables. Parents come before children so the
// foreign keys declared on relationships resolve.
func Migrate(db *gorm.DB) error {
	all := []interface{}{
		&models.Organization{},
		&models.OrgMember{},
		&models.Dso{},
		&models.DsoAccessGrant{},
		&models.OrgInvite{},
		&models.TeamInvite{},
		&models.Doctor{},
		&models.Activity{},
		&models.DataTable{},
	}
	if err := db.AutoMigrate(all...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}

	// Role values are closed enums; enforce them in the store as well.
	checks := []string{
		`ALTER TABLE org_members DROP CONSTRAINT IF EXISTS chk_org_members_role`,
		`ALTER TABLE org_members ADD CONSTRAINT chk_org_members_role CHECK (role IN ('owner','admin','member'))`,
		`ALTER TABLE user_dso_access DROP CONSTRAINT IF EXISTS chk_user_dso_access_role`,
		`ALTER TABLE user_dso_access ADD CONSTRAINT chk_user_dso_access_role CHECK (role IN ('admin','manager','viewer'))`,
	}
	for _, stmt := range checks {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("role constraints: %w", err)
		}
	}

	return nil
}
