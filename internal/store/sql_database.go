package store

import (
	"database/sql"
	"errors"

	"github.com/MKhiriev/snapback/internal/logger"
	"github.com/MKhiriev/snapback/migrations"
)

// DB is a database/sql pool bound to the driver it was opened with.
type DB struct {
	*sql.DB
	driver             string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Driver returns the database/sql driver name of the pool.
func (db *DB) Driver() string {
	return db.driver
}

// Migrate applies the embedded goose migrations for the pool's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// markRetryable joins err with [ErrNonRetryableQuery] unless the classifier
// considers it transient. A nil classifier treats every error as transient.
func (db *DB) markRetryable(err error) error {
	if err == nil || db.errorClassificator == nil {
		return err
	}
	if db.errorClassificator.Classify(err) == NonRetryable {
		return errors.Join(ErrNonRetryableQuery, err)
	}
	return err
}
