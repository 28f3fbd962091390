package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-notes/internal/config"
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/migrations"
)

// ErrorClassificator decides whether a failed database operation may succeed
// on a later attempt.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// DB is a database/sql pool bound to one SQL dialect.
type DB struct {
	*sql.DB
	dialect            dialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// dialect captures everything that differs between the supported backends.
type dialect struct {
	// driver is the database/sql driver name, see [config.DriverPostgres].
	driver string
	// placeholder is the bind variable format understood by the driver.
	placeholder sq.PlaceholderFormat
	// syncIdentity, when not empty, moves the id generator past an
	// explicitly written id. It takes that id as its only argument.
	syncIdentity string
}

var (
	postgresDialect = dialect{
		driver:       config.DriverPostgres,
		placeholder:  sq.Dollar,
		syncIdentity: syncNotesIdentityPostgres,
	}
	sqliteDialect = dialect{
		driver:      config.DriverSQLite,
		placeholder: sq.Question,
	}
)

// NewConnect opens the database selected by cfg.Driver.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

// Migrate applies the embedded schema migrations for the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect.driver)
}

// builder returns a squirrel statement builder using the dialect's
// placeholders.
func (db *DB) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(db.dialect.placeholder)
}

func (db *DB) classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return NonRetryable
	}
	return db.errorClassificator.Classify(err)
}

func setupPool(conn *sql.DB, cfg config.DB) {
	if cfg.MaxOpenConns > 0 {
		conn.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		conn.SetMaxIdleConns(cfg.MaxIdleConns)
	}
}
