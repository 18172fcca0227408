package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-identity/internal/config"
	"github.com/MKhiriev/go-identity/internal/logger"
	"github.com/MKhiriev/go-identity/migrations"
	sq "github.com/Masterminds/squirrel"
)

// Dialect names a supported SQL backend.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite3"
)

// DB wraps the connection pool together with the dialect it speaks, so
// repositories can render queries with the right placeholder format.
type DB struct {
	*sql.DB
	dialect Dialect
	logger  *logger.Logger
}

// NewDB wraps an already opened pool. Used by tests and by callers that
// manage the connection themselves.
func NewDB(conn *sql.DB, dialect Dialect, log *logger.Logger) *DB {
	return &DB{DB: conn, dialect: dialect, logger: log}
}

// Dialect returns the SQL dialect of the connection.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// builder returns a squirrel statement builder with the dialect's placeholders.
func (db *DB) builder() sq.StatementBuilderType {
	if db.dialect == DialectPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

// Migrate applies the embedded schema migrations for the connection's dialect.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB, string(db.dialect))
}

// NewConnect opens the backend selected by cfg.DSN:
//   - postgres:// or postgresql:// → PostgreSQL through pgx
//   - sqlite:// or file: → SQLite through mattn/go-sqlite3
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch dialect, dsn := parseDSN(cfg.DSN); dialect {
	case DialectPostgres:
		return NewConnectPostgres(ctx, dsn, log)
	case DialectSQLite:
		return NewConnectSQLite(ctx, dsn, log)
	default:
		return nil, ErrUnsupportedDSN
	}
}

// parseDSN detects the dialect and returns the DSN in the form the driver expects.
func parseDSN(dsn string) (Dialect, string) {
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return DialectPostgres, dsn
	case strings.HasPrefix(dsn, "sqlite://"):
		return DialectSQLite, strings.TrimPrefix(dsn, "sqlite://")
	case strings.HasPrefix(dsn, "file:"):
		return DialectSQLite, dsn
	default:
		return "", dsn
	}
}

func ping(ctx context.Context, conn *sql.DB, fn string, log *logger.Logger) error {
	if err := conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", fn).Msg("error connecting database (ping)")
		_ = conn.Close()
		return fmt.Errorf("%w: %w", ErrConnectingDB, err)
	}
	log.Info().Str("func", fn).Msg("connected to database successfully")
	return nil
}
