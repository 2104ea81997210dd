package audit

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/peoplekeeper/internal/audit/migrations"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// Dialect selects driver name, goose dialect, migrations and placeholders.
type Dialect struct {
	Driver        string
	GooseDialect  string
	MigrationsDir string
	insert        string
}

var (
	DialectSQLite = Dialect{
		Driver:        "sqlite",
		GooseDialect:  "sqlite3",
		MigrationsDir: migrations.SQLiteDir,
		insert:        `INSERT INTO audit_events (occurred_at, session_id, actor, message) VALUES (?, ?, ?, ?)`,
	}
	DialectPostgres = Dialect{
		Driver:        "pgx",
		GooseDialect:  "pgx",
		MigrationsDir: migrations.PostgresDir,
		insert:        `INSERT INTO audit_events (occurred_at, session_id, actor, message) VALUES ($1, $2, $3, $4)`,
	}
)

// DialectFor maps a driver name ("sqlite" or "pgx") to its Dialect.
func DialectFor(driver string) (Dialect, error) {
	switch driver {
	case DialectSQLite.Driver:
		return DialectSQLite, nil
	case DialectPostgres.Driver:
		return DialectPostgres, nil
	default:
		return Dialect{}, fmt.Errorf("unsupported audit driver %q", driver)
	}
}

type SQLWriter struct {
	db      *sql.DB
	dialect Dialect
}

func NewSQLWriter(db *sql.DB, d Dialect) *SQLWriter {
	return &SQLWriter{db: db, dialect: d}
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations applies the embedded audit schema for d.
func RunMigrations(ctx context.Context, db *sql.DB, d Dialect) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect(d.GooseDialect); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := gooseUpContext(ctx, db, d.MigrationsDir); err != nil {
		return fmt.Errorf("audit migrations: %w", err)
	}
	return nil
}

// OpenSQLWriter opens dsn with the driver for d, checks connectivity and
// applies migrations. Close releases the connection pool.
func OpenSQLWriter(ctx context.Context, d Dialect, dsn string) (*SQLWriter, error) {
	db, err := sql.Open(d.Driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open audit db: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping audit db: %w", err)
	}
	if err := RunMigrations(ctx, db, d); err != nil {
		_ = db.Close()
		return nil, err
	}
	return NewSQLWriter(db, d), nil
}

func (w *SQLWriter) Write(ctx context.Context, e Event) error {
	if _, err := w.db.ExecContext(ctx, w.dialect.insert, e.Time.UTC(), e.SessionID, e.Actor, e.Message); err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}

func (w *SQLWriter) Close() error {
	return w.db.Close()
}
