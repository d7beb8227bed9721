// Package sqlstore implements storage.Storage on top of database/sql and goqu.
// The same queries run against SQLite (the default single-file deployment,
// through modernc.org/sqlite) and PostgreSQL (through pgx).
package sqlstore

import (
	root "agenthub"
	"agenthub/pkg/storage"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	goqusqlite3 "github.com/doug-martin/goqu/v9/dialect/sqlite3"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	sqliteDialect   = "sqlite3-fixedtime"
	postgresDialect = "postgres"

	// sqliteTimeFormat keeps every interpolated timestamp the same width so
	// that SQLite's text comparison of created_at matches time order.
	sqliteTimeFormat = "2006-01-02T15:04:05.000000Z07:00"
)

func init() { //nolint: gochecknoinits
	opts := goqusqlite3.DialectOptions()
	opts.TimeFormat = sqliteTimeFormat
	goqu.RegisterDialect(sqliteDialect, opts)
}

// Options defines the connection parameters. Path is used by the SQLite
// driver, the remaining connection fields by PostgreSQL.
type Options struct {
	// Driver is either DriverSQLite or DriverPostgres
	Driver string
	// Path is the SQLite database file; its directory is created when missing
	Path string

	Username string
	Password string
	Host     string
	SslMode  string
	Port     int
	Database string

	ConnMaxLifetime    time.Duration
	ConnMaxIdleTime    time.Duration
	MaxOpenConnections int
	MaxIdleConnections int
}

// DB defines the subset of database/sql methods used by this package. Both
// *sql.DB and *sql.Tx satisfy this interface, allowing the same code paths to be
// used within and outside transactions.
type DB interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// Builder abstracts the subset of goqu used to construct queries. Both a goqu
// database handle and a transaction handle implement it.
type Builder interface {
	From(table ...interface{}) *goqu.SelectDataset
	Insert(table interface{}) *goqu.InsertDataset
	Update(table interface{}) *goqu.UpdateDataset
	Delete(table interface{}) *goqu.DeleteDataset
}

// Store implements storage.Storage.
type Store struct {
	// DB is either a *sql.DB or, inside a transaction, a *sql.Tx.
	DB DB
	// Builder is the goqu handle bound to DB.
	Builder Builder
	// Pool is the pgx pool backing DB when running on PostgreSQL.
	Pool *pgxpool.Pool

	dialect string
}

var _ storage.Storage = (*Store)(nil)

// Open connects to the configured backend.
func Open(ctx context.Context, options Options) (*Store, error) {
	switch options.Driver {
	case DriverSQLite, "":
		return openSQLite(options)
	case DriverPostgres:
		return openPostgres(ctx, options)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", options.Driver)
	}
}

func openSQLite(options Options) (*Store, error) {
	if options.Path == "" {
		return nil, errors.New("sqlite database path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(options.Path), 0o750); err != nil {
		return nil, fmt.Errorf("could not create database directory: %w", err)
	}

	dsn := "file:" + options.Path +
		"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("could not open sqlite database: %w", err)
	}
	// sqlite allows a single writer, the pool is serialized on one connection.
	db.SetMaxOpenConns(1)

	return &Store{
		DB:      db,
		Builder: goqu.Dialect(sqliteDialect).DB(db),
		dialect: sqliteDialect,
	}, nil
}

func openPostgres(ctx context.Context, options Options) (*Store, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s dbname=%s password=%s sslmode=%s",
		options.Host,
		options.Port,
		options.Username,
		options.Database,
		options.Password,
		options.SslMode)
	cfg, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		return nil, fmt.Errorf("could not parse pgxpool config: %w", err)
	}
	if options.MaxOpenConnections > 0 {
		cfg.MaxConns = int32(options.MaxOpenConnections) //nolint: gosec
	}
	if options.MaxIdleConnections > 0 {
		cfg.MinConns = int32(options.MaxIdleConnections) //nolint: gosec
	}
	if options.ConnMaxLifetime > 0 {
		cfg.MaxConnLifetime = options.ConnMaxLifetime
	}
	if options.ConnMaxIdleTime > 0 {
		cfg.MaxConnIdleTime = options.ConnMaxIdleTime
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("could not create pgx Pool: %w", err)
	}

	// wrap the pool with a *sql.DB to keep compatibility with goqu and goose
	sqlDB := stdlib.OpenDBFromPool(pool)

	return &Store{
		DB:      sqlDB,
		Builder: goqu.Dialect(postgresDialect).DB(sqlDB),
		Pool:    pool,
		dialect: postgresDialect,
	}, nil
}

// SQLDB returns the underlying *sql.DB, or nil inside a transaction.
func (s *Store) SQLDB() *sql.DB {
	db, _ := s.DB.(*sql.DB)

	return db
}

// IsSQLite reports whether the store runs on SQLite.
func (s *Store) IsSQLite() bool {
	return s.dialect == sqliteDialect
}

// Migrate applies the embedded goose migrations.
func (s *Store) Migrate(ctx context.Context) error {
	db := s.SQLDB()
	if db == nil {
		return storage.ErrAlreadyInTx
	}

	migrations, err := fs.Sub(root.Migrations, "migrations")
	if err != nil {
		return fmt.Errorf("could not open embedded migrations: %w", err)
	}
	provider, err := goose.NewProvider(s.gooseDialect(), db, migrations)
	if err != nil {
		return fmt.Errorf("could not create goose provider: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("could not apply migrations: %w", err)
	}

	return nil
}

func (s *Store) gooseDialect() goose.Dialect {
	if s.IsSQLite() {
		return goose.DialectSQLite3
	}

	return goose.DialectPostgres
}

func (s *Store) Ping(ctx context.Context) error {
	db := s.SQLDB()
	if db == nil {
		return storage.ErrAlreadyInTx
	}
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("could not ping database: %w", err)
	}

	return nil
}

// Close closes the database handle and, on PostgreSQL, the pgx pool.
func (s *Store) Close() error {
	if db, ok := s.DB.(*sql.DB); ok {
		if err := db.Close(); err != nil {
			return fmt.Errorf("could not close database: %w", err)
		}
	}
	if s.Pool != nil {
		s.Pool.Close()
	}

	return nil
}

// Commit returns storage.ErrNotInTx outside a transaction.
func (s *Store) Commit() error {
	db, ok := s.DB.(*sql.Tx)
	if !ok {
		return storage.ErrNotInTx
	}

	if err := db.Commit(); err != nil {
		return fmt.Errorf("could not commit tx: %w", err)
	}

	return nil
}

// Rollback returns storage.ErrNotInTx outside a transaction.
func (s *Store) Rollback() error {
	db, ok := s.DB.(*sql.Tx)
	if !ok {
		return storage.ErrNotInTx
	}

	if err := db.Rollback(); err != nil {
		return fmt.Errorf("could not rollback tx: %w", err)
	}

	return nil
}

// Begin returns storage.ErrAlreadyInTx when called on a transactional Store.
func (s *Store) Begin(ctx context.Context) (storage.TxStorage, error) {
	db, ok := s.DB.(*sql.DB)
	if !ok {
		return nil, storage.ErrAlreadyInTx
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("could not begin tx: %w", err)
	}

	return &Store{
		DB:      tx,
		Builder: goqu.NewTx(s.dialect, tx),
		dialect: s.dialect,
	}, nil
}

func (s *Store) WithTx(ctx context.Context, cb func(storage storage.AllStorage) error) error {
	tx, err := s.Begin(ctx)
	if err != nil {
		return err
	}

	if err := cb(tx); err != nil {
		_ = tx.Rollback()

		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("could not commit tx: %w", err)
	}

	return nil
}

// isUniqueViolation detects unique constraint failures from either driver.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		return liteErr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE ||
			liteErr.Code() == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
	}

	return false
}

// now returns the current time at the precision both backends preserve.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
