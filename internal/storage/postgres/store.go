package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"
	"time"

	pq "github.com/lib/pq"

	"github.com/julianstephens/aurapulse/internal/constants"
	"github.com/julianstephens/aurapulse/internal/logger"
	"github.com/julianstephens/aurapulse/internal/migration"
	"github.com/julianstephens/aurapulse/internal/storage"
	"github.com/julianstephens/aurapulse/migrations"
)

var (
	ErrInvalidConnectionString = errors.New("invalid PostgreSQL connection string")
	ErrEmbeddedCredentials     = errors.New("connection string must not contain a password")
)

// Store keeps records in the "aurapulse" schema of a PostgreSQL database.
type Store struct {
	connStr string
	db      *sql.DB
}

func New(connStr string) *Store {
	return &Store{
		connStr: withSearchPath(connStr),
	}
}

// IsConnString reports whether s looks like a PostgreSQL URL.
func IsConnString(s string) bool {
	return strings.HasPrefix(s, "postgres://") || strings.HasPrefix(s, "postgresql://")
}

// withSearchPath points the connection at the application schema unless the
// caller already chose a search_path.
func withSearchPath(connStr string) string {
	if IsConnString(connStr) {
		u, err := url.Parse(connStr)
		if err != nil {
			logger.Warn("Failed to parse Postgres connection string", "error", err)
			return connStr
		}
		q := u.Query()
		if q.Get("search_path") == "" {
			q.Set("search_path", constants.AppName)
			u.RawQuery = q.Encode()
		}
		return u.String()
	}

	if dsnHasKey(connStr, "search_path") {
		return connStr
	}
	return strings.TrimSpace(connStr) + " search_path=" + constants.AppName
}

// dsnHasKey reports whether a key=value style DSN sets key (case-insensitive).
func dsnHasKey(connStr, key string) bool {
	for _, part := range strings.Fields(connStr) {
		kv := strings.SplitN(part, "=", 2)
		if len(kv) == 2 && strings.EqualFold(strings.TrimSpace(kv[0]), key) {
			return true
		}
	}
	return false
}

func hasSSLMode(connStr string) bool {
	if u, err := url.Parse(connStr); err == nil && u.Scheme != "" {
		for key := range u.Query() {
			if strings.EqualFold(key, "sslmode") {
				return true
			}
		}
	}
	return dsnHasKey(connStr, "sslmode")
}

// ValidateConnString checks that connStr is a usable PostgreSQL URL or DSN
// without an embedded password. Passwords belong in .pgpass or PGPASSWORD.
func ValidateConnString(connStr string) error {
	if strings.TrimSpace(connStr) == "" {
		return fmt.Errorf("%w: connection string cannot be empty", ErrInvalidConnectionString)
	}
	if _, err := pq.NewConnector(connStr); err != nil {
		return fmt.Errorf("%w: invalid connection string format: %v", ErrInvalidConnectionString, err)
	}

	if IsConnString(connStr) {
		u, err := url.Parse(connStr)
		if err != nil {
			return fmt.Errorf("%w: failed to parse connection URL: %v", ErrInvalidConnectionString, err)
		}
		if _, isSet := u.User.Password(); isSet {
			return ErrEmbeddedCredentials
		}
		if u.Host == "" && u.User == nil && (u.Path == "" || u.Path == "/") {
			return fmt.Errorf("%w: connection URL is incomplete", ErrInvalidConnectionString)
		}
		return nil
	}

	if dsnHasKey(connStr, "password") {
		return ErrEmbeddedCredentials
	}
	return nil
}

func (s *Store) open() (*sql.DB, error) {
	db, err := sql.Open("postgres", s.connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		if strings.Contains(err.Error(), "SSL is not enabled on the server") && !hasSSLMode(s.connStr) {
			return nil, fmt.Errorf("failed to connect to database: %w (hint: try adding ?sslmode=disable to your connection string)", err)
		}
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

func (s *Store) Init() error {
	ctx := context.Background()
	db, err := s.open()
	if err != nil {
		return err
	}
	if _, err := db.ExecContext(ctx, "CREATE SCHEMA IF NOT EXISTS "+constants.AppName); err != nil {
		db.Close()
		return fmt.Errorf("failed to create schema: %w", err)
	}
	s.db = db

	runner, err := s.runner()
	if err != nil {
		return err
	}
	if _, err := runner.Apply(ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

func (s *Store) Load() error {
	if s.db != nil {
		return nil
	}
	db, err := s.open()
	if err != nil {
		return err
	}
	s.db = db

	runner, err := s.runner()
	if err != nil {
		return err
	}
	return runner.Validate(context.Background())
}

func (s *Store) Close() error {
	if s.db != nil {
		err := s.db.Close()
		s.db = nil
		return err
	}
	return nil
}

func (s *Store) runner() (*migration.Runner, error) {
	subFS, err := fs.Sub(migrations.FS, "postgres")
	if err != nil {
		return nil, fmt.Errorf("failed to access postgres migrations: %w", err)
	}
	return migration.NewRunner(s.db, subFS, migration.Postgres), nil
}

func (s *Store) Read(ctx context.Context, key string) ([]byte, error) {
	if s.db == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	var value string
	err := s.db.QueryRowContext(ctx, "SELECT value::text FROM records WHERE key = $1", key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return []byte(value), nil
}

// Write stores value as JSONB, so it must be valid JSON.
func (s *Store) Write(ctx context.Context, key string, value []byte) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO records (key, value, updated_at) VALUES ($1, $2::jsonb, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
	`, key, string(value))
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

func (s *Store) GetConfigPath() string {
	// non-sensitive identifier instead of the connection string
	return "postgresql"
}

// SchemaVersion reports the applied and the latest known migration version.
func (s *Store) SchemaVersion(ctx context.Context) (current, latest int, err error) {
	if s.db == nil {
		return 0, 0, fmt.Errorf("storage not loaded")
	}
	runner, err := s.runner()
	if err != nil {
		return 0, 0, err
	}
	if current, err = runner.CurrentVersion(ctx); err != nil {
		return 0, 0, err
	}
	if latest, err = runner.LatestVersion(); err != nil {
		return 0, 0, err
	}
	return current, latest, nil
}
