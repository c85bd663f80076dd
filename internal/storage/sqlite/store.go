package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/aurapulse/internal/migration"
	"github.com/julianstephens/aurapulse/internal/storage"
	"github.com/julianstephens/aurapulse/migrations"
)

type Store struct {
	path string
	db   *sql.DB
}

func NewStore(path string) *Store {
	return &Store{
		path: path,
	}
}

func (s *Store) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if s.db == nil {
		db, err := sql.Open("sqlite", s.path)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		s.db = db
	}

	runner, err := s.runner()
	if err != nil {
		return err
	}
	if _, err := runner.Apply(context.Background()); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

func (s *Store) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return storage.ErrNotInitialized
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
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
	subFS, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		return nil, fmt.Errorf("failed to access sqlite migrations: %w", err)
	}
	return migration.NewRunner(s.db, subFS, migration.SQLite), nil
}

func (s *Store) Read(ctx context.Context, key string) ([]byte, error) {
	if s.db == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	var value string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM records WHERE key = ?", key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return []byte(value), nil
}

func (s *Store) Write(ctx context.Context, key string, value []byte) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO records (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, string(value), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

func (s *Store) GetConfigPath() string {
	return s.path
}

// GetDB returns the underlying database connection, nil before Init or Load.
func (s *Store) GetDB() *sql.DB {
	return s.db
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
