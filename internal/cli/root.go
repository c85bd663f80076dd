package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"

	"github.com/julianstephens/aurapulse/internal/backup"
	"github.com/julianstephens/aurapulse/internal/constants"
	"github.com/julianstephens/aurapulse/internal/logger"
	"github.com/julianstephens/aurapulse/internal/schedule"
	"github.com/julianstephens/aurapulse/internal/storage"
	"github.com/julianstephens/aurapulse/internal/storage/postgres"
	"github.com/julianstephens/aurapulse/internal/storage/sqlite"
	"github.com/julianstephens/aurapulse/internal/suggest"
	"github.com/julianstephens/aurapulse/internal/tracker"
)

// Context is bound to every command's Run method.
type Context struct {
	Store   storage.Provider
	Backend  string
	Date     string
	Location *time.Location

	Advisor   suggest.Advisor
	Estimator schedule.Estimator
	AIEnabled bool

	Out io.Writer
}

// OpenSession loads the stored collections for the selected date.
func (c *Context) OpenSession(ctx context.Context) (*tracker.Session, error) {
	return tracker.Open(ctx, tracker.Config{
		Records:   c.Store,
		Advisor:   c.Advisor,
		Estimator: c.Estimator,
		Date:      c.Date,
		Location:  c.Location,
	})
}

// Stdout returns the command output writer.
func (c *Context) Stdout() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

// Printf writes formatted output for the user.
func (c *Context) Printf(format string, args ...interface{}) {
	fmt.Fprintf(c.Stdout(), format, args...)
}

// PerformAutomaticBackup creates a backup and only logs failures.
func (c *Context) PerformAutomaticBackup() {
	if c.Backend != constants.BackendSQLite && c.Backend != constants.BackendJSON {
		return
	}
	mgr := backup.NewManager(c.Store.GetConfigPath(), c.Backend)
	if _, err := mgr.Create(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// ExpandPath resolves a leading ~ in path.
func ExpandPath(path string) (string, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf("failed to expand %s: %w", path, err)
	}
	return expanded, nil
}

// DetectBackend infers the backend from the store location when none is given.
func DetectBackend(store string) string {
	switch {
	case postgres.IsConnString(store):
		return constants.BackendPostgres
	case strings.EqualFold(filepath.Ext(store), ".json"):
		return constants.BackendJSON
	case strings.HasSuffix(store, string(filepath.Separator)):
		return constants.BackendDiskv
	default:
		return constants.BackendSQLite
	}
}

// OpenStore builds the storage provider for backend at location. It does not
// open or initialize the store.
func OpenStore(backend, location string) (storage.Provider, error) {
	if backend == "" {
		backend = DetectBackend(location)
	}

	if backend == constants.BackendPostgres {
		if err := postgres.ValidateConnString(location); err != nil {
			return nil, err
		}
		return postgres.New(location), nil
	}

	path, err := ExpandPath(location)
	if err != nil {
		return nil, err
	}
	switch backend {
	case constants.BackendSQLite:
		return sqlite.NewStore(path), nil
	case constants.BackendJSON:
		return storage.NewJSONStore(path), nil
	case constants.BackendDiskv:
		return storage.NewDiskvStore(path), nil
	}
	return nil, fmt.Errorf("unknown backend %q", backend)
}
