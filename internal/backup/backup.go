package backup

import (
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/aurapulse/internal/constants"
	"github.com/julianstephens/aurapulse/internal/logger"
)

const timestampLayout = "20060102-150405"

// ErrUnsupported is returned for backends whose data does not live in a single local file.
var ErrUnsupported = errors.New("backups are only supported for the sqlite and json backends")

// Info describes one backup file.
type Info struct {
	Path      string
	Timestamp time.Time
	Size      int64

	seq int // collision counter within the same second
}

// Manager creates, lists, rotates and restores backups of a single-file store.
type Manager struct {
	storePath string
	backend   string
	backupDir string
	now       func() time.Time
}

func NewManager(storePath, backend string) *Manager {
	return &Manager{
		storePath: storePath,
		backend:   backend,
		backupDir: filepath.Join(filepath.Dir(storePath), constants.BackupDirName),
		now:       time.Now,
	}
}

// Dir returns the directory backups are written to.
func (m *Manager) Dir() string {
	return m.backupDir
}

func (m *Manager) suffix() string {
	if m.backend == constants.BackendJSON {
		return ".json"
	}
	return ".db"
}

// Supported reports whether the backend keeps its data in a single local file.
func (m *Manager) Supported() bool {
	return m.backend == constants.BackendSQLite || m.backend == constants.BackendJSON
}

// Create writes a new backup and prunes old ones beyond constants.MaxBackups.
func (m *Manager) Create() (string, error) {
	path, err := m.create()
	if err != nil {
		return "", err
	}
	if err := m.rotate(); err != nil {
		logger.Warn("Failed to rotate old backups", "error", err)
	}
	return path, nil
}

func (m *Manager) create() (string, error) {
	if !m.Supported() {
		return "", ErrUnsupported
	}
	if _, err := os.Stat(m.storePath); err != nil {
		return "", fmt.Errorf("store does not exist: %s", m.storePath)
	}
	if err := os.MkdirAll(m.backupDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	path, err := m.nextPath()
	if err != nil {
		return "", err
	}

	if m.backend == constants.BackendSQLite {
		err = vacuumInto(m.storePath, path)
	} else {
		err = copyFile(m.storePath, path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to back up store: %w", err)
	}
	logger.Info("Backup created", "path", path)
	return path, nil
}

func (m *Manager) nextPath() (string, error) {
	stamp := m.now().Format(timestampLayout)
	path := filepath.Join(m.backupDir, constants.BackupFilePrefix+stamp+m.suffix())
	for i := 1; ; i++ {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return path, nil
		}
		if i > 100 {
			return "", fmt.Errorf("failed to generate unique backup filename")
		}
		path = filepath.Join(m.backupDir, fmt.Sprintf("%s%s-%d%s", constants.BackupFilePrefix, stamp, i, m.suffix()))
	}
}

// vacuumInto copies a live sqlite database consistently.
func vacuumInto(src, dst string) error {
	db, err := sql.Open("sqlite", src)
	if err != nil {
		return fmt.Errorf("failed to open source database: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec("VACUUM INTO ?", dst); err != nil {
		return fmt.Errorf("vacuum into %s: %w", dst, err)
	}
	return nil
}

// List returns the backups, newest first.
func (m *Manager) List() ([]Info, error) {
	entries, err := os.ReadDir(m.backupDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Info{}, nil
		}
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	backups := []Info{}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, constants.BackupFilePrefix) || !strings.HasSuffix(name, m.suffix()) {
			continue
		}

		// aurapulse-20240501-093000[-N].db
		stamp := strings.TrimSuffix(strings.TrimPrefix(name, constants.BackupFilePrefix), m.suffix())
		seq := 0
		if len(stamp) > len(timestampLayout) {
			n, err := strconv.Atoi(strings.TrimPrefix(stamp[len(timestampLayout):], "-"))
			if err != nil {
				continue
			}
			stamp, seq = stamp[:len(timestampLayout)], n
		}
		ts, err := time.ParseInLocation(timestampLayout, stamp, time.Local)
		if err != nil {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}
		backups = append(backups, Info{
			Path:      filepath.Join(m.backupDir, name),
			Timestamp: ts,
			Size:      info.Size(),
			seq:       seq,
		})
	}

	sort.SliceStable(backups, func(i, j int) bool {
		if backups[i].Timestamp.Equal(backups[j].Timestamp) {
			return backups[i].seq > backups[j].seq
		}
		return backups[i].Timestamp.After(backups[j].Timestamp)
	})
	return backups, nil
}

func (m *Manager) rotate() error {
	backups, err := m.List()
	if err != nil {
		return err
	}
	for i := constants.MaxBackups; i < len(backups); i++ {
		if err := os.Remove(backups[i].Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", backups[i].Path, err)
		}
	}
	return nil
}

// Restore replaces the store with backupPath. The current store is backed up
// first (without rotation) and its path is returned.
func (m *Manager) Restore(backupPath string) (string, error) {
	if !m.Supported() {
		return "", ErrUnsupported
	}
	if _, err := os.Stat(backupPath); err != nil {
		return "", fmt.Errorf("backup file does not exist: %s", backupPath)
	}
	if m.backend == constants.BackendSQLite {
		if err := verifySQLite(backupPath); err != nil {
			return "", fmt.Errorf("backup file is corrupted or invalid: %w", err)
		}
	}

	var previous string
	if _, err := os.Stat(m.storePath); err == nil {
		p, err := m.create()
		if err != nil {
			return "", fmt.Errorf("failed to back up current store before restore: %w", err)
		}
		previous = p
	}

	tmp := m.storePath + ".restore.tmp"
	if err := copyFile(backupPath, tmp); err != nil {
		return "", fmt.Errorf("failed to copy backup file: %w", err)
	}
	if err := os.Rename(tmp, m.storePath); err != nil {
		_ = os.Remove(tmp)
		return "", fmt.Errorf("failed to restore store: %w", err)
	}
	return previous, nil
}

func verifySQLite(path string) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return err
	}
	defer db.Close()

	var count int
	return db.QueryRow("SELECT COUNT(*) FROM sqlite_master").Scan(&count)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Sync(); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
