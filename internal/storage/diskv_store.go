package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/peterbourgon/diskv/v3"
)

// DiskvStore keeps each record in its own file below a base directory.
// A key like "aura_activities" lives at <base>/aura/activities.
type DiskvStore struct {
	basePath string
	d        *diskv.Diskv
}

func NewDiskvStore(basePath string) *DiskvStore {
	return &DiskvStore{basePath: basePath}
}

func (s *DiskvStore) open() {
	s.d = diskv.New(diskv.Options{
		BasePath:          s.basePath,
		AdvancedTransform: keyToPath,
		InverseTransform:  pathToKey,
		CacheSizeMax:      1024 * 1024, // 1MB
	})
}

func (s *DiskvStore) Init() error {
	if err := os.MkdirAll(s.basePath, 0700); err != nil {
		return fmt.Errorf("failed to create storage directory: %w", err)
	}
	s.open()
	return nil
}

func (s *DiskvStore) Load() error {
	info, err := os.Stat(s.basePath)
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNotInitialized
		}
		return fmt.Errorf("failed to stat storage directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("storage path %s is not a directory", s.basePath)
	}
	s.open()
	return nil
}

func (s *DiskvStore) Close() error {
	return nil
}

func (s *DiskvStore) Read(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.d == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	val, err := s.d.Read(key)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return val, nil
}

func (s *DiskvStore) Write(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.d == nil {
		return fmt.Errorf("storage not loaded")
	}
	if err := s.d.Write(key, value); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

func (s *DiskvStore) GetConfigPath() string {
	return s.basePath
}

func keyToPath(key string) *diskv.PathKey {
	parts := strings.Split(key, "_")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKey(pk *diskv.PathKey) string {
	if len(pk.Path) == 0 {
		return pk.FileName
	}
	return strings.Join(pk.Path, "_") + "_" + pk.FileName
}
