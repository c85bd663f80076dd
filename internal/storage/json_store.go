package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

type document struct {
	Version int               `json:"version"`
	Records map[string]string `json:"records"`
}

// JSONStore keeps all records in one JSON file. Record values are stored
// verbatim as strings so a corrupt record never breaks its neighbours.
type JSONStore struct {
	path string

	mu  sync.Mutex
	doc *document
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return s.Load()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = &document{Version: 1, Records: make(map[string]string)}
	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNotInitialized
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	doc := &document{}
	if err := json.Unmarshal(data, doc); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}
	if doc.Records == nil {
		doc.Records = make(map[string]string)
	}

	s.mu.Lock()
	s.doc = doc
	s.mu.Unlock()
	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) Read(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.doc == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	v, ok := s.doc.Records[key]
	if !ok {
		return nil, ErrNotFound
	}
	return []byte(v), nil
}

func (s *JSONStore) Write(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.doc.Records[key] = string(value)
	return s.save()
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}

// save writes the document through a temp file so readers never see a torn file.
func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	return nil
}
