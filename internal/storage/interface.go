package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Read when no record exists under the key.
var ErrNotFound = errors.New("record not found")

// ErrNotInitialized is returned by Load when the store has never been created.
var ErrNotInitialized = errors.New("storage not initialized, run 'aurapulse init' first")

// Provider is a durable key/value store of independent records. Values are
// opaque bytes; each Write replaces the whole record.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Records
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, value []byte) error

	// Utils
	GetConfigPath() string
}
