package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/misterclayt0n/mapty/internal/config"
)

var ErrNotFound = errors.New("key not found")

// Store is a durable key-value slot. Get returns ErrNotFound for an
// absent key; removing an absent key is not an error.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}

// Open picks the backend named in the config.
func Open(cfg config.StoreConfig) (Store, error) {
	switch strings.ToLower(cfg.Backend) {
	case "", config.BackendFile:
		dir := cfg.Dir
		if dir == "" {
			var err error
			if dir, err = config.GetDataDir(); err != nil {
				return nil, err
			}
		}
		return NewFileStore(dir)
	case config.BackendSQL:
		return NewSQLStore(cfg.URL)
	case config.BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}

// Close releases the backend if it holds resources.
func Close(s Store) error {
	if c, ok := s.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
