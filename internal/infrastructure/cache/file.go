package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/partscout/backend/internal/domain"
)

// FileCache is a durable cache storing one JSON document per key under a
// directory. Entries survive process restarts and are never expired or
// evicted; cleanup is manual. Concurrent writers racing on the same key are
// last-writer-wins.
type FileCache struct {
	dir string
}

// NewFileCache creates a file-backed cache rooted at dir, creating the
// directory if needed.
func NewFileCache(dir string) (*FileCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCacheUnavailable, err)
	}
	return &FileCache{dir: dir}, nil
}

// path returns the backing file for a key
func (c *FileCache) path(key string) string {
	return filepath.Join(c.dir, key+".json")
}

// Get retrieves the listings stored under key. A missing or unreadable entry
// is a cache miss; the caller falls through to a live fetch.
func (c *FileCache) Get(ctx context.Context, key string) ([]domain.Listing, error) {
	data, err := os.ReadFile(c.path(key))
	if err != nil {
		return nil, domain.ErrCacheMiss
	}

	var listings []domain.Listing
	if err := json.Unmarshal(data, &listings); err != nil {
		// Corrupt entry: treat as a miss so it gets refetched and rewritten.
		return nil, domain.ErrCacheMiss
	}

	return listings, nil
}

// Set persists the listings under key
func (c *FileCache) Set(ctx context.Context, key string, listings []domain.Listing) error {
	data, err := json.Marshal(listings)
	if err != nil {
		return err
	}

	if err := os.WriteFile(c.path(key), data, 0o644); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrCacheUnavailable, err)
	}
	return nil
}

// Delete removes the entry for key, if any
func (c *FileCache) Delete(ctx context.Context, key string) error {
	err := os.Remove(c.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("%w: %v", domain.ErrCacheUnavailable, err)
	}
	return nil
}

// Exists reports whether an entry is stored under key
func (c *FileCache) Exists(ctx context.Context, key string) (bool, error) {
	_, err := os.Stat(c.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("%w: %v", domain.ErrCacheUnavailable, err)
	}
	return true, nil
}
