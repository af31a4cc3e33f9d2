// Package cache stores JSON-encoded API responses on disk with a freshness window.
package cache

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/cinerow/cinerow/filesystem"
	"github.com/spf13/afero"
)

// Store is a directory of cached responses sharing one TTL.
type Store struct {
	dir string
	ttl time.Duration
}

// New returns a store rooted at dir. A non-positive ttl disables the store.
func New(dir string, ttl time.Duration) *Store {
	return &Store{dir: dir, ttl: ttl}
}

// Key derives a stable entry name from the request parts.
func Key(parts ...string) string {
	normalized := strings.ToLower(strings.Join(parts, "\x00"))
	return fmt.Sprintf("%016x", xxhash.Sum64String(normalized))
}

// Read decodes a fresh entry into target and reports whether it was found.
func (s *Store) Read(key string, target any) bool {
	if s == nil || s.ttl <= 0 {
		return false
	}

	path := filepath.Join(s.dir, key)
	info, err := filesystem.API().Stat(path)
	if err != nil || time.Since(info.ModTime()) > s.ttl {
		return false
	}

	data, err := filesystem.API().ReadFile(path)
	if err != nil {
		return false
	}

	return json.Unmarshal(data, target) == nil
}

// Write persists data under key, swapping a temp file into place.
func (s *Store) Write(key string, data any) error {
	if s == nil || s.ttl <= 0 {
		return nil
	}

	api := filesystem.API()
	if err := api.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}

	encoded, err := json.Marshal(data)
	if err != nil {
		return err
	}

	path := filepath.Join(s.dir, key)
	tmp := path + ".tmp"
	if err := api.WriteFile(tmp, encoded, 0o644); err != nil {
		return err
	}

	return api.Rename(tmp, path)
}

// Prune removes expired entries and returns how many were deleted.
func (s *Store) Prune() int {
	if s == nil {
		return 0
	}

	var removed int
	_ = afero.Walk(filesystem.API().Fs, s.dir, func(path string, info fs.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return nil
		}
		if time.Since(info.ModTime()) > s.ttl && filesystem.API().Remove(path) == nil {
			removed++
		}
		return nil
	})

	return removed
}
