// Package score persists the best score across sessions.
package score

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// Store loads and saves a single high score. Implementations are safe for
// concurrent use.
type Store interface {
	Load() (int, error)
	Save(score int) error
	// Submit saves score if it beats the stored one and reports whether it did.
	Submit(score int) (bool, error)
}

// submit compares and saves; the caller holds the store's lock.
func submit(load func() (int, error), save func(int) error, score int) (bool, error) {
	best, err := load()
	if err != nil {
		return false, err
	}
	if score <= best {
		return false, nil
	}
	if err := save(score); err != nil {
		return false, err
	}
	return true, nil
}

// record is the on-disk layout.
type record struct {
	HighScore int `yaml:"high_score"`
}

// FileStore keeps the high score in a YAML file.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore returns a store backed by the file at path. The file is
// created on the first Save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load returns the stored high score, or zero when the file does not exist yet.
func (f *FileStore) Load() (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.load()
}

// Save writes the high score, replacing the file atomically.
func (f *FileStore) Save(score int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.save(score)
}

// Submit implements Store.
func (f *FileStore) Submit(score int) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return submit(f.load, f.save, score)
}

func (f *FileStore) load() (int, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read high score: %w", err)
	}

	var r record
	if err := yaml.Unmarshal(data, &r); err != nil {
		return 0, fmt.Errorf("parse high score %s: %w", f.path, err)
	}
	return r.HighScore, nil
}

func (f *FileStore) save(score int) error {
	data, err := yaml.Marshal(record{HighScore: score})
	if err != nil {
		return fmt.Errorf("encode high score: %w", err)
	}

	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create high score dir: %w", err)
		}
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write high score: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("write high score: %w", err)
	}
	return nil
}

// MemoryStore keeps the high score in memory only.
type MemoryStore struct {
	mu    sync.Mutex
	score int
}

// Load returns the stored high score.
func (m *MemoryStore) Load() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.score, nil
}

// Save replaces the stored high score.
func (m *MemoryStore) Save(score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.score = score
	return nil
}

// Submit implements Store.
func (m *MemoryStore) Submit(score int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return submit(
		func() (int, error) { return m.score, nil },
		func(n int) error { m.score = n; return nil },
		score,
	)
}

var (
	_ Store = (*FileStore)(nil)
	_ Store = (*MemoryStore)(nil)
)
