// Package progress persists how far the player has unlocked.
package progress

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// Data is the saved state. LevelCount is the number of unlocked levels.
type Data struct {
	LevelCount int `yaml:"levelCount"`
}

func defaults() Data {
	return Data{LevelCount: 1}
}

// Store keeps Data in memory and writes it to a YAML file on Save. An empty
// path keeps everything in memory.
type Store struct {
	mu   sync.Mutex
	path string
	data Data
}

// Open reads path. A missing file yields the defaults.
func Open(path string) (*Store, error) {
	s := &Store{path: path, data: defaults()}
	if path == "" {
		return s, nil
	}
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("progress: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &s.data); err != nil {
		return nil, fmt.Errorf("progress: decode %s: %w", path, err)
	}
	if s.data.LevelCount < 1 {
		s.data.LevelCount = 1
	}
	return s, nil
}

func (s *Store) LevelCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.LevelCount
}

// Unlock raises LevelCount to n. It reports whether anything changed.
func (s *Store) Unlock(n int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n <= s.data.LevelCount {
		return false
	}
	s.data.LevelCount = n
	return true
}

// Save writes the store atomically: a temp file in the same directory is
// renamed over the target.
func (s *Store) Save() error {
	s.mu.Lock()
	data := s.data
	s.mu.Unlock()
	if s.path == "" {
		return nil
	}

	out, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Errorf("progress: encode: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("progress: %w", err)
	}
	tmpFile, err := os.CreateTemp(dir, ".progress-*.tmp")
	if err != nil {
		return fmt.Errorf("progress: %w", err)
	}
	tmpPath := tmpFile.Name()

	if _, err = tmpFile.Write(out); err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("progress: write: %w", err)
	}
	if err = tmpFile.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("progress: write: %w", err)
	}
	if err = os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("progress: %w", err)
	}
	return nil
}
