// Package prefs persists user preferences between sessions. Only the theme
// is stored; lookup results are never written to disk.
package prefs

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/alexisbeaulieu97/devfinder/internal/theme"
)

const fileVersion = "1.0"

// File is the on-disk document.
type File struct {
	Version   string    `json:"version"`
	Theme     string    `json:"theme,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// Store reads and writes the preferences file.
type Store struct {
	path string
	mu   sync.RWMutex
	file File
}

// DefaultPath returns the preferences file next to the default config file.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "devfinder", "prefs.json"), nil
}

// Open creates a Store and loads path if it exists.
func Open(path string) (*Store, error) {
	s := &Store{path: path, file: File{Version: fileVersion}}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create preferences directory: %w", err)
	}

	if err := s.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	return s, nil
}

// Load reads the preferences from disk.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return err
	}

	var file File
	if err := json.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse preferences: %w", err)
	}
	if file.Version == "" {
		file.Version = fileVersion
	}
	s.file = file
	return nil
}

// Theme returns the stored theme, if any.
func (s *Store) Theme() (theme.Theme, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.file.Theme == "" {
		return theme.Default, false
	}
	t, err := theme.ParseTheme(s.file.Theme)
	if err != nil {
		return theme.Default, false
	}
	return t, true
}

// SetTheme records t and saves the file.
func (s *Store) SetTheme(t theme.Theme) error {
	s.mu.Lock()
	s.file.Theme = t.String()
	s.file.UpdatedAt = time.Now().UTC()
	s.mu.Unlock()
	return s.Save()
}

// Save writes the preferences to disk atomically.
func (s *Store) Save() error {
	s.mu.RLock()
	data, err := json.MarshalIndent(s.file, "", "  ")
	s.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}
	return nil
}
