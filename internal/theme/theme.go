// Package theme holds the light/dark display mode and the palettes that
// renderers derive their styles from. There is no package-level current
// theme: a Store is created at startup and handed to whoever renders.
package theme

import (
	"fmt"
	"strings"
	"sync"
)

// Theme is the display mode.
type Theme int

const (
	Light Theme = iota
	Dark
)

// Default is used when configuration does not choose a theme.
const Default = Light

func (t Theme) String() string {
	if t == Dark {
		return "dark"
	}
	return "light"
}

// Label is the toggle caption shown in headers.
func (t Theme) Label() string {
	return strings.ToUpper(t.String())
}

// Opposite returns the other theme.
func (t Theme) Opposite() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// ParseTheme maps a configuration value to a Theme.
func ParseTheme(value string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "":
		return Default, nil
	case "light":
		return Light, nil
	case "dark":
		return Dark, nil
	default:
		return Default, fmt.Errorf("unknown theme %q", value)
	}
}

// Store coordinates access to the current theme.
type Store struct {
	mu      sync.RWMutex
	current Theme
}

// NewStore allocates a Store holding initial.
func NewStore(initial Theme) *Store {
	return &Store{current: initial}
}

// Current returns the current theme.
func (s *Store) Current() Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Toggle flips the theme and returns the new value.
func (s *Store) Toggle() Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = s.current.Opposite()
	return s.current
}
