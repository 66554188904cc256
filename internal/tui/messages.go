package tui

import (
	"github.com/alexisbeaulieu97/devfinder/internal/lookup"
	"github.com/alexisbeaulieu97/devfinder/internal/theme"
)

// LookupResolvedMsg reports that a background lookup finished. State is the
// controller state right after the attempt; the model re-reads the
// controller rather than trusting it.
type LookupResolvedMsg struct {
	Seq   uint64
	State lookup.State
}

// ThemeSavedMsg indicates the theme was persisted.
type ThemeSavedMsg struct {
	Theme theme.Theme
}

// ErrorMsg reports a non-lookup failure, such as a preferences write.
type ErrorMsg struct {
	Err error
}
