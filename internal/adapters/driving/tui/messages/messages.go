// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/lawkit-dev/lawkit-cli/internal/core/domain"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewPolicy is the privacy policy wizard.
	ViewPolicy
	// ViewTerms is the terms-of-service wizard.
	ViewTerms
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewPolicy:
		return "policy"
	case ViewTerms:
		return "terms"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}

// StateSaved signals that a wizard mutation was persisted.
type StateSaved struct {
	Err error
}

// PolicyGenerated carries the assembled privacy policy back to the view.
type PolicyGenerated struct {
	Document *domain.GeneratedDocument
	Err      error
}

// TermsGenerated carries the assembled terms document back to the view.
type TermsGenerated struct {
	Document *domain.GeneratedTerms
	Err      error
}

// ExportCompleted signals an export finished. Path is empty for
// clipboard export.
type ExportCompleted struct {
	Path string
	Err  error
}
