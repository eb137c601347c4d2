// Package tui provides the interactive wizard interface for lawkit.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/lawkit-dev/lawkit-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Policy drives the privacy policy wizard.
	Policy driving.PolicyService

	// Terms drives the terms-of-service wizard.
	Terms driving.TermsService

	// Export writes generated documents to files or the clipboard.
	Export driving.ExportService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(policy driving.PolicyService, terms driving.TermsService, export driving.ExportService) *Ports {
	return &Ports{
		Policy: policy,
		Terms:  terms,
		Export: export,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.Policy == nil {
		return ErrMissingPolicyService
	}
	if p.Terms == nil {
		return ErrMissingTermsService
	}
	if p.Export == nil {
		return ErrMissingExportService
	}
	return nil
}
