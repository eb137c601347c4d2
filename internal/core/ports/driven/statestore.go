package driven

import (
	"context"

	"github.com/lawkit-dev/lawkit-cli/internal/core/domain"
)

// StateStore persists wizard state between runs.
// Backed by SQLite; one state blob per document type.
type StateStore interface {
	// SavePolicyState stores or replaces the privacy wizard state.
	SavePolicyState(ctx context.Context, state *domain.PolicyState) error

	// LoadPolicyState retrieves the privacy wizard state.
	// Returns domain.ErrNotFound when no state has been saved.
	LoadPolicyState(ctx context.Context) (*domain.PolicyState, error)

	// SaveTermsState stores or replaces the terms wizard state.
	SaveTermsState(ctx context.Context, state *domain.TermsState) error

	// LoadTermsState retrieves the terms wizard state.
	// Returns domain.ErrNotFound when no state has been saved.
	LoadTermsState(ctx context.Context) (*domain.TermsState, error)

	// Reset removes the stored state for a document type.
	Reset(ctx context.Context, docType domain.DocType) error

	// Close releases the underlying storage.
	Close() error
}
