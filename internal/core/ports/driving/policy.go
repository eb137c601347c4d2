package driving

import (
	"context"

	"github.com/lawkit-dev/lawkit-cli/internal/core/domain"
)

// PolicyService drives the privacy policy wizard. Every mutation
// recomputes the completion rate and persists the state.
type PolicyService interface {
	// State returns the current wizard state.
	State() *domain.PolicyState

	// SetStep moves the wizard to the given step.
	SetStep(ctx context.Context, step domain.Step) error

	// SetServiceInfo merges a partial service-info update.
	SetServiceInfo(ctx context.Context, patch domain.ServiceInfoPatch) error

	// ToggleItem selects or deselects a processing item. Selecting
	// seeds the detail record from the catalog defaults; deselecting
	// keeps the record so re-selecting restores prior input.
	ToggleItem(ctx context.Context, itemID string) error

	// ApplyDefaults selects the catalog's default items for the
	// current service type, keeping existing selections.
	ApplyDefaults(ctx context.Context) error

	// SetDetail merges a partial detail-input update for an item.
	SetDetail(ctx context.Context, itemID string, patch domain.DetailInputPatch) error

	// AddOutsourcing appends an outsourcing entry and returns its id.
	AddOutsourcing(ctx context.Context, itemID string, entry domain.OutsourcingEntry) (string, error)

	// RemoveOutsourcing removes an outsourcing entry by id.
	RemoveOutsourcing(ctx context.Context, itemID, entryID string) error

	// AddThirdParty appends a third-party entry and returns its id.
	AddThirdParty(ctx context.Context, itemID string, entry domain.ThirdPartyEntry) (string, error)

	// RemoveThirdParty removes a third-party entry by id.
	RemoveThirdParty(ctx context.Context, itemID, entryID string) error

	// SetOverseasInfo sets the overseas-transfer record for an item.
	SetOverseasInfo(ctx context.Context, itemID string, info domain.OverseasTransfer) error

	// SetAdvancedMode toggles the advanced catalog filter.
	SetAdvancedMode(ctx context.Context, advanced bool) error

	// Generate assembles the privacy policy. The remote generator is
	// tried first when configured; any failure falls back to the local
	// assembler. Never returns an error for missing user input.
	Generate(ctx context.Context) (*domain.GeneratedDocument, error)

	// UpdateSection replaces one section's content by id and rebuilds
	// the full text. Unknown ids are a no-op.
	UpdateSection(ctx context.Context, sectionID, content string) error

	// Reset discards all wizard state.
	Reset(ctx context.Context) error
}
