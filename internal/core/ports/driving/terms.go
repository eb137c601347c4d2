package driving

import (
	"context"

	"github.com/lawkit-dev/lawkit-cli/internal/core/domain"
)

// TermsService drives the terms-of-service wizard. Every mutation
// recomputes the completion rate and persists the state.
type TermsService interface {
	// State returns the current wizard state.
	State() *domain.TermsState

	// SetStep moves the wizard to the given step.
	SetStep(ctx context.Context, step domain.Step) error

	// SetServiceInfo merges a partial service-info update.
	SetServiceInfo(ctx context.Context, patch domain.TermsServiceInfoPatch) error

	// ToggleFeature selects or deselects a feature. The basic feature
	// cannot be toggled off. Selecting enables the feature input.
	ToggleFeature(ctx context.Context, featureID string) error

	// ApplyDefaults selects the catalog's default features for the
	// current service type, keeping existing selections.
	ApplyDefaults(ctx context.Context) error

	// SetFeatureInput merges a partial feature-input update.
	SetFeatureInput(ctx context.Context, featureID string, enabled *bool, details *domain.TermsFeatureDetails) error

	// SetAdvancedMode toggles the advanced catalog filter.
	SetAdvancedMode(ctx context.Context, advanced bool) error

	// Generate assembles the terms document locally.
	Generate(ctx context.Context) (*domain.GeneratedTerms, error)

	// UpdateArticle replaces one article's content and rebuilds the
	// full text. Unknown ids are a no-op.
	UpdateArticle(ctx context.Context, chapterID, articleID, content string) error

	// Reset discards all wizard state.
	Reset(ctx context.Context) error
}
