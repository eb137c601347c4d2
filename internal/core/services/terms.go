package services

import (
	"context"
	"fmt"
	"time"

	"github.com/lawkit-dev/lawkit-cli/internal/catalog"
	"github.com/lawkit-dev/lawkit-cli/internal/core/domain"
	"github.com/lawkit-dev/lawkit-cli/internal/core/ports/driven"
	"github.com/lawkit-dev/lawkit-cli/internal/core/ports/driving"
)

// Ensure TermsService implements the interface.
var _ driving.TermsService = (*TermsService)(nil)

// TermsService drives the terms-of-service wizard. State lives in
// memory and is written through the state store after every mutation.
// Terms documents are always assembled locally.
type TermsService struct {
	state *domain.TermsState
	store driven.StateStore

	// now is injectable for deterministic assembly in tests.
	now func() time.Time
}

// NewTermsService creates a terms service, restoring persisted state
// when present.
func NewTermsService(ctx context.Context, store driven.StateStore) (*TermsService, error) {
	state, err := store.LoadTermsState(ctx)
	if err != nil {
		if err != domain.ErrNotFound {
			return nil, fmt.Errorf("load terms state: %w", err)
		}
		state = domain.NewTermsState()
	}

	return &TermsService{
		state: state,
		store: store,
		now:   time.Now,
	}, nil
}

// State returns the current wizard state.
func (s *TermsService) State() *domain.TermsState {
	return s.state
}

func (s *TermsService) save(ctx context.Context) error {
	s.state.CompletionRate = TermsCompletion(s.state.ServiceInfo, s.state.SelectedFeatures, s.state.FeatureInputs)
	if err := s.store.SaveTermsState(ctx, s.state); err != nil {
		return fmt.Errorf("save terms state: %w", err)
	}
	return nil
}

// SetStep moves the wizard to the given step.
func (s *TermsService) SetStep(ctx context.Context, step domain.Step) error {
	s.state.CurrentStep = step
	return s.save(ctx)
}

// SetServiceInfo merges a partial service-info update.
func (s *TermsService) SetServiceInfo(ctx context.Context, patch domain.TermsServiceInfoPatch) error {
	patch.Apply(&s.state.ServiceInfo)
	return s.save(ctx)
}

// ToggleFeature selects or deselects a feature. The basic feature
// cannot be toggled off. Selecting enables the feature input; the
// input record is kept on deselection.
func (s *TermsService) ToggleFeature(ctx context.Context, featureID string) error {
	if featureID == catalog.FeatureBasic {
		return nil
	}

	if s.state.IsSelected(featureID) {
		kept := s.state.SelectedFeatures[:0]
		for _, id := range s.state.SelectedFeatures {
			if id != featureID {
				kept = append(kept, id)
			}
		}
		s.state.SelectedFeatures = kept
		return s.save(ctx)
	}

	s.state.SelectedFeatures = append(s.state.SelectedFeatures, featureID)
	in := s.state.FeatureInputs[featureID]
	in.Enabled = true
	s.state.FeatureInputs[featureID] = in
	return s.save(ctx)
}

// ApplyDefaults selects the catalog's default features for the current
// service type, keeping existing selections.
func (s *TermsService) ApplyDefaults(ctx context.Context) error {
	for _, id := range catalog.DefaultFeaturesForServiceType(s.state.ServiceInfo.ServiceType) {
		if s.state.IsSelected(id) {
			continue
		}
		if err := s.ToggleFeature(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

// SetFeatureInput merges a partial feature-input update. A nil enabled
// or details leaves that part unchanged.
func (s *TermsService) SetFeatureInput(ctx context.Context, featureID string, enabled *bool, details *domain.TermsFeatureDetails) error {
	in := s.state.FeatureInputs[featureID]
	if enabled != nil {
		in.Enabled = *enabled
	}
	if details != nil {
		in.Details = *details
	}
	s.state.FeatureInputs[featureID] = in
	return s.save(ctx)
}

// SetAdvancedMode toggles the advanced catalog filter.
func (s *TermsService) SetAdvancedMode(ctx context.Context, advanced bool) error {
	s.state.IsAdvancedMode = advanced
	return s.save(ctx)
}

// Generate assembles the terms document locally.
func (s *TermsService) Generate(ctx context.Context) (*domain.GeneratedTerms, error) {
	doc := AssembleTerms(s.state.ServiceInfo, s.state.SelectedFeatures, s.now())
	s.state.Document = doc
	return doc, s.save(ctx)
}

// UpdateArticle replaces one article's content and rebuilds the full
// text. Unknown ids are a no-op.
func (s *TermsService) UpdateArticle(ctx context.Context, chapterID, articleID, content string) error {
	doc := s.state.Document
	if doc == nil {
		return domain.ErrNoDocument
	}
	ch := doc.Chapter(chapterID)
	if ch == nil {
		return nil
	}
	for i := range ch.Articles {
		if ch.Articles[i].ID == articleID {
			ch.Articles[i].Content = content
			doc.Content = joinChapters(doc.Chapters)
			return s.save(ctx)
		}
	}
	return nil
}

// Reset discards all wizard state.
func (s *TermsService) Reset(ctx context.Context) error {
	s.state = domain.NewTermsState()
	if err := s.store.Reset(ctx, domain.DocTypeTerms); err != nil {
		return fmt.Errorf("reset terms state: %w", err)
	}
	return nil
}
