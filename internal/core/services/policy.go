package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lawkit-dev/lawkit-cli/internal/catalog"
	"github.com/lawkit-dev/lawkit-cli/internal/core/domain"
	"github.com/lawkit-dev/lawkit-cli/internal/core/ports/driven"
	"github.com/lawkit-dev/lawkit-cli/internal/core/ports/driving"
	"github.com/lawkit-dev/lawkit-cli/internal/logger"
)

// Ensure PolicyService implements the interface.
var _ driving.PolicyService = (*PolicyService)(nil)

// PolicyService drives the privacy policy wizard. State lives in
// memory and is written through the state store after every mutation.
type PolicyService struct {
	state  *domain.PolicyState
	store  driven.StateStore
	remote driven.RemoteGenerator

	// now is injectable for deterministic assembly in tests.
	now func() time.Time
}

// NewPolicyService creates a policy service, restoring persisted state
// when present. The remote generator may be nil for local-only use.
func NewPolicyService(ctx context.Context, store driven.StateStore, remote driven.RemoteGenerator) (*PolicyService, error) {
	state, err := store.LoadPolicyState(ctx)
	if err != nil {
		if err != domain.ErrNotFound {
			return nil, fmt.Errorf("load policy state: %w", err)
		}
		state = domain.NewPolicyState()
	}

	return &PolicyService{
		state:  state,
		store:  store,
		remote: remote,
		now:    time.Now,
	}, nil
}

// State returns the current wizard state.
func (s *PolicyService) State() *domain.PolicyState {
	return s.state
}

// save recomputes the completion rate and persists the state.
func (s *PolicyService) save(ctx context.Context) error {
	s.state.CompletionRate = PolicyCompletion(s.state.ServiceInfo, s.state.SelectedItems, s.state.DetailInputs)
	if err := s.store.SavePolicyState(ctx, s.state); err != nil {
		return fmt.Errorf("save policy state: %w", err)
	}
	return nil
}

// SetStep moves the wizard to the given step.
func (s *PolicyService) SetStep(ctx context.Context, step domain.Step) error {
	s.state.CurrentStep = step
	return s.save(ctx)
}

// SetServiceInfo merges a partial service-info update.
func (s *PolicyService) SetServiceInfo(ctx context.Context, patch domain.ServiceInfoPatch) error {
	patch.Apply(&s.state.ServiceInfo)
	return s.save(ctx)
}

// ToggleItem selects or deselects a processing item. Selecting seeds
// the detail record from the catalog defaults; deselecting keeps the
// record so re-selecting restores prior input.
func (s *PolicyService) ToggleItem(ctx context.Context, itemID string) error {
	if s.state.IsSelected(itemID) {
		kept := s.state.SelectedItems[:0]
		for _, id := range s.state.SelectedItems {
			if id != itemID {
				kept = append(kept, id)
			}
		}
		s.state.SelectedItems = kept
		return s.save(ctx)
	}

	s.state.SelectedItems = append(s.state.SelectedItems, itemID)
	if _, ok := s.state.DetailInputs[itemID]; !ok {
		in := domain.NewDetailInput()
		if it, found := catalog.Item(itemID); found {
			in.Purpose = it.DefaultPurpose
			in.RetentionPeriod = it.DefaultRetention
		}
		s.state.DetailInputs[itemID] = in
	}
	return s.save(ctx)
}

// ApplyDefaults selects the catalog's default items for the current
// service type, keeping existing selections.
func (s *PolicyService) ApplyDefaults(ctx context.Context) error {
	for _, id := range catalog.DefaultItemsForServiceType(s.state.ServiceInfo.ServiceType) {
		if s.state.IsSelected(id) {
			continue
		}
		if err := s.ToggleItem(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

// SetDetail merges a partial detail-input update for an item.
func (s *PolicyService) SetDetail(ctx context.Context, itemID string, patch domain.DetailInputPatch) error {
	in, ok := s.state.DetailInputs[itemID]
	if !ok {
		in = domain.NewDetailInput()
	}
	patch.Apply(&in)
	s.state.DetailInputs[itemID] = in
	return s.save(ctx)
}

// AddOutsourcing appends an outsourcing entry and returns its id.
func (s *PolicyService) AddOutsourcing(ctx context.Context, itemID string, entry domain.OutsourcingEntry) (string, error) {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	in, ok := s.state.DetailInputs[itemID]
	if !ok {
		in = domain.NewDetailInput()
	}
	in.OutsourcingList = append(in.OutsourcingList, entry)
	in.HasOutsourcing = true
	s.state.DetailInputs[itemID] = in
	return entry.ID, s.save(ctx)
}

// RemoveOutsourcing removes an outsourcing entry by id.
func (s *PolicyService) RemoveOutsourcing(ctx context.Context, itemID, entryID string) error {
	in, ok := s.state.DetailInputs[itemID]
	if !ok {
		return nil
	}
	kept := in.OutsourcingList[:0]
	for _, e := range in.OutsourcingList {
		if e.ID != entryID {
			kept = append(kept, e)
		}
	}
	in.OutsourcingList = kept
	s.state.DetailInputs[itemID] = in
	return s.save(ctx)
}

// AddThirdParty appends a third-party entry and returns its id.
func (s *PolicyService) AddThirdParty(ctx context.Context, itemID string, entry domain.ThirdPartyEntry) (string, error) {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	in, ok := s.state.DetailInputs[itemID]
	if !ok {
		in = domain.NewDetailInput()
	}
	in.ThirdPartyList = append(in.ThirdPartyList, entry)
	in.HasThirdParty = true
	s.state.DetailInputs[itemID] = in
	return entry.ID, s.save(ctx)
}

// RemoveThirdParty removes a third-party entry by id.
func (s *PolicyService) RemoveThirdParty(ctx context.Context, itemID, entryID string) error {
	in, ok := s.state.DetailInputs[itemID]
	if !ok {
		return nil
	}
	kept := in.ThirdPartyList[:0]
	for _, e := range in.ThirdPartyList {
		if e.ID != entryID {
			kept = append(kept, e)
		}
	}
	in.ThirdPartyList = kept
	s.state.DetailInputs[itemID] = in
	return s.save(ctx)
}

// SetOverseasInfo sets the overseas-transfer record for an item.
func (s *PolicyService) SetOverseasInfo(ctx context.Context, itemID string, info domain.OverseasTransfer) error {
	in, ok := s.state.DetailInputs[itemID]
	if !ok {
		in = domain.NewDetailInput()
	}
	in.OverseasInfo = &info
	in.HasOverseasTransfer = true
	s.state.DetailInputs[itemID] = in
	return s.save(ctx)
}

// SetAdvancedMode toggles the advanced catalog filter.
func (s *PolicyService) SetAdvancedMode(ctx context.Context, advanced bool) error {
	s.state.IsAdvancedMode = advanced
	return s.save(ctx)
}

// Generate assembles the privacy policy, trying the remote generator
// first when configured. Any remote failure falls back to the local
// assembler; missing user input never produces an error.
func (s *PolicyService) Generate(ctx context.Context) (*domain.GeneratedDocument, error) {
	if s.remote != nil {
		doc, err := s.remote.GeneratePolicy(ctx, driven.PolicyGenerationRequest{
			ServiceInfo:   s.state.ServiceInfo,
			SelectedItems: s.state.SelectedItems,
			DetailInputs:  s.state.DetailInputs,
		})
		if err == nil {
			s.state.Document = doc
			return doc, s.save(ctx)
		}
		logger.Warn("remote generation failed, assembling locally: %v", err)
	}

	doc := AssemblePolicy(s.state.ServiceInfo, s.state.SelectedItems, s.state.DetailInputs, s.now())
	s.state.Document = doc
	return doc, s.save(ctx)
}

// UpdateSection replaces one section's content by id and rebuilds the
// full text. Unknown ids are a no-op.
func (s *PolicyService) UpdateSection(ctx context.Context, sectionID, content string) error {
	doc := s.state.Document
	if doc == nil {
		return domain.ErrNoDocument
	}
	sec := doc.Section(sectionID)
	if sec == nil {
		return nil
	}
	sec.Content = content
	doc.Content = joinSections(doc.Sections)
	return s.save(ctx)
}

// Reset discards all wizard state.
func (s *PolicyService) Reset(ctx context.Context) error {
	s.state = domain.NewPolicyState()
	if err := s.store.Reset(ctx, domain.DocTypePolicy); err != nil {
		return fmt.Errorf("reset policy state: %w", err)
	}
	return nil
}
