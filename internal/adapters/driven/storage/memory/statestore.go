// Package memory provides in-memory implementations of driven ports
// for testing. Not suitable for production use.
package memory

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/lawkit-dev/lawkit-cli/internal/core/domain"
	"github.com/lawkit-dev/lawkit-cli/internal/core/ports/driven"
)

// Ensure StateStore implements the interface.
var _ driven.StateStore = (*StateStore)(nil)

// StateStore is an in-memory wizard state store. State is deep-copied
// through JSON on save and load so callers cannot alias stored state.
type StateStore struct {
	mu    sync.RWMutex
	blobs map[domain.DocType][]byte
}

// NewStateStore creates an empty in-memory state store.
func NewStateStore() *StateStore {
	return &StateStore{
		blobs: make(map[domain.DocType][]byte),
	}
}

func (s *StateStore) save(docType domain.DocType, state any) error {
	blob, err := json.Marshal(state)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[docType] = blob
	return nil
}

func (s *StateStore) load(docType domain.DocType, state any) error {
	s.mu.RLock()
	blob, ok := s.blobs[docType]
	s.mu.RUnlock()
	if !ok {
		return domain.ErrNotFound
	}
	return json.Unmarshal(blob, state)
}

// SavePolicyState stores or replaces the privacy wizard state.
func (s *StateStore) SavePolicyState(_ context.Context, state *domain.PolicyState) error {
	return s.save(domain.DocTypePolicy, state)
}

// LoadPolicyState retrieves the privacy wizard state.
func (s *StateStore) LoadPolicyState(_ context.Context) (*domain.PolicyState, error) {
	state := domain.NewPolicyState()
	if err := s.load(domain.DocTypePolicy, state); err != nil {
		return nil, err
	}
	return state, nil
}

// SaveTermsState stores or replaces the terms wizard state.
func (s *StateStore) SaveTermsState(_ context.Context, state *domain.TermsState) error {
	return s.save(domain.DocTypeTerms, state)
}

// LoadTermsState retrieves the terms wizard state.
func (s *StateStore) LoadTermsState(_ context.Context) (*domain.TermsState, error) {
	state := domain.NewTermsState()
	if err := s.load(domain.DocTypeTerms, state); err != nil {
		return nil, err
	}
	return state, nil
}

// Reset removes the stored state for a document type.
func (s *StateStore) Reset(_ context.Context, docType domain.DocType) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.blobs, docType)
	return nil
}

// Close is a no-op for the in-memory store.
func (s *StateStore) Close() error {
	return nil
}
