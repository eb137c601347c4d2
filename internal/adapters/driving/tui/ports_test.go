package tui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lawkit-dev/lawkit-cli/internal/adapters/driven/export"
	"github.com/lawkit-dev/lawkit-cli/internal/adapters/driven/storage/memory"
	"github.com/lawkit-dev/lawkit-cli/internal/core/services"
)

// newTestPorts builds ports over real services and an in-memory store.
func newTestPorts(t *testing.T) *Ports {
	t.Helper()

	store := memory.NewStateStore()
	policy, err := services.NewPolicyService(context.Background(), store, nil)
	require.NoError(t, err)
	terms, err := services.NewTermsService(context.Background(), store)
	require.NoError(t, err)
	exp := services.NewExportService(policy, terms, export.NewRenderer(), nil, nil)

	return NewPorts(policy, terms, exp)
}

func TestNewPorts(t *testing.T) {
	ports := newTestPorts(t)

	assert.NotNil(t, ports.Policy)
	assert.NotNil(t, ports.Terms)
	assert.NotNil(t, ports.Export)
}

func TestPorts_Validate(t *testing.T) {
	ports := newTestPorts(t)
	assert.NoError(t, ports.Validate())
}

func TestPorts_Validate_MissingPolicy(t *testing.T) {
	ports := newTestPorts(t)
	ports.Policy = nil

	err := ports.Validate()
	assert.ErrorIs(t, err, ErrMissingPolicyService)
}

func TestPorts_Validate_MissingTerms(t *testing.T) {
	ports := newTestPorts(t)
	ports.Terms = nil

	err := ports.Validate()
	assert.ErrorIs(t, err, ErrMissingTermsService)
}

func TestPorts_Validate_MissingExport(t *testing.T) {
	ports := newTestPorts(t)
	ports.Export = nil

	err := ports.Validate()
	assert.ErrorIs(t, err, ErrMissingExportService)
}
