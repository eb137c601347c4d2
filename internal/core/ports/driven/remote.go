package driven

import (
	"context"

	"github.com/lawkit-dev/lawkit-cli/internal/core/domain"
)

// PolicyGenerationRequest is the payload sent to the generation endpoint.
type PolicyGenerationRequest struct {
	ServiceInfo   domain.ServiceInfo            `json:"serviceInfo"`
	SelectedItems []string                      `json:"selectedItems"`
	DetailInputs  map[string]domain.DetailInput `json:"detailInputs"`
}

// RemoteGenerator produces a privacy policy on a remote service.
// Any error falls back to the local assembler; the terms document is
// always assembled locally.
type RemoteGenerator interface {
	// GeneratePolicy requests a server-assembled privacy policy.
	GeneratePolicy(ctx context.Context, req PolicyGenerationRequest) (*domain.GeneratedDocument, error)
}
