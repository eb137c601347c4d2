// Package remote provides the HTTP client adapter for the document
// generation endpoint.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/lawkit-dev/lawkit-cli/internal/core/domain"
	"github.com/lawkit-dev/lawkit-cli/internal/core/ports/driven"
)

// Ensure Client implements the interface.
var _ driven.RemoteGenerator = (*Client)(nil)

// Default configuration values.
const (
	DefaultTimeout = 30 * time.Second
)

// Config holds configuration for the remote generation client.
type Config struct {
	// BaseURL is the generation service base URL (required).
	BaseURL string

	// Timeout is the request timeout (default: 30s).
	Timeout time.Duration
}

// Client requests server-side document assembly. Any error it returns
// makes the caller fall back to the local assembler.
type Client struct {
	client  *http.Client
	baseURL string
}

// generateResponse is the generation endpoint response format.
// The document arrives either wrapped in a data envelope or bare.
type generateResponse struct {
	Data  *domain.GeneratedDocument `json:"data"`
	Error string                    `json:"error,omitempty"`

	domain.GeneratedDocument
}

// NewClient creates a new remote generation client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("remote: base URL is required")
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Client{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: cfg.BaseURL,
	}, nil
}

// GeneratePolicy requests a server-assembled privacy policy.
func (c *Client) GeneratePolicy(ctx context.Context, genReq driven.PolicyGenerationRequest) (*domain.GeneratedDocument, error) {
	jsonBody, err := json.Marshal(genReq)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+"/generate/privacy-policy",
		bytes.NewReader(jsonBody),
	)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("remote error (status %d): %s", resp.StatusCode, string(body))
	}

	var genResp generateResponse
	if err := json.Unmarshal(body, &genResp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if genResp.Error != "" {
		return nil, fmt.Errorf("remote error: %s", genResp.Error)
	}

	doc := genResp.Data
	if doc == nil {
		doc = &genResp.GeneratedDocument
	}
	if len(doc.Sections) == 0 {
		return nil, fmt.Errorf("remote: empty document in response")
	}
	return doc, nil
}
