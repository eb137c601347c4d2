package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lawkit-dev/lawkit-cli/internal/core/domain"
	"github.com/lawkit-dev/lawkit-cli/internal/core/ports/driven"
)

func sampleDoc() *domain.GeneratedDocument {
	return &domain.GeneratedDocument{
		Title:   "멋진앱 개인정보처리방침",
		Content: "본문",
		Sections: []domain.DocumentSection{
			{ID: "purpose", Title: "제1조 (개인정보의 처리 목적)", Content: "본문", Order: 1},
		},
		Version: 1,
	}
}

func TestNewClient_RequiresBaseURL(t *testing.T) {
	_, err := NewClient(Config{})
	assert.Error(t, err)

	c, err := NewClient(Config{BaseURL: "http://localhost:8080"})
	require.NoError(t, err)
	assert.NotNil(t, c)
}

func TestGeneratePolicy_EnvelopeResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/generate/privacy-policy", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req driven.PolicyGenerationRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "멋진앱", req.ServiceInfo.ServiceName)

		json.NewEncoder(w).Encode(map[string]any{"data": sampleDoc()})
	}))
	defer srv.Close()

	client, err := NewClient(Config{BaseURL: srv.URL})
	require.NoError(t, err)

	doc, err := client.GeneratePolicy(context.Background(), driven.PolicyGenerationRequest{
		ServiceInfo: domain.ServiceInfo{ServiceName: "멋진앱"},
	})
	require.NoError(t, err)
	assert.Equal(t, "멋진앱 개인정보처리방침", doc.Title)
	require.Len(t, doc.Sections, 1)
	assert.Equal(t, "purpose", doc.Sections[0].ID)
}

func TestGeneratePolicy_BareResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(sampleDoc())
	}))
	defer srv.Close()

	client, err := NewClient(Config{BaseURL: srv.URL})
	require.NoError(t, err)

	doc, err := client.GeneratePolicy(context.Background(), driven.PolicyGenerationRequest{})
	require.NoError(t, err)
	assert.Equal(t, "멋진앱 개인정보처리방침", doc.Title)
}

func TestGeneratePolicy_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "internal error", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client, err := NewClient(Config{BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = client.GeneratePolicy(context.Background(), driven.PolicyGenerationRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestGeneratePolicy_ErrorField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"error": "quota exceeded"})
	}))
	defer srv.Close()

	client, err := NewClient(Config{BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = client.GeneratePolicy(context.Background(), driven.PolicyGenerationRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestGeneratePolicy_EmptyDocument(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{"title": "빈 문서"}})
	}))
	defer srv.Close()

	client, err := NewClient(Config{BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = client.GeneratePolicy(context.Background(), driven.PolicyGenerationRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty document")
}

func TestGeneratePolicy_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		json.NewEncoder(w).Encode(map[string]any{"data": sampleDoc()})
	}))
	defer srv.Close()

	client, err := NewClient(Config{BaseURL: srv.URL})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err = client.GeneratePolicy(ctx, driven.PolicyGenerationRequest{})
	assert.Error(t, err)
}
