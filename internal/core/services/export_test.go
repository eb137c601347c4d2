package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lawkit-dev/lawkit-cli/internal/adapters/driven/export"
	"github.com/lawkit-dev/lawkit-cli/internal/core/domain"
	"github.com/lawkit-dev/lawkit-cli/internal/core/ports/driving"
)

func newExportService(t *testing.T) (*ExportService, *PolicyService, *TermsService) {
	t.Helper()
	policy, _ := newPolicyService(t)
	terms, _ := newTermsService(t)
	svc := NewExportService(policy, terms, export.NewRenderer(), nil, nil)
	return svc, policy, terms
}

func generatedPolicy(t *testing.T, policy *PolicyService) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, policy.SetServiceInfo(ctx, domain.ServiceInfoPatch{
		ServiceName: strPtr("멋진앱"),
	}))
	require.NoError(t, policy.ToggleItem(ctx, "account_signup"))
	_, err := policy.Generate(ctx)
	require.NoError(t, err)
}

func TestExportPolicy_NoDocument(t *testing.T) {
	svc, _, _ := newExportService(t)

	_, err := svc.ExportPolicy(context.Background(), driving.FormatText, t.TempDir())
	assert.ErrorIs(t, err, domain.ErrNoDocument)
}

func TestExportPolicy_Text(t *testing.T) {
	svc, policy, _ := newExportService(t)
	generatedPolicy(t, policy)

	dir := t.TempDir()
	path, err := svc.ExportPolicy(context.Background(), driving.FormatText, dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "멋진앱_개인정보처리방침.txt"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "개인정보처리방침")
	assert.NotContains(t, string(data), "<p>")
}

func TestExportPolicy_HTML(t *testing.T) {
	svc, policy, _ := newExportService(t)
	generatedPolicy(t, policy)

	dir := t.TempDir()
	path, err := svc.ExportPolicy(context.Background(), driving.FormatHTML, dir)
	require.NoError(t, err)
	assert.Equal(t, ".html", filepath.Ext(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<!DOCTYPE html>")
	assert.Contains(t, string(data), "멋진앱 개인정보처리방침")
}

func TestExportPolicy_UnavailableBackends(t *testing.T) {
	svc, policy, _ := newExportService(t)
	generatedPolicy(t, policy)

	_, err := svc.ExportPolicy(context.Background(), driving.FormatPDF, t.TempDir())
	assert.ErrorIs(t, err, domain.ErrBrowserUnavailable)

	_, err = svc.ExportPolicy(context.Background(), driving.FormatClipboard, t.TempDir())
	assert.ErrorIs(t, err, domain.ErrClipboardUnavailable)
}

func TestExportPolicy_InvalidFormat(t *testing.T) {
	svc, policy, _ := newExportService(t)
	generatedPolicy(t, policy)

	_, err := svc.ExportPolicy(context.Background(), driving.ExportFormat("docx"), t.TempDir())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestExportTerms_Text(t *testing.T) {
	svc, _, terms := newExportService(t)
	ctx := context.Background()

	require.NoError(t, terms.SetServiceInfo(ctx, domain.TermsServiceInfoPatch{
		ServiceName: strPtr("멋진 앱"),
	}))
	_, err := terms.Generate(ctx)
	require.NoError(t, err)

	dir := t.TempDir()
	path, expErr := svc.ExportTerms(ctx, driving.FormatText, dir)
	require.NoError(t, expErr)
	// Spaces in the service name become underscores.
	assert.Equal(t, filepath.Join(dir, "멋진_앱_서비스_이용약관.txt"), path)

	data, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Contains(t, string(data), "제1조 (목적)")
}

func TestFlattenTerms(t *testing.T) {
	terms := &domain.GeneratedTerms{
		Title:       "멋진앱 서비스 이용약관",
		GeneratedAt: time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC),
		Version:     1,
		Chapters: []domain.TermsChapter{
			{
				ID: "chapter1", ChapterNumber: 1, Title: "제1장 총칙",
				Articles: []domain.TermsArticle{
					{ID: "ch1-art1", ArticleNumber: 1, Title: "제1조 (목적)", Content: "첫째 줄\n둘째 줄"},
				},
			},
		},
	}

	doc := flattenTerms(terms)

	require.Len(t, doc.Sections, 2)
	assert.Equal(t, "chapter1", doc.Sections[0].ID)
	assert.Equal(t, "제1장 총칙", doc.Sections[0].Title)
	assert.Empty(t, doc.Sections[0].Content)

	art := doc.Sections[1]
	assert.Equal(t, "chapter1/ch1-art1", art.ID)
	assert.Equal(t, 2, art.Order)
	assert.Equal(t, "<p>첫째 줄<br>둘째 줄</p>", art.Content)

	assert.Equal(t, terms.Title, doc.Title)
	assert.Equal(t, terms.Version, doc.Version)
}

func TestExportBaseName(t *testing.T) {
	assert.Equal(t, "멋진앱_개인정보처리방침", exportBaseName("멋진앱", "개인정보처리방침"))
	assert.Equal(t, "서비스_서비스_이용약관", exportBaseName("  ", "서비스_이용약관"))
	assert.Equal(t, "a-b_x", exportBaseName("a/b", "x"))
}
