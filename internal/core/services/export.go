package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lawkit-dev/lawkit-cli/internal/core/domain"
	"github.com/lawkit-dev/lawkit-cli/internal/core/ports/driven"
	"github.com/lawkit-dev/lawkit-cli/internal/core/ports/driving"
	"github.com/lawkit-dev/lawkit-cli/internal/logger"
)

// Ensure ExportService implements the interface.
var _ driving.ExportService = (*ExportService)(nil)

// ExportService writes the last generated documents to files or the
// clipboard. The clipboard and PDF printer may be nil; the matching
// formats then fail with a sentinel error instead of being attempted.
type ExportService struct {
	policy    driving.PolicyService
	terms     driving.TermsService
	renderer  driven.Renderer
	clipboard driven.Clipboard
	pdf       driven.PDFPrinter
}

// NewExportService creates an export service.
func NewExportService(policy driving.PolicyService, terms driving.TermsService, renderer driven.Renderer, clipboard driven.Clipboard, pdf driven.PDFPrinter) *ExportService {
	return &ExportService{
		policy:    policy,
		terms:     terms,
		renderer:  renderer,
		clipboard: clipboard,
		pdf:       pdf,
	}
}

// ExportPolicy exports the last generated privacy policy into dir.
func (s *ExportService) ExportPolicy(ctx context.Context, format driving.ExportFormat, dir string) (string, error) {
	doc := s.policy.State().Document
	if doc == nil {
		return "", domain.ErrNoDocument
	}
	name := exportBaseName(s.policy.State().ServiceInfo.ServiceName, "개인정보처리방침")
	return s.export(ctx, doc, format, dir, name)
}

// ExportTerms exports the last generated terms document into dir.
// The terms chapters are flattened into titled sections so all export
// formats share one rendering path.
func (s *ExportService) ExportTerms(ctx context.Context, format driving.ExportFormat, dir string) (string, error) {
	terms := s.terms.State().Document
	if terms == nil {
		return "", domain.ErrNoDocument
	}
	name := exportBaseName(s.terms.State().ServiceInfo.ServiceName, "서비스_이용약관")
	return s.export(ctx, flattenTerms(terms), format, dir, name)
}

func (s *ExportService) export(ctx context.Context, doc *domain.GeneratedDocument, format driving.ExportFormat, dir, baseName string) (string, error) {
	switch format {
	case driving.FormatText:
		path := filepath.Join(dir, baseName+".txt")
		if err := os.WriteFile(path, []byte(s.renderer.Text(doc)), 0o644); err != nil {
			return "", fmt.Errorf("write text export: %w", err)
		}
		logger.Info("exported text to %s", path)
		return path, nil

	case driving.FormatHTML:
		path := filepath.Join(dir, baseName+".html")
		if err := os.WriteFile(path, []byte(s.renderer.HTML(doc)), 0o644); err != nil {
			return "", fmt.Errorf("write html export: %w", err)
		}
		logger.Info("exported html to %s", path)
		return path, nil

	case driving.FormatPDF:
		if s.pdf == nil {
			return "", domain.ErrBrowserUnavailable
		}
		path := filepath.Join(dir, baseName+".pdf")
		if err := s.pdf.Print(ctx, s.renderer.HTML(doc), path); err != nil {
			return "", fmt.Errorf("print pdf export: %w", err)
		}
		logger.Info("exported pdf to %s", path)
		return path, nil

	case driving.FormatClipboard:
		if s.clipboard == nil {
			return "", domain.ErrClipboardUnavailable
		}
		if err := s.clipboard.Copy(s.renderer.Text(doc)); err != nil {
			return "", fmt.Errorf("copy to clipboard: %w", err)
		}
		logger.Info("copied document to clipboard")
		return "", nil

	default:
		return "", fmt.Errorf("%w: format %q", domain.ErrInvalidInput, format)
	}
}

// flattenTerms converts a terms document into the section shape the
// renderers consume: one section per article, chapter titles as their
// own untitled heading sections.
func flattenTerms(t *domain.GeneratedTerms) *domain.GeneratedDocument {
	var sections []domain.DocumentSection
	order := 1
	for _, ch := range t.Chapters {
		sections = append(sections, domain.DocumentSection{
			ID:      ch.ID,
			Title:   ch.Title,
			Content: "",
			Order:   order,
		})
		order++
		for _, art := range ch.Articles {
			sections = append(sections, domain.DocumentSection{
				ID:      ch.ID + "/" + art.ID,
				Title:   art.Title,
				Content: "<p>" + strings.ReplaceAll(art.Content, "\n", "<br>") + "</p>",
				Order:   order,
			})
			order++
		}
	}
	return &domain.GeneratedDocument{
		Title:       t.Title,
		Content:     joinSections(sections),
		Sections:    sections,
		GeneratedAt: t.GeneratedAt,
		Version:     t.Version,
	}
}

// exportBaseName builds "<serviceName>_<suffix>" with characters unsafe
// for filenames replaced.
func exportBaseName(serviceName, suffix string) string {
	name := strings.TrimSpace(serviceName)
	if name == "" {
		name = "서비스"
	}
	replacer := strings.NewReplacer(
		"/", "-", "\\", "-", ":", "-", "*", "-",
		"?", "-", "\"", "-", "<", "-", ">", "-", "|", "-", " ", "_",
	)
	return replacer.Replace(name) + "_" + suffix
}
