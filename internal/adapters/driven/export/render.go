// Package export provides the renderers and output adapters for
// generated documents: plain text, self-contained HTML, PDF printing
// through a headless browser, and the system clipboard.
package export

import (
	"html"
	"strings"

	"github.com/lawkit-dev/lawkit-cli/internal/core/domain"
	"github.com/lawkit-dev/lawkit-cli/internal/core/ports/driven"
)

// Ensure Renderer implements the interface.
var _ driven.Renderer = (*Renderer)(nil)

// Renderer renders generated documents for export. The document
// sections carry their own HTML fragments; the renderer wraps them in
// a page shell or strips them down to plain text.
type Renderer struct{}

// NewRenderer creates a renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Text renders the document as plain text: each section's title
// followed by its tag-stripped content, double-newline separated.
func (r *Renderer) Text(doc *domain.GeneratedDocument) string {
	parts := make([]string, 0, len(doc.Sections))
	for _, s := range doc.Sections {
		parts = append(parts, s.Title+"\n\n"+StripTags(s.Content))
	}
	return strings.Join(parts, "\n\n")
}

// pageStyle is the inline stylesheet of the exported HTML page.
const pageStyle = `    body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif; line-height: 1.6; max-width: 800px; margin: 0 auto; padding: 40px 20px; color: #333; }
    h1 { text-align: center; border-bottom: 2px solid #333; padding-bottom: 20px; margin-bottom: 30px; }
    h2 { font-size: 1.2em; margin-top: 30px; margin-bottom: 15px; color: #1a1a1a; }
    p { margin-bottom: 10px; }
    table { width: 100%; border-collapse: collapse; margin: 20px 0; }
    th, td { border: 1px solid #ddd; padding: 12px; text-align: left; }
    th { background-color: #f5f5f5; font-weight: 600; }
    .meta-info { text-align: center; color: #666; font-size: 0.9em; margin-top: 10px; }
    .officer-info, .overseas-item, .purpose-item { background: #f9f9f9; padding: 15px; border-radius: 8px; margin: 15px 0; }
    .document-footer { margin-top: 40px; padding-top: 20px; border-top: 1px solid #ddd; text-align: center; color: #666; font-size: 0.9em; }
    .disclaimer { color: #999; font-size: 0.85em; margin-top: 10px; }
    @media print { body { padding: 20px; } }`

// HTML renders the document as a self-contained page with an inline
// stylesheet. Section contents are trusted fragments produced by the
// assemblers and are embedded as-is.
func (r *Renderer) HTML(doc *domain.GeneratedDocument) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html lang=\"ko\">\n<head>\n")
	b.WriteString("  <meta charset=\"UTF-8\">\n")
	b.WriteString("  <meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">\n")
	b.WriteString("  <title>" + html.EscapeString(doc.Title) + "</title>\n")
	b.WriteString("  <style>\n" + pageStyle + "\n  </style>\n</head>\n<body>\n")
	for _, s := range doc.Sections {
		if s.Title != "" {
			b.WriteString("  <h2>" + html.EscapeString(s.Title) + "</h2>\n")
		}
		if s.Content != "" {
			b.WriteString("  " + s.Content + "\n")
		}
	}
	b.WriteString("</body>\n</html>\n")
	return b.String()
}

// StripTags reduces an HTML fragment to its text. Block-level closers
// and <br> become newlines so the plain text keeps its shape; entities
// are unescaped afterwards.
func StripTags(fragment string) string {
	var b strings.Builder
	inTag := false
	tag := strings.Builder{}
	for _, r := range fragment {
		switch {
		case r == '<':
			inTag = true
			tag.Reset()
		case r == '>' && inTag:
			inTag = false
			switch normaliseTag(tag.String()) {
			case "br", "/p", "/div", "/h1", "/h2", "/h3", "/h4", "/tr", "/table":
				b.WriteString("\n")
			case "/td", "/th":
				b.WriteString("\t")
			}
		case inTag:
			tag.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}

	text := html.UnescapeString(b.String())

	// Collapse runs of blank lines left by nested block tags.
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		trimmed := strings.TrimRight(line, " \t")
		if strings.TrimSpace(trimmed) == "" {
			if !blank && len(out) > 0 {
				out = append(out, "")
			}
			blank = true
			continue
		}
		blank = false
		out = append(out, trimmed)
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}

// normaliseTag lowercases a raw tag body and drops its attributes.
func normaliseTag(raw string) string {
	raw = strings.TrimSpace(strings.ToLower(raw))
	if i := strings.IndexAny(raw, " \t\n"); i >= 0 {
		raw = raw[:i]
	}
	return strings.TrimSuffix(raw, "/")
}
