package driving

import "context"

// ExportFormat selects the export output format.
type ExportFormat string

// Supported export formats.
const (
	FormatText      ExportFormat = "text"
	FormatHTML      ExportFormat = "html"
	FormatPDF       ExportFormat = "pdf"
	FormatClipboard ExportFormat = "clipboard"
)

// IsValid reports whether the format is a known value.
func (f ExportFormat) IsValid() bool {
	switch f {
	case FormatText, FormatHTML, FormatPDF, FormatClipboard:
		return true
	default:
		return false
	}
}

// ExportService writes generated documents to files or the clipboard.
type ExportService interface {
	// ExportPolicy exports the last generated privacy policy into dir.
	// Returns the written file path, empty for clipboard export.
	// Returns domain.ErrNoDocument when nothing has been generated.
	ExportPolicy(ctx context.Context, format ExportFormat, dir string) (string, error)

	// ExportTerms exports the last generated terms document into dir.
	// Returns the written file path, empty for clipboard export.
	// Returns domain.ErrNoDocument when nothing has been generated.
	ExportTerms(ctx context.Context, format ExportFormat, dir string) (string, error)
}
