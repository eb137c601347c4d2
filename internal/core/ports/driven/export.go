package driven

import (
	"context"

	"github.com/lawkit-dev/lawkit-cli/internal/core/domain"
)

// Renderer turns a generated document into an export format.
type Renderer interface {
	// Text renders the document as plain text, tags stripped.
	Text(doc *domain.GeneratedDocument) string

	// HTML renders the document as a self-contained HTML page.
	HTML(doc *domain.GeneratedDocument) string
}

// Clipboard copies text to the system clipboard.
type Clipboard interface {
	// Copy places the text on the clipboard.
	Copy(text string) error
}

// PDFPrinter converts an HTML page into a paginated PDF file.
type PDFPrinter interface {
	// Print renders the HTML and writes the PDF to path.
	Print(ctx context.Context, html string, path string) error
}
