package export

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/lawkit-dev/lawkit-cli/internal/core/domain"
	"github.com/lawkit-dev/lawkit-cli/internal/core/ports/driven"
)

// Ensure PDFPrinter implements the interface.
var _ driven.PDFPrinter = (*PDFPrinter)(nil)

// A4 paper size in inches.
const (
	a4WidthInch  = 8.27
	a4HeightInch = 11.69
)

// PDFPrinter prints HTML to a paginated A4 PDF through a locally
// installed Chromium, launched headless per print. The rendered page is
// what ends up in the file, so the PDF matches the HTML export exactly.
type PDFPrinter struct{}

// NewPDFPrinter creates a PDF printer.
func NewPDFPrinter() *PDFPrinter {
	return &PDFPrinter{}
}

// Print renders the HTML and writes the PDF to path.
// Returns domain.ErrBrowserUnavailable when no browser binary is found.
func (p *PDFPrinter) Print(ctx context.Context, html string, path string) error {
	bin, found := launcher.LookPath()
	if !found {
		return domain.ErrBrowserUnavailable
	}

	controlURL, err := launcher.New().Bin(bin).Headless(true).Launch()
	if err != nil {
		return fmt.Errorf("launch browser: %w", err)
	}

	browser := rod.New().ControlURL(controlURL).Context(ctx)
	if err := browser.Connect(); err != nil {
		return fmt.Errorf("connect to browser: %w", err)
	}
	defer browser.Close()

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return fmt.Errorf("open page: %w", err)
	}

	if err := page.SetDocumentContent(html); err != nil {
		return fmt.Errorf("set page content: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		return fmt.Errorf("wait for page load: %w", err)
	}

	printBackground := true
	width := a4WidthInch
	height := a4HeightInch
	stream, err := page.PDF(&proto.PagePrintToPDF{
		PrintBackground: printBackground,
		PaperWidth:      &width,
		PaperHeight:     &height,
	})
	if err != nil {
		return fmt.Errorf("print to pdf: %w", err)
	}

	pdf, err := io.ReadAll(stream)
	if err != nil {
		return fmt.Errorf("read pdf stream: %w", err)
	}

	if err := os.WriteFile(path, pdf, 0o644); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}
