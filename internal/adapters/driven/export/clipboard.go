package export

import (
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/lawkit-dev/lawkit-cli/internal/core/domain"
	"github.com/lawkit-dev/lawkit-cli/internal/core/ports/driven"
)

// Ensure Clipboard implements the interface.
var _ driven.Clipboard = (*Clipboard)(nil)

// Clipboard copies text to the system clipboard. On Linux it needs
// xclip or xsel; headless sessions report ErrClipboardUnavailable.
type Clipboard struct{}

// NewClipboard creates a clipboard adapter.
func NewClipboard() *Clipboard {
	return &Clipboard{}
}

// Copy places the text on the clipboard.
func (c *Clipboard) Copy(text string) error {
	if clipboard.Unsupported {
		return domain.ErrClipboardUnavailable
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	return nil
}
