// Package checklist provides a toggleable list component for the TUI.
package checklist

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lawkit-dev/lawkit-cli/internal/adapters/driving/tui/styles"
)

// Entry is a single toggleable row.
type Entry struct {
	// ID identifies the entry to the caller.
	ID string

	// Label is the display name.
	Label string

	// Description is shown under the label.
	Description string

	// Checked marks the entry as selected.
	Checked bool

	// Locked entries cannot be toggled off.
	Locked bool
}

// Checklist displays entries in a navigable list with checkboxes.
type Checklist struct {
	entries []Entry
	cursor  int
	styles  *styles.Styles
	width   int
	height  int
}

// New creates a new checklist component.
func New(s *styles.Styles) *Checklist {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &Checklist{
		styles: s,
		width:  80,
		height: 10,
	}
}

// Init initialises the checklist.
func (c *Checklist) Init() tea.Cmd {
	return nil
}

// Update handles navigation messages.
func (c *Checklist) Update(msg tea.Msg) (*Checklist, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			c.MoveUp()
		case "down", "j":
			c.MoveDown()
		}
	}
	return c, nil
}

// View renders the checklist.
func (c *Checklist) View() string {
	if len(c.entries) == 0 {
		return c.styles.Muted.Render("Nothing to select")
	}

	lines := make([]string, 0, len(c.entries)*2)

	// Each entry takes two lines (label + description).
	visibleCount := (c.height - 2) / 2
	if visibleCount < 1 {
		visibleCount = 1
	}

	start := 0
	if c.cursor >= visibleCount {
		start = c.cursor - visibleCount + 1
	}
	end := start + visibleCount
	if end > len(c.entries) {
		end = len(c.entries)
	}

	for i := start; i < end; i++ {
		lines = append(lines, c.renderEntry(i, &c.entries[i]))
	}

	return strings.Join(lines, "\n")
}

// renderEntry formats a single entry with its checkbox state.
func (c *Checklist) renderEntry(index int, e *Entry) string {
	indicator := "  "
	if index == c.cursor {
		indicator = "> "
	}

	box := "[ ]"
	if e.Checked {
		box = "[x]"
	}
	if e.Locked {
		box = "[*]"
	}

	label := e.Label
	maxLabelLen := c.width - 10
	if maxLabelLen < 10 {
		maxLabelLen = 10
	}
	if len(label) > maxLabelLen {
		label = label[:maxLabelLen-3] + "..."
	}

	var titleLine string
	if index == c.cursor {
		titleLine = c.styles.Selected.Render(fmt.Sprintf("%s%s %s", indicator, box, label))
	} else {
		titleLine = c.styles.Normal.Render(fmt.Sprintf("%s%s %s", indicator, box, label))
	}

	desc := e.Description
	maxDescLen := c.width - 8
	if maxDescLen < 20 {
		maxDescLen = 20
	}
	if len(desc) > maxDescLen {
		desc = desc[:maxDescLen-3] + "..."
	}
	descLine := c.styles.Muted.Render("      " + desc)

	return titleLine + "\n" + descLine
}

// SetEntries replaces the list contents.
func (c *Checklist) SetEntries(entries []Entry) {
	c.entries = entries
	if c.cursor >= len(entries) {
		c.cursor = 0
	}
}

// Entries returns the current entries.
func (c *Checklist) Entries() []Entry {
	return c.entries
}

// Cursor returns the index under the cursor.
func (c *Checklist) Cursor() int {
	return c.cursor
}

// Current returns the entry under the cursor, or nil if the list is empty.
func (c *Checklist) Current() *Entry {
	if len(c.entries) == 0 || c.cursor < 0 || c.cursor >= len(c.entries) {
		return nil
	}
	return &c.entries[c.cursor]
}

// Toggle flips the checked state of the entry under the cursor.
// Locked entries are left unchanged. Returns the affected entry.
func (c *Checklist) Toggle() *Entry {
	e := c.Current()
	if e == nil || e.Locked {
		return e
	}
	e.Checked = !e.Checked
	return e
}

// ToggleAll checks every unlocked entry, or unchecks them all when
// every entry is already checked. Returns the ids whose state changed.
func (c *Checklist) ToggleAll() []string {
	allChecked := true
	for _, e := range c.entries {
		if !e.Locked && !e.Checked {
			allChecked = false
			break
		}
	}

	var changed []string
	for i := range c.entries {
		e := &c.entries[i]
		if e.Locked || e.Checked != allChecked {
			continue
		}
		e.Checked = !allChecked
		changed = append(changed, e.ID)
	}
	return changed
}

// CheckedIDs returns the ids of all checked entries in list order.
func (c *Checklist) CheckedIDs() []string {
	ids := make([]string, 0, len(c.entries))
	for _, e := range c.entries {
		if e.Checked {
			ids = append(ids, e.ID)
		}
	}
	return ids
}

// MoveUp moves the cursor up.
func (c *Checklist) MoveUp() {
	if c.cursor > 0 {
		c.cursor--
	}
}

// MoveDown moves the cursor down.
func (c *Checklist) MoveDown() {
	if c.cursor < len(c.entries)-1 {
		c.cursor++
	}
}

// SetDimensions sets the component dimensions.
func (c *Checklist) SetDimensions(width, height int) {
	c.width = width
	c.height = height
}

// Count returns the number of entries.
func (c *Checklist) Count() int {
	return len(c.entries)
}

// IsEmpty returns whether the list is empty.
func (c *Checklist) IsEmpty() bool {
	return len(c.entries) == 0
}
