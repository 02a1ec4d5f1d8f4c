package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/noborus/ov/oviewer"
)

// HelpRenderer handles help content rendering
type HelpRenderer struct {
	keys  keyMap
	total int
}

// NewHelpRenderer creates a new help renderer for a catalog of total emoji
func NewHelpRenderer(keys keyMap, total int) *HelpRenderer {
	return &HelpRenderer{keys: keys, total: total}
}

// Markdown returns the help page source
func (r *HelpRenderer) Markdown() string {
	var md strings.Builder

	md.WriteString("# Emoji Picker\n\n")
	fmt.Fprintf(&md, "%d emoji are available. Click one to copy it to the clipboard and the primary selection.\n\n", r.total)

	md.WriteString("## Search\n\n")
	md.WriteString("Type to filter. A tile stays visible when its name or one of its shortcodes contains the text, ")
	md.WriteString("ignoring case. `face` matches *grinning face*; `rock` matches *rocket*.\n\n")

	md.WriteString("## Keys\n\n")
	md.WriteString("| Key | Action |\n|---|---|\n")
	for _, group := range r.keys.FullHelp() {
		for _, b := range group {
			h := b.Help()
			fmt.Fprintf(&md, "| `%s` | %s |\n", h.Key, h.Desc)
		}
	}
	md.WriteString("| mouse wheel | scroll |\n")
	md.WriteString("| left click | copy emoji |\n")

	md.WriteString("\n## Clipboard\n\n")
	md.WriteString("Copies go through xclip, xsel or wl-copy when available. ")
	md.WriteString("Without them the terminal is asked to set the clipboard (OSC 52).\n")

	return md.String()
}

// Render renders the help page for a terminal of the given width
func (r *HelpRenderer) Render(width int) (string, error) {
	if width <= 0 {
		width = 80
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create help renderer: %w", err)
	}
	out, err := renderer.Render(r.Markdown())
	if err != nil {
		return "", fmt.Errorf("failed to render help: %w", err)
	}
	return out, nil
}

// HelpOps handles help operations
type HelpOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewHelpOps creates a new help operations instance
func NewHelpOps(program *tea.Program) *HelpOps {
	return &HelpOps{
		program: program,
	}
}

// ShowHelpInPager shows help content using ov pager
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	if h.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := h.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(helpContent))
	if err != nil {
		return err
	}

	// Don't write the page back to the terminal on exit, it would land under our screen
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
