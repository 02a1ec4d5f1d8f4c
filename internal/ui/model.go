package ui

import (
	"fmt"
	"log"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"emojipick/internal/clipboard"
	"emojipick/internal/config"
	"emojipick/internal/domain"
	"emojipick/internal/eventbus"
	"emojipick/internal/ui/grid"
	"emojipick/internal/ui/services/search"
	"emojipick/internal/ui/state"
	"emojipick/internal/ui/views"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	wheelStep     = 3
)

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	state  *state.AppState
	copier clipboard.Copier

	grid     *grid.Grid
	search   *search.Service
	layout   grid.Layout
	renderer *views.Renderer

	input    textinput.Model
	viewport viewport.Model
	help     help.Model
	keys     keyMap

	helpRenderer *HelpRenderer
	helpOps      *HelpOps

	// pending holds the command queued by a tile's click action
	pending tea.Cmd
}

// NewModel creates the picker UI over a shared, read-only descriptor list
func NewModel(bus eventbus.EventBus, cfg *config.Config, descriptors []domain.Descriptor, copier clipboard.Copier) *Model {
	m := &Model{
		bus:      bus,
		config:   cfg,
		copier:   copier,
		renderer: views.NewRenderer(),
		help:     help.New(),
		keys:     newKeyMap(),
		helpOps:  NewHelpOps(nil),
	}

	m.grid = grid.New(descriptors, m.copyGlyph)
	m.search = search.NewService(bus, m.grid.Len(), m.grid.Filter)
	m.state = state.NewAppState(m.grid.Len())
	m.helpRenderer = NewHelpRenderer(m.keys, m.grid.Len())

	ti := textinput.New()
	ti.Prompt = "" // Prompt is handled in the view
	ti.Placeholder = "type to filter by name or shortcode"
	ti.Focus()
	m.input = ti

	m.state.SetDimensions(defaultWidth, defaultHeight, views.HeaderLines+views.FooterLines)
	m.viewport = viewport.New(defaultWidth, m.state.ViewportHeight)
	m.relayout()

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.helpOps = NewHelpOps(p)
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.state.SetDimensions(msg.Width, msg.Height, views.HeaderLines+views.FooterLines)
		m.viewport.Width = msg.Width
		m.viewport.Height = m.state.ViewportHeight
		m.help.Width = msg.Width
		m.input.Width = max(msg.Width-len("Search: ")-1, 1)
		m.relayout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		cmd := m.pending
		m.pending = nil
		return m, cmd

	case clipboardResultMsg:
		if msg.err != nil {
			log.Printf("Failed to copy %s: %v", msg.glyph, msg.err)
			m.publish(domain.ClipboardFailedEvent{Glyph: msg.glyph, Err: msg.err})
		}
		return m, nil

	case helpPagerMsg:
		if msg.err != nil {
			log.Printf("Help pager failed: %v", msg.err)
			m.state.StatusMessage = fmt.Sprintf("Help unavailable: %v", msg.err)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Clear):
		if m.input.Value() == "" {
			return m, tea.Quit
		}
		m.input.SetValue("")
		m.applyQuery("")
		return m, nil

	case key.Matches(msg, m.keys.Help):
		return m, m.fetchHelpPager()

	case key.Matches(msg, m.keys.PageDown):
		m.scroll(m.viewport.Height)
		return m, nil

	case key.Matches(msg, m.keys.PageUp):
		m.scroll(-m.viewport.Height)
		return m, nil

	case key.Matches(msg, m.keys.HalfDown):
		m.scroll(max(m.viewport.Height/2, 1))
		return m, nil

	case key.Matches(msg, m.keys.HalfUp):
		m.scroll(-max(m.viewport.Height/2, 1))
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.applyQuery(m.input.Value())
	return m, cmd
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.scroll(-wheelStep)

	case tea.MouseButtonWheelDown:
		m.scroll(wheelStep)

	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return
		}
		if idx, ok := m.tileAt(msg.X, msg.Y); ok {
			m.grid.Click(idx)
		}
	}
}

// tileAt maps screen coordinates to the tile drawn there
func (m *Model) tileAt(x, y int) (int, bool) {
	line := y - views.HeaderLines
	if line < 0 || line >= m.viewport.Height {
		return 0, false
	}
	return m.layout.TileAt(x, line+m.viewport.YOffset)
}

func (m *Model) scroll(delta int) {
	m.viewport.SetYOffset(m.viewport.YOffset + delta)
}

// applyQuery runs the filter for a changed query and re-flows the grid
func (m *Model) applyQuery(query string) {
	if !m.search.Update(query) {
		return
	}
	m.state.Query = m.search.Query()
	m.state.MatchCount = m.search.MatchCount()
	m.relayout()
	m.viewport.GotoTop()
}

// relayout flows the visible tiles for the current width and redraws the grid
func (m *Model) relayout() {
	m.layout = grid.ComputeLayout(m.grid.VisibleIndices(), m.state.Width, m.config.UISettings.TileWidth)
	m.state.GridRows = m.layout.RowCount()
	m.refreshGrid()
}

func (m *Model) refreshGrid() {
	content := m.renderer.Grid.Render(m.layout, func(i int) string {
		return m.grid.Tile(i).Glyph
	}, m.state.LastCopied)
	m.viewport.SetContent(content)
}

// copyGlyph is bound to every tile's click action. The clipboard write runs as
// a command since the system backend may shell out to xclip or wl-copy.
func (m *Model) copyGlyph(glyph string) {
	m.pending = m.copyCmd(glyph)

	// The label is optimistic: it is shown before the write finishes and kept if it fails
	m.state.StatusMessage = ""
	m.state.SetCopied(glyph, fmt.Sprintf(m.config.UISettings.ConfirmFormat, glyph))
	m.refreshGrid()
	m.publish(domain.GlyphCopiedEvent{Glyph: glyph})
}

func (m *Model) copyCmd(glyph string) tea.Cmd {
	copier := m.copier
	return func() tea.Msg {
		return clipboardResultMsg{glyph: glyph, err: copier.Copy(glyph)}
	}
}

func (m *Model) publish(event eventbus.DomainEvent) {
	if m.bus != nil {
		m.bus.Publish(event)
	}
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager() tea.Cmd {
	width := m.state.Width
	return func() tea.Msg {
		content, err := m.helpRenderer.Render(width)
		if err != nil {
			return helpPagerMsg{err: err}
		}
		return helpPagerMsg{err: m.helpOps.ShowHelpInPager(content)}
	}
}

// View renders the UI
func (m *Model) View() string {
	return m.renderer.Render(views.ViewState{
		Width:         m.state.Width,
		Height:        m.state.Height,
		Title:         m.config.UISettings.Title,
		SearchInput:   m.input.View(),
		MatchCount:    m.state.MatchCount,
		Total:         m.state.Total,
		Grid:          m.viewport.View(),
		Feedback:      m.state.Feedback,
		StatusMessage: m.state.StatusMessage,
		HelpView:      m.help.View(m.keys),
	})
}
