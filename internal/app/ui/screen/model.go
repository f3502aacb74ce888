package screen

import (
	"math/rand"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"kadry/internal/app/articles"
	"kadry/internal/app/opener"
	"kadry/internal/app/ui/components"
	"kadry/internal/app/ui/content"
	"kadry/internal/app/ui/format"
	"kadry/internal/app/ui/navigation"
	"kadry/internal/config/logger"
)

// Model represents the Bubble Tea model for the board
type Model struct {
	nav     navigation.Navigator
	opener  opener.Opener
	display *display
	menu    *overlay
	pulse   *components.Pulse

	state struct {
		ready    bool
		focus    int
		revision int
		status   string
	}

	ui struct {
		height      int
		width       int
		keys        KeyMap
		tickCounter int
		showTips    bool
		tipOffset   int
		help        help.Model
		viewport    viewport.Model
	}

	log logger.Logger
}

// NewModel creates the board model and shows Home; the menu overlay exists only when withMenu is set
func NewModel(
	collection articles.Collection,
	factory navigation.Factory,
	opener opener.Opener,
	withMenu bool,
	log logger.Logger,
) Model {
	log = log.WithComponent("UI")

	m := Model{
		opener:  opener,
		display: &display{},
		pulse:   components.NewPulse(),
		log:     log,
	}

	var menu navigation.Menu
	if withMenu {
		m.menu = &overlay{}
		menu = m.menu
	}

	m.nav = factory(collection, m.display, menu)
	m.nav.Init()

	m.ui.keys = DefaultKeyMap()
	m.ui.keys.Menu.SetEnabled(withMenu)
	m.ui.showTips = true
	m.ui.tipOffset = rand.Intn(len(components.Tips)) //nolint:gosec // not security-critical
	m.ui.help = help.New()
	m.ui.viewport = viewport.New(components.DefaultViewportWidth, 0)

	m.pulse.Start()
	m.sync()

	log.Debug().Msgf("Created model with %d articles", collection.Len())

	return m
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Navigator returns the navigator driving the model
func (m Model) Navigator() navigation.Navigator {
	return m.nav
}

// Content returns what the region currently shows
func (m Model) Content() content.Content {
	return m.display.current
}

// Focus returns the index of the focused item
func (m Model) Focus() int {
	return m.state.focus
}

// MenuOpen reports whether the overlay menu is shown
func (m Model) MenuOpen() bool {
	return m.menu != nil && m.menu.IsOpen()
}

func (m Model) items() []content.Item {
	return m.display.current.Items()
}

// sync picks up content written by the navigator, resetting focus and scroll when it changed
func (m *Model) sync() {
	if m.display.revision != m.state.revision {
		m.state.revision = m.display.revision
		m.state.focus = 0
		m.state.status = ""
		m.ui.viewport.YOffset = 0
		m.pulse.Restart()
	}

	m.refresh()
}

// refresh formats the current content into the viewport
func (m *Model) refresh() {
	result := m.format()
	m.ui.viewport.SetContent(result.Text)
}

func (m Model) format() format.Result {
	focus := m.state.focus
	if len(m.items()) == 0 {
		focus = -1
	}

	return format.Content(m.display.current, format.Options{
		Width:  m.ui.viewport.Width,
		Focus:  focus,
		Styled: true,
		Marker: m.pulse.Frame(),
	})
}

// moveFocus shifts focus by delta, reporting false when it could not move
func (m *Model) moveFocus(delta int) bool {
	total := len(m.items())
	next := m.state.focus + delta

	if total == 0 || next < 0 || next >= total {
		return false
	}

	m.state.focus = next
	m.pulse.Restart()

	result := m.format()
	m.ui.viewport.SetContent(result.Text)
	m.scrollTo(result.FocusLine)

	return true
}

// scrollTo keeps line inside the viewport; the first item also reveals the page title
func (m *Model) scrollTo(line int) {
	if line < 0 || m.ui.viewport.Height <= 0 {
		return
	}

	if m.state.focus == 0 {
		m.ui.viewport.YOffset = 0
	}

	top := m.ui.viewport.YOffset
	bottom := top + m.ui.viewport.Height - 1

	switch {
	case line < top:
		m.ui.viewport.YOffset = line
	case line > bottom:
		m.ui.viewport.YOffset = line - m.ui.viewport.Height + 1
	}
}
