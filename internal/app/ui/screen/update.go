package screen

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"kadry/internal/app/opener"
	"kadry/internal/app/ui/components"
	"kadry/internal/app/ui/content"
)

// Tick timing constants
const (
	tickInterval       = components.UITickInterval
	tickCounterMaximum = 1000000
)

// tickMsg signals a UI tick for animations
type tickMsg time.Time

// linkOpenedMsg reports the outcome of handing a link to the desktop
type linkOpenedMsg struct {
	target string
	err    error
}

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func openLinkCmd(o opener.Opener, target string) tea.Cmd {
	return func() tea.Msg {
		return linkOpenedMsg{target: target, err: o.Open(target)}
	}
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.ui.width = msg.Width
		m.ui.height = msg.Height
		m.ui.help.Width = msg.Width

		width := msg.Width - components.ContentHorizontalPadding
		if width < 1 {
			width = 1
		}

		height := msg.Height - components.HeaderHeight - components.FooterHeight - components.ContentVerticalPadding
		if height < components.MinContentHeight {
			height = components.MinContentHeight
		}

		m.ui.viewport.Width = width
		m.ui.viewport.Height = height

		if !m.state.ready {
			m.state.ready = true
		}

		m.refresh()

		return m, nil

	case tickMsg:
		m.ui.tickCounter++

		if m.ui.tickCounter >= tickCounterMaximum {
			m.ui.tickCounter = 0
		}

		frame := m.pulse.Frame()
		m.pulse.Update()

		if m.pulse.Frame() != frame {
			m.refresh()
		}

		return m, tickCmd()

	case linkOpenedMsg:
		if msg.err != nil {
			m.log.Warn().Err(msg.err).Str("target", msg.target).Msg("TUI: Failed to open link")
			m.state.status = "cannot open " + filepath.Base(msg.target)

			return m, nil
		}

		m.log.Debug().Str("target", msg.target).Msg("TUI: Opened link")
		m.state.status = "opened " + filepath.Base(msg.target)

		return m, nil
	}

	return m, nil
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.ui.keys.ForceQuit) {
		m.log.Warn().Msg("TUI: Force quit requested, exiting immediately")
		return m, tea.Quit
	}

	if m.MenuOpen() {
		return m.handleMenuKey(msg)
	}

	switch {
	case key.Matches(msg, m.ui.keys.Quit):
		m.log.Info().Msg("TUI: Quit requested")
		return m, tea.Quit

	case key.Matches(msg, m.ui.keys.Up):
		if !m.moveFocus(-1) {
			return m.scroll(msg)
		}

	case key.Matches(msg, m.ui.keys.Down):
		if !m.moveFocus(1) {
			return m.scroll(msg)
		}

	case key.Matches(msg, m.ui.keys.Open):
		return m.activate()

	case key.Matches(msg, m.ui.keys.Back):
		m.back()

	case key.Matches(msg, m.ui.keys.Menu):
		m.toggleMenu()

	case key.Matches(msg, m.ui.keys.News):
		m.selectView(content.ViewHome)

	case key.Matches(msg, m.ui.keys.Documents):
		m.selectView(content.ViewDocuments)

	case key.Matches(msg, m.ui.keys.Contacts):
		m.selectView(content.ViewContacts)

	case key.Matches(msg, m.ui.keys.ToggleTips):
		m.ui.showTips = !m.ui.showTips

	case key.Matches(msg, m.ui.keys.PageUp), key.Matches(msg, m.ui.keys.PageDown):
		return m.scroll(msg)
	}

	return m, nil
}

// handleMenuKey processes keyboard input while the overlay menu is open
func (m Model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.ui.keys.Quit):
		m.log.Info().Msg("TUI: Quit requested")
		return m, tea.Quit

	case key.Matches(msg, m.ui.keys.Up):
		m.menu.move(-1)

	case key.Matches(msg, m.ui.keys.Down):
		m.menu.move(1)

	case key.Matches(msg, m.ui.keys.Open):
		m.selectView(menuItems[m.menu.selected].view)

	case key.Matches(msg, m.ui.keys.Back), key.Matches(msg, m.ui.keys.Menu):
		m.toggleMenu()

	case key.Matches(msg, m.ui.keys.News):
		m.selectView(content.ViewHome)

	case key.Matches(msg, m.ui.keys.Documents):
		m.selectView(content.ViewDocuments)

	case key.Matches(msg, m.ui.keys.Contacts):
		m.selectView(content.ViewContacts)
	}

	return m, nil
}

// activate runs the focused trigger or opens the focused link
func (m Model) activate() (tea.Model, tea.Cmd) {
	items := m.items()
	if m.state.focus < 0 || m.state.focus >= len(items) {
		return m, nil
	}

	item := items[m.state.focus]

	switch {
	case item.Trigger != nil:
		m.log.Debug().Msgf("TUI: Activating %q", item.Trigger.Label)
		item.Trigger.Activate()
		m.sync()

		return m, nil

	case item.Link != nil:
		m.state.status = fmt.Sprintf("opening %s…", item.Link.Label)
		return m, openLinkCmd(m.opener, item.Link.Target)
	}

	return m, nil
}

// back activates the back trigger when the current content has one
func (m *Model) back() {
	if m.display.current.Back == nil {
		return
	}

	m.display.current.Back.Activate()
	m.sync()
}

func (m *Model) toggleMenu() {
	m.nav.ToggleMenu()

	if m.MenuOpen() {
		m.menu.selectView(m.nav.CurrentView())
	}
}

func (m *Model) selectView(view content.View) {
	m.nav.SelectView(view)
	m.sync()
}

// scroll hands the key to the viewport
func (m Model) scroll(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	m.ui.viewport, cmd = m.ui.viewport.Update(msg)

	return m, cmd
}
