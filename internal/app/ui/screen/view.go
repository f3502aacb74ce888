package screen

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"kadry/internal/app/ui/components"
)

const appTitle = "kadry"

// View renders the UI
func (m Model) View() string {
	if !m.state.ready {
		return "Initializing…"
	}

	header := components.RenderHeader(m.ui.width, m.renderTitle(), m.renderInfo())
	body := components.RenderContent(m.renderBody())
	footer := components.RenderFooter(m.ui.width, m.renderHelp(), m.renderTip())

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// renderTitle renders the application name followed by the page title
func (m Model) renderTitle() string {
	title := m.display.current.Title
	if title == "" {
		return appTitle
	}

	return appTitle + " · " + title
}

// renderInfo renders the last link status or the focus position
func (m Model) renderInfo() string {
	if m.state.status != "" {
		return m.state.status
	}

	total := len(m.items())
	if total == 0 {
		return ""
	}

	return fmt.Sprintf("%d/%d", m.state.focus+1, total)
}

// renderBody renders the menu overlay or the scrolled content
func (m Model) renderBody() string {
	if m.MenuOpen() {
		return lipgloss.Place(
			m.ui.viewport.Width,
			m.ui.viewport.Height,
			lipgloss.Center,
			lipgloss.Center,
			m.renderMenu(),
		)
	}

	return m.ui.viewport.View()
}

func (m Model) renderMenu() string {
	current := m.nav.CurrentView()
	rows := make([]string, 0, len(menuItems))

	for i, item := range menuItems {
		switch {
		case i == m.menu.selected:
			rows = append(rows, m.pulse.Render(components.MarkerStyle)+" "+components.MenuSelectedStyle.Render(item.label))
		case item.view == current:
			rows = append(rows, "  "+components.MenuCurrentStyle.Render(item.label))
		default:
			rows = append(rows, "  "+components.MenuItemStyle.Render(item.label))
		}
	}

	return components.MenuStyle.Render(strings.Join(rows, "\n"))
}

// renderHelp renders the help text with keybindings
func (m Model) renderHelp() string {
	return m.ui.help.View(m.ui.keys)
}

// renderTip returns the current rotating tip or empty string if tips disabled
func (m Model) renderTip() string {
	if !m.ui.showTips {
		return ""
	}

	rotation := m.ui.tickCounter / components.TipRotationTicks

	return components.TipStyle.Render(components.TipAt(m.ui.tipOffset + rotation))
}
