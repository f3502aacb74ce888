package components

import "github.com/charmbracelet/lipgloss"

// Tip styles
var (
	tipKeyStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#909090", Dark: "#626262"})
	tipDescStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#B2B2B2", Dark: "#4A4A4A"})
)

func tipKey(k string) string  { return tipKeyStyle.Render(k) }
func tipDesc(d string) string { return tipDescStyle.Render(d) }

// Tips contains helpful hints displayed in the footer
var Tips = []string{
	tipDesc("Press ") + tipKey("m") + tipDesc(" to open the menu"),
	tipDesc("Press ") + tipKey("1 2 3") + tipDesc(" to jump to news, documents or contacts"),
	tipDesc("Press ") + tipKey("enter") + tipDesc(" on a link to open the form"),
	tipDesc("Print any page with ") + tipKey("kadry render documents"),
	tipDesc("Read news from a feed with ") + tipKey("kadry --feed <url>"),
	tipDesc("Press ") + tipKey("t") + tipDesc(" to hide these tips"),
}

// TipAt returns the tip for a rotation step
func TipAt(step int) string {
	if len(Tips) == 0 {
		return ""
	}

	if step < 0 {
		step = -step
	}

	return Tips[step%len(Tips)]
}
