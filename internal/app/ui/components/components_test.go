package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"kadry/internal/config"
)

func Test_DefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	assert.Contains(t, km.Up.Keys(), "up")
	assert.Contains(t, km.Up.Keys(), "k")
	assert.Contains(t, km.Down.Keys(), "down")
	assert.Contains(t, km.Down.Keys(), "j")
	assert.Contains(t, km.Quit.Keys(), "q")
	assert.Contains(t, km.ForceQuit.Keys(), "ctrl+c")
}

func Test_RenderLine(t *testing.T) {
	tests := []struct {
		name  string
		width int
		runes int
	}{
		{name: "positive width", width: 5, runes: 5},
		{name: "zero width", width: 0, runes: 0},
		{name: "negative width", width: -3, runes: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.runes, strings.Count(RenderLine(tt.width), "─"))
		})
	}
}

func Test_RenderHeader(t *testing.T) {
	header := RenderHeader(60, "Новости", "3 articles")

	assert.Contains(t, header, "Новости")
	assert.Contains(t, header, "3 articles")
}

func Test_RenderHeader_TruncatesLongTitle(t *testing.T) {
	title := strings.Repeat("Заголовок ", 20)
	header := RenderHeader(40, title, "info")

	assert.Contains(t, header, "…")
	assert.Contains(t, header, "info")
}

func Test_RenderFooter(t *testing.T) {
	footer := RenderFooter(60, "q quit", "")

	assert.Contains(t, footer, "v"+config.Version)
	assert.Contains(t, footer, "q quit")

	withTip := RenderFooter(60, "q quit", "hello tip")
	assert.Contains(t, withTip, "hello tip")
	assert.Greater(t, lipgloss.Height(withTip), lipgloss.Height(footer))
}

func Test_Truncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		width    int
		expected string
	}{
		{name: "fits", input: "short", width: 10, expected: "short"},
		{name: "exact", input: "exact", width: 5, expected: "exact"},
		{name: "cut", input: "truncate me", width: 6, expected: "trunc…"},
		{name: "cyrillic", input: "Новости", width: 4, expected: "Нов…"},
		{name: "zero", input: "text", width: 0, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Truncate(tt.input, tt.width))
		})
	}
}

func Test_Pulse(t *testing.T) {
	p := NewPulse()

	assert.False(t, p.IsActive())
	assert.Equal(t, markerBright, p.Frame())

	p.Update()
	assert.Equal(t, markerBright, p.Frame(), "inactive pulse does not move")

	p.Start()
	assert.True(t, p.IsActive())

	frames := map[string]bool{}
	for i := 0; i < 10*(pulseBrightTicks+pulseDimTicks); i++ {
		p.Update()
		frames[p.Frame()] = true
	}

	assert.True(t, frames[markerBright])
	assert.True(t, frames[markerDim])

	p.Restart()
	assert.True(t, p.IsActive())
	assert.Equal(t, markerBright, p.Frame())

	p.Stop()
	assert.False(t, p.IsActive())
	assert.Equal(t, markerBright, p.Frame())
}

func Test_TipAt(t *testing.T) {
	assert.Equal(t, Tips[0], TipAt(0))
	assert.Equal(t, Tips[1], TipAt(len(Tips)+1))
	assert.Equal(t, Tips[2], TipAt(-2))
}
