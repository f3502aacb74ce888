package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

type helpRow struct {
	usage string
	desc  string
}

var commandRows = []helpRow{
	{usage: "kadry", desc: "Open the notice board"},
	{usage: "kadry render [view] [id]", desc: "Print home, documents, contacts or an article"},
	{usage: "kadry list", desc: "List article IDs, dates and titles"},
	{usage: "kadry version", desc: "Show version"},
}

var optionRows = []helpRow{
	{usage: "-c, --config <file>", desc: "Config file (default kadry.yaml)"},
	{usage: "-a, --articles <file>", desc: "Articles YAML file"},
	{usage: "-f, --feed <url|file>", desc: "RSS or Atom feed with articles"},
	{usage: "--no-ui", desc: "Print the home page and exit"},
	{usage: "-v, --version", desc: "Show version information"},
}

var exampleRows = []helpRow{
	{usage: "kadry -a articles.yaml", desc: "Browse news from a file"},
	{usage: "kadry render documents", desc: "Print the index of forms"},
	{usage: "kadry render article a1", desc: "Print one article"},
}

// RenderUsage renders the full help screen
func RenderUsage() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		RenderTitle(),
		sectionHeader.Render("Usage:"),
		renderRows(commandRows, commandName),
		sectionHeader.Render("Options:"),
		renderRows(optionRows, commandName),
		sectionHeader.Render("Examples:"),
		renderRows(exampleRows, exampleCode),
	) + "\n"
}

func renderRows(rows []helpRow, style lipgloss.Style) string {
	width := 0
	for _, row := range rows {
		width = max(width, lipgloss.Width(row.usage))
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		usage := fmt.Sprintf("%-*s", width, row.usage)
		lines = append(lines, bodyMedium.Render("  "+style.Render(usage)+"   "+row.desc))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
