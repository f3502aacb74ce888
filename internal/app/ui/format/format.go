package format

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"kadry/internal/app/ui/components"
	"kadry/internal/app/ui/content"
)

// Display labels
const (
	PublishedLabel = "Опубликовано: "
	ImageLabel     = "Изображение: "
	NoImageLabel   = "Нет изображения"

	DefaultMarker = "▸"
	bullet        = "•"
	indent        = "  "
)

// Options controls how content is turned into text
type Options struct {
	// Width wraps long text; zero disables wrapping
	Width int
	// Focus is an index into content.Content.Items; negative means no focus
	Focus  int
	Styled bool
	// Marker precedes the focused item, DefaultMarker when empty
	Marker      string
	ShowTargets bool
}

// Result is the formatted text and the line of the focused item, -1 when nothing is focused
type Result struct {
	Text      string
	FocusLine int
}

type builder struct {
	opts      Options
	lines     []string
	item      int
	focusLine int
}

// Content formats c for a terminal or a plain text stream
func Content(c content.Content, opts Options) Result {
	if opts.Marker == "" {
		opts.Marker = DefaultMarker
	}

	b := &builder{opts: opts, focusLine: -1}

	switch {
	case c.Detail != nil:
		b.detail(c)
	case len(c.Sections) > 0:
		b.sections(c)
	default:
		b.cards(c)
	}

	return Result{
		Text:      strings.Join(b.lines, "\n"),
		FocusLine: b.focusLine,
	}
}

// Plain formats c without styles or focus, listing link targets
func Plain(c content.Content, width int) string {
	return Content(c, Options{Width: width, Focus: -1, ShowTargets: true}).Text
}

func (b *builder) cards(c content.Content) {
	b.add(b.style(components.TitleStyle, c.Title))

	if len(c.Cards) == 0 {
		b.blank()
		b.add(b.style(components.EmptyStateStyle, c.Empty))

		return
	}

	for _, card := range c.Cards {
		b.blank()
		b.add(b.trigger(card.Open.Label, components.CardTitleStyle))

		if card.Summary != "" {
			for _, line := range b.wrap(card.Summary, len(indent)) {
				b.add(indent + b.style(components.SummaryStyle, line))
			}
		}

		meta := []string{}
		if card.Date != "" {
			meta = append(meta, b.style(components.DateStyle, card.Date))
		}
		meta = append(meta, b.style(components.ImageStyle, imageText(card.Image)))

		b.add(indent + strings.Join(meta, "  "))
	}
}

func (b *builder) detail(c content.Content) {
	d := c.Detail

	if c.Back != nil {
		b.add(b.trigger(c.Back.Label, components.LinkStyle))
		b.blank()
	}

	for _, line := range b.wrap(d.Title, 0) {
		b.add(b.style(components.TitleStyle, line))
	}

	b.add(b.style(components.DateStyle, PublishedLabel+d.Date))
	b.add(b.style(components.ImageStyle, imageText(d.Image)))
	b.blank()

	for _, paragraph := range strings.Split(d.Body, "\n") {
		for _, line := range b.wrap(paragraph, 0) {
			b.add(b.style(components.BodyStyle, line))
		}
	}
}

func (b *builder) sections(c content.Content) {
	b.add(b.style(components.TitleStyle, c.Title))

	for _, section := range c.Sections {
		b.blank()

		if section.Heading != "" {
			b.add(b.style(components.SectionHeadingStyle, section.Heading))
		}

		for _, paragraph := range section.Paragraphs {
			for _, line := range b.wrap(paragraph, 0) {
				b.add(b.style(components.BodyStyle, line))
			}
		}

		for _, entry := range section.Entries {
			b.entry(entry)
		}
	}
}

func (b *builder) entry(e content.Entry) {
	line := bullet + " " + b.style(components.BodyStyle, e.Label)
	row := len(b.lines)
	focused := false

	for _, link := range e.Links {
		sep := " "
		label := "[" + link.Label + "]"

		if b.focused() {
			focused = true
			sep = b.marker()
			label = b.style(components.FocusStyle, label)
		} else {
			label = b.style(components.LinkStyle, label)
		}

		b.item++
		line += sep + label
	}

	wrapped := b.wrap(line, 0)
	if focused {
		b.focusLine = row + markerLine(wrapped, b.opts.Marker)
	}

	b.add(wrapped...)

	if !b.opts.ShowTargets {
		return
	}

	for _, link := range e.Links {
		b.add(indent + indent + link.Label + ": " + link.Target)
	}
}

// trigger renders one trigger line, marking it when focused
func (b *builder) trigger(label string, style lipgloss.Style) string {
	defer func() { b.item++ }()

	if b.focused() {
		b.focusLine = len(b.lines)
		return b.marker() + " " + b.style(components.FocusStyle, label)
	}

	return strings.Repeat(" ", lipgloss.Width(b.opts.Marker)) + " " + b.style(style, label)
}

func (b *builder) focused() bool {
	return b.opts.Focus >= 0 && b.item == b.opts.Focus
}

func (b *builder) marker() string {
	return b.style(components.MarkerStyle, b.opts.Marker)
}

func (b *builder) style(s lipgloss.Style, text string) string {
	if !b.opts.Styled || text == "" {
		return text
	}

	return s.Render(text)
}

func (b *builder) wrap(text string, offset int) []string {
	width := b.opts.Width - offset
	if b.opts.Width <= 0 || width <= 0 {
		return []string{text}
	}

	return strings.Split(ansi.Wordwrap(text, width, ""), "\n")
}

func (b *builder) add(lines ...string) {
	b.lines = append(b.lines, lines...)
}

func (b *builder) blank() {
	b.lines = append(b.lines, "")
}

// markerLine returns the index of the wrapped line holding the focused link.
// The marker is glued to the link's opening bracket, so wrapping never separates them.
func markerLine(lines []string, marker string) int {
	needle := ansi.Strip(marker) + "["

	for i, line := range lines {
		if strings.Contains(ansi.Strip(line), needle) {
			return i
		}
	}

	return 0
}

func imageText(image string) string {
	if image == "" {
		return NoImageLabel
	}

	return ImageLabel + image
}
