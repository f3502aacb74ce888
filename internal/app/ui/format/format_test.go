package format

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kadry/internal/app/ui/content"
)

func homeContent() content.Content {
	return content.Content{
		View:  content.ViewHome,
		Title: "Новости",
		Cards: []content.Card{
			{ArticleID: "a1", Title: "T1", Summary: "S1", Date: "01.09.2024", Open: content.NewTrigger("T1", "a1", nil)},
			{ArticleID: "a2", Title: "T2", Image: "pic.png", Open: content.NewTrigger("T2", "a2", nil)},
		},
	}
}

func articleContent() content.Content {
	back := content.NewTrigger("← Back", "home", nil)

	return content.Content{
		View:  content.ViewArticle,
		Title: "T1",
		Detail: &content.Detail{
			ArticleID: "a1",
			Title:     "T1",
			Date:      "01.09.2024",
			Body:      "first\nsecond",
		},
		Back: &back,
	}
}

func sectionContent() content.Content {
	return content.Content{
		View:  content.ViewDocuments,
		Title: "Docs",
		Sections: []content.Section{
			{
				Heading:    "Intro",
				Paragraphs: []string{"Read carefully"},
				Entries: []content.Entry{
					{Label: "Form", Links: []content.Link{
						{Label: "Word", Target: "documents/form.docx"},
						{Label: "PDF", Target: "documents/form.pdf"},
					}},
				},
			},
			{
				Heading: "Mail",
				Entries: []content.Entry{
					{Label: "Email", Links: []content.Link{{Label: "natasha", Target: "mailto:n@example.com"}}},
				},
			},
		},
	}
}

func Test_Content_Home(t *testing.T) {
	result := Content(homeContent(), Options{Focus: 1})
	lines := strings.Split(result.Text, "\n")

	assert.Equal(t, []string{
		"Новости",
		"",
		"  T1",
		"  S1",
		"  01.09.2024  Нет изображения",
		"",
		"▸ T2",
		"  Изображение: pic.png",
	}, lines)
	assert.Equal(t, 6, result.FocusLine)
}

func Test_Content_EmptyHome(t *testing.T) {
	c := content.Content{View: content.ViewHome, Title: "Новости", Empty: "Новостей пока нет"}

	result := Content(c, Options{Focus: 0})

	assert.Equal(t, "Новости\n\nНовостей пока нет", result.Text)
	assert.Equal(t, -1, result.FocusLine)
}

func Test_Content_Article(t *testing.T) {
	result := Content(articleContent(), Options{Focus: 0})

	assert.Equal(t, []string{
		"▸ ← Back",
		"",
		"T1",
		"Опубликовано: 01.09.2024",
		"Нет изображения",
		"",
		"first",
		"second",
	}, strings.Split(result.Text, "\n"))
	assert.Equal(t, 0, result.FocusLine)
}

func Test_Content_Sections(t *testing.T) {
	tests := []struct {
		name      string
		focus     int
		line      string
		focusLine int
	}{
		{name: "First link of entry", focus: 0, line: "• Form▸[Word] [PDF]", focusLine: 4},
		{name: "Second link of entry", focus: 1, line: "• Form [Word]▸[PDF]", focusLine: 4},
		{name: "Link in later section", focus: 2, line: "• Form [Word] [PDF]", focusLine: 7},
		{name: "No focus", focus: -1, line: "• Form [Word] [PDF]", focusLine: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Content(sectionContent(), Options{Focus: tt.focus})
			lines := strings.Split(result.Text, "\n")

			assert.Equal(t, "Docs", lines[0])
			assert.Equal(t, "Intro", lines[2])
			assert.Equal(t, "Read carefully", lines[3])
			assert.Equal(t, tt.line, lines[4])
			assert.Equal(t, tt.focusLine, result.FocusLine)
		})
	}
}

func Test_Content_WrappedEntryFocus(t *testing.T) {
	tests := []struct {
		name      string
		focus     int
		styled    bool
		focusLine int
	}{
		{name: "Link on first line", focus: 0, focusLine: 4},
		{name: "Link on wrapped line", focus: 1, focusLine: 5},
		{name: "Styled link on wrapped line", focus: 1, styled: true, focusLine: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Content(sectionContent(), Options{Width: 15, Focus: tt.focus, Styled: tt.styled})
			lines := strings.Split(result.Text, "\n")

			require.Greater(t, len(lines), tt.focusLine)
			assert.Equal(t, tt.focusLine, result.FocusLine)
			assert.Contains(t, ansi.Strip(lines[result.FocusLine]), DefaultMarker+"[")
		})
	}
}

func Test_Content_CustomMarker(t *testing.T) {
	result := Content(homeContent(), Options{Focus: 0, Marker: ">>"})
	lines := strings.Split(result.Text, "\n")

	assert.Equal(t, ">> T1", lines[2])
	assert.Equal(t, "   T2", lines[6])
}

func Test_Content_Wrap(t *testing.T) {
	c := articleContent()
	c.Detail.Body = "one two three four five six seven"

	result := Content(c, Options{Width: 10, Focus: -1})
	lines := strings.Split(result.Text, "\n")

	bodyLines := lines[6:]
	assert.Greater(t, len(bodyLines), 1)

	for _, line := range bodyLines {
		assert.LessOrEqual(t, lipgloss.Width(line), 10, line)
	}
	assert.Equal(t, "one two three four five six seven", strings.Join(strings.Fields(strings.Join(bodyLines, " ")), " "))
}

func Test_Content_Styled(t *testing.T) {
	plain := Content(homeContent(), Options{Focus: 0})
	styled := Content(homeContent(), Options{Focus: 0, Styled: true})

	assert.Equal(t, plain.FocusLine, styled.FocusLine)
	assert.Equal(t, len(strings.Split(plain.Text, "\n")), len(strings.Split(styled.Text, "\n")))
	assert.Contains(t, styled.Text, "T1")
}

func Test_Plain(t *testing.T) {
	text := Plain(sectionContent(), 0)

	assert.NotContains(t, text, DefaultMarker)
	assert.Contains(t, text, "    Word: documents/form.docx")
	assert.Contains(t, text, "    PDF: documents/form.pdf")
	assert.Contains(t, text, "    natasha: mailto:n@example.com")
}

func Test_Plain_Home(t *testing.T) {
	text := Plain(homeContent(), 0)

	assert.NotContains(t, text, DefaultMarker)
	assert.Contains(t, text, "  T1\n")
	assert.Contains(t, text, "  T2\n")
}
