package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_View_String(t *testing.T) {
	tests := []struct {
		name     string
		view     View
		expected string
	}{
		{name: "home", view: ViewHome, expected: "home"},
		{name: "article", view: ViewArticle, expected: "article"},
		{name: "documents", view: ViewDocuments, expected: "documents"},
		{name: "contacts", view: ViewContacts, expected: "contacts"},
		{name: "unknown", view: View(42), expected: "unknown"},
		{name: "negative", view: View(-1), expected: "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.view.String())
		})
	}
}

func Test_View_Normalize(t *testing.T) {
	assert.Equal(t, ViewDocuments, ViewDocuments.Normalize())
	assert.Equal(t, ViewArticle, ViewArticle.Normalize())
	assert.Equal(t, ViewHome, View(99).Normalize())
	assert.Equal(t, ViewHome, View(-3).Normalize())
}

func Test_ParseView(t *testing.T) {
	tests := []struct {
		input    string
		expected View
		known    bool
	}{
		{input: "home", expected: ViewHome, known: true},
		{input: "news", expected: ViewHome, known: true},
		{input: " Documents ", expected: ViewDocuments, known: true},
		{input: "docs", expected: ViewDocuments, known: true},
		{input: "contacts", expected: ViewContacts, known: true},
		{input: "article", expected: ViewArticle, known: true},
		{input: "about", expected: ViewHome, known: false},
		{input: "", expected: ViewHome, known: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			view, known := ParseView(tt.input)
			assert.Equal(t, tt.expected, view)
			assert.Equal(t, tt.known, known)
		})
	}
}

func Test_Trigger_Activate(t *testing.T) {
	calls := 0
	trigger := NewTrigger("Open", "a1", func() { calls++ })

	trigger.Activate()
	trigger.Activate()

	assert.Equal(t, 2, calls)
	assert.Equal(t, "Open", trigger.Label)
	assert.Equal(t, "a1", trigger.Target)

	assert.NotPanics(t, func() { Trigger{}.Activate() })
}

func Test_Content_Items(t *testing.T) {
	var activated []string

	back := NewTrigger("Back", "home", func() { activated = append(activated, "back") })
	c := Content{
		Back: &back,
		Cards: []Card{
			{ArticleID: "a", Open: NewTrigger("A", "a", func() { activated = append(activated, "a") })},
			{ArticleID: "b", Open: NewTrigger("B", "b", func() { activated = append(activated, "b") })},
		},
		Sections: []Section{
			{Entries: []Entry{{Label: "Form", Links: []Link{{Label: "Word", Target: "f.docx"}, {Label: "PDF", Target: "f.pdf"}}}}},
		},
	}

	items := c.Items()
	require.Len(t, items, 5)

	labels := make([]string, 0, len(items))
	for _, item := range items {
		labels = append(labels, item.Label())
	}
	assert.Equal(t, []string{"Back", "A", "B", "Word", "PDF"}, labels)

	items[2].Trigger.Activate()
	items[0].Trigger.Activate()
	assert.Equal(t, []string{"b", "back"}, activated)

	assert.Nil(t, items[3].Trigger)
	assert.Equal(t, "f.docx", items[3].Link.Target)
}

func Test_Content_ItemsEmpty(t *testing.T) {
	assert.Empty(t, Content{}.Items())
	assert.Empty(t, Item{}.Label())
}
