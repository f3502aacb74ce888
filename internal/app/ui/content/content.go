package content

// Trigger is an activatable element produced by rendering, bound to its action at render time
type Trigger struct {
	Label string
	// Target names the destination for display: a view name or an article ID
	Target   string
	activate func()
}

// NewTrigger binds label and target to an action
func NewTrigger(label, target string, activate func()) Trigger {
	return Trigger{Label: label, Target: target, activate: activate}
}

// Activate runs the bound action; a zero Trigger does nothing
func (t Trigger) Activate() {
	if t.activate != nil {
		t.activate()
	}
}

// Card is one article teaser on the home view
type Card struct {
	ArticleID string
	Title     string
	Summary   string
	Date      string
	Image     string
	Open      Trigger
}

// Detail is the full article body
type Detail struct {
	ArticleID string
	Title     string
	Date      string
	Image     string
	Body      string
}

// Link points outside the board: a document file, a mail address or a web page
type Link struct {
	Label  string
	Target string
}

// Entry is one labelled line with zero or more links
type Entry struct {
	Label string
	Links []Link
}

// Section is a headed group of paragraphs and entries on a static page
type Section struct {
	Heading    string
	Paragraphs []string
	Entries    []Entry
}

// Content is everything the region shows for one view
type Content struct {
	View     View
	Title    string
	Empty    string
	Cards    []Card
	Detail   *Detail
	Back     *Trigger
	Sections []Section
}

// Item is one focusable element of a Content, either a trigger or a link
type Item struct {
	Trigger *Trigger
	Link    *Link
}

// Label returns the display text of the item
func (i Item) Label() string {
	switch {
	case i.Trigger != nil:
		return i.Trigger.Label
	case i.Link != nil:
		return i.Link.Label
	default:
		return ""
	}
}

// Items lists focusable elements in display order: back trigger, card triggers, then section links
func (c Content) Items() []Item {
	var items []Item

	if c.Back != nil {
		items = append(items, Item{Trigger: c.Back})
	}

	for i := range c.Cards {
		items = append(items, Item{Trigger: &c.Cards[i].Open})
	}

	for si := range c.Sections {
		for ei := range c.Sections[si].Entries {
			for li := range c.Sections[si].Entries[ei].Links {
				items = append(items, Item{Link: &c.Sections[si].Entries[ei].Links[li]})
			}
		}
	}

	return items
}
