package screen

import (
	"kadry/internal/app/ui/content"
	"kadry/internal/app/ui/render"
)

// display is the content region the navigator writes into
type display struct {
	current  content.Content
	revision int
}

func (d *display) Replace(c content.Content) {
	d.current = c
	d.revision++
}

type menuItem struct {
	label string
	view  content.View
}

var menuItems = []menuItem{
	{label: render.HomeTitle, view: content.ViewHome},
	{label: render.DocumentsTitle, view: content.ViewDocuments},
	{label: render.ContactsTitle, view: content.ViewContacts},
}

// overlay is the view menu drawn over the content region
type overlay struct {
	open     bool
	selected int
}

func (o *overlay) Open() {
	o.open = true
}

func (o *overlay) Close() {
	o.open = false
}

func (o *overlay) IsOpen() bool {
	return o.open
}

func (o *overlay) move(delta int) {
	o.selected += delta

	if o.selected < 0 {
		o.selected = 0
	}

	if o.selected >= len(menuItems) {
		o.selected = len(menuItems) - 1
	}
}

// selectView points the selection at view; views outside the menu select the first item
func (o *overlay) selectView(view content.View) {
	o.selected = 0

	for i, item := range menuItems {
		if item.view == view {
			o.selected = i
			return
		}
	}
}
