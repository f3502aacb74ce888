package content

import "strings"

// View identifies one of the pages the content region can show
type View int

// View values
const (
	ViewHome View = iota
	ViewArticle
	ViewDocuments
	ViewContacts
)

var viewNames = map[View]string{
	ViewHome:      "home",
	ViewArticle:   "article",
	ViewDocuments: "documents",
	ViewContacts:  "contacts",
}

// String returns the view name
func (v View) String() string {
	if name, ok := viewNames[v]; ok {
		return name
	}

	return "unknown"
}

// Known reports whether v is one of the defined views
func (v View) Known() bool {
	_, ok := viewNames[v]
	return ok
}

// Normalize maps any undefined view to Home
func (v View) Normalize() View {
	if !v.Known() {
		return ViewHome
	}

	return v
}

// ParseView resolves a view name; unknown names resolve to Home and report false
func ParseView(name string) (View, bool) {
	name = strings.ToLower(strings.TrimSpace(name))

	switch name {
	case "news":
		return ViewHome, true
	case "docs":
		return ViewDocuments, true
	}

	for v, n := range viewNames {
		if n == name {
			return v, true
		}
	}

	return ViewHome, false
}
