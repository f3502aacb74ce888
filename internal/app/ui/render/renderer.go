//go:generate mockgen -source=renderer.go -destination=renderer_mock.go -package=render
package render

import (
	"kadry/internal/app/articles"
	"kadry/internal/app/ui/content"
)

// Router receives navigation requests raised by rendered triggers
type Router interface {
	SelectView(view content.View)
	SelectArticle(id string)
}

// Renderer maps a view and the article collection to content; it holds no mutable state
type Renderer struct {
	articles articles.Collection
	router   Router
}

// New creates a renderer whose triggers call back into router
func New(collection articles.Collection, router Router) *Renderer {
	return &Renderer{articles: collection, router: router}
}

// Home renders one card per article in collection order
func (r *Renderer) Home() content.Content {
	all := r.articles.All()
	cards := make([]content.Card, 0, len(all))

	for _, a := range all {
		id := a.ID

		cards = append(cards, content.Card{
			ArticleID: id,
			Title:     a.Title,
			Summary:   a.ShortDescription,
			Date:      a.Date,
			Image:     a.Image,
			Open: content.NewTrigger(a.Title, id, func() {
				r.router.SelectArticle(id)
			}),
		})
	}

	c := content.Content{
		View:  content.ViewHome,
		Title: HomeTitle,
		Cards: cards,
	}

	if len(cards) == 0 {
		c.Empty = EmptyHomeLabel
	}

	return c
}

// Article renders the detail of the article with exactly this id, reporting false when there is none
func (r *Renderer) Article(id string) (content.Content, bool) {
	a, ok := r.articles.Find(id)
	if !ok {
		return content.Content{}, false
	}

	back := content.NewTrigger(BackLabel, content.ViewHome.String(), func() {
		r.router.SelectView(content.ViewHome)
	})

	return content.Content{
		View:  content.ViewArticle,
		Title: a.Title,
		Detail: &content.Detail{
			ArticleID: a.ID,
			Title:     a.Title,
			Date:      a.Date,
			Image:     a.Image,
			Body:      a.FullContent,
		},
		Back: &back,
	}, true
}

// Documents renders the fixed index of application forms
func (r *Renderer) Documents() content.Content {
	return content.Content{
		View:     content.ViewDocuments,
		Title:    DocumentsTitle,
		Sections: documentSections(),
	}
}

// Contacts renders the fixed contact page
func (r *Renderer) Contacts() content.Content {
	return content.Content{
		View:     content.ViewContacts,
		Title:    ContactsTitle,
		Sections: contactSections(),
	}
}
