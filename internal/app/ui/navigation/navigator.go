//go:generate mockgen -source=navigator.go -destination=navigator_mock.go -package=navigation
package navigation

import (
	"context"
	"errors"

	"github.com/looplab/fsm"

	"kadry/internal/app/articles"
	"kadry/internal/app/ui/content"
	"kadry/internal/app/ui/render"
	"kadry/internal/config/logger"
)

// Navigator owns which view is shown and routes triggers back into rendering
type Navigator interface {
	// Init selects Home; only the first call has an effect
	Init()
	// SelectView renders view into the region; undefined views render Home
	SelectView(view content.View)
	// SelectArticle renders the article detail; unknown IDs leave the region untouched
	SelectArticle(id string)
	// ToggleMenu opens or closes the overlay menu if there is one
	ToggleMenu()
	// CurrentView returns the view last rendered
	CurrentView() content.View
	// CurrentArticle returns the article shown while CurrentView is ViewArticle
	CurrentArticle() string
}

// Factory builds a navigator bound to an embedding's region and menu
type Factory func(collection articles.Collection, region Region, menu Menu) Navigator

type navigator struct {
	region      Region
	menu        Menu
	renderer    *render.Renderer
	state       *fsm.FSM
	article     string
	initialized bool
	log         logger.Logger
}

// NewFactory returns a Factory sharing the given logger
func NewFactory(log logger.Logger) Factory {
	return func(collection articles.Collection, region Region, menu Menu) Navigator {
		return NewNavigator(collection, region, menu, log)
	}
}

// NewNavigator creates a navigator; menu may be nil when the embedding has none
func NewNavigator(collection articles.Collection, region Region, menu Menu, log logger.Logger) Navigator {
	log = log.WithComponent("NAV")

	n := &navigator{
		region: region,
		menu:   menu,
		state:  newViewFSM(log),
		log:    log,
	}
	n.renderer = render.New(collection, n)

	return n
}

func (n *navigator) Init() {
	if n.initialized {
		return
	}

	n.initialized = true
	n.SelectView(content.ViewHome)
}

func (n *navigator) SelectView(view content.View) {
	defer n.closeMenu()

	target := view
	if target == content.ViewArticle || !target.Known() {
		target = content.ViewHome
	}

	if target != view {
		n.log.Debug().Msgf("View %s is not selectable, showing %s", view, target)
	}

	var c content.Content

	switch target {
	case content.ViewDocuments:
		c = n.renderer.Documents()
	case content.ViewContacts:
		c = n.renderer.Contacts()
	default:
		c = n.renderer.Home()
	}

	n.region.Replace(c)
	n.article = ""
	n.transition(target)
}

func (n *navigator) SelectArticle(id string) {
	defer n.closeMenu()

	c, ok := n.renderer.Article(id)
	if !ok {
		n.log.Warn().Str("article", id).Msg("Article not found, keeping current view")
		return
	}

	n.region.Replace(c)
	n.article = id
	n.transition(content.ViewArticle)
}

func (n *navigator) ToggleMenu() {
	if n.menu == nil {
		return
	}

	if n.menu.IsOpen() {
		n.menu.Close()
		return
	}

	n.menu.Open()
}

func (n *navigator) CurrentView() content.View {
	return stateView(n.state.Current())
}

func (n *navigator) CurrentArticle() string {
	return n.article
}

func (n *navigator) transition(view content.View) {
	err := n.state.Event(context.Background(), viewEvents[view])
	if err == nil {
		return
	}

	var noTransition fsm.NoTransitionError
	if errors.As(err, &noTransition) {
		return
	}

	n.log.Error().Err(err).Msgf("Failed to switch to %s", view)
}

func (n *navigator) closeMenu() {
	if n.menu == nil {
		return
	}

	n.menu.Close()
}
