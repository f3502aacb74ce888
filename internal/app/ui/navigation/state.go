package navigation

import (
	"context"

	"github.com/looplab/fsm"

	"kadry/internal/app/ui/content"
	"kadry/internal/config/logger"
)

// FSM states
const (
	Idle      = "idle"
	Home      = "home"
	Article   = "article"
	Documents = "documents"
	Contacts  = "contacts"
)

// FSM events
const (
	ShowHome      = "show_home"
	ShowArticle   = "show_article"
	ShowDocuments = "show_documents"
	ShowContacts  = "show_contacts"
)

var allStates = []string{Idle, Home, Article, Documents, Contacts}

var viewStates = map[content.View]string{
	content.ViewHome:      Home,
	content.ViewArticle:   Article,
	content.ViewDocuments: Documents,
	content.ViewContacts:  Contacts,
}

var viewEvents = map[content.View]string{
	content.ViewHome:      ShowHome,
	content.ViewArticle:   ShowArticle,
	content.ViewDocuments: ShowDocuments,
	content.ViewContacts:  ShowContacts,
}

// newViewFSM creates the state machine tracking which view the region shows; every view is reachable from every state
func newViewFSM(log logger.Logger) *fsm.FSM {
	return fsm.NewFSM(
		Idle,
		fsm.Events{
			{Name: ShowHome, Src: allStates, Dst: Home},
			{Name: ShowArticle, Src: allStates, Dst: Article},
			{Name: ShowDocuments, Src: allStates, Dst: Documents},
			{Name: ShowContacts, Src: allStates, Dst: Contacts},
		},
		fsm.Callbacks{
			"after_event": func(ctx context.Context, e *fsm.Event) {
				log.Debug().Msgf("STATE view: %s → %s (trigger: %s)", e.Src, e.Dst, e.Event)
			},
		},
	)
}

// stateView maps an FSM state back to its view; Idle reads as Home
func stateView(state string) content.View {
	for v, s := range viewStates {
		if s == state {
			return v
		}
	}

	return content.ViewHome
}
