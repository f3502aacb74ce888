package wire

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/fx"

	"kadry/internal/app/articles"
	"kadry/internal/app/opener"
	"kadry/internal/app/ui/navigation"
	"kadry/internal/app/ui/screen"
	"kadry/internal/config"
	"kadry/internal/config/logger"
)

// UI creates a Bubble Tea program for the TUI
type UI func(ctx context.Context, collection articles.Collection) (*tea.Program, error)

// Module aggregates all UI modules and provides the UI factory
var Module = fx.Options(
	navigation.Module,
	fx.Provide(NewUI),
)

// UIParams contains dependencies for creating the UI factory
type UIParams struct {
	fx.In

	Factory navigation.Factory
	Opener  opener.Opener
	Config  *config.Config
	Logger  logger.Logger
}

// NewUI creates a factory function for constructing Bubble Tea programs
func NewUI(params UIParams) UI {
	return func(ctx context.Context, collection articles.Collection) (*tea.Program, error) {
		model := screen.NewModel(
			collection,
			params.Factory,
			params.Opener,
			params.Config.UI.Menu,
			params.Logger,
		)

		p := tea.NewProgram(
			model,
			tea.WithAltScreen(),
			tea.WithContext(ctx),
		)

		params.Logger.Debug().Msg("TUI: Program created via factory")

		return p, nil
	}
}
