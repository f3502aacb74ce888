package wire

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"kadry/internal/app/articles"
	"kadry/internal/app/opener"
	"kadry/internal/app/ui/content"
	"kadry/internal/app/ui/navigation"
	"kadry/internal/config"
	"kadry/internal/config/logger"
)

func Test_NewUI(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	params := UIParams{
		Factory: navigation.NewFactory(logger.NewNopLogger()),
		Opener:  opener.NewMockOpener(ctrl),
		Config:  config.DefaultConfig(),
		Logger:  logger.NewNopLogger(),
	}

	factory := NewUI(params)
	assert.NotNil(t, factory)
}

func Test_UI_CreateProgram(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	collection, err := articles.NewCollection([]articles.Article{{ID: "a1", Title: "First"}})
	require.NoError(t, err)

	tests := []struct {
		name string
		menu bool
	}{
		{name: "With menu", menu: true},
		{name: "Without menu", menu: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var captured navigation.Menu

			mockLogger := logger.NewMockLogger(ctrl)
			mockLogger.EXPECT().WithComponent("UI").Return(mockLogger)
			mockLogger.EXPECT().Debug().Return(nil).AnyTimes()

			mockNavigator := navigation.NewMockNavigator(ctrl)
			mockNavigator.EXPECT().Init()

			cfg := config.DefaultConfig()
			cfg.UI.Menu = tt.menu

			params := UIParams{
				Factory: func(c articles.Collection, region navigation.Region, menu navigation.Menu) navigation.Navigator {
					assert.Equal(t, 1, c.Len())
					assert.NotNil(t, region)

					captured = menu

					return mockNavigator
				},
				Opener: opener.NewMockOpener(ctrl),
				Config: cfg,
				Logger: mockLogger,
			}

			program, err := NewUI(params)(context.Background(), collection)

			require.NoError(t, err)
			assert.NotNil(t, program)
			assert.Equal(t, tt.menu, captured != nil)
		})
	}
}

func Test_UI_ShowsHome(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var nav navigation.Navigator

	factory := navigation.NewFactory(logger.NewNopLogger())

	params := UIParams{
		Factory: func(c articles.Collection, region navigation.Region, menu navigation.Menu) navigation.Navigator {
			nav = factory(c, region, menu)
			return nav
		},
		Opener: opener.NewMockOpener(ctrl),
		Config: config.DefaultConfig(),
		Logger: logger.NewNopLogger(),
	}

	_, err := NewUI(params)(context.Background(), articles.Collection{})
	require.NoError(t, err)

	require.NotNil(t, nav)
	assert.Equal(t, content.ViewHome, nav.CurrentView())
}

func Test_Module(t *testing.T) {
	assert.NotNil(t, Module)
}
