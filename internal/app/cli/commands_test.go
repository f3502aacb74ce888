package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kadry/internal/app/errors"
)

func Test_Parse(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected Options
	}{
		{
			name:     "no args - board",
			args:     []string{},
			expected: Options{Type: CommandUI},
		},
		{
			name:     "--no-ui flag",
			args:     []string{"--no-ui"},
			expected: Options{Type: CommandUI, NoUI: true},
		},
		{
			name:     "articles and config flags",
			args:     []string{"-a", "news.yaml", "--config", "custom.yaml"},
			expected: Options{Type: CommandUI, ArticlesPath: "news.yaml", ConfigPath: "custom.yaml"},
		},
		{
			name:     "feed flag",
			args:     []string{"--feed", "https://example.com/rss"},
			expected: Options{Type: CommandUI, Feed: "https://example.com/rss"},
		},
		{
			name:     "render without view",
			args:     []string{"render"},
			expected: Options{Type: CommandRender, View: "home"},
		},
		{
			name:     "render documents",
			args:     []string{"render", "documents"},
			expected: Options{Type: CommandRender, View: "documents"},
		},
		{
			name:     "render article with id",
			args:     []string{"render", "article", "a1"},
			expected: Options{Type: CommandRender, View: "article", ArticleID: "a1"},
		},
		{
			name:     "show alias with persistent flag after args",
			args:     []string{"show", "contacts", "-a", "news.yaml"},
			expected: Options{Type: CommandRender, View: "contacts", ArticlesPath: "news.yaml"},
		},
		{
			name:     "list command",
			args:     []string{"list"},
			expected: Options{Type: CommandList},
		},
		{
			name:     "ls alias with feed",
			args:     []string{"ls", "-f", "feed.xml"},
			expected: Options{Type: CommandList, Feed: "feed.xml"},
		},
		{
			name:     "version command",
			args:     []string{"version"},
			expected: Options{Type: CommandVersion},
		},
		{
			name:     "--version flag",
			args:     []string{"--version"},
			expected: Options{Type: CommandVersion},
		},
		{
			name:     "-v flag",
			args:     []string{"-v"},
			expected: Options{Type: CommandVersion},
		},
		{
			name:     "--help flag",
			args:     []string{"--help"},
			expected: Options{Type: CommandHelp},
		},
		{
			name:     "subcommand help",
			args:     []string{"render", "--help"},
			expected: Options{Type: CommandHelp},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Parse(tt.args)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, *result)
		})
	}
}

func Test_Parse_ArticleIDWithOtherView(t *testing.T) {
	result, err := Parse([]string{"render", "documents", "a1"})

	require.ErrorIs(t, err, errors.ErrUnexpectedArticleID)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "a1 given to view documents")
}

func Test_Parse_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown command", args: []string{"unknown"}},
		{name: "unknown flag", args: []string{"--unknown"}},
		{name: "render with too many args", args: []string{"render", "article", "a1", "extra"}},
		{name: "render home with article id", args: []string{"render", "home", "a1"}},
		{name: "render unknown view with article id", args: []string{"render", "payroll", "a1"}},
		{name: "list with args", args: []string{"list", "extra"}},
		{name: "version with args", args: []string{"version", "extra"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Parse(tt.args)

			assert.Error(t, err)
			assert.Nil(t, result)
		})
	}
}
