package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"kadry/internal/app/errors"
	"kadry/internal/app/ui/content"
)

// CommandType represents the type of CLI command
type CommandType int

// Command type values
const (
	CommandUI CommandType = iota
	CommandRender
	CommandList
	CommandVersion
	CommandHelp
)

// Options contains the parsed command-line arguments
type Options struct {
	Type         CommandType
	ConfigPath   string
	ArticlesPath string
	Feed         string
	NoUI         bool
	View         string
	ArticleID    string
}

// rootFlags holds flag values for the root command
type rootFlags struct {
	version bool
}

// Parse parses command-line args and returns a Options struct
func Parse(args []string) (*Options, error) {
	result := &Options{
		Type: CommandUI,
	}

	var flags rootFlags

	root := buildRootCommand(result, &flags)
	root.AddCommand(
		buildRenderCommand(result),
		buildListCommand(result),
		buildVersionCommand(result),
	)

	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		return nil, err
	}

	if flags.version {
		result.Type = CommandVersion
	}

	return result, nil
}

// buildRootCommand creates the root cobra command
func buildRootCommand(result *Options, flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kadry",
		Short: "HR and payroll notice board in the terminal",
		Long: `Kadry shows HR and payroll news, the index of application forms
and contact details, either as an interactive board or as plain text.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandUI
		},
	}

	cmd.PersistentFlags().StringVarP(&result.ConfigPath, "config", "c", "", "Path to the config file")
	cmd.PersistentFlags().StringVarP(&result.ArticlesPath, "articles", "a", "", "Read articles from a YAML file")
	cmd.PersistentFlags().StringVarP(&result.Feed, "feed", "f", "", "Read articles from an RSS or Atom feed")
	cmd.PersistentFlags().BoolVar(&result.NoUI, "no-ui", false, "Print the home page instead of starting the board")
	cmd.Flags().BoolVarP(&flags.version, "version", "v", false, "Show version information")

	cmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		result.Type = CommandHelp
	})

	return cmd
}

// buildRenderCommand creates the render subcommand
func buildRenderCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "render [view] [article-id]",
		Aliases: []string{"show"},
		Short:   "Print a page: home, article, documents or contacts",
		Args:    cobra.MatchAll(cobra.MaximumNArgs(2), articleIDOnlyForArticle),
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandRender
			result.View = "home"

			if len(args) > 0 {
				result.View = args[0]
			}

			if len(args) > 1 {
				result.ArticleID = args[1]
			}
		},
	}

	return cmd
}

// articleIDOnlyForArticle rejects an id given to any view but article
func articleIDOnlyForArticle(cmd *cobra.Command, args []string) error {
	if len(args) < 2 {
		return nil
	}

	if view, ok := content.ParseView(args[0]); ok && view == content.ViewArticle {
		return nil
	}

	return fmt.Errorf("%w: %s given to view %s", errors.ErrUnexpectedArticleID, args[1], args[0])
}

// buildListCommand creates the list subcommand
func buildListCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List article IDs, dates and titles",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandList
		},
	}

	return cmd
}

// buildVersionCommand creates the version subcommand
func buildVersionCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandVersion
		},
	}

	return cmd
}
