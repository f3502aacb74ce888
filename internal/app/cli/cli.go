//go:generate mockgen -source=cli.go -destination=cli_mock.go -package=cli
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"

	"kadry/internal/app/articles"
	"kadry/internal/app/errors"
	"kadry/internal/app/telemetry"
	"kadry/internal/app/ui/content"
	"kadry/internal/app/ui/format"
	"kadry/internal/app/ui/navigation"
	"kadry/internal/app/ui/wire"
	"kadry/internal/config"
	"kadry/internal/config/logger"
)

// Exit codes
const (
	exitOK    = 0
	exitError = 1
)

// CLI defines the interface for cli operations
type CLI interface {
	Execute() (int, error)
}

// cli represents the command-line interface for the application
type cli struct {
	opts     *Options
	cfg      *config.Config
	source   articles.Source
	factory  navigation.Factory
	ui       wire.UI
	reporter telemetry.Reporter
	out      io.Writer
	errOut   io.Writer
	styled   bool
	width    int
	log      logger.Logger
}

// NewCLI creates a new cli instance
func NewCLI(
	opts *Options,
	cfg *config.Config,
	source articles.Source,
	factory navigation.Factory,
	ui wire.UI,
	reporter telemetry.Reporter,
	log logger.Logger,
) CLI {
	c := &cli{
		opts:     opts,
		cfg:      cfg,
		source:   source,
		factory:  factory,
		ui:       ui,
		reporter: reporter,
		out:      os.Stdout,
		errOut:   os.Stderr,
		log:      log.WithComponent("CLI"),
	}

	if term.IsTerminal(os.Stdout.Fd()) {
		c.styled = true

		if width, _, err := term.GetSize(os.Stdout.Fd()); err == nil {
			c.width = width
		}
	}

	return c
}

// Execute runs the parsed command and returns the process exit code
func (c *cli) Execute() (int, error) {
	switch c.opts.Type {
	case CommandVersion:
		return c.handleVersion()
	case CommandHelp:
		return c.handleHelp()
	}

	ctx := context.Background()

	collection, err := c.source.Load(ctx)
	if err != nil {
		return c.fail(err)
	}

	c.log.Debug().Msgf("Loaded %d articles", collection.Len())

	switch c.opts.Type {
	case CommandUI:
		if c.opts.NoUI {
			return c.handleRender(collection, content.ViewHome.String(), "")
		}

		return c.handleUI(ctx, collection)
	case CommandRender:
		return c.handleRender(collection, c.opts.View, c.opts.ArticleID)
	case CommandList:
		return c.handleList(collection)
	default:
		return c.fail(fmt.Errorf("%w: %d", errors.ErrUnsupportedCommand, c.opts.Type))
	}
}

// handleUI runs the interactive board until the user quits
func (c *cli) handleUI(ctx context.Context, collection articles.Collection) (int, error) {
	program, err := c.ui(ctx, collection)
	if err != nil {
		return c.fail(fmt.Errorf("%w: %w", errors.ErrFailedToRunUI, err))
	}

	if _, err := program.Run(); err != nil {
		return c.fail(fmt.Errorf("%w: %w", errors.ErrFailedToRunUI, err))
	}

	return exitOK, nil
}

// handleRender drives a navigator into a buffer and prints what it rendered
func (c *cli) handleRender(collection articles.Collection, name, articleID string) (int, error) {
	view, ok := content.ParseView(name)
	if !ok {
		c.log.Warn().Err(fmt.Errorf("%w: %s", errors.ErrUnknownView, name)).Msg("Showing home instead")
		fmt.Fprintln(c.errOut, withSuggestion(fmt.Sprintf("Unknown view %q, showing home", name), name, viewNames))
	}

	buffer := navigation.NewBuffer()
	nav := c.factory(collection, buffer, nil)

	if view == content.ViewArticle {
		nav.SelectArticle(articleID)

		if nav.CurrentView() != content.ViewArticle {
			return c.fail(fmt.Errorf("%w: %s", errors.ErrArticleNotFound, withSuggestion(fmt.Sprintf("%q", articleID), articleID, articleIDs(collection))))
		}
	} else {
		nav.SelectView(view)
	}

	text := format.Content(buffer.Content(), format.Options{
		Width:       c.width,
		Focus:       -1,
		Styled:      c.styled,
		ShowTargets: true,
	}).Text

	fmt.Fprintln(c.out, text)

	return exitOK, nil
}

// handleList prints one line per article
func (c *cli) handleList(collection articles.Collection) (int, error) {
	all := collection.All()

	idWidth, dateWidth := 0, 0
	for _, a := range all {
		idWidth = max(idWidth, lipgloss.Width(a.ID))
		dateWidth = max(dateWidth, lipgloss.Width(a.Date))
	}

	for _, a := range all {
		id := pad(a.ID, idWidth)
		date := pad(a.Date, dateWidth)

		if c.styled {
			id = listIDStyle.Render(id)
			date = listDateStyle.Render(date)
		}

		fmt.Fprintf(c.out, "%s  %s  %s\n", id, date, a.Title)
	}

	return exitOK, nil
}

// handleVersion displays version information
func (c *cli) handleVersion() (int, error) {
	c.log.Debug().Msg("Displaying version information")

	if c.styled {
		fmt.Fprintln(c.out, RenderTitle())
		return exitOK, nil
	}

	fmt.Fprintf(c.out, "%s v%s\n", config.AppName, config.Version)

	return exitOK, nil
}

// handleHelp displays help information
func (c *cli) handleHelp() (int, error) {
	c.log.Debug().Msg("Displaying help information")
	fmt.Fprint(c.out, RenderUsage())

	return exitOK, nil
}

// fail logs err, reports unexpected failures and prints it for the user
func (c *cli) fail(err error) (int, error) {
	c.log.Error().Err(err).Msg("Command failed")

	if !isUsageError(err) {
		c.reporter.Capture(err)
	}

	fmt.Fprintln(c.errOut, RenderError(err))

	return exitError, err
}

// isUsageError reports errors caused by what the user asked for rather than by the program
func isUsageError(err error) bool {
	return errors.Is(err, errors.ErrArticleNotFound) ||
		errors.Is(err, errors.ErrUnsupportedCommand)
}

func articleIDs(collection articles.Collection) []string {
	all := collection.All()
	ids := make([]string, 0, len(all))

	for _, a := range all {
		ids = append(ids, a.ID)
	}

	return ids
}

func pad(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + fmt.Sprintf("%*s", gap, "")
	}

	return s
}
