package articles

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"kadry/internal/app/errors"
	"kadry/internal/config"
	"kadry/internal/config/logger"
)

const (
	feedAcceptHeader = "application/atom+xml, application/rss+xml, application/feed+json, application/xml;q=0.9, text/xml;q=0.8, */*;q=0.5"
	feedUserAgent    = "kadry/" + config.Version
)

type acceptTransport struct {
	base http.RoundTripper
}

func (t acceptTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}

	clone := req.Clone(req.Context())
	if clone.Header.Get("Accept") == "" {
		clone.Header.Set("Accept", feedAcceptHeader)
	}

	return base.RoundTrip(clone)
}

// ParserFunc fetches and parses a feed location; replaced in tests
var ParserFunc = defaultParser

func defaultParser(ctx context.Context, location string) (*gofeed.Feed, error) {
	fp := gofeed.NewParser()

	if !isRemote(location) {
		f, err := os.Open(location)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		return fp.Parse(f)
	}

	fp.UserAgent = feedUserAgent
	fp.Client = &http.Client{Transport: acceptTransport{base: http.DefaultTransport}}

	return fp.ParseURLWithContext(location, ctx)
}

func isRemote(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}

// FeedSource reads articles from an RSS, Atom or JSON feed given by URL or file path
type FeedSource struct {
	location string
	timeout  time.Duration
	log      logger.Logger
}

// NewFeedSource creates a feed source; a zero timeout means no deadline
func NewFeedSource(location string, timeout time.Duration, log logger.Logger) *FeedSource {
	return &FeedSource{
		location: strings.TrimSpace(location),
		timeout:  timeout,
		log:      log.WithComponent("FEED"),
	}
}

// Load fetches the feed and maps its items to articles in feed order
func (s *FeedSource) Load(ctx context.Context) (Collection, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	parsed, err := ParserFunc(ctx, s.location)
	if err != nil {
		return Collection{}, fmt.Errorf("%w: %s: %w", errors.ErrFailedToFetchFeed, s.location, err)
	}

	return NewCollection(s.articles(parsed.Items))
}

// articles maps feed items, skipping ones without any identity and repeats of an earlier ID
func (s *FeedSource) articles(feedItems []*gofeed.Item) []Article {
	items := make([]Article, 0, len(feedItems))
	seen := make(map[string]bool, len(feedItems))

	for i, item := range feedItems {
		if item == nil {
			continue
		}

		article := fromFeedItem(item)

		if article.ID == "" {
			s.log.Warn().Int("item", i).Msg("Skipping feed item without guid, link or title")
			continue
		}

		if seen[article.ID] {
			s.log.Warn().Str("article", article.ID).Msg("Skipping feed item with repeated ID")
			continue
		}

		seen[article.ID] = true
		items = append(items, article)
	}

	return items
}

func fromFeedItem(item *gofeed.Item) Article {
	return Article{
		ID:               firstNonEmpty(item.GUID, item.Link, item.Title),
		Title:            strings.TrimSpace(item.Title),
		ShortDescription: strings.TrimSpace(item.Description),
		FullContent:      strings.TrimSpace(firstNonEmpty(item.Content, item.Description)),
		Date:             itemDate(item),
		Image:            itemImage(item),
	}
}

func itemDate(item *gofeed.Item) string {
	switch {
	case item.PublishedParsed != nil:
		return item.PublishedParsed.Format(config.DateLayout)
	case item.UpdatedParsed != nil:
		return item.UpdatedParsed.Format(config.DateLayout)
	default:
		return firstNonEmpty(item.Published, item.Updated)
	}
}

func itemImage(item *gofeed.Item) string {
	if item.Image != nil && item.Image.URL != "" {
		return item.Image.URL
	}

	for _, enc := range item.Enclosures {
		if enc != nil && strings.HasPrefix(enc.Type, "image/") {
			return enc.URL
		}
	}

	return ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}

	return ""
}
