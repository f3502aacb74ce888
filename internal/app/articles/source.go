//go:generate mockgen -source=source.go -destination=source_mock.go -package=articles
package articles

import (
	"context"

	"kadry/internal/config"
	"kadry/internal/config/logger"
)

// Source loads the article collection once at startup
type Source interface {
	Load(ctx context.Context) (Collection, error)
}

// NewSource picks the configured source: a feed, a file, or nothing
func NewSource(cfg *config.Config, log logger.Logger) Source {
	switch {
	case cfg.Articles.Feed != "":
		return NewFeedSource(cfg.Articles.Feed, cfg.Articles.Timeout, log)
	case cfg.Articles.Path != "":
		return NewFileSource(cfg.Articles.Path)
	default:
		return emptySource{}
	}
}

type emptySource struct{}

func (emptySource) Load(context.Context) (Collection, error) {
	return NewCollection(nil)
}
