package errors

import (
	"errors"
)

var (
	ErrFailedToReadConfig  = errors.New("failed to read config file")
	ErrFailedToParseConfig = errors.New("failed to parse config file")
	ErrInvalidConfig       = errors.New("invalid configuration")

	ErrInvalidArticlesTimeout = errors.New("articles timeout must not be negative")
	ErrConflictingSources     = errors.New("articles path and feed are mutually exclusive")

	ErrFailedToReadArticles  = errors.New("failed to read articles")
	ErrFailedToParseArticles = errors.New("failed to parse articles")
	ErrFailedToFetchFeed     = errors.New("failed to fetch articles feed")
	ErrEmptyArticleID        = errors.New("article id is empty")
	ErrDuplicateArticleID    = errors.New("duplicate article id")

	ErrArticleNotFound = errors.New("article not found")
	ErrUnknownView     = errors.New("unknown view")

	ErrUnexpectedArticleID = errors.New("article id is only accepted by the article view")

	ErrFailedToRunUI      = errors.New("failed to run UI")
	ErrFailedToOpenLink   = errors.New("failed to open link")
	ErrUnsupportedCommand = errors.New("unsupported command")
)

var (
	As  = errors.As
	Is  = errors.Is
	New = errors.New
)
