package articles

import (
	"fmt"
	"strings"

	"kadry/internal/app/errors"
)

// Article is one news entry shown on the board
type Article struct {
	ID               string `yaml:"id"`
	Title            string `yaml:"title"`
	ShortDescription string `yaml:"shortDescription"`
	FullContent      string `yaml:"fullContent"`
	Date             string `yaml:"date"`
	Image            string `yaml:"image"`
}

// Collection is an ordered, read-only set of articles keyed by ID
type Collection struct {
	items []Article
	index map[string]int
}

// NewCollection builds a collection in the given order, rejecting blank and duplicate IDs.
// IDs are stored as given so lookups stay exact.
func NewCollection(items []Article) (Collection, error) {
	c := Collection{
		items: make([]Article, 0, len(items)),
		index: make(map[string]int, len(items)),
	}

	for i, item := range items {
		if strings.TrimSpace(item.ID) == "" {
			return Collection{}, fmt.Errorf("%w: entry %d", errors.ErrEmptyArticleID, i)
		}

		if _, exists := c.index[item.ID]; exists {
			return Collection{}, fmt.Errorf("%w: %s", errors.ErrDuplicateArticleID, item.ID)
		}

		c.index[item.ID] = len(c.items)
		c.items = append(c.items, item)
	}

	return c, nil
}

// All returns a copy of the articles in presentation order
func (c Collection) All() []Article {
	out := make([]Article, len(c.items))
	copy(out, c.items)

	return out
}

// Len returns the number of articles
func (c Collection) Len() int {
	return len(c.items)
}

// Find returns the article whose ID matches exactly
func (c Collection) Find(id string) (Article, bool) {
	i, ok := c.index[id]
	if !ok {
		return Article{}, false
	}

	return c.items[i], true
}
