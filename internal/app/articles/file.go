package articles

import (
	"context"
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"kadry/internal/app/errors"
)

// FileSource reads articles from a YAML document, either a bare list or an "articles" key
type FileSource struct {
	path string
}

// NewFileSource creates a source for the given file
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Load reads and decodes the file
func (s *FileSource) Load(ctx context.Context) (Collection, error) {
	if err := ctx.Err(); err != nil {
		return Collection{}, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return Collection{}, fmt.Errorf("%w: %w", errors.ErrFailedToReadArticles, err)
	}

	items, err := decodeArticles(data)
	if err != nil {
		return Collection{}, fmt.Errorf("%w: %s: %w", errors.ErrFailedToParseArticles, s.path, err)
	}

	return NewCollection(items)
}

func decodeArticles(data []byte) ([]Article, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}

	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, nil
	}

	doc := root.Content[0]

	switch doc.Kind {
	case yaml.SequenceNode:
		var items []Article
		if err := doc.Decode(&items); err != nil {
			return nil, err
		}

		return items, nil
	case yaml.MappingNode:
		var wrapped struct {
			Articles []Article `yaml:"articles"`
		}
		if err := doc.Decode(&wrapped); err != nil {
			return nil, err
		}

		return wrapped.Articles, nil
	default:
		return nil, fmt.Errorf("unexpected document at line %d", doc.Line)
	}
}
