package mock

import (
	"context"
	"io"

	"github.com/fwojciec/raspador"
)

var _ raspador.DocumentSource = (*DocumentSource)(nil)

// DocumentSource is a mock implementation of raspador.DocumentSource.
type DocumentSource struct {
	DocumentsFn func(ctx context.Context) ([]*raspador.Document, error)
}

func (s *DocumentSource) Documents(ctx context.Context) ([]*raspador.Document, error) {
	return s.DocumentsFn(ctx)
}

var _ raspador.DocumentParser = (*DocumentParser)(nil)

// DocumentParser is a mock implementation of raspador.DocumentParser.
type DocumentParser struct {
	ParseFn func(ctx context.Context, doc *raspador.Document) (*raspador.Record, error)
}

func (p *DocumentParser) Parse(ctx context.Context, doc *raspador.Document) (*raspador.Record, error) {
	return p.ParseFn(ctx, doc)
}

var _ raspador.DuplicateFilter = (*DuplicateFilter)(nil)

// DuplicateFilter is a mock implementation of raspador.DuplicateFilter.
type DuplicateFilter struct {
	SeenFn func(key string) bool
}

func (f *DuplicateFilter) Seen(key string) bool {
	return f.SeenFn(key)
}

var _ raspador.SchemaLoader = (*SchemaLoader)(nil)

// SchemaLoader is a mock implementation of raspador.SchemaLoader.
type SchemaLoader struct {
	LoadSchemaFn func(r io.Reader) (*raspador.Schema, error)
}

func (l *SchemaLoader) LoadSchema(r io.Reader) (*raspador.Schema, error) {
	return l.LoadSchemaFn(r)
}
