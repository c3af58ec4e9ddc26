package raspador

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Ensure Parser implements DocumentParser.
var _ DocumentParser = (*Parser)(nil)

// Parser owns a set of named fields and assembles their values into records.
// Fields are consulted in declaration order. Once all fields are added a
// Parser may be used from multiple goroutines.
type Parser struct {
	id     string
	name   string
	names  []string
	fields map[string]*Field
}

// NewParser returns an empty parser with a fresh ID.
func NewParser(name string) *Parser {
	return &Parser{
		id:     uuid.New().String(),
		name:   name,
		fields: make(map[string]*Field),
	}
}

// ID returns the unique identifier of the parser.
func (p *Parser) ID() string { return p.id }

// Name returns the parser name, copied to every record it produces.
func (p *Parser) Name() string { return p.name }

// AddField declares a field under name and attaches it to the parser.
// Returns ECONFLICT if the name is already taken.
func (p *Parser) AddField(name string, f *Field) error {
	if name == "" {
		return Errorf(EINVALID, "field name required")
	}
	if f == nil {
		return Errorf(EINVALID, "field %q is nil", name)
	}
	if _, exists := p.fields[name]; exists {
		return Errorf(ECONFLICT, "field %q already declared", name)
	}

	f.AttachTo(p, name)
	p.fields[name] = f
	p.names = append(p.names, name)
	return nil
}

// MustAddField is like AddField but panics on error.
func (p *Parser) MustAddField(name string, f *Field) *Parser {
	if err := p.AddField(name, f); err != nil {
		panic(err)
	}
	return p
}

// Field returns the field declared under name.
func (p *Parser) Field(name string) (*Field, bool) {
	f, ok := p.fields[name]
	return f, ok
}

// Fields returns the declared field names in declaration order.
func (p *Parser) Fields() []string {
	return append([]string(nil), p.names...)
}

// Parse extracts a record from the lines of doc.
func (p *Parser) Parse(ctx context.Context, doc *Document) (*Record, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	values, err := p.ParseLines(ctx, doc.Lines())
	if err != nil {
		return nil, err
	}

	return &Record{
		DocumentID: doc.ID,
		Parser:     p.name,
		Source:     doc.Source,
		Fields:     p.Fields(),
		Values:     values,
	}, nil
}

// ParseLines feeds every line to every field and returns the values by field
// name. A scalar field keeps the first value it produces; a list field
// accumulates values across lines. Fields that produced nothing get their
// default, or are left out if they have none. The first conversion error
// aborts parsing.
func (p *Parser) ParseLines(ctx context.Context, lines []string) (map[string]any, error) {
	values := make(map[string]any, len(p.names))

	for n, line := range lines {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		for _, name := range p.names {
			f := p.fields[name]
			if _, done := values[name]; done && !f.List() {
				continue
			}

			v, ok, err := f.Extract(line)
			if err != nil {
				return nil, annotate(err, name, line, n+1)
			}
			if !ok {
				continue
			}

			if f.List() {
				values[name] = appendList(values[name], v)
			} else {
				values[name] = v
			}
		}
	}

	for _, name := range p.names {
		if _, ok := values[name]; ok {
			continue
		}
		if def := p.fields[name].Default(); def != nil {
			values[name] = def
		}
	}

	return values, nil
}

// annotate returns a copy of an application error carrying the field and
// line context, and wraps other errors with the same context. The original
// error is never modified, since a post-process callback may return a shared
// value.
func annotate(err error, name, line string, n int) error {
	var e *Error
	if errors.As(err, &e) {
		ec := *e
		ec.Field = name
		ec.Line = line
		ec.LineNo = n
		return &ec
	}
	return fmt.Errorf("line %d: field %q: %w", n, name, err)
}

// Must is a helper that wraps a call to a field constructor and panics if
// the error is non-nil. It is intended for schemas declared in code.
func Must(f *Field, err error) *Field {
	if err != nil {
		panic(err)
	}
	return f
}
