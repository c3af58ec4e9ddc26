package raspador

import "io"

// FieldSpec is the declarative form of a Field.
type FieldSpec struct {
	Name    string `json:"name"`
	Kind    Kind   `json:"kind"`
	Pattern string `json:"pattern"`
	Groups  []int  `json:"groups,omitempty"`
	Default any    `json:"default,omitempty"`
	List    bool   `json:"list,omitempty"`
	Format  string `json:"format,omitempty"`
}

// Field builds the field described by s.
func (s FieldSpec) Field() (*Field, error) {
	var opts []FieldOption
	if len(s.Groups) > 0 {
		opts = append(opts, WithGroups(s.Groups...))
	}
	if s.Default != nil {
		opts = append(opts, WithDefault(s.Default))
	}
	if s.List {
		opts = append(opts, WithList())
	}
	if s.Format != "" {
		opts = append(opts, WithFormat(s.Format))
	}

	f, err := NewField(s.Kind, s.Pattern, opts...)
	if err != nil {
		if e, ok := err.(*Error); ok {
			e.Field = s.Name
		}
		return nil, err
	}
	return f, nil
}

// Schema describes a record type as a named list of fields.
type Schema struct {
	Name   string      `json:"name"`
	Fields []FieldSpec `json:"fields"`
}

// Validate returns an error if the schema contains invalid fields.
func (s *Schema) Validate() error {
	if s.Name == "" {
		return Errorf(EINVALID, "schema name required")
	}
	if len(s.Fields) == 0 {
		return Errorf(EINVALID, "schema %q has no fields", s.Name)
	}
	return nil
}

// Build returns a parser declaring every field of the schema.
func (s *Schema) Build() (*Parser, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	p := NewParser(s.Name)
	for _, spec := range s.Fields {
		f, err := spec.Field()
		if err != nil {
			return nil, err
		}
		if err := p.AddField(spec.Name, f); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// SchemaLoader reads a schema definition.
type SchemaLoader interface {
	LoadSchema(r io.Reader) (*Schema, error)
}
