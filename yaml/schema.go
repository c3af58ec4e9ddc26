// Package yaml loads field schemas from YAML documents.
package yaml

import (
	"fmt"
	"io"

	"github.com/fwojciec/raspador"
	"gopkg.in/yaml.v3"
)

// Ensure SchemaLoader implements raspador.SchemaLoader at compile time.
var _ raspador.SchemaLoader = (*SchemaLoader)(nil)

// SchemaLoader reads schemas of the form:
//
//	name: receipt
//	fields:
//	  - name: coo
//	    kind: integer
//	    pattern: 'COO:(\d+)'
//	  - name: reductions
//	    kind: integer
//	    pattern: 'Contador de Reduç(ão|ões) Z:\s*(\d+)'
//	    groups: 1
//	  - name: issued
//	    kind: date
//	    pattern: '^Data .*: (\S+)'
//	    format: '%d/%m/%Y'
type SchemaLoader struct{}

// NewSchemaLoader creates a new SchemaLoader.
func NewSchemaLoader() *SchemaLoader {
	return &SchemaLoader{}
}

type schemaFile struct {
	Name   string      `yaml:"name"`
	Fields []fieldFile `yaml:"fields"`
}

type fieldFile struct {
	Name    string `yaml:"name"`
	Kind    string `yaml:"kind"`
	Pattern string `yaml:"pattern"`
	Groups  groups `yaml:"groups"`
	Default any    `yaml:"default"`
	List    bool   `yaml:"list"`
	Format  string `yaml:"format"`
}

// groups accepts either a single index or a list of indices.
type groups []int

func (g *groups) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var i int
		if err := value.Decode(&i); err != nil {
			return err
		}
		*g = groups{i}
		return nil
	case yaml.SequenceNode:
		var s []int
		if err := value.Decode(&s); err != nil {
			return err
		}
		*g = s
		return nil
	}
	return fmt.Errorf("line %d: groups must be an integer or a list of integers", value.Line)
}

// LoadSchema decodes and validates a schema. Field kinds default to string.
func (l *SchemaLoader) LoadSchema(r io.Reader) (*raspador.Schema, error) {
	var f schemaFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			return nil, raspador.Errorf(raspador.EINVALID, "empty schema")
		}
		return nil, raspador.Errorf(raspador.EINVALID, "invalid schema: %s", err)
	}

	s := &raspador.Schema{Name: f.Name}
	for _, ff := range f.Fields {
		kind := raspador.KindString
		if ff.Kind != "" {
			k, err := raspador.ParseKind(ff.Kind)
			if err != nil {
				return nil, err
			}
			kind = k
		}
		s.Fields = append(s.Fields, raspador.FieldSpec{
			Name:    ff.Name,
			Kind:    kind,
			Pattern: ff.Pattern,
			Groups:  ff.Groups,
			Default: ff.Default,
			List:    ff.List,
			Format:  ff.Format,
		})
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}
