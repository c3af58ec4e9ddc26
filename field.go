package raspador

import (
	"regexp"
	"time"

	"cloud.google.com/go/civil"
)

// Kind identifies the type of value a Field produces.
type Kind string

// Kind constants.
const (
	KindString   Kind = "string"
	KindInteger  Kind = "integer"
	KindFloat    Kind = "float"
	KindBoolean  Kind = "boolean"
	KindDate     Kind = "date"
	KindDateTime Kind = "datetime"
)

// Default date formats, in strftime notation.
const (
	DefaultDateFormat     = "%d/%m/%Y"
	DefaultDateTimeFormat = "%d/%m/%Y %H:%M:%S"
)

// ParseKind returns the Kind named by s.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindString, KindInteger, KindFloat, KindBoolean, KindDate, KindDateTime:
		return k, nil
	}
	return "", Errorf(ECONFIG, "unknown field kind %q", s)
}

// PostProcessFunc transforms a converted value before it is returned by a
// field. It must not have side effects: fields may be shared between
// goroutines. Returning a nil value means the line contributes no value.
type PostProcessFunc func(v any) (any, error)

// Owner is implemented by aggregators that declare fields.
type Owner interface {
	ID() string
}

// FieldOption configures a Field.
type FieldOption func(*Field)

// WithDefault sets the value an aggregator reports when no line of a
// document produced a value for the field.
func WithDefault(v any) FieldOption {
	return func(f *Field) {
		f.def = v
	}
}

// WithList enables list mode: scalar results are wrapped in a one-element
// slice and aggregators accumulate values across lines.
func WithList() FieldOption {
	return func(f *Field) {
		f.list = true
	}
}

// WithPostProcess sets a callback invoked with the converted value.
// A nil callback makes NewField fail.
func WithPostProcess(fn PostProcessFunc) FieldOption {
	return func(f *Field) {
		f.post = fn
		f.hasPost = true
	}
}

// WithGroup restricts extraction to a single capture group (zero-based).
func WithGroup(i int) FieldOption {
	return WithGroups(i)
}

// WithGroups restricts extraction to the given capture groups (zero-based),
// in the given order.
func WithGroups(indices ...int) FieldOption {
	return func(f *Field) {
		f.groups = append([]int(nil), indices...)
	}
}

// WithFormat sets the strftime-style format used by date and date-time
// fields. Supported directives: %d %m %Y %y %H %I %M %S %p %b %B %a %A %j %z %Z %%.
func WithFormat(format string) FieldOption {
	return func(f *Field) {
		f.format = format
	}
}

// Field extracts one typed value from a line of text using a regular
// expression. A Field holds no state between lines and is immutable once
// attached to its owner, so it may be shared between goroutines.
type Field struct {
	kind    Kind
	pattern *regexp.Regexp
	groups  []int
	def     any
	list    bool
	post    PostProcessFunc
	hasPost bool
	format  string
	variant variant

	// Non-owning reference to the aggregator that declared the field.
	owner string
	name  string
}

// NewField returns a field of the given kind. An empty pattern yields a field
// that never produces a value. Returns ECONFIG if the pattern does not
// compile or an option is invalid.
func NewField(kind Kind, pattern string, opts ...FieldOption) (*Field, error) {
	f := &Field{kind: kind}
	for _, opt := range opts {
		opt(f)
	}

	if pattern != "" {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, Errorf(ECONFIG, "invalid pattern %q: %s", pattern, err)
		}
		f.pattern = re
	}

	if f.hasPost && f.post == nil {
		return nil, Errorf(ECONFIG, "post-process callback is not a function")
	}

	for _, i := range f.groups {
		if i < 0 {
			return nil, Errorf(ECONFIG, "invalid group index %d", i)
		}
	}

	v, err := f.newVariant()
	if err != nil {
		return nil, err
	}
	f.variant = v

	return f, nil
}

func (f *Field) newVariant() (variant, error) {
	switch f.kind {
	case KindString:
		return stringVariant{}, nil
	case KindInteger:
		return integerVariant{}, nil
	case KindFloat:
		return floatVariant{}, nil
	case KindBoolean:
		if f.def == nil {
			f.def = false
		}
		return booleanVariant{}, nil
	case KindDate:
		if f.format == "" {
			f.format = DefaultDateFormat
		}
		layout, err := layoutFromFormat(f.format)
		if err != nil {
			return nil, err
		}
		return dateVariant{layout: layout}, nil
	case KindDateTime:
		if f.format == "" {
			f.format = DefaultDateTimeFormat
		}
		layout, err := layoutFromFormat(f.format)
		if err != nil {
			return nil, err
		}
		return dateTimeVariant{layout: layout}, nil
	}
	return nil, Errorf(ECONFIG, "unknown field kind %q", f.kind)
}

// NewStringField returns a field producing trimmed strings.
func NewStringField(pattern string, opts ...FieldOption) (*Field, error) {
	return NewField(KindString, pattern, opts...)
}

// NewIntegerField returns a field producing base-10 integers.
func NewIntegerField(pattern string, opts ...FieldOption) (*Field, error) {
	return NewField(KindInteger, pattern, opts...)
}

// NewFloatField returns a field producing numbers written with a comma as
// decimal separator and dots as thousands separators ("1.234,56").
func NewFloatField(pattern string, opts ...FieldOption) (*Field, error) {
	return NewField(KindFloat, pattern, opts...)
}

// NewBooleanField returns a field that is true when the pattern matches at
// the start of a line and captures at least one group. Its default is false.
func NewBooleanField(pattern string, opts ...FieldOption) (*Field, error) {
	return NewField(KindBoolean, pattern, opts...)
}

// NewDateField returns a field producing civil.Date values.
func NewDateField(pattern string, opts ...FieldOption) (*Field, error) {
	return NewField(KindDate, pattern, opts...)
}

// NewDateTimeField returns a field producing time.Time values.
func NewDateTimeField(pattern string, opts ...FieldOption) (*Field, error) {
	return NewField(KindDateTime, pattern, opts...)
}

// AttachTo records the aggregator that declared the field and the name it was
// declared under. Only the owner's ID is retained. AttachTo must not be called
// concurrently with Extract.
func (f *Field) AttachTo(o Owner, name string) {
	f.owner = o.ID()
	f.name = name
}

// Owner returns the ID of the aggregator the field is attached to.
func (f *Field) Owner() string { return f.owner }

// Name returns the name the field was attached under.
func (f *Field) Name() string { return f.name }

// Kind returns the kind of value the field produces.
func (f *Field) Kind() Kind { return f.kind }

// Default returns the value reported when a document produced no value.
func (f *Field) Default() any { return f.def }

// List reports whether the field is in list mode.
func (f *Field) List() bool { return f.list }

// Groups returns the configured group selection.
func (f *Field) Groups() []int { return append([]int(nil), f.groups...) }

// Format returns the date format of date and date-time fields.
func (f *Field) Format() string { return f.format }

// Pattern returns the source of the field's regular expression, or an empty
// string if the field has none.
func (f *Field) Pattern() string {
	if f.pattern == nil {
		return ""
	}
	return f.pattern.String()
}

// Extract matches line against the field's pattern and returns the converted
// value. ok is false when the line does not contribute a value. Conversion
// failures are returned as ECONVERSION errors and are never replaced by the
// default.
func (f *Field) Extract(line string) (v any, ok bool, err error) {
	if f.pattern == nil {
		return nil, false, nil
	}

	raw := f.variant.match(f.pattern, line)
	if !f.variant.valid(raw) {
		return nil, false, nil
	}

	sel := selectGroups(raw, f.groups)

	v, err = f.variant.convert(sel)
	if err != nil {
		if e, isApp := err.(*Error); isApp {
			e.Field = f.name
			e.Line = line
		}
		return nil, false, err
	}

	if f.post != nil {
		if v, err = f.post(v); err != nil {
			return nil, false, err
		}
	}
	if v == nil {
		return nil, false, nil
	}

	if f.list {
		v = wrapList(v)
	}
	return v, true, nil
}

// wrapList wraps a scalar into a one-element slice of the same type.
// Slices are returned unchanged.
func wrapList(v any) any {
	switch v := v.(type) {
	case string:
		return []string{v}
	case int:
		return []int{v}
	case float64:
		return []float64{v}
	case bool:
		return []bool{v}
	case civil.Date:
		return []civil.Date{v}
	case time.Time:
		return []time.Time{v}
	case []string, []int, []float64, []bool, []civil.Date, []time.Time, []any:
		return v
	}
	if isSlice(v) {
		return v
	}
	return []any{v}
}
