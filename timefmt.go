package raspador

import (
	"strings"
)

// strftime directives and the Go layout elements they translate to. Numeric
// elements use the non-padded forms so that "2/1/2013" parses like
// "02/01/2013".
var strftimeLayouts = map[byte]string{
	'd': "2",
	'm': "1",
	'Y': "2006",
	'y': "06",
	'H': "15",
	'I': "3",
	'M': "4",
	'S': "5",
	'p': "PM",
	'b': "Jan",
	'B': "January",
	'a': "Mon",
	'A': "Monday",
	'j': "002",
	'z': "-0700",
	'Z': "MST",
}

// Literal text that the time package would read as a layout element.
var layoutTokens = []string{"Jan", "Mon", "MST", "PM", "pm", "Z07", "_2", "-07"}

// layoutFromFormat translates a strftime-style format into a time package
// layout. Unsupported directives and literal text that would be mistaken for
// layout elements are configuration errors.
func layoutFromFormat(format string) (string, error) {
	var layout, literal strings.Builder

	flush := func() error {
		lit := literal.String()
		literal.Reset()
		if strings.ContainsAny(lit, "0123456789") {
			return Errorf(ECONFIG, "date format %q: literal %q contains digits", format, lit)
		}
		for _, tok := range layoutTokens {
			if strings.Contains(lit, tok) {
				return Errorf(ECONFIG, "date format %q: literal %q is ambiguous", format, lit)
			}
		}
		layout.WriteString(lit)
		return nil
	}

	for i := 0; i < len(format); i++ {
		c := format[i]
		if c != '%' {
			literal.WriteByte(c)
			continue
		}
		if i+1 == len(format) {
			return "", Errorf(ECONFIG, "date format %q: trailing %%", format)
		}
		i++
		if format[i] == '%' {
			literal.WriteByte('%')
			continue
		}
		elem, ok := strftimeLayouts[format[i]]
		if !ok {
			return "", Errorf(ECONFIG, "date format %q: unsupported directive %%%c", format, format[i])
		}
		if err := flush(); err != nil {
			return "", err
		}
		layout.WriteString(elem)
	}
	if err := flush(); err != nil {
		return "", err
	}

	return layout.String(), nil
}
