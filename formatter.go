package raspador

import (
	"fmt"
	"strings"
	"time"
)

// FormatRecords formats records for display.
// Uses the record source as header; missing values print as "-".
// Records are separated by blank lines.
func FormatRecords(records []*Record) string {
	if len(records) == 0 {
		return ""
	}

	parts := make([]string, 0, len(records))
	for _, rec := range records {
		var b strings.Builder
		b.WriteString("## Record: " + rec.Source)
		for _, name := range rec.Fields {
			b.WriteString("\n" + name + ": ")
			v, ok := rec.Values[name]
			if !ok {
				b.WriteString("-")
				continue
			}
			b.WriteString(FormatValue(v))
		}
		parts = append(parts, b.String())
	}

	return strings.Join(parts, "\n\n")
}

// FormatValue renders a single extracted value as text.
func FormatValue(v any) string {
	switch v := v.(type) {
	case time.Time:
		return v.Format(time.DateTime)
	case []time.Time:
		s := make([]string, len(v))
		for i, t := range v {
			s[i] = t.Format(time.DateTime)
		}
		return "[" + strings.Join(s, " ") + "]"
	}
	return fmt.Sprint(v)
}
