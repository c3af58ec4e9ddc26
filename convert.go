package raspador

import (
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/civil"
)

// convertEach applies fn to a scalar selection, or to every element of a
// sequence, producing T or []T.
func convertEach[T any](sel selection, fn func(string) (T, error)) (any, error) {
	if sel.scalar {
		return fn(sel.values[0])
	}

	out := make([]T, 0, len(sel.values))
	for _, s := range sel.values {
		v, err := fn(s)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

type stringVariant struct{ findAll }

func (stringVariant) convert(sel selection) (any, error) {
	return convertEach(sel, func(s string) (string, error) {
		return strings.TrimSpace(s), nil
	})
}

type integerVariant struct{ findAll }

func (integerVariant) convert(sel selection) (any, error) {
	return convertEach(sel, ParseInteger)
}

type floatVariant struct{ findAll }

func (floatVariant) convert(sel selection) (any, error) {
	return convertEach(sel, ParseDecimal)
}

type booleanVariant struct{ anchored }

// convert is only reached after a valid match, which is what true means.
func (booleanVariant) convert(selection) (any, error) {
	return true, nil
}

type dateVariant struct {
	findAll
	layout string
}

func (v dateVariant) convert(sel selection) (any, error) {
	return convertEach(sel, func(s string) (civil.Date, error) {
		t, err := time.Parse(v.layout, s)
		if err != nil {
			return civil.Date{}, Errorf(ECONVERSION, "cannot convert %q to date: %s", s, err)
		}
		return civil.DateOf(t), nil
	})
}

type dateTimeVariant struct {
	findAll
	layout string
}

func (v dateTimeVariant) convert(sel selection) (any, error) {
	return convertEach(sel, func(s string) (time.Time, error) {
		t, err := time.Parse(v.layout, s)
		if err != nil {
			return time.Time{}, Errorf(ECONVERSION, "cannot convert %q to date-time: %s", s, err)
		}
		return t, nil
	})
}

// ParseInteger parses a base-10 integer, ignoring surrounding whitespace.
func ParseInteger(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, Errorf(ECONVERSION, "cannot convert %q to integer", s)
	}
	return n, nil
}

// ParseDecimal parses a number that uses dots as thousands separators and a
// comma as decimal separator, e.g. "1.234,56" is 1234.56. Hexadecimal
// notation and non-finite values are rejected.
func ParseDecimal(s string) (float64, error) {
	norm := strings.ReplaceAll(s, ".", "")
	norm = strings.ReplaceAll(norm, ",", ".")
	norm = strings.TrimSpace(norm)
	if strings.ContainsAny(norm, "xX") {
		return 0, Errorf(ECONVERSION, "cannot convert %q to float", s)
	}
	f, err := strconv.ParseFloat(norm, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, Errorf(ECONVERSION, "cannot convert %q to float", s)
	}
	return f, nil
}

// isSlice reports whether v holds a slice value.
func isSlice(v any) bool {
	return v != nil && reflect.TypeOf(v).Kind() == reflect.Slice
}

// appendList concatenates two list values. Slices of the same type are
// appended directly; mixed types fall back to []any.
func appendList(acc, v any) any {
	if acc == nil {
		return v
	}
	a, b := reflect.ValueOf(acc), reflect.ValueOf(v)
	if a.Kind() == reflect.Slice && b.Kind() == reflect.Slice && a.Type() == b.Type() {
		return reflect.AppendSlice(a, b).Interface()
	}

	out := make([]any, 0)
	for _, x := range []reflect.Value{a, b} {
		if x.Kind() != reflect.Slice {
			out = append(out, x.Interface())
			continue
		}
		for i := 0; i < x.Len(); i++ {
			out = append(out, x.Index(i).Interface())
		}
	}
	return out
}
