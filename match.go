package raspador

import (
	"regexp"
)

// variant implements the behavior that differs between field kinds.
type variant interface {
	// match returns the occurrences of re in line, each as its list of
	// captured groups.
	match(re *regexp.Regexp, line string) [][]string

	// valid reports whether raw may be converted into a value.
	valid(raw [][]string) bool

	convert(sel selection) (any, error)
}

// findAll matches every non-overlapping occurrence of the pattern.
type findAll struct{}

func (findAll) match(re *regexp.Regexp, line string) [][]string {
	matches := re.FindAllStringSubmatch(line, -1)
	if len(matches) == 0 {
		return nil
	}

	occurrences := make([][]string, len(matches))
	for i, m := range matches {
		// Without capture groups the whole match is the only group.
		if len(m) == 1 {
			occurrences[i] = m
		} else {
			occurrences[i] = m[1:]
		}
	}
	return occurrences
}

func (findAll) valid(raw [][]string) bool {
	return len(raw) > 0
}

// anchored matches once, at the start of the line, and keeps only the
// captured groups.
type anchored struct{}

func (anchored) match(re *regexp.Regexp, line string) [][]string {
	loc := re.FindStringSubmatchIndex(line)
	if loc == nil || loc[0] != 0 {
		return nil
	}

	groups := make([]string, 0, len(loc)/2-1)
	for i := 2; i < len(loc); i += 2 {
		if loc[i] < 0 {
			groups = append(groups, "")
			continue
		}
		groups = append(groups, line[loc[i]:loc[i+1]])
	}
	return [][]string{groups}
}

// valid requires at least one capture group: a structural match without
// groups does not count.
func (anchored) valid(raw [][]string) bool {
	return len(raw) == 1 && len(raw[0]) > 0
}
