package raspador

// selection holds the captured text handed to a converter: either a single
// scalar or an ordered sequence of strings.
type selection struct {
	values []string
	scalar bool
}

// collapse reduces a one-element sequence to a scalar.
func collapse(values []string) selection {
	return selection{values: values, scalar: len(values) == 1}
}

// selectGroups turns raw occurrences into a selection.
//
// A single occurrence is unwrapped to its groups; several occurrences are
// flattened in order. A one-element result collapses to a scalar. If indices
// is non-empty only those positions are kept, in the given order, dropping
// indices past the end, and the result collapses again.
//
// Indices address individual groups of the flattened sequence, not whole
// occurrences, and a scalar capture is indexed as a one-element sequence
// rather than by character.
func selectGroups(raw [][]string, indices []int) selection {
	var seq []string
	if len(raw) == 1 {
		seq = raw[0]
	} else {
		for _, occ := range raw {
			seq = append(seq, occ...)
		}
	}

	sel := collapse(seq)
	if len(indices) == 0 {
		return sel
	}

	picked := make([]string, 0, len(indices))
	for _, i := range indices {
		if i < len(sel.values) {
			picked = append(picked, sel.values[i])
		}
	}
	return collapse(picked)
}
