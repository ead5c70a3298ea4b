package coloring

// Assignment maps vertex IDs to color tokens.
type Assignment map[string]string

// Clone returns an independent copy. A nil receiver yields an empty map.
func (a Assignment) Clone() Assignment {
	out := make(Assignment, len(a))
	for v, c := range a {
		out[v] = c
	}

	return out
}

// ColorsUsed returns the colors of p that appear in a, in palette order.
func (a Assignment) ColorsUsed(p Palette) []string {
	used := make(map[string]struct{}, len(p))
	for _, c := range a {
		used[c] = struct{}{}
	}
	out := make([]string, 0, len(used))
	for _, c := range p {
		if _, ok := used[c]; ok {
			out = append(out, c)
		}
	}

	return out
}
