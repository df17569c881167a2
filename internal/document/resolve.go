package document

// Resolve looks up a section by reference: first as an exact match against
// current section numbers (unique post-parse), then as an exact,
// case-sensitive title match, then as a full numbered title ("5. Plan").
// Lookups that hit more than one section fail with AmbiguousError.
func (t *Tree) Resolve(ref string) (int, error) {
	order := t.Order()

	for _, id := range order {
		if s := &t.Sections[id]; s.Number != "" && s.Number == ref {
			return id, nil
		}
	}

	var matches []int
	for _, id := range order {
		if t.Sections[id].Title == ref {
			matches = append(matches, id)
		}
	}
	if len(matches) == 0 {
		for _, id := range order {
			if t.Sections[id].Number != "" && t.FullTitle(id) == ref {
				matches = append(matches, id)
			}
		}
	}
	switch len(matches) {
	case 0:
		return -1, &NotFoundError{Ref: ref}
	case 1:
		return matches[0], nil
	default:
		titles := make([]string, len(matches))
		for i, id := range matches {
			titles[i] = t.FullTitle(id)
		}
		return -1, &AmbiguousError{Ref: ref, Matches: titles}
	}
}
