package dictionary

// invertedIndex maps each alphabet rune to the set of word texts containing
// it at least once. ContainsSubstring and GapFit intersect these per-letter
// sets before running the (more expensive) literal substring test, so a
// query for a rare letter combination never has to scan the full word list.
type invertedIndex struct {
	byLetter map[rune]map[string]bool
}

func newInvertedIndex() *invertedIndex {
	return &invertedIndex{byLetter: make(map[rune]map[string]bool)}
}

func (ix *invertedIndex) add(word string) {
	seen := make(map[rune]bool)
	for _, r := range word {
		if seen[r] {
			continue
		}
		seen[r] = true
		set, ok := ix.byLetter[r]
		if !ok {
			set = make(map[string]bool)
			ix.byLetter[r] = set
		}
		set[word] = true
	}
}

// candidatesFor returns the set of words that contain every distinct rune in
// sub, i.e. the superset any literal match of sub must belong to. An empty
// sub yields a nil set, which callers must treat as "no constraint".
func (ix *invertedIndex) candidatesFor(sub string) map[string]bool {
	if sub == "" {
		return nil
	}
	var result map[string]bool
	for _, r := range sub {
		set, ok := ix.byLetter[r]
		if !ok {
			return map[string]bool{} // a letter with no matches at all
		}
		if result == nil {
			result = copySet(set)
			continue
		}
		result = intersect(result, set)
		if len(result) == 0 {
			return result
		}
	}
	return result
}

func copySet(s map[string]bool) map[string]bool {
	out := make(map[string]bool, len(s))
	for k := range s {
		out[k] = true
	}
	return out
}

func intersect(a, b map[string]bool) map[string]bool {
	out := make(map[string]bool)
	small, large := a, b
	if len(b) < len(a) {
		small, large = b, a
	}
	for k := range small {
		if large[k] {
			out[k] = true
		}
	}
	return out
}
