package pattern

// IsNearMatch reports whether a and b have the same segment layout and differ
// in the value of at most one segment. Identical names are accepted as a
// degenerate near-match.
func IsNearMatch(a, b Segmentation) bool {
	if len(a.Parts) != len(b.Parts) {
		return false
	}

	mismatched := false
	for i := range a.Parts {
		if a.Parts[i].Kind != b.Parts[i].Kind {
			return false
		}
		if a.Parts[i].Value != b.Parts[i].Value {
			if mismatched {
				return false
			}
			mismatched = true
		}
	}

	return true
}

// MismatchIndex returns the first position whose values differ.
// ok is false when no position differs within the shorter of the two.
func MismatchIndex(a, b Segmentation) (index int, ok bool) {
	n := min(len(a.Parts), len(b.Parts))
	for i := 0; i < n; i++ {
		if a.Parts[i].Value != b.Parts[i].Value {
			return i, true
		}
	}
	return 0, false
}
