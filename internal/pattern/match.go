package pattern

import "strings"

// Match reports whether name is an instance of the template: it carries the
// literal prefix and suffix, and the gap between them has exactly the wildcard
// length and passes the wildcard's class check.
func (t Template) Match(name string) bool {
	if len(name) < len(t.Prefix)+len(t.Suffix) {
		return false
	}
	if !strings.HasPrefix(name, t.Prefix) || !strings.HasSuffix(name, t.Suffix) {
		return false
	}

	gap := name[len(t.Prefix) : len(name)-len(t.Suffix)]
	if len(gap) != t.Wildcard.Length {
		return false
	}

	return gapMatchesKind(gap, t.Wildcard.Kind)
}

// Filter returns the candidates that match the template, in candidate order.
func (t Template) Filter(candidates []string) []string {
	matched := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if t.Match(c) {
			matched = append(matched, c)
		}
	}
	return matched
}

// MatchingNames returns the candidates that instantiate template, preserving
// candidate order. A malformed template matches nothing; use ParseTemplate to
// get the reason.
func MatchingNames(candidates []string, template string) []string {
	t, err := ParseTemplate(template)
	if err != nil {
		return []string{}
	}
	return t.Filter(candidates)
}

// gapMatchesKind applies the loose class rule: a string gap needs at least one
// non-digit, a numeric gap must hold no letters. Symbols pass either way.
func gapMatchesKind(gap string, kind Kind) bool {
	switch kind {
	case KindString:
		for i := 0; i < len(gap); i++ {
			if !IsNumeric(gap[i]) {
				return true
			}
		}
		return false
	case KindNumber:
		for i := 0; i < len(gap); i++ {
			if IsAlpha(gap[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
