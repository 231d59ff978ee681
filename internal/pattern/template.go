package pattern

import (
	"fmt"
	"strconv"
	"strings"
)

// Wildcard codes used inside a template token.
const (
	codeNumeric byte = 'n'
	codeString  byte = 's'
)

// Position says where the wildcard token sits inside a template.
type Position int

const (
	// PositionPrefix means the token opens the template; only a literal suffix follows.
	PositionPrefix Position = iota
	// PositionSuffix means the token closes the template; only a literal prefix precedes.
	PositionSuffix
	// PositionMiddle means literals surround the token on both sides.
	PositionMiddle
)

// String returns the string representation of Position.
func (p Position) String() string {
	switch p {
	case PositionPrefix:
		return "prefix"
	case PositionSuffix:
		return "suffix"
	case PositionMiddle:
		return "middle"
	default:
		return "unknown"
	}
}

// Wildcard is the parsed [<Length><code>] token.
type Wildcard struct {
	Length int
	Kind   Kind
}

// Token renders the wildcard as it appears in a template.
func (w Wildcard) Token() string {
	return FormatToken(w.Length, w.Kind)
}

// FormatToken renders a wildcard token for a segment of the given run length and kind.
func FormatToken(length int, kind Kind) string {
	return fmt.Sprintf("[%d%c]", length, kind.code())
}

// Template is a parsed template: literal text around a single wildcard.
type Template struct {
	Prefix   string
	Suffix   string
	Wildcard Wildcard
}

// ParseTemplate parses s using its first '[' and first ']'.
func ParseTemplate(s string) (Template, error) {
	start := strings.IndexByte(s, '[')
	end := strings.IndexByte(s, ']')

	if start < 0 || end < 0 {
		return Template{}, newTemplateError(s, "no wildcard token", ErrMalformedTemplate)
	}
	if end < start {
		return Template{}, newTemplateError(s, "']' before '['", ErrMalformedTemplate)
	}

	body := s[start+1 : end]
	if len(body) < 2 {
		return Template{}, newTemplateError(s, fmt.Sprintf("token %q too short", body), ErrMalformedTemplate)
	}

	var kind Kind
	switch body[len(body)-1] {
	case codeNumeric:
		kind = KindNumber
	case codeString:
		kind = KindString
	default:
		return Template{}, newTemplateError(s, fmt.Sprintf("unknown wildcard code %q", body[len(body)-1]), ErrMalformedTemplate)
	}

	digits := body[:len(body)-1]
	for i := 0; i < len(digits); i++ {
		if !IsNumeric(digits[i]) {
			return Template{}, newTemplateError(s, fmt.Sprintf("length %q is not a number", digits), ErrMalformedTemplate)
		}
	}
	length, err := strconv.Atoi(digits)
	if err != nil {
		return Template{}, newTemplateError(s, fmt.Sprintf("length %q out of range", digits), ErrMalformedTemplate)
	}
	if length <= 0 {
		return Template{}, newTemplateError(s, "length must be positive", ErrMalformedTemplate)
	}

	suffix := s[end+1:]
	if strings.ContainsAny(suffix, "[]") {
		return Template{}, newTemplateError(s, "only one wildcard is supported", ErrUnsupportedMultiWildcard)
	}

	return Template{
		Prefix:   s[:start],
		Suffix:   suffix,
		Wildcard: Wildcard{Length: length, Kind: kind},
	}, nil
}

// String renders the template back to its wire format.
func (t Template) String() string {
	return t.Prefix + t.Wildcard.Token() + t.Suffix
}

// Position reports where the wildcard sits.
func (t Template) Position() Position {
	switch {
	case t.Prefix == "":
		return PositionPrefix
	case t.Suffix == "":
		return PositionSuffix
	default:
		return PositionMiddle
	}
}

// Glob returns a coarse glob for directory queries: the token becomes '*'
// and glob metacharacters in the literals are escaped.
func (t Template) Glob() string {
	return escapeGlob(t.Prefix) + "*" + escapeGlob(t.Suffix)
}

// Printf renders the template as a printf format. Numeric tokens shorter than
// ten digits are zero padded.
func (t Template) Printf() string {
	verb := "%s"
	if t.Wildcard.Kind == KindNumber {
		if t.Wildcard.Length < 10 {
			verb = fmt.Sprintf("%%0%dd", t.Wildcard.Length)
		} else {
			verb = fmt.Sprintf("%%%dd", t.Wildcard.Length)
		}
	}
	return escapePercent(t.Prefix) + verb + escapePercent(t.Suffix)
}

func escapeGlob(s string) string {
	if !strings.ContainsAny(s, `*?[]{}\`) {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '*', '?', '[', ']', '{', '}', '\\':
			b.WriteByte('\\')
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func escapePercent(s string) string {
	return strings.ReplaceAll(s, "%", "%%")
}
