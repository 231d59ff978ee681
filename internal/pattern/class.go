package pattern

// Class is the classification of a single character.
type Class int

const (
	// ClassAlpha is an ASCII letter.
	ClassAlpha Class = iota
	// ClassNumeric is an ASCII digit.
	ClassNumeric
	// ClassSymbol is anything else, including every non-ASCII byte.
	ClassSymbol
)

// String returns the string representation of Class.
func (c Class) String() string {
	switch c {
	case ClassAlpha:
		return "alpha"
	case ClassNumeric:
		return "numeric"
	case ClassSymbol:
		return "symbol"
	default:
		return "unknown"
	}
}

// code is the character used for the class in a signature.
// Symbol characters are written literally and never use it.
func (c Class) code() byte {
	switch c {
	case ClassAlpha:
		return 'a'
	case ClassNumeric:
		return 'n'
	default:
		return 's'
	}
}

// Classify returns the class of c. Letters are checked before digits.
func Classify(c byte) Class {
	switch {
	case IsAlpha(c):
		return ClassAlpha
	case IsNumeric(c):
		return ClassNumeric
	default:
		return ClassSymbol
	}
}

// IsAlpha reports whether c is an ASCII letter.
func IsAlpha(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// IsNumeric reports whether c is an ASCII digit.
func IsNumeric(c byte) bool {
	return '0' <= c && c <= '9'
}
