package pattern

import "strings"

// Kind distinguishes all-digit segments from everything else.
type Kind int

const (
	// KindString is a segment containing at least one non-digit.
	KindString Kind = iota
	// KindNumber is a segment made only of digits.
	KindNumber
)

// String returns the string representation of Kind.
func (k Kind) String() string {
	if k == KindNumber {
		return "number"
	}
	return "string"
}

// code is the wildcard code written into a template token for this kind.
func (k Kind) code() byte {
	if k == KindNumber {
		return codeNumeric
	}
	return codeString
}

// Part is a maximal run of same-class characters within a name.
type Part struct {
	Value string
	Class Class
	Kind  Kind
}

// RunLength is the number of bytes in the part.
func (p Part) RunLength() int {
	return len(p.Value)
}

// Segmentation is the run-based decomposition of a name.
type Segmentation struct {
	// Signature encodes the name one character at a time: symbols are kept
	// literally, letters become 'a' and digits become 'n'.
	Signature string
	Parts     []Part
}

// String rebuilds the original name from the part values.
func (s Segmentation) String() string {
	var b strings.Builder
	for _, p := range s.Parts {
		b.WriteString(p.Value)
	}
	return b.String()
}

// Values returns a copy of the part values in order.
func (s Segmentation) Values() []string {
	values := make([]string, len(s.Parts))
	for i, p := range s.Parts {
		values[i] = p.Value
	}
	return values
}

// Segment splits name into runs of same-class characters and builds its
// signature in the same pass. It never fails; an empty name has no parts.
func Segment(name string) Segmentation {
	var sig strings.Builder
	sig.Grow(len(name))

	parts := make([]Part, 0, 4)
	start := 0

	for i := 0; i < len(name); i++ {
		class := Classify(name[i])

		if class == ClassSymbol {
			sig.WriteByte(name[i])
		} else {
			sig.WriteByte(class.code())
		}

		if i > 0 && class != Classify(name[i-1]) {
			parts = append(parts, newPart(name[start:i]))
			start = i
		}
	}

	if start < len(name) {
		parts = append(parts, newPart(name[start:]))
	}

	return Segmentation{
		Signature: sig.String(),
		Parts:     parts,
	}
}

// newPart builds a Part from a non-empty run of same-class characters.
func newPart(value string) Part {
	p := Part{
		Value: value,
		Class: Classify(value[0]),
		Kind:  KindNumber,
	}
	for i := 0; i < len(value); i++ {
		if !IsNumeric(value[i]) {
			p.Kind = KindString
			break
		}
	}
	return p
}
