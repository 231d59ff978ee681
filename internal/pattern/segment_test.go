package pattern

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegment(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantSig   string
		wantParts []Part
	}{
		{
			name:    "empty",
			input:   "",
			wantSig: "",
		},
		{
			name:    "image with counter",
			input:   "isa_1.png",
			wantSig: "aaa_n.aaa",
			wantParts: []Part{
				{Value: "isa", Class: ClassAlpha, Kind: KindString},
				{Value: "_", Class: ClassSymbol, Kind: KindString},
				{Value: "1", Class: ClassNumeric, Kind: KindNumber},
				{Value: ".", Class: ClassSymbol, Kind: KindString},
				{Value: "png", Class: ClassAlpha, Kind: KindString},
			},
		},
		{
			name:    "symbol run keeps punctuation in signature",
			input:   "a-_-b",
			wantSig: "a-_-a",
			wantParts: []Part{
				{Value: "a", Class: ClassAlpha, Kind: KindString},
				{Value: "-_-", Class: ClassSymbol, Kind: KindString},
				{Value: "b", Class: ClassAlpha, Kind: KindString},
			},
		},
		{
			name:    "digits only",
			input:   "007",
			wantSig: "nnn",
			wantParts: []Part{
				{Value: "007", Class: ClassNumeric, Kind: KindNumber},
			},
		},
		{
			name:    "mixed case letters stay one run",
			input:   "IMG0042",
			wantSig: "aaannnn",
			wantParts: []Part{
				{Value: "IMG", Class: ClassAlpha, Kind: KindString},
				{Value: "0042", Class: ClassNumeric, Kind: KindNumber},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Segment(tt.input)
			assert.Equal(t, tt.wantSig, got.Signature)
			if len(tt.wantParts) == 0 {
				assert.Empty(t, got.Parts)
				return
			}
			assert.Equal(t, tt.wantParts, got.Parts)
		})
	}
}

func TestSegment_RoundTrip(t *testing.T) {
	inputs := []string{
		"isa_1.png",
		"report-2024-01-31.final.PDF",
		"...",
		"a",
		"x1y2z3",
		"weird [bracket] name.txt",
		"naïve.txt",
		"trailing123",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			s := Segment(in)
			assert.Equal(t, in, s.String())
			assert.Equal(t, in, strings.Join(s.Values(), ""))
			assert.Len(t, s.Signature, len(in))
		})
	}
}

func TestSegment_BoundariesOnlyOnClassChange(t *testing.T) {
	s := Segment("ab12--cd")
	require.Len(t, s.Parts, 4)
	for i := 1; i < len(s.Parts); i++ {
		assert.NotEqual(t, s.Parts[i-1].Class, s.Parts[i].Class, "adjacent parts %d and %d share a class", i-1, i)
	}
	for _, p := range s.Parts {
		assert.Equal(t, len(p.Value), p.RunLength())
	}
}
