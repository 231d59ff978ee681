package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTemplate(t *testing.T) {
	tests := []struct {
		input    string
		want     Template
		position Position
	}{
		{"isa_[1n].png", Template{Prefix: "isa_", Suffix: ".png", Wildcard: Wildcard{Length: 1, Kind: KindNumber}}, PositionMiddle},
		{"[1s].gif", Template{Suffix: ".gif", Wildcard: Wildcard{Length: 1, Kind: KindString}}, PositionPrefix},
		{"start_[3n]", Template{Prefix: "start_", Wildcard: Wildcard{Length: 3, Kind: KindNumber}}, PositionSuffix},
		{"[12s]", Template{Wildcard: Wildcard{Length: 12, Kind: KindString}}, PositionPrefix},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTemplate(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.position, got.Position())
			assert.Equal(t, tt.input, got.String())
		})
	}
}

func TestParseTemplate_Errors(t *testing.T) {
	tests := []struct {
		input string
		want  error
	}{
		{"plain.txt", ErrMalformedTemplate},
		{"only[open.txt", ErrMalformedTemplate},
		{"only]close.txt", ErrMalformedTemplate},
		{"bad]order[1n]", ErrMalformedTemplate},
		{"x_[n].png", ErrMalformedTemplate},
		{"x_[].png", ErrMalformedTemplate},
		{"x_[3x].png", ErrMalformedTemplate},
		{"x_[ab].png", ErrMalformedTemplate},
		{"x_[-1n].png", ErrMalformedTemplate},
		{"x_[0n].png", ErrMalformedTemplate},
		{"x_[99999999999999999999n].png", ErrMalformedTemplate},
		{"[1s]_[2n].png", ErrUnsupportedMultiWildcard},
		{"[1s]_x].png", ErrUnsupportedMultiWildcard},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := ParseTemplate(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)

			var terr *TemplateError
			require.ErrorAs(t, err, &terr)
			assert.Equal(t, tt.input, terr.Template)
			assert.Contains(t, err.Error(), tt.input)
		})
	}
}

func mustParseTemplate(t *testing.T, s string) Template {
	t.Helper()
	tmpl, err := ParseTemplate(s)
	require.NoError(t, err)
	return tmpl
}

func TestTemplate_Glob(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"isa_[1n].png", "isa_*.png"},
		{"[1s].gif", "*.gif"},
		{"start_[3n]", "start_*"},
		{"what?_[2n]*.txt", `what\?_*\*.txt`},
		{"{a}[1s]", `\{a\}*`},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, mustParseTemplate(t, tt.input).Glob())
		})
	}
}

func TestTemplate_Printf(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"frame_[4n].exr", "frame_%04d.exr"},
		{"id[12n]", "id%12d"},
		{"[1s].gif", "%s.gif"},
		{"100%_[2n]", "100%%_%02d"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, mustParseTemplate(t, tt.input).Printf())
		})
	}
}

func TestFormatToken(t *testing.T) {
	assert.Equal(t, "[3n]", FormatToken(3, KindNumber))
	assert.Equal(t, "[10s]", FormatToken(10, KindString))
	assert.Equal(t, "[7s]", Wildcard{Length: 7, Kind: KindString}.Token())
}
