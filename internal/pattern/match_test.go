package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchingNames(t *testing.T) {
	tests := []struct {
		name       string
		candidates []string
		template   string
		want       []string
	}{
		{
			name:       "numeric middle wildcard excludes letters",
			candidates: []string{"isa_1.png", "isa_2.png", "isa_xx.png"},
			template:   "isa_[1n].png",
			want:       []string{"isa_1.png", "isa_2.png"},
		},
		{
			name:       "string prefix wildcard excludes by length",
			candidates: []string{"a.gif", "b.gif", "c.gif", "12.gif"},
			template:   "[1s].gif",
			want:       []string{"a.gif", "b.gif", "c.gif"},
		},
		{
			name:       "prefix-only wildcard",
			candidates: []string{"123_end", "12_end", "abc_end", "999_end", "123_end.bak"},
			template:   "[3n]_end",
			want:       []string{"123_end", "999_end"},
		},
		{
			name:       "suffix-only wildcard",
			candidates: []string{"start_001", "start_1", "start_abc", "start_999", "restart_001"},
			template:   "start_[3n]",
			want:       []string{"start_001", "start_999"},
		},
		{
			name:       "string wildcard rejects all digits",
			candidates: []string{"x_ab.txt", "x_12.txt", "x_a1.txt", "x_--.txt"},
			template:   "x_[2s].txt",
			want:       []string{"x_ab.txt", "x_a1.txt", "x_--.txt"},
		},
		{
			name:       "numeric wildcard tolerates symbols",
			candidates: []string{"v1.0", "v1-0", "v1a0"},
			template:   "v[3n]",
			want:       []string{"v1.0", "v1-0"},
		},
		{
			name:       "prefix and suffix may not overlap",
			candidates: []string{"aba", "abba", "ab1ba"},
			template:   "ab[1n]ba",
			want:       []string{"ab1ba"},
		},
		{
			name:       "suffix repeated inside the name",
			candidates: []string{"x.gif.gif"},
			template:   "[5s].gif",
			want:       []string{"x.gif.gif"},
		},
		{
			name:       "candidate order is preserved",
			candidates: []string{"f_9", "f_1", "g_1", "f_5"},
			template:   "f_[1n]",
			want:       []string{"f_9", "f_1", "f_5"},
		},
		{
			name:       "malformed template matches nothing",
			candidates: []string{"a.gif"},
			template:   "a.gif",
			want:       []string{},
		},
		{
			name:       "multiple wildcards match nothing",
			candidates: []string{"a_1"},
			template:   "[1s]_[1n]",
			want:       []string{},
		},
		{
			name:       "no candidates",
			candidates: nil,
			template:   "a_[1n]",
			want:       []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchingNames(tt.candidates, tt.template))
		})
	}
}

func TestTemplate_Match(t *testing.T) {
	tmpl := mustParseTemplate(t, "IMG_[4n].JPG")

	assert.True(t, tmpl.Match("IMG_0001.JPG"))
	assert.False(t, tmpl.Match("IMG_001.JPG"))
	assert.False(t, tmpl.Match("img_0001.jpg"), "literals are case sensitive")
	assert.False(t, tmpl.Match("IMG_.JPG"))
	assert.False(t, tmpl.Match(""))
}
