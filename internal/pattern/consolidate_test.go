package pattern

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInferTemplates(t *testing.T) {
	tests := []struct {
		name  string
		names []string
		want  []string
	}{
		{
			name:  "numeric counter",
			names: []string{"isa_1.png", "isa_2.png"},
			want:  []string{"isa_[1n].png"},
		},
		{
			name:  "prefix letter",
			names: []string{"a.gif", "b.gif"},
			want:  []string{"[1s].gif"},
		},
		{
			name:  "suffix counter",
			names: []string{"start_001", "start_002", "start_003"},
			want:  []string{"start_[3n]"},
		},
		{
			name:  "nothing in common",
			names: []string{"readme.md", "main.go"},
			want:  []string{"readme.md", "main.go"},
		},
		{
			name:  "run lengths differ so names stay literal",
			names: []string{"isa_1.png", "isa_12.png"},
			want:  []string{"isa_1.png", "isa_12.png"},
		},
		{
			name:  "two differing segments are never merged",
			names: []string{"a_1.png", "b_2.png"},
			want:  []string{"a_1.png", "b_2.png"},
		},
		{
			name:  "duplicate names collapse to the name",
			names: []string{"dup.txt", "dup.txt"},
			want:  []string{"dup.txt"},
		},
		{
			name: "mixed batch",
			names: []string{
				"isa_1.png",
				"isa_2.png",
				"isa_arevalo.txt",
				"isa_zzzzzzz.txt",
				"isa_zuzuarregui.txt",
				"a.x",
				"b.x",
				"123.x",
				"001.x",
			},
			want: []string{
				"isa_[1n].png",
				"isa_[7s].txt",
				"isa_zuzuarregui.txt",
				"[1s].x",
				"[3n].x",
			},
		},
		{
			name:  "current absorbed into templates for each varying segment",
			names: []string{"x_1", "y_1", "x_2"},
			want:  []string{"[1s]_1", "x_[1n]"},
		},
		{
			name:  "consumed partners are not offered again",
			names: []string{"a_1", "a_2", "b_2"},
			want:  []string{"a_[1n]", "b_2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := InferTemplates(tt.names)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInferTemplates_SingleName(t *testing.T) {
	for _, name := range []string{"isa_1.png", "", "[3n]", "x"} {
		got, err := InferTemplates([]string{name})
		require.NoError(t, err)
		assert.Equal(t, []string{name}, got)
	}
}

func TestInferTemplates_EmptyInput(t *testing.T) {
	_, err := InferTemplates(nil)
	assert.ErrorIs(t, err, ErrEmptyInput)

	_, err = InferTemplates([]string{})
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestConsolidator_ClustersAreSelfConsistent(t *testing.T) {
	batches := [][]string{
		{"isa_1.png", "isa_2.png", "isa_3.png"},
		{"a.gif", "b.gif", "c.gif", "12.gif"},
		{"x_1", "y_1", "x_2", "z_9"},
		{"frame0001.exr", "frame0002.exr", "frame0010.exr", "matte0001.exr"},
		{"log-a.txt", "log-b.txt", "log_c.txt", "log-1.txt"},
		{"000_end", "123_end", "abc_end"},
	}

	for _, strategy := range []Strategy{StrategyGreedy, StrategyComponents} {
		for i, names := range batches {
			t.Run(fmt.Sprintf("%s/%d", strategy, i), func(t *testing.T) {
				clusters, err := NewConsolidator(Config{Strategy: strategy}).Clusters(names)
				require.NoError(t, err)

				covered := make(map[string]bool)
				for _, cl := range clusters {
					require.NotEmpty(t, cl.Members)
					for _, m := range cl.Members {
						covered[m] = true
					}
					if !cl.Wildcard {
						assert.Equal(t, []string{cl.Template}, uniq(cl.Members))
						continue
					}
					matched := MatchingNames(cl.Members, cl.Template)
					assert.Equal(t, cl.Members, matched, "template %q must match every member", cl.Template)
				}
				for _, n := range names {
					assert.True(t, covered[n], "%q is not represented in any cluster", n)
				}
			})
		}
	}
}

func TestConsolidator_Clusters(t *testing.T) {
	clusters, err := (&Consolidator{}).Clusters([]string{"isa_1.png", "notes.md", "isa_2.png"})
	require.NoError(t, err)
	assert.Equal(t, []Cluster{
		{Template: "isa_[1n].png", Members: []string{"isa_1.png", "isa_2.png"}, Wildcard: true},
		{Template: "notes.md", Members: []string{"notes.md"}},
	}, clusters)
}

func TestConsolidator_LiteralsAreNotWildcards(t *testing.T) {
	for _, strategy := range []Strategy{StrategyGreedy, StrategyComponents} {
		t.Run(string(strategy), func(t *testing.T) {
			clusters, err := NewConsolidator(Config{Strategy: strategy}).Clusters([]string{"x[1n]", "dup", "dup", "notes.txt"})
			require.NoError(t, err)
			assert.Equal(t, []Cluster{
				{Template: "x[1n]", Members: []string{"x[1n]"}},
				{Template: "dup", Members: []string{"dup", "dup"}},
				{Template: "notes.txt", Members: []string{"notes.txt"}},
			}, clusters)
		})
	}

	single, err := (&Consolidator{}).Clusters([]string{"x[1n]"})
	require.NoError(t, err)
	assert.False(t, single[0].Wildcard)
}

func TestConsolidator_GreedySkipsAbsorbedPartners(t *testing.T) {
	got, err := InferTemplates([]string{"a_1", "a_2", "b_2"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a_[1n]", "b_2"}, got)
}

func TestConsolidator_GreedyIsOrderDependent(t *testing.T) {
	c := NewConsolidator(DefaultConfig())

	got, err := c.Consolidate([]string{"x_1", "x_2", "y_1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"x_[1n]", "[1s]_1"}, got)

	got, err = c.Consolidate([]string{"y_1", "x_2", "x_1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"[1s]_1", "x_2"}, got)
}

func TestConsolidator_Components(t *testing.T) {
	c := NewConsolidator(Config{Strategy: StrategyComponents})
	assert.Equal(t, StrategyComponents, c.Strategy())

	t.Run("order independent for single-segment families", func(t *testing.T) {
		a, err := c.Consolidate([]string{"f_1", "g.txt", "f_2", "f_3"})
		require.NoError(t, err)
		b, err := c.Consolidate([]string{"f_3", "f_2", "g.txt", "f_1"})
		require.NoError(t, err)
		assert.Equal(t, []string{"f_[1n]", "g.txt"}, a)
		assert.Equal(t, []string{"f_[1n]", "g.txt"}, b)
	})

	t.Run("component varying in two segments falls back to greedy", func(t *testing.T) {
		got, err := c.Consolidate([]string{"x_1", "y_1", "x_2"})
		require.NoError(t, err)
		assert.Equal(t, []string{"[1s]_1", "x_[1n]"}, got)
	})

	t.Run("identical names", func(t *testing.T) {
		got, err := c.Consolidate([]string{"a", "a", "b.txt"})
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b.txt"}, got)
	})
}

func TestConsolidator_Trace(t *testing.T) {
	var lines []string
	c := (&Consolidator{}).WithTrace(func(format string, args ...interface{}) {
		lines = append(lines, fmt.Sprintf(format, args...))
	})

	_, err := c.Consolidate([]string{"isa_1.png", "isa_12.png", "isa_2.png"})
	require.NoError(t, err)
	assert.Contains(t, lines, `"isa_1.png" + "isa_2.png" -> "isa_[1n].png"`)
	assert.Contains(t, lines, `"isa_1.png" and "isa_12.png" differ in signature (aaa_n.aaa, aaa_nn.aaa)`)
}

func TestNewConsolidator_InvalidStrategyFallsBack(t *testing.T) {
	c := NewConsolidator(Config{Strategy: "fastest"})
	assert.Equal(t, StrategyGreedy, c.Strategy())
}

func uniq(in []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
