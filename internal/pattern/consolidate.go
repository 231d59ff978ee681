package pattern

import (
	"sort"
	"strings"
)

// Cluster is one entry of a consolidation result: a template (or an untouched
// name) together with the input names it stands for, in input order.
// Wildcard is set only when names were folded into a token, so an input name
// that happens to read like a template stays a literal.
type Cluster struct {
	Template string
	Members  []string
	Wildcard bool
}

// TraceFunc receives a line for every consolidation decision.
type TraceFunc func(format string, args ...interface{})

// Consolidator folds batches of names into templates.
// The zero value uses the greedy strategy.
type Consolidator struct {
	strategy Strategy
	trace    TraceFunc
}

// NewConsolidator creates a Consolidator for cfg. An invalid strategy falls
// back to greedy; call cfg.Validate first to reject it instead.
func NewConsolidator(cfg Config) *Consolidator {
	strategy, err := ParseStrategy(string(cfg.Strategy))
	if err != nil {
		strategy = StrategyGreedy
	}
	return &Consolidator{strategy: strategy}
}

// WithTrace sets the decision tracer and returns the Consolidator.
func (c *Consolidator) WithTrace(fn TraceFunc) *Consolidator {
	c.trace = fn
	return c
}

// Strategy returns the grouping strategy in use.
func (c *Consolidator) Strategy() Strategy {
	if c.strategy == "" {
		return StrategyGreedy
	}
	return c.strategy
}

// InferTemplates consolidates names with the default greedy strategy.
func InferTemplates(names []string) ([]string, error) {
	return (&Consolidator{}).Consolidate(names)
}

// Consolidate returns one entry per cluster or unclustered name. A single name
// is returned unchanged.
func (c *Consolidator) Consolidate(names []string) ([]string, error) {
	clusters, err := c.Clusters(names)
	if err != nil {
		return nil, err
	}
	templates := make([]string, len(clusters))
	for i, cl := range clusters {
		templates[i] = cl.Template
	}
	return templates, nil
}

// Clusters is Consolidate with cluster membership attached.
func (c *Consolidator) Clusters(names []string) ([]Cluster, error) {
	if len(names) == 0 {
		return nil, ErrEmptyInput
	}
	if len(names) == 1 {
		return []Cluster{{Template: names[0], Members: []string{names[0]}}}, nil
	}

	// Identity is the input position: equal names are distinct entries.
	arena := make([]Segmentation, len(names))
	for i, name := range names {
		arena[i] = Segment(name)
	}

	out := newClusterSet(names)

	switch c.Strategy() {
	case StrategyComponents:
		c.components(arena, out)
	default:
		all := make([]int, len(arena))
		for i := range all {
			all[i] = i
		}
		c.greedy(arena, all, out)
	}

	return out.result(), nil
}

// greedy makes a single pass over positions in order. A consumed entry is never
// offered as a partner again; a resolved entry is never visited as current.
// Partners therefore come only from names not yet absorbed: [a_1 a_2 b_2]
// yields [a_[1n] b_2], and b_2 is not paired with the already folded a_2.
func (c *Consolidator) greedy(arena []Segmentation, positions []int, out *clusterSet) {
	consumed := make(map[int]bool, len(positions))
	resolved := make(map[int]bool, len(positions))

	for _, i := range positions {
		if resolved[i] || consumed[i] {
			continue
		}
		current := arena[i]
		consumed[i] = true

		var partners []int
		for _, j := range positions {
			if j == i || consumed[j] {
				continue
			}
			if IsNearMatch(current, arena[j]) {
				partners = append(partners, j)
			}
		}

		if len(partners) == 0 {
			c.tracef("%q is unique", out.names[i])
			out.add(current.String(), false, i)
			resolved[i] = true
			continue
		}

		absorbed := 0
		for _, j := range partners {
			partner := arena[j]
			// Same layout but different run lengths or punctuation: a single
			// token of fixed length could not describe both names.
			if partner.Signature != current.Signature {
				c.tracef("%q and %q differ in signature (%s, %s)", out.names[i], out.names[j], current.Signature, partner.Signature)
				continue
			}

			template, wildcard := buildTemplate(current, partner)
			c.tracef("%q + %q -> %q", out.names[i], out.names[j], template)
			out.add(template, wildcard, i, j)
			consumed[j] = true
			resolved[j] = true
			absorbed++
		}

		if absorbed == 0 {
			out.add(current.String(), false, i)
			resolved[i] = true
		}
	}
}

// components unions every pair of near-matches that share a signature. A
// component whose pairs all vary at the same segment becomes one template;
// anything else is handed to the greedy pass, restricted to the component.
func (c *Consolidator) components(arena []Segmentation, out *clusterSet) {
	uf := newUnionFind(len(arena))
	varying := make(map[int]map[int]bool)

	type edge struct{ a, b, index int }
	var edges []edge

	for i := 0; i < len(arena); i++ {
		for j := i + 1; j < len(arena); j++ {
			if arena[i].Signature != arena[j].Signature || !IsNearMatch(arena[i], arena[j]) {
				continue
			}
			index, ok := MismatchIndex(arena[i], arena[j])
			if !ok {
				index = -1
			}
			edges = append(edges, edge{i, j, index})
			uf.union(i, j)
		}
	}

	for _, e := range edges {
		root := uf.find(e.a)
		if varying[root] == nil {
			varying[root] = make(map[int]bool)
		}
		if e.index >= 0 {
			varying[root][e.index] = true
		}
	}

	for _, members := range uf.groups() {
		first := members[0]
		root := uf.find(first)

		switch {
		case len(members) == 1:
			c.tracef("%q is unique", out.names[first])
			out.add(arena[first].String(), false, first)

		case len(varying[root]) == 0:
			c.tracef("%d identical entries of %q", len(members), out.names[first])
			out.add(arena[first].String(), false, members...)

		case len(varying[root]) == 1:
			var index int
			for k := range varying[root] {
				index = k
			}
			template := templateAt(arena[first], index)
			c.tracef("component of %d names -> %q", len(members), template)
			out.add(template, true, members...)

		default:
			c.tracef("component of %d names varies in %d segments, falling back to greedy", len(members), len(varying[root]))
			c.greedy(arena, members, out)
		}
	}
}

func (c *Consolidator) tracef(format string, args ...interface{}) {
	if c.trace != nil {
		c.trace(format, args...)
	}
}

// buildTemplate replaces the first segment where current and partner differ
// with a token sized from the partner's segment. Identical names produce the
// name itself and report no wildcard.
func buildTemplate(current, partner Segmentation) (string, bool) {
	index, ok := MismatchIndex(current, partner)
	if !ok {
		return partner.String(), false
	}
	return templateAt(partner, index), true
}

func templateAt(s Segmentation, index int) string {
	values := s.Values()
	p := s.Parts[index]
	values[index] = FormatToken(p.RunLength(), p.Kind)
	return strings.Join(values, "")
}

// clusterSet collects output entries in first-emission order, deduplicated by
// exact template text.
type clusterSet struct {
	names      []string
	order      []*clusterEntry
	byTemplate map[string]*clusterEntry
}

type clusterEntry struct {
	template string
	wildcard bool
	members  map[int]bool
}

func newClusterSet(names []string) *clusterSet {
	return &clusterSet{
		names:      names,
		byTemplate: make(map[string]*clusterEntry),
	}
}

// add records members under template. An entry is a wildcard if any add for
// its text folded names into a token.
func (s *clusterSet) add(template string, wildcard bool, members ...int) {
	entry, ok := s.byTemplate[template]
	if !ok {
		entry = &clusterEntry{template: template, members: make(map[int]bool)}
		s.byTemplate[template] = entry
		s.order = append(s.order, entry)
	}
	entry.wildcard = entry.wildcard || wildcard
	for _, m := range members {
		entry.members[m] = true
	}
}

func (s *clusterSet) result() []Cluster {
	clusters := make([]Cluster, len(s.order))
	for i, entry := range s.order {
		positions := make([]int, 0, len(entry.members))
		for m := range entry.members {
			positions = append(positions, m)
		}
		sort.Ints(positions)

		members := make([]string, len(positions))
		for k, p := range positions {
			members[k] = s.names[p]
		}
		clusters[i] = Cluster{Template: entry.template, Members: members, Wildcard: entry.wildcard}
	}
	return clusters
}
