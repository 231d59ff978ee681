// Package pattern infers compact templates for families of names that differ in
// exactly one segment, and matches candidate names back against a template.
//
// A name is split into runs of same-class characters (letters, digits, anything
// else). Two names whose runs line up one-to-one and differ in a single run are a
// near-match; a cluster of near-matches is summarised by replacing that run with a
// wildcard token of the form [<length><code>], where code is "n" for an all-digit
// run and "s" otherwise:
//
//	names, _ := pattern.InferTemplates([]string{"isa_1.png", "isa_2.png"})
//	// names == []string{"isa_[1n].png"}
//
//	pattern.MatchingNames([]string{"isa_1.png", "isa_xx.png"}, "isa_[1n].png")
//	// []string{"isa_1.png"}
//
// Everything in this package is pure and synchronous.
package pattern
