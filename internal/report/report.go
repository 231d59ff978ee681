// Package report renders inference and match results for output.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/harrison/consolidator/internal/pattern"
)

// Command names the operation a report describes.
type Command string

const (
	CommandInfer Command = "infer"
	CommandMatch Command = "match"
	CommandScan  Command = "scan"
)

// Entry is one template, or a name left untouched, with the names it covers.
type Entry struct {
	Template string   `json:"template" yaml:"template"`
	Wildcard bool     `json:"wildcard" yaml:"wildcard"`
	Position string   `json:"position,omitempty" yaml:"position,omitempty"`
	Glob     string   `json:"glob,omitempty" yaml:"glob,omitempty"`
	Printf   string   `json:"printf,omitempty" yaml:"printf,omitempty"`
	Members  []string `json:"members" yaml:"members"`
}

// Report is the output of one command run.
type Report struct {
	Command     Command   `json:"command" yaml:"command"`
	Source      string    `json:"source,omitempty" yaml:"source,omitempty"`
	Strategy    string    `json:"strategy,omitempty" yaml:"strategy,omitempty"`
	Total       int       `json:"total" yaml:"total"`
	Entries     []Entry   `json:"entries" yaml:"entries"`
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`
}

// Validate checks the report is renderable.
func (r *Report) Validate() error {
	switch r.Command {
	case CommandInfer, CommandMatch, CommandScan:
	default:
		return fmt.Errorf("unknown command %q", r.Command)
	}
	if r.Total < 0 {
		return fmt.Errorf("total must be >= 0, got %d", r.Total)
	}
	return nil
}

// Lines returns the plain listing: templates for an inference, matched names
// otherwise.
func (r *Report) Lines() []string {
	lines := make([]string, 0, len(r.Entries))
	for _, e := range r.Entries {
		if r.Command == CommandInfer {
			lines = append(lines, e.Template)
			continue
		}
		lines = append(lines, e.Members...)
	}
	return lines
}

// Wildcards counts entries that carry a wildcard token.
func (r *Report) Wildcards() int {
	n := 0
	for _, e := range r.Entries {
		if e.Wildcard {
			n++
		}
	}
	return n
}

// NewEntry describes template and the names it covers. Position, glob and
// printf forms are filled in only for templates that parse.
func NewEntry(template string, members []string) Entry {
	e := literalEntry(template, members)
	if t, err := pattern.ParseTemplate(template); err == nil {
		e.Wildcard = true
		e.Position = t.Position().String()
		e.Glob = t.Glob()
		e.Printf = t.Printf()
	}
	return e
}

// literalEntry describes a name that was left as is.
func literalEntry(name string, members []string) Entry {
	if members == nil {
		members = []string{}
	}
	return Entry{Template: name, Members: members}
}

// FromClusters builds an inference report. Only clusters the consolidator
// folded into a token count as wildcards; untouched names stay literal even
// when their text reads like a template.
func FromClusters(source string, strategy pattern.Strategy, total int, clusters []pattern.Cluster) *Report {
	entries := make([]Entry, len(clusters))
	for i, c := range clusters {
		if c.Wildcard {
			entries[i] = NewEntry(c.Template, c.Members)
			continue
		}
		entries[i] = literalEntry(c.Template, c.Members)
	}
	return &Report{
		Command:     CommandInfer,
		Source:      source,
		Strategy:    string(strategy),
		Total:       total,
		Entries:     entries,
		GeneratedAt: time.Now(),
	}
}

// FromMatches builds a match or scan report for a single template.
func FromMatches(command Command, source, template string, total int, matches []string) *Report {
	return &Report{
		Command:     command,
		Source:      source,
		Total:       total,
		Entries:     []Entry{NewEntry(template, matches)},
		GeneratedAt: time.Now(),
	}
}

// title returns the heading used by document formats.
func (r *Report) title() string {
	switch r.Command {
	case CommandInfer:
		return "Inference Report"
	case CommandScan:
		return "Scan Report"
	default:
		return "Match Report"
	}
}

// escapeCell renders a value as inline code that is safe inside a Markdown
// table cell.
func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "`", "'")
	return "`" + strings.ReplaceAll(s, "|", `\|`) + "`"
}
