package display

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Warning represents a user-facing warning message
type Warning struct {
	Title      string   // Main warning title
	Message    string   // Detailed explanation (optional)
	Files      []string // Related paths (optional)
	Suggestion string   // Action to take (optional)
}

// Display writes the warning to out, in yellow when out is a terminal.
func (w Warning) Display(out io.Writer) {
	w.render(out, isColorTerminal(out))
}

func (w Warning) render(out io.Writer, colorize bool) {
	var b strings.Builder

	b.WriteString("Warning: ")
	b.WriteString(w.Title)
	b.WriteString("\n")

	if w.Message != "" {
		b.WriteString("    ")
		b.WriteString(w.Message)
		b.WriteString("\n")
	}

	if len(w.Files) > 0 {
		b.WriteString("    ")
		if len(w.Files) == 1 {
			b.WriteString("Affected path:\n")
		} else {
			b.WriteString("Affected paths:\n")
		}
		for i, file := range w.Files {
			b.WriteString(fmt.Sprintf("      %d. %s\n", i+1, file))
		}
	}

	if w.Suggestion != "" {
		b.WriteString("    Suggestion:\n")
		b.WriteString("    ")
		b.WriteString(w.Suggestion)
		b.WriteString("\n")
	}

	text := b.String()
	if colorize {
		c := color.New(color.FgYellow)
		c.EnableColor()
		text = c.Sprint(text)
	}
	fmt.Fprint(out, text)
}

// isColorTerminal reports whether out is a terminal and NO_COLOR is unset.
func isColorTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	if !ok || f == nil {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// WarnNoMatches creates a warning for a template that matched no candidates.
func WarnNoMatches(template string, candidates int, source string) Warning {
	w := Warning{
		Title:      fmt.Sprintf("No names matched %s", template),
		Message:    fmt.Sprintf("%d candidates were checked", candidates),
		Suggestion: "Check the wildcard length and class: [Nn] accepts no letters, [Ns] needs at least one non-digit",
	}
	if source != "" {
		w.Files = []string{source}
	}
	return w
}

// WarnEmptyListing creates a warning for a listing that returned nothing.
func WarnEmptyListing(dir, glob string) Warning {
	return Warning{
		Title:      "Directory listing is empty",
		Message:    fmt.Sprintf("No files matched %q", glob),
		Files:      []string{dir},
		Suggestion: "Listings are not recursive; point at the directory that holds the files",
	}
}
