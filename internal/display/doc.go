// Package display renders user-facing warnings on the terminal.
//
//	warning := display.Warning{
//	    Title:      "No names matched isa_[1n].png",
//	    Message:    "12 candidates were checked",
//	    Files:      []string{"/renders"},
//	    Suggestion: "Check the wildcard length and class",
//	}
//	warning.Display(os.Stderr)
//
// Warnings are colored yellow when written to a terminal and plain
// otherwise, so redirected output stays free of escape codes.
package display
