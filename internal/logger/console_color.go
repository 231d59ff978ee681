package logger

import (
	"fmt"

	"github.com/fatih/color"
)

// colorScheme defines consistent colors for summary metrics.
// Green: templates that folded names together
// Yellow: names left as literals
// Cyan: labels and identifiers
type colorScheme struct {
	success *color.Color
	warn    *color.Color
	label   *color.Color
	value   *color.Color
}

// newColorScheme creates the standard color scheme for metrics.
func newColorScheme() *colorScheme {
	return &colorScheme{
		success: color.New(color.FgGreen),
		warn:    color.New(color.FgYellow),
		label:   color.New(color.FgCyan),
		value:   color.New(color.FgWhite),
	}
}

// formatColorizedMetric formats a single metric with colorized label and value.
// Format: "label: value"
func formatColorizedMetric(label string, value interface{}, valueColor *color.Color, scheme *colorScheme) string {
	if valueColor == nil {
		valueColor = scheme.value
	}
	return fmt.Sprintf("%s: %s", scheme.label.Sprint(label), valueColor.Sprintf("%v", value))
}

// formatColorizedInference renders an inference summary with color coding.
// Format: "names: N, templates: N, wildcards: N, literals: N, strategy: S"
func formatColorizedInference(s InferenceSummary) string {
	scheme := newColorScheme()

	literalColor := scheme.value
	if s.Literals() > 0 {
		literalColor = scheme.warn
	}

	return fmt.Sprintf("Inference complete - %s, %s, %s, %s, %s (%s)",
		formatColorizedMetric("names", s.Names, nil, scheme),
		formatColorizedMetric("templates", s.Templates, nil, scheme),
		formatColorizedMetric("wildcards", s.Wildcards, scheme.success, scheme),
		formatColorizedMetric("literals", s.Literals(), literalColor, scheme),
		formatColorizedMetric("strategy", s.Strategy, nil, scheme),
		formatElapsed(s.Duration),
	)
}

// formatPlainInference renders an inference summary without color.
func formatPlainInference(s InferenceSummary) string {
	return fmt.Sprintf("Inference complete - names: %d, templates: %d, wildcards: %d, literals: %d, strategy: %s (%s)",
		s.Names, s.Templates, s.Wildcards, s.Literals(), s.Strategy, formatElapsed(s.Duration))
}
