package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"gopkg.in/yaml.v3"
)

// Format selects a Renderer.
type Format string

const (
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

// ParseFormat validates and normalizes a format name. Empty selects text.
func ParseFormat(format string) (Format, error) {
	format = strings.ToLower(strings.TrimSpace(format))

	switch format {
	case "":
		return FormatText, nil
	case "md":
		return FormatMarkdown, nil
	case "yml":
		return FormatYAML, nil
	}

	switch f := Format(format); f {
	case FormatText, FormatJSON, FormatYAML, FormatMarkdown, FormatHTML:
		return f, nil
	}
	return "", fmt.Errorf("invalid format '%s': must be one of: text, json, yaml, markdown (or md), html", format)
}

// Renderer converts a Report to its textual form.
type Renderer interface {
	Render(r *Report) (string, error)
}

// TextRenderer writes one line per template (inference) or matched name.
type TextRenderer struct{}

// Render implements Renderer.
func (tr *TextRenderer) Render(r *Report) (string, error) {
	if err := check(r); err != nil {
		return "", err
	}
	lines := r.Lines()
	if len(lines) == 0 {
		return "", nil
	}
	return strings.Join(lines, "\n") + "\n", nil
}

// JSONRenderer writes the report as JSON.
type JSONRenderer struct {
	Pretty bool // Enable pretty printing with indentation
}

// Render implements Renderer.
func (jr *JSONRenderer) Render(r *Report) (string, error) {
	if err := check(r); err != nil {
		return "", err
	}

	var data []byte
	var err error
	if jr.Pretty {
		data, err = json.MarshalIndent(r, "", "  ")
	} else {
		data, err = json.Marshal(r)
	}
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return string(data) + "\n", nil
}

// YAMLRenderer writes the report as YAML.
type YAMLRenderer struct{}

// Render implements Renderer.
func (yr *YAMLRenderer) Render(r *Report) (string, error) {
	if err := check(r); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return "", fmt.Errorf("failed to marshal YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("failed to marshal YAML: %w", err)
	}
	return buf.String(), nil
}

// MarkdownRenderer writes a summary and a table of entries.
type MarkdownRenderer struct {
	IncludeTimestamp bool // Include generation timestamp in header
}

// Render implements Renderer.
func (mr *MarkdownRenderer) Render(r *Report) (string, error) {
	if err := check(r); err != nil {
		return "", err
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# %s\n\n", r.title()))
	if mr.IncludeTimestamp {
		sb.WriteString(fmt.Sprintf("**Generated**: %s\n\n", r.GeneratedAt.Format("2006-01-02 15:04:05")))
	}

	sb.WriteString("## Summary\n\n")
	if r.Source != "" {
		sb.WriteString(fmt.Sprintf("- **Source**: %s\n", r.Source))
	}
	if r.Strategy != "" {
		sb.WriteString(fmt.Sprintf("- **Strategy**: %s\n", r.Strategy))
	}
	if r.Command == CommandInfer {
		sb.WriteString(fmt.Sprintf("- **Names**: %d\n", r.Total))
		sb.WriteString(fmt.Sprintf("- **Templates**: %d\n", len(r.Entries)))
		sb.WriteString(fmt.Sprintf("- **Wildcards**: %d\n", r.Wildcards()))
	} else {
		matched := len(r.Lines())
		sb.WriteString(fmt.Sprintf("- **Candidates**: %d\n", r.Total))
		sb.WriteString(fmt.Sprintf("- **Matched**: %d\n", matched))
	}
	sb.WriteString("\n")

	if len(r.Entries) > 0 {
		sb.WriteString("## Templates\n\n")
		sb.WriteString("| Template | Wildcard | Glob | Printf | Members |\n")
		sb.WriteString("|----------|----------|------|--------|---------|\n")
		for _, e := range r.Entries {
			position, glob, printf := "-", "-", "-"
			if e.Wildcard {
				position = e.Position
				glob = escapeCell(e.Glob)
				printf = escapeCell(e.Printf)
			}
			sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %d |\n", escapeCell(e.Template), position, glob, printf, len(e.Members)))
		}
		sb.WriteString("\n")
	}

	for _, e := range r.Entries {
		if !e.Wildcard || len(e.Members) == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("### %s\n\n", escapeCell(e.Template)))
		for _, m := range e.Members {
			sb.WriteString(fmt.Sprintf("- %s\n", escapeCell(m)))
		}
		sb.WriteString("\n")
	}

	return sb.String(), nil
}

// HTMLRenderer converts the Markdown rendering to a standalone HTML page.
type HTMLRenderer struct {
	markdown goldmark.Markdown
}

// NewHTMLRenderer creates an HTMLRenderer with table support.
func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{
		markdown: goldmark.New(goldmark.WithExtensions(extension.Table)),
	}
}

// Render implements Renderer.
func (hr *HTMLRenderer) Render(r *Report) (string, error) {
	md, err := (&MarkdownRenderer{IncludeTimestamp: true}).Render(r)
	if err != nil {
		return "", err
	}

	markdown := hr.markdown
	if markdown == nil {
		markdown = goldmark.New(goldmark.WithExtensions(extension.Table))
	}

	var body bytes.Buffer
	if err := markdown.Convert([]byte(md), &body); err != nil {
		return "", fmt.Errorf("failed to convert markdown: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	sb.WriteString(fmt.Sprintf("<title>%s</title>\n", r.title()))
	sb.WriteString("</head>\n<body>\n")
	sb.Write(body.Bytes())
	sb.WriteString("</body>\n</html>\n")
	return sb.String(), nil
}

// NewRenderer returns the renderer for format.
func NewRenderer(format Format) (Renderer, error) {
	switch format {
	case FormatText, "":
		return &TextRenderer{}, nil
	case FormatJSON:
		return &JSONRenderer{Pretty: true}, nil
	case FormatYAML:
		return &YAMLRenderer{}, nil
	case FormatMarkdown:
		return &MarkdownRenderer{IncludeTimestamp: true}, nil
	case FormatHTML:
		return NewHTMLRenderer(), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (supported: text, json, yaml, markdown, html)", format)
	}
}

// Render renders r in the named format.
func Render(r *Report, format string) (string, error) {
	f, err := ParseFormat(format)
	if err != nil {
		return "", err
	}
	renderer, err := NewRenderer(f)
	if err != nil {
		return "", err
	}
	return renderer.Render(r)
}

func check(r *Report) error {
	if r == nil {
		return fmt.Errorf("report cannot be nil")
	}
	if err := r.Validate(); err != nil {
		return fmt.Errorf("invalid report: %w", err)
	}
	return nil
}
