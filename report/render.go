package report

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/greencure/greencure-cli/common"
)

// Available output formats
const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
)

const textWidth = 100

// Renderer turns a report document into its final output form.
type Renderer interface {
	Render(doc Document) (string, error)
}

// NewRenderer returns the renderer for the named format.
func NewRenderer(format string) (Renderer, error) {
	switch format {
	case FormatText, "":
		return &textRenderer{}, nil
	case FormatMarkdown:
		return &markdownRenderer{}, nil
	case FormatJSON:
		return &jsonRenderer{}, nil
	}
	return nil, fmt.Errorf("unsupported report format: %s", format)
}

type textRenderer struct{}

func (r *textRenderer) Render(doc Document) (string, error) {
	var b strings.Builder

	fmt.Fprintln(&b, doc.Title)
	fmt.Fprintln(&b, strings.Repeat("=", len(doc.Title)))
	fmt.Fprintf(&b, "Generated: %s\n", doc.GeneratedAt.Format(time.RFC3339))
	fmt.Fprintf(&b, "Filter: %s\n", filterLine(doc))
	fmt.Fprintf(&b, "Entries: %d\n", len(doc.Sections))

	for _, s := range doc.Sections {
		fmt.Fprintln(&b)
		fmt.Fprintln(&b, s.Title)
		fmt.Fprintln(&b, strings.Repeat("-", len(s.Title)))
		for _, line := range fieldLines(s.Fields) {
			fmt.Fprintln(&b, line)
		}
		fmt.Fprintln(&b)
		fmt.Fprintln(&b, common.WrapString(s.Body, textWidth))
	}

	return b.String(), nil
}

type markdownRenderer struct{}

func (r *markdownRenderer) Render(doc Document) (string, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", doc.Title)
	fmt.Fprintf(&b, "- **Generated**: %s\n", doc.GeneratedAt.Format(time.RFC3339))
	fmt.Fprintf(&b, "- **Filter**: %s\n", filterLine(doc))
	fmt.Fprintf(&b, "- **Entries**: %d\n", len(doc.Sections))

	for _, s := range doc.Sections {
		fmt.Fprintf(&b, "\n## %s\n\n", s.Title)
		for _, line := range fieldLines(s.Fields) {
			fmt.Fprintf(&b, "- %s\n", line)
		}
		fmt.Fprintf(&b, "\n%s\n", s.Body)
	}

	return b.String(), nil
}

type jsonRenderer struct{}

func (r *jsonRenderer) Render(doc Document) (string, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode report: %w", err)
	}
	return string(data), nil
}

func filterLine(doc Document) string {
	parts := []string{}
	if doc.Kind != "" {
		parts = append(parts, "kind="+doc.Kind)
	}
	if doc.From != "" {
		parts = append(parts, "from="+doc.From)
	}
	if doc.To != "" {
		parts = append(parts, "to="+doc.To)
	}
	if len(parts) == 0 {
		return "all entries"
	}
	return strings.Join(parts, " ")
}

func fieldLines(fields map[string]string) []string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	lines := make([]string, 0, len(names))
	for _, name := range names {
		lines = append(lines, fmt.Sprintf("%s: %s", name, fields[name]))
	}
	return lines
}
