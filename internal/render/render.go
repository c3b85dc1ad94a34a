// Package render formats a decision result for display. Renderers are pure
// consumers of the engine's result; they never influence its semantics.
package render

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"

	"github.com/gmartijn/Threatmodelselector/internal/engine"
)

// wrapWidth is the column at which text output wraps detail lines.
const wrapWidth = 80

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	pickStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	headerStyle = lipgloss.NewStyle().Underline(true)
)

// Configure sets the lipgloss color profile from the configured color mode:
// "always" forces ANSI colors, "never" strips them, "auto" detects the
// terminal via termenv.
func Configure(colorMode string) {
	switch colorMode {
	case "always":
		lipgloss.SetColorProfile(termenv.ANSI256)
	case "never":
		lipgloss.SetColorProfile(termenv.Ascii)
	default:
		lipgloss.SetColorProfile(termenv.ColorProfile())
	}
}

// Render formats the result in the given format (text, markdown, or json).
func Render(result *engine.Result, format string) (string, error) {
	switch format {
	case "json":
		return JSON(result)
	case "markdown":
		return Markdown(result), nil
	case "text":
		return Text(result), nil
	default:
		return "", fmt.Errorf("unknown output format: %q", format)
	}
}

// JSON renders the result as indented JSON with the stable result schema.
func JSON(result *engine.Result) (string, error) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal result: %w", err)
	}
	return string(data) + "\n", nil
}

// Text renders the result for terminal display.
func Text(result *engine.Result) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("=== Recommended Threat Modeling Approach ==="))
	b.WriteString("\n\n")

	if result.TopPick != "" {
		b.WriteString("Top pick: ")
		b.WriteString(pickStyle.Render(string(result.TopPick)))
		b.WriteString("\n")
	}
	if len(result.AlsoConsider) > 0 {
		b.WriteString("Also consider: ")
		b.WriteString(joinLabels(result.AlsoConsider))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i, rec := range result.Recommendations {
		b.WriteString("- ")
		b.WriteString(labelStyle.Render(string(rec)))
		if i < len(result.Details) && result.Details[i] != "" {
			b.WriteString(": ")
			b.WriteString(wrap(result.Details[i], wrapWidth, "  "))
		}
		b.WriteString("\n")
	}

	if len(result.Rationale) > 0 {
		b.WriteString("\n")
		b.WriteString(headerStyle.Render("Rationale:"))
		b.WriteString("\n")
		for _, line := range result.Rationale {
			b.WriteString("* ")
			b.WriteString(wrap(line, wrapWidth, "  "))
			b.WriteString("\n")
		}
	}

	if len(result.Scores) > 0 {
		b.WriteString("\n")
		b.WriteString(headerStyle.Render("Scores:"))
		b.WriteString("\n")
		for _, entry := range sortedScores(result.Scores) {
			fmt.Fprintf(&b, "  %s: %d\n", entry.label, entry.score)
		}
	}

	if len(result.Answers) > 0 {
		b.WriteString("\n")
		b.WriteString(headerStyle.Render("Answers:"))
		b.WriteString("\n")
		for _, id := range sortedAnswerIDs(result.Answers) {
			fmt.Fprintf(&b, "  %s: %s\n", dimStyle.Render(strings.ToUpper(id)), result.Answers[id])
		}
	}

	return b.String()
}

// Markdown renders the result as a markdown document.
func Markdown(result *engine.Result) string {
	var b strings.Builder

	b.WriteString("# Recommended Threat Modeling Approach\n\n")

	if result.TopPick != "" {
		fmt.Fprintf(&b, "**Top pick:** %s\n\n", result.TopPick)
	}
	if len(result.AlsoConsider) > 0 {
		fmt.Fprintf(&b, "**Also consider:** %s\n\n", joinLabels(result.AlsoConsider))
	}

	b.WriteString("## Recommendations\n\n")
	for i, rec := range result.Recommendations {
		detail := ""
		if i < len(result.Details) {
			detail = result.Details[i]
		}
		fmt.Fprintf(&b, "- **%s** — %s\n", rec, detail)
	}

	if len(result.Scores) > 0 {
		b.WriteString("\n## Scores\n\n")
		b.WriteString("| Methodology | Score |\n|---|---|\n")
		for _, entry := range sortedScores(result.Scores) {
			fmt.Fprintf(&b, "| %s | %d |\n", entry.label, entry.score)
		}
	}

	if len(result.Rationale) > 0 {
		b.WriteString("\n## Rationale\n\n")
		for _, line := range result.Rationale {
			fmt.Fprintf(&b, "- %s\n", line)
		}
	}

	return b.String()
}

type scoreEntry struct {
	label engine.Label
	score int
}

// sortedScores orders score entries by score descending, then label
// ascending for a stable display.
func sortedScores(scores map[engine.Label]int) []scoreEntry {
	entries := make([]scoreEntry, 0, len(scores))
	for label, score := range scores {
		entries = append(entries, scoreEntry{label, score})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].score != entries[j].score {
			return entries[i].score > entries[j].score
		}
		return entries[i].label < entries[j].label
	})
	return entries
}

func sortedAnswerIDs(answers map[string]engine.Answer) []string {
	ids := make([]string, 0, len(answers))
	for id := range answers {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func joinLabels(labels []engine.Label) string {
	parts := make([]string, len(labels))
	for i, l := range labels {
		parts[i] = string(l)
	}
	return strings.Join(parts, ", ")
}

// wrap breaks text into lines no wider than width (measured in display
// cells, not bytes) and indents continuation lines with indent.
func wrap(text string, width int, indent string) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return text
	}

	var b strings.Builder
	lineWidth := 0
	for i, word := range words {
		w := runewidth.StringWidth(word)
		if i == 0 {
			b.WriteString(word)
			lineWidth = w
			continue
		}
		if lineWidth+1+w > width {
			b.WriteString("\n")
			b.WriteString(indent)
			b.WriteString(word)
			lineWidth = runewidth.StringWidth(indent) + w
			continue
		}
		b.WriteString(" ")
		b.WriteString(word)
		lineWidth += 1 + w
	}
	return b.String()
}
