// Package render produces text and Markdown output from a score report.
package render

import (
	"fmt"
	"strings"

	"github.com/dshills/snartpad/internal/score"
)

// Text renders the contributing lines followed by the grand total.
func Text(r *score.Report) string {
	var b strings.Builder
	width := len(fmt.Sprint(r.Input.LineCount))
	for _, l := range r.Lines {
		fmt.Fprintf(&b, "L%0*d %8d  %s\n", width, l.Line, l.Points, l.Text)
	}
	fmt.Fprintf(&b, "Grand Total: %d\n", r.Total)
	return b.String()
}

// Markdown renders a report as a Markdown document.
func Markdown(r *score.Report) string {
	var b strings.Builder

	b.WriteString("# Snart Pad Report\n\n")
	if r.Input.NotepadFile != "" {
		fmt.Fprintf(&b, "**Notepad:** %s (%d lines)\n", r.Input.NotepadFile, r.Input.LineCount)
	}
	fmt.Fprintf(&b, "**Grand Total:** %d\n\n", r.Total)

	// Definitions
	b.WriteString("## Definitions\n\n")
	if len(r.Definitions) == 0 {
		b.WriteString("No definitions.\n\n")
	} else {
		b.WriteString("| Pattern | Points |\n|---|---:|\n")
		for _, d := range r.Definitions {
			fmt.Fprintf(&b, "| `%s` | %d |\n", escapeCell(d.Pattern), d.Points)
		}
		b.WriteString("\n")
	}

	// Lines
	b.WriteString("## Lines\n\n")
	if len(r.Lines) == 0 {
		b.WriteString("No scoring lines.\n\n")
		return b.String()
	}
	b.WriteString("| Line | Text | Literals | Matches | Multiplier | Points |\n")
	b.WriteString("|---:|---|---:|---|---|---:|\n")
	for _, l := range r.Lines {
		fmt.Fprintf(&b, "| %d | %s | %d | %s | %s | %d |\n",
			l.Line, escapeCell(l.Text), l.Literals, hits(l.Hits), multiplier(l), l.Points)
	}
	b.WriteString("\n")

	return b.String()
}

func hits(hs []score.Hit) string {
	if len(hs) == 0 {
		return ""
	}
	parts := make([]string, len(hs))
	for i, h := range hs {
		parts[i] = fmt.Sprintf("`%s` x%d = %d", escapeCell(h.Pattern), h.Count, h.Points)
	}
	return strings.Join(parts, ", ")
}

func multiplier(l score.LineResult) string {
	switch {
	case l.Multiplier == nil:
		return ""
	case l.Applied:
		return fmt.Sprintf("x%d", *l.Multiplier)
	default:
		return fmt.Sprintf("x%d (not applied)", *l.Multiplier)
	}
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
