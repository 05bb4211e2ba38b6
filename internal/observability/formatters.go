// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/md-icon-localize/internal/pipeline"
	"github.com/jonathan/md-icon-localize/internal/transform"
	"github.com/jonathan/md-icon-localize/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 12
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		line = truncate(line, boxWidth-4)
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most width runes, marking the cut with "...".
func truncate(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	runes := []rune(s)
	return string(runes[:width-3]) + "..."
}

// writeList appends up to maxItemsToShow bulleted items to sb.
func writeList(sb *strings.Builder, items []string) {
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
}

// PrintIconNames outputs the icon names found in the sources, marking the
// ones added or dropped since the last build.
func (p *Printer) PrintIconNames(current, previous types.IconNameSet) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Referenced: %d (last build: %d)\n", current.Len(), previous.Len()))

	var added, removed []string
	for _, name := range current {
		if !previous.Contains(name) {
			added = append(added, name)
		}
	}
	for _, name := range previous {
		if !current.Contains(name) {
			removed = append(removed, name)
		}
	}

	if len(current) > 0 {
		sb.WriteString("\n")
		writeList(&sb, current)
	}
	if len(added) > 0 {
		sb.WriteString("\nAdded:\n")
		writeList(&sb, added)
	}
	if len(removed) > 0 {
		sb.WriteString("\nRemoved:\n")
		writeList(&sb, removed)
	}

	p.printBox("ICON NAMES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintUnresolved outputs icon names that have no codepoint in the registry.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintUnresolved(missing []string) {
	if len(missing) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ ALL ICON NAMES RESOLVED")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d unknown icon names:\n\n", len(missing)))
	for i, name := range missing {
		sb.WriteString(fmt.Sprintf("⚠ %s", name))
		if i < len(missing)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("UNRESOLVED ICON NAMES", sb.String())
}

// PrintBuildResult outputs a summary of a finished build.
func (p *Printer) PrintBuildResult(result *pipeline.Result, outDir string) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Outcome:  %s\n", result.Outcome))
	sb.WriteString(fmt.Sprintf("Icons:    %d\n", result.Names.Len()))

	if result.Assets != nil {
		if result.Assets.Family != "" {
			sb.WriteString(fmt.Sprintf("Family:   %s\n", result.Assets.Family))
		}
		sb.WriteString(fmt.Sprintf("Glyphs:   %d\n", len(result.Assets.Codepoints)))
		sb.WriteString(fmt.Sprintf("Font:     %d bytes\n", len(result.Assets.Font)))
	}
	if len(result.Missing) > 0 {
		sb.WriteString(fmt.Sprintf("Unknown:  %s\n", strings.Join(result.Missing, ", ")))
	}
	if result.Exported {
		sb.WriteString(fmt.Sprintf("Output:   %s\n", outDir))
	}

	p.printBox("FONT BUILD", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintTransformResult outputs a summary of a source tree rewrite.
func (p *Printer) PrintTransformResult(result *transform.TreeResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Files written:   %d\n", result.Files))
	sb.WriteString(fmt.Sprintf("With icons:      %d\n", result.Rewritten))
	sb.WriteString(fmt.Sprintf("Output:          %s\n", result.OutputRoot))
	if len(result.Missing) > 0 {
		sb.WriteString("\nReplaced with U+FFFD:\n")
		writeList(&sb, result.Missing)
	}

	p.printBox("TRANSFORM", strings.TrimSuffix(sb.String(), "\n"))
}
