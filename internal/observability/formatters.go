// Package observability provides formatted output utilities for verbose
// CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/GH-MarkAnthonyManzon/alamin-natin/internal/advisory"
	"github.com/GH-MarkAnthonyManzon/alamin-natin/internal/catalog"
	"github.com/GH-MarkAnthonyManzon/alamin-natin/internal/verify"
)

// boxWidth is the default width for formatted output boxes
const boxWidth = 72

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

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintResult outputs a human-readable summary of a verification result.
func (p *Printer) PrintResult(sourceURL string, result *verify.Result) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Source:   %s\n", sourceURL))
	if !result.Found() {
		sb.WriteString("Outcome:  no matching content found")
		p.printBox("VERIFICATION RESULT", sb.String())
		return
	}

	sb.WriteString(fmt.Sprintf("Outcome:  %d matching source(s)\n", len(result.MatchedSources)))
	for i, source := range result.MatchedSources {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("Match:    %s\n", source))
		if official := catalog.LookupOfficial(source); official != nil {
			sb.WriteString(fmt.Sprintf("Official: %s (%s)\n", official.Name, official.Type))
		}
		sb.WriteString(fmt.Sprintf("Snippet:  %s\n", result.Snippets[i]))
	}
	p.printBox("VERIFICATION RESULT", strings.TrimRight(sb.String(), "\n"))
}

// PrintAnalysis outputs the advisory commentary.
func (p *Printer) PrintAnalysis(analysis *advisory.Analysis) {
	if analysis == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Summary:    %s\n", analysis.Summary))
	sb.WriteString(fmt.Sprintf("Suggestion: %s\n", analysis.Suggestion))
	sb.WriteString(fmt.Sprintf("Disclaimer: %s", analysis.Disclaimer))
	p.printBox("AI ANALYSIS", sb.String())
}
