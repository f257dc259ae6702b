package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/GH-MarkAnthonyManzon/alamin-natin/internal/advisory"
	"github.com/GH-MarkAnthonyManzon/alamin-natin/internal/verify"
)

func TestPrintResult_Found(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintResult("https://senate.gov.ph/press/2018", &verify.Result{
		MatchedSources: []string{"https://senate.gov.ph/press/2018"},
		Snippets:       []string{"co-authored and voted for the foi bill"},
	})

	out := buf.String()
	assert.Contains(t, out, "VERIFICATION RESULT")
	assert.Contains(t, out, "1 matching source(s)")
	assert.Contains(t, out, "Senate of the Philippines")
	assert.Contains(t, out, "co-authored")
}

func TestPrintResult_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintResult("https://example.com", &verify.Result{MatchedSources: []string{}, Snippets: []string{}})
	assert.Contains(t, buf.String(), "no matching content found")

	buf.Reset()
	p.PrintResult("https://example.com", nil)
	assert.Empty(t, buf.String())
}

func TestPrintAnalysis(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintAnalysis(advisory.FallbackAnalysis(false))

	out := buf.String()
	assert.Contains(t, out, "AI ANALYSIS")
	assert.Contains(t, out, "not found")
}
