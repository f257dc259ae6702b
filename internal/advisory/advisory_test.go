package advisory

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackAnalysis(t *testing.T) {
	found := FallbackAnalysis(true)
	assert.Contains(t, found.Summary, "appears in the source")
	assert.Equal(t, Disclaimer, found.Disclaimer)

	missed := FallbackAnalysis(false)
	assert.Contains(t, missed.Summary, "not found")
	assert.Equal(t, Disclaimer, missed.Disclaimer)

	// Deterministic: repeated calls yield identical output.
	assert.Equal(t, found, FallbackAnalysis(true))
	assert.Equal(t, missed, FallbackAnalysis(false))
}

func TestParseAnalysis_Valid(t *testing.T) {
	analysis, err := parseAnalysis(`{"summary": "Found a direct match.", "suggestion": "Review the full article."}`)
	require.NoError(t, err)
	assert.Equal(t, "Found a direct match.", analysis.Summary)
	assert.Equal(t, "Review the full article.", analysis.Suggestion)
	assert.Equal(t, Disclaimer, analysis.Disclaimer)
}

func TestParseAnalysis_StripsCodeFences(t *testing.T) {
	raw := "```json\n{\"summary\": \"ok\", \"suggestion\": \"ok\"}\n```"
	analysis, err := parseAnalysis(raw)
	require.NoError(t, err)
	assert.Equal(t, "ok", analysis.Summary)
}

func TestParseAnalysis_Invalid(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"not json", "I could not answer in JSON, sorry."},
		{"missing suggestion", `{"summary": "only half"}`},
		{"empty summary", `{"summary": "", "suggestion": "x"}`},
		{"wrong types", `{"summary": 3, "suggestion": []}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseAnalysis(tc.raw)
			assert.Error(t, err)
		})
	}
}

func TestBuildPrompt(t *testing.T) {
	long := strings.Repeat("x", 200)
	prompt := buildPrompt(long, "https://example.com", true, []string{"snippet text"})

	assert.Contains(t, prompt, "Found: YES")
	assert.Contains(t, prompt, "snippet text")
	assert.Contains(t, prompt, "...")
	assert.NotContains(t, prompt, long, "citation must be truncated in the prompt")

	prompt = buildPrompt("short citation", "https://example.com", false, nil)
	assert.Contains(t, prompt, "Found: NO")
	assert.Contains(t, prompt, "checking other sources")
}

func TestNewGeminiAnalyzer_RequiresKey(t *testing.T) {
	_, err := NewGeminiAnalyzer(t.Context(), "", "")
	assert.Error(t, err)
}
