// Package advisory turns a verification result into human-readable
// commentary via an LLM. The model is strictly optional: every failure
// path degrades to a deterministic templated fallback, so verification
// never depends on the model being reachable.
package advisory

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Disclaimer is attached to every analysis, model-generated or not.
const Disclaimer = "AI analysis may contain errors. Verify with primary sources."

const (
	defaultModel = "gemini-1.5-flash-latest"
	// Prompt inputs are truncated to keep responses fast.
	maxCitationChars = 150
	maxSnippetChars  = 100
)

// Analysis is the advisory commentary for one verification result.
type Analysis struct {
	Summary    string `json:"summary"`
	Suggestion string `json:"suggestion"`
	Disclaimer string `json:"disclaimer"`
}

// Analyzer produces advisory commentary for a verification result.
type Analyzer interface {
	Analyze(ctx context.Context, citationText, sourceURL string, matchedSources, snippets []string) (*Analysis, error)
	Close() error
}

// GeminiAnalyzer implements Analyzer on the Gemini API.
type GeminiAnalyzer struct {
	client *genai.Client
	model  string
}

// NewGeminiAnalyzer creates an analyzer. model may be empty to use the
// default.
func NewGeminiAnalyzer(ctx context.Context, apiKey, model string) (*GeminiAnalyzer, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	if model == "" {
		model = defaultModel
	}
	return &GeminiAnalyzer{client: client, model: model}, nil
}

// Analyze asks the model for a short summary and suggestion. Any failure
// (API error, malformed or schema-violating reply) returns the
// deterministic fallback together with the error so callers can flag the
// degradation without losing the commentary.
func (a *GeminiAnalyzer) Analyze(ctx context.Context, citationText, sourceURL string, matchedSources, snippets []string) (*Analysis, error) {
	found := len(matchedSources) > 0

	model := a.client.GenerativeModel(a.model)
	model.SetTemperature(0.3)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(buildPrompt(citationText, sourceURL, found, snippets)))
	if err != nil {
		return FallbackAnalysis(found), fmt.Errorf("advisory generation failed: %w", err)
	}

	text, err := extractText(resp)
	if err != nil {
		return FallbackAnalysis(found), err
	}

	analysis, err := parseAnalysis(text)
	if err != nil {
		return FallbackAnalysis(found), err
	}
	return analysis, nil
}

// Close releases the underlying client.
func (a *GeminiAnalyzer) Close() error {
	if a.client != nil {
		return a.client.Close()
	}
	return nil
}

func buildPrompt(citationText, sourceURL string, found bool, snippets []string) string {
	var sb strings.Builder
	sb.WriteString("Citation verification result for the \"Alamin Natin\" platform:\n\n")
	fmt.Fprintf(&sb, "Citation: %q\n", truncate(citationText, maxCitationChars))
	fmt.Fprintf(&sb, "Source: %s\n", sourceURL)
	if found {
		sb.WriteString("Found: YES\n")
	} else {
		sb.WriteString("Found: NO\n")
	}
	if len(snippets) > 0 && snippets[0] != "" {
		fmt.Fprintf(&sb, "Match: %q\n", truncate(snippets[0], maxSnippetChars))
	}
	sb.WriteString("\nRespond with JSON only:\n")
	sb.WriteString(`{"summary": "one 15-word sentence on what was found", "suggestion": "one 15-word sentence on what to do next"}`)
	sb.WriteString("\n\n")
	if found {
		sb.WriteString("Confirm the match and suggest reviewing the full context.")
	} else {
		sb.WriteString("Suggest possible reasons (paraphrasing, wrong source) and recommend checking other sources.")
	}
	return sb.String()
}

// parseAnalysis decodes and schema-validates the model reply, then fills
// the constant disclaimer.
func parseAnalysis(text string) (*Analysis, error) {
	text = cleanJSONBlock(text)
	if err := validateReply(text); err != nil {
		return nil, err
	}

	var analysis Analysis
	if err := json.Unmarshal([]byte(text), &analysis); err != nil {
		return nil, fmt.Errorf("failed to parse advisory reply: %w", err)
	}
	analysis.Disclaimer = Disclaimer
	return &analysis, nil
}

func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}
	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}
	return strings.Join(parts, ""), nil
}

// cleanJSONBlock removes markdown code fences that models wrap around JSON
// even when instructed not to.
func cleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
