package advisory

// FallbackAnalysis is the deterministic commentary used whenever the model
// is unavailable or replies with something unusable. Templated only on
// whether any source matched, so the core never depends on the model.
func FallbackAnalysis(found bool) *Analysis {
	if found {
		return &Analysis{
			Summary:    "The citation appears in the source with matching content.",
			Suggestion: "Review the source to verify the full context and accuracy.",
			Disclaimer: Disclaimer,
		}
	}
	return &Analysis{
		Summary:    "The citation was not found in the source document.",
		Suggestion: "Try alternative sources or check for paraphrasing or updates.",
		Disclaimer: Disclaimer,
	}
}
