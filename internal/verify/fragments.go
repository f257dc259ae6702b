package verify

import (
	"sort"
	"strings"

	"github.com/GH-MarkAnthonyManzon/alamin-natin/internal/textutil"
)

const (
	// maxCandidates is how many ranked fragments are passed to the
	// acceptance check.
	maxCandidates = 3
	// minFragmentLen merges short blocks into their neighbor so that
	// ranking is not dominated by one-line headings.
	minFragmentLen = 200
	// coverageBonusWeight scales the distinct-keyword coverage bonus
	// added to the raw hit count when ranking fragments. A long fragment
	// with hits on varied keywords outranks a short one repeating a
	// single keyword.
	coverageBonusWeight = 2.0
)

// splitFragments subdivides extracted page text into candidate blocks at
// blank lines, merging runts into their neighbor. Text with no blank lines
// comes back as the whole page in a single fragment.
func splitFragments(content string) []string {
	blocks := strings.Split(content, "\n\n")
	var fragments []string
	for _, block := range blocks {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		if n := len(fragments); n > 0 && len(fragments[n-1]) < minFragmentLen {
			fragments[n-1] = fragments[n-1] + "\n\n" + block
			continue
		}
		fragments = append(fragments, block)
	}
	return fragments
}

// rankFragments orders fragments by a combined score of total keyword hit
// count plus a bonus proportional to the fraction of distinct keywords
// matched, and returns the top maxCandidates. Ties keep original order.
// This ranking intentionally differs from the accept/reject coverage score
// in Score: counting repeats matters for picking the richest fragment but
// not for the final accept decision.
func rankFragments(fragments []string, citationText string) []string {
	if len(fragments) <= 1 {
		return fragments
	}

	keywords := textutil.Keywords(citationText, scoringKeywordMinLen)
	if len(keywords) == 0 {
		if len(fragments) > maxCandidates {
			return fragments[:maxCandidates]
		}
		return fragments
	}
	keywordSet := make(map[string]bool, len(keywords))
	for _, keyword := range keywords {
		keywordSet[keyword] = true
	}

	type ranked struct {
		fragment string
		combined float64
	}
	scored := make([]ranked, 0, len(fragments))
	for _, fragment := range fragments {
		hits := 0
		distinct := make(map[string]bool)
		for _, token := range textutil.Tokenize(fragment) {
			if keywordSet[token] {
				hits++
				distinct[token] = true
			}
		}
		coverage := float64(len(distinct)) / float64(len(keywords))
		scored = append(scored, ranked{
			fragment: fragment,
			combined: float64(hits) + coverageBonusWeight*coverage,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].combined > scored[j].combined
	})

	n := min(maxCandidates, len(scored))
	top := make([]string, 0, n)
	for _, r := range scored[:n] {
		top = append(top, r.fragment)
	}
	return top
}
