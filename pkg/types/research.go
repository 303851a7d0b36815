// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "strings"

// SearchResult is one ranked entry of simulated or live SERP data.
// Per prd011-research R3.1 each result carries title, snippet, url, and
// its 1-based position in the source ranking.
type SearchResult struct {
	// Title is the result headline as returned by the provider.
	Title string `json:"title" yaml:"title"`

	// Snippet is the short excerpt shown under the headline.
	Snippet string `json:"snippet" yaml:"snippet"`

	// URL is the result link.
	URL string `json:"url" yaml:"url"`

	// Position is the 1-based rank within the provider's response.
	Position int `json:"position" yaml:"position"`
}

// ResearchBundle is the normalized research input for one generation
// request. Created once by the aggregator and read-only downstream.
// Per prd011-research R4.1 a bundle is never empty: when every lookup
// fails or returns nothing, a deterministic topic-seeded fallback is
// substituted before the bundle reaches any consumer.
type ResearchBundle struct {
	// TopResults holds ranked snippet results, best first.
	TopResults []SearchResult `json:"top_results" yaml:"top_results"`

	// RelatedQuestions holds question phrasings associated with the keyword,
	// in provider order.
	RelatedQuestions []string `json:"related_questions" yaml:"related_questions"`

	// KeyStatistics holds short statistic sentences usable verbatim in
	// section bodies.
	KeyStatistics []string `json:"key_statistics" yaml:"key_statistics"`

	// AuthorityContent is the concatenation of result snippets, used as
	// background prose by the synthesizer.
	AuthorityContent string `json:"authority_content" yaml:"authority_content"`

	// Fallback reports whether this bundle came from the canned fallback
	// banks rather than live lookups.
	Fallback bool `json:"fallback" yaml:"fallback"`
}

// IsEmpty reports whether the bundle carries no usable research at all.
func (b ResearchBundle) IsEmpty() bool {
	return len(b.TopResults) == 0 && len(b.RelatedQuestions) == 0 && len(b.KeyStatistics) == 0
}

// Statistic returns the i-th key statistic, cycling through the list so
// callers can interpolate one per section without bounds checks. Empty
// string only when the bundle has no statistics, which the fallback
// guarantee rules out for aggregator-produced bundles.
func (b ResearchBundle) Statistic(i int) string {
	if len(b.KeyStatistics) == 0 {
		return ""
	}
	return b.KeyStatistics[i%len(b.KeyStatistics)]
}

// BuildAuthorityContent joins the snippets of the given results into a
// single background-prose string.
func BuildAuthorityContent(results []SearchResult) string {
	var parts []string
	for _, r := range results {
		if s := strings.TrimSpace(r.Snippet); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}
