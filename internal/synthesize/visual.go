// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package synthesize

import (
	"fmt"
	"strings"
)

// visualAsset is one entry of the visual catalog. Tags are matched against
// heading and keyword tokens for relevance scoring.
type visualAsset struct {
	slug    string
	alt     string
	caption string
	tags    []string

	// table, when set, renders an inline markdown data table under the image.
	table string
}

// visualCatalog holds the known visual assets. The final generic entry is
// the guaranteed fallback when nothing topic-specific scores.
var visualCatalog = []visualAsset{
	{
		slug:    "symptom-overview-chart",
		alt:     "Chart of commonly reported symptoms by frequency",
		caption: "Commonly reported symptoms, ordered by how frequently they appear in clinical surveys.",
		tags:    []string{"symptom", "signs", "warning", "deficiency", "vitamin", "zinc"},
	},
	{
		slug:    "testing-levels-diagram",
		alt:     "Diagram of laboratory reference ranges",
		caption: "How laboratory reference ranges divide into deficient, insufficient, and sufficient zones.",
		tags:    []string{"test", "testing", "diagnos", "levels", "blood", "results"},
		table: "| Zone | Typical action |\n" +
			"|------|----------------|\n" +
			"| Deficient | Active treatment and retesting |\n" +
			"| Insufficient | Dietary change, modest supplementation |\n" +
			"| Sufficient | Maintenance only |\n",
	},
	{
		slug:    "treatment-timeline",
		alt:     "Timeline of a typical treatment and recovery course",
		caption: "A typical correction course: treatment, first improvements, and the retest milestone.",
		tags:    []string{"treatment", "recovery", "supplement", "dosage", "how long", "timeline"},
	},
	{
		slug:    "income-growth-curve",
		alt:     "Growth curve of a typical online income stream",
		caption: "Typical revenue trajectory: a long flat start, then compounding once the model is proven.",
		tags:    []string{"income", "dropshipping", "affiliate", "earnings", "money", "revenue", "scaling"},
		table: "| Phase | Months | Focus |\n" +
			"|-------|--------|-------|\n" +
			"| Validation | 1-2 | Prove demand |\n" +
			"| Systemization | 3-6 | Repeatable process |\n" +
			"| Scale | 7+ | Grow what works |\n",
	},
	{
		slug:    "strategy-funnel",
		alt:     "Funnel diagram from strategy to measurable results",
		caption: "From positioning to measurement: where each decision belongs in the funnel.",
		tags:    []string{"marketing", "strategy", "business", "metrics", "plan", "campaign"},
	},
	{
		slug:    "learning-loop",
		alt:     "Diagram of the learn-apply-review loop",
		caption: "The learn-apply-review loop that turns information into working skill.",
		tags:    []string{"learn", "started", "steps", "basics", "how", "getting"},
	},
	{
		slug:    "topic-overview",
		alt:     "Overview illustration for the article topic",
		caption: "The key ideas of this topic at a glance.",
		tags:    nil, // generic fallback; matches nothing, always available
	},
}

// VisualBlock returns the markdown visual-content block for a section:
// an image reference with caption, plus an inline data table when the
// selected asset carries one (R4). Selection scores each catalog asset by
// tag overlap with heading and keyword tokens; the generic fallback asset
// guarantees a result even when nothing topic-specific matches.
func VisualBlock(heading, keyword string, index int) string {
	var tokens []string
	for _, tok := range strings.Fields(strings.ToLower(heading + " " + keyword)) {
		// Short tokens ("of", "d") match half the catalog by accident.
		if len(tok) >= 3 {
			tokens = append(tokens, tok)
		}
	}

	best := len(visualCatalog) - 1 // generic fallback
	bestScore := 0
	for i, asset := range visualCatalog {
		score := 0
		for _, tag := range asset.tags {
			for _, tok := range tokens {
				if strings.Contains(tok, tag) || strings.Contains(tag, tok) {
					score++
				}
			}
		}
		if score > bestScore {
			best, bestScore = i, score
		}
	}

	asset := visualCatalog[best]
	var b strings.Builder
	fmt.Fprintf(&b, "![%s](images/%s-%d.png)\n", asset.alt, asset.slug, index+1)
	fmt.Fprintf(&b, "*%s*", asset.caption)
	if asset.table != "" {
		b.WriteString("\n\n")
		b.WriteString(asset.table)
	}
	return b.String()
}
