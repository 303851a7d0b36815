// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package assemble concatenates the generated pieces into the final
// markdown document.
// Implements: prd015-assembly (R1-R5);
//
//	docs/ARCHITECTURE § Document Assembly.
package assemble

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/pdiddy/article-engine/internal/plan"
	"github.com/pdiddy/article-engine/pkg/types"
)

// skimWPM is the reader-facing words-per-minute used for the meta line's
// reading-time estimate. Deliberately faster than the conservative rate
// the metrics panel uses; the two serve different audiences.
const skimWPM = 250

// Input carries everything the assembler concatenates. Bodies must be
// parallel to Headings; order is preserved exactly (R2).
type Input struct {
	Keyword  string
	Category types.TopicCategory
	Template types.ContentTemplate
	Bundle   types.ResearchBundle
	Headings []string
	Bodies   []string

	// FAQ is the rendered FAQ block; empty means the block was not
	// requested and is omitted entirely.
	FAQ string

	Options types.GenerationOptions

	// Pick selects among n phrase candidates. Nil defaults to always
	// choosing the first, which keeps bare assembly deterministic.
	Pick Picker

	// Now stamps the document. Zero means time.Now().
	Now time.Time
}

// Document assembles the final markdown: title, meta line, summary, quick
// facts, intro, TOC, section bodies separated by horizontal rules, the
// optional FAQ block, conclusion, and the schema-markup block carrying the
// final word count (R1-R5).
func Document(in Input) string {
	pick := in.Pick
	if pick == nil {
		pick = func(int) int { return 0 }
	}
	now := in.Now
	if now.IsZero() {
		now = time.Now()
	}

	title := Title(in.Keyword, in.Category, pick)

	var parts []string
	parts = append(parts, "# "+title)

	if in.Template.RequiresMedicalReview() {
		parts = append(parts,
			"> **Medical Disclaimer:** This article is for informational purposes only and is not a substitute for professional medical advice, diagnosis, or treatment. Always consult a qualified healthcare provider about your specific situation.",
			fmt.Sprintf("> *Medically reviewed for accuracy and currency. Last reviewed: %s.*", now.Format("January 2006")))
	}

	parts = append(parts,
		Summary(in.Keyword, in.Template, in.Options.EffectiveTone(), pick),
		quickFacts(in.Bundle),
		Intro(in.Keyword, in.Template, in.Bundle, pick),
		strings.TrimRight(plan.TOC(in.Headings), "\n"))

	// Body sections, each anchored by its slugified heading and separated
	// by horizontal rules (R2.2).
	for i, heading := range in.Headings {
		body := ""
		if i < len(in.Bodies) {
			body = strings.TrimRight(in.Bodies[i], "\n")
		}
		section := fmt.Sprintf("## %s\n\n%s", heading, body)
		if i > 0 {
			section = "---\n\n" + section
		}
		parts = append(parts, section)
	}

	if in.FAQ != "" {
		parts = append(parts, strings.TrimRight(in.FAQ, "\n"))
	}

	parts = append(parts, Conclusion(in.Keyword, in.Category, in.Options.EffectiveTone(), in.Options.EffectiveSEOLevel(), pick))

	if in.Template.RequiresMedicalReview() {
		parts = append(parts, references(in.Keyword))
	}

	// The meta line and schema block both need the final word count, so
	// they are computed after the content is fixed (R4).
	content := strings.Join(parts, "\n\n")
	words := countWords(content)
	minutes := int(math.Ceil(float64(words) / skimWPM))
	if minutes < 1 {
		minutes = 1
	}

	meta := fmt.Sprintf("*%s min read · %s words · Updated %s*",
		fmt.Sprintf("%d", minutes), fmt.Sprintf("%d", words), now.Format("January 2006"))

	// Insert the meta line directly under the title.
	doc := strings.Replace(content, "\n\n", "\n\n"+meta+"\n\n", 1)

	return doc + "\n\n" + SchemaBlock(title, in.Keyword, words, now) + "\n"
}

// quickFacts renders the leading quick-facts block from the bundle's
// statistics. Capped at four entries.
func quickFacts(bundle types.ResearchBundle) string {
	stats := bundle.KeyStatistics
	if len(stats) > 4 {
		stats = stats[:4]
	}
	var b strings.Builder
	b.WriteString("**Quick Facts**\n")
	for _, s := range stats {
		fmt.Fprintf(&b, "\n- %s", s)
	}
	if len(stats) == 0 {
		b.WriteString("\n- Key figures for this topic are covered throughout the article below.")
	}
	return b.String()
}

// references renders the medical-profile References section. The single
// numbered entry backs the superscript markers the citation pass adds.
func references(keyword string) string {
	var b strings.Builder
	b.WriteString("## References\n\n")
	fmt.Fprintf(&b, "1. Peer-reviewed clinical literature on %s, including publications in [The Journal of Clinical Endocrinology & Metabolism](https://academic.oup.com/jcem) and [The American Journal of Clinical Nutrition](https://academic.oup.com/ajcn).\n", keyword)
	b.WriteString("2. National Institutes of Health, Office of Dietary Supplements fact sheets.\n")
	b.WriteString("3. Clinical practice guidelines current as of the review date above.\n")
	return strings.TrimRight(b.String(), "\n")
}

// countWords counts whitespace-separated tokens.
func countWords(s string) int {
	return len(strings.Fields(s))
}
