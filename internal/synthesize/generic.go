// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package synthesize

import (
	"fmt"
	"strings"

	"github.com/pdiddy/article-engine/pkg/types"
)

// specificityThreshold is the ContentSpecificity value at which generic
// sections switch to pushing concrete measurements.
const specificityThreshold = 50

// categoryContent is the per-category material the generic generator
// assembles bodies from: a framework paragraph skeleton, a numbered
// best-practices list, and optional example and case-study paragraphs.
// %s slots take the section subject.
type categoryContent struct {
	framework string
	practices []string
	example   string
	caseStudy string
}

// contentFor returns the category's content set, falling back to the
// general set for unknown categories.
func contentFor(category types.TopicCategory) categoryContent {
	if c, ok := categoryContents[category]; ok {
		return c
	}
	return categoryContents[types.CategoryGeneral]
}

// genericSection builds a body for headings with no specialized generator:
// an opening paragraph tied to the heading, an interpolated statistic from
// the bundle, the category's framework skeleton, and its best-practices
// list (R2). Examples, case studies, a supplementary statistic, and a
// measurement paragraph are added on request (R3).
func genericSection(req Request) string {
	content := contentFor(req.Category)
	subject := req.subject()

	var b strings.Builder

	fmt.Fprintf(&b, "When it comes to %s, the theme of *%s* deserves closer attention than it usually gets. This section breaks down what actually matters here and what you can safely ignore.\n\n",
		subject, strings.ToLower(req.Heading))

	if stat := req.Bundle.Statistic(req.Index); stat != "" {
		fmt.Fprintf(&b, "%s That number is worth keeping in mind as you read on.\n\n", stat)
	}

	fmt.Fprintf(&b, content.framework+"\n\n", subject)

	b.WriteString("**Best practices that consistently pay off:**\n\n")
	for i, p := range content.practices {
		fmt.Fprintf(&b, "%d. %s\n", i+1, p)
	}
	b.WriteString("\n")

	if req.Options.IncludeExamples && content.example != "" {
		fmt.Fprintf(&b, "**A concrete example.** "+content.example+"\n\n", req.Keyword)
	}

	if req.Options.UseCaseStudies && content.caseStudy != "" {
		fmt.Fprintf(&b, "> **Case in point:** %s\n\n", content.caseStudy)
	}

	if req.Options.IncludeStatistics {
		// Offset by one so the supplement never repeats the opener.
		if stat := req.Bundle.Statistic(req.Index + 1); stat != "" {
			fmt.Fprintf(&b, "One more data point worth sitting with: %s\n\n", stat)
		}
	}

	if req.Options.ContentSpecificity >= specificityThreshold {
		fmt.Fprintf(&b, "Hold your work on %s to concrete numbers: a baseline, a target, and a review date, set before you change anything. Adjectives do not survive contact with a spreadsheet; measurements do.\n\n", subject)
	}

	fmt.Fprintf(&b, "The through-line is simple: progress with %s comes from applying a small number of fundamentals consistently, not from chasing every new tactic that surfaces.\n", subject)

	return b.String()
}
