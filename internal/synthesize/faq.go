// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package synthesize

import (
	"fmt"
	"strings"

	"github.com/pdiddy/article-engine/pkg/types"
)

// faqCount is how many questions the FAQ block carries.
const faqCount = 5

// answerCue routes a question phrasing to an answer template. Evaluated in
// order; %s is the subject.
type answerCue struct {
	cues   []string
	answer string
}

var answerCues = []answerCue{
	{[]string{"earn", "money", "income", "profit", "cost", "price"},
		"Honest numbers vary widely, but the pattern is consistent: expect little or nothing in the first months of %s, modest returns once the fundamentals are in place, and meaningful results only after sustained, consistent effort. Anyone promising a shortcut is selling one."},
	{[]string{"how long", "take to", "timeline", "when will"},
		"For most people the realistic timeline with %s is measured in months, not days. Early signs of progress typically appear within the first several weeks of consistent effort, with substantial results following over three to six months."},
	{[]string{"safe", "risk", "danger", "serious", "too much"},
		"For most people %s is safe when approached sensibly and within recommended limits. The meaningful risks come from extremes and from ignoring individual circumstances, so anyone with an underlying condition or on regular medication should check with a professional first."},
	{[]string{"what is", "what are", "why is", "why does"},
		"In short, %s matters because it sits upstream of outcomes people actually care about. The essentials are covered in the sections above; the practical takeaway is that a basic working understanding, applied consistently, captures most of the benefit."},
	{[]string{"begin", "start", "first step", "no money"},
		"The best way to start with %s is smaller than feels impressive: pick the minimal version, do it consistently for a few weeks, and expand only once the basic routine holds. Starting oversized is the most common and most avoidable early failure."},
	{[]string{"doctor", "see a", "professional", "diagnos"},
		"See a professional about %s when symptoms persist beyond a few weeks, when you belong to a known risk group, or whenever you would otherwise be guessing about something testable. A short appointment usually resolves what months of searching cannot."},
}

// defaultAnswer covers questions no cue claims.
const defaultAnswer = "The short answer is that %s rewards consistency over cleverness. The details depend on your situation, but the fundamentals covered in this article hold in nearly every case, and applying them steadily is what separates results from research."

// FAQ builds the Frequently Asked Questions block from the bundle's
// related questions (R3). Questions are kept in bundle order and answers
// are synthesized from the cue table, so the same request always yields
// the same block.
func FAQ(keyword string, category types.TopicCategory, bundle types.ResearchBundle) string {
	questions := bundle.RelatedQuestions
	if len(questions) > faqCount {
		questions = questions[:faqCount]
	}

	var b strings.Builder
	b.WriteString("## Frequently Asked Questions\n")
	for _, q := range questions {
		fmt.Fprintf(&b, "\n### %s\n\n%s\n", q, answerFor(q, keyword))
	}

	if len(questions) == 0 {
		// A bundle should never be question-free, but the block must still
		// render if one is.
		fmt.Fprintf(&b, "\n### What should I know about %s?\n\n%s\n", keyword, fmt.Sprintf(defaultAnswer, keyword))
	}
	return b.String()
}

// answerFor picks the answer template whose cue matches the question.
func answerFor(question, keyword string) string {
	q := strings.ToLower(question)
	for _, ac := range answerCues {
		for _, cue := range ac.cues {
			if strings.Contains(q, cue) {
				return fmt.Sprintf(ac.answer, keyword)
			}
		}
	}
	return fmt.Sprintf(defaultAnswer, keyword)
}
