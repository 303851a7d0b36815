// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package assemble

import (
	"fmt"
	"strings"

	"github.com/pdiddy/article-engine/pkg/types"
)

// Picker selects an index in [0, n). Generation injects a seeded or
// time-seeded picker; tests inject a fixed one to pin phrase choices.
type Picker func(n int) int

// pickFrom applies a picker to a candidate list, tolerating out-of-range
// picker results.
func pickFrom(pick Picker, candidates []string) string {
	if len(candidates) == 0 {
		return ""
	}
	i := pick(len(candidates))
	if i < 0 || i >= len(candidates) {
		i = 0
	}
	return candidates[i]
}

// titlePatterns holds title candidates per category. %s is the title-cased
// keyword. Selection is the acknowledged source of run-to-run variation.
var titlePatterns = map[types.TopicCategory][]string{
	types.CategoryNutrition: {
		"%s: Signs, Causes, and What to Do About It",
		"The Complete Guide to %s",
		"%s Explained: A Practical, Evidence-Based Guide",
	},
	types.CategoryMedical: {
		"%s: Symptoms, Diagnosis, and Treatment",
		"Understanding %s: A Patient's Guide",
		"%s: What You Need to Know",
	},
	types.CategoryOnlineIncome: {
		"%s in 2026: A Realistic Beginner's Guide",
		"How to Start %s (Without the Hype)",
		"The Honest Guide to %s",
	},
	types.CategoryMarketing: {
		"%s: Strategy, Metrics, and Execution",
		"The Practical Guide to %s",
		"%s That Actually Works: A Data-Driven Guide",
	},
	types.CategoryBusiness: {
		"%s: A Practical Playbook",
		"Mastering %s: Strategy and Execution",
		"The Working Manager's Guide to %s",
	},
	types.CategoryTechnology: {
		"%s: A Hands-On Introduction",
		"Getting Started with %s: A Practical Guide",
		"%s Explained: From Basics to Best Practices",
	},
	types.CategoryHealthFitness: {
		"%s: Building a Routine That Lasts",
		"The Sustainable Guide to %s",
		"%s for Real Life: A Practical Guide",
	},
	types.CategoryGeneral: {
		"The Complete Guide to %s",
		"%s: Everything You Need to Know",
		"Understanding %s: A Practical Guide",
	},
}

// Title builds the document's single level-1 heading. The picker chooses
// among the category's patterns.
func Title(keyword string, category types.TopicCategory, pick Picker) string {
	patterns, ok := titlePatterns[category]
	if !ok {
		patterns = titlePatterns[types.CategoryGeneral]
	}
	return fmt.Sprintf(pickFrom(pick, patterns), titleCase(keyword))
}

// summaryOpeners vary the summary's first words per requested tone.
var summaryOpeners = map[types.Tone][]string{
	types.ToneInformative: {
		"In short:",
		"The essentials:",
		"Here is what matters:",
	},
	types.ToneConversational: {
		"Quick version:",
		"Here is the gist:",
		"Before anything else:",
	},
	types.ToneProfessional: {
		"Executive summary:",
		"At a glance:",
		"Key takeaways:",
	},
	types.ToneAuthoritative: {
		"The bottom line:",
		"What the evidence supports:",
		"The established picture:",
	},
}

// Summary renders the one-paragraph article summary under the title.
func Summary(keyword string, tmpl types.ContentTemplate, tone types.Tone, pick Picker) string {
	openers, ok := summaryOpeners[tone]
	if !ok {
		openers = summaryOpeners[types.ToneInformative]
	}
	opener := pickFrom(pick, openers)
	return fmt.Sprintf("**%s** this article covers %s end to end — %s — in %s, with the practical details kept front and center.",
		opener, keyword, tmpl.UserFocusArea, tmpl.LanguageStyle)
}

// Intro renders the introduction paragraph between the quick facts and
// the table of contents.
func Intro(keyword string, tmpl types.ContentTemplate, bundle types.ResearchBundle, pick Picker) string {
	openers := []string{
		fmt.Sprintf("If you are reading about %s, you probably want clear answers rather than another wall of vague advice.", keyword),
		fmt.Sprintf("There is no shortage of content about %s; there is a shortage of content that is specific enough to act on.", keyword),
		fmt.Sprintf("Few topics generate as much conflicting advice as %s.", keyword),
	}
	opener := pickFrom(pick, openers)

	stat := ""
	if s := bundle.Statistic(0); s != "" {
		stat = " " + s
	}

	variation := keyword
	if len(tmpl.SemanticKeywords) > 0 {
		variation = tmpl.SemanticKeywords[0]
	}

	return fmt.Sprintf("%s%s This guide walks through %s step by step, so by the end you will know exactly what applies to your situation and what to do next.",
		opener, stat, variation)
}

// conclusionClosers vary the conclusion's call to action per requested tone.
var conclusionClosers = map[types.Tone][]string{
	types.ToneInformative: {
		"Start with the single step that applies most directly to your situation — momentum does the rest.",
		"Pick one action from this guide and do it this week; the rest will follow far more easily.",
		"The best time to act on this was a while ago. The second best is today.",
	},
	types.ToneConversational: {
		"Honestly, just pick one thing from this guide and try it this week. That beats reading three more articles.",
		"You do not need a perfect plan to start; you need a first step you will actually take.",
		"Close the tab, pick a step, and go do it. Everything else here will still be waiting.",
	},
	types.ToneProfessional: {
		"Select the highest-leverage action above, assign an owner and a date, and review the outcome at the next checkpoint.",
		"Treat this as an implementation checklist: sequence the steps, schedule the first, and measure against a baseline.",
		"The next step is operational, not informational. Commit the first action to a calendar and hold the review.",
	},
	types.ToneAuthoritative: {
		"The evidence points one way: consistent execution of the fundamentals above outperforms any shortcut.",
		"Act on the fundamentals first. Everything else in this field is secondary to that, and the results bear it out.",
		"There is no credible substitute for the steps above. Start with the first and do not skip ahead.",
	},
}

// Conclusion renders the closing section. Aggressive SEO appends a final
// keyword-bearing sentence.
func Conclusion(keyword string, category types.TopicCategory, tone types.Tone, seo types.SEOLevel, pick Picker) string {
	closers, ok := conclusionClosers[tone]
	if !ok {
		closers = conclusionClosers[types.ToneInformative]
	}
	var b strings.Builder
	b.WriteString("## Conclusion\n\n")
	fmt.Fprintf(&b, "%s is not complicated so much as it is easy to overcomplicate. The fundamentals covered above — understood once and applied consistently — account for the overwhelming majority of real-world results.\n\n", titleCase(keyword))
	b.WriteString(pickFrom(pick, closers))
	if seo == types.SEOAggressive {
		fmt.Fprintf(&b, " Keep this guide to %s bookmarked and revisit it as your approach to %s matures.", keyword, keyword)
	}
	return b.String()
}

// titleCase uppercases the first letter of each word, leaving short
// connectives alone past the first word.
func titleCase(s string) string {
	small := map[string]bool{
		"a": true, "an": true, "and": true, "as": true, "at": true,
		"by": true, "for": true, "in": true, "of": true, "on": true,
		"or": true, "the": true, "to": true, "with": true,
	}
	words := strings.Fields(strings.TrimSpace(s))
	for i, w := range words {
		lower := strings.ToLower(w)
		if i > 0 && small[lower] {
			words[i] = lower
			continue
		}
		if len(w) > 0 {
			words[i] = strings.ToUpper(w[:1]) + lower[1:]
		}
	}
	return strings.Join(words, " ")
}
