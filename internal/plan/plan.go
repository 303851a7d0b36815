// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package plan produces the ordered section heading list and its
// table-of-contents rendering.
// Implements: prd013-planning (R1-R4);
//
//	docs/ARCHITECTURE § Section Planning.
package plan

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pdiddy/article-engine/pkg/types"
)

// minSections is the floor on planned headings so TOC and FAQ rendering
// stay meaningful downstream (R1.3). Callers must not reorder the result.
const minSections = 6

// curatedHeadingSets holds exact heading sets for recognized high-value
// keywords, matched by substring against the lowercased keyword.
var curatedHeadingSets = map[string][]string{
	"vitamin d deficiency": {
		"Common Signs and Symptoms of Vitamin D Deficiency",
		"Who Is Most at Risk of Vitamin D Deficiency",
		"How Vitamin D Deficiency Is Diagnosed",
		"Understanding Your Vitamin D Test Results",
		"Treatment Options: Supplements, Food, and Sunlight",
		"How Long Recovery Takes and What to Expect",
		"Preventing Vitamin D Deficiency Long Term",
		"When to Talk to Your Doctor",
	},
	"zinc": {
		"Why Zinc Matters for Your Body",
		"Signs You May Not Be Getting Enough Zinc",
		"Best Food Sources of Zinc",
		"Zinc Supplements: Forms, Dosage, and Timing",
		"Zinc Absorption: What Helps and What Hinders",
		"Risks of Taking Too Much Zinc",
		"Who Should Consider Zinc Supplementation",
	},
	"dropshipping": {
		"How the Dropshipping Model Actually Works",
		"Choosing a Profitable Niche",
		"Finding and Vetting Suppliers",
		"Setting Up Your Store",
		"Pricing for Real Margins",
		"Marketing Your First Products",
		"Handling Returns and Customer Service",
		"Scaling Past Your First Sales",
	},
}

// categoryHeadings maps a category to generic heading templates. %s is the
// title-cased keyword.
var categoryHeadings = map[types.TopicCategory][]string{
	types.CategoryNutrition: {
		"What Is %s and Why It Matters",
		"Signs and Symptoms to Watch For",
		"What the Research Says About %s",
		"Getting Tested and Understanding Results",
		"Dietary Sources and Supplementation",
		"Building a Sustainable Routine",
		"When to Seek Professional Advice",
	},
	types.CategoryMedical: {
		"Understanding %s",
		"Common Symptoms and Warning Signs",
		"Causes and Risk Factors",
		"How %s Is Diagnosed",
		"Treatment Options Explained",
		"Living With and Managing the Condition",
		"When to See a Doctor",
	},
	types.CategoryOnlineIncome: {
		"How %s Works",
		"What You Need to Get Started",
		"Realistic Earnings Expectations",
		"Common Beginner Mistakes to Avoid",
		"Tools and Platforms Worth Using",
		"Scaling Your Income Over Time",
	},
	types.CategoryMarketing: {
		"Why %s Matters in 2026",
		"Building Your %s Strategy",
		"Key Metrics and How to Measure Them",
		"Common Pitfalls and How to Avoid Them",
		"Tools That Actually Move the Needle",
		"Case Studies and Proven Tactics",
		"Your 90-Day Action Plan",
	},
	types.CategoryBusiness: {
		"The Fundamentals of %s",
		"Planning and Strategy",
		"Execution: Turning Plans Into Results",
		"Measuring What Matters",
		"Common Mistakes and How to Avoid Them",
		"Next Steps and Resources",
	},
	types.CategoryTechnology: {
		"What Is %s",
		"How %s Works Under the Hood",
		"Getting Started: Your First Steps",
		"Best Practices and Common Pitfalls",
		"Tools and Ecosystem",
		"Real-World Applications",
		"Where %s Is Heading",
	},
	types.CategoryHealthFitness: {
		"The Benefits of %s",
		"Getting Started Safely",
		"Building a Consistent Routine",
		"Common Mistakes and How to Fix Them",
		"Tracking Your Progress",
		"Staying Motivated Long Term",
	},
}

// leadingInterrogative strips question openers when deriving headings from
// related questions.
var leadingInterrogative = regexp.MustCompile(`(?i)^(what|why|how|when|where|who|which|is|are|can|does|do|should)\s+`)

// Sections returns the ordered heading list for a request. Selection
// precedence (R2): curated sets for recognized keywords, then category
// heading templates, then headings derived from the bundle's related
// questions. The result always has at least minSections entries.
func Sections(keyword string, tmpl types.ContentTemplate, category types.TopicCategory, bundle types.ResearchBundle) []string {
	kw := strings.ToLower(strings.TrimSpace(keyword))

	if headings := curatedFor(kw); headings != nil {
		return headings
	}

	if templates, ok := categoryHeadings[category]; ok {
		headings := make([]string, 0, len(templates))
		for _, t := range templates {
			if strings.Contains(t, "%s") {
				headings = append(headings, fmt.Sprintf(t, titleCase(keyword)))
			} else {
				headings = append(headings, t)
			}
		}
		return pad(headings, keyword, bundle)
	}

	// No category templates: derive from related questions.
	var headings []string
	for _, q := range bundle.RelatedQuestions {
		if h := HeadingFromQuestion(q); h != "" {
			headings = append(headings, h)
		}
	}
	return pad(headings, keyword, bundle)
}

// curatedFor returns a copy of the curated set whose cue matches the
// keyword, longest cue first so "vitamin d deficiency" beats "vitamin d".
func curatedFor(kw string) []string {
	best := ""
	for cue := range curatedHeadingSets {
		if strings.Contains(kw, cue) && len(cue) > len(best) {
			best = cue
		}
	}
	if best == "" {
		return nil
	}
	return append([]string(nil), curatedHeadingSets[best]...)
}

// pad tops the heading list up to minSections, first from related
// questions, then from generic fillers.
func pad(headings []string, keyword string, bundle types.ResearchBundle) []string {
	seen := make(map[string]bool, len(headings))
	for _, h := range headings {
		seen[strings.ToLower(h)] = true
	}

	for _, q := range bundle.RelatedQuestions {
		if len(headings) >= minSections {
			break
		}
		h := HeadingFromQuestion(q)
		if h == "" || seen[strings.ToLower(h)] {
			continue
		}
		seen[strings.ToLower(h)] = true
		headings = append(headings, h)
	}

	fillers := []string{
		"Key Takeaways About " + titleCase(keyword),
		"Frequently Overlooked Details",
		"Putting It All Into Practice",
		"Further Reading and Resources",
		"Expert Tips Worth Remembering",
		"A Practical Starting Checklist",
	}
	for _, f := range fillers {
		if len(headings) >= minSections {
			break
		}
		if seen[strings.ToLower(f)] {
			continue
		}
		seen[strings.ToLower(f)] = true
		headings = append(headings, f)
	}
	return headings
}

// HeadingFromQuestion turns a related question into a heading: the leading
// interrogative and trailing question mark are stripped and the remainder
// is title-cased (R2.3). Returns "" for questions too short to survive.
func HeadingFromQuestion(q string) string {
	s := strings.TrimSpace(q)
	s = strings.TrimSuffix(s, "?")
	for {
		stripped := leadingInterrogative.ReplaceAllString(s, "")
		if stripped == s {
			break
		}
		s = stripped
	}
	s = strings.TrimSpace(s)
	if len(s) < 3 {
		return ""
	}
	return titleCase(s)
}

// TOC renders the heading list as a markdown table of contents. Each entry
// links to the slug anchor the assembler attaches to the matching section
// heading; the round trip is a hard invariant (R3).
func TOC(headings []string) string {
	var b strings.Builder
	b.WriteString("## Table of Contents\n\n")
	for i, h := range headings {
		fmt.Fprintf(&b, "%d. [%s](#%s)\n", i+1, h, Slugify(h))
	}
	return b.String()
}

// slugStrip removes everything that is not a word character, space, or hyphen.
var slugStrip = regexp.MustCompile(`[^\w\s-]`)

// slugHyphens collapses whitespace and repeated hyphens into one hyphen.
var slugHyphens = regexp.MustCompile(`[\s_]+|-{2,}`)

// Slugify converts a heading into its anchor id: lowercase, punctuation
// stripped, whitespace to single hyphens, repeats collapsed (R3.1).
func Slugify(heading string) string {
	s := strings.ToLower(strings.TrimSpace(heading))
	s = slugStrip.ReplaceAllString(s, "")
	s = slugHyphens.ReplaceAllString(s, "-")
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	return strings.Trim(s, "-")
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
