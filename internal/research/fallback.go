// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package research

import (
	"fmt"
	"strings"

	"github.com/pdiddy/article-engine/pkg/types"
)

// Dedicated statistic banks for recognized topics. Checked by substring so
// "vitamin d deficiency symptoms" and "vitamin d levels" share a bank.
var topicStatistics = map[string][]string{
	"vitamin d": {
		"An estimated 1 billion people worldwide have insufficient vitamin D levels.",
		"About 35% of adults in the United States are vitamin D deficient.",
		"Serum 25-hydroxyvitamin D below 20 ng/mL (50 nmol/L) is generally considered deficient.",
		"Vitamin D deficiency rates are up to 2x higher in adults over 65.",
		"Roughly 50-60% of nursing home residents have inadequate vitamin D status.",
		"Supplementation of 1,000-2,000 IU daily raises serum levels in most adults within 8-12 weeks.",
	},
	"zinc": {
		"An estimated 17% of the global population is at risk of inadequate zinc intake.",
		"The recommended dietary allowance for zinc is 11 mg per day for men and 8 mg for women.",
		"Zinc lozenges have been shown to shorten the duration of the common cold by about 33%.",
		"Around 30% of older adults consume less zinc than the estimated average requirement.",
		"The body has no specialized zinc storage system, so regular intake is required.",
	},
	"dropshipping": {
		"The global dropshipping market was valued at over $350 billion in 2024.",
		"Typical dropshipping profit margins range from 10% to 30%.",
		"Around 27% of online retailers use dropshipping as a primary fulfillment method.",
		"Most successful dropshipping stores take 6-12 months to reach consistent profitability.",
	},
}

// categoryStatistics holds per-category statistic templates. %s is the
// keyword. These back both the statistic provider and the fallback bundle.
var categoryStatistics = map[types.TopicCategory][]string{
	types.CategoryNutrition: {
		"Surveys suggest fewer than 1 in 4 adults meet recommended intake targets related to %s.",
		"Clinical guidance on %s has been updated at least twice in the past decade.",
		"Registered dietitians rank %s among the most common topics raised in consultations.",
	},
	types.CategoryMedical: {
		"Early recognition of %s significantly improves treatment outcomes.",
		"Studies indicate that %s is underdiagnosed in primary care settings.",
		"Clinical awareness of %s has grown measurably over the past decade.",
	},
	types.CategoryOnlineIncome: {
		"More than 40% of people exploring %s start it as a side project alongside a full-time job.",
		"Search interest in %s has grown year over year since 2020.",
		"Industry surveys put the median time to first revenue from %s at 3-6 months.",
	},
	types.CategoryMarketing: {
		"Companies that invest consistently in %s report up to 3x higher inbound lead volume.",
		"More than 60% of marketing teams plan to increase budget allocated to %s.",
		"Organizations with a documented %s strategy are significantly more likely to report success.",
	},
	types.CategoryBusiness: {
		"A majority of surveyed executives rank %s among their top strategic priorities.",
		"Businesses that formalize their approach to %s report measurably better outcomes.",
		"Interest in %s has risen steadily across small and mid-size companies.",
	},
	types.CategoryTechnology: {
		"Adoption of %s has accelerated sharply across enterprises since 2022.",
		"Industry analysts project double-digit annual growth for the %s market.",
		"A majority of IT leaders cite %s as a priority investment area.",
	},
	types.CategoryHealthFitness: {
		"Regular engagement with %s is associated with measurable improvements in wellbeing markers.",
		"Fewer than half of adults maintain a consistent routine around %s.",
		"Interest in %s peaks each January and has trended upward overall.",
	},
	types.CategoryGeneral: {
		"Interest in %s has grown steadily in recent years.",
		"Most people researching %s are looking for practical, actionable guidance.",
		"Experts agree that fundamentals matter more than trends when it comes to %s.",
	},
}

// fallbackQuestionSets mirrors the dedicated statistic banks with curated
// question sets for recognized topics.
var fallbackQuestionSets = map[string][]string{
	"vitamin d": {
		"What are the warning signs of vitamin D deficiency?",
		"How much vitamin D should I take daily?",
		"Can low vitamin D cause fatigue?",
		"What level of vitamin D is considered deficient?",
		"How long does it take to restore vitamin D levels?",
	},
	"zinc": {
		"What are the symptoms of zinc deficiency?",
		"Which foods are highest in zinc?",
		"Can you take too much zinc?",
		"Does zinc help with immune function?",
	},
}

// statisticsFor returns the statistic bank for a keyword: the dedicated
// topic bank when one matches, otherwise the category templates
// interpolated with the keyword.
func statisticsFor(keyword string, category types.TopicCategory) []string {
	kw := strings.ToLower(keyword)
	for topic, stats := range topicStatistics {
		if strings.Contains(kw, topic) {
			return append([]string(nil), stats...)
		}
	}

	templates, ok := categoryStatistics[category]
	if !ok {
		templates = categoryStatistics[types.CategoryGeneral]
	}
	out := make([]string, 0, len(templates))
	for _, tmpl := range templates {
		out = append(out, fmt.Sprintf(tmpl, keyword))
	}
	return out
}

// questionsFor returns curated questions for recognized topics, otherwise
// the category question templates instantiated with the keyword.
func questionsFor(keyword string, category types.TopicCategory) []string {
	kw := strings.ToLower(keyword)
	for topic, questions := range fallbackQuestionSets {
		if strings.Contains(kw, topic) {
			return append([]string(nil), questions...)
		}
	}

	var out []string
	for _, tmpl := range questionTemplates[category] {
		out = append(out, fmt.Sprintf(tmpl, keyword))
	}
	for _, tmpl := range generalQuestionTemplates {
		out = append(out, fmt.Sprintf(tmpl, keyword))
	}
	return out
}

// Fallback builds the deterministic topic-seeded bundle used when every
// live lookup fails or returns nothing (R4.1). The bundle is structurally
// complete: non-empty statistics, questions, and synthetic top results.
func Fallback(keyword string, category types.TopicCategory) types.ResearchBundle {
	kw := strings.TrimSpace(keyword)
	if kw == "" {
		kw = "this topic"
	}
	if !category.Valid() {
		category = types.CategoryGeneral
	}

	results := []types.SearchResult{
		{
			Title:    fmt.Sprintf("%s: A Complete Overview", titleCase(kw)),
			Snippet:  fmt.Sprintf("A practical introduction to %s covering the essentials most readers look for first.", kw),
			URL:      "https://example.com/overview",
			Position: 1,
		},
		{
			Title:    fmt.Sprintf("Expert Guidance on %s", titleCase(kw)),
			Snippet:  fmt.Sprintf("What specialists consistently recommend when it comes to %s, and why it matters.", kw),
			URL:      "https://example.com/expert-guidance",
			Position: 2,
		},
		{
			Title:    fmt.Sprintf("Common Questions About %s", titleCase(kw)),
			Snippet:  fmt.Sprintf("Answers to the questions people most often ask about %s.", kw),
			URL:      "https://example.com/questions",
			Position: 3,
		},
	}

	return types.ResearchBundle{
		TopResults:       results,
		RelatedQuestions: questionsFor(kw, category),
		KeyStatistics:    statisticsFor(kw, category),
		AuthorityContent: types.BuildAuthorityContent(results),
		Fallback:         true,
	}
}

// titleCase uppercases the first letter of each word. Good enough for
// synthetic titles; no locale handling needed.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		if len(w) > 0 {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
