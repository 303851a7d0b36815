// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package classify maps a keyword phrase to a coarse topic category.
// Implements: prd010-classification (R1-R3);
//
//	docs/ARCHITECTURE § Topic Classification.
package classify

import (
	"strings"

	"github.com/pdiddy/article-engine/pkg/types"
)

// rule associates substring cues with a category. Rules are evaluated in
// order and the first rule with a matching cue wins, so more specific
// vocabularies must precede broader ones (nutrition before medical,
// medical before health_fitness).
type rule struct {
	category types.TopicCategory
	cues     []string
}

// rules is the ordered keyword-to-category table. New categories are added
// here, not in control flow.
var rules = []rule{
	{types.CategoryNutrition, []string{
		"vitamin", "mineral", "supplement", "zinc", "magnesium", "iron deficiency",
		"omega-3", "protein intake", "nutrient", "deficiency", "calcium", "probiotic",
	}},
	{types.CategoryMedical, []string{
		"symptom", "diagnosis", "treatment", "disease", "syndrome", "disorder",
		"medication", "therapy", "chronic", "blood test", "clinical",
	}},
	{types.CategoryHealthFitness, []string{
		"workout", "exercise", "weight loss", "fitness", "muscle", "cardio",
		"yoga", "sleep quality", "metabolism", "diet plan",
	}},
	{types.CategoryOnlineIncome, []string{
		"dropshipping", "affiliate", "passive income", "make money online",
		"side hustle", "freelance", "print on demand", "online business",
		"monetize", "ecommerce",
	}},
	{types.CategoryMarketing, []string{
		"marketing", "seo", "content strategy", "social media", "branding",
		"advertising", "email campaign", "conversion rate", "lead generation",
	}},
	{types.CategoryBusiness, []string{
		"business", "startup", "entrepreneur", "management", "productivity",
		"leadership", "strategy", "negotiation", "b2b",
	}},
	{types.CategoryTechnology, []string{
		"software", "programming", "artificial intelligence", "machine learning",
		"cybersecurity", "cloud computing", "blockchain", "automation", "saas",
		"app development", "technology",
	}},
}

// Classify returns the topic category for a keyword phrase. It is a pure,
// total function: matching is case-insensitive ordered substring
// containment, and unmatched keywords fall through to CategoryGeneral.
func Classify(primaryKeyword string) types.TopicCategory {
	kw := strings.ToLower(strings.TrimSpace(primaryKeyword))
	if kw == "" {
		return types.CategoryGeneral
	}
	for _, r := range rules {
		for _, cue := range r.cues {
			if strings.Contains(kw, cue) {
				return r.category
			}
		}
	}
	return types.CategoryGeneral
}
