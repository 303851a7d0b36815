// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package research

import (
	"context"
	"fmt"
	"strings"

	"github.com/pdiddy/article-engine/pkg/types"
)

// QuestionProvider derives related questions from the keyword without any
// network access (R2.2). Derivation is deterministic: category-specific
// question templates are instantiated with the keyword in a fixed order.
type QuestionProvider struct {
	Category types.TopicCategory
}

// Name returns the provider identifier.
func (p *QuestionProvider) Name() string { return "questions" }

// questionTemplates maps a category to its question phrasings. %s is the
// keyword. The general templates double as a floor for every category.
var questionTemplates = map[types.TopicCategory][]string{
	types.CategoryNutrition: {
		"What are the signs of %s?",
		"How is %s diagnosed?",
		"How long does it take to correct %s?",
		"Can %s resolve on its own?",
		"What foods help with %s?",
	},
	types.CategoryMedical: {
		"What causes %s?",
		"What are the early symptoms of %s?",
		"When should you see a doctor about %s?",
		"How is %s treated?",
		"Is %s serious?",
	},
	types.CategoryOnlineIncome: {
		"How much can a beginner realistically earn with %s?",
		"How do you start %s with no money?",
		"Is %s still profitable?",
		"How long does it take to make money with %s?",
		"What are the biggest mistakes beginners make with %s?",
	},
	types.CategoryMarketing: {
		"What is %s and why does it matter?",
		"How do you measure success with %s?",
		"What tools are best for %s?",
		"How much does %s cost?",
		"What are common %s mistakes?",
	},
	types.CategoryBusiness: {
		"How do you get started with %s?",
		"What skills does %s require?",
		"What are the risks of %s?",
		"How do successful companies approach %s?",
	},
	types.CategoryTechnology: {
		"How does %s work?",
		"What are the best tools for %s?",
		"Is %s difficult to learn?",
		"What is the future of %s?",
	},
	types.CategoryHealthFitness: {
		"How often should you do %s?",
		"What results can you expect from %s?",
		"Is %s safe for beginners?",
		"What mistakes should you avoid with %s?",
	},
}

// generalQuestionTemplates applies to every keyword regardless of category.
var generalQuestionTemplates = []string{
	"What is %s?",
	"Why is %s important?",
	"What should beginners know about %s?",
}

// Lookup instantiates the category's question templates with the keyword.
func (p *QuestionProvider) Lookup(_ context.Context, keyword string, _ types.ResearchConfig) (Partial, error) {
	kw := strings.TrimSpace(keyword)
	if kw == "" {
		return Partial{}, fmt.Errorf("empty keyword")
	}

	var questions []string
	for _, tmpl := range questionTemplates[p.Category] {
		questions = append(questions, fmt.Sprintf(tmpl, kw))
	}
	for _, tmpl := range generalQuestionTemplates {
		questions = append(questions, fmt.Sprintf(tmpl, kw))
	}
	return Partial{Questions: questions}, nil
}

// StatisticProvider looks up canned statistics keyed by topic (R2.3).
// Recognized topics (vitamin d, zinc, ...) have dedicated fact banks;
// other keywords get category-level statistics interpolated with the
// keyword. Deterministic with respect to keyword and category.
type StatisticProvider struct {
	Category types.TopicCategory
}

// Name returns the provider identifier.
func (p *StatisticProvider) Name() string { return "statistics" }

// Lookup returns the statistic bank for the keyword's topic.
func (p *StatisticProvider) Lookup(_ context.Context, keyword string, _ types.ResearchConfig) (Partial, error) {
	kw := strings.TrimSpace(keyword)
	if kw == "" {
		return Partial{}, fmt.Errorf("empty keyword")
	}
	return Partial{Statistics: statisticsFor(kw, p.Category)}, nil
}
