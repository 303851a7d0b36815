// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"strings"
)

// Tone is the requested writing style for the article body.
type Tone string

const (
	ToneInformative    Tone = "informative"
	ToneConversational Tone = "conversational"
	ToneProfessional   Tone = "professional"
	ToneAuthoritative  Tone = "authoritative"
)

// SEOLevel controls how assertively keyword-bearing copy is worked into
// the document; aggressive extends the conclusion with an extra keyword
// sentence.
type SEOLevel string

const (
	SEOBasic      SEOLevel = "basic"
	SEOModerate   SEOLevel = "moderate"
	SEOAggressive SEOLevel = "aggressive"
)

// GenerationOptions is the input contract for a single generation request.
// Per prd015-assembly R1.1, the record is passed by value and the core
// requires no network or file access from the caller.
type GenerationOptions struct {
	// ResearchData is optional free-text research supplied by the caller.
	// When present it is folded into the bundle's authority content.
	ResearchData string `json:"research_data,omitempty" yaml:"research_data,omitempty"`

	// TargetKeywords is a comma-separated keyword list. The first entry is
	// the primary keyword and drives classification, title, and density
	// scoring. Must be non-empty after trimming.
	TargetKeywords string `json:"target_keywords" yaml:"target_keywords"`

	// ArticleLength is the target word count for the finished article. It
	// drives the section budget: roughly one planned section per 250 words,
	// never below the planner's minimum of six. Zero means no budget.
	ArticleLength int `json:"article_length" yaml:"article_length"`

	// Tone selects the writing style. Empty defaults to informative.
	Tone Tone `json:"tone" yaml:"tone"`

	// IncludeImages appends visual-content blocks to the first few sections.
	IncludeImages bool `json:"include_images" yaml:"include_images"`

	// IncludeFAQs appends a Frequently Asked Questions block.
	IncludeFAQs bool `json:"include_faqs" yaml:"include_faqs"`

	// SEOLevel is optional; empty defaults to moderate.
	SEOLevel SEOLevel `json:"seo_level,omitempty" yaml:"seo_level,omitempty"`

	// TargetAudience is an optional free-text audience hint (e.g.
	// "beginners", "clinicians") consulted by the template selector.
	TargetAudience string `json:"target_audience,omitempty" yaml:"target_audience,omitempty"`

	// ContentSpecificity is an optional 0-100 dial; at 50 and above,
	// generic sections add a measurement paragraph pushing concrete
	// numbers over general prose.
	ContentSpecificity int `json:"content_specificity,omitempty" yaml:"content_specificity,omitempty"`

	// PreventRepetition substitutes semantic keyword variations for literal
	// repeats of the primary keyword.
	PreventRepetition bool `json:"prevent_repetition,omitempty" yaml:"prevent_repetition,omitempty"`

	// IncludeExamples adds worked examples to generic sections.
	IncludeExamples bool `json:"include_examples,omitempty" yaml:"include_examples,omitempty"`

	// IncludeStatistics adds a supplementary bundle statistic to generic
	// section bodies, beyond the one every generic section opens with.
	IncludeStatistics bool `json:"include_statistics,omitempty" yaml:"include_statistics,omitempty"`

	// UseCaseStudies adds a short case-study paragraph to eligible sections.
	UseCaseStudies bool `json:"use_case_studies,omitempty" yaml:"use_case_studies,omitempty"`
}

// PrimaryKeyword returns the first comma-separated entry of TargetKeywords,
// trimmed. Empty when no usable keyword was provided.
func (o GenerationOptions) PrimaryKeyword() string {
	for _, part := range strings.Split(o.TargetKeywords, ",") {
		if kw := strings.TrimSpace(part); kw != "" {
			return kw
		}
	}
	return ""
}

// Keywords returns all non-empty trimmed entries of TargetKeywords in order.
func (o GenerationOptions) Keywords() []string {
	var out []string
	for _, part := range strings.Split(o.TargetKeywords, ",") {
		if kw := strings.TrimSpace(part); kw != "" {
			out = append(out, kw)
		}
	}
	return out
}

// Validate checks the input contract. It is the only fatal check in the
// pipeline: every later stage degrades instead of failing.
func (o GenerationOptions) Validate() error {
	if o.PrimaryKeyword() == "" {
		return fmt.Errorf("target keywords are empty: provide at least one keyword phrase")
	}
	if o.ArticleLength < 0 {
		return fmt.Errorf("article length must be non-negative, got %d", o.ArticleLength)
	}
	return nil
}

// EffectiveTone returns the requested tone or the informative default.
func (o GenerationOptions) EffectiveTone() Tone {
	if o.Tone == "" {
		return ToneInformative
	}
	return o.Tone
}

// EffectiveSEOLevel returns the requested SEO level or the moderate default.
func (o GenerationOptions) EffectiveSEOLevel() SEOLevel {
	if o.SEOLevel == "" {
		return SEOModerate
	}
	return o.SEOLevel
}
