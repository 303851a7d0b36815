// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// ValidationMetrics describes an already-finished document. Metrics are
// derived, never authoritative: they must not influence document content
// retroactively. Per prd016-validation R1-R4.
type ValidationMetrics struct {
	// WordCount is the number of whitespace-separated tokens.
	WordCount int `json:"word_count" yaml:"word_count"`

	// ReadingTimeMinutes is ceil(WordCount / words-per-minute).
	ReadingTimeMinutes int `json:"reading_time_minutes" yaml:"reading_time_minutes"`

	// KeywordDensity is 100 * primary-keyword occurrences / WordCount,
	// rounded to one decimal. Always in [0, 100].
	KeywordDensity float64 `json:"keyword_density" yaml:"keyword_density"`

	// SEOScore is a heuristic composite in [0, 100].
	SEOScore int `json:"seo_score" yaml:"seo_score"`

	// EEATScore is a heuristic Experience/Expertise/Authoritativeness/
	// Trustworthiness composite in [0, 100].
	EEATScore int `json:"eeat_score" yaml:"eeat_score"`

	// ReadabilityScore is a heuristic composite in [0, 100].
	ReadabilityScore int `json:"readability_score" yaml:"readability_score"`

	// HeadingCount counts ATX headings of any level.
	HeadingCount int `json:"heading_count" yaml:"heading_count"`

	// ParagraphCount counts top-level paragraph blocks.
	ParagraphCount int `json:"paragraph_count" yaml:"paragraph_count"`

	HasCitations  bool `json:"has_citations" yaml:"has_citations"`
	HasAuthorInfo bool `json:"has_author_info" yaml:"has_author_info"`
	HasReferences bool `json:"has_references" yaml:"has_references"`
	HasTOC        bool `json:"has_toc" yaml:"has_toc"`
	HasFAQ        bool `json:"has_faq" yaml:"has_faq"`
}

// GeneratedDocument is the output contract of one generation request:
// the finished markdown plus its derived metrics.
type GeneratedDocument struct {
	// ID identifies the document in the article store. Empty until saved.
	ID string `json:"id,omitempty" yaml:"id,omitempty"`

	// PrimaryKeyword is the keyword the document was generated for.
	PrimaryKeyword string `json:"primary_keyword" yaml:"primary_keyword"`

	// Category is the classified topic category.
	Category TopicCategory `json:"category" yaml:"category"`

	// Markdown is the complete assembled document body (UTF-8).
	Markdown string `json:"markdown" yaml:"markdown"`

	// Metrics describes the finished document.
	Metrics ValidationMetrics `json:"metrics" yaml:"metrics"`

	// GeneratedAt is the wall-clock completion time.
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`
}
