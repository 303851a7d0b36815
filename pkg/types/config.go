package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "article-engine/0.1"). Per prd011-research R5.2.
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// ResearchConfig holds settings for the research aggregation stage.
// Per prd011-research R1.4, R5.1-R5.5.
type ResearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxResults is the maximum number of SERP results to keep (default 8).
	MaxResults int `json:"max_results" yaml:"max_results"`

	// EnableLiveLookup controls whether the HTTP SERP provider runs at all.
	// When false the aggregator goes straight to derived and fallback data.
	EnableLiveLookup bool `json:"enable_live_lookup" yaml:"enable_live_lookup"`

	// SerpAPIKey is an optional API key for the live SERP provider.
	SerpAPIKey string `json:"serp_api_key,omitempty" yaml:"serp_api_key,omitempty"`

	// LookupDeadline caps total fan-out time before the aggregator falls
	// back to canned data (default 10s).
	LookupDeadline time.Duration `json:"lookup_deadline" yaml:"lookup_deadline"`
}

// GeneratorConfig holds settings for template selection, planning, and
// section synthesis. Per prd014-synthesis R5.1-R5.3.
type GeneratorConfig struct {
	// VisualSectionLimit is the number of leading sections eligible for a
	// visual-content block when images are enabled (default 3).
	VisualSectionLimit int `json:"visual_section_limit" yaml:"visual_section_limit"`

	// MaxSections is the upper bound on planned headings (default 15).
	// The lower bound is fixed at 6 by the section planner.
	MaxSections int `json:"max_sections" yaml:"max_sections"`

	// Seed pins the title/phrase picker for reproducible output. Zero
	// means time-seeded.
	Seed int64 `json:"seed,omitempty" yaml:"seed,omitempty"`
}

// ValidationConfig holds settings for the scoring stage.
// Per prd016-validation R5.1.
type ValidationConfig struct {
	// WordsPerMinute is the divisor for the reading-time estimate in the
	// metrics record (default 200). The document's own meta line uses a
	// separate reader-facing 250 wpm skim estimate.
	WordsPerMinute int `json:"words_per_minute" yaml:"words_per_minute"`
}

// StoreConfig holds settings for the article store.
// Per prd017-article-store R1.2.
type StoreConfig struct {
	// ArticlesDir is the base directory for persisted articles (contains
	// index/ with the SQLite database and markdown/ with exports).
	ArticlesDir string `json:"articles_dir" yaml:"articles_dir"`

	// MaxResults is the default maximum number of list results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// PipelineConfig groups all stage configurations for the pipeline.
type PipelineConfig struct {
	Research   ResearchConfig   `json:"research" yaml:"research"`
	Generator  GeneratorConfig  `json:"generator" yaml:"generator"`
	Validation ValidationConfig `json:"validation" yaml:"validation"`
	Store      StoreConfig      `json:"store" yaml:"store"`
}
