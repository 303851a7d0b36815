// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/article-engine/pkg/types"
)

const (
	defaultTimeout   = 15 * time.Second
	defaultDeadline  = 10 * time.Second
	defaultUserAgent = "article-engine/0.1"
)

// researchConfig builds the research stage configuration from flags, the
// viper cascade, and loaded secrets, in that precedence order.
func researchConfig(cmd *cobra.Command) types.ResearchConfig {
	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = defaultTimeout
	}
	maxResults, _ := cmd.Flags().GetInt("max-results")
	if maxResults == 0 {
		maxResults = viper.GetInt("research.max_results")
	}
	live, _ := cmd.Flags().GetBool("live")
	if !live {
		live = viper.GetBool("research.enable_live_lookup")
	}
	serpKey, _ := cmd.Flags().GetString("serp-key")

	return types.ResearchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: defaultUserAgent,
		},
		MaxResults:       maxResults,
		EnableLiveLookup: live,
		SerpAPIKey:       secretDefault("serp-api-key", serpKey),
		LookupDeadline:   defaultDeadline,
	}
}

// pipelineConfig builds the full pipeline configuration for generate.
func pipelineConfig(cmd *cobra.Command) types.PipelineConfig {
	seed, _ := cmd.Flags().GetInt64("seed")
	visualLimit, _ := cmd.Flags().GetInt("visual-limit")
	if visualLimit == 0 {
		visualLimit = 3
	}
	maxSections, _ := cmd.Flags().GetInt("max-sections")
	if maxSections == 0 {
		maxSections = 15
	}
	wpm := viper.GetInt("validation.words_per_minute")
	if wpm == 0 {
		wpm = 200
	}

	return types.PipelineConfig{
		Research: researchConfig(cmd),
		Generator: types.GeneratorConfig{
			VisualSectionLimit: visualLimit,
			MaxSections:        maxSections,
			Seed:               seed,
		},
		Validation: types.ValidationConfig{WordsPerMinute: wpm},
		Store:      storeConfigFromFlags(cmd),
	}
}

// storeConfigFromFlags builds the article store configuration.
func storeConfigFromFlags(cmd *cobra.Command) types.StoreConfig {
	articlesDir, _ := cmd.Flags().GetString("articles-dir")
	if articlesDir == "" {
		articlesDir = viper.GetString("store.articles_dir")
	}
	if articlesDir == "" {
		articlesDir = "articles"
	}
	limit, _ := cmd.Flags().GetInt("limit")

	return types.StoreConfig{
		ArticlesDir: articlesDir,
		MaxResults:  limit,
	}
}
