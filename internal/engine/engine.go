// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package engine runs the article generation pipeline end to end:
// classification, research aggregation, template selection, section
// planning, per-section synthesis, assembly, and scoring.
//
// Implements: prd010-classification through prd016-validation (wiring);
// docs/ARCHITECTURE § Pipeline.
package engine

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/pdiddy/article-engine/internal/assemble"
	"github.com/pdiddy/article-engine/internal/classify"
	"github.com/pdiddy/article-engine/internal/plan"
	"github.com/pdiddy/article-engine/internal/research"
	"github.com/pdiddy/article-engine/internal/synthesize"
	"github.com/pdiddy/article-engine/internal/template"
	"github.com/pdiddy/article-engine/internal/validate"
	"github.com/pdiddy/article-engine/pkg/types"
)

// Generate runs one generation request through the full pipeline. The only
// fatal condition is input validation; every later stage degrades instead
// of failing, so a valid request always yields a complete document.
func Generate(ctx context.Context, opts types.GenerationOptions, cfg types.PipelineConfig, log *zap.Logger) (types.GeneratedDocument, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if err := opts.Validate(); err != nil {
		return types.GeneratedDocument{}, fmt.Errorf("validating options: %w", err)
	}

	keyword := opts.PrimaryKeyword()
	category := classify.Classify(keyword)
	log.Debug("classified keyword",
		zap.String("keyword", keyword),
		zap.String("category", string(category)))

	providers := research.DefaultProviders(category, cfg.Research)
	bundle := research.Aggregate(ctx, keyword, category, providers, cfg.Research, log)
	if data := strings.TrimSpace(opts.ResearchData); data != "" {
		bundle.AuthorityContent = strings.TrimSpace(bundle.AuthorityContent + "\n\n" + data)
	}

	tmpl := template.Select(keyword, opts.TargetAudience)

	headings := plan.Sections(keyword, tmpl, category, bundle)
	if budget := sectionBudget(opts.ArticleLength); budget > 0 && len(headings) > budget {
		headings = headings[:budget]
	}
	if max := cfg.Generator.MaxSections; max > 0 && len(headings) > max {
		headings = headings[:max]
	}
	log.Debug("planned sections",
		zap.Int("count", len(headings)),
		zap.String("profile", string(tmpl.ToneProfile)))

	bodies := make([]string, len(headings))
	for i, heading := range headings {
		bodies[i] = synthesize.Section(synthesize.Request{
			Heading:  heading,
			Keyword:  keyword,
			Variant:  tmpl.Variation(i),
			Bundle:   bundle,
			Category: category,
			Template: tmpl,
			Index:    i,
			Options:  opts,
			Config:   cfg.Generator,
		})
	}

	var faq string
	if opts.IncludeFAQs {
		faq = synthesize.FAQ(keyword, category, bundle)
	}

	now := time.Now().UTC()
	markdown := assemble.Document(assemble.Input{
		Keyword:  keyword,
		Category: category,
		Template: tmpl,
		Bundle:   bundle,
		Headings: headings,
		Bodies:   bodies,
		FAQ:      faq,
		Options:  opts,
		Pick:     picker(cfg.Generator.Seed),
		Now:      now,
	})

	metrics := validate.Score(markdown, keyword, cfg.Validation)
	log.Debug("scored document",
		zap.Int("words", metrics.WordCount),
		zap.Int("seo", metrics.SEOScore),
		zap.Int("eeat", metrics.EEATScore))

	return types.GeneratedDocument{
		PrimaryKeyword: keyword,
		Category:       category,
		Markdown:       markdown,
		Metrics:        metrics,
		GeneratedAt:    now,
	}, nil
}

// minBudgetSections floors the length-derived section budget so short
// length targets still yield a complete article skeleton.
const minBudgetSections = 6

// sectionBudget converts a requested word length into a section cap at
// roughly one section per 250 words. Zero length means no budget.
func sectionBudget(length int) int {
	if length <= 0 {
		return 0
	}
	budget := length / 250
	if budget < minBudgetSections {
		budget = minBudgetSections
	}
	return budget
}

// picker builds the phrase picker for title and opener selection. A non-zero
// seed pins output for reproducible runs; zero seeds from the clock, the one
// acknowledged source of run-to-run variation.
func picker(seed int64) assemble.Picker {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	return func(n int) int { return rng.Intn(n) }
}
