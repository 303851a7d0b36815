// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package research aggregates keyword research from independent lookup
// providers into a single normalized bundle.
// Implements: prd011-research (R1-R5);
//
//	docs/ARCHITECTURE § Research Aggregation.
package research

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/pdiddy/article-engine/pkg/types"
)

// Provider performs a single research lookup. Each provider (SERP snippet
// lookup, related-question derivation, statistic lookup) implements this
// interface per the Strategy pattern (R2.5).
type Provider interface {
	Name() string
	Lookup(ctx context.Context, keyword string, cfg types.ResearchConfig) (Partial, error)
}

// Partial is one provider's contribution to the bundle. A failed provider
// contributes a zero Partial, never an aggregation error.
type Partial struct {
	Results    []types.SearchResult
	Questions  []string
	Statistics []string
}

// IsEmpty reports whether the partial carries no data.
func (p Partial) IsEmpty() bool {
	return len(p.Results) == 0 && len(p.Questions) == 0 && len(p.Statistics) == 0
}

// DefaultProviders returns the standard provider set for a category. The
// live SERP provider is included only when cfg enables it; the derived
// question and statistic providers always run.
func DefaultProviders(category types.TopicCategory, cfg types.ResearchConfig) []Provider {
	var providers []Provider
	if cfg.EnableLiveLookup {
		providers = append(providers, NewSerpProvider(cfg))
	}
	providers = append(providers,
		&QuestionProvider{Category: category},
		&StatisticProvider{Category: category},
	)
	return providers
}

// Aggregate fans the keyword out to all providers concurrently, joins
// their partials, and normalizes the result into a ResearchBundle (R1-R4).
//
// The call never fails and never returns an empty bundle: individual
// provider errors and panics are logged and contribute nothing, and when
// every partial is empty (or the fan-out misses cfg.LookupDeadline) the
// deterministic topic-seeded fallback bundle is substituted (R4.1, R4.2).
func Aggregate(ctx context.Context, keyword string, category types.TopicCategory, providers []Provider, cfg types.ResearchConfig, log *zap.Logger) types.ResearchBundle {
	if log == nil {
		log = zap.NewNop()
	}
	keyword = strings.TrimSpace(keyword)
	if keyword == "" || len(providers) == 0 {
		return Fallback(keyword, category)
	}

	if cfg.LookupDeadline > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.LookupDeadline)
		defer cancel()
	}

	type lookupResult struct {
		partial Partial
		err     error
		name    string
	}

	ch := make(chan lookupResult, len(providers))
	var wg sync.WaitGroup

	for _, p := range providers {
		wg.Add(1)
		go func(p Provider) {
			defer wg.Done()
			defer func() {
				// A panicking provider is a programmer error; treat it as
				// a failed lookup rather than taking down the request.
				if r := recover(); r != nil {
					ch <- lookupResult{err: fmt.Errorf("provider panic: %v", r), name: p.Name()}
				}
			}()
			partial, err := p.Lookup(ctx, keyword, cfg)
			ch <- lookupResult{partial: partial, err: err, name: p.Name()}
		}(p)
	}

	go func() {
		wg.Wait()
		close(ch)
	}()

	var merged Partial
	for lr := range ch {
		if lr.err != nil {
			log.Warn("research provider failed",
				zap.String("provider", lr.name),
				zap.Error(lr.err))
			continue
		}
		merged.Results = append(merged.Results, lr.partial.Results...)
		merged.Questions = append(merged.Questions, lr.partial.Questions...)
		merged.Statistics = append(merged.Statistics, lr.partial.Statistics...)
	}

	if merged.IsEmpty() {
		log.Info("all research lookups empty, substituting fallback bundle",
			zap.String("keyword", keyword),
			zap.String("category", string(category)))
		return Fallback(keyword, category)
	}

	return normalize(merged, cfg)
}

// normalize orders, deduplicates, and caps the merged partials, then
// derives authority content from the surviving snippets (R3).
func normalize(merged Partial, cfg types.ResearchConfig) types.ResearchBundle {
	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 8
	}

	results := dedupeResults(merged.Results)
	if len(results) > maxResults {
		results = results[:maxResults]
	}
	for i := range results {
		results[i].Position = i + 1
	}

	return types.ResearchBundle{
		TopResults:       results,
		RelatedQuestions: dedupeStrings(merged.Questions),
		KeyStatistics:    dedupeStrings(merged.Statistics),
		AuthorityContent: types.BuildAuthorityContent(results),
	}
}

// dedupeResults drops results that share a URL or normalized title,
// keeping first occurrence order.
func dedupeResults(results []types.SearchResult) []types.SearchResult {
	seen := make(map[string]bool)
	var out []types.SearchResult
	for _, r := range results {
		key := r.URL
		if key == "" {
			key = "title:" + normalizeTitle(r.Title)
		}
		if key == "title:" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, r)
	}
	return out
}

// dedupeStrings removes duplicates case-insensitively, preserving order.
func dedupeStrings(items []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, s := range items {
		s = strings.TrimSpace(s)
		key := strings.ToLower(s)
		if s == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, s)
	}
	return out
}

// normalizeTitle returns a lowercased, whitespace-collapsed title for dedup.
func normalizeTitle(title string) string {
	return strings.Join(strings.Fields(strings.ToLower(title)), " ")
}

// FormatTable writes a bundle as a human-readable report to w.
func FormatTable(b types.ResearchBundle, w io.Writer) {
	fmt.Fprintf(w, "%-4s  %-60s  %s\n", "Rank", "Title", "URL")
	fmt.Fprintln(w, strings.Repeat("-", 100))
	for _, r := range b.TopResults {
		title := r.Title
		if len(title) > 60 {
			title = title[:57] + "..."
		}
		fmt.Fprintf(w, "%-4d  %-60s  %s\n", r.Position, title, r.URL)
	}

	fmt.Fprintf(w, "\nRelated questions (%d):\n", len(b.RelatedQuestions))
	for _, q := range b.RelatedQuestions {
		fmt.Fprintf(w, "  - %s\n", q)
	}

	fmt.Fprintf(w, "\nKey statistics (%d):\n", len(b.KeyStatistics))
	for _, s := range b.KeyStatistics {
		fmt.Fprintf(w, "  - %s\n", s)
	}

	if b.Fallback {
		fmt.Fprintln(w, "\n(fallback bundle: no live research was available)")
	}
}

// FormatJSON writes a bundle as indented JSON to w.
func FormatJSON(b types.ResearchBundle, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(b)
}
