// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package research

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/pdiddy/article-engine/internal/httputil"
	"github.com/pdiddy/article-engine/pkg/types"
)

// serpAPIBase is the SERP lookup endpoint. Declared as a var so tests can
// substitute an httptest server.
var serpAPIBase = "https://serpapi.com/search.json"

// SerpProvider queries a live SERP API for snippet results and related
// questions (R2.1). It is the only network-bound provider; everything
// else in the aggregator is derived locally.
type SerpProvider struct {
	Client *http.Client
	APIKey string
	Log    *zap.Logger
}

// NewSerpProvider builds a SERP provider from the research config.
func NewSerpProvider(cfg types.ResearchConfig) *SerpProvider {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &SerpProvider{
		Client: &http.Client{Timeout: timeout},
		APIKey: cfg.SerpAPIKey,
	}
}

// Name returns the provider identifier.
func (p *SerpProvider) Name() string { return "serp" }

// serpResponse mirrors the fields of the SERP API response we consume.
type serpResponse struct {
	OrganicResults []struct {
		Title    string `json:"title"`
		Snippet  string `json:"snippet"`
		Link     string `json:"link"`
		Position int    `json:"position"`
	} `json:"organic_results"`
	RelatedQuestions []struct {
		Question string `json:"question"`
		Snippet  string `json:"snippet"`
	} `json:"related_questions"`
}

// Lookup queries the SERP endpoint for the keyword (R2.1). Failures are
// returned to the aggregator, which isolates them from the request.
func (p *SerpProvider) Lookup(ctx context.Context, keyword string, cfg types.ResearchConfig) (Partial, error) {
	params := url.Values{
		"q":      {keyword},
		"engine": {"google"},
	}
	if p.APIKey != "" {
		params.Set("api_key", p.APIKey)
	}
	if cfg.MaxResults > 0 {
		params.Set("num", fmt.Sprintf("%d", cfg.MaxResults))
	}

	reqURL := serpAPIBase + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return Partial{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)

	resp, err := httputil.DoWithRetry(ctx, p.Client, req, 0, p.Log)
	if err != nil {
		return Partial{}, fmt.Errorf("SERP API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Partial{}, fmt.Errorf("SERP API returned HTTP %d", resp.StatusCode)
	}

	var sr serpResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return Partial{}, fmt.Errorf("decoding SERP response: %w", err)
	}

	var partial Partial
	for i, r := range sr.OrganicResults {
		if r.Title == "" && r.Snippet == "" {
			continue
		}
		pos := r.Position
		if pos == 0 {
			pos = i + 1
		}
		partial.Results = append(partial.Results, types.SearchResult{
			Title:    r.Title,
			Snippet:  r.Snippet,
			URL:      r.Link,
			Position: pos,
		})
	}
	for _, q := range sr.RelatedQuestions {
		if q.Question != "" {
			partial.Questions = append(partial.Questions, q.Question)
		}
	}
	return partial, nil
}
