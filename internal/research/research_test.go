package research

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/pdiddy/article-engine/pkg/types"
)

// --- mock provider ---

type mockProvider struct {
	name    string
	partial Partial
	err     error
	panics  bool
	delay   time.Duration
}

func (m *mockProvider) Name() string { return m.name }

func (m *mockProvider) Lookup(ctx context.Context, _ string, _ types.ResearchConfig) (Partial, error) {
	if m.panics {
		panic("mock provider exploded")
	}
	if m.delay > 0 {
		select {
		case <-time.After(m.delay):
		case <-ctx.Done():
			return Partial{}, ctx.Err()
		}
	}
	return m.partial, m.err
}

func testCfg() types.ResearchConfig {
	return types.ResearchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   10 * time.Second,
			UserAgent: "test/0.1",
		},
		MaxResults:     8,
		LookupDeadline: 5 * time.Second,
	}
}

// --- Aggregate ---

func TestAggregateMergesPartials(t *testing.T) {
	providers := []Provider{
		&mockProvider{name: "a", partial: Partial{
			Results:   []types.SearchResult{{Title: "First", URL: "https://a.test/1", Snippet: "alpha"}},
			Questions: []string{"What is dropshipping?"},
		}},
		&mockProvider{name: "b", partial: Partial{
			Statistics: []string{"Margins range from 10% to 30%."},
		}},
	}

	b := Aggregate(context.Background(), "dropshipping", types.CategoryOnlineIncome, providers, testCfg(), zap.NewNop())

	if len(b.TopResults) != 1 || b.TopResults[0].Title != "First" {
		t.Errorf("TopResults = %+v, want one result titled First", b.TopResults)
	}
	if len(b.RelatedQuestions) != 1 {
		t.Errorf("RelatedQuestions = %v, want 1 entry", b.RelatedQuestions)
	}
	if len(b.KeyStatistics) != 1 {
		t.Errorf("KeyStatistics = %v, want 1 entry", b.KeyStatistics)
	}
	if b.Fallback {
		t.Error("bundle should not be marked fallback when providers returned data")
	}
	if b.AuthorityContent != "alpha" {
		t.Errorf("AuthorityContent = %q, want snippet text", b.AuthorityContent)
	}
}

func TestAggregateIsolatesProviderFailure(t *testing.T) {
	providers := []Provider{
		&mockProvider{name: "broken", err: fmt.Errorf("connection refused")},
		&mockProvider{name: "ok", partial: Partial{
			Statistics: []string{"A working statistic."},
			Questions:  []string{"A working question?"},
		}},
	}

	b := Aggregate(context.Background(), "anything", types.CategoryGeneral, providers, testCfg(), zap.NewNop())

	if b.Fallback {
		t.Error("one surviving provider should prevent fallback substitution")
	}
	if len(b.KeyStatistics) != 1 || len(b.RelatedQuestions) != 1 {
		t.Errorf("surviving partial lost: stats=%v questions=%v", b.KeyStatistics, b.RelatedQuestions)
	}
}

func TestAggregateFallbackWhenAllFail(t *testing.T) {
	providers := []Provider{
		&mockProvider{name: "broken", err: fmt.Errorf("boom")},
		&mockProvider{name: "panicky", panics: true},
	}

	b := Aggregate(context.Background(), "xyz-unrecognized-topic", types.CategoryGeneral, providers, testCfg(), zap.NewNop())

	if !b.Fallback {
		t.Error("bundle should be marked fallback")
	}
	if len(b.KeyStatistics) == 0 {
		t.Error("fallback bundle must carry non-empty KeyStatistics")
	}
	if len(b.RelatedQuestions) == 0 {
		t.Error("fallback bundle must carry non-empty RelatedQuestions")
	}
	if len(b.TopResults) == 0 {
		t.Error("fallback bundle must carry synthetic TopResults")
	}
}

func TestAggregateFallbackWhenAllEmpty(t *testing.T) {
	providers := []Provider{
		&mockProvider{name: "empty-a"},
		&mockProvider{name: "empty-b"},
	}

	b := Aggregate(context.Background(), "quiet topic", types.CategoryGeneral, providers, testCfg(), nil)
	if !b.Fallback || b.IsEmpty() {
		t.Errorf("all-empty partials must substitute a non-empty fallback bundle, got %+v", b)
	}
}

func TestAggregateDeadlineRace(t *testing.T) {
	cfg := testCfg()
	cfg.LookupDeadline = 20 * time.Millisecond

	providers := []Provider{
		&mockProvider{name: "slow", delay: 2 * time.Second, partial: Partial{
			Statistics: []string{"too late"},
		}},
	}

	start := time.Now()
	b := Aggregate(context.Background(), "slow topic", types.CategoryGeneral, providers, cfg, nil)
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("Aggregate did not honor the lookup deadline, took %v", elapsed)
	}
	if !b.Fallback {
		t.Error("deadline miss should substitute the fallback bundle")
	}
}

func TestAggregateDeduplicatesResults(t *testing.T) {
	providers := []Provider{
		&mockProvider{name: "a", partial: Partial{Results: []types.SearchResult{
			{Title: "Same Page", URL: "https://x.test/page"},
			{Title: "Same Page", URL: "https://x.test/page"},
			{Title: "same page", URL: ""},
			{Title: "Other", URL: "https://x.test/other"},
		}}},
	}

	b := Aggregate(context.Background(), "k", types.CategoryGeneral, providers, testCfg(), nil)
	if len(b.TopResults) != 2 {
		t.Errorf("got %d results after dedup, want 2: %+v", len(b.TopResults), b.TopResults)
	}
	for i, r := range b.TopResults {
		if r.Position != i+1 {
			t.Errorf("result %d has Position %d, want %d", i, r.Position, i+1)
		}
	}
}

func TestAggregateCapsResults(t *testing.T) {
	var results []types.SearchResult
	for i := 0; i < 20; i++ {
		results = append(results, types.SearchResult{
			Title: fmt.Sprintf("Result %d", i),
			URL:   fmt.Sprintf("https://x.test/%d", i),
		})
	}
	cfg := testCfg()
	cfg.MaxResults = 5

	b := Aggregate(context.Background(), "k", types.CategoryGeneral,
		[]Provider{&mockProvider{name: "a", partial: Partial{Results: results}}}, cfg, nil)
	if len(b.TopResults) != 5 {
		t.Errorf("got %d results, want 5", len(b.TopResults))
	}
}

// --- Fallback banks ---

func TestFallbackTopicBanks(t *testing.T) {
	b := Fallback("vitamin d deficiency symptoms", types.CategoryNutrition)
	found := false
	for _, s := range b.KeyStatistics {
		if strings.Contains(s, "vitamin D") {
			found = true
		}
	}
	if !found {
		t.Errorf("vitamin D keyword should hit the dedicated bank, got %v", b.KeyStatistics)
	}

	zb := Fallback("zinc supplement benefits", types.CategoryNutrition)
	if len(zb.KeyStatistics) == 0 || !strings.Contains(strings.ToLower(zb.KeyStatistics[0]), "zinc") {
		t.Errorf("zinc keyword should hit the dedicated bank, got %v", zb.KeyStatistics)
	}
}

func TestFallbackGenericInterpolation(t *testing.T) {
	b := Fallback("competitive knitting", types.CategoryGeneral)
	if len(b.KeyStatistics) == 0 {
		t.Fatal("generic fallback must produce statistics")
	}
	found := false
	for _, s := range b.KeyStatistics {
		if strings.Contains(s, "competitive knitting") {
			found = true
		}
	}
	if !found {
		t.Errorf("generic statistics should interpolate the keyword, got %v", b.KeyStatistics)
	}
}

func TestFallbackIsDeterministic(t *testing.T) {
	a := Fallback("dropshipping", types.CategoryOnlineIncome)
	b := Fallback("dropshipping", types.CategoryOnlineIncome)
	if fmt.Sprintf("%+v", a) != fmt.Sprintf("%+v", b) {
		t.Error("fallback bundle must be deterministic for identical input")
	}
}

// --- derived providers ---

func TestQuestionProviderUsesCategoryTemplates(t *testing.T) {
	p := &QuestionProvider{Category: types.CategoryOnlineIncome}
	partial, err := p.Lookup(context.Background(), "dropshipping", testCfg())
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, q := range partial.Questions {
		if strings.Contains(q, "realistically earn") {
			found = true
		}
	}
	if !found {
		t.Errorf("online_income questions should include the beginner earnings phrasing, got %v", partial.Questions)
	}
}

func TestStatisticProviderEmptyKeyword(t *testing.T) {
	p := &StatisticProvider{Category: types.CategoryGeneral}
	if _, err := p.Lookup(context.Background(), "   ", testCfg()); err == nil {
		t.Error("empty keyword should be a provider error")
	}
}
