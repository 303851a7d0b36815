package engine

import (
	"context"
	"regexp"
	"strings"
	"testing"

	"github.com/pdiddy/article-engine/pkg/types"
)

func testConfig() types.PipelineConfig {
	return types.PipelineConfig{
		Research:   types.ResearchConfig{MaxResults: 8},
		Generator:  types.GeneratorConfig{VisualSectionLimit: 3, MaxSections: 15, Seed: 7},
		Validation: types.ValidationConfig{WordsPerMinute: 200},
	}
}

func TestGenerateEmptyKeywordFails(t *testing.T) {
	for _, kw := range []string{"", "   ", " , ,"} {
		_, err := Generate(context.Background(), types.GenerationOptions{TargetKeywords: kw}, testConfig(), nil)
		if err == nil {
			t.Errorf("Generate(%q) = nil error, want input validation failure", kw)
		}
	}
}

func TestGenerateVitaminDScenario(t *testing.T) {
	opts := types.GenerationOptions{
		TargetKeywords: "vitamin d deficiency symptoms",
		ArticleLength:  3000,
		Tone:           types.ToneInformative,
		IncludeImages:  true,
		IncludeFAQs:    true,
	}

	doc, err := Generate(context.Background(), opts, testConfig(), nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if doc.Category != types.CategoryNutrition {
		t.Errorf("Category = %q, want %q", doc.Category, types.CategoryNutrition)
	}
	if !doc.Category.IsHealth() {
		t.Error("vitamin keyword must classify into a health category")
	}

	md := doc.Markdown
	if h1 := regexp.MustCompile(`(?m)^# `).FindAllString(md, -1); len(h1) != 1 {
		t.Errorf("document has %d level-1 headings, want 1", len(h1))
	}
	if !strings.Contains(md, "## Common Signs and Symptoms of Vitamin D Deficiency") {
		t.Error("curated first heading missing from document")
	}
	if !strings.Contains(md, "**Medical Disclaimer:**") {
		t.Error("medical disclaimer missing")
	}
	if !strings.Contains(md, "## References") {
		t.Error("References section missing")
	}
	if !strings.Contains(md, "## Table of Contents") {
		t.Error("Table of Contents missing")
	}
	if !strings.Contains(md, "![") {
		t.Error("images enabled but no visual block emitted")
	}
}

func TestGenerateDropshippingScenario(t *testing.T) {
	opts := types.GenerationOptions{
		TargetKeywords: "dropshipping",
		ArticleLength:  2000,
		IncludeFAQs:    true,
	}

	doc, err := Generate(context.Background(), opts, testConfig(), nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if doc.Category != types.CategoryOnlineIncome {
		t.Errorf("Category = %q, want %q", doc.Category, types.CategoryOnlineIncome)
	}
	if !strings.Contains(doc.Markdown, "## Frequently Asked Questions") {
		t.Fatal("FAQ block missing")
	}
	if !strings.Contains(doc.Markdown, "realistically earn") {
		t.Error("FAQ missing the beginner-earnings question")
	}
}

func TestGenerateFAQExclusion(t *testing.T) {
	opts := types.GenerationOptions{TargetKeywords: "dropshipping", IncludeFAQs: false}

	doc, err := Generate(context.Background(), opts, testConfig(), nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if strings.Contains(doc.Markdown, "Frequently Asked Questions") {
		t.Error("FAQ block present despite IncludeFAQs=false")
	}
}

func TestGenerateSectionCapApplies(t *testing.T) {
	cfg := testConfig()
	cfg.Generator.MaxSections = 6

	doc, err := Generate(context.Background(), types.GenerationOptions{TargetKeywords: "vitamin d deficiency"}, cfg, nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	entries := regexp.MustCompile(`(?m)^\d+\. \[`).FindAllString(doc.Markdown, -1)
	if len(entries) != 6 {
		t.Errorf("TOC has %d entries, want 6 after section cap", len(entries))
	}
}

func TestGenerateArticleLengthBudgetsSections(t *testing.T) {
	opts := types.GenerationOptions{TargetKeywords: "vitamin d deficiency", ArticleLength: 1500}

	doc, err := Generate(context.Background(), opts, testConfig(), nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	// 1500 words at ~250 words per section budgets six sections.
	entries := regexp.MustCompile(`(?m)^\d+\. \[`).FindAllString(doc.Markdown, -1)
	if len(entries) != 6 {
		t.Errorf("TOC has %d entries, want 6 under the length budget", len(entries))
	}

	opts.ArticleLength = 0
	unbudgeted, err := Generate(context.Background(), opts, testConfig(), nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	unbounded := regexp.MustCompile(`(?m)^\d+\. \[`).FindAllString(unbudgeted.Markdown, -1)
	if len(unbounded) <= len(entries) {
		t.Errorf("zero length should leave the plan uncapped, got %d entries", len(unbounded))
	}
}

func TestSectionBudget(t *testing.T) {
	tests := []struct {
		length int
		want   int
	}{
		{0, 0},
		{-100, 0},
		{500, 6},
		{1500, 6},
		{2000, 8},
		{3000, 12},
	}
	for _, tt := range tests {
		if got := sectionBudget(tt.length); got != tt.want {
			t.Errorf("sectionBudget(%d) = %d, want %d", tt.length, got, tt.want)
		}
	}
}

func TestGenerateStatisticsToggleChangesDocument(t *testing.T) {
	opts := types.GenerationOptions{TargetKeywords: "content marketing"}

	plain, err := Generate(context.Background(), opts, testConfig(), nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	opts.IncludeStatistics = true
	rich, err := Generate(context.Background(), opts, testConfig(), nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if plain.Markdown == rich.Markdown {
		t.Error("toggling IncludeStatistics under a fixed seed must change the document")
	}
	if !strings.Contains(rich.Markdown, "One more data point worth sitting with:") {
		t.Error("statistics-enabled document missing the supplementary statistic")
	}
}

func TestGenerateToneChangesDocument(t *testing.T) {
	opts := types.GenerationOptions{TargetKeywords: "content marketing"}

	informative, err := Generate(context.Background(), opts, testConfig(), nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	opts.Tone = types.ToneAuthoritative
	authoritative, err := Generate(context.Background(), opts, testConfig(), nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if informative.Markdown == authoritative.Markdown {
		t.Error("changing the tone under a fixed seed must change the document")
	}
}

func TestGenerateMetricsPopulated(t *testing.T) {
	doc, err := Generate(context.Background(), types.GenerationOptions{TargetKeywords: "affiliate marketing", IncludeFAQs: true}, testConfig(), nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	m := doc.Metrics
	if m.WordCount == 0 {
		t.Error("WordCount = 0")
	}
	if m.ReadingTimeMinutes < 1 {
		t.Errorf("ReadingTimeMinutes = %d, want >= 1", m.ReadingTimeMinutes)
	}
	if !m.HasTOC {
		t.Error("HasTOC = false")
	}
	if !m.HasFAQ {
		t.Error("HasFAQ = false")
	}
	if m.KeywordDensity < 0 || m.KeywordDensity > 100 {
		t.Errorf("KeywordDensity = %v, out of [0,100]", m.KeywordDensity)
	}
	if doc.GeneratedAt.IsZero() {
		t.Error("GeneratedAt not stamped")
	}
}

func TestGenerateDeterministicWithSeed(t *testing.T) {
	opts := types.GenerationOptions{TargetKeywords: "zinc supplement benefits", IncludeFAQs: true}

	first, err := Generate(context.Background(), opts, testConfig(), nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	second, err := Generate(context.Background(), opts, testConfig(), nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if first.Markdown != second.Markdown {
		t.Error("seeded generation must produce identical markdown")
	}
}

func TestGenerateTOCRoundTrip(t *testing.T) {
	doc, err := Generate(context.Background(), types.GenerationOptions{TargetKeywords: "vitamin d deficiency symptoms"}, testConfig(), nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	anchors := regexp.MustCompile(`\]\(#([\w-]+)\)`).FindAllStringSubmatch(doc.Markdown, -1)
	if len(anchors) == 0 {
		t.Fatal("no TOC anchors found")
	}
	for _, m := range anchors {
		if strings.Count(doc.Markdown, "](#"+m[1]+")") != 1 {
			t.Errorf("anchor %q appears more than once", m[1])
		}
	}
}
