package store

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pdiddy/article-engine/pkg/types"
)

// --- test helpers ---

func testSetup(t *testing.T) *Store {
	t.Helper()
	cfg := types.StoreConfig{
		ArticlesDir: t.TempDir(),
		MaxResults:  20,
	}
	s, err := NewStore(cfg)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testDoc(keyword string, category types.TopicCategory) types.GeneratedDocument {
	return types.GeneratedDocument{
		PrimaryKeyword: keyword,
		Category:       category,
		Markdown:       "# The Complete Guide to " + keyword + "\n\nBody text about " + keyword + ".",
		Metrics: types.ValidationMetrics{
			WordCount:          420,
			ReadingTimeMinutes: 3,
			SEOScore:           72,
			HeadingCount:       8,
		},
		GeneratedAt: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
	}
}

func TestSaveAssignsID(t *testing.T) {
	s := testSetup(t)
	ctx := context.Background()

	doc := testDoc("zinc", types.CategoryNutrition)
	if err := s.Save(ctx, &doc); err != nil {
		t.Fatal(err)
	}
	if doc.ID == "" {
		t.Fatal("Save left ID empty")
	}

	got, err := s.Get(ctx, doc.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.PrimaryKeyword != "zinc" {
		t.Errorf("PrimaryKeyword = %q, want %q", got.PrimaryKeyword, "zinc")
	}
	if got.Markdown != doc.Markdown {
		t.Error("round-tripped markdown differs")
	}
	if got.Metrics.SEOScore != 72 {
		t.Errorf("Metrics.SEOScore = %d, want 72", got.Metrics.SEOScore)
	}
	if !got.GeneratedAt.Equal(doc.GeneratedAt) {
		t.Errorf("GeneratedAt = %v, want %v", got.GeneratedAt, doc.GeneratedAt)
	}
}

func TestSaveReplacesExisting(t *testing.T) {
	s := testSetup(t)
	ctx := context.Background()

	doc := testDoc("dropshipping", types.CategoryOnlineIncome)
	if err := s.Save(ctx, &doc); err != nil {
		t.Fatal(err)
	}

	doc.Markdown = "# Updated\n\nRegenerated body."
	doc.Metrics.SEOScore = 88
	if err := s.Save(ctx, &doc); err != nil {
		t.Fatal(err)
	}

	got, err := s.Get(ctx, doc.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Metrics.SEOScore != 88 {
		t.Errorf("SEOScore after replace = %d, want 88", got.Metrics.SEOScore)
	}

	sums, err := s.List(ctx, ListOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if len(sums) != 1 {
		t.Errorf("List returned %d rows after replace, want 1", len(sums))
	}
}

func TestGetUnknownID(t *testing.T) {
	s := testSetup(t)
	if _, err := s.Get(context.Background(), "no-such-id"); err == nil {
		t.Error("Get(unknown) = nil error, want not found")
	}
}

func TestListFiltersByCategory(t *testing.T) {
	s := testSetup(t)
	ctx := context.Background()

	for _, d := range []types.GeneratedDocument{
		testDoc("zinc", types.CategoryNutrition),
		testDoc("vitamin d", types.CategoryNutrition),
		testDoc("dropshipping", types.CategoryOnlineIncome),
	} {
		d := d
		if err := s.Save(ctx, &d); err != nil {
			t.Fatal(err)
		}
	}

	sums, err := s.List(ctx, ListOptions{Category: types.CategoryNutrition})
	if err != nil {
		t.Fatal(err)
	}
	if len(sums) != 2 {
		t.Fatalf("List(nutrition) returned %d rows, want 2", len(sums))
	}
	for _, sum := range sums {
		if sum.Category != types.CategoryNutrition {
			t.Errorf("row %s has category %q", sum.ID, sum.Category)
		}
	}
}

func TestListFullTextSearch(t *testing.T) {
	s := testSetup(t)
	ctx := context.Background()

	zinc := testDoc("zinc", types.CategoryNutrition)
	drop := testDoc("dropshipping", types.CategoryOnlineIncome)
	for _, d := range []*types.GeneratedDocument{&zinc, &drop} {
		if err := s.Save(ctx, d); err != nil {
			t.Fatal(err)
		}
	}

	sums, err := s.List(ctx, ListOptions{Query: "dropshipping"})
	if err != nil {
		t.Fatal(err)
	}
	if len(sums) != 1 {
		t.Fatalf("List(dropshipping) returned %d rows, want 1", len(sums))
	}
	if sums[0].ID != drop.ID {
		t.Errorf("matched %s, want %s", sums[0].ID, drop.ID)
	}
	if sums[0].WordCount != 420 {
		t.Errorf("summary WordCount = %d, want 420", sums[0].WordCount)
	}
}

func TestListMaxResults(t *testing.T) {
	s := testSetup(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		d := testDoc("affiliate marketing", types.CategoryOnlineIncome)
		d.GeneratedAt = d.GeneratedAt.Add(time.Duration(i) * time.Hour)
		if err := s.Save(ctx, &d); err != nil {
			t.Fatal(err)
		}
	}

	sums, err := s.List(ctx, ListOptions{MaxResults: 3})
	if err != nil {
		t.Fatal(err)
	}
	if len(sums) != 3 {
		t.Fatalf("List returned %d rows, want 3", len(sums))
	}
	// Newest first without a search query.
	for i := 1; i < len(sums); i++ {
		if sums[i].GeneratedAt.After(sums[i-1].GeneratedAt) {
			t.Error("list not sorted newest first")
		}
	}
}

func TestDelete(t *testing.T) {
	s := testSetup(t)
	ctx := context.Background()

	doc := testDoc("zinc", types.CategoryNutrition)
	if err := s.Save(ctx, &doc); err != nil {
		t.Fatal(err)
	}
	if err := s.Delete(ctx, doc.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Get(ctx, doc.ID); err == nil {
		t.Error("Get after Delete = nil error, want not found")
	}
	if err := s.Delete(ctx, doc.ID); err == nil {
		t.Error("second Delete = nil error, want not found")
	}
}

func TestExportWritesMarkdownAndSidecar(t *testing.T) {
	dir := t.TempDir()
	s, err := NewStore(types.StoreConfig{ArticlesDir: dir})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	ctx := context.Background()

	doc := testDoc("vitamin d deficiency", types.CategoryNutrition)
	if err := s.Save(ctx, &doc); err != nil {
		t.Fatal(err)
	}

	path, err := s.Export(ctx, doc.ID)
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(path) != "vitamin-d-deficiency.md" {
		t.Errorf("export file name = %s, want vitamin-d-deficiency.md", filepath.Base(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != doc.Markdown {
		t.Error("exported markdown differs from stored document")
	}

	meta, err := os.ReadFile(filepath.Join(dir, markdownDir, "vitamin-d-deficiency.metrics.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(meta), "word_count: 420") {
		t.Errorf("metrics sidecar missing word count, got:\n%s", meta)
	}
}
